package vitals

import (
	"fmt"
	"strconv"

	apperrors "health-monitor/internal/errors"
)

// Alert is one out-of-range finding. Message embeds the observed
// value(s) and unit, ready for rendering.
type Alert struct {
	Vital   string `json:"vital"`
	Message string `json:"message"`
}

// singleCheck drives the generic evaluation of one single-value vital.
type singleCheck struct {
	field   string
	vital   string
	message func(v float64) string
}

// Evaluation order for the single-value vitals. Blood pressure is a
// composite check handled separately, ahead of these.
var singleChecks = []singleCheck{
	{
		field: FieldHeartRate,
		vital: VitalHeartRate,
		message: func(v float64) string {
			return fmt.Sprintf("Heart Rate Abnormal: %s bpm", formatReading(v))
		},
	},
	{
		field: FieldBloodSugar,
		vital: VitalBloodSugar,
		message: func(v float64) string {
			return fmt.Sprintf("Blood Sugar Abnormal: %s mg/dL", formatReading(v))
		},
	},
	{
		field: FieldBMI,
		vital: VitalBMI,
		message: func(v float64) string {
			return fmt.Sprintf("BMI Abnormal: %.1f", v)
		},
	},
	{
		field: FieldOxygen,
		vital: VitalOxygen,
		message: func(v float64) string {
			return fmt.Sprintf("Oxygen Level Low: %s%%", formatReading(v))
		},
	},
	{
		field: FieldSleepHours,
		vital: VitalSleep,
		message: func(v float64) string {
			return fmt.Sprintf("Sleep Hours Abnormal: %s hrs", formatReading(v))
		},
	},
	{
		field: FieldWaterLiters,
		vital: VitalWater,
		message: func(v float64) string {
			return fmt.Sprintf("Water Intake Abnormal: %s L", formatReading(v))
		},
	},
}

// formatReading renders a raw reading without trailing zeros, so whole
// numbers print as integers.
func formatReading(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Evaluator compares reading sets against an injected range table. It
// holds no mutable state; one Evaluator may serve concurrent callers.
type Evaluator struct {
	ranges *RangeTable
}

// NewEvaluator creates an evaluator backed by the given range table.
func NewEvaluator(ranges *RangeTable) *Evaluator {
	return &Evaluator{ranges: ranges}
}

// Evaluate compares rs against the range table and returns one alert per
// abnormal vital, in declaration order: blood pressure first (a single
// combined alert covering both components), then heart rate, blood
// sugar, BMI, oxygen, sleep and water.
//
// The returned slice is empty, never nil, when all readings are normal.
// An incomplete reading set fails with a MissingFieldError naming the
// first absent field; no partial alert list is produced.
func (e *Evaluator) Evaluate(rs ReadingSet) ([]Alert, error) {
	for _, key := range fieldKeys {
		if _, ok := rs[key]; !ok {
			return nil, apperrors.NewMissingFieldError(key)
		}
	}

	alerts := make([]Alert, 0, len(singleChecks)+1)

	bpAlert, err := e.checkBloodPressure(rs)
	if err != nil {
		return nil, err
	}
	if bpAlert != nil {
		alerts = append(alerts, *bpAlert)
	}

	for _, check := range singleChecks {
		bound, err := e.ranges.BoundsFor(check.vital)
		if err != nil {
			return nil, err
		}
		value := rs[check.field]
		if !bound.Contains(value) {
			alerts = append(alerts, Alert{Vital: check.vital, Message: check.message(value)})
		}
	}

	return alerts, nil
}

// checkBloodPressure evaluates both pressure components together and
// reports at most one combined alert, even when both are abnormal.
func (e *Evaluator) checkBloodPressure(rs ReadingSet) (*Alert, error) {
	sysBound, err := e.ranges.BoundsFor(VitalSystolic)
	if err != nil {
		return nil, err
	}
	diaBound, err := e.ranges.BoundsFor(VitalDiastolic)
	if err != nil {
		return nil, err
	}

	sys := rs[FieldSystolic]
	dia := rs[FieldDiastolic]
	if sysBound.Contains(sys) && diaBound.Contains(dia) {
		return nil, nil
	}

	return &Alert{
		Vital:   "Blood Pressure",
		Message: fmt.Sprintf("Blood Pressure Abnormal: %s/%s mmHg", formatReading(sys), formatReading(dia)),
	}, nil
}
