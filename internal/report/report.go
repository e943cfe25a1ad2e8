// Package report builds the user-facing health report from evaluation
// results and supplies the fixed demonstration data set.
package report

import (
	"time"

	"health-monitor/internal/vitals"
)

// Fixed closing lines rendered after the alert list.
const (
	Suggestion = "Suggestion: Please consult a doctor / improve lifestyle where needed."
	AllNormal  = "All vitals within the normal range!"
)

// Report is the result of evaluating one reading set. It is built fresh
// per evaluation and is directly JSON-serializable for the CLI's
// machine-readable output mode.
type Report struct {
	Source      string            `json:"source"`
	GeneratedAt time.Time         `json:"generated_at"`
	Readings    vitals.ReadingSet `json:"readings"`
	Alerts      []vitals.Alert    `json:"alerts"`
	Normal      bool              `json:"normal"`
}

// Build assembles a report from a reading set and its alerts.
func Build(source string, rs vitals.ReadingSet, alerts []vitals.Alert) Report {
	if alerts == nil {
		alerts = []vitals.Alert{}
	}
	return Report{
		Source:      source,
		GeneratedAt: time.Now(),
		Readings:    rs.Clone(),
		Alerts:      alerts,
		Normal:      len(alerts) == 0,
	}
}

// SampleReadingSet returns the fixed demonstration data. Most values
// are deliberately abnormal so a demo run exercises the alerts.
func SampleReadingSet() vitals.ReadingSet {
	return vitals.ReadingSet{
		vitals.FieldSystolic:    135,
		vitals.FieldDiastolic:   95,
		vitals.FieldHeartRate:   110,
		vitals.FieldBloodSugar:  180,
		vitals.FieldBMI:         27.5,
		vitals.FieldOxygen:      92,
		vitals.FieldSleepHours:  5,
		vitals.FieldWaterLiters: 1.5,
	}
}
