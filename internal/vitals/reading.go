package vitals

// Field keys of a complete reading set. Blood pressure arrives as two
// separate numeric fields.
const (
	FieldSystolic    = "systolic"
	FieldDiastolic   = "diastolic"
	FieldHeartRate   = "heart_rate"
	FieldBloodSugar  = "blood_sugar"
	FieldBMI         = "bmi"
	FieldOxygen      = "oxygen"
	FieldSleepHours  = "sleep_hours"
	FieldWaterLiters = "water_liters"
)

// fieldKeys lists every required field in its canonical order.
var fieldKeys = []string{
	FieldSystolic,
	FieldDiastolic,
	FieldHeartRate,
	FieldBloodSugar,
	FieldBMI,
	FieldOxygen,
	FieldSleepHours,
	FieldWaterLiters,
}

// ReadingSet maps field keys to numeric readings. A set is complete when
// it holds a value for every required field; the input collaborator is
// responsible for delivering complete, already-parsed sets.
type ReadingSet map[string]float64

// FieldKeys returns the required field keys in canonical order.
func FieldKeys() []string {
	out := make([]string, len(fieldKeys))
	copy(out, fieldKeys)
	return out
}

// Complete reports whether every required field is present.
func (rs ReadingSet) Complete() bool {
	for _, key := range fieldKeys {
		if _, ok := rs[key]; !ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the reading set.
func (rs ReadingSet) Clone() ReadingSet {
	out := make(ReadingSet, len(rs))
	for k, v := range rs {
		out[k] = v
	}
	return out
}
