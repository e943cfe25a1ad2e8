// Package vitals provides the normal-range table and the evaluation
// logic for a fixed set of health readings.
package vitals

import (
	apperrors "health-monitor/internal/errors"
)

// Canonical vital names registered in the range table.
const (
	VitalSystolic   = "Systolic BP"
	VitalDiastolic  = "Diastolic BP"
	VitalHeartRate  = "Heart Rate"
	VitalBloodSugar = "Blood Sugar"
	VitalBMI        = "BMI"
	VitalOxygen     = "Oxygen Saturation"
	VitalSleep      = "Sleep Hours"
	VitalWater      = "Water Intake"
)

// Bound describes one scalar check: the inclusive normal range for a
// named vital.
type Bound struct {
	Name string
	Min  float64
	Max  float64
}

// Contains reports whether v lies inside the inclusive range.
func (b Bound) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// RangeTable is an ordered, read-only registry of normal-range bounds.
// It is built once at startup and never mutated, so it is safe to share
// between concurrent evaluations.
type RangeTable struct {
	bounds []Bound
	byName map[string]Bound
}

// NewRangeTable builds a table from the given bounds, preserving order.
func NewRangeTable(bounds ...Bound) *RangeTable {
	t := &RangeTable{
		bounds: make([]Bound, 0, len(bounds)),
		byName: make(map[string]Bound, len(bounds)),
	}
	for _, b := range bounds {
		t.bounds = append(t.bounds, b)
		t.byName[b.Name] = b
	}
	return t
}

// DefaultRangeTable returns the authoritative normal ranges for the
// eight tracked vitals.
func DefaultRangeTable() *RangeTable {
	return NewRangeTable(
		Bound{Name: VitalSystolic, Min: 90, Max: 120},
		Bound{Name: VitalDiastolic, Min: 60, Max: 80},
		Bound{Name: VitalHeartRate, Min: 60, Max: 100},
		Bound{Name: VitalBloodSugar, Min: 70, Max: 140},
		Bound{Name: VitalBMI, Min: 18.5, Max: 24.9},
		Bound{Name: VitalOxygen, Min: 95, Max: 100},
		Bound{Name: VitalSleep, Min: 7, Max: 9},
		Bound{Name: VitalWater, Min: 2, Max: 4},
	)
}

// BoundsFor returns the bound registered under name.
func (t *RangeTable) BoundsFor(name string) (Bound, error) {
	b, ok := t.byName[name]
	if !ok {
		return Bound{}, apperrors.NewUnknownVitalError(name)
	}
	return b, nil
}

// Bounds returns the registered bounds in declaration order.
func (t *RangeTable) Bounds() []Bound {
	out := make([]Bound, len(t.bounds))
	copy(out, t.bounds)
	return out
}

// Len returns the number of registered vitals.
func (t *RangeTable) Len() int {
	return len(t.bounds)
}
