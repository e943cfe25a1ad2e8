package vitals

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property 1: Readings inside every normal range never alert
//
// For any reading set whose values all lie within their inclusive
// bounds, Evaluate must return an empty alert list.
func TestProperty1_NormalReadingsNeverAlert(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	ev := NewEvaluator(DefaultRangeTable())

	properties.Property("in-range readings produce no alerts", prop.ForAll(
		func(sys, dia, hr, sugar, bmi, oxy, sleep, water float64) bool {
			alerts, err := ev.Evaluate(ReadingSet{
				FieldSystolic:    sys,
				FieldDiastolic:   dia,
				FieldHeartRate:   hr,
				FieldBloodSugar:  sugar,
				FieldBMI:         bmi,
				FieldOxygen:      oxy,
				FieldSleepHours:  sleep,
				FieldWaterLiters: water,
			})
			if err != nil {
				t.Logf("unexpected error: %v", err)
				return false
			}
			if len(alerts) != 0 {
				t.Logf("unexpected alerts: %v", alerts)
				return false
			}
			return true
		},
		gen.Float64Range(90, 120),
		gen.Float64Range(60, 80),
		gen.Float64Range(60, 100),
		gen.Float64Range(70, 140),
		gen.Float64Range(18.5, 24.9),
		gen.Float64Range(95, 100),
		gen.Float64Range(7, 9),
		gen.Float64Range(2, 4),
	))

	properties.TestingRun(t)
}

// Property 2: Evaluation is deterministic and bounded
//
// For any reading set drawn from the coarse acceptance windows,
// Evaluate returns at most seven alerts (one per vital group), the
// alert vitals follow the fixed declaration order, and a second call
// returns the identical list.
func TestProperty2_EvaluationDeterministicAndOrdered(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	ev := NewEvaluator(DefaultRangeTable())
	order := map[string]int{
		"Blood Pressure": 0,
		VitalHeartRate:   1,
		VitalBloodSugar:  2,
		VitalBMI:         3,
		VitalOxygen:      4,
		VitalSleep:       5,
		VitalWater:       6,
	}

	properties.Property("alerts are ordered, bounded and repeatable", prop.ForAll(
		func(sys, dia, hr, sugar, bmi, oxy, sleep, water float64) bool {
			rs := ReadingSet{
				FieldSystolic:    sys,
				FieldDiastolic:   dia,
				FieldHeartRate:   hr,
				FieldBloodSugar:  sugar,
				FieldBMI:         bmi,
				FieldOxygen:      oxy,
				FieldSleepHours:  sleep,
				FieldWaterLiters: water,
			}

			first, err := ev.Evaluate(rs)
			if err != nil {
				t.Logf("unexpected error: %v", err)
				return false
			}

			if len(first) > 7 {
				t.Logf("too many alerts: %v", first)
				return false
			}

			// Order must strictly follow the declaration order.
			for i := 1; i < len(first); i++ {
				if order[first[i-1].Vital] >= order[first[i].Vital] {
					t.Logf("alerts out of order: %v", first)
					return false
				}
			}

			second, err := ev.Evaluate(rs)
			if err != nil || len(first) != len(second) {
				t.Logf("second evaluation diverged: %v vs %v (err %v)", first, second, err)
				return false
			}
			for i := range first {
				if first[i] != second[i] {
					t.Logf("alert %d drifted between calls", i)
					return false
				}
			}
			return true
		},
		gen.Float64Range(50, 250),
		gen.Float64Range(30, 150),
		gen.Float64Range(30, 250),
		gen.Float64Range(40, 400),
		gen.Float64Range(10, 50),
		gen.Float64Range(70, 100),
		gen.Float64Range(0, 24),
		gen.Float64Range(0, 10),
	))

	properties.TestingRun(t)
}

// Property 3: Exactly one alert per out-of-range vital group
//
// Pushing a single vital just outside its bound while every other
// reading stays normal yields exactly one alert naming that vital.
func TestProperty3_SingleAbnormalVitalSingleAlert(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	ev := NewEvaluator(DefaultRangeTable())

	properties.Property("abnormal heart rate alone yields one heart rate alert", prop.ForAll(
		func(hr float64) bool {
			rs := normalReadings()
			rs[FieldHeartRate] = hr

			alerts, err := ev.Evaluate(rs)
			if err != nil {
				return false
			}

			inRange := hr >= 60 && hr <= 100
			if inRange {
				return len(alerts) == 0
			}
			return len(alerts) == 1 && alerts[0].Vital == VitalHeartRate
		},
		gen.Float64Range(30, 250),
	))

	properties.TestingRun(t)
}
