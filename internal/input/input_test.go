package input

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	apperrors "health-monitor/internal/errors"
	"health-monitor/internal/vitals"
)

func newTestCollector(in string, out *bytes.Buffer, maxAttempts int) *Collector {
	return NewCollector(strings.NewReader(in), out, zerolog.Nop(), maxAttempts)
}

func systolicField() Field {
	return Field{Key: vitals.FieldSystolic, Prompt: "Systolic: ", Integer: true, Min: 50, Max: 250}
}

func TestCollectCompleteSet(t *testing.T) {
	var out bytes.Buffer
	in := "135\n95\n110\n180\n27.5\n92\n5\n1.5\n"

	rs, err := newTestCollector(in, &out, 5).Collect(DefaultFields())
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if !rs.Complete() {
		t.Fatalf("reading set incomplete: %v", rs)
	}
	if rs[vitals.FieldSystolic] != 135 {
		t.Errorf("systolic = %v, want 135", rs[vitals.FieldSystolic])
	}
	if rs[vitals.FieldBMI] != 27.5 {
		t.Errorf("bmi = %v, want 27.5", rs[vitals.FieldBMI])
	}
	if rs[vitals.FieldWaterLiters] != 1.5 {
		t.Errorf("water = %v, want 1.5", rs[vitals.FieldWaterLiters])
	}
}

func TestCollectRetriesOnParseFailure(t *testing.T) {
	var out bytes.Buffer

	rs, err := newTestCollector("abc\n120\n", &out, 5).Collect([]Field{systolicField()})
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if rs[vitals.FieldSystolic] != 120 {
		t.Errorf("systolic = %v, want 120", rs[vitals.FieldSystolic])
	}
	if !strings.Contains(out.String(), "Invalid input") {
		t.Errorf("expected invalid-input message, got %q", out.String())
	}
}

func TestCollectRejectsOutsideWindow(t *testing.T) {
	var out bytes.Buffer

	rs, err := newTestCollector("40\n260\n120\n", &out, 5).Collect([]Field{systolicField()})
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if rs[vitals.FieldSystolic] != 120 {
		t.Errorf("systolic = %v, want 120", rs[vitals.FieldSystolic])
	}
	if !strings.Contains(out.String(), "cannot be less than 50") {
		t.Errorf("expected below-window message, got %q", out.String())
	}
	if !strings.Contains(out.String(), "cannot be greater than 250") {
		t.Errorf("expected above-window message, got %q", out.String())
	}
}

func TestCollectIntegerFieldRejectsFraction(t *testing.T) {
	var out bytes.Buffer

	rs, err := newTestCollector("120.5\n120\n", &out, 5).Collect([]Field{systolicField()})
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if rs[vitals.FieldSystolic] != 120 {
		t.Errorf("systolic = %v, want 120", rs[vitals.FieldSystolic])
	}
}

func TestCollectExhaustsAttempts(t *testing.T) {
	var out bytes.Buffer

	_, err := newTestCollector("x\ny\nz\n", &out, 2).Collect([]Field{systolicField()})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}

	var verr *apperrors.ValidationError
	if !apperrors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if verr.Field != vitals.FieldSystolic {
		t.Errorf("error names field %q, want %q", verr.Field, vitals.FieldSystolic)
	}
}

func TestCollectClosedInput(t *testing.T) {
	var out bytes.Buffer

	_, err := newTestCollector("", &out, 5).Collect([]Field{systolicField()})
	if !apperrors.Is(err, apperrors.ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}

func TestDefaultFieldsCoverAllRequiredKeys(t *testing.T) {
	fields := DefaultFields()
	keys := vitals.FieldKeys()
	if len(fields) != len(keys) {
		t.Fatalf("expected %d fields, got %d", len(keys), len(fields))
	}
	for i, key := range keys {
		if fields[i].Key != key {
			t.Errorf("field %d = %q, want %q", i, fields[i].Key, key)
		}
		if fields[i].Min >= fields[i].Max {
			t.Errorf("%s: window [%v,%v] is empty", key, fields[i].Min, fields[i].Max)
		}
	}
}
