// Package input collects a complete reading set from line-oriented
// terminal input, retrying on invalid entries.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	apperrors "health-monitor/internal/errors"
	"health-monitor/internal/logging"
	"health-monitor/internal/vitals"
)

// Field describes one prompt: the reading-set key, the text shown to
// the user and the coarse acceptance window applied before the value is
// handed to the evaluator. The window is wider than the normal range on
// purpose; it only rejects physically implausible entries.
type Field struct {
	Key     string
	Prompt  string
	Integer bool
	Min     float64
	Max     float64
}

// DefaultFields returns the interactive entry fields in prompt order.
func DefaultFields() []Field {
	return []Field{
		{Key: vitals.FieldSystolic, Prompt: "Enter Systolic BP (90 - 200): ", Integer: true, Min: 50, Max: 250},
		{Key: vitals.FieldDiastolic, Prompt: "Enter Diastolic BP (60 - 120): ", Integer: true, Min: 30, Max: 150},
		{Key: vitals.FieldHeartRate, Prompt: "Enter Heart Rate (40 - 200): ", Integer: true, Min: 30, Max: 250},
		{Key: vitals.FieldBloodSugar, Prompt: "Enter Blood Sugar (50 - 300): ", Min: 40, Max: 400},
		{Key: vitals.FieldBMI, Prompt: "Enter BMI (10 - 40): ", Min: 10, Max: 50},
		{Key: vitals.FieldOxygen, Prompt: "Enter Oxygen % (70 - 100): ", Min: 70, Max: 100},
		{Key: vitals.FieldSleepHours, Prompt: "Enter Sleep Hours (0 - 24): ", Min: 0, Max: 24},
		{Key: vitals.FieldWaterLiters, Prompt: "Enter Water Intake in Liters (0 - 10): ", Min: 0, Max: 10},
	}
}

// Collector reads field values interactively with a bounded retry
// budget per field.
type Collector struct {
	in          *bufio.Reader
	out         io.Writer
	logger      zerolog.Logger
	maxAttempts int
}

// NewCollector creates a collector reading from in and prompting on out.
func NewCollector(in io.Reader, out io.Writer, logger zerolog.Logger, maxAttempts int) *Collector {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Collector{
		in:          bufio.NewReader(in),
		out:         out,
		logger:      logger,
		maxAttempts: maxAttempts,
	}
}

// Collect prompts for every field in order and returns a complete
// reading set. It fails if any field exhausts its retry budget or the
// input stream ends.
func (c *Collector) Collect(fields []Field) (vitals.ReadingSet, error) {
	rs := make(vitals.ReadingSet, len(fields))
	for _, f := range fields {
		value, err := c.collectField(f)
		if err != nil {
			return nil, err
		}
		rs[f.Key] = value
	}
	return rs, nil
}

func (c *Collector) collectField(f Field) (float64, error) {
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		fmt.Fprint(c.out, f.Prompt)

		line, err := c.readLine()
		if err != nil {
			return 0, err
		}

		value, err := parseValue(line, f.Integer)
		if err != nil {
			fmt.Fprintln(c.out, " Invalid input! Please enter a number.")
			logging.LogInputRetry(c.logger, f.Key, attempt, "not a number")
			continue
		}
		if value < f.Min {
			fmt.Fprintf(c.out, " Value cannot be less than %s. Try again.\n", formatWindow(f.Min))
			logging.LogInputRetry(c.logger, f.Key, attempt, "below window")
			continue
		}
		if value > f.Max {
			fmt.Fprintf(c.out, " Value cannot be greater than %s. Try again.\n", formatWindow(f.Max))
			logging.LogInputRetry(c.logger, f.Key, attempt, "above window")
			continue
		}
		return value, nil
	}

	return 0, apperrors.NewValidationError(f.Key, nil,
		fmt.Sprintf("no acceptable value after %d attempts", c.maxAttempts))
}

func (c *Collector) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return "", apperrors.ErrInputClosed
		}
		return "", apperrors.Wrap(err, "reading input")
	}
	return strings.TrimSpace(line), nil
}

// parseValue converts one entry. Integer fields reject fractional input
// rather than truncating it.
func parseValue(s string, integer bool) (float64, error) {
	if integer {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, err
		}
		return float64(n), nil
	}
	return strconv.ParseFloat(s, 64)
}

func formatWindow(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
