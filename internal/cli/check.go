// Package cli provides the command-line interface for the health monitor.
package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"health-monitor/internal/input"
	"health-monitor/internal/logging"
	"health-monitor/internal/report"
	"health-monitor/internal/vitals"
)

// newDemoCmd evaluates the fixed sample readings.
func newDemoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Evaluate the built-in sample readings",
		Long: `Evaluate the fixed demonstration data set. Most sample values are
deliberately abnormal so the run shows what alerts look like.`,
		Example: `  healthmon demo
  healthmon demo --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := newAppOutput(cmd, app)
			logger := logging.WithCommand(app.Logger, "demo")

			sample := report.SampleReadingSet()
			alerts, err := app.Evaluator.Evaluate(sample)
			if err != nil {
				return err
			}
			logging.LogEvaluation(logger, "sample", len(alerts))
			for _, a := range alerts {
				logging.LogAlert(logger, a.Vital, a.Message)
			}

			rep := report.Build("sample", sample, alerts)
			if output.IsJSON() {
				return output.JSON(rep)
			}

			output.Bold("Health Monitor - sample data")
			output.Println()
			for _, key := range vitals.FieldKeys() {
				output.Printf("  %-13s %s\n", key, formatValue(sample[key]))
			}
			output.Println()

			renderAlerts(output, rep)
			return nil
		},
	}
}

// newCheckCmd collects readings interactively and evaluates them.
func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Enter your own readings and evaluate them",
		Long: `Prompt for each reading, retrying on invalid entries, then evaluate
the full set against the normal ranges and print a health report.

Entries outside the plausible acceptance window for a field are
rejected before evaluation; each field allows a limited number of
attempts (see 'healthmon config show').`,
		Example: `  healthmon check
  healthmon check --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := newAppOutput(cmd, app)
			logger := logging.WithCommand(app.Logger, "check")

			output.Bold("Enter your health details")
			output.Println()

			collector := input.NewCollector(cmd.InOrStdin(), output.Writer(), logger, app.Config.Input.MaxAttempts)
			readings, err := collector.Collect(input.DefaultFields())
			if err != nil {
				output.Error("Input collection failed: %v", err)
				return err
			}

			alerts, err := app.Evaluator.Evaluate(readings)
			if err != nil {
				return err
			}
			logging.LogEvaluation(logger, "user", len(alerts))
			for _, a := range alerts {
				logging.LogAlert(logger, a.Vital, a.Message)
			}

			rep := report.Build("user", readings, alerts)
			if output.IsJSON() {
				return output.JSON(rep)
			}

			output.Println()
			output.Bold("Final Health Report")
			output.Dim("--------------------------")
			renderAlerts(output, rep)
			return nil
		},
	}
}

// newRangesCmd prints the normal-range table.
func newRangesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ranges",
		Short: "Show the normal-range table",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := newAppOutput(cmd, app)
			if output.IsJSON() {
				return output.JSON(app.Ranges.Bounds())
			}

			table := NewTable(output, "Vital", "Min", "Max")
			for _, b := range app.Ranges.Bounds() {
				table.AddRow(b.Name, formatValue(b.Min), formatValue(b.Max))
			}
			table.Render()
			return nil
		},
	}
}

// renderAlerts prints the alert lines followed by the fixed closing line.
func renderAlerts(output *Output, rep report.Report) {
	if rep.Normal {
		output.Success("  %s", report.AllNormal)
		return
	}
	for _, a := range rep.Alerts {
		output.Warning("  %s", a.Message)
	}
	output.Println()
	output.Info(report.Suggestion)
}

// formatValue renders a reading without trailing zeros.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
