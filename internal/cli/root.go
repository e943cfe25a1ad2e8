// Package cli provides the command-line interface for the health monitor.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"health-monitor/internal/config"
	"health-monitor/internal/logging"
	"health-monitor/internal/vitals"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2026-08-30"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Ranges    *vitals.RangeTable
	Evaluator *vitals.Evaluator
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	ranges := vitals.DefaultRangeTable()
	app := &App{
		Config:    cfg,
		Logger:    logger,
		Ranges:    ranges,
		Evaluator: vitals.NewEvaluator(ranges),
	}

	rootCmd := &cobra.Command{
		Use:   "healthmon",
		Short: "Health Monitor - vitals and lifestyle alert CLI",
		Long: `Health Monitor checks common health indicators (vitals and lifestyle
habits) against their normal ranges and reports alerts for anything
outside the safe range.

Run 'healthmon demo' to evaluate the built-in sample readings, or
'healthmon check' to enter your own.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configDir, _ := cmd.Flags().GetString("config"); configDir != "" {
				loaded, err := config.Load(configDir)
				if err != nil {
					return err
				}
				app.Config = loaded
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/health-monitor)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newDemoCmd(app))
	rootCmd.AddCommand(newCheckCmd(app))
	rootCmd.AddCommand(newRangesCmd(app))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd, true)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("Health Monitor v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := newAppOutput(cmd, app)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			output.Bold("Configuration")
			output.Printf("  Color enabled:  %v\n", app.Config.UI.ColorEnabled)
			output.Printf("  Max attempts:   %d\n", app.Config.Input.MaxAttempts)
			output.Printf("  Log level:      %s\n", app.Config.Logging.Level)
			output.Printf("  Log to file:    %v\n", app.Config.Logging.File)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := newAppOutput(cmd, app)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
				return
			}
			output.Println(config.DefaultConfigDir())
		},
	})

	return cmd
}

// newAppOutput builds an Output honoring the configured color setting.
func newAppOutput(cmd *cobra.Command, app *App) *Output {
	return NewOutput(cmd, app.Config.UI.ColorEnabled)
}
