package main

import (
	"fmt"
	"os"

	"health-monitor/internal/cli"
	"health-monitor/internal/config"
	"health-monitor/internal/logging"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	logCfg := logging.DefaultLogConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Console = cfg.Logging.Console
	logCfg.File = cfg.Logging.File
	logCfg.MaxSize = cfg.Logging.MaxSize
	logCfg.MaxBackups = cfg.Logging.MaxBackups
	logCfg.MaxAge = cfg.Logging.MaxAge
	logger := logging.NewLoggerWithConfig(logCfg)

	root := cli.NewRootCmd(cfg, logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
