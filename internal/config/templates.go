package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Health Monitor Configuration

[ui]
# Enable colored output
color_enabled = true

[input]
# Attempts allowed per field before interactive entry gives up
max_attempts = 5

[logging]
# Log level: debug, info, warn, error
level = "info"
# Mirror log output to the terminal
console = false
# Write rotating log files under the config directory
file = true
# Rotation limits
max_size = 10
max_backups = 3
max_age = 30
`

// createTemplateConfig writes a starter config file and leaves the
// built-in defaults in effect for this run.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return nil
}
