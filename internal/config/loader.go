package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/textdrive/internal/course"
)

// FileName is the config file name searched for in the config directories.
const FileName = "textdrive.yaml"

// LoadDrive loads TextDrive configuration.
// Search order: customPath -> ~/.textdrive/configs/textdrive.yaml ->
// ./configs/textdrive.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
func LoadDrive(customPath string) (DriveConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DriveConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DriveConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultDriveYAML)
	if err != nil {
		return DefaultDriveConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals data over the hardcoded defaults.
func decode(data []byte) (DriveConfig, error) {
	cfg := DefaultDriveConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DriveConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".textdrive", "configs", filename)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg DriveConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate reports every out-of-range value in the configuration.
func (c DriveConfig) Validate() error {
	var errs []error
	if c.Course.Cols <= 0 {
		errs = append(errs, fmt.Errorf("course.cols must be positive, got %d", c.Course.Cols))
	}
	if c.Course.VisibleRows <= 0 {
		errs = append(errs, fmt.Errorf("course.visible_rows must be positive, got %d", c.Course.VisibleRows))
	}
	if !course.Exists(c.Course.Policy) {
		errs = append(errs, fmt.Errorf("course.policy %q is not registered", c.Course.Policy))
	}
	if c.Course.Policy == course.PolicyPattern && len(c.Course.Patterns) == 0 {
		errs = append(errs, errors.New("course.patterns must not be empty for the pattern policy"))
	}
	if c.Player.Row < 0 || c.Player.Row >= c.Course.VisibleRows {
		errs = append(errs, fmt.Errorf("player.row must be in [0, %d), got %d", c.Course.VisibleRows, c.Player.Row))
	}
	if c.Player.StartColumn >= c.Course.Cols {
		errs = append(errs, fmt.Errorf("player.start_column must be below %d, got %d", c.Course.Cols, c.Player.StartColumn))
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_rate must be positive, got %d", c.Timing.TickRate))
	}
	if c.Timing.ScrollPeriod <= 0 {
		errs = append(errs, fmt.Errorf("timing.scroll_period must be positive, got %d", c.Timing.ScrollPeriod))
	}
	if c.Timing.InputCooldown < 0 {
		errs = append(errs, fmt.Errorf("timing.input_cooldown must not be negative, got %d", c.Timing.InputCooldown))
	}
	if c.Input.HoldTicks < 0 {
		errs = append(errs, fmt.Errorf("input.hold_ticks must not be negative, got %d", c.Input.HoldTicks))
	}
	return errors.Join(errs...)
}
