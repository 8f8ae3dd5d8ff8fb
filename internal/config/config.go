// Package config provides YAML-based configuration loading for textdrive.
package config

// DriveConfig contains all configuration for a TextDrive session.
type DriveConfig struct {
	Course CourseConfig `yaml:"course"`
	Player PlayerConfig `yaml:"player"`
	Timing TimingConfig `yaml:"timing"`
	Input  InputConfig  `yaml:"input"`
}

// CourseConfig defines the course dimensions and how rows are generated.
type CourseConfig struct {
	Cols        int      `yaml:"cols"`
	VisibleRows int      `yaml:"visible_rows"`
	Prefill     bool     `yaml:"prefill"`
	Policy      string   `yaml:"policy"`   // "pattern" or "path"
	Patterns    []string `yaml:"patterns"` // '■' or '#' is a wall, anything else open
}

// PlayerConfig defines where the player sits.
type PlayerConfig struct {
	Row         int `yaml:"row"`
	StartColumn int `yaml:"start_column"` // -1 = center lane
}

// TimingConfig defines tick-based timings.
type TimingConfig struct {
	TickRate      int `yaml:"tick_rate"`      // Ticks per second
	ScrollPeriod  int `yaml:"scroll_period"`  // Ticks between scroll events
	InputCooldown int `yaml:"input_cooldown"` // Ticks between accepted lateral moves
}

// InputConfig defines how terminal key presses become held actions.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a key press stays active
}
