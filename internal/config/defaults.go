package config

import (
	_ "embed"
	"slices"

	"github.com/vovakirdan/textdrive/internal/course"
)

//go:embed defaults/textdrive.yaml
var defaultDriveYAML []byte

// DefaultDriveConfig returns the default configuration: 9 lanes, 15 rows,
// a scroll every 10 ticks at 60 ticks per second and a 5 tick key repeat
// delay.
func DefaultDriveConfig() DriveConfig {
	return DriveConfig{
		Course: CourseConfig{
			Cols:        9,
			VisibleRows: 15,
			Prefill:     false,
			Policy:      course.PolicyPattern,
			Patterns:    slices.Clone(course.DefaultPatterns),
		},
		Player: PlayerConfig{
			Row:         13,
			StartColumn: -1,
		},
		Timing: TimingConfig{
			TickRate:      60,
			ScrollPeriod:  10,
			InputCooldown: 5,
		},
		Input: InputConfig{
			HoldTicks: 6,
		},
	}
}
