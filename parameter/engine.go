package parameter

import "time"

// Frame Loop Timing
const (
	// TargetFPS is the frame rate the main loop aims for
	TargetFPS = 30

	// FramePeriod is the input poll timeout and the nominal frame interval
	FramePeriod = time.Second / TargetFPS

	// SpinnerInterval is how often the loading spinner advances
	SpinnerInterval = 100 * time.Millisecond
)

// Terminal Limits
const (
	// MinTerminalWidth below which startup fails
	MinTerminalWidth = 70

	// MinTerminalHeight below which startup fails
	MinTerminalHeight = 20
)

// HUD placement
const (
	HUDColumn = 2
	HUDRow    = 1
)

// Weather refresh
const (
	// WeatherRefreshInterval between background fetches
	WeatherRefreshInterval = 300 * time.Second
)
