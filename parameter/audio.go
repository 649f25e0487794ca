package parameter

import "time"

// Audio output
const (
	AudioSampleRate     = 48000
	AudioBufferDuration = 100 * time.Millisecond
)

// Thunder rumble
const (
	ThunderDuration    = 2500 * time.Millisecond
	ThunderAttack      = 40 * time.Millisecond
	ThunderCutoffHz    = 120.0
	ThunderCrackleHz   = 900.0
	ThunderCrackleTime = 150 * time.Millisecond
	ThunderVolume      = 0.6
)
