package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/weathr/parameter"
)

// ThunderGenerator synthesizes a low rumble with a short crackle on top.
// Output ends after the configured duration.
type ThunderGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int

	attack  int
	crackle int

	seed uint32
	// one-pole filter state
	low  float64
	prev float64

	lowAlpha  float64
	highAlpha float64
}

// NewThunderGenerator creates a rumble; seed varies the noise
func NewThunderGenerator(sr beep.SampleRate, seed uint32) *ThunderGenerator {
	return &ThunderGenerator{
		sr:        sr,
		total:     sr.N(parameter.ThunderDuration),
		attack:    max(sr.N(parameter.ThunderAttack), 1),
		crackle:   sr.N(parameter.ThunderCrackleTime),
		seed:      seed | 1,
		lowAlpha:  onePoleAlpha(parameter.ThunderCutoffHz, sr),
		highAlpha: onePoleAlpha(parameter.ThunderCrackleHz, sr),
	}
}

// onePoleAlpha is the smoothing factor of a one-pole low-pass at cutoff
func onePoleAlpha(cutoff float64, sr beep.SampleRate) float64 {
	dt := 1 / float64(sr)
	rc := 1 / (2 * math.Pi * cutoff)
	return dt / (rc + dt)
}

func (g *ThunderGenerator) noise() float64 {
	// xorshift32
	g.seed ^= g.seed << 13
	g.seed ^= g.seed >> 17
	g.seed ^= g.seed << 5
	return float64(g.seed)/float64(math.MaxUint32)*2 - 1
}

// envelope rises linearly over the attack and then decays exponentially
func (g *ThunderGenerator) envelope() float64 {
	if g.pos < g.attack {
		return float64(g.pos) / float64(g.attack)
	}
	t := float64(g.pos-g.attack) / float64(g.total-g.attack)
	return math.Exp(-4 * t)
}

func (g *ThunderGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		white := g.noise()
		g.low += g.lowAlpha * (white - g.low)

		sample := g.low * 3
		if g.pos < g.crackle {
			// High-passed noise: the residual of a low-pass
			g.prev += g.highAlpha * (white - g.prev)
			fade := 1 - float64(g.pos)/float64(g.crackle)
			sample += 0.3 * (white - g.prev) * fade
		}

		sample = math.Max(-1, math.Min(1, sample*g.envelope()))
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThunderGenerator) Err() error {
	return nil
}

// Len is the total sample count
func (g *ThunderGenerator) Len() int {
	return g.total
}

// newThunder wraps a generator in the playback volume
func newThunder(sr beep.SampleRate, seed uint32, vol float64) beep.Streamer {
	return newVolume(NewThunderGenerator(sr, seed), vol)
}

// newVolume maps a linear gain onto effects.Volume; zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// thunderSeed derives noise variation from the wall clock
func thunderSeed(now time.Time) uint32 {
	return uint32(now.UnixNano())
}
