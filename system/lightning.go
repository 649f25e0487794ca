package system

import (
	"math/rand/v2"

	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/parameter/visual"
	"github.com/lixenwraith/weathr/particle"
	"github.com/lixenwraith/weathr/render"
)

// LightningState is a phase of the strike cycle
type LightningState uint8

const (
	LightningIdle LightningState = iota
	LightningForming
	LightningStrike
	LightningFlash
	LightningFading
)

func (s LightningState) String() string {
	switch s {
	case LightningIdle:
		return "idle"
	case LightningForming:
		return "forming"
	case LightningStrike:
		return "strike"
	case LightningFlash:
		return "flash"
	case LightningFading:
		return "fading"
	default:
		return "unknown"
	}
}

// Segment is one cell of a bolt path
type Segment struct {
	X, Y  int
	Glyph rune
}

// Bolt is a generated strike path that fades out with age
type Bolt struct {
	Segments []Segment
	Age      int
	MaxAge   int
}

// LightningSystem runs Idle -> Forming -> Strike -> Flash -> Fading -> Idle,
// keeping at most LightningMaxBolts bolts
type LightningSystem struct {
	state    LightningState
	timer    int
	next     int
	flashing bool
	bolts    []Bolt

	// OnStrike is called once per strike when set
	OnStrike func()
}

func NewLightningSystem(rng *rand.Rand) *LightningSystem {
	return &LightningSystem{
		next: parameter.LightningInitialDelayMin + particle.IntN(rng, parameter.LightningInitialDelayRange),
	}
}

// State returns the current phase
func (s *LightningSystem) State() LightningState {
	return s.state
}

// Flashing reports whether the full-scene flash is active
func (s *LightningSystem) Flashing() bool {
	return s.flashing
}

// Bolts returns the live bolt count
func (s *LightningSystem) Bolts() int {
	return len(s.bolts)
}

// Reset returns to Idle with no bolts, keeping the pending delay
func (s *LightningSystem) Reset() {
	s.state = LightningIdle
	s.timer = 0
	s.flashing = false
	s.bolts = s.bolts[:0]
}

// Step advances the state machine by one tick
func (s *LightningSystem) Step(b particle.Bounds, rng *rand.Rand) {
	switch s.state {
	case LightningIdle:
		if s.timer >= s.next {
			s.state = LightningForming
			s.timer = 0
			s.push(generateBolt(b, rng))
		} else {
			s.timer++
		}

	case LightningForming:
		s.state = LightningStrike

	case LightningStrike:
		s.flashing = true
		s.state = LightningFlash
		if s.OnStrike != nil {
			s.OnStrike()
		}

	case LightningFlash:
		if s.timer > parameter.LightningFlashTicks {
			s.flashing = false
			s.state = LightningFading
			s.timer = 0
		} else {
			s.timer++
		}

	case LightningFading:
		live := s.bolts[:0]
		for _, bolt := range s.bolts {
			bolt.Age++
			if bolt.Age < bolt.MaxAge {
				live = append(live, bolt)
			}
		}
		s.bolts = live
		if len(s.bolts) == 0 {
			s.state = LightningIdle
			s.timer = 0
			s.next = parameter.LightningDelayMin + particle.IntN(rng, parameter.LightningDelayRange)
		}
	}
}

func (s *LightningSystem) push(bolt Bolt) {
	if len(bolt.Segments) == 0 {
		return
	}
	if len(s.bolts) >= parameter.LightningMaxBolts {
		copy(s.bolts, s.bolts[1:])
		s.bolts = s.bolts[:len(s.bolts)-1]
	}
	s.bolts = append(s.bolts, bolt)
}

// Draw paints every live bolt, white while flashing and yellow otherwise
func (s *LightningSystem) Draw(cv render.Canvas) {
	color := visual.Yellow
	if s.flashing {
		color = visual.White
	}
	for _, bolt := range s.bolts {
		for _, seg := range bolt.Segments {
			cv.Put(seg.X, seg.Y, seg.Glyph, color)
		}
	}
}

func (s *LightningSystem) Tick(b particle.Bounds, rng *rand.Rand, cv render.Canvas) {
	s.Step(b, rng)
	s.Draw(cv)
}

// generateBolt walks down from a random top anchor, drifting one column per
// row and occasionally forking a short diagonal branch
func generateBolt(b particle.Bounds, rng *rand.Rand) Bolt {
	bolt := Bolt{MaxAge: parameter.LightningBoltMaxAge}
	if b.Width <= 2*parameter.LightningSideMargin || b.Height <= parameter.LightningGroundMargin+parameter.LightningTopRow {
		return bolt
	}

	x := particle.IntN(rng, b.Width-2*parameter.LightningSideMargin) + parameter.LightningSideMargin
	y := parameter.LightningTopRow
	bolt.Segments = append(bolt.Segments, Segment{X: x, Y: y, Glyph: '+'})

	for y < b.Height-parameter.LightningGroundMargin {
		dir := rng.IntN(3) - 1
		x += dir
		y++
		if x < parameter.LightningEdgeClamp {
			x = parameter.LightningEdgeClamp
		}
		if x >= b.Width-parameter.LightningEdgeClamp {
			x = b.Width - parameter.LightningEdgeClamp - 1
		}
		bolt.Segments = append(bolt.Segments, Segment{X: x, Y: y, Glyph: boltGlyph(dir)})

		if particle.Chance(rng, parameter.LightningBranchChance) {
			bdir := -dir
			if bdir == 0 {
				bdir = 1
				if rng.IntN(2) == 0 {
					bdir = -1
				}
			}
			bx, by := x+bdir, y+1
			for range parameter.LightningBranchLength {
				if by >= b.Height-parameter.LightningBranchMinRows {
					break
				}
				bolt.Segments = append(bolt.Segments, Segment{X: bx, Y: by, Glyph: boltGlyph(bdir)})
				bx += bdir
				by++
			}
		}
	}
	return bolt
}

func boltGlyph(dir int) rune {
	switch {
	case dir < 0:
		return '/'
	case dir > 0:
		return '\\'
	default:
		return '|'
	}
}
