package system

import (
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/parameter/visual"
	"github.com/lixenwraith/weathr/particle"
	"github.com/lixenwraith/weathr/render"
)

var cloudShapes = [][]string{
	{
		"   .--.   ",
		" .-(    ). ",
		"(___.__)_)",
	},
	{
		"      _  _   ",
		"    ( `   )_ ",
		"   (    )    `)",
		"    \\_  (___  )",
	},
	{
		"     .--.    ",
		"  .-(    ).  ",
		" (___.__)__) ",
	},
	{
		"   _  _   ",
		"  ( `   )_ ",
		" (    )   `)",
		"  `--'     ",
	},
}

type cloud struct {
	x, y  float64
	speed float64
	shape int
}

// CloudSystem drifts multi-line clouds left to right
type CloudSystem struct {
	clouds *particle.Engine[cloud]
	color  tcell.Color
	// sparse thins the population to a few fair-weather clouds
	sparse bool
	seeded bool
}

func NewCloudSystem() *CloudSystem {
	s := &CloudSystem{color: visual.White}
	s.clouds = particle.New[cloud]((*cloudBehavior)(s))
	return s
}

// SetSky recolors every cloud without respawning and sets the density mode
func (s *CloudSystem) SetSky(color tcell.Color, sparse bool) {
	s.color = color
	s.sparse = sparse
}

// Color returns the color all clouds are drawn in
func (s *CloudSystem) Color() tcell.Color {
	return s.color
}

// Clouds returns the live count
func (s *CloudSystem) Clouds() int {
	return s.clouds.Len()
}

// MaxClouds is the population cap at width w
func (s *CloudSystem) MaxClouds(w int) int {
	if s.sparse {
		return w / parameter.CloudClearMaxDivisor
	}
	return w / parameter.CloudMaxDivisor
}

func (s *CloudSystem) Tick(b particle.Bounds, rng *rand.Rand, cv render.Canvas) {
	s.clouds.Tick(b, rng, cv)
}

type cloudBehavior CloudSystem

func (cb *cloudBehavior) Integrate(p *cloud, b particle.Bounds, rng *rand.Rand) {
	p.x += p.speed
}

func (cb *cloudBehavior) Alive(p *cloud, b particle.Bounds) bool {
	return p.x < float64(b.Width) && p.y < float64(b.Height)
}

// Spawn scatters an initial population across the sky once, then enters
// new clouds from the left edge
func (cb *cloudBehavior) Spawn(live int, b particle.Bounds, rng *rand.Rand, emit func(cloud)) {
	s := (*CloudSystem)(cb)
	if !cb.seeded {
		cb.seeded = true
		for range max(1, b.Width/parameter.CloudInitialDivisor) {
			c := newCloud(b, rng)
			c.x = float64(particle.IntN(rng, b.Width))
			emit(c)
		}
		return
	}

	chance := parameter.CloudSpawnChance
	if cb.sparse {
		chance = parameter.CloudClearChance
	}
	if live < s.MaxClouds(b.Width) && particle.Chance(rng, chance) {
		emit(newCloud(b, rng))
	}
}

func newCloud(b particle.Bounds, rng *rand.Rand) cloud {
	shape := rng.IntN(len(cloudShapes))
	return cloud{
		x:     -float64(runewidth.StringWidth(cloudShapes[shape][0])),
		y:     float64(particle.IntN(rng, max(1, b.Height/3))),
		speed: particle.Between(rng, parameter.CloudSpeedMin, parameter.CloudSpeedRange),
		shape: shape,
	}
}

// Stamp draws the whole shape; spaces inside a cloud overwrite the sky behind it
func (cb *cloudBehavior) Stamp(p *cloud, cv render.Canvas) {
	for i, line := range cloudShapes[p.shape] {
		render.PutString(cv, int(p.x), int(p.y)+i, line, cb.color)
	}
}
