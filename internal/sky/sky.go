// Package sky places newly released stars. Each goal owns an angular sector of
// a spherical shell so its stars cluster into a distinct constellation.
package sky

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jadiha/little-prince/internal/models"
)

// Shell bounds. Goal planets orbit inside MinRadius.
const (
	MinRadius = 12.0
	MaxRadius = 18.0

	// SectorSpread is the share of a sector that jitter may cover, centred in
	// the sector so neighbouring constellations never touch.
	SectorSpread = 0.8
)

// Spherical is a point in (radius, polar, azimuth) form.
type Spherical struct {
	Radius  float64
	Polar   float64 // theta, [0, π]
	Azimuth float64 // phi, [0, 2π)
}

// Cartesian converts to the renderer's coordinate system (y up).
func (s Spherical) Cartesian() models.Position {
	sinPolar := math.Sin(s.Polar)
	return models.Position{
		X: s.Radius * sinPolar * math.Cos(s.Azimuth),
		Y: s.Radius * math.Cos(s.Polar),
		Z: s.Radius * sinPolar * math.Sin(s.Azimuth),
	}
}

// Generator draws star positions from its own random source. It is safe for
// concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a generator driven by src. A nil src seeds from the clock.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
	return &Generator{rng: rand.New(src)}
}

// NewSeeded returns a deterministic generator, mainly for tests.
func NewSeeded(seed uint64) *Generator {
	return NewGenerator(rand.NewPCG(seed, seed+1))
}

// Sector returns the azimuth bounds [start, end) owned by goalIndex.
func Sector(goalIndex, totalGoals int) (start, end float64) {
	width := sectorWidth(totalGoals)
	start = float64(goalIndex) * width
	return start, start + width
}

func sectorWidth(totalGoals int) float64 {
	if totalGoals < 1 {
		totalGoals = 1
	}
	return 2 * math.Pi / float64(totalGoals)
}

// Sample draws the spherical coordinates of a new star for goalIndex.
func (g *Generator) Sample(goalIndex, totalGoals int) Spherical {
	g.mu.Lock()
	u1, u2, u3 := g.rng.Float64(), g.rng.Float64(), g.rng.Float64()
	g.mu.Unlock()
	return place(goalIndex, totalGoals, u1, u2, u3)
}

// Generate returns the Cartesian position of a new star for goalIndex.
func (g *Generator) Generate(goalIndex, totalGoals int) models.Position {
	return g.Sample(goalIndex, totalGoals).Cartesian()
}

// place maps three uniform variates in [0, 1) onto the goal's sector.
func place(goalIndex, totalGoals int, u1, u2, u3 float64) Spherical {
	width := sectorWidth(totalGoals)
	start, _ := Sector(goalIndex, totalGoals)
	return Spherical{
		Azimuth: start + width/2 + (u1-0.5)*width*SectorSpread,
		// acos of a uniform variate is uniform over the sphere surface
		Polar:  math.Acos(2*u2 - 1),
		Radius: MinRadius + u3*(MaxRadius-MinRadius),
	}
}
