package prince

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/jadiha/little-prince/internal/models"
)

//go:embed catalog.toml
var catalogTOML []byte

// StyleDef describes how a planet style is presented.
type StyleDef struct {
	ID          models.PlanetStyle `toml:"id"`
	Label       string             `toml:"label"`
	Description string             `toml:"description"`
	Color       string             `toml:"color"`
	Emissive    string             `toml:"emissive"`
	Ring        string             `toml:"ring"`
}

// StoryPlanet is one of the grown-ups' planets the user can visit.
type StoryPlanet struct {
	ID          string  `toml:"id"`
	Number      string  `toml:"number"`
	Character   string  `toml:"character"`
	Trap        string  `toml:"trap"`
	Lesson      string  `toml:"lesson"`
	Quote       string  `toml:"quote"`
	Color       string  `toml:"color"`
	OrbitRadius float64 `toml:"orbit_radius"`
	OrbitSpeed  float64 `toml:"orbit_speed"`
	OrbitPhase  float64 `toml:"orbit_phase"`
}

// Catalog holds the static world data.
type Catalog struct {
	Styles  []StyleDef    `toml:"style"`
	Planets []StoryPlanet `toml:"planet"`
}

// ParseCatalog decodes catalog data in the embedded TOML layout.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	for _, s := range c.Styles {
		if !s.ID.Valid() {
			return Catalog{}, fmt.Errorf("parse catalog: unknown style %q", s.ID)
		}
	}
	return c, nil
}

var (
	catalogOnce sync.Once
	catalog     Catalog
)

// DefaultCatalog returns the embedded catalog. The embedded file is part of
// the binary, so a parse failure is a build defect.
func DefaultCatalog() Catalog {
	catalogOnce.Do(func() {
		c, err := ParseCatalog(catalogTOML)
		if err != nil {
			panic(err)
		}
		catalog = c
	})
	return catalog
}

// Style returns the definition for id, or the first style when unknown.
func (c Catalog) Style(id models.PlanetStyle) StyleDef {
	for _, s := range c.Styles {
		if s.ID == id {
			return s
		}
	}
	if len(c.Styles) == 0 {
		return StyleDef{ID: id, Label: string(id)}
	}
	return c.Styles[0]
}

// Planet looks up a story planet by id.
func (c Catalog) Planet(id string) (StoryPlanet, bool) {
	for _, p := range c.Planets {
		if p.ID == id {
			return p, true
		}
	}
	return StoryPlanet{}, false
}
