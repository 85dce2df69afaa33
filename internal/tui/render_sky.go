package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jadiha/little-prince/internal/models"
	"github.com/jadiha/little-prince/internal/prince"
	"github.com/jadiha/little-prince/internal/sky"
)

// skyExtent is the largest coordinate a star can have on any axis.
const skyExtent = sky.MaxRadius

type skyCell struct {
	glyph rune
	goal  string
}

// projectStar maps a position onto a w*h grid looking down the z axis.
func projectStar(p models.Position, w, h int) (col, row int) {
	col = int((p.X + skyExtent) / (2 * skyExtent) * float64(w-1))
	row = int((skyExtent - p.Y) / (2 * skyExtent) * float64(h-1))
	if col < 0 {
		col = 0
	} else if col >= w {
		col = w - 1
	}
	if row < 0 {
		row = 0
	} else if row >= h {
		row = h - 1
	}
	return col, row
}

// skyGrid places every star. Later stars overwrite earlier ones and the most
// recent star of today is drawn brighter.
func skyGrid(stars []models.Star, today string, w, h int) [][]skyCell {
	grid := make([][]skyCell, h)
	for i := range grid {
		grid[i] = make([]skyCell, w)
	}
	if w <= 0 || h <= 0 {
		return grid
	}
	// the rose sits in the middle of the sky
	grid[h/2][w/2] = skyCell{glyph: '❀'}

	for _, s := range stars {
		col, row := projectStar(s.Position, w, h)
		glyph := '·'
		if s.Position.Z > 0 {
			glyph = '*'
		}
		if s.Date == today {
			glyph = '✦'
		}
		if grid[row][col].glyph == '❀' {
			continue
		}
		grid[row][col] = skyCell{glyph: glyph, goal: s.GoalID}
	}
	return grid
}

func (m Model) renderSky(goals []models.Goal, stars []models.Star, today string, w, h int) string {
	styles := make(map[string]lipgloss.Style, len(goals))
	for _, g := range goals {
		styles[g.ID] = PlanetStyle(m.catalog, g.Style)
	}
	rose := m.theme.RoseStyle(m.store.RoseState())

	grid := skyGrid(stars, today, w, h)
	var b strings.Builder
	for r, line := range grid {
		for _, c := range line {
			switch {
			case c.glyph == 0:
				b.WriteByte(' ')
			case c.glyph == '❀':
				b.WriteString(rose.Render(string(c.glyph)))
			default:
				style, ok := styles[c.goal]
				if !ok {
					style = m.theme.Star
				}
				b.WriteString(style.Render(string(c.glyph)))
			}
		}
		if r < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// planetColor is used for story planets in lists.
func planetColor(p prince.StoryPlanet) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color))
}
