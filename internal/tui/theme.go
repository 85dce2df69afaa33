package tui

import (
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/jadiha/little-prince/internal/models"
	"github.com/jadiha/little-prince/internal/prince"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Goal      lipgloss.Style
	Tended    lipgloss.Style
	Input     lipgloss.Style
	Prince    lipgloss.Style
	Star      lipgloss.Style
	Fox       lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Rose      map[models.RoseState]lipgloss.Style
}

var Themes = map[string]Theme{
	"night": {
		Name:      "Night",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("222")).Bold(true),
		Goal:      lipgloss.NewStyle().Foreground(lipgloss.Color("253")),
		Tended:    lipgloss.NewStyle().Foreground(lipgloss.Color("222")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("222")).Padding(0, 1).Width(50),
		Prince:    lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Italic(true),
		Star:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		Fox:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("222")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Rose: map[models.RoseState]lipgloss.Style{
			models.RoseFullBloom: lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
			models.RoseBlooming:  lipgloss.NewStyle().Foreground(lipgloss.Color("211")),
			models.RoseBudding:   lipgloss.NewStyle().Foreground(lipgloss.Color("218")),
			models.RoseWilting:   lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
			models.RoseRevival:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	},
	"dawn": {
		Name:      "Dawn",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("217"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("168")).Bold(true),
		Goal:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Tended:    lipgloss.NewStyle().Foreground(lipgloss.Color("172")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("168")).Padding(0, 1).Width(50),
		Prince:    lipgloss.NewStyle().Foreground(lipgloss.Color("96")).Italic(true),
		Star:      lipgloss.NewStyle().Foreground(lipgloss.Color("172")),
		Fox:       lipgloss.NewStyle().Foreground(lipgloss.Color("166")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("168")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("217")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Rose: map[models.RoseState]lipgloss.Style{
			models.RoseFullBloom: lipgloss.NewStyle().Foreground(lipgloss.Color("161")).Bold(true),
			models.RoseBlooming:  lipgloss.NewStyle().Foreground(lipgloss.Color("168")),
			models.RoseBudding:   lipgloss.NewStyle().Foreground(lipgloss.Color("175")),
			models.RoseWilting:   lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
			models.RoseRevival:   lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		},
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["night"]

// ThemeNames lists the theme keys in a stable order.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(Themes))
}

// SetTheme switches the active theme. Unknown names are ignored.
func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// RoseStyle falls back to the dim style for unknown states.
func (t Theme) RoseStyle(r models.RoseState) lipgloss.Style {
	if s, ok := t.Rose[r]; ok {
		return s
	}
	return t.Dim
}

// PlanetStyle colours text with the goal's planet colour from the catalog.
func PlanetStyle(cat prince.Catalog, style models.PlanetStyle) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Style(style).Color))
}
