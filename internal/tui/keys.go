package tui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jadiha/little-prince/internal/database"
	"github.com/jadiha/little-prince/internal/models"
	"github.com/jadiha/little-prince/internal/prince"
)

var (
	universeOnly = []Screen{ScreenUniverse}
	listScreens  = []Screen{ScreenUniverse, ScreenPlanets}
	subScreens   = []Screen{ScreenRose, ScreenPlanets}
)

func defaultKeys() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "q", Handler: quit, Description: "quit"})
	r.Register(KeyBinding{Key: "esc", Handler: back, Screens: subScreens, Description: "back", Priority: 1})
	r.Register(KeyBinding{Key: "up", Handler: moveCursor(-1), Screens: listScreens})
	r.Register(KeyBinding{Key: "k", Handler: moveCursor(-1), Screens: listScreens})
	r.Register(KeyBinding{Key: "down", Handler: moveCursor(1), Screens: listScreens})
	r.Register(KeyBinding{Key: "j", Handler: moveCursor(1), Screens: listScreens})
	r.Register(KeyBinding{Key: "enter", Handler: openCheckIn, Screens: universeOnly, Description: "tend"})
	r.Register(KeyBinding{Key: "enter", Handler: visitPlanet, Screens: []Screen{ScreenPlanets}, Description: "visit"})
	r.Register(KeyBinding{Key: "a", Handler: openAddGoal, Screens: universeOnly, Description: "add planet"})
	r.Register(KeyBinding{Key: "r", Handler: openRename, Screens: universeOnly, Description: "rename"})
	r.Register(KeyBinding{Key: "o", Handler: switchScreen(ScreenRose), Screens: universeOnly, Description: "rose"})
	r.Register(KeyBinding{Key: "p", Handler: switchScreen(ScreenPlanets), Screens: universeOnly, Description: "planets"})
	r.Register(KeyBinding{Key: "f", Handler: openFoxKey, Screens: universeOnly, Description: "fox"})
	r.Register(KeyBinding{Key: "m", Handler: callPrince, Screens: universeOnly, Description: "prince"})
	r.Register(KeyBinding{Key: "t", Handler: cycleTheme, Screens: []Screen{ScreenUniverse, ScreenRose, ScreenPlanets}, Description: "theme"})
	r.Register(KeyBinding{Key: "R", Handler: writeReport, Screens: []Screen{ScreenUniverse, ScreenRose}, Description: "report"})
	return r
}

func quit(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func back(m Model, _ string) (Model, tea.Cmd, bool) {
	m.screen = ScreenUniverse
	return m, nil, true
}

func switchScreen(s Screen) KeyHandler {
	return func(m Model, _ string) (Model, tea.Cmd, bool) {
		m.screen = s
		return m, nil, true
	}
}

func moveCursor(delta int) KeyHandler {
	return func(m Model, _ string) (Model, tea.Cmd, bool) {
		if m.screen == ScreenPlanets {
			m.planetCursor = wrap(m.planetCursor+delta, len(m.catalog.Planets))
			return m, nil, true
		}
		m.cursor = wrap(m.cursor+delta, len(m.store.Goals()))
		return m, nil, true
	}
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// selectedGoal returns the goal under the cursor.
func (m Model) selectedGoal() (models.Goal, bool) {
	goals := m.store.Goals()
	if m.cursor < 0 || m.cursor >= len(goals) {
		return models.Goal{}, false
	}
	return goals[m.cursor], true
}

func openCheckIn(m Model, _ string) (Model, tea.Cmd, bool) {
	g, ok := m.selectedGoal()
	if !ok {
		m.Message = "No planets yet. Press a to add one."
		return m, nil, true
	}
	m.openModal(&CheckInState{GoalID: g.ID}, "a few words, if you like…", "")
	return m, nil, true
}

func openAddGoal(m Model, _ string) (Model, tea.Cmd, bool) {
	m.openModal(&AddGoalState{}, "what do you want to tend to?", "")
	return m, nil, true
}

func openRename(m Model, _ string) (Model, tea.Cmd, bool) {
	g, ok := m.selectedGoal()
	if !ok {
		return m, nil, true
	}
	m.openModal(&RenameState{GoalID: g.ID}, "new name", g.Name)
	return m, nil, true
}

func openFoxKey(m Model, _ string) (Model, tea.Cmd, bool) {
	return m.openFox(), nil, true
}

func callPrince(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.waiting {
		return m, nil, true
	}
	cmd := m.ask(prince.ContextMorning, nil)
	return m, cmd, true
}

func visitPlanet(m Model, _ string) (Model, tea.Cmd, bool) {
	if len(m.catalog.Planets) == 0 || m.waiting {
		return m, nil, true
	}
	p := m.catalog.Planets[m.planetCursor]
	cmd := m.ask(prince.ContextStoryPlanet, prince.Visiting(p.ID))
	return m, cmd, true
}

func writeReport(m Model, _ string) (Model, tea.Cmd, bool) {
	snap := m.store.Snapshot()
	cat := m.catalog
	path := filepath.Join(m.reportDir, ReportFileName(snap.Today, time.Now()))
	return m, func() tea.Msg {
		return reportMsg{Path: path, Err: WriteSkyReport(path, snap, cat)}
	}, true
}

// cycleTheme moves to the next theme and remembers it for the next start.
func cycleTheme(m Model, _ string) (Model, tea.Cmd, bool) {
	names := ThemeNames()
	next := names[0]
	for i, n := range names {
		if n == m.themeName {
			next = names[(i+1)%len(names)]
			break
		}
	}
	m.themeName = next
	m.theme = Themes[next]
	if m.settings != nil {
		if err := m.settings.SetSetting(m.ctx, database.SettingTheme, &next); err != nil {
			m.err = fmt.Errorf("save theme: %w", err)
			return m, nil, true
		}
	}
	m.Message = "Theme: " + m.theme.Name
	return m, nil, true
}
