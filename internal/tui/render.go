package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jadiha/little-prince/internal/derive"
	"github.com/jadiha/little-prince/internal/store"
)

// Layout constants.
const (
	goalPaneWidth = 34
	minSkyWidth   = 24
	defaultSkyW   = 48
	defaultSkyH   = 14
)

func (m Model) renderHeader(sum derive.Summary, snap store.Snapshot) string {
	t := m.theme
	greeting := "Asteroid B-612"
	if name := snap.Profile.UserName; name != "" {
		greeting = name + "'s sky"
	}
	if m.returning {
		greeting += t.Dim.Render("  welcome back")
	}
	rose := t.RoseStyle(sum.Rose).Render("❀ " + sum.Rose.Label())
	stats := t.Dim.Render(fmt.Sprintf("%s  ·  streak %s  ·  %s", sum.Today, FormatStreak(sum.Streak), FormatStarCount(sum.TotalStars)))
	return t.Header.Render(greeting) + "   " + rose + "\n" + stats
}

func (m Model) renderGoalList(statuses []derive.GoalStatus) string {
	t := m.theme
	if len(statuses) == 0 {
		return t.Dim.Render("No planets yet.\nPress a to add one.")
	}
	var b strings.Builder
	for i, st := range statuses {
		cursor := "  "
		nameStyle := t.Goal
		if i == m.cursor {
			cursor = t.Focused.Render("> ")
			nameStyle = t.Focused
		}
		mark := PlanetStyle(m.catalog, st.Goal.Style).Render("●")
		if st.TendedToday {
			mark = t.Tended.Render("✦")
		}
		name := ansi.Truncate(st.Goal.Name, goalPaneWidth-6, "…")
		b.WriteString(cursor + mark + " " + nameStyle.Render(name) + "\n")
		b.WriteString("    " + t.Dim.Render(fmt.Sprintf("%s · %s", FormatLastTended(st), FormatStarCount(st.LogCount))))
		if i < len(statuses)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderPrince() string {
	t := m.theme
	switch {
	case m.waiting && m.princeLine == "":
		return t.Dim.Render("the little prince is thinking…")
	case m.princeLine == "":
		return ""
	}
	return t.Prince.Render("“" + m.princeLine + "”")
}

func (m Model) renderFooter() string {
	var lines []string
	if m.Message != "" {
		lines = append(lines, m.theme.Highlight.Render(m.Message))
	}
	help := m.keys.HelpFor(m.screen)
	if m.width > 0 {
		help = ansi.Truncate(help, m.width-4, "…")
	}
	lines = append(lines, m.theme.Dim.Render(help))
	return strings.Join(lines, "\n")
}

func (m Model) skySize() (int, int) {
	w, h := defaultSkyW, defaultSkyH
	if m.width > 0 {
		w = m.width - goalPaneWidth - 10
		if w < minSkyWidth {
			w = minSkyWidth
		}
	}
	if m.height > 0 {
		h = m.height - 14
		if h < 8 {
			h = 8
		}
	}
	return w, h
}

func (m Model) renderUniverse() string {
	snap := m.store.Snapshot()
	sum := snap.Summary()
	t := m.theme

	pane := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1)
	goals := pane.Width(goalPaneWidth).Render(m.renderGoalList(sum.Goals))
	w, h := m.skySize()
	skyView := pane.Render(m.renderSky(snap.Goals, snap.Stars, snap.Today, w, h))

	var b strings.Builder
	b.WriteString(m.renderHeader(sum, snap) + "\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, goals, " ", skyView) + "\n\n")
	b.WriteString(t.RoseStyle(sum.Rose).Render("rose ") + m.rose.ViewAs(roseFraction(sum.Score)) + t.Dim.Render(" "+FormatScore(sum.Score)) + "\n")
	if line := m.renderPrince(); line != "" {
		b.WriteString("\n" + line + "\n")
	}
	b.WriteString("\n" + m.renderFooter())
	return b.String()
}

func roseFraction(score float64) float64 {
	f := score / 100
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func (m Model) renderRose() string {
	snap := m.store.Snapshot()
	sum := snap.Summary()
	t := m.theme

	var b strings.Builder
	b.WriteString(t.Header.Render("Your rose") + "\n\n")
	b.WriteString(t.RoseStyle(sum.Rose).Render("❀ "+sum.Rose.Label()) + "\n")
	b.WriteString(m.rose.ViewAs(roseFraction(sum.Score)) + t.Dim.Render(fmt.Sprintf(" %s of the last %d days tended", FormatScore(sum.Score), derive.WindowDays)) + "\n\n")
	b.WriteString(fmt.Sprintf("Current streak  %s\n", FormatStreak(sum.Streak)))
	b.WriteString(fmt.Sprintf("Longest streak  %s\n", FormatStreak(sum.LongestStreak)))
	b.WriteString(fmt.Sprintf("Stars released  %d\n\n", sum.TotalStars))
	for _, st := range sum.Goals {
		b.WriteString(PlanetStyle(m.catalog, st.Goal.Style).Render("● ") + st.Goal.Name + t.Dim.Render("  "+FormatLastTended(st)) + "\n")
	}
	if refl := snap.Reflections; len(refl) > 0 {
		last := refl[len(refl)-1]
		b.WriteString("\n" + t.Fox.Render("Week of "+last.WeekOf) + "\n")
		b.WriteString(last.FoxAnswer + "\n")
		if last.PrinceResponse != "" {
			b.WriteString(t.Prince.Render("“"+last.PrinceResponse+"”") + "\n")
		}
	}
	b.WriteString("\n" + m.renderFooter())
	return b.String()
}

func (m Model) renderPlanets() string {
	t := m.theme
	var b strings.Builder
	b.WriteString(t.Header.Render("The grown-ups' planets") + "\n\n")
	for i, p := range m.catalog.Planets {
		cursor := "  "
		if i == m.planetCursor {
			cursor = t.Focused.Render("> ")
		}
		b.WriteString(cursor + planetColor(p).Render("●") + " " + p.Character + t.Dim.Render("  "+p.Number) + "\n")
	}
	if len(m.catalog.Planets) > 0 {
		p := m.catalog.Planets[indexOr0(m.planetCursor, len(m.catalog.Planets))]
		wrapW := 70
		if m.width > 0 && m.width-6 < wrapW {
			wrapW = m.width - 6
		}
		b.WriteString("\n" + t.Highlight.Render(p.Trap) + "\n")
		b.WriteString(lipgloss.NewStyle().Width(wrapW).Render(p.Lesson) + "\n")
		b.WriteString(t.Dim.Render(p.Quote) + "\n")
	}
	if line := m.renderPrince(); line != "" {
		b.WriteString("\n" + line + "\n")
	}
	b.WriteString("\n" + m.renderFooter())
	return b.String()
}

func indexOr0(i, n int) int {
	if i < 0 || i >= n {
		return 0
	}
	return i
}
