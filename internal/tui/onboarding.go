package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jadiha/little-prince/internal/config"
	"github.com/jadiha/little-prince/internal/models"
	"github.com/jadiha/little-prince/internal/prince"
	"github.com/jadiha/little-prince/internal/store"
)

type onboardingStep int

const (
	stepWelcome onboardingStep = iota
	stepName
	stepGoals
)

type draftGoal struct {
	Name  string
	Style models.PlanetStyle
}

type onboardingState struct {
	step     onboardingStep
	drafts   []draftGoal
	styleIdx int
}

func (m Model) updateOnboarding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	o := &m.onboarding
	switch o.step {
	case stepWelcome:
		if msg.String() == "enter" {
			o.step = stepName
			m.input.Reset()
			m.input.Placeholder = "what should the prince call you?"
			m.input.Focus()
		}
		return m, nil

	case stepName:
		if msg.String() == "enter" {
			if name := strings.TrimSpace(m.input.Value()); name != "" {
				if err := m.store.SetUserName(m.ctx, name); err != nil {
					m.err = fmt.Errorf("save name: %w", err)
					return m, nil
				}
			}
			o.step = stepGoals
			m.input.Reset()
			m.input.Placeholder = "e.g. run every morning"
			return m, nil
		}

	case stepGoals:
		switch msg.String() {
		case "tab":
			o.styleIdx = wrap(o.styleIdx+1, len(models.PlanetStyles))
			return m, nil
		case "ctrl+x":
			if n := len(o.drafts); n > 0 {
				o.drafts = o.drafts[:n-1]
			}
			return m, nil
		case "enter":
			return m.submitDraft()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitDraft adds the typed goal to the draft list, or plants every draft
// when the input is empty.
func (m Model) submitDraft() (tea.Model, tea.Cmd) {
	o := &m.onboarding
	name := strings.TrimSpace(m.input.Value())
	if name == "" {
		if len(o.drafts) == 0 {
			m.Message = "Name at least one thing to tend."
			return m, nil
		}
		return m.plant()
	}
	if len(o.drafts) >= config.MaxOnboardingGoals {
		m.Message = fmt.Sprintf("%d planets is plenty for now.", config.MaxOnboardingGoals)
		return m, nil
	}
	if err := store.ValidateGoalName(name); err != nil {
		m.Message = err.Error()
		return m, nil
	}
	o.drafts = append(o.drafts, draftGoal{Name: name, Style: models.PlanetStyles[o.styleIdx]})
	o.styleIdx = wrap(o.styleIdx+1, len(models.PlanetStyles))
	m.input.Reset()
	return m, nil
}

func (m Model) plant() (tea.Model, tea.Cmd) {
	for _, d := range m.onboarding.drafts {
		if _, err := m.store.AddGoal(m.ctx, d.Name, d.Style, nil); err != nil {
			m.err = fmt.Errorf("add goal: %w", err)
			return m, nil
		}
	}
	if err := m.store.CompleteOnboarding(m.ctx); err != nil {
		m.err = fmt.Errorf("complete onboarding: %w", err)
		return m, nil
	}
	m.onboarding = onboardingState{}
	m.input.Reset()
	m.input.Blur()
	m.screen = ScreenUniverse
	m.cursor = 0
	return m, m.ask(prince.ContextMorning, nil)
}

func (m Model) renderOnboarding() string {
	t := m.theme
	var b strings.Builder
	o := m.onboarding

	switch o.step {
	case stepWelcome:
		b.WriteString(t.Dim.Render(`"What is essential is invisible to the eye."`) + "\n\n")
		b.WriteString(t.Prince.Render("Hello.") + "\n")
		b.WriteString(t.Prince.Render("I have been waiting for someone who tends things carefully.") + "\n\n")
		b.WriteString(t.Focused.Render("[enter] I am here"))

	case stepName:
		b.WriteString(t.Header.Render("Before we begin") + "\n\n")
		b.WriteString(m.input.View() + "\n\n")
		b.WriteString(t.Dim.Render("[enter] continue (a name is optional)"))

	case stepGoals:
		b.WriteString(t.Header.Render("What do you want to tend to?") + "\n")
		b.WriteString(t.Dim.Render("These are your goals. Each becomes a planet in your universe.") + "\n\n")
		for i, d := range o.drafts {
			style := m.catalog.Style(d.Style)
			b.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, PlanetStyle(m.catalog, d.Style).Render("●"), d.Name) + t.Dim.Render("   "+style.Label) + "\n")
		}
		if len(o.drafts) < config.MaxOnboardingGoals {
			style := m.catalog.Style(models.PlanetStyles[o.styleIdx])
			b.WriteString("\n" + m.input.View() + "\n")
			b.WriteString(PlanetStyle(m.catalog, style.ID).Render("● "+style.Label) + t.Dim.Render("  "+style.Description) + "\n")
		}
		b.WriteString("\n" + t.Dim.Render("[enter] add  [tab] style  [ctrl+x] remove last  [enter on empty] plant my rose"))
	}
	if m.Message != "" {
		b.WriteString("\n\n" + t.Highlight.Render(m.Message))
	}
	return b.String()
}
