package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jadiha/little-prince/internal/derive"
	"github.com/jadiha/little-prince/internal/models"
	"github.com/jadiha/little-prince/internal/prince"
	"github.com/jadiha/little-prince/internal/store"
	"github.com/jadiha/little-prince/internal/util"
)

func (m *Model) openModal(s ModalState, placeholder, value string) {
	m.modal = s
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.Focus()
}

func (m *Model) closeModal() {
	m.modal = nil
	m.input.Reset()
	m.input.Blur()
}

func (m Model) openFox() Model {
	m.openModal(&FoxState{}, "write freely, the prince is listening…", "")
	return m
}

func newReflection(answer, reply string) models.WeeklyReflection {
	return models.WeeklyReflection{FoxAnswer: answer, PrinceResponse: reply}
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if fox, ok := m.modal.(*FoxState); ok && fox.Submitted {
			// the reply still arrives and is stored
			return m, nil
		}
		m.closeModal()
		return m, nil
	case "enter":
		return m.submitModal()
	case "tab":
		if s, ok := m.modal.(*AddGoalState); ok {
			s.StyleIdx = wrap(s.StyleIdx+1, len(models.PlanetStyles))
			return m, nil
		}
	}
	if fox, ok := m.modal.(*FoxState); ok && fox.Submitted {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitModal() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch s := m.modal.(type) {
	case *CheckInState:
		return m.submitCheckIn(s.GoalID, value)

	case *FoxState:
		if s.Submitted || value == "" {
			return m, nil
		}
		s.Submitted = true
		s.Answer = value
		m.waiting = true
		req := prince.BuildRequest(prince.ContextWeeklyFox, m.store.Snapshot(), prince.FoxAnswer(value))
		return m, foxCmd(m.ctx, m.prince, req, value)

	case *AddGoalState:
		if err := store.ValidateGoalName(value); err != nil {
			m.Message = err.Error()
			return m, nil
		}
		g, err := m.store.AddGoal(m.ctx, value, models.PlanetStyles[s.StyleIdx], nil)
		if err != nil {
			m.err = fmt.Errorf("add goal: %w", err)
			return m, nil
		}
		m.closeModal()
		m.cursor = len(m.store.Goals()) - 1
		m.Message = fmt.Sprintf("A new planet: %s", g.Name)
		return m, nil

	case *RenameState:
		if err := store.ValidateGoalName(value); err != nil {
			m.Message = err.Error()
			return m, nil
		}
		if _, err := m.store.UpdateGoalName(m.ctx, s.GoalID, value); err != nil {
			m.err = fmt.Errorf("rename goal: %w", err)
			return m, nil
		}
		m.closeModal()
		return m, nil
	}
	return m, nil
}

func (m Model) submitCheckIn(goalID, note string) (tea.Model, tea.Cmd) {
	res, err := m.store.LogDay(m.ctx, goalID, util.OptionalString(note))
	if err != nil {
		m.err = fmt.Errorf("log day: %w", err)
		return m, nil
	}
	m.closeModal()
	switch res.Outcome {
	case store.LogCreated:
		m.Message = "a star was released. it is yours forever"
		g, _ := m.store.Goal(goalID)
		return m, m.ask(prince.ContextAfterLog, prince.AfterLog(g.Name, util.OptionalString(note)))
	case store.LogAlreadyLogged:
		m.Message = "Your rose is tended today. Come back tomorrow."
	default:
		m.Message = "That planet is gone."
	}
	return m, nil
}

func (m Model) renderModal() string {
	t := m.theme
	var b strings.Builder

	switch s := m.modal.(type) {
	case *CheckInState:
		g, ok := m.store.Goal(s.GoalID)
		if !ok {
			return ""
		}
		b.WriteString(PlanetStyle(m.catalog, g.Style).Bold(true).Render(g.Name) + "\n")
		st := derive.GoalStatuses([]models.Goal{g}, m.store.Today())[0]
		if st.TendedToday {
			b.WriteString(t.Tended.Render("Your rose is tended today.") + "\n")
			b.WriteString(t.Dim.Render("Come back tomorrow.  [esc]"))
			break
		}
		b.WriteString(t.Dim.Render("last tended "+FormatLastTended(st)) + "\n")
		if stars := derive.StarsByGoal(m.store.Stars(), g.ID); len(stars) > 0 {
			b.WriteString(t.Star.Render(fmt.Sprintf("%s in the sky since %s", FormatStarCount(len(stars)), stars[0].Date)) + "\n")
		}
		b.WriteString(m.input.View() + "\n")
		b.WriteString(t.Dim.Render("[enter] I showed up today  [esc] not now"))

	case *FoxState:
		b.WriteString(t.Fox.Render("the fox speaks") + "\n")
		b.WriteString(t.Header.Render("What did you tame this week?") + "\n")
		b.WriteString(t.Dim.Render(`"You become responsible, forever, for what you have tamed."`) + "\n\n")
		if s.Submitted {
			b.WriteString(t.Prince.Render("the prince is reading…"))
			break
		}
		b.WriteString(m.input.View() + "\n")
		b.WriteString(t.Dim.Render("[enter] give it to the prince  [esc] later"))

	case *AddGoalState:
		style := m.catalog.Style(models.PlanetStyles[s.StyleIdx])
		b.WriteString(t.Header.Render("A new planet") + "\n")
		b.WriteString(m.input.View() + "\n")
		b.WriteString(PlanetStyle(m.catalog, style.ID).Render("● "+style.Label) + t.Dim.Render("  "+style.Description) + "\n")
		b.WriteString(t.Dim.Render("[tab] style  [enter] plant  [esc] cancel"))

	case *RenameState:
		b.WriteString(t.Header.Render("Rename planet") + "\n")
		b.WriteString(m.input.View() + "\n")
		b.WriteString(t.Dim.Render("[enter] save  [esc] cancel"))
	}
	return t.Input.Width(56).Render(b.String())
}
