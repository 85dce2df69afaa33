package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jadiha/little-prince/internal/database"
	"github.com/jadiha/little-prince/internal/prince"
	"github.com/jadiha/little-prince/internal/store"
	"github.com/jadiha/little-prince/internal/util"
)

// Screen is the top-level page being shown.
type Screen int

const (
	ScreenOnboarding Screen = iota
	ScreenUniverse
	ScreenRose
	ScreenPlanets
)

// Model is the root bubbletea model. It reads the store through snapshots and
// turns key presses into store operations.
type Model struct {
	ctx          context.Context
	store        *store.Store
	prince       *prince.Service
	catalog      prince.Catalog
	keys         *HandlerRegistry
	theme        Theme
	themeName    string
	settings     database.SettingsRepository
	screen       Screen
	modal        ModalState
	onboarding   onboardingState
	input        textinput.Model
	rose         progress.Model
	cursor       int
	planetCursor int
	princeLine   string
	fallback     bool
	waiting      bool
	greet        bool
	returning    bool
	reportDir    string
	Message      string
	err          error
	width        int
	height       int
}

// Option configures a Model.
type Option func(*Model)

func WithTheme(name string) Option {
	return func(m *Model) {
		if t, ok := Themes[name]; ok {
			m.theme = t
			m.themeName = name
		}
	}
}

// WithSettings persists the theme picked with the theme key.
func WithSettings(s database.SettingsRepository) Option {
	return func(m *Model) { m.settings = s }
}

func WithCatalog(c prince.Catalog) Option {
	return func(m *Model) { m.catalog = c }
}

// WithReportDir sets where the report key writes PDFs.
func WithReportDir(dir string) Option {
	return func(m *Model) { m.reportDir = dir }
}

// NewModel records today's visit and picks the first screen from the
// persisted onboarding flag.
func NewModel(ctx context.Context, st *store.Store, svc *prince.Service, opts ...Option) Model {
	ti := textinput.New()
	ti.CharLimit = 280
	ti.Width = 46

	m := Model{
		ctx:       ctx,
		store:     st,
		prince:    svc,
		catalog:   prince.DefaultCatalog(),
		keys:      defaultKeys(),
		theme:     CurrentTheme,
		themeName: "night",
		input:     ti,
		rose:      progress.New(progress.WithGradient("#7a5c3a", "#f2a7b5"), progress.WithoutPercentage()),
	}
	m.rose.Width = 30
	for _, opt := range opts {
		opt(&m)
	}

	p := st.Profile()
	m.greet = p.LastVisitDate == nil || *p.LastVisitDate != st.Today()
	returning, err := st.RecordVisit(ctx)
	if err != nil {
		m.err = fmt.Errorf("record visit: %w", err)
	}
	m.returning = returning

	if st.InitialView() == store.ViewOnboarding {
		m.screen = ScreenOnboarding
	} else {
		m.screen = ScreenUniverse
		if st.FoxDue() {
			m = m.openFox()
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.screen == ScreenOnboarding {
		return textinput.Blink
	}
	if m.greet {
		return m.ask(prince.ContextMorning, nil)
	}
	return nil
}

// ask snapshots the store and sends a flavor-text request.
func (m *Model) ask(c prince.Context, payload *prince.Payload) tea.Cmd {
	m.waiting = true
	req := prince.BuildRequest(c, m.store.Snapshot(), payload)
	return speakCmd(m.ctx, m.prince, req)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		target := 30
		if m.width < 80 {
			target = m.width / 3
		}
		m.rose.Width = util.Clamp(target, 10, 30)
		return m, nil

	case princeMsg:
		return m.handlePrince(msg)

	case reportMsg:
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.Message = "Sky report written to " + msg.Path
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.err != nil {
			m.err = nil
			return m, nil
		}
		m.Message = ""
		if m.modal != nil {
			return m.updateModal(msg)
		}
		if m.screen == ScreenOnboarding {
			return m.updateOnboarding(msg)
		}
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}

	if m.modal != nil || m.screen == ScreenOnboarding {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handlePrince(msg princeMsg) (tea.Model, tea.Cmd) {
	m.waiting = false
	m.princeLine = msg.Reply.Message
	m.fallback = msg.Reply.Fallback
	if msg.FoxAnswer == nil {
		return m, nil
	}

	added, err := m.store.AddReflection(m.ctx, newReflection(*msg.FoxAnswer, msg.Reply.Message))
	if err != nil {
		m.err = fmt.Errorf("save reflection: %w", err)
	} else if !added {
		m.Message = "This week already has a reflection."
	}
	if m.modal != nil && m.modal.Type() == ModalFox {
		m.closeModal()
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return m.theme.Base.Render(m.theme.Error.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" + m.theme.Dim.Render("Press any key to continue."))
	}
	var body string
	switch m.screen {
	case ScreenOnboarding:
		body = m.renderOnboarding()
	case ScreenRose:
		body = m.renderRose()
	case ScreenPlanets:
		body = m.renderPlanets()
	default:
		body = m.renderUniverse()
	}
	if m.modal != nil {
		body += "\n\n" + m.renderModal()
	}
	return m.theme.Base.Render(body)
}

// Run starts the full-screen program.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx)).Run()
	return err
}
