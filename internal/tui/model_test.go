package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jadiha/little-prince/internal/database"
	"github.com/jadiha/little-prince/internal/models"
	"github.com/jadiha/little-prince/internal/prince"
	"github.com/jadiha/little-prince/internal/sky"
	"github.com/jadiha/little-prince/internal/store"
	"github.com/jadiha/little-prince/internal/testutil"
)

func first(int) int { return 0 }

func testIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func setupStore(t *testing.T, clock *testutil.Clock) *store.Store {
	t.Helper()
	st, err := store.Open(context.Background(), nil,
		store.WithClock(clock.Func()),
		store.WithIDs(testIDs()),
		store.WithSky(sky.NewSeeded(7)),
		store.WithLocation(time.UTC),
	)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return st
}

// onboardedStore has finished onboarding and owns the named goals.
func onboardedStore(t *testing.T, clock *testutil.Clock, names ...string) *store.Store {
	t.Helper()
	ctx := context.Background()
	st := setupStore(t, clock)
	for _, n := range names {
		if _, err := st.AddGoal(ctx, n, models.StyleAmberHealth, nil); err != nil {
			t.Fatalf("AddGoal failed: %v", err)
		}
	}
	if err := st.CompleteOnboarding(ctx); err != nil {
		t.Fatalf("CompleteOnboarding failed: %v", err)
	}
	return st
}

func newTestModel(st *store.Store) Model {
	svc := prince.NewService(nil, prince.WithPicker(first))
	return NewModel(context.Background(), st, svc, WithReportDir(""))
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(keyMsg(k))
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return out, cmd
}

// deliver runs cmd and feeds its message back into the model.
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	next, _ := m.Update(cmd())
	return next.(Model)
}

func TestNewModelStartsInOnboarding(t *testing.T) {
	m := newTestModel(setupStore(t, testutil.NewClock("2024-01-01")))
	if m.screen != ScreenOnboarding {
		t.Fatalf("expected onboarding screen, got %v", m.screen)
	}
	if m.Init() == nil {
		t.Fatalf("expected blink command")
	}
	if !strings.Contains(m.View(), "I am here") {
		t.Fatalf("expected welcome view, got:\n%s", m.View())
	}
}

func TestOnboardingPlantsGoals(t *testing.T) {
	st := setupStore(t, testutil.NewClock("2024-01-01"))
	m := newTestModel(st)

	m, _ = press(t, m, "enter")
	if m.onboarding.step != stepName {
		t.Fatalf("expected name step")
	}
	m.input.SetValue("  Leon  ")
	m, _ = press(t, m, "enter")
	if st.Profile().UserName != "Leon" {
		t.Fatalf("expected trimmed user name, got %q", st.Profile().UserName)
	}

	m.input.SetValue("Run")
	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "tab")
	m.input.SetValue("Read")
	m, _ = press(t, m, "enter")
	if len(m.onboarding.drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(m.onboarding.drafts))
	}

	m, cmd := press(t, m, "enter")
	if m.screen != ScreenUniverse {
		t.Fatalf("expected universe after planting, got %v", m.screen)
	}
	goals := st.Goals()
	if len(goals) != 2 || goals[0].Name != "Run" || goals[1].Name != "Read" {
		t.Fatalf("unexpected goals: %+v", goals)
	}
	if goals[0].Style != models.StyleAmberHealth || goals[1].Style != models.StylePurpleCreativity {
		t.Fatalf("unexpected styles %s, %s", goals[0].Style, goals[1].Style)
	}
	if !st.Profile().Onboarding.Completed || st.InitialView() != store.ViewUniverse {
		t.Fatalf("onboarding not completed")
	}

	m = deliver(t, m, cmd)
	if m.princeLine != prince.Fallbacks(prince.ContextMorning)[0] || !m.fallback {
		t.Fatalf("expected morning fallback, got %q", m.princeLine)
	}
}

func TestOnboardingRequiresAGoal(t *testing.T) {
	m := newTestModel(setupStore(t, testutil.NewClock("2024-01-01")))
	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "enter")
	if m.screen != ScreenOnboarding || m.Message == "" {
		t.Fatalf("expected to stay in onboarding with a hint")
	}
}

func TestOnboardingCapsDrafts(t *testing.T) {
	m := newTestModel(setupStore(t, testutil.NewClock("2024-01-01")))
	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "enter")
	for i := 0; i < 6; i++ {
		m.input.SetValue(fmt.Sprintf("Goal %d", i))
		m, _ = press(t, m, "enter")
	}
	if len(m.onboarding.drafts) != 5 {
		t.Fatalf("expected 5 drafts, got %d", len(m.onboarding.drafts))
	}
	if !strings.Contains(m.Message, "plenty") {
		t.Fatalf("expected cap message, got %q", m.Message)
	}

	m, _ = press(t, m, "ctrl+x")
	if len(m.onboarding.drafts) != 4 {
		t.Fatalf("expected last draft removed")
	}
}

func TestCheckInShowsStarsOfGoal(t *testing.T) {
	clock := testutil.NewClock("2024-01-01")
	st := onboardedStore(t, clock, "Run", "Read")
	goals := st.Goals()
	for _, id := range []string{goals[0].ID, goals[1].ID} {
		if _, err := st.LogDay(context.Background(), id, nil); err != nil {
			t.Fatalf("LogDay failed: %v", err)
		}
	}
	clock.AdvanceDays(2)
	if _, err := st.LogDay(context.Background(), goals[1].ID, nil); err != nil {
		t.Fatalf("LogDay failed: %v", err)
	}

	m := newTestModel(st)
	m, _ = press(t, m, "enter")
	view := m.View()
	if !strings.Contains(view, "1 star in the sky since 2024-01-01") {
		t.Fatalf("expected star count for Run only:\n%s", view)
	}
	if !strings.Contains(view, "last tended 2 days ago") {
		t.Fatalf("expected last tended line:\n%s", view)
	}
}

func TestCheckInLogsDay(t *testing.T) {
	st := onboardedStore(t, testutil.NewClock("2024-01-01"), "Run")
	m := newTestModel(st)
	if m.screen != ScreenUniverse || m.modal != nil {
		t.Fatalf("expected universe without modal")
	}

	m, _ = press(t, m, "enter")
	if m.modal == nil || m.modal.Type() != ModalCheckIn {
		t.Fatalf("expected check-in modal")
	}
	m.input.SetValue("easy 5k")
	m, cmd := press(t, m, "enter")
	if m.modal != nil {
		t.Fatalf("expected modal closed")
	}
	g := st.Goals()[0]
	if len(g.Logs) != 1 || g.Logs[0].Note == nil || *g.Logs[0].Note != "easy 5k" {
		t.Fatalf("unexpected logs: %+v", g.Logs)
	}
	if len(st.Stars()) != 1 {
		t.Fatalf("expected one star")
	}

	m = deliver(t, m, cmd)
	if m.princeLine != prince.Fallbacks(prince.ContextAfterLog)[0] {
		t.Fatalf("expected afterLog line, got %q", m.princeLine)
	}

	m, _ = press(t, m, "enter")
	if !strings.Contains(m.View(), "tended today") {
		t.Fatalf("expected tended notice in modal:\n%s", m.View())
	}
	m, cmd = press(t, m, "enter")
	if cmd != nil || !strings.Contains(m.Message, "Come back tomorrow") {
		t.Fatalf("expected already-logged message, got %q", m.Message)
	}
	if len(st.Stars()) != 1 {
		t.Fatalf("second check-in must not add a star")
	}
}

func TestCheckInWithoutGoals(t *testing.T) {
	m := newTestModel(onboardedStore(t, testutil.NewClock("2024-01-01")))
	m, _ = press(t, m, "enter")
	if m.modal != nil || !strings.Contains(m.Message, "No planets") {
		t.Fatalf("expected hint instead of modal")
	}
}

func TestFoxOpensOnFridayAndStoresReflection(t *testing.T) {
	// 2024-01-05 is a Friday
	st := onboardedStore(t, testutil.NewClock("2024-01-05"), "Run")
	m := newTestModel(st)
	if m.modal == nil || m.modal.Type() != ModalFox {
		t.Fatalf("expected fox modal on Friday")
	}

	m, cmd := press(t, m, "enter")
	if cmd != nil {
		t.Fatalf("empty answer must not be sent")
	}
	m.input.SetValue("my sister")
	m, cmd = press(t, m, "enter")
	if fox := m.modal.(*FoxState); !fox.Submitted || fox.Answer != "my sister" {
		t.Fatalf("expected submitted fox state")
	}
	m, _ = press(t, m, "esc")
	if m.modal == nil {
		t.Fatalf("submitted fox modal waits for the reply")
	}

	m = deliver(t, m, cmd)
	if m.modal != nil {
		t.Fatalf("expected fox modal closed after reply")
	}
	refl := st.Reflections()
	if len(refl) != 1 || refl[0].WeekOf != "2024-01-01" || refl[0].FoxAnswer != "my sister" {
		t.Fatalf("unexpected reflections: %+v", refl)
	}
	if refl[0].PrinceResponse != prince.Fallbacks(prince.ContextWeeklyFox)[0] {
		t.Fatalf("unexpected prince response %q", refl[0].PrinceResponse)
	}
	if st.FoxDue() {
		t.Fatalf("fox should not be due after answering")
	}
}

func TestAddAndRenameGoal(t *testing.T) {
	st := onboardedStore(t, testutil.NewClock("2024-01-01"), "Run")
	m := newTestModel(st)

	m, _ = press(t, m, "a")
	m, _ = press(t, m, "enter")
	if m.modal == nil || m.Message == "" {
		t.Fatalf("empty name must keep the modal open with a message")
	}
	m.input.SetValue("Paint")
	m, _ = press(t, m, "tab")
	m, _ = press(t, m, "enter")
	goals := st.Goals()
	if len(goals) != 2 || goals[1].Name != "Paint" || goals[1].Style != models.StyleBlueLearning {
		t.Fatalf("unexpected goals: %+v", goals)
	}
	if m.cursor != 1 {
		t.Fatalf("expected cursor on the new goal, got %d", m.cursor)
	}

	m, _ = press(t, m, "r")
	if m.input.Value() != "Paint" {
		t.Fatalf("rename should prefill the current name")
	}
	m.input.SetValue("Paint daily")
	m, _ = press(t, m, "enter")
	if g, _ := st.Goal(goals[1].ID); g.Name != "Paint daily" {
		t.Fatalf("rename not applied: %q", g.Name)
	}
	if m.modal != nil {
		t.Fatalf("expected modal closed")
	}
}

func TestEscClosesModal(t *testing.T) {
	m := newTestModel(onboardedStore(t, testutil.NewClock("2024-01-01"), "Run"))
	m, _ = press(t, m, "a")
	m, _ = press(t, m, "esc")
	if m.modal != nil {
		t.Fatalf("expected modal closed")
	}
}

func TestCursorWraps(t *testing.T) {
	m := newTestModel(onboardedStore(t, testutil.NewClock("2024-01-01"), "Run", "Read"))
	m, _ = press(t, m, "k")
	if m.cursor != 1 {
		t.Fatalf("expected wrap to last goal, got %d", m.cursor)
	}
	m, _ = press(t, m, "j")
	if m.cursor != 0 {
		t.Fatalf("expected wrap to first goal, got %d", m.cursor)
	}
}

func TestStoryPlanetVisit(t *testing.T) {
	m := newTestModel(onboardedStore(t, testutil.NewClock("2024-01-01"), "Run"))
	m, _ = press(t, m, "p")
	if m.screen != ScreenPlanets {
		t.Fatalf("expected planets screen")
	}
	m, _ = press(t, m, "j")
	if m.planetCursor != 1 {
		t.Fatalf("expected second planet selected")
	}
	if !strings.Contains(m.View(), m.catalog.Planets[1].Character) {
		t.Fatalf("expected planet list in view")
	}
	m, cmd := press(t, m, "enter")
	if !m.waiting {
		t.Fatalf("expected waiting for the prince")
	}
	msg := cmd().(princeMsg)
	if msg.Context != prince.ContextStoryPlanet {
		t.Fatalf("unexpected context %s", msg.Context)
	}
	m, _ = press(t, m, "esc")
	if m.screen != ScreenUniverse {
		t.Fatalf("expected back to universe")
	}
}

func TestVisitTrackingAndGreeting(t *testing.T) {
	clock := testutil.NewClock("2024-01-01")
	st := onboardedStore(t, clock, "Run")

	m := newTestModel(st)
	if m.returning || !m.greet || m.Init() == nil {
		t.Fatalf("first visit: returning=%v greet=%v", m.returning, m.greet)
	}
	m = newTestModel(st)
	if m.returning || m.greet || m.Init() != nil {
		t.Fatalf("same-day visit should neither greet nor count as returning")
	}
	clock.AdvanceDays(1)
	m = newTestModel(st)
	if !m.returning || !m.greet {
		t.Fatalf("next-day visit should greet a returning user")
	}
	if !strings.Contains(m.View(), "welcome back") {
		t.Fatalf("expected welcome back in header")
	}
}

func TestUniverseView(t *testing.T) {
	st := onboardedStore(t, testutil.NewClock("2024-01-01"), "Run", "Read")
	m := newTestModel(st)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	view := m.View()
	for _, want := range []string{"Run", "Read", "never", "[a] add planet", models.RoseRevival.Label()} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}

	m, _ = press(t, m, "o")
	if m.screen != ScreenRose || !strings.Contains(m.View(), "Longest streak") {
		t.Fatalf("expected rose screen")
	}
}

func TestErrorClearedOnKey(t *testing.T) {
	m := newTestModel(onboardedStore(t, testutil.NewClock("2024-01-01")))
	m.err = fmt.Errorf("boom")
	if !strings.Contains(m.View(), "boom") {
		t.Fatalf("expected error view")
	}
	m, _ = press(t, m, "x")
	if m.err != nil {
		t.Fatalf("expected error cleared")
	}
}

type memorySettings struct {
	values map[string]string
	err    error
}

func (s *memorySettings) GetSetting(_ context.Context, key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, s.err
}

func (s *memorySettings) SetSetting(_ context.Context, key string, value *string) error {
	if s.err != nil {
		return s.err
	}
	if value == nil {
		delete(s.values, key)
		return nil
	}
	s.values[key] = *value
	return nil
}

func TestThemeKeyCyclesAndSaves(t *testing.T) {
	settings := &memorySettings{values: map[string]string{}}
	st := onboardedStore(t, testutil.NewClock("2024-01-01"), "Run")
	m := NewModel(context.Background(), st, nil, WithTheme("night"), WithSettings(settings))

	m, _ = press(t, m, "t")
	if m.theme.Name != "Dawn" || settings.values[database.SettingTheme] != "dawn" {
		t.Fatalf("expected dawn saved, theme=%q settings=%v", m.theme.Name, settings.values)
	}
	if !strings.Contains(m.Message, "Dawn") {
		t.Fatalf("expected theme message, got %q", m.Message)
	}
	m, _ = press(t, m, "t")
	if m.theme.Name != "Night" || settings.values[database.SettingTheme] != "night" {
		t.Fatalf("expected night saved, theme=%q settings=%v", m.theme.Name, settings.values)
	}

	settings.err = fmt.Errorf("disk full")
	m, _ = press(t, m, "t")
	if m.err == nil || !strings.Contains(m.err.Error(), "save theme") {
		t.Fatalf("expected save error, got %v", m.err)
	}
}

func TestReportKeyWritesPDF(t *testing.T) {
	st := onboardedStore(t, testutil.NewClock("2024-01-01"), "Run")
	m := NewModel(context.Background(), st, nil, WithReportDir(t.TempDir()))
	m, cmd := press(t, m, "R")
	msg := cmd().(reportMsg)
	if msg.Err != nil {
		t.Fatalf("report failed: %v", msg.Err)
	}
	next, _ := m.Update(msg)
	if !strings.Contains(next.(Model).Message, msg.Path) {
		t.Fatalf("expected report path in message")
	}
}
