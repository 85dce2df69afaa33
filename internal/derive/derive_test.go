package derive

import (
	"testing"

	"github.com/jadiha/little-prince/internal/models"
	"github.com/jadiha/little-prince/internal/testutil"
)

func TestRoseStateZeroGoalsIsFullBloom(t *testing.T) {
	stars := []models.Star{{ID: "s1", GoalID: "gone", Date: "2020-01-01"}}
	for _, today := range []string{"2024-01-01", "2030-06-15"} {
		if got := RoseState(nil, stars, today); got != models.RoseFullBloom {
			t.Fatalf("expected fullBloom with no goals on %s, got %s", today, got)
		}
		if got := RoseState(nil, nil, today); got != models.RoseFullBloom {
			t.Fatalf("expected fullBloom with no goals and no stars, got %s", got)
		}
	}
}

func TestStateForScoreThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  models.RoseState
	}{
		{100, models.RoseFullBloom},
		{85, models.RoseFullBloom},
		{84.9, models.RoseBlooming},
		{60, models.RoseBlooming},
		{59.9, models.RoseBudding},
		{40, models.RoseBudding},
		{39.9, models.RoseWilting},
		{20, models.RoseWilting},
		{19.9, models.RoseRevival},
		{0, models.RoseRevival},
		{114.3, models.RoseFullBloom},
	}
	for _, tc := range cases {
		if got := StateForScore(tc.score); got != tc.want {
			t.Fatalf("StateForScore(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestScoreCountsWindowInclusiveOfCutoff(t *testing.T) {
	goal := testutil.NewGoal().WithLogs("2023-12-25", "2023-12-24").Build()
	stars := testutil.StarsFor(goal)
	// cutoff is 2023-12-25: the 24th falls outside, the 25th inside
	got := Score([]models.Goal{goal}, stars, "2024-01-01")
	want := 100.0 / 7
	if got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("Score = %f, want %f", got, want)
	}
}

func TestRoseStateDailyTendingIsFullBloom(t *testing.T) {
	goal := testutil.NewGoal().WithLogs(testutil.Days("2024-01-07", 7)...).Build()
	stars := testutil.StarsFor(goal)
	if got := RoseState([]models.Goal{goal}, stars, "2024-01-07"); got != models.RoseFullBloom {
		t.Fatalf("expected fullBloom after 7 daily logs, got %s", got)
	}
}

func TestRoseStateMonotonicDecay(t *testing.T) {
	goal := testutil.NewGoal().WithLogs(testutil.Days("2024-01-07", 7)...).Build()
	goals := []models.Goal{goal}
	stars := testutil.StarsFor(goal)

	seen := map[models.RoseState]bool{}
	prev := RoseState(goals, stars, "2024-01-07")
	seen[prev] = true
	for i := 1; i <= 10; i++ {
		day := mustShift(t, "2024-01-07", i)
		state := RoseState(goals, stars, day)
		if state.Rank() > prev.Rank() {
			t.Fatalf("rose improved from %s to %s on %s without new logs", prev, state, day)
		}
		seen[state] = true
		prev = state
	}
	if prev != models.RoseRevival {
		t.Fatalf("expected revival once the window empties, got %s", prev)
	}
	for _, s := range []models.RoseState{models.RoseBlooming, models.RoseBudding, models.RoseWilting} {
		if !seen[s] {
			t.Fatalf("expected decay to pass through %s", s)
		}
	}
}

func mustShift(t *testing.T, day string, n int) string {
	t.Helper()
	out, ok := shift(day, n)
	if !ok {
		t.Fatalf("shift(%s, %d) failed", day, n)
	}
	return out
}

func TestIsGoalTendedToday(t *testing.T) {
	goal := testutil.NewGoal().WithName("Run").WithLogs("2024-01-01").Build()
	if !IsGoalTendedToday(goal, "2024-01-01") {
		t.Fatalf("expected tended on 2024-01-01")
	}
	if IsGoalTendedToday(goal, "2024-01-02") {
		t.Fatalf("expected not tended on 2024-01-02")
	}
}

func TestDaysSinceTended(t *testing.T) {
	never := testutil.NewGoal().Build()
	if got := DaysSinceTended(never, "2024-01-10"); got != NeverTended {
		t.Fatalf("expected NeverTended, got %d", got)
	}
	today := testutil.NewGoal().WithLogs("2024-01-09", "2024-01-10").Build()
	if got := DaysSinceTended(today, "2024-01-10"); got != 0 {
		t.Fatalf("expected 0 when tended today, got %d", got)
	}
	stale := testutil.NewGoal().WithLogs("2024-01-01", "2024-01-04").Build()
	if got := DaysSinceTended(stale, "2024-01-10"); got != 6 {
		t.Fatalf("expected 6 days since last log, got %d", got)
	}
	ahead := testutil.NewGoal().WithLogs("2024-01-05").Build()
	if got := DaysSinceTended(ahead, "2024-01-03"); got != 0 {
		t.Fatalf("expected a future-dated log to clamp to 0, got %d", got)
	}
	if !(GoalStatus{DaysSince: NeverTended}).Never() {
		t.Fatalf("expected Never() for NeverTended status")
	}
}

func TestCurrentStreak(t *testing.T) {
	a := testutil.NewGoal().WithID("a").WithLogs("2024-01-08", "2024-01-10").Build()
	b := testutil.NewGoal().WithID("b").WithLogs("2024-01-09", "2024-01-06").Build()
	stars := testutil.StarsFor(a, b)
	// today, -1, -2 present; -3 (2024-01-07) missing
	if got := CurrentStreak(stars, "2024-01-10"); got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
	if got := CurrentStreak(stars, "2024-01-11"); got != 0 {
		t.Fatalf("expected streak 0 when today has no star, got %d", got)
	}
	if got := CurrentStreak(nil, "2024-01-10"); got != 0 {
		t.Fatalf("expected streak 0 with no stars, got %d", got)
	}
}

func TestCurrentStreakCountsDaysNotStars(t *testing.T) {
	a := testutil.NewGoal().WithID("a").WithLogs("2024-01-09", "2024-01-10").Build()
	b := testutil.NewGoal().WithID("b").WithLogs("2024-01-09", "2024-01-10").Build()
	if got := CurrentStreak(testutil.StarsFor(a, b), "2024-01-10"); got != 2 {
		t.Fatalf("expected streak 2 across two goals, got %d", got)
	}
}

func TestLongestStreak(t *testing.T) {
	g := testutil.NewGoal().WithLogs("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05", "2024-01-31", "2024-02-01").Build()
	if got := LongestStreak(testutil.StarsFor(g)); got != 3 {
		t.Fatalf("expected longest streak 3, got %d", got)
	}
	if got := LongestStreak(nil); got != 0 {
		t.Fatalf("expected 0 for no stars, got %d", got)
	}
}

func TestShouldShowFox(t *testing.T) {
	// 2024-01-05 is a Friday in the week of 2024-01-01
	if !ShouldShowFox(nil, "2024-01-05") {
		t.Fatalf("expected fox on an unanswered Friday")
	}
	if ShouldShowFox(nil, "2024-01-04") {
		t.Fatalf("expected no fox on Thursday")
	}
	answered := []models.WeeklyReflection{{WeekOf: "2024-01-01", FoxAnswer: "my rose"}}
	if ShouldShowFox(answered, "2024-01-05") {
		t.Fatalf("expected no fox once the week is answered")
	}
	if !ShouldShowFox(answered, "2024-01-12") {
		t.Fatalf("expected fox on the following Friday")
	}
}

func TestSummarize(t *testing.T) {
	run := testutil.NewGoal().WithID("run").WithName("Run").WithLogs("2024-01-09", "2024-01-10").Build()
	read := testutil.NewGoal().WithID("read").WithName("Read").Build()
	goals := []models.Goal{run, read}
	s := Summarize(goals, testutil.StarsFor(run), "2024-01-10")
	if s.TotalStars != 2 || s.Streak != 2 || s.LongestStreak != 2 {
		t.Fatalf("unexpected summary counts: %+v", s)
	}
	if len(s.Goals) != 2 || !s.Goals[0].TendedToday || s.Goals[1].TendedToday {
		t.Fatalf("unexpected goal statuses: %+v", s.Goals)
	}
	if !s.Goals[1].Never() || s.Goals[1].Index != 1 {
		t.Fatalf("expected second goal never tended at index 1: %+v", s.Goals[1])
	}
	if s.Rose != models.RoseRevival {
		t.Fatalf("expected revival for 2 of 14 possible days, got %s", s.Rose)
	}
	if _, idx, ok := FindGoal(goals, "read"); !ok || idx != 1 {
		t.Fatalf("FindGoal(read) = %d, %v", idx, ok)
	}
	if len(StarsByGoal(testutil.StarsFor(run), "read")) != 0 {
		t.Fatalf("expected no stars for read")
	}
}
