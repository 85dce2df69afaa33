package derive

import "github.com/jadiha/little-prince/internal/models"

// GoalStatus bundles the per-goal values a renderer needs.
type GoalStatus struct {
	Goal        models.Goal
	Index       int
	TendedToday bool
	DaysSince   int
	LogCount    int
}

// Never reports whether the goal has never been tended.
func (s GoalStatus) Never() bool {
	return s.DaysSince == NeverTended
}

// GoalStatuses derives status for every goal in order.
func GoalStatuses(goals []models.Goal, today string) []GoalStatus {
	out := make([]GoalStatus, 0, len(goals))
	for i, g := range goals {
		out = append(out, GoalStatus{
			Goal:        g,
			Index:       i,
			TendedToday: IsGoalTendedToday(g, today),
			DaysSince:   DaysSinceTended(g, today),
			LogCount:    len(g.Logs),
		})
	}
	return out
}

// Summary is the whole-sky view used by the status command and the report.
type Summary struct {
	Today         string
	Rose          models.RoseState
	Score         float64
	Streak        int
	LongestStreak int
	TotalStars    int
	Goals         []GoalStatus
}

// Summarize derives every headline value at once.
func Summarize(goals []models.Goal, stars []models.Star, today string) Summary {
	return Summary{
		Today:         today,
		Rose:          RoseState(goals, stars, today),
		Score:         Score(goals, stars, today),
		Streak:        CurrentStreak(stars, today),
		LongestStreak: LongestStreak(stars),
		TotalStars:    len(stars),
		Goals:         GoalStatuses(goals, today),
	}
}
