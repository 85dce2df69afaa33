// Package derive computes presentation values from raw goal and star history.
// Every function is pure: "today" is always an explicit YYYY-MM-DD argument.
package derive

import (
	"math"
	"time"

	"github.com/jadiha/little-prince/internal/models"
	"github.com/jadiha/little-prince/internal/util"
)

// WindowDays is the length of the rolling tending window.
const WindowDays = 7

// NeverTended is returned by DaysSinceTended for goals without logs. It sorts
// after every real day count.
const NeverTended = math.MaxInt

// Rose thresholds, in percent of possible tending days.
const (
	FullBloomThreshold = 85.0
	BloomingThreshold  = 60.0
	BuddingThreshold   = 40.0
	WiltingThreshold   = 20.0
)

// shift moves day by n days; ok is false for malformed input.
func shift(day string, n int) (string, bool) {
	out, err := util.AddDays(day, n)
	if err != nil {
		return "", false
	}
	return out, true
}

// WindowStart is the earliest date that still counts toward the rose score.
func WindowStart(today string) string {
	cutoff, ok := shift(today, -WindowDays)
	if !ok {
		return today
	}
	return cutoff
}

// Score is the 7-day tending rate across all goals, in percent. It is not
// clamped: the one-log-per-goal-per-day invariant keeps it near 100 at most.
func Score(goals []models.Goal, stars []models.Star, today string) float64 {
	if len(goals) == 0 {
		return 100
	}
	cutoff := WindowStart(today)
	logged := 0
	for _, s := range stars {
		// fixed-width dates compare correctly as strings
		if s.Date >= cutoff {
			logged++
		}
	}
	possible := len(goals) * WindowDays
	return float64(logged) / float64(possible) * 100
}

// StateForScore maps a score onto the rose's bloom state.
func StateForScore(score float64) models.RoseState {
	switch {
	case score >= FullBloomThreshold:
		return models.RoseFullBloom
	case score >= BloomingThreshold:
		return models.RoseBlooming
	case score >= BuddingThreshold:
		return models.RoseBudding
	case score >= WiltingThreshold:
		return models.RoseWilting
	default:
		return models.RoseRevival
	}
}

// RoseState returns fullBloom when no goals exist; an empty commitment set is
// not a failure.
func RoseState(goals []models.Goal, stars []models.Star, today string) models.RoseState {
	if len(goals) == 0 {
		return models.RoseFullBloom
	}
	return StateForScore(Score(goals, stars, today))
}

// IsGoalTendedToday reports whether goal has a log dated today.
func IsGoalTendedToday(goal models.Goal, today string) bool {
	for _, l := range goal.Logs {
		if l.Date == today {
			return true
		}
	}
	return false
}

// DaysSinceTended is 0 when tended today, NeverTended without logs, and
// otherwise the calendar-day gap to the most recent (last appended) log.
func DaysSinceTended(goal models.Goal, today string) int {
	if len(goal.Logs) == 0 {
		return NeverTended
	}
	if IsGoalTendedToday(goal, today) {
		return 0
	}
	last := goal.Logs[len(goal.Logs)-1]
	days, err := util.DaysBetween(last.Date, today)
	if err != nil {
		return NeverTended
	}
	// a log dated after today (clock skew, imported dump) counts as today
	if days < 0 {
		return 0
	}
	return days
}

// CurrentStreak counts consecutive days with at least one star, walking back
// from today. A day without a star today yields 0 even if yesterday had one.
func CurrentStreak(stars []models.Star, today string) int {
	if len(stars) == 0 {
		return 0
	}
	dates := make(map[string]struct{}, len(stars))
	for _, s := range stars {
		dates[s.Date] = struct{}{}
	}
	streak := 0
	cursor := today
	for {
		if _, ok := dates[cursor]; !ok {
			return streak
		}
		streak++
		prev, ok := shift(cursor, -1)
		if !ok {
			return streak
		}
		cursor = prev
	}
}

// LongestStreak is the longest run of consecutive starred days in history.
func LongestStreak(stars []models.Star) int {
	dates := make(map[string]struct{}, len(stars))
	for _, s := range stars {
		dates[s.Date] = struct{}{}
	}
	best := 0
	for d := range dates {
		prev, ok := shift(d, -1)
		if !ok {
			continue
		}
		if _, hasPrev := dates[prev]; hasPrev {
			continue
		}
		run := 0
		cursor := d
		for {
			if _, ok := dates[cursor]; !ok {
				break
			}
			run++
			next, ok := shift(cursor, 1)
			if !ok {
				break
			}
			cursor = next
		}
		if run > best {
			best = run
		}
	}
	return best
}

// StarsByGoal filters stars released by goalID, preserving order.
func StarsByGoal(stars []models.Star, goalID string) []models.Star {
	var out []models.Star
	for _, s := range stars {
		if s.GoalID == goalID {
			out = append(out, s)
		}
	}
	return out
}

// FindGoal returns the goal with id and its index in the current ordering.
func FindGoal(goals []models.Goal, id string) (models.Goal, int, bool) {
	for i, g := range goals {
		if g.ID == id {
			return g, i, true
		}
	}
	return models.Goal{}, -1, false
}

// ShouldShowFox is true on Fridays when this ISO week has no reflection yet.
func ShouldShowFox(reflections []models.WeeklyReflection, today string) bool {
	wd, err := util.Weekday(today)
	if err != nil || wd != time.Friday {
		return false
	}
	week, err := util.WeekStart(today)
	if err != nil {
		return false
	}
	for _, r := range reflections {
		if r.WeekOf == week {
			return false
		}
	}
	return true
}
