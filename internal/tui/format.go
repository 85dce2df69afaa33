package tui

import (
	"fmt"

	"github.com/jadiha/little-prince/internal/derive"
)

// FormatLastTended describes how long ago a goal was tended.
func FormatLastTended(s derive.GoalStatus) string {
	switch {
	case s.Never():
		return "never"
	case s.DaysSince <= 0:
		return "today"
	case s.DaysSince == 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", s.DaysSince)
	}
}

// FormatStreak formats a streak count for display (e.g., "1 day", "4 days").
func FormatStreak(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// FormatScore renders the rolling tending rate. Scores above 100 are shown
// as they are.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.0f%%", score)
}

// FormatStarCount formats star counts for display.
func FormatStarCount(n int) string {
	switch n {
	case 0:
		return "no stars yet"
	case 1:
		return "1 star"
	default:
		return fmt.Sprintf("%d stars", n)
	}
}
