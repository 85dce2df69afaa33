package testutil

import (
	"fmt"
	"time"

	"github.com/jadiha/little-prince/internal/models"
	"github.com/jadiha/little-prince/internal/util"
)

// GoalBuilder provides fluent API for creating test goals.
type GoalBuilder struct {
	goal models.Goal
}

func NewGoal() *GoalBuilder {
	return &GoalBuilder{
		goal: models.Goal{
			ID:        "goal-1",
			Name:      "Test Goal",
			Style:     models.StyleAmberHealth,
			CreatedAt: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		},
	}
}

func (b *GoalBuilder) WithID(id string) *GoalBuilder {
	b.goal.ID = id
	return b
}

func (b *GoalBuilder) WithName(name string) *GoalBuilder {
	b.goal.Name = name
	return b
}

func (b *GoalBuilder) WithStyle(s models.PlanetStyle) *GoalBuilder {
	b.goal.Style = s
	return b
}

func (b *GoalBuilder) WithReason(reason string) *GoalBuilder {
	b.goal.Reason = util.Ptr(reason)
	return b
}

// WithLogs appends one log per date, in the order given.
func (b *GoalBuilder) WithLogs(dates ...string) *GoalBuilder {
	for _, d := range dates {
		b.goal.Logs = append(b.goal.Logs, models.DayLog{
			Date:   d,
			StarID: fmt.Sprintf("%s-star-%s", b.goal.ID, d),
		})
	}
	return b
}

func (b *GoalBuilder) Build() models.Goal {
	return b.goal.Clone()
}

// StarsFor returns the stars paired with every log of the given goals, in
// goal then log order.
func StarsFor(goals ...models.Goal) []models.Star {
	var stars []models.Star
	for _, g := range goals {
		for _, l := range g.Logs {
			stars = append(stars, models.Star{ID: l.StarID, GoalID: g.ID, Date: l.Date})
		}
	}
	return stars
}

// Days returns n consecutive dates ending at (and including) last, oldest first.
func Days(last string, n int) []string {
	out := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		d, err := util.AddDays(last, -i)
		if err != nil {
			panic(err)
		}
		out = append(out, d)
	}
	return out
}

// FixedClock returns a clock frozen at the given instant.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Clock is a settable clock for tests that advance days.
type Clock struct {
	Now time.Time
}

func NewClock(day string) *Clock {
	t, err := util.ParseDay(day)
	if err != nil {
		panic(err)
	}
	return &Clock{Now: t.Add(9 * time.Hour)}
}

func (c *Clock) Func() func() time.Time {
	return func() time.Time { return c.Now }
}

// AdvanceDays moves the clock forward by n calendar days.
func (c *Clock) AdvanceDays(n int) {
	c.Now = c.Now.AddDate(0, 0, n)
}
