package models

import "time"

// PlanetStyle is the visual category of a goal planet. The core treats it as
// an opaque tag.
type PlanetStyle string

const (
	StyleAmberHealth           PlanetStyle = "amber-health"
	StyleBlueLearning          PlanetStyle = "blue-learning"
	StylePurpleCreativity      PlanetStyle = "purple-creativity"
	StyleRosegoldRelationships PlanetStyle = "rosegold-relationships"
	StyleGreenRest             PlanetStyle = "green-rest"
)

// PlanetStyles lists every style in display order.
var PlanetStyles = []PlanetStyle{
	StyleAmberHealth,
	StyleBlueLearning,
	StylePurpleCreativity,
	StyleRosegoldRelationships,
	StyleGreenRest,
}

// Valid reports whether s is one of the known planet styles.
func (s PlanetStyle) Valid() bool {
	for _, known := range PlanetStyles {
		if s == known {
			return true
		}
	}
	return false
}

// Goal is something the user tends. Logs are append-only and ordered by
// insertion, which is also chronological order.
type Goal struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Reason    *string     `json:"reason,omitempty"`
	Style     PlanetStyle `json:"planetStyle"`
	CreatedAt time.Time   `json:"createdAt"`
	Logs      []DayLog    `json:"logs"`
}

// DayLog is one instance of tending a goal on a calendar date.
type DayLog struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Note   *string `json:"note,omitempty"`
	StarID string  `json:"starId"`
}

// Position is a fixed point in the sky.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Star is the reward released by a successful log. Its position never changes
// after creation.
type Star struct {
	ID       string   `json:"id"`
	GoalID   string   `json:"goalId"`
	Date     string   `json:"date"`
	Position Position `json:"position"`
}

// WeeklyReflection is the answer to the Fox's weekly question.
type WeeklyReflection struct {
	WeekOf         string `json:"weekOf"` // Monday, YYYY-MM-DD
	FoxAnswer      string `json:"foxAnswer"`
	PrinceResponse string `json:"princeResponse"`
}

// Onboarding records whether the first-run flow has been finished.
type Onboarding struct {
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Profile holds the persisted per-user scalars.
type Profile struct {
	UserName      string
	Onboarding    Onboarding
	LastVisitDate *string
}

// Clone returns a deep copy of the goal so callers cannot mutate store-owned
// logs or optional strings.
func (g Goal) Clone() Goal {
	out := g
	out.Reason = cloneString(g.Reason)
	if g.Logs != nil {
		out.Logs = make([]DayLog, len(g.Logs))
		for i, l := range g.Logs {
			l.Note = cloneString(l.Note)
			out.Logs[i] = l
		}
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
