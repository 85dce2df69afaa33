package prince

import (
	"github.com/jadiha/little-prince/internal/derive"
	"github.com/jadiha/little-prince/internal/store"
	"github.com/jadiha/little-prince/internal/util"
)

// BuildRequest snapshots the state a line is written against.
func BuildRequest(c Context, snap store.Snapshot, payload *Payload) Request {
	goals := make([]GoalSummary, 0, len(snap.Goals))
	for _, g := range snap.Goals {
		goals = append(goals, GoalSummary{Name: g.Name, LogCount: len(g.Logs)})
	}
	return Request{
		Context:    c,
		Goals:      goals,
		RoseState:  derive.RoseState(snap.Goals, snap.Stars, snap.Today),
		TotalStars: len(snap.Stars),
		Payload:    payload,
	}
}

// AfterLog is the payload sent after a goal has been tended.
func AfterLog(goalName string, note *string) *Payload {
	return &Payload{GoalName: util.Ptr(goalName), Note: note}
}

// FoxAnswer is the payload sent with the weekly reflection.
func FoxAnswer(answer string) *Payload {
	return &Payload{Note: util.Ptr(answer)}
}

// Visiting is the payload sent when a story planet is opened.
func Visiting(planetID string) *Payload {
	return &Payload{StoryPlanetID: util.Ptr(planetID)}
}
