// Package prince produces the Little Prince's short in-character lines. It
// builds requests from a store snapshot, talks to a flavor-text endpoint under
// a hard timeout, and always has a fallback line ready.
package prince

import (
	"github.com/jadiha/little-prince/internal/models"
)

// Context is the trigger point a line is requested for.
type Context string

const (
	ContextMorning     Context = "morning"
	ContextAfterLog    Context = "afterLog"
	ContextWeeklyFox   Context = "weeklyFox"
	ContextStoryPlanet Context = "storyPlanet"
)

// Contexts lists every known trigger point.
var Contexts = []Context{ContextMorning, ContextAfterLog, ContextWeeklyFox, ContextStoryPlanet}

func (c Context) Valid() bool {
	for _, known := range Contexts {
		if c == known {
			return true
		}
	}
	return false
}

// GoalSummary is the per-goal slice of state the model is shown.
type GoalSummary struct {
	Name     string `json:"name"`
	LogCount int    `json:"logCount"`
}

// Payload carries the context-specific details of a request.
type Payload struct {
	GoalName      *string `json:"goalName,omitempty"`
	Note          *string `json:"note,omitempty"`
	StoryPlanetID *string `json:"storyPlanetId,omitempty"`
}

// Request is the body of POST /api/prince.
type Request struct {
	Context    Context          `json:"context"`
	Goals      []GoalSummary    `json:"goals"`
	RoseState  models.RoseState `json:"roseState"`
	TotalStars int              `json:"totalStars"`
	Payload    *Payload         `json:"payload,omitempty"`
}

// Response is the body answered by POST /api/prince.
type Response struct {
	Message string `json:"message"`
}

// Reply is what callers display. Fallback is set when the line came from the
// static bank rather than the model.
type Reply struct {
	Message  string
	Fallback bool
}

func (r Request) goalName() string {
	if r.Payload != nil && r.Payload.GoalName != nil && *r.Payload.GoalName != "" {
		return *r.Payload.GoalName
	}
	return "their goal"
}

func (r Request) note() string {
	if r.Payload != nil && r.Payload.Note != nil {
		return *r.Payload.Note
	}
	return ""
}

func (r Request) storyPlanetID() string {
	if r.Payload != nil && r.Payload.StoryPlanetID != nil {
		return *r.Payload.StoryPlanetID
	}
	return ""
}
