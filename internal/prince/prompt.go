package prince

import (
	"fmt"
	"strings"
)

// MaxTokens bounds the length of a generated line.
const MaxTokens = 150

const persona = `You are the Little Prince from Asteroid B-612. You speak with gentle, philosophical, child-like wonder. You are never a coach or an advisor. You notice small things. You find meaning in devotion, in tending what you love.`

const styleRules = `Speak in 2-3 sentences only. Sometimes reference their rose or stars, but not always. Occasionally quote yourself from the book. Never use bullet points, productivity language, or the word "journey". Your words should feel like finding a letter on a doorstep, not receiving a push notification.`

// SystemPrompt frames the model with the user's state and, for story planet
// visits, the grown-up being visited.
func SystemPrompt(req Request, cat Catalog) string {
	names := make([]string, 0, len(req.Goals))
	for _, g := range req.Goals {
		names = append(names, fmt.Sprintf("%q", g.Name))
	}
	tends := strings.Join(names, ", ")
	if tends == "" {
		tends = "nothing yet"
	}

	var b strings.Builder
	b.WriteString(persona)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "The person tends to these goals: %s.\n", tends)
	fmt.Fprintf(&b, "Their rose, their self-love, is currently: %s.\n", req.RoseState)
	fmt.Fprintf(&b, "They have released %d stars into their sky.\n\n", req.TotalStars)
	b.WriteString(styleRules)

	if req.Context == ContextStoryPlanet {
		if p, ok := cat.Planet(req.storyPlanetID()); ok {
			fmt.Fprintf(&b, "\n\nThe person has just visited %s on %s. This character represents: %s. "+
				"Reflect gently on what this character might mean, not as a lesson to deliver, but as a quiet observation. "+
				"You have met this person before, on your travels.", p.Character, p.Number, p.Trap)
		}
	}
	return b.String()
}

// UserMessage is the turn that asks for the line itself.
func UserMessage(req Request) string {
	switch req.Context {
	case ContextMorning:
		return "It is morning. The person has just opened their universe. Greet them gently, as you would greet someone you are glad to see again."
	case ContextAfterLog:
		if note := req.note(); note != "" {
			return fmt.Sprintf("The person just tended their goal %q. They wrote: %q. Acknowledge their small act of devotion.", req.goalName(), note)
		}
		return fmt.Sprintf("The person just tended their goal %q. Acknowledge their small act of devotion.", req.goalName())
	case ContextWeeklyFox:
		return fmt.Sprintf("It is Friday. The Fox has asked what they tamed this week. The person wrote: %q. "+
			"Respond as the Little Prince, reflecting gently, not paraphrasing what they said, but finding the quiet truth in it.", req.note())
	case ContextStoryPlanet:
		return "The person is visiting this planet. Speak about this character gently, as if you are remembering someone you once met."
	default:
		return "Say something gentle and true."
	}
}
