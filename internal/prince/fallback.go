package prince

import "math/rand/v2"

var fallbacks = map[Context][]string{
	ContextMorning: {
		"Good morning. I have been watching over your stars while you slept.",
		"You have returned. That, I think, is the most important thing.",
		"My rose needs tending every day. Yours does too. That is the whole secret.",
		"It is a strange thing, how returning to the same place can feel like arriving somewhere new.",
		"The stars are all still there. And so are you.",
	},
	ContextAfterLog: {
		"You showed up. That is everything. A star has been released.",
		"It is the time you devoted to your goal that makes it so important.",
		"One more star in your sky. You earned it with your returning.",
		"This is how a sky fills, one small act at a time. I have seen it.",
		"You tended what matters. The rose noticed.",
	},
	ContextStoryPlanet: {
		"I remember that one. He was a very strange grown-up. They all were.",
		"All grown-ups were once children. But very few of them remember it.",
		"On my travels I met many people who had forgotten something essential. Perhaps you will remember it for them.",
		"It is only with the heart that one can see rightly. What is essential is invisible to the eye.",
		"I wondered about that planet for a long time after I left.",
	},
	ContextWeeklyFox: {
		"To tame something is to take time with it. You are learning how.",
		"What is essential is invisible to the eye. You are beginning to see it.",
		"The fox taught me that you become responsible for what you tame. Be gentle with yourself.",
		"You are unique in all the world to those you have tamed, and to those who have tamed you.",
		"It is the time you have given that makes everything meaningful.",
	},
}

// Fallbacks returns the static lines for c. Unknown contexts use the morning
// lines.
func Fallbacks(c Context) []string {
	lines, ok := fallbacks[c]
	if !ok {
		lines = fallbacks[ContextMorning]
	}
	return append([]string(nil), lines...)
}

// PickFallback chooses a line for c. pick returns an index in [0, n); nil
// uses math/rand.
func PickFallback(c Context, pick func(n int) int) string {
	lines := Fallbacks(c)
	if pick == nil {
		pick = rand.IntN
	}
	i := pick(len(lines))
	if i < 0 || i >= len(lines) {
		i = 0
	}
	return lines[i]
}
