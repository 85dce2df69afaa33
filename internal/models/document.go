package models

import "fmt"

// StorageKey namespaces the persisted state document.
const StorageKey = "little-prince-storage"

// DocumentVersion is bumped whenever the Document layout changes.
const DocumentVersion = 1

// Document is the persisted state layout. Transient UI state never appears here.
type Document struct {
	Goals             []Goal             `json:"goals"`
	Stars             []Star             `json:"stars"`
	WeeklyReflections []WeeklyReflection `json:"weeklyReflections"`
	Onboarding        Onboarding         `json:"onboarding"`
	UserName          string             `json:"userName"`
	LastVisitDate     *string            `json:"lastVisitDate"`
}

// Envelope wraps a Document under its storage key, matching the shape of a
// browser localStorage dump ({"state": ..., "version": N}).
type Envelope struct {
	Key     string   `json:"key,omitempty"`
	Version int      `json:"version"`
	State   Document `json:"state"`
}

// Profile extracts the per-user scalars from the document.
func (d Document) Profile() Profile {
	return Profile{
		UserName:      d.UserName,
		Onboarding:    d.Onboarding,
		LastVisitDate: d.LastVisitDate,
	}
}

// LogCount returns the total number of day logs across all goals.
func (d Document) LogCount() int {
	n := 0
	for _, g := range d.Goals {
		n += len(g.Logs)
	}
	return n
}

// Validate checks the structural invariants of a document before it is
// imported: unique goal ids, one log per date per goal, and exactly one star
// per log.
func (d Document) Validate() error {
	stars := make(map[string]Star, len(d.Stars))
	for _, s := range d.Stars {
		if s.ID == "" {
			return fmt.Errorf("star with empty id")
		}
		if _, dup := stars[s.ID]; dup {
			return fmt.Errorf("duplicate star id %q", s.ID)
		}
		stars[s.ID] = s
	}

	goals := make(map[string]bool, len(d.Goals))
	claimed := make(map[string]bool, len(d.Stars))
	for _, g := range d.Goals {
		if g.ID == "" {
			return fmt.Errorf("goal with empty id")
		}
		if goals[g.ID] {
			return fmt.Errorf("duplicate goal id %q", g.ID)
		}
		goals[g.ID] = true

		dates := make(map[string]bool, len(g.Logs))
		for _, l := range g.Logs {
			if dates[l.Date] {
				return fmt.Errorf("goal %q: more than one log on %s", g.ID, l.Date)
			}
			dates[l.Date] = true
			s, ok := stars[l.StarID]
			if !ok {
				return fmt.Errorf("goal %q: log on %s references missing star %q", g.ID, l.Date, l.StarID)
			}
			if s.GoalID != g.ID || s.Date != l.Date {
				return fmt.Errorf("goal %q: star %q does not match log on %s", g.ID, s.ID, l.Date)
			}
			if claimed[s.ID] {
				return fmt.Errorf("star %q claimed by more than one log", s.ID)
			}
			claimed[s.ID] = true
		}
	}
	if len(stars) != len(claimed) {
		return fmt.Errorf("%d stars but %d logs", len(stars), len(claimed))
	}

	weeks := make(map[string]bool, len(d.WeeklyReflections))
	for _, r := range d.WeeklyReflections {
		if weeks[r.WeekOf] {
			return fmt.Errorf("duplicate reflection for week of %s", r.WeekOf)
		}
		weeks[r.WeekOf] = true
	}
	return nil
}
