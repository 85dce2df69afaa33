package models

import "testing"

func TestPlanetStyleConstants(t *testing.T) {
	if len(PlanetStyles) != 5 {
		t.Fatalf("expected 5 planet styles, got %d", len(PlanetStyles))
	}
	if StyleAmberHealth != "amber-health" {
		t.Fatalf("StyleAmberHealth = %q", StyleAmberHealth)
	}
	if !StyleGreenRest.Valid() {
		t.Fatalf("expected green-rest to be valid")
	}
	if PlanetStyle("neon").Valid() {
		t.Fatalf("expected unknown style to be invalid")
	}
}

func TestRoseStateRankOrder(t *testing.T) {
	for i := 1; i < len(RoseStates); i++ {
		if RoseStates[i].Rank() <= RoseStates[i-1].Rank() {
			t.Fatalf("expected %s to rank above %s", RoseStates[i], RoseStates[i-1])
		}
	}
	if RoseRevival.Rank() != 0 || RoseFullBloom.Rank() != 4 {
		t.Fatalf("unexpected ranks: revival=%d fullBloom=%d", RoseRevival.Rank(), RoseFullBloom.Rank())
	}
	if RoseState("wilted").Rank() != -1 {
		t.Fatalf("expected unknown state rank -1")
	}
}

func TestGoalZeroValues(t *testing.T) {
	var g Goal
	if g.Reason != nil {
		t.Fatalf("expected nil reason by default")
	}
	if g.Logs != nil {
		t.Fatalf("expected nil logs by default")
	}
}

func TestGoalCloneDetachesLogs(t *testing.T) {
	g := Goal{ID: "g1", Logs: []DayLog{{Date: "2024-01-01", StarID: "s1"}}}
	c := g.Clone()
	c.Logs[0].Date = "1999-01-01"
	c.Logs = append(c.Logs, DayLog{Date: "2024-01-02"})
	if g.Logs[0].Date != "2024-01-01" {
		t.Fatalf("clone mutated original log: %+v", g.Logs[0])
	}
	if len(g.Logs) != 1 {
		t.Fatalf("clone append leaked into original, len=%d", len(g.Logs))
	}
}

func TestDocumentLogCount(t *testing.T) {
	doc := Document{Goals: []Goal{
		{Logs: []DayLog{{Date: "2024-01-01"}, {Date: "2024-01-02"}}},
		{Logs: []DayLog{{Date: "2024-01-01"}}},
	}}
	if doc.LogCount() != 3 {
		t.Fatalf("expected 3 logs, got %d", doc.LogCount())
	}
}

func TestDocumentValidate(t *testing.T) {
	valid := func() Document {
		return Document{
			Goals: []Goal{{ID: "g1", Logs: []DayLog{{Date: "2024-01-01", StarID: "s1"}}}},
			Stars: []Star{{ID: "s1", GoalID: "g1", Date: "2024-01-01"}},
		}
	}
	if err := valid().Validate(); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Document)
	}{
		{"duplicate goal", func(d *Document) { d.Goals = append(d.Goals, Goal{ID: "g1"}) }},
		{"duplicate date", func(d *Document) {
			d.Goals[0].Logs = append(d.Goals[0].Logs, DayLog{Date: "2024-01-01", StarID: "s2"})
			d.Stars = append(d.Stars, Star{ID: "s2", GoalID: "g1", Date: "2024-01-01"})
		}},
		{"missing star", func(d *Document) { d.Stars = nil }},
		{"orphan star", func(d *Document) { d.Stars = append(d.Stars, Star{ID: "s9", GoalID: "g1", Date: "2024-01-02"}) }},
		{"mismatched star", func(d *Document) { d.Stars[0].Date = "2024-01-02" }},
		{"duplicate week", func(d *Document) {
			d.WeeklyReflections = []WeeklyReflection{{WeekOf: "2024-01-01"}, {WeekOf: "2024-01-01"}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := valid()
			tt.mutate(&doc)
			if err := doc.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
