package store

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jadiha/little-prince/internal/derive"
	"github.com/jadiha/little-prince/internal/models"
)

// MaxGoalNameLength bounds names accepted by ValidateGoalName.
const MaxGoalNameLength = 60

// ValidateGoalName is the check input surfaces apply before AddGoal or
// UpdateGoalName. The store itself accepts any name.
func ValidateGoalName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("goal name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxGoalNameLength {
		return fmt.Errorf("goal name must be at most %d characters", MaxGoalNameLength)
	}
	return nil
}

// AddGoal appends a new goal with no logs. Only a persistence failure is an
// error.
func (s *Store) AddGoal(ctx context.Context, name string, style models.PlanetStyle, reason *string) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := models.Goal{
		ID:        s.newID(),
		Name:      name,
		Style:     style,
		CreatedAt: s.now().UTC(),
		Logs:      []models.DayLog{},
	}
	if reason != nil {
		r := *reason
		g.Reason = &r
	}
	if s.persister != nil {
		if err := s.persister.InsertGoal(ctx, g); err != nil {
			return models.Goal{}, fmt.Errorf("add goal: %w", err)
		}
	}
	s.goals = append(s.goals, g)
	return g.Clone(), nil
}

// UpdateGoalName replaces only the name. It reports false when no goal has
// the id.
func (s *Store) UpdateGoalName(ctx context.Context, goalID, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, idx, ok := derive.FindGoal(s.goals, goalID)
	if !ok {
		return false, nil
	}
	if s.persister != nil {
		if err := s.persister.RenameGoal(ctx, goalID, name); err != nil {
			return false, fmt.Errorf("rename goal: %w", err)
		}
	}
	s.goals[idx].Name = name
	return true, nil
}
