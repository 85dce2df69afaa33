package store

import (
	"context"
	"fmt"

	"github.com/jadiha/little-prince/internal/derive"
	"github.com/jadiha/little-prince/internal/models"
	"github.com/jadiha/little-prince/internal/util"
)

// AddReflection stores the answer to the Fox's weekly question. An empty
// WeekOf means the current week. A week that already has a reflection is left
// alone and false is returned.
func (s *Store) AddReflection(ctx context.Context, r models.WeeklyReflection) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.WeekOf == "" {
		week, err := util.WeekStart(s.Today())
		if err != nil {
			return false, fmt.Errorf("add reflection: %w", err)
		}
		r.WeekOf = week
	}
	for _, existing := range s.reflections {
		if existing.WeekOf == r.WeekOf {
			return false, nil
		}
	}
	if s.persister != nil {
		if err := s.persister.InsertReflection(ctx, r); err != nil {
			return false, fmt.Errorf("add reflection: %w", err)
		}
	}
	s.reflections = append(s.reflections, r)
	return true, nil
}

func (s *Store) Reflections() []models.WeeklyReflection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.WeeklyReflection{}, s.reflections...)
}

// ReflectedThisWeek reports whether the current week already has an answer.
func (s *Store) ReflectedThisWeek() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	week, err := util.WeekStart(s.Today())
	if err != nil {
		return false
	}
	for _, r := range s.reflections {
		if r.WeekOf == week {
			return true
		}
	}
	return false
}

// FoxDue reports whether the weekly question should be asked today.
func (s *Store) FoxDue() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return derive.ShouldShowFox(s.reflections, s.Today())
}
