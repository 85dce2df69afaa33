package store

import (
	"context"
	"fmt"

	"github.com/jadiha/little-prince/internal/derive"
	"github.com/jadiha/little-prince/internal/models"
)

// LogOutcome says what LogDay did.
type LogOutcome int

const (
	LogCreated LogOutcome = iota
	LogAlreadyLogged
	LogGoalNotFound
)

func (o LogOutcome) String() string {
	switch o {
	case LogCreated:
		return "created"
	case LogAlreadyLogged:
		return "already logged"
	case LogGoalNotFound:
		return "goal not found"
	default:
		return fmt.Sprintf("LogOutcome(%d)", int(o))
	}
}

// LogResult carries the released star when Outcome is LogCreated.
type LogResult struct {
	Outcome LogOutcome
	Star    models.Star
}

// Created reports whether a new log and star were stored.
func (r LogResult) Created() bool {
	return r.Outcome == LogCreated
}

// LogDay tends goalID for today. An unknown goal or a goal already tended
// today is a silent no-op. Otherwise a star is placed in the goal's sector of
// the sky and the log and star are stored together: the persister writes both
// in one transaction, then both are appended under the same lock, so no reader
// sees one without the other.
func (s *Store) LogDay(ctx context.Context, goalID string, note *string) (LogResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.Today()
	goal, idx, ok := derive.FindGoal(s.goals, goalID)
	if !ok {
		return LogResult{Outcome: LogGoalNotFound}, nil
	}
	if derive.IsGoalTendedToday(goal, today) {
		return LogResult{Outcome: LogAlreadyLogged}, nil
	}

	star := models.Star{
		ID:       s.newID(),
		GoalID:   goalID,
		Date:     today,
		Position: s.sky.Generate(idx, len(s.goals)),
	}
	log := models.DayLog{Date: today, StarID: star.ID}
	if note != nil {
		n := *note
		log.Note = &n
	}

	if s.persister != nil {
		if err := s.persister.InsertDayLog(ctx, goalID, log, star); err != nil {
			return LogResult{}, fmt.Errorf("log day: %w", err)
		}
	}
	s.goals[idx].Logs = append(s.goals[idx].Logs, log)
	s.stars = append(s.stars, star)
	return LogResult{Outcome: LogCreated, Star: star}, nil
}
