// Package store is the single authoritative owner of goals, day logs, stars,
// reflections and the user profile. Every mutation is written through to a
// Persister before it becomes visible in memory, and readers only ever get
// deep copies.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jadiha/little-prince/internal/derive"
	"github.com/jadiha/little-prince/internal/models"
	"github.com/jadiha/little-prince/internal/sky"
	"github.com/jadiha/little-prince/internal/util"
)

// Persister is the durable backing for a Store. A nil Persister keeps state in
// memory only.
//
//go:generate mockgen -source=store.go -destination=mock_persister_test.go -package=store
type Persister interface {
	LoadState(ctx context.Context) (models.Document, error)
	InsertGoal(ctx context.Context, g models.Goal) error
	RenameGoal(ctx context.Context, goalID, name string) error
	InsertDayLog(ctx context.Context, goalID string, log models.DayLog, star models.Star) error
	InsertReflection(ctx context.Context, r models.WeeklyReflection) error
	SaveProfile(ctx context.Context, p models.Profile) error
}

type Store struct {
	mu sync.RWMutex

	persister Persister
	now       func() time.Time
	newID     func() string
	sky       *sky.Generator
	loc       *time.Location

	goals       []models.Goal
	stars       []models.Star
	reflections []models.WeeklyReflection
	profile     models.Profile
}

// Option configures a Store at Open time.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDs replaces the UUID generator used for goal and star ids.
func WithIDs(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithSky replaces the star position generator.
func WithSky(g *sky.Generator) Option {
	return func(s *Store) {
		if g != nil {
			s.sky = g
		}
	}
}

// WithLocation sets the zone in which "today" is evaluated.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// Open builds a Store and loads the persisted state, if any.
func Open(ctx context.Context, p Persister, opts ...Option) (*Store, error) {
	s := &Store{
		persister:   p,
		now:         time.Now,
		newID:       uuid.NewString,
		loc:         time.Local,
		goals:       []models.Goal{},
		stars:       []models.Star{},
		reflections: []models.WeeklyReflection{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sky == nil {
		s.sky = sky.NewGenerator(nil)
	}
	if p == nil {
		return s, nil
	}

	doc, err := p.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	s.goals = cloneGoals(doc.Goals)
	s.stars = append([]models.Star{}, doc.Stars...)
	s.reflections = append([]models.WeeklyReflection{}, doc.WeeklyReflections...)
	s.profile = doc.Profile()
	util.Debugf("store: loaded %d goals, %d stars", len(s.goals), len(s.stars))
	return s, nil
}

// Today is the current calendar date in the store's location.
func (s *Store) Today() string {
	return util.DayString(s.now().In(s.loc))
}

// Snapshot is a detached copy of the whole state at one instant.
type Snapshot struct {
	Today       string
	Goals       []models.Goal
	Stars       []models.Star
	Reflections []models.WeeklyReflection
	Profile     models.Profile
}

// Summary derives every headline value for the snapshot's day.
func (s Snapshot) Summary() derive.Summary {
	return derive.Summarize(s.Goals, s.Stars, s.Today)
}

// Document returns the snapshot in its persisted layout.
func (s Snapshot) Document() models.Document {
	return models.Document{
		Goals:             s.Goals,
		Stars:             s.Stars,
		WeeklyReflections: s.Reflections,
		Onboarding:        s.Profile.Onboarding,
		UserName:          s.Profile.UserName,
		LastVisitDate:     s.Profile.LastVisitDate,
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Today:       s.Today(),
		Goals:       cloneGoals(s.goals),
		Stars:       append([]models.Star{}, s.stars...),
		Reflections: append([]models.WeeklyReflection{}, s.reflections...),
		Profile:     cloneProfile(s.profile),
	}
}

func (s *Store) Goals() []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneGoals(s.goals)
}

func (s *Store) Stars() []models.Star {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Star{}, s.stars...)
}

// Goal looks a goal up by id.
func (s *Store) Goal(id string) (models.Goal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, _, ok := derive.FindGoal(s.goals, id)
	if !ok {
		return models.Goal{}, false
	}
	return g.Clone(), true
}

// RoseState is the rose's health as of today.
func (s *Store) RoseState() models.RoseState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return derive.RoseState(s.goals, s.stars, s.Today())
}

// Streak is the number of consecutive days, ending today, with any star.
func (s *Store) Streak() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return derive.CurrentStreak(s.stars, s.Today())
}

// Statuses derives per-goal status as of today.
func (s *Store) Statuses() []derive.GoalStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return derive.GoalStatuses(cloneGoals(s.goals), s.Today())
}

func cloneGoals(in []models.Goal) []models.Goal {
	out := make([]models.Goal, len(in))
	for i, g := range in {
		out[i] = g.Clone()
	}
	return out
}

func cloneProfile(p models.Profile) models.Profile {
	out := p
	if p.LastVisitDate != nil {
		out.LastVisitDate = util.Ptr(*p.LastVisitDate)
	}
	if p.Onboarding.CompletedAt != nil {
		out.Onboarding.CompletedAt = util.Ptr(*p.Onboarding.CompletedAt)
	}
	return out
}
