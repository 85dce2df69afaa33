package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jadiha/little-prince/internal/models"
)

// View is the first screen a renderer shows.
type View string

const (
	ViewOnboarding View = "onboarding"
	ViewUniverse   View = "universe"
)

func (s *Store) Profile() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProfile(s.profile)
}

// InitialView routes first-time users to onboarding.
func (s *Store) InitialView() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.profile.Onboarding.Completed {
		return ViewOnboarding
	}
	return ViewUniverse
}

func (s *Store) SetUserName(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := cloneProfile(s.profile)
	next.UserName = strings.TrimSpace(name)
	return s.saveProfile(ctx, next)
}

// CompleteOnboarding marks the first-run flow as finished. Completing twice
// keeps the original timestamp.
func (s *Store) CompleteOnboarding(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile.Onboarding.Completed {
		return nil
	}
	now := s.now().UTC()
	next := cloneProfile(s.profile)
	next.Onboarding = models.Onboarding{Completed: true, CompletedAt: &now}
	return s.saveProfile(ctx, next)
}

// saveProfile must be called with mu held.
func (s *Store) saveProfile(ctx context.Context, next models.Profile) error {
	if s.persister != nil {
		if err := s.persister.SaveProfile(ctx, next); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
	}
	s.profile = next
	return nil
}
