package store

import (
	"context"
	"fmt"
)

// RecordVisit stamps today as the last visit date. It reports true only when
// an earlier visit exists on a different day, which is when the morning
// greeting is due.
func (s *Store) RecordVisit(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.Today()
	last := s.profile.LastVisitDate
	if last != nil && *last == today {
		return false, nil
	}
	returning := last != nil

	next := cloneProfile(s.profile)
	next.LastVisitDate = &today
	if s.persister != nil {
		if err := s.persister.SaveProfile(ctx, next); err != nil {
			return false, fmt.Errorf("record visit: %w", err)
		}
	}
	s.profile = next
	return returning, nil
}
