package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jadiha/little-prince/internal/models"
)

// LoadState reads the whole persisted state as a Document. Goals keep their
// insertion rank, logs and stars keep insertion order.
func (d *Database) LoadState(ctx context.Context) (models.Document, error) {
	var doc models.Document
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		goals, err := loadGoals(ctx, tx)
		if err != nil {
			return err
		}
		if err := attachLogs(ctx, tx, goals); err != nil {
			return err
		}
		stars, err := loadStars(ctx, tx)
		if err != nil {
			return err
		}
		reflections, err := loadReflections(ctx, tx)
		if err != nil {
			return err
		}
		profile, err := loadProfile(ctx, tx)
		if err != nil {
			return err
		}
		doc = models.Document{
			Goals:             goals,
			Stars:             stars,
			WeeklyReflections: reflections,
			Onboarding:        profile.Onboarding,
			UserName:          profile.UserName,
			LastVisitDate:     profile.LastVisitDate,
		}
		return nil
	})
	return doc, err
}

// ReplaceState validates doc and writes it into the database. Unless replace
// is set, the database must be empty; with replace, existing rows are removed
// first. Either way the change is all or nothing.
func (d *Database) ReplaceState(ctx context.Context, doc models.Document, replace bool) error {
	if err := doc.Validate(); err != nil {
		return wrapErr(EntityState, "validate", "", err)
	}
	if !replace {
		hasData, err := d.DatabaseHasData(ctx)
		if err != nil {
			return err
		}
		if hasData {
			return ErrDatabaseNotEmpty
		}
	}

	owners := make(map[string]ownedLog, len(doc.Stars))
	for _, g := range doc.Goals {
		for _, l := range g.Logs {
			owners[l.StarID] = ownedLog{goalID: g.ID, log: l}
		}
	}

	return d.WithTx(ctx, func(tx *sql.Tx) error {
		if replace {
			for _, table := range []string{"day_logs", "stars", "goals", "weekly_reflections", "settings"} {
				if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
					return wrapErr(EntityState, "clear", table, err)
				}
			}
		}
		for _, g := range doc.Goals {
			if err := insertGoalTx(ctx, tx, g); err != nil {
				return err
			}
		}
		// Stars go in document order so LoadState returns them unchanged.
		for _, s := range doc.Stars {
			owner := owners[s.ID]
			if err := insertDayLogTx(ctx, tx, owner.goalID, owner.log, s); err != nil {
				return err
			}
		}
		for _, r := range doc.WeeklyReflections {
			if err := insertReflectionTx(ctx, tx, r); err != nil {
				return err
			}
		}
		return saveProfileTx(ctx, tx, doc.Profile())
	})
}

type ownedLog struct {
	goalID string
	log    models.DayLog
}
