package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jadiha/little-prince/internal/models"
)

// InsertGoal appends a goal after every existing goal.
func (d *Database) InsertGoal(ctx context.Context, g models.Goal) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		return insertGoalTx(ctx, tx, g)
	})
}

const insertGoalSQL = `INSERT INTO goals (id, rank, name, reason, planet_style, created_at)
	VALUES (?, (SELECT COALESCE(MAX(rank), 0) + 1 FROM goals), ?, ?, ?, ?)`

func insertGoalTx(ctx context.Context, tx *sql.Tx, g models.Goal) error {
	_, err := tx.ExecContext(ctx, insertGoalSQL,
		g.ID, g.Name, toNullableArg(g.Reason), string(g.Style), formatTime(g.CreatedAt))
	return wrapErr(EntityGoal, "insert", g.ID, err)
}

// RenameGoal replaces only the goal's name.
func (d *Database) RenameGoal(ctx context.Context, goalID, name string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "UPDATE goals SET name = ? WHERE id = ?", name, goalID)
		if err != nil {
			return wrapErr(EntityGoal, "rename", goalID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return wrapErr(EntityGoal, "rename", goalID, err)
		}
		if n == 0 {
			return wrapErr(EntityGoal, "rename", goalID, ErrNotFound)
		}
		return nil
	})
}

func loadGoals(ctx context.Context, q queryer) ([]models.Goal, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, name, reason, planet_style, created_at
		FROM goals
		ORDER BY rank ASC, created_at ASC`)
	if err != nil {
		return nil, wrapErr(EntityGoal, "list", "", err)
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		var g models.Goal
		var reason sql.NullString
		var style, createdAt string
		if err := rows.Scan(&g.ID, &g.Name, &reason, &style, &createdAt); err != nil {
			return nil, wrapErr(EntityGoal, "list", "", err)
		}
		g.Reason = fromNullString(reason)
		g.Style = models.PlanetStyle(style)
		if g.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, wrapErr(EntityGoal, "list", g.ID, fmt.Errorf("created_at: %w", err))
		}
		g.Logs = []models.DayLog{}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityGoal, "list", "", err)
	}
	return goals, nil
}
