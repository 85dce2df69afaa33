package database

import (
	"context"
	"database/sql"

	"github.com/jadiha/little-prince/internal/models"
)

// InsertDayLog stores a day log and the star it released in one transaction.
// A second log for the same goal and date fails with ErrDuplicate.
func (d *Database) InsertDayLog(ctx context.Context, goalID string, log models.DayLog, star models.Star) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		return insertDayLogTx(ctx, tx, goalID, log, star)
	})
}

func insertDayLogTx(ctx context.Context, tx *sql.Tx, goalID string, log models.DayLog, star models.Star) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO stars (id, goal_id, date, x, y, z)
		VALUES (?, ?, ?, ?, ?, ?)`,
		star.ID, star.GoalID, star.Date, star.Position.X, star.Position.Y, star.Position.Z,
	); err != nil {
		return wrapErr(EntityStar, "insert", star.ID, err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO day_logs (goal_id, date, note, star_id)
		VALUES (?, ?, ?, ?)`,
		goalID, log.Date, toNullableArg(log.Note), log.StarID,
	); err != nil {
		return wrapErr(EntityDayLog, "insert", goalID+"@"+log.Date, err)
	}
	return nil
}

func loadStars(ctx context.Context, q queryer) ([]models.Star, error) {
	rows, err := q.QueryContext(ctx, "SELECT id, goal_id, date, x, y, z FROM stars ORDER BY seq ASC")
	if err != nil {
		return nil, wrapErr(EntityStar, "list", "", err)
	}
	defer rows.Close()

	stars := []models.Star{}
	for rows.Next() {
		var s models.Star
		if err := rows.Scan(&s.ID, &s.GoalID, &s.Date, &s.Position.X, &s.Position.Y, &s.Position.Z); err != nil {
			return nil, wrapErr(EntityStar, "list", "", err)
		}
		stars = append(stars, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityStar, "list", "", err)
	}
	return stars, nil
}

// attachLogs fills each goal's Logs in insertion order.
func attachLogs(ctx context.Context, q queryer, goals []models.Goal) error {
	index := make(map[string]int, len(goals))
	for i, g := range goals {
		index[g.ID] = i
	}
	rows, err := q.QueryContext(ctx, "SELECT goal_id, date, note, star_id FROM day_logs ORDER BY seq ASC")
	if err != nil {
		return wrapErr(EntityDayLog, "list", "", err)
	}
	defer rows.Close()

	for rows.Next() {
		var goalID string
		var l models.DayLog
		var note sql.NullString
		if err := rows.Scan(&goalID, &l.Date, &note, &l.StarID); err != nil {
			return wrapErr(EntityDayLog, "list", "", err)
		}
		l.Note = fromNullString(note)
		i, ok := index[goalID]
		if !ok {
			continue
		}
		goals[i].Logs = append(goals[i].Logs, l)
	}
	return wrapErr(EntityDayLog, "list", "", rows.Err())
}
