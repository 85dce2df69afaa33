package database

import (
	"context"
	"database/sql"

	"github.com/jadiha/little-prince/internal/models"
)

// InsertReflection stores the answer for one week. A second answer for the
// same week fails with ErrDuplicate.
func (d *Database) InsertReflection(ctx context.Context, r models.WeeklyReflection) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		return insertReflectionTx(ctx, tx, r)
	})
}

const insertReflectionSQL = `INSERT INTO weekly_reflections (week_of, fox_answer, prince_response)
	VALUES (?, ?, ?)`

func insertReflectionTx(ctx context.Context, tx *sql.Tx, r models.WeeklyReflection) error {
	_, err := tx.ExecContext(ctx, insertReflectionSQL, r.WeekOf, r.FoxAnswer, r.PrinceResponse)
	return wrapErr(EntityReflection, "insert", r.WeekOf, err)
}

func loadReflections(ctx context.Context, q queryer) ([]models.WeeklyReflection, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT week_of, fox_answer, prince_response
		FROM weekly_reflections
		ORDER BY seq ASC`)
	if err != nil {
		return nil, wrapErr(EntityReflection, "list", "", err)
	}
	defer rows.Close()

	out := []models.WeeklyReflection{}
	for rows.Next() {
		var r models.WeeklyReflection
		if err := rows.Scan(&r.WeekOf, &r.FoxAnswer, &r.PrinceResponse); err != nil {
			return nil, wrapErr(EntityReflection, "list", "", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityReflection, "list", "", err)
	}
	return out, nil
}
