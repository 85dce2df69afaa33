package database

import (
	"context"
	"database/sql"
	"errors"
)

// SettingTheme holds the theme last picked in the terminal UI.
const SettingTheme = "theme"

const (
	settingUserName              = "user_name"
	settingOnboardingCompleted   = "onboarding_completed"
	settingOnboardingCompletedAt = "onboarding_completed_at"
	settingLastVisitDate         = "last_visit_date"
)

// GetSetting returns the stored value for key. A NULL value or missing key
// reports false.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool, error) {
	type result struct {
		value string
		ok    bool
	}
	r, err := withDBContextResult(d, ctx, func(ctx context.Context) (result, error) {
		var value sql.NullString
		err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
		if errors.Is(err, sql.ErrNoRows) {
			return result{}, nil
		}
		if err != nil {
			return result{}, wrapErr(EntitySetting, "get", key, err)
		}
		return result{value: value.String, ok: value.Valid}, nil
	})
	return r.value, r.ok, err
}

// SetSetting upserts key. A nil value stores NULL.
func (d *Database) SetSetting(ctx context.Context, key string, value *string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, upsertSetting, key, toNullableArg(value))
		return wrapErr(EntitySetting, "set", key, err)
	})
}

const upsertSetting = `INSERT INTO settings (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

func setSettingTx(ctx context.Context, tx *sql.Tx, key string, value *string) error {
	_, err := tx.ExecContext(ctx, upsertSetting, key, toNullableArg(value))
	return wrapErr(EntitySetting, "set", key, err)
}
