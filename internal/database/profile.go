package database

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/jadiha/little-prince/internal/models"
)

// SaveProfile writes every profile scalar in one transaction.
func (d *Database) SaveProfile(ctx context.Context, p models.Profile) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		return saveProfileTx(ctx, tx, p)
	})
}

func saveProfileTx(ctx context.Context, tx *sql.Tx, p models.Profile) error {
	completed := strconv.FormatBool(p.Onboarding.Completed)
	var completedAt *string
	if p.Onboarding.CompletedAt != nil {
		s := formatTime(*p.Onboarding.CompletedAt)
		completedAt = &s
	}
	userName := nullableString(p.UserName)
	settings := []struct {
		key   string
		value *string
	}{
		{settingUserName, fromNullString(userName)},
		{settingOnboardingCompleted, &completed},
		{settingOnboardingCompletedAt, completedAt},
		{settingLastVisitDate, p.LastVisitDate},
	}
	for _, s := range settings {
		if err := setSettingTx(ctx, tx, s.key, s.value); err != nil {
			return err
		}
	}
	return nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

func loadProfile(ctx context.Context, q queryer) (models.Profile, error) {
	rows, err := q.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return models.Profile{}, wrapErr(EntitySetting, "list", "", err)
	}
	defer rows.Close()

	values := make(map[string]sql.NullString)
	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return models.Profile{}, wrapErr(EntitySetting, "list", "", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Profile{}, wrapErr(EntitySetting, "list", "", err)
	}

	var p models.Profile
	p.UserName = values[settingUserName].String
	if v := values[settingOnboardingCompleted]; v.Valid {
		p.Onboarding.Completed, _ = strconv.ParseBool(v.String)
	}
	if v := values[settingOnboardingCompletedAt]; v.Valid {
		t, err := parseTime(v.String)
		if err != nil {
			return models.Profile{}, wrapErr(EntitySetting, "parse", settingOnboardingCompletedAt, err)
		}
		p.Onboarding.CompletedAt = &t
	}
	p.LastVisitDate = fromNullString(values[settingLastVisitDate])
	return p, nil
}
