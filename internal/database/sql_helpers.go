package database

import (
	"database/sql"
	"time"
)

// nullableString converts a string to sql.NullString for optional fields.
// Empty strings are treated as NULL.
func nullableString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

// toNullableArg converts a pointer to an interface{} suitable for SQL args.
// Returns nil if pointer is nil, otherwise returns the dereferenced value.
func toNullableArg[T any](v *T) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// fromNullString is the inverse of toNullableArg for scanned text columns.
func fromNullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
