package database

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicate        = errors.New("already exists")
	ErrDatabaseNotEmpty = errors.New("database already contains data")
	ErrEncryptedExport  = errors.New("export is encrypted; a passphrase is required")
	ErrWrongPassphrase  = errors.New("incorrect passphrase")
)

// Entity names the table an OpError concerns.
type Entity string

const (
	EntityGoal       Entity = "goal"
	EntityStar       Entity = "star"
	EntityDayLog     Entity = "day log"
	EntityReflection Entity = "reflection"
	EntitySetting    Entity = "setting"
	EntityState      Entity = "state"
)

type OpError struct {
	Op     string
	Entity Entity
	ID     string
	Err    error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(entity Entity, op, id string, err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		err = fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return &OpError{Op: op, Entity: entity, ID: id, Err: err}
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
