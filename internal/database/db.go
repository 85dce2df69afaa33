package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jadiha/little-prince/internal/util"
)

const defaultDBTimeout = 5 * time.Second

// Database is the SQLite-backed durable store for the habit sky.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (or creates) the database at path and applies the schema.
// The special path ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string) (*Database, error) {
	if path == "" {
		return nil, fmt.Errorf("open database: empty path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("open database: create dir: %w", err)
		}
	}

	dsn := path + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps :memory: databases coherent and serialises writers.
	db.SetMaxOpenConns(1)

	d := &Database{DB: db, dbFile: path}
	pingCtx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open database: ping: %w", err)
	}
	if err := d.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open database: migrate: %w", err)
	}
	return d, nil
}

// Close releases the underlying connection pool.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the file the database was opened from.
func (d *Database) Path() string {
	return d.dbFile
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		rank INTEGER NOT NULL DEFAULT 0,
		name TEXT NOT NULL,
		reason TEXT,
		planet_style TEXT NOT NULL,
		created_at TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS stars (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		goal_id TEXT NOT NULL,
		date TEXT NOT NULL,
		x REAL NOT NULL,
		y REAL NOT NULL,
		z REAL NOT NULL,
		FOREIGN KEY(goal_id) REFERENCES goals(id)
	);`,
	`CREATE TABLE IF NOT EXISTS day_logs (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		goal_id TEXT NOT NULL,
		date TEXT NOT NULL,
		note TEXT,
		star_id TEXT NOT NULL,
		UNIQUE(goal_id, date),
		FOREIGN KEY(goal_id) REFERENCES goals(id),
		FOREIGN KEY(star_id) REFERENCES stars(id)
	);`,
	`CREATE TABLE IF NOT EXISTS weekly_reflections (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		week_of TEXT NOT NULL UNIQUE,
		fox_answer TEXT NOT NULL,
		prince_response TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT
	);`,
	`CREATE INDEX IF NOT EXISTS idx_stars_date ON stars(date);`,
	`CREATE INDEX IF NOT EXISTS idx_day_logs_goal ON day_logs(goal_id);`,
}

func (d *Database) migrate(ctx context.Context) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}
		return nil
	})
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(*sql.Tx) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		return rollbackWithLog(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		util.LogError("rollback", rbErr)
	}
	return err
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (d *Database) withDBContext(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

// DatabaseHasData reports whether any goal, star or reflection exists.
func (d *Database) DatabaseHasData(ctx context.Context) (bool, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (bool, error) {
		var n int
		err := d.DB.QueryRowContext(ctx, `
			SELECT (SELECT COUNT(1) FROM goals)
			     + (SELECT COUNT(1) FROM stars)
			     + (SELECT COUNT(1) FROM weekly_reflections)`).Scan(&n)
		if err != nil {
			return false, wrapErr(EntityState, "count", "", err)
		}
		return n > 0, nil
	})
}
