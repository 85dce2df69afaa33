package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/jadiha/little-prince/internal/claude"
	"github.com/jadiha/little-prince/internal/config"
	"github.com/jadiha/little-prince/internal/database"
	"github.com/jadiha/little-prince/internal/models"
	"github.com/jadiha/little-prince/internal/prince"
	"github.com/jadiha/little-prince/internal/store"
	"github.com/jadiha/little-prince/internal/util"
)

// app bundles what a command needs. Close releases the database.
type app struct {
	cfg   config.Config
	db    *database.Database
	store *store.Store
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	db, err := database.Open(ctx, cfg.DBPath())
	if err != nil {
		return nil, err
	}
	st, err := store.Open(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &app{cfg: cfg, db: db, store: st}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		util.LogError("close database", err)
	}
}

// princeService picks a backend: a proxy endpoint when configured, otherwise
// the claude CLI when it is installed. Without either the prince still
// speaks from the fallback bank.
func (a *app) princeService() *prince.Service {
	return prince.NewService(newMessenger(a.cfg), prince.WithTimeout(a.cfg.Prince.Timeout))
}

func newMessenger(cfg config.Config) prince.Messenger {
	if cfg.Prince.Endpoint != "" {
		return prince.NewHTTPClient(cfg.Prince.Endpoint)
	}
	if g := newGenerator(cfg); g != nil {
		return prince.NewDirect(g)
	}
	return nil
}

// newGenerator returns nil when the claude CLI is disabled or missing.
func newGenerator(cfg config.Config) prince.Generator {
	if cfg.Claude.Disabled {
		return nil
	}
	inv := newInvoker(cfg)
	if err := inv.Validate(); err != nil {
		util.Debugf("prince: claude unavailable, using fallback lines: %v", err)
		return nil
	}
	return inv
}

func newInvoker(cfg config.Config) *claude.Invoker {
	return &claude.Invoker{
		ClaudePath:   cfg.Claude.Path,
		Model:        cfg.Claude.Model,
		MaxBudgetUSD: cfg.Claude.MaxBudgetUSD,
	}
}

// resolveGoal accepts a goal ID, a 1-based position or an exact name
// (case-insensitive).
func resolveGoal(st *store.Store, ref string) (models.Goal, error) {
	ref = strings.TrimSpace(ref)
	goals := st.Goals()
	for _, g := range goals {
		if g.ID == ref {
			return g, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(goals) {
		return goals[n-1], nil
	}
	for _, g := range goals {
		if strings.EqualFold(g.Name, ref) {
			return g, nil
		}
	}
	return models.Goal{}, fmt.Errorf("no goal matches %q", ref)
}

const passphraseEnv = config.EnvPrefix + "_PASSPHRASE"

// readPassphrase prefers LITTLEPRINCE_PASSPHRASE and otherwise prompts on the
// terminal without echo.
func readPassphrase(prompt string) (string, error) {
	if pass := strings.TrimSpace(os.Getenv(passphraseEnv)); pass != "" {
		return pass, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no terminal to prompt for a passphrase; set %s", passphraseEnv)
	}
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}
