package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jadiha/little-prince/internal/config"
	"github.com/jadiha/little-prince/internal/database"
	"github.com/jadiha/little-prince/internal/tui"
	"github.com/jadiha/little-prince/internal/util"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open your universe (the default)",
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	m := tui.NewModel(cmd.Context(), a.store, a.princeService(),
		tui.WithTheme(savedTheme(cmd.Context(), a.db, a.cfg.Theme)),
		tui.WithSettings(a.db),
		tui.WithReportDir(util.ReportsDir(config.AppName)),
	)
	return tui.Run(m)
}

// savedTheme prefers the theme last picked in the TUI over the configured one.
func savedTheme(ctx context.Context, settings database.SettingsRepository, fallback string) string {
	name, ok, err := settings.GetSetting(ctx, database.SettingTheme)
	if err != nil {
		util.LogError("load theme", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	if _, known := tui.Themes[name]; !known {
		return fallback
	}
	return name
}
