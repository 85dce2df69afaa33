package main

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jadiha/little-prince/internal/config"
	"github.com/jadiha/little-prince/internal/server"
	"github.com/jadiha/little-prince/internal/util"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the flavor-text proxy on /api/prince",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			srv := server.New(newGenerator(cfg), server.WithTimeout(cfg.Prince.Timeout))
			watchConfig(srv)

			fmt.Fprintf(cmd.ErrOrStderr(), "Prince proxy running on %s\n", cfg.Server.Addr)
			return srv.ListenAndServe(cmd.Context(), cfg.Server.Addr)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :3001)")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	return cmd
}

// watchConfig swaps the generator when the config file changes, so the claude
// model or budget can be changed without a restart.
func watchConfig(srv *server.Server) {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := config.Load()
		if err != nil {
			util.LogError("reload config", err)
			return
		}
		util.SetVerbose(cfg.Verbose)
		srv.SetGenerator(newGenerator(cfg))
		util.Debugf("config: reloaded %s", e.Name)
	})
	viper.WatchConfig()
}
