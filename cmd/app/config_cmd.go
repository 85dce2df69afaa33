package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jadiha/little-prince/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	var path string
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file holding every default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = defaultConfigPath()
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().StringVarP(&path, "path", "p", "", "where to write (default ~/.littleprince.toml)")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "database        %s\n", cfg.DBPath())
			fmt.Fprintf(out, "theme           %s\n", cfg.Theme)
			fmt.Fprintf(out, "prince.endpoint %s\n", cfg.Prince.Endpoint)
			fmt.Fprintf(out, "prince.timeout  %s\n", cfg.Prince.Timeout)
			fmt.Fprintf(out, "server.addr     %s\n", cfg.Server.Addr)
			fmt.Fprintf(out, "claude.path     %s\n", cfg.Claude.Path)
			fmt.Fprintf(out, "claude.model    %s\n", cfg.Claude.Model)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
