package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jadiha/little-prince/internal/config"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the claude CLI is available for the prince",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			out := cmd.ErrOrStderr()
			if cfg.Prince.Endpoint != "" {
				fmt.Fprintf(out, "✓ prince endpoint configured: %s\n", cfg.Prince.Endpoint)
			}
			if err := newInvoker(cfg).Validate(); err != nil {
				fmt.Fprintf(out, "✗ claude: %v\n", err)
				fmt.Fprintln(out, "  the prince will speak from his fallback lines")
				return nil
			}
			fmt.Fprintln(out, "✓ claude CLI found")
			return nil
		},
	}
}
