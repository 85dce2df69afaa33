package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jadiha/little-prince/internal/config"
	"github.com/jadiha/little-prince/internal/database"
	"github.com/jadiha/little-prince/internal/prince"
	"github.com/jadiha/little-prince/internal/tui"
	"github.com/jadiha/little-prince/internal/util"
)

func newExportCmd() *cobra.Command {
	var out string
	var encrypt bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole sky as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := database.ExportOptions{EncryptOutput: encrypt}
			if encrypt {
				pass, err := readPassphrase("Export passphrase: ")
				if err != nil {
					return err
				}
				if err := util.ValidatePassphrase(pass); err != nil {
					return fmt.Errorf("passphrase too weak: %w", err)
				}
				opts.Passphrase = pass
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			return writeExport(cmd, a.db, opts, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&encrypt, "encrypt", false, "encrypt with a passphrase")
	return cmd
}

func newImportCmd() *cobra.Command {
	var replace bool
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Load a JSON export or a browser storage dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			db, err := database.Open(cmd.Context(), cfg.DBPath())
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					util.LogError("close database", err)
				}
			}()

			if err := importSky(cmd.Context(), db, payload, replace, readPassphrase); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Import complete.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&replace, "replace", false, "replace existing data")
	return cmd
}

func writeExport(cmd *cobra.Command, repo database.BackupRepository, opts database.ExportOptions, out string) error {
	data, err := repo.Export(cmd.Context(), opts)
	if err != nil {
		return err
	}
	if out == "" || out == "-" {
		_, err = cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(out, data, 0o600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", out)
	return nil
}

// importSky loads payload into repo. While the export is encrypted or the
// passphrase is wrong it asks again, up to MaxPassphraseAttempts times, and
// stops early when ask repeats itself.
func importSky(ctx context.Context, repo database.BackupRepository, payload []byte, replace bool, ask func(prompt string) (string, error)) error {
	if !replace {
		has, err := repo.DatabaseHasData(ctx)
		if err != nil {
			return err
		}
		if has {
			return fmt.Errorf("%w; pass --replace to overwrite it", database.ErrDatabaseNotEmpty)
		}
	}

	opts := database.ImportOptions{Replace: replace}
	err := repo.Import(ctx, payload, opts)
	for tries := 0; tries < config.MaxPassphraseAttempts && isPassphraseErr(err); tries++ {
		pass, perr := ask("Import passphrase: ")
		if perr != nil {
			return perr
		}
		if tries > 0 && pass == opts.Passphrase {
			break
		}
		opts.Passphrase = pass
		err = repo.Import(ctx, payload, opts)
	}
	if errors.Is(err, database.ErrDatabaseNotEmpty) {
		return fmt.Errorf("%w; pass --replace to overwrite it", err)
	}
	return err
}

func isPassphraseErr(err error) bool {
	return errors.Is(err, database.ErrEncryptedExport) || errors.Is(err, database.ErrWrongPassphrase)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}
	return data, nil
}

func newReportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF report of the sky",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			snap := a.store.Snapshot()
			if out == "" {
				out = filepath.Join(util.ReportsDir(config.AppName), tui.ReportFileName(snap.Today, time.Now()))
			}
			if err := tui.WriteSkyReport(out, snap, prince.DefaultCatalog()); err != nil {
				return err
			}
			abs, _ := filepath.Abs(out)
			fmt.Fprintf(cmd.OutOrStdout(), "PDF report generated: %s\n", abs)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	return cmd
}
