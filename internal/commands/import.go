package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/splitledger/splitledger/internal/importer"
)

func newImportCommand(opts *options) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Parse every text file waiting in the import/ inbox",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(opts)
			if err != nil {
				return err
			}
			files, err := importer.Scan(e.root)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(files) == 0 {
				fmt.Fprintln(out, "No files to import.")
				return nil
			}

			var (
				ids       []string
				processed []string
			)
			// commit records the files already imported, so a failure on a
			// later file still leaves the earlier ones committed and logged.
			commit := func() error {
				if dryRun || (len(processed) == 0 && len(ids) == 0) {
					return nil
				}
				msg := fmt.Sprintf("import: %d files, %d expenses", len(processed), len(ids))
				_, err := e.record("import", msg, msg, ids...)
				return err
			}

			for _, f := range files {
				outcome, err := importFile(e, f, dryRun)
				if err != nil {
					ids = append(ids, outcome.ids()...)
					if rerr := commit(); rerr != nil {
						return errors.Join(err, rerr)
					}
					return err
				}
				fmt.Fprintf(out, "%s: %d expenses, %d errors\n", f.Name, len(outcome.added), len(outcome.lineErrors))
				outcome.print(out, e)
				if dryRun {
					continue
				}
				processed = append(processed, f.Name)
				ids = append(ids, outcome.ids()...)
			}
			return commit()
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be recorded without saving or moving files")

	return cmd
}

// importFile parses one inbox file and, unless dryRun is set, saves its
// expenses and moves it to processed/. If the move fails the saved expenses
// are still returned with the error.
func importFile(e *env, f importer.FileInfo, dryRun bool) (parseOutcome, error) {
	text, err := importer.Read(f)
	if err != nil {
		return parseOutcome{}, err
	}
	outcome, err := e.parseText(text, dryRun)
	if err != nil {
		return parseOutcome{}, fmt.Errorf("importing %s: %w", f.Name, err)
	}
	if dryRun {
		return outcome, nil
	}
	if err := importer.MarkProcessed(e.root, f.Name); err != nil {
		return outcome, err
	}
	slog.Debug("Import file processed", "file", f.Name, "expenses", len(outcome.added))
	return outcome, nil
}
