package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/splitledger/splitledger/internal/config"
	"github.com/splitledger/splitledger/internal/gitops"
	"github.com/splitledger/splitledger/internal/id"
	"github.com/splitledger/splitledger/internal/journey"
)

type initParams struct {
	name     string
	me       string
	members  []string
	currency string
	git      bool
}

func newInitCommand(opts *options) *cobra.Command {
	var p initParams

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new journey",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := opts.repo
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized journey %q at %s\n", p.name, absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&p.name, "name", "", "journey name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&p.me, "me", "Me", "your own name in the roster")
	cmd.Flags().StringSliceVar(&p.members, "member", nil, "other participant (repeatable)")
	cmd.Flags().StringVar(&p.currency, "currency", "", "currency symbol for display")
	cmd.Flags().BoolVar(&p.git, "git", true, "initialize a git repository and auto-commit changes")

	return cmd
}

func runInit(dir string, p initParams) error {
	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err == nil {
		return fmt.Errorf("journey already initialized at %s", dir)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	// Create directory structure.
	dirs := []string{
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(id.NewJourneyID(), p.name)
	if p.currency != "" {
		cfg.Journey.Currency = p.currency
	}
	cfg.Git.AutoCommit = p.git

	// Seed the roster with the current user, then the other members.
	svc := journey.NewService(dir, cfg.Journey.ID)
	me, err := svc.AddPerson(p.me, "", "")
	if err != nil {
		return fmt.Errorf("adding %s: %w", p.me, err)
	}
	cfg.CurrentUser = me.ID
	for _, name := range p.members {
		if _, err := svc.AddPerson(name, "", ""); err != nil {
			return fmt.Errorf("adding %s: %w", name, err)
		}
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// The activity log stays local to each checkout.
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("logs/\n"), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if !p.git {
		return nil
	}
	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	if _, err := gitops.CommitAll(dir, "init: Initialize "+p.name, cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}
	return nil
}
