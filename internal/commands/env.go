package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/splitledger/splitledger/internal/activitylog"
	"github.com/splitledger/splitledger/internal/config"
	"github.com/splitledger/splitledger/internal/gitops"
	"github.com/splitledger/splitledger/internal/journey"
	"github.com/splitledger/splitledger/internal/ledger"
)

// env is a loaded journey: its directory, config and store.
type env struct {
	root string
	cfg  *config.Config
	svc  *journey.Service
}

func loadEnv(opts *options) (*env, error) {
	root, err := filepath.Abs(opts.repo)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	cfg, err := config.LoadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no %s in %s (run splitledger init first)", config.FileName, root)
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("Journey loaded", "root", root, "journey", cfg.Journey.ID)
	return &env{root: root, cfg: cfg, svc: journey.NewService(root, cfg.Journey.ID)}, nil
}

// money formats an amount with the journey's currency symbol.
func (e *env) money(amount decimal.Decimal) string {
	return e.cfg.Journey.Currency + ledger.RoundCents(amount).StringFixed(2)
}

// record commits the journey if auto-commit is on and the directory is a
// git repository, then appends one activity log entry per expense ID (or a
// single entry when there are none).
func (e *env) record(command, details, message string, expenseIDs ...string) (string, error) {
	hash := ""
	if e.cfg.Git.AutoCommit && gitops.IsRepo(e.root) {
		var err error
		hash, err = gitops.CommitAll(e.root, message, e.cfg.Git.AuthorName, e.cfg.Git.AuthorEmail)
		if err != nil {
			return "", fmt.Errorf("committing: %w", err)
		}
		slog.Debug("Committed", "hash", hash, "message", message)
	}

	now := time.Now().UTC()
	if len(expenseIDs) == 0 {
		expenseIDs = []string{""}
	}
	entries := make([]activitylog.Entry, len(expenseIDs))
	for i, id := range expenseIDs {
		entries[i] = activitylog.Entry{
			Timestamp:  now,
			Command:    command,
			Details:    details,
			ExpenseID:  id,
			CommitHash: hash,
		}
	}
	if err := activitylog.Append(e.root, entries); err != nil {
		return "", fmt.Errorf("writing activity log: %w", err)
	}
	return hash, nil
}
