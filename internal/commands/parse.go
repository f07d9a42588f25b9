package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/splitledger/splitledger/internal/model"
	"github.com/splitledger/splitledger/internal/parser"
)

var errNoCurrentUser = errors.New("current_user is not set in config")

func newParseCommand(opts *options) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Record expenses written as plain text, one per line",
		Long: `Parse free-text expense lines such as "I paid 200 for dinner".
Reads from a file, or from stdin when the argument is "-". With no
argument, prints the supported formats.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				roster, err := e.svc.People()
				if err != nil {
					return err
				}
				fmt.Fprint(out, parser.ExampleText(roster))
				return nil
			}

			text, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			outcome, err := e.parseText(text, dryRun)
			if err != nil {
				return err
			}
			outcome.print(out, e)
			if dryRun || len(outcome.added) == 0 {
				return nil
			}

			msg := fmt.Sprintf("parse: add %d expenses", len(outcome.added))
			_, err = e.record("parse", msg, msg, outcome.ids()...)
			return err
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be recorded without saving")

	return cmd
}

func readInput(stdin io.Reader, arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", arg, err)
	}
	return string(data), nil
}

// parseOutcome is the result of turning one block of text into expenses.
type parseOutcome struct {
	roster     []model.Person
	added      []model.Expense
	lineErrors []parser.LineError
}

func (o parseOutcome) ids() []string {
	ids := make([]string, len(o.added))
	for i, exp := range o.added {
		ids[i] = exp.ID
	}
	return ids
}

func (o parseOutcome) print(out io.Writer, e *env) {
	for _, exp := range o.added {
		printExpense(out, e, o.roster, exp)
	}
	for _, msg := range (parser.Result{Errors: o.lineErrors}).Messages() {
		fmt.Fprintln(out, msg)
	}
}

// parseText parses text against the roster and, unless dryRun is set,
// stores the valid lines. In a dry run the expenses are returned without IDs.
func (e *env) parseText(text string, dryRun bool) (parseOutcome, error) {
	if e.cfg.CurrentUser == "" {
		return parseOutcome{}, errNoCurrentUser
	}
	roster, err := e.svc.People()
	if err != nil {
		return parseOutcome{}, err
	}

	res := parser.Parse(text, roster)
	drafts := parser.SubstituteCurrentUser(res.Drafts, e.cfg.CurrentUser)

	now := time.Now()
	expenses := make([]model.Expense, len(drafts))
	for i, d := range drafts {
		expenses[i] = d.Expense("", e.cfg.Journey.ID, now)
	}

	outcome := parseOutcome{roster: roster, added: expenses, lineErrors: res.Errors}
	if dryRun {
		return outcome, nil
	}
	added, err := e.svc.AddExpenses(expenses)
	if err != nil {
		return parseOutcome{}, err
	}
	outcome.added = added
	return outcome, nil
}
