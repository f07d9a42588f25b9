package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/splitledger/splitledger/internal/journey"
	"github.com/splitledger/splitledger/internal/model"
	"github.com/splitledger/splitledger/internal/parser"
)

const dateLayout = "2006-01-02"

func newExpenseCommand(opts *options) *cobra.Command {
	expenseCmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and inspect expenses",
	}
	expenseCmd.AddCommand(
		newExpenseAddCommand(opts),
		newExpenseListCommand(opts),
		newExpenseDeleteCommand(opts),
	)
	return expenseCmd
}

type expenseAddParams struct {
	title       string
	amount      string
	paidBy      string
	split       []string
	category    string
	date        string
	description string
}

func newExpenseAddCommand(opts *options) *cobra.Command {
	var p expenseAddParams

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense shared equally between people",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(opts)
			if err != nil {
				return err
			}
			exp, err := runExpenseAdd(e, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s %s\n", exp.ID, exp.Title, e.money(exp.Amount))
			return nil
		},
	}

	cmd.Flags().StringVar(&p.title, "title", "", "short title (required)")
	cmd.Flags().StringVar(&p.amount, "amount", "", "amount paid (required)")
	cmd.Flags().StringVar(&p.paidBy, "paid-by", "", "payer name or ID (default: you)")
	cmd.Flags().StringSliceVar(&p.split, "split", nil, "names or IDs sharing the cost (required)")
	cmd.Flags().StringVar(&p.category, "category", "", "category (default: inferred from the title)")
	cmd.Flags().StringVar(&p.date, "date", "", "date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&p.description, "description", "", "free-form note")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("split")

	return cmd
}

func runExpenseAdd(e *env, p expenseAddParams) (model.Expense, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(p.amount))
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing amount %q: %w", p.amount, err)
	}

	date := time.Now()
	if p.date != "" {
		date, err = time.Parse(dateLayout, p.date)
		if err != nil {
			return model.Expense{}, fmt.Errorf("parsing date %q: %w", p.date, err)
		}
	}

	roster, err := e.svc.People()
	if err != nil {
		return model.Expense{}, err
	}

	payer := e.cfg.CurrentUser
	if p.paidBy != "" {
		person, err := journey.Resolve(roster, p.paidBy)
		if err != nil {
			return model.Expense{}, fmt.Errorf("paid-by: %w", err)
		}
		payer = person.ID
	}

	split := make([]string, 0, len(p.split))
	for _, ref := range p.split {
		person, err := journey.Resolve(roster, ref)
		if err != nil {
			return model.Expense{}, fmt.Errorf("split: %w", err)
		}
		split = append(split, person.ID)
	}

	category := p.category
	if category == "" {
		category = parser.InferCategory(p.title)
	}

	exp, err := e.svc.AddExpense(journey.AddExpenseParams{
		Date:         date,
		Title:        p.title,
		Amount:       amount,
		PaidBy:       payer,
		SplitBetween: split,
		Category:     category,
		Description:  p.description,
	})
	if err != nil {
		return model.Expense{}, err
	}

	if _, err := e.record("expense add", exp.Title, fmt.Sprintf("expense: add %s %s", exp.ID, exp.Title), exp.ID); err != nil {
		return model.Expense{}, err
	}
	return exp, nil
}

func newExpenseListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(opts)
			if err != nil {
				return err
			}
			roster, err := e.svc.People()
			if err != nil {
				return err
			}
			expenses, err := e.svc.Expenses()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(expenses) == 0 {
				fmt.Fprintln(out, "No expenses recorded.")
				return nil
			}
			for _, exp := range expenses {
				printExpense(out, e, roster, exp)
			}
			return nil
		},
	}
}

func printExpense(out io.Writer, e *env, roster []model.Person, exp model.Expense) {
	names := make([]string, 0, len(exp.SplitBetween))
	for _, pid := range model.UniqueMembers(exp.SplitBetween) {
		names = append(names, model.PersonName(roster, pid))
	}
	fmt.Fprintf(out, "%s  %s  %-24s %10s  paid by %s, split %s",
		exp.ID, exp.Date.Format(dateLayout), exp.Title, e.money(exp.Amount),
		model.PersonName(roster, exp.PaidBy), strings.Join(names, ", "))
	if exp.Category != "" {
		fmt.Fprintf(out, "  [%s]", exp.Category)
	}
	fmt.Fprintln(out)
}

func newExpenseDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <expense-id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(opts)
			if err != nil {
				return err
			}
			expenseID := args[0]
			if err := e.svc.DeleteExpense(expenseID); err != nil {
				return err
			}
			if _, err := e.record("expense delete", "", "expense: delete "+expenseID, expenseID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", expenseID)
			return nil
		},
	}
}
