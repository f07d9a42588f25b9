package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/model"
)

func newBalancesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show what everyone owes or is owed",
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
			res, err := ledger.ComputeBalances(expenses, roster)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total spent: %s\n\n", e.money(res.Total))
			for _, b := range res.Balances {
				sum, err := ledger.PersonSummary(expenses, b.PersonID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-20s paid %10s  share %10s  %s\n",
					model.PersonName(roster, b.PersonID),
					e.money(sum.TotalPaid), e.money(sum.TotalShare), e.position(b.Amount))
			}
			return nil
		},
	}
}

// position describes a signed balance in words.
func (e *env) position(amount decimal.Decimal) string {
	switch {
	case ledger.IsSettled(amount):
		return "settled up"
	case amount.IsPositive():
		return "owes " + e.money(amount)
	default:
		return "is owed " + e.money(amount.Neg())
	}
}
