package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/splitledger/splitledger/internal/id"
	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/model"
	"github.com/splitledger/splitledger/internal/settle"
)

func newSettleCommand(opts *options) *cobra.Command {
	var record bool

	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Show the payments that settle all balances",
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
			plan := settle.Plan(res.Balances)
			if len(plan) == 0 {
				fmt.Fprintln(out, "Everyone is settled up.")
				return nil
			}
			for _, s := range plan {
				fmt.Fprintf(out, "%s pays %s %s\n",
					model.PersonName(roster, s.From), model.PersonName(roster, s.To), e.money(s.Amount))
			}
			if !record {
				return nil
			}

			next, err := e.svc.NextExpenseSeq()
			if err != nil {
				return err
			}
			seq := id.NewSequence(next - 1)
			added, err := e.svc.AddExpenses(settle.AsExpenses(plan, e.cfg.Journey.ID, roster, time.Now(), seq.Next))
			if err != nil {
				return fmt.Errorf("recording settlement: %w", err)
			}

			ids := make([]string, len(added))
			for i, exp := range added {
				ids[i] = exp.ID
			}
			msg := fmt.Sprintf("settle: record %d payments", len(added))
			if _, err := e.record("settle", msg, msg, ids...); err != nil {
				return err
			}
			fmt.Fprintf(out, "Recorded %d settlement payments.\n", len(added))
			return nil
		},
	}

	cmd.Flags().BoolVar(&record, "record", false, "record the payments as settlement expenses")

	return cmd
}
