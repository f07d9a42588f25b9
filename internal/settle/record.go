package settle

import (
	"fmt"
	"time"

	"github.com/splitledger/splitledger/internal/model"
)

// AsExpenses converts a plan into expenses that, once recorded, cancel the
// balances the plan was computed from. Each payment becomes an expense paid
// by the debtor and split only to the creditor.
func AsExpenses(plan []model.Settlement, journeyID string, roster []model.Person, now time.Time, newID func() string) []model.Expense {
	expenses := make([]model.Expense, len(plan))
	for i, s := range plan {
		expenses[i] = model.Expense{
			ID:           newID(),
			JourneyID:    journeyID,
			Title:        fmt.Sprintf("Settlement: Payment %d of %d", i+1, len(plan)),
			Amount:       s.Amount,
			PaidBy:       s.From,
			SplitBetween: []string{s.To},
			Date:         now,
			Category:     model.CategorySettlement,
			Description: fmt.Sprintf("Settlement payment from %s to %s",
				model.PersonName(roster, s.From), model.PersonName(roster, s.To)),
		}
	}
	return expenses
}
