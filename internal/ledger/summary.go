package ledger

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/splitledger/splitledger/internal/model"
)

// Summary is what one person paid and what their fair share was.
type Summary struct {
	TotalPaid  decimal.Decimal
	TotalShare decimal.Decimal
	Balance    decimal.Decimal // TotalShare - TotalPaid
}

// PersonSummary totals the payments and shares of one person, rounded to
// cents only after accumulation.
func PersonSummary(expenses []model.Expense, personID string) (Summary, error) {
	paid := decimal.Zero
	share := decimal.Zero
	for _, e := range expenses {
		if err := ValidateExpense(e); err != nil {
			return Summary{}, err
		}
		if e.PaidBy == personID {
			paid = paid.Add(e.Amount)
		}
		members := model.UniqueMembers(e.SplitBetween)
		if slices.Contains(members, personID) {
			share = share.Add(e.Amount.Div(decimal.NewFromInt(int64(len(members)))))
		}
	}
	return Summary{
		TotalPaid:  RoundCents(paid),
		TotalShare: RoundCents(share),
		Balance:    RoundCents(share.Sub(paid)),
	}, nil
}
