package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/splitledger/splitledger/internal/model"
)

// Balance is one person's signed position in the ledger.
type Balance struct {
	PersonID string
	Amount   decimal.Decimal // positive = owes the group, negative = is owed
}

// Result is the outcome of folding a list of expenses.
type Result struct {
	Total    decimal.Decimal
	Balances []Balance // roster order, then unseen IDs in first-seen order
}

// Get returns the balance for personID, or zero if absent.
func (r Result) Get(personID string) decimal.Decimal {
	for _, b := range r.Balances {
		if b.PersonID == personID {
			return b.Amount
		}
	}
	return decimal.Zero
}

// Map returns the balances keyed by person ID.
func (r Result) Map() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(r.Balances))
	for _, b := range r.Balances {
		m[b.PersonID] = b.Amount
	}
	return m
}

// ComputeBalances folds expenses into a total and per-person balances.
//
// Every roster member starts at zero, so people without expenses still
// appear. For each expense the payer is credited the full amount and each
// distinct split member is debited an equal share. An invalid expense
// aborts the fold with a *ValidationError.
func ComputeBalances(expenses []model.Expense, roster []model.Person) (Result, error) {
	index := make(map[string]int, len(roster))
	var balances []Balance
	slot := func(id string) int {
		if i, ok := index[id]; ok {
			return i
		}
		index[id] = len(balances)
		balances = append(balances, Balance{PersonID: id, Amount: decimal.Zero})
		return index[id]
	}
	for _, p := range roster {
		slot(p.ID)
	}

	total := decimal.Zero
	for _, e := range expenses {
		if err := ValidateExpense(e); err != nil {
			return Result{}, err
		}
		members := model.UniqueMembers(e.SplitBetween)
		share := e.Amount.Div(decimal.NewFromInt(int64(len(members))))

		payer := slot(e.PaidBy)
		balances[payer].Amount = balances[payer].Amount.Sub(e.Amount)
		for _, id := range members {
			i := slot(id)
			balances[i].Amount = balances[i].Amount.Add(share)
		}
		total = total.Add(e.Amount)
	}

	return Result{Total: total, Balances: balances}, nil
}
