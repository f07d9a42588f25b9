package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/splitledger/splitledger/internal/model"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func roster(ids ...string) []model.Person {
	people := make([]model.Person, len(ids))
	for i, id := range ids {
		people[i] = model.Person{ID: id, Name: id}
	}
	return people
}

func expense(id, amount, paidBy string, split ...string) model.Expense {
	return model.Expense{ID: id, Title: id, Amount: d(amount), PaidBy: paidBy, SplitBetween: split}
}

func sum(r Result) decimal.Decimal {
	total := decimal.Zero
	for _, b := range r.Balances {
		total = total.Add(b.Amount)
	}
	return total
}
