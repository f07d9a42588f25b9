// Package settle plans the payments that bring a ledger back to zero.
package settle

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/model"
)

type party struct {
	id        string
	remaining decimal.Decimal
}

// Plan matches debtors with creditors, largest first.
//
// People owing more than ledger.Epsilon are debtors, people owed more than
// ledger.Epsilon are creditors, everyone else is settled. Both sides are
// sorted by amount, descending, keeping input order for ties. The sweep then
// settles the current largest debtor against the current largest creditor
// until one side runs out. This greedy matching keeps the transaction count
// low but is not guaranteed to be the global minimum.
func Plan(balances []ledger.Balance) []model.Settlement {
	var debtors, creditors []party
	for _, b := range balances {
		switch {
		case b.Amount.GreaterThan(ledger.Epsilon):
			debtors = append(debtors, party{id: b.PersonID, remaining: b.Amount})
		case b.Amount.LessThan(ledger.Epsilon.Neg()):
			creditors = append(creditors, party{id: b.PersonID, remaining: b.Amount.Neg()})
		}
	}

	byRemaining := func(ps []party) func(i, j int) bool {
		return func(i, j int) bool { return ps[i].remaining.GreaterThan(ps[j].remaining) }
	}
	sort.SliceStable(debtors, byRemaining(debtors))
	sort.SliceStable(creditors, byRemaining(creditors))

	var plan []model.Settlement
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor, creditor := &debtors[i], &creditors[j]

		amount := decimal.Min(debtor.remaining, creditor.remaining)
		if rounded := ledger.RoundCents(amount); rounded.GreaterThan(ledger.Epsilon) {
			plan = append(plan, model.Settlement{From: debtor.id, To: creditor.id, Amount: rounded})
		}

		debtor.remaining = debtor.remaining.Sub(amount)
		creditor.remaining = creditor.remaining.Sub(amount)

		if debtor.remaining.LessThan(ledger.Epsilon) {
			i++
		}
		if creditor.remaining.LessThan(ledger.Epsilon) {
			j++
		}
	}
	return plan
}
