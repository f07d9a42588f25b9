package settle

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/model"
)

func TestAsExpenses(t *testing.T) {
	people := []model.Person{{ID: "A", Name: "Amit"}, {ID: "B", Name: "Priya"}, {ID: "C", Name: "Raj"}}
	plan := []model.Settlement{
		{From: "B", To: "A", Amount: d("30")},
		{From: "C", To: "A", Amount: d("30")},
	}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seq := 0
	newID := func() string { seq++; return fmt.Sprintf("exp-%04d", seq) }

	got := AsExpenses(plan, "goa", people, now, newID)
	require.Len(t, got, 2)

	assert.Equal(t, "exp-0001", got[0].ID)
	assert.Equal(t, "goa", got[0].JourneyID)
	assert.Equal(t, "Settlement: Payment 1 of 2", got[0].Title)
	assert.Equal(t, "B", got[0].PaidBy)
	assert.Equal(t, []string{"A"}, got[0].SplitBetween)
	assert.Equal(t, model.CategorySettlement, got[0].Category)
	assert.Equal(t, "Settlement payment from Priya to Amit", got[0].Description)
	assert.Equal(t, now, got[0].Date)
	assert.Equal(t, "exp-0002", got[1].ID)
	assert.Equal(t, "Settlement: Payment 2 of 2", got[1].Title)
}

func TestAsExpenses_ZeroesLedger(t *testing.T) {
	people := roster("A", "B", "C", "D")
	expenses := []model.Expense{
		{ID: "e1", Amount: d("100"), PaidBy: "A", SplitBetween: []string{"A", "B", "C"}},
		{ID: "e2", Amount: d("60"), PaidBy: "D", SplitBetween: []string{"A", "B", "C", "D"}},
		{ID: "e3", Amount: d("12.34"), PaidBy: "B", SplitBetween: []string{"C"}},
	}
	before, err := ledger.ComputeBalances(expenses, people)
	require.NoError(t, err)

	seq := 0
	newID := func() string { seq++; return fmt.Sprintf("s-%d", seq) }
	recorded := AsExpenses(Plan(before.Balances), "j", people, time.Now(), newID)

	after, err := ledger.ComputeBalances(append(expenses, recorded...), people)
	require.NoError(t, err)
	for _, b := range after.Balances {
		assert.True(t, b.Amount.Abs().LessThanOrEqual(ledger.Epsilon.Mul(d("2"))),
			"%s still at %s", b.PersonID, b.Amount)
	}
	assert.Empty(t, Plan(after.Balances))
}
