package journey

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/model"
)

func newTestService(t *testing.T) (*Service, model.Person, model.Person) {
	t.Helper()
	svc := NewService(t.TempDir(), "goa")
	amit, err := svc.AddPerson("Amit", "", "")
	require.NoError(t, err)
	priya, err := svc.AddPerson("Priya", "", "priya@example.com")
	require.NoError(t, err)
	return svc, amit, priya
}

func TestAddPerson(t *testing.T) {
	svc, amit, priya := newTestService(t)

	people, err := svc.People()
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, amit, people[0])
	assert.Equal(t, priya, people[1])
	assert.NotEmpty(t, amit.ID)
	assert.NotEqual(t, amit.ID, priya.ID)
}

func TestAddPerson_RejectsDuplicateName(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.AddPerson("amit", "", "")
	assert.ErrorIs(t, err, ErrDuplicatePerson)

	_, err = svc.AddPerson("  ", "", "")
	assert.Error(t, err)
}

func TestPersonResolve(t *testing.T) {
	svc, amit, _ := newTestService(t)

	byName, err := svc.Person("AMIT")
	require.NoError(t, err)
	assert.Equal(t, amit, byName)

	byID, err := svc.Person(amit.ID)
	require.NoError(t, err)
	assert.Equal(t, amit, byID)

	_, err = svc.Person("raj")
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestAddExpense(t *testing.T) {
	svc, amit, priya := newTestService(t)
	date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	e, err := svc.AddExpense(AddExpenseParams{
		Date:         date,
		Title:        "Dinner",
		Amount:       decimal.NewFromInt(90),
		PaidBy:       amit.ID,
		SplitBetween: []string{amit.ID, priya.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "exp-0001", e.ID)
	assert.Equal(t, "goa", e.JourneyID)

	e2, err := svc.AddExpense(AddExpenseParams{
		Date:         date,
		Title:        "Taxi",
		Amount:       decimal.NewFromInt(30),
		PaidBy:       priya.ID,
		SplitBetween: []string{amit.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "exp-0002", e2.ID)

	expenses, err := svc.Expenses()
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Dinner", expenses[0].Title)
	assert.Equal(t, date, expenses[0].Date)
	assert.Equal(t, "Taxi", expenses[1].Title)

	// The file starts with exactly one header.
	data, err := os.ReadFile(filepath.Join(svc.Root(), expensesFile))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), ExpenseHeader))
}

func TestAddExpense_DefaultsDate(t *testing.T) {
	svc, amit, _ := newTestService(t)
	e, err := svc.AddExpense(AddExpenseParams{
		Title: "Tea", Amount: decimal.NewFromInt(5), PaidBy: amit.ID, SplitBetween: []string{amit.ID},
	})
	require.NoError(t, err)
	assert.False(t, e.Date.IsZero())
}

func TestAddExpenses_Validation(t *testing.T) {
	svc, amit, priya := newTestService(t)

	tests := []struct {
		name    string
		expense model.Expense
		want    error
	}{
		{"empty split", model.Expense{Amount: decimal.NewFromInt(10), PaidBy: amit.ID}, ledger.ErrEmptySplit},
		{"zero amount", model.Expense{Amount: decimal.Zero, PaidBy: amit.ID, SplitBetween: []string{amit.ID}}, ledger.ErrNonPositiveAmount},
		{"unknown payer", model.Expense{Amount: decimal.NewFromInt(10), PaidBy: "ghost", SplitBetween: []string{amit.ID}}, ledger.ErrUnknownPerson},
		{"placeholder left in", model.Expense{Amount: decimal.NewFromInt(10), PaidBy: amit.ID, SplitBetween: []string{model.CurrentUser}}, ledger.ErrUnknownPerson},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid := model.Expense{Amount: decimal.NewFromInt(1), PaidBy: priya.ID, SplitBetween: []string{amit.ID}}
			_, err := svc.AddExpenses([]model.Expense{valid, tt.expense})
			assert.ErrorIs(t, err, tt.want)

			// Nothing is written when one expense is invalid.
			expenses, err := svc.Expenses()
			require.NoError(t, err)
			assert.Empty(t, expenses)
		})
	}
}

func TestAddExpenses_RoundsBeforeValidating(t *testing.T) {
	svc, amit, priya := newTestService(t)

	_, err := svc.AddExpense(AddExpenseParams{
		Title: "Gum", Amount: decimal.RequireFromString("0.004"), PaidBy: amit.ID, SplitBetween: []string{priya.ID},
	})
	assert.ErrorIs(t, err, ledger.ErrNonPositiveAmount)

	e, err := svc.AddExpense(AddExpenseParams{
		Title: "Cab", Amount: decimal.RequireFromString("33.335"), PaidBy: amit.ID, SplitBetween: []string{amit.ID, priya.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "33.34", e.Amount.String())

	expenses, err := svc.Expenses()
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.True(t, expenses[0].Amount.Equal(e.Amount), "stored %s, returned %s", expenses[0].Amount, e.Amount)

	people, err := svc.People()
	require.NoError(t, err)
	_, err = ledger.ComputeBalances(expenses, people)
	assert.NoError(t, err)
}

func TestDeleteExpense(t *testing.T) {
	svc, amit, priya := newTestService(t)
	for _, title := range []string{"a", "b", "c"} {
		_, err := svc.AddExpense(AddExpenseParams{
			Title: title, Amount: decimal.NewFromInt(10), PaidBy: amit.ID, SplitBetween: []string{priya.ID},
		})
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteExpense("exp-0002"))
	expenses, err := svc.Expenses()
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "exp-0001", expenses[0].ID)
	assert.Equal(t, "exp-0003", expenses[1].ID)

	assert.ErrorIs(t, svc.DeleteExpense("exp-0002"), ErrExpenseNotFound)

	// Sequence numbers are not reused after a delete.
	next, err := svc.NextExpenseSeq()
	require.NoError(t, err)
	assert.Equal(t, 4, next)
}

func TestEmptyJourney(t *testing.T) {
	svc := NewService(t.TempDir(), "empty")

	people, err := svc.People()
	require.NoError(t, err)
	assert.Empty(t, people)

	expenses, err := svc.Expenses()
	require.NoError(t, err)
	assert.Empty(t, expenses)

	next, err := svc.NextExpenseSeq()
	require.NoError(t, err)
	assert.Equal(t, 1, next)
}
