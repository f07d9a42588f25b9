package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitledger/splitledger/internal/model"
)

func TestComputeBalances_ThreeWayEvenSplit(t *testing.T) {
	res, err := ComputeBalances(
		[]model.Expense{expense("e1", "90", "A", "A", "B", "C")},
		roster("A", "B", "C"),
	)
	require.NoError(t, err)

	assert.True(t, res.Total.Equal(d("90")), "total = %s", res.Total)
	assert.True(t, res.Get("A").Equal(d("-60")), "A = %s", res.Get("A"))
	assert.True(t, res.Get("B").Equal(d("30")), "B = %s", res.Get("B"))
	assert.True(t, res.Get("C").Equal(d("30")), "C = %s", res.Get("C"))
}

func TestComputeBalances_UnevenSplitCloses(t *testing.T) {
	res, err := ComputeBalances(
		[]model.Expense{expense("e1", "100", "A", "A", "B", "C")},
		roster("A", "B", "C"),
	)
	require.NoError(t, err)

	assert.True(t, IsSettled(sum(res)), "balances sum to %s", sum(res))
	assert.True(t, RoundCents(res.Get("B")).Equal(d("33.33")))
	assert.True(t, RoundCents(res.Get("A")).Equal(d("-66.67")))
}

func TestComputeBalances_SeedsRosterInOrder(t *testing.T) {
	res, err := ComputeBalances(nil, roster("A", "B", "C"))
	require.NoError(t, err)

	require.Len(t, res.Balances, 3)
	for i, id := range []string{"A", "B", "C"} {
		assert.Equal(t, id, res.Balances[i].PersonID)
		assert.True(t, res.Balances[i].Amount.IsZero())
	}
	assert.True(t, res.Total.IsZero())
}

func TestComputeBalances_Closure(t *testing.T) {
	expenses := []model.Expense{
		expense("e1", "100", "A", "A", "B", "C"),
		expense("e2", "17.35", "B", "A", "C"),
		expense("e3", "250.10", "C", "A", "B", "C", "D"),
		expense("e4", "9.99", "D", "D"),
		expense("e5", "12", "A", "B"),
		expense("e6", "0.07", "B", "A", "B", "C"),
	}
	res, err := ComputeBalances(expenses, roster("A", "B", "C", "D"))
	require.NoError(t, err)

	assert.True(t, IsSettled(sum(res)), "balances sum to %s", sum(res))

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	assert.True(t, res.Total.Equal(total), "total = %s, want %s", res.Total, total)
}

func TestComputeBalances_DuplicateSplitMembersCountOnce(t *testing.T) {
	res, err := ComputeBalances(
		[]model.Expense{expense("e1", "90", "A", "A", "B", "B", "C")},
		roster("A", "B", "C"),
	)
	require.NoError(t, err)

	assert.True(t, res.Get("B").Equal(d("30")), "B = %s", res.Get("B"))
	assert.True(t, IsSettled(sum(res)))
}

func TestComputeBalances_OffRosterIDsAppended(t *testing.T) {
	res, err := ComputeBalances(
		[]model.Expense{expense("e1", "40", "X", "A", "X")},
		roster("A"),
	)
	require.NoError(t, err)

	require.Len(t, res.Balances, 2)
	assert.Equal(t, "A", res.Balances[0].PersonID)
	assert.Equal(t, "X", res.Balances[1].PersonID)
	assert.True(t, res.Get("X").Equal(d("-20")))
}

func TestComputeBalances_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		expense model.Expense
		field   string
		want    error
	}{
		{"empty split", expense("bad", "10", "A"), "split_between", ErrEmptySplit},
		{"zero amount", expense("bad", "0", "A", "A"), "amount", ErrNonPositiveAmount},
		{"negative amount", expense("bad", "-5", "A", "A"), "amount", ErrNonPositiveAmount},
		{"no payer", expense("bad", "5", "", "A"), "paid_by", ErrMissingPayer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ComputeBalances([]model.Expense{expense("ok", "10", "A", "A"), tt.expense}, roster("A"))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "bad", verr.ExpenseID)
			assert.Equal(t, tt.field, verr.Field)
			assert.Empty(t, res.Balances, "no partial result on error")
		})
	}
}

func TestComputeBalances_DoesNotMutateInput(t *testing.T) {
	expenses := []model.Expense{expense("e1", "30", "A", "B", "A", "B")}
	_, err := ComputeBalances(expenses, roster("A", "B"))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "B"}, expenses[0].SplitBetween)
}

func TestResultMap(t *testing.T) {
	res, err := ComputeBalances([]model.Expense{expense("e1", "10", "A", "B")}, roster("A", "B"))
	require.NoError(t, err)

	m := res.Map()
	assert.Len(t, m, 2)
	assert.True(t, m["A"].Equal(d("-10")))
	assert.True(t, m["B"].Equal(d("10")))
	assert.True(t, res.Get("missing").IsZero())
}
