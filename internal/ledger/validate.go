package ledger

import (
	"errors"
	"fmt"

	"github.com/splitledger/splitledger/internal/model"
)

var (
	ErrEmptySplit        = errors.New("split must name at least one person")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrMissingPayer      = errors.New("payer is required")
	ErrUnknownPerson     = errors.New("person is not on the roster")
)

// ValidationError describes an expense that cannot enter the ledger.
type ValidationError struct {
	ExpenseID string
	Field     string
	Err       error
}

func (e *ValidationError) Error() string {
	id := e.ExpenseID
	if id == "" {
		id = "new expense"
	}
	return fmt.Sprintf("invalid expense [%s]: %s: %v", id, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ValidateExpense checks the invariants the balance fold depends on.
func ValidateExpense(e model.Expense) error {
	if !e.Amount.IsPositive() {
		return &ValidationError{ExpenseID: e.ID, Field: "amount", Err: ErrNonPositiveAmount}
	}
	if e.PaidBy == "" {
		return &ValidationError{ExpenseID: e.ID, Field: "paid_by", Err: ErrMissingPayer}
	}
	if len(e.SplitBetween) == 0 {
		return &ValidationError{ExpenseID: e.ID, Field: "split_between", Err: ErrEmptySplit}
	}
	for _, id := range e.SplitBetween {
		if id == "" {
			return &ValidationError{ExpenseID: e.ID, Field: "split_between", Err: ErrEmptySplit}
		}
	}
	return nil
}

// ValidateMembers checks that the payer and every split member are on the roster.
func ValidateMembers(e model.Expense, roster []model.Person) error {
	if _, ok := model.FindPerson(roster, e.PaidBy); !ok {
		return &ValidationError{
			ExpenseID: e.ID,
			Field:     "paid_by",
			Err:       fmt.Errorf("%w: %q", ErrUnknownPerson, e.PaidBy),
		}
	}
	for _, id := range e.SplitBetween {
		if _, ok := model.FindPerson(roster, id); !ok {
			return &ValidationError{
				ExpenseID: e.ID,
				Field:     "split_between",
				Err:       fmt.Errorf("%w: %q", ErrUnknownPerson, id),
			}
		}
	}
	return nil
}
