package id

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// expensePrefix starts every expense ID.
const expensePrefix = "exp-"

// FormatExpenseID returns an expense ID like "exp-0007".
func FormatExpenseID(seq int) string {
	return fmt.Sprintf("%s%04d", expensePrefix, seq)
}

// ParseExpenseID parses "exp-0007" into its sequence number.
func ParseExpenseID(id string) (int, error) {
	rest, ok := strings.CutPrefix(id, expensePrefix)
	if !ok || rest == "" {
		return 0, fmt.Errorf("invalid expense ID format: %q", id)
	}
	seq, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid sequence in expense ID %q: %w", id, err)
	}
	if seq < 1 {
		return 0, fmt.Errorf("invalid sequence in expense ID %q: must be positive", id)
	}
	return seq, nil
}

// NewPersonID returns a fresh random person ID.
func NewPersonID() string {
	return uuid.NewString()
}

// NewJourneyID returns a fresh random journey ID.
func NewJourneyID() string {
	return uuid.NewString()
}

// Sequence hands out consecutive expense IDs starting after last.
type Sequence struct {
	last int
}

// NewSequence returns a Sequence whose first ID is last+1.
func NewSequence(last int) *Sequence {
	return &Sequence{last: last}
}

// Next returns the next expense ID.
func (s *Sequence) Next() string {
	s.last++
	return FormatExpenseID(s.last)
}
