package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategorySettlement marks expenses recorded to pay off a settlement.
const CategorySettlement = "Settlement"

// Expense represents a row in expenses.csv.
type Expense struct {
	ID           string
	JourneyID    string
	Title        string
	Amount       decimal.Decimal // always > 0
	PaidBy       string          // person ID
	SplitBetween []string        // person IDs, shared equally; duplicates count once
	Date         time.Time
	Category     string
	Description  string
}

// Settlement is a single directed payment instruction: From pays To.
type Settlement struct {
	From   string
	To     string
	Amount decimal.Decimal // rounded to cents
}

// Draft is a parsed expense that has no persistent identity yet.
// PaidBy and SplitBetween may contain CurrentUser.
type Draft struct {
	Title        string
	Amount       decimal.Decimal
	PaidBy       string
	SplitBetween []string
	Category     string
	Description  string
}

// Expense promotes the draft to an Expense with the given identity.
func (d Draft) Expense(id, journeyID string, date time.Time) Expense {
	return Expense{
		ID:           id,
		JourneyID:    journeyID,
		Title:        d.Title,
		Amount:       d.Amount,
		PaidBy:       d.PaidBy,
		SplitBetween: append([]string(nil), d.SplitBetween...),
		Date:         date,
		Category:     d.Category,
		Description:  d.Description,
	}
}

// UniqueMembers returns ids with duplicates removed, keeping first-seen order.
func UniqueMembers(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
