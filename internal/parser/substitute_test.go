package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitledger/splitledger/internal/model"
)

func TestSubstituteCurrentUser(t *testing.T) {
	drafts := Parse("I paid 90 for dinner\nI owe amit 10", testRoster).Drafts
	require.Len(t, drafts, 2)

	got := SubstituteCurrentUser(drafts, "p-me")
	require.Len(t, got, 2)
	assert.Equal(t, "p-me", got[0].PaidBy)
	assert.Equal(t, []string{"p-amit", "p-priya", "p-me"}, got[0].SplitBetween)
	assert.Equal(t, "p-amit", got[1].PaidBy)
	assert.Equal(t, []string{"p-me"}, got[1].SplitBetween)

	// Input untouched.
	assert.Equal(t, model.CurrentUser, drafts[0].PaidBy)
	assert.Contains(t, drafts[0].SplitBetween, model.CurrentUser)
}

func TestSubstituteCurrentUser_RosterMemberIsMe(t *testing.T) {
	drafts := Parse("I paid 90 for dinner", testRoster).Drafts
	got := SubstituteCurrentUser(drafts, "p-amit")

	assert.Equal(t, "p-amit", got[0].PaidBy)
	assert.Equal(t, []string{"p-amit", "p-priya"}, got[0].SplitBetween)
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"dinner", "Food & Dining"},
		{"Taxi ride", "Transportation"},
		{"hotel in goa", "Accommodation"},
		{"movie tickets", "Entertainment"},
		{"gift for mom", "Shopping"},
		{"misc", CategoryGeneral},
		{"", CategoryGeneral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferCategory(tt.desc), "InferCategory(%q)", tt.desc)
	}
}

func TestExampleText(t *testing.T) {
	text := ExampleText(testRoster)
	assert.Contains(t, text, "I owe amit 100 rs")
	assert.Contains(t, text, "priya owes me 50 rs")

	fallback := ExampleText(nil)
	assert.Contains(t, fallback, "I owe amit 100 rs")

	// Every example line except the prose must parse cleanly.
	res := Parse("I owe amit 100 rs\npriya owes me 50 rs\nI paid 200 for dinner\namit paid 150 for groceries\n300 taxi ride\n250 movie tickets", testRoster)
	assert.Empty(t, res.Errors)
	assert.Len(t, res.Drafts, 6)
}
