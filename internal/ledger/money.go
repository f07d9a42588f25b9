// Package ledger folds shared expenses into per-person balances.
//
// Balances use the sign convention of the group: a positive amount means the
// person owes money into the group, a negative amount means the group owes
// them. All arithmetic is done at full decimal precision; rounding to cents
// happens only when a value leaves the package as a summary or settlement.
package ledger

import "github.com/shopspring/decimal"

// Epsilon is the tolerance below which an amount is treated as settled.
var Epsilon = decimal.New(1, -2)

// RoundCents rounds d to two decimal places, half away from zero.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// IsSettled reports whether d is within Epsilon of zero.
func IsSettled(d decimal.Decimal) bool {
	return d.Abs().LessThanOrEqual(Epsilon)
}
