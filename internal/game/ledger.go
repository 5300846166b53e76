/*
Package game
File: ledger.go
Description:
    The ResourceLedger holds the player's point balance and the per-click
    yield. It is the single gate on affordability: every spend in the game
    goes through Debit, which refuses to take the balance negative.
*/

package game

// ResourceLedger tracks the scalar point balance for one session.
// Balance is fractional (passive production credits tenths per tick)
// and never goes below zero.
type ResourceLedger struct {
	Balance    float64 `json:"balance"`
	ClickYield float64 `json:"click_yield"`
}

// NewResourceLedger creates a ledger with the configured starting balance.
func NewResourceLedger(balance GameBalance) *ResourceLedger {
	yield := balance.ClickYield
	if yield <= 0 {
		yield = 1
	}
	return &ResourceLedger{
		Balance:    balance.StartingPoints,
		ClickYield: yield,
	}
}

// Credit adds points to the balance. There is no upper bound.
// Negative amounts are ignored so the balance invariant cannot be
// bypassed through a disguised debit.
func (l *ResourceLedger) Credit(amount float64) {
	if amount < 0 {
		return
	}
	l.Balance += amount
}

// Debit removes points if (and only if) the full amount is available.
// Returns false and leaves the balance untouched otherwise. There are
// no partial debits; callers must check the result.
func (l *ResourceLedger) Debit(amount float64) bool {
	if amount < 0 {
		return false
	}
	if l.Balance < amount {
		return false
	}
	l.Balance -= amount
	return true
}

// CanAfford reports whether a Debit of the given amount would succeed.
// Pure query; no state change.
func (l *ResourceLedger) CanAfford(amount float64) bool {
	return l.Balance >= amount
}
