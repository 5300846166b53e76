/*
Package game
File: catalog.go
Description:
    The UpgradeCatalog holds the ordered set of purchasable regions and
    their per-session state (owned count, current price). It implements
    the purchase transaction and the exponential cost ladder.
*/

package game

import (
	"errors"
	"math"
)

// The price multiplier applied after every purchase is 1.15, held as
// the ratio 115/100. The next price is floor(previousPrice * 115 / 100),
// applied incrementally on each purchase. It is deliberately NOT
// reconstructed from the owned count via a closed-form power: the
// repeated floor produces a different (and authoritative) integer
// ladder. The ratio form matters too: a float literal would make
// 100 * 1.15 come out as 114.999... under IEEE 754 and floor one step
// below the intended ladder, while previousPrice * 115 is exact for
// every integer-valued price in range.
const (
	costGrowthNum = 115
	costGrowthDen = 100
)

// ErrUnknownUpgrade is returned by lookups for keys the catalog was
// never seeded with. With a correct world.yaml this is a data bug,
// not a user condition.
var ErrUnknownUpgrade = errors.New("unknown upgrade key")

// PurchaseOutcome enumerates the three possible results of a purchase
// attempt. Only InsufficientFunds is an expected user-facing condition.
type PurchaseOutcome int

const (
	Purchased PurchaseOutcome = iota
	InsufficientFunds
	UnknownUpgrade
)

// PurchaseResult reports what a Purchase call did.
// Owned and NextCost are only meaningful when Outcome == Purchased.
type PurchaseResult struct {
	Outcome  PurchaseOutcome `json:"-"`
	Key      string          `json:"key"`
	Owned    int             `json:"owned"`
	NextCost float64         `json:"next_cost"`
}

// UpgradeCatalog is the ordered collection of upgrades for one session.
// Order matters for display only; the simulation treats entries as a set.
type UpgradeCatalog struct {
	entries []*Upgrade
	index   map[string]*Upgrade
}

// NewUpgradeCatalog seeds a catalog from static definitions.
// Every entry starts with owned = 0 and currentCost = baseCost.
func NewUpgradeCatalog(defs []UpgradeDefinition) *UpgradeCatalog {
	c := &UpgradeCatalog{
		entries: make([]*Upgrade, 0, len(defs)),
		index:   make(map[string]*Upgrade, len(defs)),
	}
	for _, def := range defs {
		u := &Upgrade{
			UpgradeDefinition: def,
			Owned:             0,
			CurrentCost:       def.BaseCost,
		}
		c.entries = append(c.entries, u)
		c.index[def.Key] = u
	}
	return c
}

// AggregateRate returns the total points-per-second across all owned
// units. Recomputed on demand from the live owned counts, so it is
// always consistent with the catalog; no cached total to go stale.
func (c *UpgradeCatalog) AggregateRate() float64 {
	total := 0.0
	for _, u := range c.entries {
		total += u.PointsPerSecond * float64(u.Owned)
	}
	return total
}

// PriceOf returns the price of the NEXT unit of the given upgrade.
func (c *UpgradeCatalog) PriceOf(key string) (float64, error) {
	u, ok := c.index[key]
	if !ok {
		return 0, ErrUnknownUpgrade
	}
	return u.CurrentCost, nil
}

// Owned returns the owned count for a key, or 0 for unknown keys.
// Used by the map binder, which must tolerate features with no
// matching upgrade.
func (c *UpgradeCatalog) Owned(key string) int {
	u, ok := c.index[key]
	if !ok {
		return 0
	}
	return u.Owned
}

// Entries returns a snapshot copy of the catalog in display order.
func (c *UpgradeCatalog) Entries() []Upgrade {
	out := make([]Upgrade, len(c.entries))
	for i, u := range c.entries {
		out[i] = *u
	}
	return out
}

// Purchase attempts to buy exactly one unit of the given upgrade,
// paying from the supplied ledger. The debit and the owned-increment
// form one atomic unit: on any failure the catalog and ledger are
// both left untouched.
func (c *UpgradeCatalog) Purchase(key string, ledger *ResourceLedger) PurchaseResult {
	u, ok := c.index[key]
	if !ok {
		return PurchaseResult{Outcome: UnknownUpgrade, Key: key}
	}

	if !ledger.Debit(u.CurrentCost) {
		return PurchaseResult{Outcome: InsufficientFunds, Key: key, Owned: u.Owned, NextCost: u.CurrentCost}
	}

	u.Owned++
	// Incremental step, always from the previous price.
	u.CurrentCost = math.Floor(u.CurrentCost * costGrowthNum / costGrowthDen)

	return PurchaseResult{
		Outcome:  Purchased,
		Key:      key,
		Owned:    u.Owned,
		NextCost: u.CurrentCost,
	}
}
