/*
Package game
File: simulator.go
Description:
    The economy heartbeat. Two event sources drive the ledger: direct
    clicks (unbounded rate, one credit each) and a fixed-period tick
    that drips passive production into the balance. Both are serialized
    through State.Mu, so any interleaving of clicks and ticks yields
    the same final balance.
*/

package game

import (
	"sync"
	"time"
)

// Simulator converts the catalog's aggregate production rate into
// ledger credits over time, and fronts the click/purchase events so
// every mutation goes through one place.
type Simulator struct {
	state    *State
	interval time.Duration

	// ticksPerSecond is derived from the interval; each tick credits
	// aggregateRate / ticksPerSecond so a full second of ticks sums to
	// exactly one second of production.
	ticksPerSecond float64

	// OnTick, when set, is invoked after every tick with the balance
	// and rate observed at that tick. Called outside the state lock.
	OnTick func(balance, rate float64)

	stop     chan struct{}
	stopOnce sync.Once
}

// NewSimulator wires a simulator to a session. A non-positive interval
// falls back to the reference 100ms (ten ticks per second).
func NewSimulator(state *State, interval time.Duration) *Simulator {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Simulator{
		state:          state,
		interval:       interval,
		ticksPerSecond: float64(time.Second) / float64(interval),
		stop:           make(chan struct{}),
	}
}

// Click credits one click's worth of points and returns the new balance.
// No debouncing: rapid repeated clicks each credit independently.
func (s *Simulator) Click() float64 {
	s.state.Mu.Lock()
	defer s.state.Mu.Unlock()

	s.state.Ledger.Credit(s.state.Ledger.ClickYield)
	return s.state.Ledger.Balance
}

// Purchase buys one unit of an upgrade. The whole transaction runs
// under the state lock, so a tick can never observe a half-applied
// purchase, and the very next tick already uses the new rate.
func (s *Simulator) Purchase(key string) PurchaseResult {
	s.state.Mu.Lock()
	defer s.state.Mu.Unlock()

	return s.state.Catalog.Purchase(key, s.state.Ledger)
}

// Tick credits one tick of passive production. The rate is read fresh
// from the catalog at tick time, never from a snapshot.
func (s *Simulator) Tick() (balance, rate float64) {
	s.state.Mu.Lock()
	rate = s.state.Catalog.AggregateRate()
	if rate > 0 {
		s.state.Ledger.Credit(rate / s.ticksPerSecond)
	}
	balance = s.state.Ledger.Balance
	s.state.Mu.Unlock()

	if s.OnTick != nil {
		s.OnTick(balance, rate)
	}
	return balance, rate
}

// Run drives Tick from a wall-clock ticker until Stop is called.
// time.Ticker drops ticks when the receiver stalls, and we do not
// compensate: production lost to a stall is simply gone. This matches
// the reference behavior; see DESIGN.md for the catch-up decision.
func (s *Simulator) Run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Tick()
		case <-s.stop:
			return
		}
	}
}

// Stop terminates a running Run loop. Safe to call more than once.
func (s *Simulator) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}
