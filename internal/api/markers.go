/*
Package api
File: markers.go
Description:
    Click-feedback markers: the floating globes that drift away from
    the click position for 1.5 seconds. Purely presentational state,
    owned by the API layer, never by the economy core. The board is a
    bounded time window: markers past their lifetime are swept on a
    timer, so the collection cannot grow without limit.
*/

package api

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ClickMarker is one floating click-feedback particle.
type ClickMarker struct {
	ID        string    `json:"id"`
	Value     float64   `json:"value"` // Points credited by the click
	X         float64   `json:"x"`     // Click position, client coordinates
	Y         float64   `json:"y"`
	Direction float64   `json:"direction"` // Drift angle in degrees, randomized per marker
	Born      time.Time `json:"born"`
}

// MarkerBoard holds the live markers for the session.
type MarkerBoard struct {
	mu       sync.Mutex
	lifetime time.Duration
	markers  []ClickMarker
}

// NewMarkerBoard creates a board. A non-positive lifetime falls back
// to the reference 1.5 seconds.
func NewMarkerBoard(lifetime time.Duration) *MarkerBoard {
	if lifetime <= 0 {
		lifetime = 1500 * time.Millisecond
	}
	return &MarkerBoard{lifetime: lifetime}
}

// Spawn adds a marker at the given position with a random drift
// direction and returns it.
func (b *MarkerBoard) Spawn(value, x, y float64) ClickMarker {
	m := ClickMarker{
		ID:        uuid.NewString(),
		Value:     value,
		X:         x,
		Y:         y,
		Direction: rand.Float64() * 360,
		Born:      time.Now(),
	}
	b.mu.Lock()
	b.markers = append(b.markers, m)
	b.mu.Unlock()
	return m
}

// Sweep drops markers older than the lifetime and returns how many
// were removed. Called on a timer by the server loop.
func (b *MarkerBoard) Sweep(now time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.markers[:0]
	for _, m := range b.markers {
		if now.Sub(m.Born) < b.lifetime {
			kept = append(kept, m)
		}
	}
	removed := len(b.markers) - len(kept)
	b.markers = kept
	return removed
}

// Active returns a snapshot of the markers still inside the window.
func (b *MarkerBoard) Active(now time.Time) []ClickMarker {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]ClickMarker, 0, len(b.markers))
	for _, m := range b.markers {
		if now.Sub(m.Born) < b.lifetime {
			out = append(out, m)
		}
	}
	return out
}
