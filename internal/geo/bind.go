/*
Package geo
File: bind.go
Description:
    Joins upgrade-ownership state to geographic features, producing the
    render-ready feature list for the map view: every region gets a
    fill color, its projected path, and (when owned) a count label at
    a hand-tuned anchor point.

    Binding is strictly read-only with respect to the catalog.
*/

package geo

import (
	"strconv"
	"sync"
)

// Ownership is the read-only view of the upgrade catalog the binder
// needs. Unknown keys must report 0.
type Ownership interface {
	Owned(key string) int
}

// Palette holds the two region fill colors.
type Palette struct {
	OwnedFill   string
	UnownedFill string
}

// Label is an owned-count annotation anchored in canvas coordinates.
type Label struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// RenderFeature is one region ready for drawing.
type RenderFeature struct {
	Key   string        `json:"id"`
	Name  string        `json:"name"`
	Kind  string        `json:"kind"`
	Fill  string        `json:"fill"`
	Label *Label        `json:"label,omitempty"`
	Path  ProjectedPath `json:"path"`
}

// Binder carries the static render configuration: palette, canvas
// size, and the per-region label anchors (lon/lat). Anchors are
// supplied data, not computed centroids.
type Binder struct {
	Palette Palette
	Anchors map[string]Point
	Width   float64
	Height  float64
}

// Bind produces the render list for the given features and ownership
// state. Features with no matching upgrade (or owned == 0) get the
// unowned fill and no label; upgrades with no matching feature are
// simply never asked about. Never mutates the catalog and never fails.
func (b Binder) Bind(features []Feature, owned Ownership) []RenderFeature {
	width, height := b.Width, b.Height
	if width <= 0 || height <= 0 {
		width, height = DefaultCanvasWidth, DefaultCanvasHeight
	}

	out := make([]RenderFeature, 0, len(features))
	for _, f := range features {
		rf := RenderFeature{
			Key:  f.Key,
			Name: f.Name,
			Kind: f.Kind,
			Fill: b.Palette.UnownedFill,
			Path: Project(f.Geometry, width, height),
		}

		if n := owned.Owned(f.Key); n > 0 {
			rf.Fill = b.Palette.OwnedFill
			if anchor, ok := b.Anchors[f.Key]; ok {
				x, y := ProjectPoint(anchor, width, height)
				rf.Label = &Label{Text: strconv.Itoa(n), X: x, Y: y}
			}
		}

		out = append(out, rf)
	}
	return out
}

// Atlas pairs a loaded feature set with its binder and makes the pair
// swappable, so a SIGHUP reload can replace geometry and palette while
// the economy keeps running.
type Atlas struct {
	mu       sync.RWMutex
	features []Feature
	binder   Binder
}

// NewAtlas wraps a feature set and binder.
func NewAtlas(features []Feature, binder Binder) *Atlas {
	return &Atlas{features: features, binder: binder}
}

// Render binds the current feature set against ownership state.
func (a *Atlas) Render(owned Ownership) []RenderFeature {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.binder.Bind(a.features, owned)
}

// Swap atomically replaces the feature set and binder.
func (a *Atlas) Swap(features []Feature, binder Binder) {
	a.mu.Lock()
	a.features = features
	a.binder = binder
	a.mu.Unlock()
}

// Size reports the current canvas dimensions.
func (a *Atlas) Size() (width, height float64) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.binder.Width <= 0 || a.binder.Height <= 0 {
		return DefaultCanvasWidth, DefaultCanvasHeight
	}
	return a.binder.Width, a.binder.Height
}
