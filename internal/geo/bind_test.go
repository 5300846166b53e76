package geo

import "testing"

type ownedMap map[string]int

func (m ownedMap) Owned(key string) int { return m[key] }

func testBinder() Binder {
	return Binder{
		Palette: Palette{OwnedFill: "#2f9e44", UnownedFill: "#495057"},
		Anchors: map[string]Point{
			"africa": {Lon: 0, Lat: 0},
		},
		Width:  800,
		Height: 400,
	}
}

func testFeatures() []Feature {
	tri := Geometry{Polygons: []Polygon{{[]Point{{0, 0}, {10, 0}, {10, 10}}}}}
	return []Feature{
		{Key: "africa", Name: "Africa", Kind: "continent", Geometry: tri},
		{Key: "lemuria", Name: "Lemuria", Kind: "continent", Geometry: tri},
	}
}

func TestBind_OwnedFeatureGetsFillAndLabel(t *testing.T) {
	out := testBinder().Bind(testFeatures(), ownedMap{"africa": 3})

	africa := out[0]
	if africa.Fill != "#2f9e44" {
		t.Fatalf("owned feature should use the owned fill, got %q", africa.Fill)
	}
	if africa.Label == nil {
		t.Fatal("owned feature with an anchor must carry a label")
	}
	if africa.Label.Text != "3" {
		t.Fatalf("label should show the owned count, got %q", africa.Label.Text)
	}
	// Anchor (0,0) projects to the canvas center.
	if africa.Label.X != 400 || africa.Label.Y != 200 {
		t.Fatalf("label anchor misprojected: (%v,%v)", africa.Label.X, africa.Label.Y)
	}
}

func TestBind_FeatureWithNoUpgradeIsUnowned(t *testing.T) {
	out := testBinder().Bind(testFeatures(), ownedMap{"africa": 3})

	lemuria := out[1]
	if lemuria.Fill != "#495057" {
		t.Fatalf("unmatched feature should use the unowned fill, got %q", lemuria.Fill)
	}
	if lemuria.Label != nil {
		t.Fatalf("unmatched feature must not carry a label, got %+v", lemuria.Label)
	}
	if len(lemuria.Path) == 0 {
		t.Fatal("unmatched feature still gets its projected path")
	}
}

func TestBind_ZeroOwnedIsUnowned(t *testing.T) {
	out := testBinder().Bind(testFeatures(), ownedMap{"africa": 0})
	if out[0].Fill != "#495057" || out[0].Label != nil {
		t.Fatalf("owned == 0 must render unowned, got fill %q label %+v", out[0].Fill, out[0].Label)
	}
}

func TestBind_OwnedWithoutAnchorGetsNoLabel(t *testing.T) {
	out := testBinder().Bind(testFeatures(), ownedMap{"lemuria": 2})
	lemuria := out[1]
	if lemuria.Fill != "#2f9e44" {
		t.Fatalf("owned feature should use the owned fill, got %q", lemuria.Fill)
	}
	if lemuria.Label != nil {
		t.Fatal("no anchor configured means no label, even when owned")
	}
}

func TestBind_EmptyGeometryRendersEmptyPath(t *testing.T) {
	features := []Feature{{Key: "africa", Name: "Africa", Kind: "continent"}}
	out := testBinder().Bind(features, ownedMap{})
	if len(out) != 1 {
		t.Fatalf("feature must render even with no geometry, got %d entries", len(out))
	}
	if len(out[0].Path) != 0 {
		t.Fatalf("expected an empty path, got %+v", out[0].Path)
	}
}

func TestAtlas_SwapReplacesFeatures(t *testing.T) {
	atlas := NewAtlas(testFeatures(), testBinder())
	if got := len(atlas.Render(ownedMap{})); got != 2 {
		t.Fatalf("expected 2 features, got %d", got)
	}

	atlas.Swap(testFeatures()[:1], testBinder())
	if got := len(atlas.Render(ownedMap{})); got != 1 {
		t.Fatalf("expected 1 feature after swap, got %d", got)
	}
}

func TestAtlas_SizeDefaults(t *testing.T) {
	atlas := NewAtlas(nil, Binder{})
	w, h := atlas.Size()
	if w != DefaultCanvasWidth || h != DefaultCanvasHeight {
		t.Fatalf("expected default canvas, got %vx%v", w, h)
	}
}
