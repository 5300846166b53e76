package geo

import (
	"math"
	"testing"
)

func polyGeometry(rings ...[]Point) Geometry {
	return Geometry{Polygons: []Polygon{rings}}
}

func TestProject_GlobeCornersMapToCanvasCorners(t *testing.T) {
	// A ring through the four extreme lon/lat corners must touch the
	// four corners of the canvas, north at the top.
	g := polyGeometry([]Point{
		{Lon: -180, Lat: 90},
		{Lon: 180, Lat: 90},
		{Lon: 180, Lat: -90},
		{Lon: -180, Lat: -90},
	})

	path := Project(g, 800, 400)
	want := []PathCommand{
		{Op: MoveTo, X: 0, Y: 0},
		{Op: LineTo, X: 800, Y: 0},
		{Op: LineTo, X: 800, Y: 400},
		{Op: LineTo, X: 0, Y: 400},
		{Op: ClosePath},
	}

	if len(path) != len(want) {
		t.Fatalf("expected %d commands, got %d: %+v", len(want), len(path), path)
	}
	for i, cmd := range want {
		if path[i] != cmd {
			t.Fatalf("command %d: expected %+v, got %+v", i, cmd, path[i])
		}
	}
}

func TestProject_EquirectangularTransform(t *testing.T) {
	// Greenwich/equator lands dead center.
	x, y := ProjectPoint(Point{Lon: 0, Lat: 0}, 800, 400)
	if x != 400 || y != 200 {
		t.Fatalf("expected (400,200), got (%v,%v)", x, y)
	}

	// Quarter points.
	x, y = ProjectPoint(Point{Lon: -90, Lat: 45}, 800, 400)
	if x != 200 || y != 100 {
		t.Fatalf("expected (200,100), got (%v,%v)", x, y)
	}
}

func TestProject_MultiPolygonProducesOneSubpathEach(t *testing.T) {
	g := Geometry{Polygons: []Polygon{
		{[]Point{{0, 0}, {10, 0}, {10, 10}}},
		{[]Point{{-50, -20}, {-40, -20}, {-40, -10}}},
	}}

	path := Project(g, 800, 400)
	if got := path.Subpaths(); got != 2 {
		t.Fatalf("expected 2 subpaths, got %d", got)
	}

	closes := 0
	for _, cmd := range path {
		if cmd.Op == ClosePath {
			closes++
		}
	}
	if closes != 2 {
		t.Fatalf("each subpath must close explicitly, got %d closes", closes)
	}
}

func TestProject_ExteriorRingOnly(t *testing.T) {
	exterior := []Point{{0, 0}, {20, 0}, {20, 20}, {0, 20}}
	hole := []Point{{5, 5}, {15, 5}, {15, 15}, {5, 15}}
	g := polyGeometry(exterior, hole)

	path := Project(g, 800, 400)
	if got := path.Subpaths(); got != 1 {
		t.Fatalf("holes must be ignored; expected 1 subpath, got %d", got)
	}
	// MoveTo + 3 LineTo + Close: only the exterior's four points.
	if len(path) != 5 {
		t.Fatalf("expected 5 commands for the exterior ring, got %d", len(path))
	}
}

func TestProject_SkipsNaNPoints(t *testing.T) {
	g := polyGeometry([]Point{
		{Lon: 0, Lat: 0},
		{Lon: math.NaN(), Lat: 10},
		{Lon: 10, Lat: math.NaN()},
		{Lon: 10, Lat: 10},
	})

	path := Project(g, 800, 400)
	// Two valid points: MoveTo, LineTo, Close.
	if len(path) != 3 {
		t.Fatalf("expected 3 commands after dropping NaN points, got %d: %+v", len(path), path)
	}
}

func TestProject_EmptyRingContributesNothing(t *testing.T) {
	g := Geometry{Polygons: []Polygon{
		{[]Point{}},
		{[]Point{{0, 0}, {10, 0}, {10, 10}}},
	}}

	path := Project(g, 800, 400)
	if got := path.Subpaths(); got != 1 {
		t.Fatalf("empty ring must produce no subpath, got %d", got)
	}
}

func TestProject_AllNaNRingContributesNothing(t *testing.T) {
	g := polyGeometry([]Point{{Lon: math.NaN(), Lat: math.NaN()}})
	if path := Project(g, 800, 400); len(path) != 0 {
		t.Fatalf("all-invalid ring must produce an empty path, got %+v", path)
	}
}

func TestProject_EmptyGeometry(t *testing.T) {
	if path := Project(Geometry{}, 800, 400); len(path) != 0 {
		t.Fatalf("empty geometry must produce an empty path, got %+v", path)
	}
}
