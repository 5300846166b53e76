/*
Package geo
File: project.go
Description:
    The equirectangular projection pipeline. Converts a feature's
    geometry into a flat list of 2D draw commands in a fixed logical
    canvas. Pure and stateless; recomputed in full on every map
    request rather than cached.
*/

package geo

import "math"

// Default logical canvas. Clients scale this to their display.
const (
	DefaultCanvasWidth  = 800.0
	DefaultCanvasHeight = 400.0
)

// PathOp is one draw-command opcode.
type PathOp uint8

const (
	MoveTo PathOp = iota
	LineTo
	ClosePath
)

// MarshalJSON encodes opcodes as the conventional single letters
// ("M", "L", "Z") so a canvas/SVG client can consume them directly.
func (op PathOp) MarshalJSON() ([]byte, error) {
	switch op {
	case MoveTo:
		return []byte(`"M"`), nil
	case LineTo:
		return []byte(`"L"`), nil
	default:
		return []byte(`"Z"`), nil
	}
}

// PathCommand is one draw step. X/Y are unused for ClosePath.
type PathCommand struct {
	Op PathOp  `json:"op"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// ProjectedPath is a render-ready command stream. A multipolygon
// produces one compound path with a MoveTo per subpath.
type ProjectedPath []PathCommand

// Subpaths counts the MoveTo commands, i.e. the number of disjoint
// outlines in the path.
func (p ProjectedPath) Subpaths() int {
	n := 0
	for _, cmd := range p {
		if cmd.Op == MoveTo {
			n++
		}
	}
	return n
}

// Project maps geometry onto a width x height canvas using the fixed
// equirectangular transform:
//
//	x = (lon + 180) / 360 * width
//	y = (90 - lat) / 180 * height
//
// Longitude -180..180 spans the canvas left to right; latitude 90..-90
// spans it top to bottom (north up). Only each polygon's exterior ring
// is drawn. Points carrying NaN are skipped; a ring with no valid
// points contributes nothing.
func Project(g Geometry, width, height float64) ProjectedPath {
	var path ProjectedPath

	for _, poly := range g.Polygons {
		if len(poly) == 0 {
			continue
		}
		ring := poly[0] // exterior ring only; holes are ignored

		started := false
		for _, pt := range ring {
			if math.IsNaN(pt.Lon) || math.IsNaN(pt.Lat) {
				continue
			}
			x, y := ProjectPoint(pt, width, height)
			if !started {
				path = append(path, PathCommand{Op: MoveTo, X: x, Y: y})
				started = true
			} else {
				path = append(path, PathCommand{Op: LineTo, X: x, Y: y})
			}
		}
		if started {
			path = append(path, PathCommand{Op: ClosePath})
		}
	}
	return path
}

// ProjectPoint applies the equirectangular transform to one point.
func ProjectPoint(pt Point, width, height float64) (x, y float64) {
	x = (pt.Lon + 180) / 360 * width
	y = (90 - pt.Lat) / 180 * height
	return x, y
}
