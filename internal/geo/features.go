/*
Package geo
File: features.go
Description:
    Types and lenient JSON decoding for the geographic feature feed.
    A feature is a named continent or ocean with Polygon/MultiPolygon
    geometry in (longitude, latitude) degrees.

    Decoding is deliberately forgiving: a malformed coordinate, ring,
    or polygon is skipped and the rest of the feature survives. A
    feature whose geometry is entirely junk simply ends up with no
    rings, which downstream renders as an empty path. Nothing in this
    file produces a hard failure for bad geometry.
*/

package geo

import (
	"encoding/json"
	"fmt"
	"os"
)

// Point is one (longitude, latitude) pair in degrees.
type Point struct {
	Lon float64
	Lat float64
}

// Polygon is an ordered list of rings. Ring 0 is the exterior
// boundary; any further rings are holes, which this renderer ignores.
type Polygon [][]Point

// Geometry holds the decoded polygon set of a feature. A plain
// Polygon decodes to one entry, a MultiPolygon to several.
type Geometry struct {
	Polygons []Polygon
}

// Feature is one named map region tied to the upgrade catalog by Key.
type Feature struct {
	Key      string   `json:"id"`
	Name     string   `json:"name"`
	Kind     string   `json:"kind"` // "continent" or "ocean"
	Geometry Geometry `json:"geometry"`
}

// UnmarshalJSON decodes GeoJSON-style geometry, silently dropping
// anything that does not parse as coordinates. Unknown geometry types
// decode to an empty Geometry.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	*g = Geometry{}

	var raw struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch raw.Type {
	case "Polygon":
		if poly := decodePolygon(raw.Coordinates); poly.hasPoints() {
			g.Polygons = []Polygon{poly}
		}
	case "MultiPolygon":
		var parts []json.RawMessage
		if err := json.Unmarshal(raw.Coordinates, &parts); err != nil {
			return nil
		}
		for _, part := range parts {
			if poly := decodePolygon(part); poly.hasPoints() {
				g.Polygons = append(g.Polygons, poly)
			}
		}
	}
	return nil
}

// hasPoints reports whether any ring carries at least one point.
// Polygons that decode nothing at all are not worth keeping.
func (p Polygon) hasPoints() bool {
	for _, ring := range p {
		if len(ring) > 0 {
			return true
		}
	}
	return false
}

// decodePolygon parses one polygon's ring array. Points that are not
// [lon, lat] number pairs are skipped. Every ring entry keeps its
// slot, decoding to an empty ring when it is junk, so ring 0 stays
// the exterior no matter which rings failed to parse: a garbage
// exterior must silence the polygon, never promote a hole.
func decodePolygon(raw json.RawMessage) Polygon {
	var rings []json.RawMessage
	if err := json.Unmarshal(raw, &rings); err != nil {
		return nil
	}

	poly := make(Polygon, 0, len(rings))
	for _, rawRing := range rings {
		var entries []json.RawMessage
		if err := json.Unmarshal(rawRing, &entries); err != nil {
			poly = append(poly, nil)
			continue
		}
		ring := make([]Point, 0, len(entries))
		for _, entry := range entries {
			var coord []float64
			if err := json.Unmarshal(entry, &coord); err != nil {
				continue
			}
			if len(coord) < 2 {
				continue
			}
			ring = append(ring, Point{Lon: coord[0], Lat: coord[1]})
		}
		poly = append(poly, ring)
	}
	return poly
}

// LoadFeatures reads the feature feed from a JSON file. Only a
// completely unreadable file is an error; per-feature geometry
// problems degrade to empty geometry.
func LoadFeatures(path string) ([]Feature, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var features []Feature
	if err := json.Unmarshal(raw, &features); err != nil {
		return nil, fmt.Errorf("feature feed %s: %w", path, err)
	}
	return features, nil
}
