package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidBounds = errors.New("invalid bounding box")

// Point is a geographic coordinate pair in WGS84 degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point is finite and within coordinate range.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Polygon is a closed GeoJSON ring. Coordinates follow the GeoJSON axis
// order [lng, lat], which is what a 2dsphere containment query expects.
type Polygon struct {
	Type        string         `json:"type" bson:"type"`
	Coordinates [][][2]float64 `json:"coordinates" bson:"coordinates"`
}

// ParsePoint parses a "<lat>,<lng>" corner string as supplied on the area
// query. Malformed or out-of-range input fails with ErrInvalidBounds.
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%w: expected \"lat,lng\", got %q", ErrInvalidBounds, s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: bad latitude %q", ErrInvalidBounds, parts[0])
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: bad longitude %q", ErrInvalidBounds, parts[1])
	}

	p := Point{Lat: lat, Lng: lng}
	if !p.Valid() {
		return Point{}, fmt.Errorf("%w: coordinates out of range (%v,%v)", ErrInvalidBounds, lat, lng)
	}
	return p, nil
}

// RectangleBounds converts two opposite viewport corners into the closed
// five-vertex ring covering the axis-aligned rectangle between them:
// topRight → (topRight.Lat, bottomLeft.Lng) → bottomLeft →
// (bottomLeft.Lat, topRight.Lng) → back to topRight.
//
// Coincident corners yield a zero-area ring that only contains the exact
// point itself. A box whose longitude span would cross the antimeridian
// (topRight west of bottomLeft) is rejected with ErrInvalidBounds rather
// than guessing wraparound semantics, as is an upside-down latitude span.
func RectangleBounds(topRight, bottomLeft Point) (Polygon, error) {
	if !topRight.Valid() || !bottomLeft.Valid() {
		return Polygon{}, fmt.Errorf("%w: coordinates out of range", ErrInvalidBounds)
	}
	if topRight.Lat < bottomLeft.Lat || topRight.Lng < bottomLeft.Lng {
		return Polygon{}, fmt.Errorf("%w: top-right corner must be north-east of bottom-left", ErrInvalidBounds)
	}

	ring := [][2]float64{
		{topRight.Lng, topRight.Lat},
		{bottomLeft.Lng, topRight.Lat},
		{bottomLeft.Lng, bottomLeft.Lat},
		{topRight.Lng, bottomLeft.Lat},
		{topRight.Lng, topRight.Lat},
	}

	return Polygon{Type: "Polygon", Coordinates: [][][2]float64{ring}}, nil
}
