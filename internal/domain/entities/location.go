// Package entities contains the immutable reference-catalog types.
package entities

import "math"

// PlaneExtent is the side length of the normalized coordinate plane.
// All location coordinates fall in (roughly) [0, PlaneExtent] on both axes.
const PlaneExtent = 100.0

// Coordinate is a point on the normalized map plane.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance to another coordinate,
// in the plane's arbitrary in-world unit.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	dx := other.X - c.X
	dy := other.Y - c.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Midpoint returns the point halfway between this coordinate and another.
func (c Coordinate) Midpoint(other Coordinate) Coordinate {
	return Coordinate{X: (c.X + other.X) / 2, Y: (c.Y + other.Y) / 2}
}

// Location is a fixed place on the map. Reference data; never mutated
// at runtime.
type Location struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Coord       Coordinate `json:"coord"`
	Region      string     `json:"region"`
	Importance  int        `json:"importance,omitempty"` // 1-5, 0 when unranked
	Description string     `json:"description,omitempty"`
}
