// Package positions provides the integer grid primitives shared by maps,
// characters and the pathfinder.
package positions

import "fmt"

// Coordinate is a tile position on a map grid.
type Coordinate struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Zero is the origin coordinate.
var Zero = Coordinate{}

// NewCoordinate creates a coordinate from its components.
func NewCoordinate(x, y int32) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Add returns the component-wise sum of two coordinates.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference of two coordinates.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

// Neg returns the additive inverse.
func (c Coordinate) Neg() Coordinate {
	return Coordinate{X: -c.X, Y: -c.Y}
}

// InDirection returns the neighbouring coordinate one tile towards d.
func (c Coordinate) InDirection(d Direction) Coordinate {
	return c.Add(d.TileOffset())
}

// Towards returns the cardinal direction that best points at destination.
// The axis with the larger distance wins; ties favour the vertical axis.
func (c Coordinate) Towards(destination Coordinate) Direction {
	if abs(c.X-destination.X) > abs(c.Y-destination.Y) {
		if c.X > destination.X {
			return Left
		}
		return Right
	}
	if c.Y > destination.Y {
		return Up
	}
	return Down
}

// Manhattan returns the 4-connected grid distance between two coordinates.
func (c Coordinate) Manhattan(o Coordinate) int32 {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Position builds a Position standing on c facing d.
func (c Coordinate) Position(d Direction) Position {
	return Position{Coords: c, Direction: d, Elevation: Ungrounded}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
