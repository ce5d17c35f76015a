package positions

import "fmt"

// Direction is one of the four cardinal facings. The zero value is Down.
type Direction uint8

const (
	Down Direction = iota
	Up
	Left
	Right
)

// Directions lists every direction in search order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// TileOffset returns the unit vector for the direction. Up is negative Y.
func (d Direction) TileOffset() Coordinate {
	switch d {
	case Up:
		return Coordinate{Y: -1}
	case Down:
		return Coordinate{Y: 1}
	case Left:
		return Coordinate{X: -1}
	default:
		return Coordinate{X: 1}
	}
}

// PixelOffset scales the unit vector by distance.
func (d Direction) PixelOffset(distance float32) PixelOffset {
	o := d.TileOffset()
	return PixelOffset{X: float32(o.X) * distance, Y: float32(o.Y) * distance}
}

// Horizontal reports whether the direction moves along the X axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses a lowercase direction name.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "down":
		return Down, nil
	case "up":
		return Up, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Down, fmt.Errorf("invalid direction %q", s)
	}
}

// MarshalText encodes the direction by name so it can key JSON objects.
func (d Direction) MarshalText() ([]byte, error) {
	if d > Right {
		return nil, fmt.Errorf("invalid direction %d", d)
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
