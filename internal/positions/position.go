package positions

import (
	"encoding/json"
	"math"
)

// Elevation is the height layer a mover occupies. Levels 0 through 4 are
// grounded, 0 being the water surface; Ungrounded means the mover stands on
// elevation-agnostic terrain and has not been assigned a layer yet.
type Elevation uint8

// Ungrounded is the "no elevation" sentinel.
const Ungrounded Elevation = 0xFF

// MaxElevation is the highest grounded level.
const MaxElevation Elevation = 4

// Grounded reports whether e is a real level.
func (e Elevation) Grounded() bool {
	return e <= MaxElevation
}

// MarshalJSON encodes Ungrounded as null.
func (e Elevation) MarshalJSON() ([]byte, error) {
	if !e.Grounded() {
		return []byte("null"), nil
	}
	return json.Marshal(uint8(e))
}

// UnmarshalJSON decodes null as Ungrounded.
func (e *Elevation) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*e = Ungrounded
		return nil
	}
	var level uint8
	if err := json.Unmarshal(data, &level); err != nil {
		return err
	}
	*e = Elevation(level)
	return nil
}

// PixelOffset is the sub-tile displacement of a moving character.
type PixelOffset struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// IsZero reports whether the character is aligned to its tile.
func (p PixelOffset) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Length returns the larger absolute component. Motion is axis aligned so
// this is the travelled distance.
func (p PixelOffset) Length() float32 {
	return float32(math.Max(math.Abs(float64(p.X)), math.Abs(float64(p.Y))))
}

// Add returns the component-wise sum.
func (p PixelOffset) Add(o PixelOffset) PixelOffset {
	return PixelOffset{X: p.X + o.X, Y: p.Y + o.Y}
}

// Position is everything needed to place a character on a map.
type Position struct {
	Coords    Coordinate  `json:"coords"`
	Direction Direction   `json:"direction"`
	Elevation Elevation   `json:"elevation"`
	Offset    PixelOffset `json:"-"`
}

// Forwards returns the tile the position faces.
func (p Position) Forwards() Coordinate {
	return p.Coords.InDirection(p.Direction)
}

// InDirection returns the neighbouring tile towards d.
func (p Position) InDirection(d Direction) Coordinate {
	return p.Coords.InDirection(d)
}
