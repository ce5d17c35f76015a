// Package entity provides the movable actors of the overworld: the player,
// NPCs and the party roster they carry.
package entity

import "github.com/samdwyer/overworld/internal/positions"

// TileSize is the width of one tile in pixels.
const TileSize = 16

// MovementMode is how a character traverses terrain.
type MovementMode uint8

const (
	Walking MovementMode = iota
	Running
	Swimming
)

// String returns a human-readable mode name.
func (m MovementMode) String() string {
	switch m {
	case Walking:
		return "walking"
	case Running:
		return "running"
	case Swimming:
		return "swimming"
	default:
		return "unknown"
	}
}

// Speed returns pixels travelled per 1/60 s.
func (m MovementMode) Speed() float32 {
	switch m {
	case Running, Swimming:
		return 2
	default:
		return 1
	}
}

// Pathing is the queue of single-tile steps awaiting playback.
type Pathing struct {
	Queue []positions.Direction
	Turn  *positions.Direction
}

// Push appends one step.
func (p *Pathing) Push(d positions.Direction) {
	p.Queue = append(p.Queue, d)
}

// Extend appends a pathfound route and replaces the pending turn.
func (p *Pathing) Extend(path positions.Path) {
	p.Queue = append(p.Queue, path.Queue...)
	p.Turn = path.Turn
}

// Clear drops every pending step and turn.
func (p *Pathing) Clear() {
	p.Queue = p.Queue[:0]
	p.Turn = nil
}

// Character is anything that walks the grid.
type Character struct {
	Name     string
	Position positions.Position
	Movement MovementMode
	Pathing  Pathing
	Hidden   bool
	Noclip   bool
}

// Moving returns true while steps are queued.
func (c *Character) Moving() bool {
	return len(c.Pathing.Queue) > 0
}

// Stepping returns the tile the in-flight step lands on.
func (c *Character) Stepping() (positions.Coordinate, bool) {
	if !c.Moving() {
		return positions.Coordinate{}, false
	}
	return c.Position.Coords.InDirection(c.Pathing.Queue[0]), true
}

// DoMove advances the in-flight step by delta seconds. It returns true on
// the frame the last queued step lands, which is the motion-completion event.
func (c *Character) DoMove(delta float32) bool {
	if !c.Moving() {
		if c.Pathing.Turn != nil {
			c.Position.Direction = *c.Pathing.Turn
			c.Pathing.Turn = nil
		}
		return false
	}

	d := c.Pathing.Queue[0]
	c.Position.Direction = d
	c.Position.Offset = c.Position.Offset.Add(d.PixelOffset(c.Movement.Speed() * 60 * delta))
	if c.Position.Offset.Length() < TileSize {
		return false
	}

	c.Position.Coords = c.Position.Coords.InDirection(d)
	c.Position.Offset = positions.PixelOffset{}
	c.Pathing.Queue = c.Pathing.Queue[1:]
	if c.Moving() {
		return false
	}
	if c.Pathing.Turn != nil {
		c.Position.Direction = *c.Pathing.Turn
		c.Pathing.Turn = nil
	}
	return true
}

// StopMove abandons queued steps and snaps back onto the current tile.
func (c *Character) StopMove() {
	c.Pathing.Clear()
	c.Position.Offset = positions.PixelOffset{}
}
