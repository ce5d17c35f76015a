package world

import "github.com/samdwyer/overworld/internal/positions"

// Connection joins one edge of a map to a neighbour. Offset is where the
// neighbour's origin sits along the shared edge, in the source map's
// coordinates.
type Connection struct {
	Location positions.Location `json:"location"`
	Offset   int32              `json:"offset"`
}

// Chunk lists a map's edge connections per direction. One edge may join
// several neighbours, each covering its own stretch of the border.
type Chunk struct {
	Connections map[positions.Direction][]Connection
}

func (c *Chunk) crossing(d positions.Direction, offset int32) MovementResolution {
	connections, ok := c.Connections[d]
	if !ok {
		return MovementResolution{}
	}
	return MovementResolution{
		Kind:        ResolveChunk,
		Direction:   d,
		Offset:      offset,
		Connections: connections,
	}
}

// links reports whether edge d names location.
func (c *Chunk) links(d positions.Direction, location positions.Location) bool {
	for _, conn := range c.Connections[d] {
		if conn.Location == location {
			return true
		}
	}
	return false
}

// EdgeOrigin returns the coordinate just outside neighbour's edge that a
// mover travelling in d appears on; one more step in d enters the map at
// local position offset along that edge.
func EdgeOrigin(d positions.Direction, neighbour *WorldMap, offset int32) positions.Coordinate {
	switch d {
	case positions.Right:
		return positions.NewCoordinate(-1, offset)
	case positions.Left:
		return positions.NewCoordinate(neighbour.Width, offset)
	case positions.Down:
		return positions.NewCoordinate(offset, -1)
	default:
		return positions.NewCoordinate(offset, neighbour.Height)
	}
}
