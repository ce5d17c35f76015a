package world

import "github.com/samdwyer/overworld/internal/positions"

// Warp is a zone that sends the player elsewhere when entered.
type Warp struct {
	ID          string
	Area        positions.BoundingBox
	Destination positions.WarpDestination
}

// WarpTile classifies how a warp tile animates.
type WarpTile uint8

const (
	WarpTileDoor WarpTile = iota
	WarpTileStair
	WarpTileOther
)

// String returns a human-readable warp tile name.
func (w WarpTile) String() string {
	switch w {
	case WarpTileDoor:
		return "door"
	case WarpTileStair:
		return "stair"
	case WarpTileOther:
		return "other"
	default:
		return "unknown"
	}
}
