package world

import (
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/positions"
)

// ObjectGroup names a kind of breakable overworld obstacle.
type ObjectGroup string

const (
	ObjectTree ObjectGroup = "tree"
	ObjectRock ObjectGroup = "rock"
)

// MapObject is an obstacle that a roster move can clear.
type MapObject struct {
	Coords positions.Coordinate
	Group  ObjectGroup
}

// MapItem is a pickup lying on the map.
type MapItem struct {
	Coords positions.Coordinate
	Item   entity.ItemID
}

// ObjectAt returns the object placed on c, or nil.
func (m *WorldMap) ObjectAt(c positions.Coordinate) *MapObject {
	for i := range m.Objects {
		if m.Objects[i].Coords == c {
			return &m.Objects[i]
		}
	}
	return nil
}

// ItemAt returns the item placed on c, or nil.
func (m *WorldMap) ItemAt(c positions.Coordinate) *MapItem {
	for i := range m.Items {
		if m.Items[i].Coords == c {
			return &m.Items[i]
		}
	}
	return nil
}
