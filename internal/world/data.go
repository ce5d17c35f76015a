package world

import (
	"fmt"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/positions"
)

// Data is the static world bundle loaded before play begins.
type Data struct {
	Maps      map[positions.Location]*WorldMap
	Palettes  Palettes
	NpcGroups map[entity.NpcGroupID]NpcGroup
	Wild      WildChances
	Spawn     positions.Spawn
}

// Map returns the map at location, or nil.
func (d *Data) Map(location positions.Location) *WorldMap {
	return d.Maps[location]
}

// Validate checks every map and the references between them.
func (d *Data) Validate() error {
	for location, m := range d.Maps {
		if m.ID != location {
			return fmt.Errorf("map keyed %s has id %s", location, m.ID)
		}
		if err := m.Validate(); err != nil {
			return err
		}
		for _, w := range m.Warps {
			if _, ok := d.Maps[w.Destination.Location]; !ok {
				return fmt.Errorf("map %s warp %q: %w %s", location, w.ID, ErrUnknownWarp, w.Destination.Location)
			}
		}
		if m.Chunk == nil {
			continue
		}
		for direction, connections := range m.Chunk.Connections {
			for _, c := range connections {
				neighbour, ok := d.Maps[c.Location]
				if !ok {
					return fmt.Errorf("map %s %s edge: %w %s", location, direction, ErrUnknownConnection, c.Location)
				}
				if neighbour.Chunk == nil {
					return fmt.Errorf("map %s %s edge: %w: %s has no connections", location, direction, ErrUnknownConnection, c.Location)
				}
				if !neighbour.Chunk.links(direction.Inverse(), location) {
					return fmt.Errorf("map %s %s edge: %w: %s does not link back", location, direction, ErrOneWayConnection, c.Location)
				}
			}
		}
	}
	if _, ok := d.Maps[d.Spawn.Location]; !ok {
		return fmt.Errorf("%w %s", ErrUnknownSpawn, d.Spawn.Location)
	}
	return nil
}
