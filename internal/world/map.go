package world

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/positions"
)

// TileID indexes a tile graphic.
type TileID uint16

// PaletteID names a tileset.
type PaletteID uint8

// MusicID names a music track.
type MusicID string

// Brightness is the lighting a map is drawn with.
type Brightness uint8

const (
	Day Brightness = iota
	Night
)

// String returns a human-readable brightness name.
func (b Brightness) String() string {
	switch b {
	case Day:
		return "day"
	case Night:
		return "night"
	default:
		return "unknown"
	}
}

// Settings holds optional per-map flags.
type Settings struct {
	FlyPosition *positions.Coordinate
	Brightness  Brightness
}

// WorldMap is one playable map unit. Its grid never changes after load;
// only its NPCs move.
type WorldMap struct {
	ID    positions.Location
	Name  string
	Music MusicID

	Width  int32
	Height int32

	Palettes [2]PaletteID
	// Tiles and Movements are row-major, Width*Height long.
	Tiles     []TileID
	Movements []MovementID
	// Border is the 2x2 block repeated outside the map.
	Border [4]TileID

	// Chunk is set when the map's edges join neighbouring maps.
	Chunk *Chunk
	// Warps are tested in order; the first zone containing a tile wins.
	Warps   []Warp
	Wild    WildEntries
	Npcs    map[entity.NpcID]*entity.Npc
	Objects []MapObject
	Items   []MapItem

	Settings Settings
}

// NewWorldMap allocates a width by height map with every tile set to code.
func NewWorldMap(id positions.Location, width, height int32, code MovementID) *WorldMap {
	size := int(max(width, 0)) * int(max(height, 0))
	m := &WorldMap{
		ID:        id,
		Name:      id.Name,
		Width:     width,
		Height:    height,
		Tiles:     make([]TileID, size),
		Movements: make([]MovementID, size),
		Npcs:      map[entity.NpcID]*entity.Npc{},
	}
	for i := range m.Movements {
		m.Movements[i] = code
	}
	return m
}

// SetMovement overwrites the code at c. Out-of-bounds writes are ignored.
func (m *WorldMap) SetMovement(c positions.Coordinate, code MovementID) {
	if m.InBounds(c) {
		m.Movements[m.index(c)] = code
	}
}

// SetTile overwrites the tile at c. Out-of-bounds writes are ignored.
func (m *WorldMap) SetTile(c positions.Coordinate, tile TileID) {
	if m.InBounds(c) {
		m.Tiles[m.index(c)] = tile
	}
}

// AddNpc places an NPC on the map.
func (m *WorldMap) AddNpc(npc *entity.Npc) {
	if m.Npcs == nil {
		m.Npcs = map[entity.NpcID]*entity.Npc{}
	}
	m.Npcs[npc.ID] = npc
}

// InBounds returns true if the coordinate lies on the grid.
func (m *WorldMap) InBounds(c positions.Coordinate) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

func (m *WorldMap) index(c positions.Coordinate) int {
	return int(c.X) + int(c.Y)*int(m.Width)
}

// Tile returns the tile at c.
func (m *WorldMap) Tile(c positions.Coordinate) (TileID, bool) {
	if !m.InBounds(c) {
		return 0, false
	}
	return m.Tiles[m.index(c)], true
}

// BorderTile returns the border block tile drawn at an out-of-bounds c.
func (m *WorldMap) BorderTile(c positions.Coordinate) TileID {
	x, y := c.X&1, c.Y&1
	return m.Border[x+y*2]
}

// LocalMovement returns the movement code at c, treating NPCs as obstacles.
func (m *WorldMap) LocalMovement(c positions.Coordinate) (MovementID, bool) {
	if !m.InBounds(c) {
		return 0, false
	}
	return m.UnboundedMovement(c)
}

// UnboundedMovement indexes the grid without the rectangle test, so callers
// must have bounded c already. Tiles an NPC stands on or is stepping onto
// report Obstacle.
func (m *WorldMap) UnboundedMovement(c positions.Coordinate) (MovementID, bool) {
	i := m.index(c)
	if i < 0 || i >= len(m.Movements) {
		return 0, false
	}
	if m.Occupied(c) {
		return Obstacle, true
	}
	return m.Movements[i], true
}

// ResolutionKind tags a MovementResolution.
type ResolutionKind uint8

const (
	// ResolveNone means no movement is possible.
	ResolveNone ResolutionKind = iota
	// ResolveLocal carries a code from this map.
	ResolveLocal
	// ResolveChunk means the tile lies across an edge joined to neighbours.
	ResolveChunk
)

// MovementResolution is the outcome of ChunkMovement.
type MovementResolution struct {
	Kind ResolutionKind
	Code MovementID

	// Set for ResolveChunk: the edge crossed, the coordinate along that
	// edge, and the candidate neighbours in priority order.
	Direction   positions.Direction
	Offset      int32
	Connections []Connection
}

// ChunkMovement resolves the code at c, reporting edge crossings for maps
// that join neighbours. The map never looks at other maps itself.
func (m *WorldMap) ChunkMovement(c positions.Coordinate) MovementResolution {
	if m.Chunk != nil {
		switch {
		case c.X < 0:
			return m.Chunk.crossing(positions.Left, c.Y)
		case c.X >= m.Width:
			return m.Chunk.crossing(positions.Right, c.Y)
		case c.Y < 0:
			return m.Chunk.crossing(positions.Up, c.X)
		case c.Y >= m.Height:
			return m.Chunk.crossing(positions.Down, c.X)
		}
	} else if !m.InBounds(c) {
		return MovementResolution{}
	}
	code, ok := m.UnboundedMovement(c)
	if !ok {
		return MovementResolution{}
	}
	return MovementResolution{Kind: ResolveLocal, Code: code}
}

// WarpAt returns the destination of the first warp zone containing c.
func (m *WorldMap) WarpAt(c positions.Coordinate) (positions.WarpDestination, bool) {
	for _, w := range m.Warps {
		if w.Area.Contains(c) {
			return w.Destination, true
		}
	}
	return positions.WarpDestination{}, false
}

// NpcAt returns the NPC standing on c, or nil.
func (m *WorldMap) NpcAt(c positions.Coordinate) *entity.Npc {
	for _, npc := range m.Npcs {
		if npc.Character.Position.Coords == c {
			return npc
		}
	}
	return nil
}

// Occupied reports whether an NPC stands on c or is stepping onto it.
func (m *WorldMap) Occupied(c positions.Coordinate) bool {
	for _, npc := range m.Npcs {
		if npc.Character.Position.Coords == c {
			return true
		}
		if next, ok := npc.Character.Stepping(); ok && next == c {
			return true
		}
	}
	return false
}

// NpcList returns the map's NPCs ordered by ID so seeded decisions replay
// identically.
func (m *WorldMap) NpcList() []*entity.Npc {
	list := make([]*entity.Npc, 0, len(m.Npcs))
	for _, npc := range m.Npcs {
		list = append(list, npc)
	}
	slices.SortFunc(list, func(a, b *entity.Npc) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return list
}

// Validate checks the grid and warp invariants. It is run once at load.
func (m *WorldMap) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("map %s: %w: %dx%d", m.ID, ErrGridSize, m.Width, m.Height)
	}
	size := int(m.Width) * int(m.Height)
	if len(m.Tiles) != size || len(m.Movements) != size {
		return fmt.Errorf("map %s: %w: %d tiles and %d movements for %dx%d",
			m.ID, ErrGridSize, len(m.Tiles), len(m.Movements), m.Width, m.Height)
	}
	for _, w := range m.Warps {
		if !w.Area.Within(m.Width, m.Height) {
			return fmt.Errorf("map %s warp %q: %w", m.ID, w.ID, ErrWarpOutOfBounds)
		}
	}
	for id, npc := range m.Npcs {
		if npc.ID != id {
			return fmt.Errorf("map %s: npc keyed %q has id %q", m.ID, id, npc.ID)
		}
		if !m.InBounds(npc.Character.Position.Coords) {
			return fmt.Errorf("map %s npc %q: %w", m.ID, id, ErrNpcOutOfBounds)
		}
	}
	return nil
}
