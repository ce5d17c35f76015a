package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/telemetry"
)

const (
	DefaultCaveWidth  = 40
	DefaultCaveHeight = 30

	minRoomSize = 4
	maxRoomSize = 9
	minLeafSize = 7
)

// CaveSpec describes a procedurally generated cave.
type CaveSpec struct {
	Location positions.Location
	Name     string
	Music    MusicID
	Width    int32
	Height   int32
	Palettes [2]PaletteID
	Floor    TileID
	Wall     TileID
	// Exit is where the cave's single warp leads.
	Exit positions.WarpDestination
	Wild WildEntries
}

// Room is a rectangular chamber carved into a cave.
type Room struct {
	X, Y          int32
	Width, Height int32
}

// Center returns the middle tile of the room.
func (r Room) Center() positions.Coordinate {
	return positions.NewCoordinate(r.X+r.Width/2, r.Y+r.Height/2)
}

// Bounds returns the inclusive box the room covers.
func (r Room) Bounds() positions.BoundingBox {
	return positions.BoundingBox{
		Min: positions.NewCoordinate(r.X, r.Y),
		Max: positions.NewCoordinate(r.X+r.Width-1, r.Y+r.Height-1),
	}
}

// Cave is a generated map plus where arrivals should stand.
type Cave struct {
	Map   *WorldMap
	Rooms []Room
	// Entrance is the floor tile just below the exit warp.
	Entrance positions.Destination
}

type caveBuilder struct {
	width, height int32
	floor         []bool
	rooms         []Room
	rng           *rand.Rand
}

// GenerateCave carves rooms with binary space partitioning and joins them
// with corridors. Equal seeds give equal caves.
func GenerateCave(ctx context.Context, spec CaveSpec, rng *rand.Rand) (*Cave, error) {
	_, span := telemetry.Tracer("world").Start(ctx, "cave.generate")
	defer span.End()

	if spec.Width-2 < minLeafSize || spec.Height-2 < minLeafSize {
		return nil, fmt.Errorf("cave %s: %w: %dx%d is too small", spec.Location, ErrGridSize, spec.Width, spec.Height)
	}
	started := time.Now()

	b := &caveBuilder{
		width:  spec.Width,
		height: spec.Height,
		floor:  make([]bool, int(spec.Width)*int(spec.Height)),
		rng:    rng,
	}
	root := &bspNode{x: 1, y: 1, width: spec.Width - 2, height: spec.Height - 2}
	b.split(root)
	b.createRooms(root)
	b.connect(root)

	if len(b.rooms) == 0 {
		return nil, fmt.Errorf("cave %s: no rooms generated", spec.Location)
	}

	m := b.build(spec)
	exit := b.rooms[0].Center()
	m.Warps = []Warp{{
		ID:          "exit",
		Area:        positions.BoundingBox{Min: exit, Max: exit},
		Destination: spec.Exit,
	}}
	down := positions.Down

	span.SetAttributes(
		attribute.String("cave.location", spec.Location.String()),
		attribute.Int("cave.room_count", len(b.rooms)),
		attribute.Int64("cave.generation_ms", time.Since(started).Milliseconds()),
	)

	return &Cave{
		Map:      m,
		Rooms:    b.rooms,
		Entrance: positions.Destination{Coords: exit.InDirection(positions.Down), Direction: &down},
	}, nil
}

func (b *caveBuilder) build(spec CaveSpec) *WorldMap {
	size := len(b.floor)
	m := &WorldMap{
		ID:        spec.Location,
		Name:      spec.Name,
		Music:     spec.Music,
		Width:     spec.Width,
		Height:    spec.Height,
		Palettes:  spec.Palettes,
		Tiles:     make([]TileID, size),
		Movements: make([]MovementID, size),
		Border:    [4]TileID{spec.Wall, spec.Wall, spec.Wall, spec.Wall},
		Wild:      spec.Wild,
		Npcs:      map[entity.NpcID]*entity.Npc{},
		Settings:  Settings{Brightness: Night},
	}
	for i, open := range b.floor {
		if open {
			m.Tiles[i] = spec.Floor
			m.Movements[i] = HL1
		} else {
			m.Tiles[i] = spec.Wall
			m.Movements[i] = Obstacle
		}
	}
	return m
}

type bspNode struct {
	x, y          int32
	width, height int32
	left, right   *bspNode
	room          *Room
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (b *caveBuilder) intn(n int32) int32 {
	return int32(b.rng.Intn(int(n)))
}

func (b *caveBuilder) split(node *bspNode) {
	var horizontal bool
	switch {
	case node.width > node.height && node.width >= minLeafSize*2:
		horizontal = false
	case node.height >= minLeafSize*2:
		horizontal = true
	case node.width >= minLeafSize*2:
		horizontal = false
	default:
		return
	}

	extent := node.width
	if horizontal {
		extent = node.height
	}
	lo, hi := int32(minLeafSize), extent-minLeafSize
	if hi < lo {
		return
	}
	at := lo + b.intn(hi-lo+1)

	if horizontal {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: at}
		node.right = &bspNode{x: node.x, y: node.y + at, width: node.width, height: node.height - at}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: at, height: node.height}
		node.right = &bspNode{x: node.x + at, y: node.y, width: node.width - at, height: node.height}
	}
	b.split(node.left)
	b.split(node.right)
}

func (b *caveBuilder) createRooms(node *bspNode) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		b.createRooms(node.left)
		b.createRooms(node.right)
		return
	}

	w := minRoomSize + b.intn(min(maxRoomSize-minRoomSize+1, node.width-minRoomSize+1))
	h := minRoomSize + b.intn(min(maxRoomSize-minRoomSize+1, node.height-minRoomSize+1))
	w = min(w, node.width-2)
	h = min(h, node.height-2)
	if w < minRoomSize || h < minRoomSize {
		return
	}

	room := Room{
		X:      node.x + 1 + b.intn(node.width-w-1),
		Y:      node.y + 1 + b.intn(node.height-h-1),
		Width:  w,
		Height: h,
	}
	node.room = &room
	b.rooms = append(b.rooms, room)

	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			b.carve(x, y)
		}
	}
}

func (b *caveBuilder) carve(x, y int32) {
	if x > 0 && x < b.width-1 && y > 0 && y < b.height-1 {
		b.floor[int(x)+int(y)*int(b.width)] = true
	}
}

// Open reports whether the builder carved c.
func (c *Cave) Open(coords positions.Coordinate) bool {
	code, ok := c.Map.LocalMovement(coords)
	return ok && code.Walkable()
}

func (b *caveBuilder) connect(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}
	b.connect(node.left)
	b.connect(node.right)

	left, right := anyRoom(node.left), anyRoom(node.right)
	if left == nil || right == nil {
		return
	}
	from, to := left.Center(), right.Center()
	if b.rng.Intn(2) == 0 {
		b.tunnelX(from.X, to.X, from.Y)
		b.tunnelY(from.Y, to.Y, to.X)
	} else {
		b.tunnelY(from.Y, to.Y, from.X)
		b.tunnelX(from.X, to.X, to.Y)
	}
}

func anyRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := anyRoom(node.left); room != nil {
		return room
	}
	return anyRoom(node.right)
}

func (b *caveBuilder) tunnelX(x1, x2, y int32) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		b.carve(x, y)
	}
}

func (b *caveBuilder) tunnelY(y1, y2, x int32) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		b.carve(x, y)
	}
}
