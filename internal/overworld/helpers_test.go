package overworld

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/overworld/internal/actions"
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/world"
)

const frame = float32(1.0 / 60.0)

// Tile ids used by the test palette.
const (
	tileGround  world.TileID = 0
	tileGrass   world.TileID = 1
	tileDoor    world.TileID = 2
	tileLedge   world.TileID = 3
	tileCounter world.TileID = 4
	tileStair   world.TileID = 5
)

func at(x, y int32) positions.Coordinate {
	return positions.NewCoordinate(x, y)
}

func loc(name string) positions.Location {
	return positions.NewLocation(name)
}

func testPalettes() world.Palettes {
	return world.Palettes{
		0: {
			Warp:       map[world.TileID]world.WarpTile{tileDoor: world.WarpTileDoor, tileStair: world.WarpTileStair},
			Cliffs:     map[positions.Direction][]world.TileID{positions.Down: {tileLedge}},
			Wild:       []world.TileID{tileGrass},
			Forwarding: []world.TileID{tileCounter},
		},
	}
}

func newMap(name string, w, h int32) *world.WorldMap {
	m := world.NewWorldMap(loc(name), w, h, world.HL1)
	m.Music = world.MusicID(name + "-theme")
	return m
}

type fixture struct {
	manager *Manager
	queue   *actions.Queue
	hook    *test.Hook
	player  *entity.Player
}

func newFixture(t *testing.T, player positions.Spawn, maps ...*world.WorldMap) *fixture {
	t.Helper()
	data := &world.Data{
		Maps:      map[positions.Location]*world.WorldMap{},
		Palettes:  testPalettes(),
		NpcGroups: map[entity.NpcGroupID]world.NpcGroup{},
		Wild:      world.WildChances{},
		Spawn:     player,
	}
	for _, m := range maps {
		data.Maps[m.ID] = m
	}
	require.NoError(t, data.Validate())

	logger, hook := test.NewNullLogger()
	queue := actions.NewQueue()
	return &fixture{
		manager: New(data, queue, logger, Options{NpcMoveChance: DefaultNpcMoveChance, Seed: 1}),
		queue:   queue,
		hook:    hook,
		player:  entity.NewPlayer("red", player),
	}
}

func spawnAt(name string, x, y int32, facing positions.Direction) positions.Spawn {
	return positions.Spawn{
		Location: loc(name),
		Position: positions.Position{Coords: at(x, y), Direction: facing, Elevation: 1},
	}
}

// frames runs n manager updates.
func (f *fixture) frames(n int) {
	for i := 0; i < n; i++ {
		f.manager.Update(context.Background(), f.player, frame)
	}
}

// until runs updates until done reports true, failing after a long wait.
func (f *fixture) until(t *testing.T, done func() bool) {
	t.Helper()
	for i := 0; i < 10_000; i++ {
		if done() {
			return
		}
		f.manager.Update(context.Background(), f.player, frame)
	}
	t.Fatal("condition never reached")
}

func kinds(list []actions.Action) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.Kind()
	}
	return out
}

func findAction[T actions.Action](list []actions.Action) (T, bool) {
	for _, a := range list {
		if v, ok := actions.Unwrap(a).(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func findPoll(list []actions.Action) *actions.Poll {
	for _, a := range list {
		if p, ok := a.(actions.Polling); ok {
			return p.Poll
		}
	}
	return nil
}
