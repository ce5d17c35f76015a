package overworld

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/overworld/internal/actions"
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/world"
)

func TestMoveOnOpenGround(t *testing.T) {
	f := newFixture(t, spawnAt("town", 2, 2, positions.Down), newMap("town", 5, 5))

	f.manager.Input(context.Background(), f.player, Move(positions.Right))
	assert.Equal(t, []positions.Direction{positions.Right}, f.player.Pathing.Queue)
	assert.Equal(t, positions.Right, f.player.Position.Direction)

	f.until(t, func() bool { return !f.player.Moving() })
	assert.Equal(t, at(3, 2), f.player.Position.Coords)

	_, ok := findAction[actions.OnTile](f.queue.Drain())
	assert.True(t, ok)
}

func TestWaterWithoutSurfIsRejected(t *testing.T) {
	m := newMap("lake", 10, 10)
	m.SetMovement(at(5, 4), world.Water)
	spawn := spawnAt("lake", 5, 5, positions.Down)
	spawn.Position.Elevation = positions.Ungrounded
	f := newFixture(t, spawn, m)

	f.manager.Input(context.Background(), f.player, Move(positions.Up))

	assert.False(t, f.player.Moving())
	assert.Equal(t, positions.Ungrounded, f.player.Position.Elevation)
	assert.False(t, f.manager.Transition().Active())
	assert.Empty(t, f.queue.Drain())
}

func TestSurfSwitchesToSwimming(t *testing.T) {
	m := newMap("lake", 10, 10)
	m.SetMovement(at(5, 4), world.Water)
	m.SetMovement(at(5, 3), world.Water)
	m.SetMovement(at(5, 5), world.HL2)
	spawn := spawnAt("lake", 5, 5, positions.Up)
	spawn.Position.Elevation = 2
	f := newFixture(t, spawn, m)
	f.player.Party = entity.Party{entity.NewMember("lapras", 20, 60, MoveSurf)}

	f.manager.TryMove(context.Background(), f.player, positions.Up)
	require.True(t, f.player.Moving())
	assert.Equal(t, entity.Swimming, f.player.Movement)
	assert.Equal(t, positions.Elevation(0), f.player.Position.Elevation)

	f.until(t, func() bool { return !f.player.Moving() })
	f.manager.TryMove(context.Background(), f.player, positions.Down)
	assert.Equal(t, entity.Walking, f.player.Movement)
	assert.Equal(t, positions.Elevation(2), f.player.Position.Elevation)
}

func TestElevationBlocksOtherLevels(t *testing.T) {
	m := newMap("hill", 5, 5)
	m.SetMovement(at(2, 1), world.HL3)
	m.SetMovement(at(3, 2), world.Crossing)
	f := newFixture(t, spawnAt("hill", 2, 2, positions.Down), m)

	f.manager.TryMove(context.Background(), f.player, positions.Up)
	assert.False(t, f.player.Moving())

	f.manager.TryMove(context.Background(), f.player, positions.Right)
	assert.True(t, f.player.Moving())
	assert.Equal(t, positions.Elevation(1), f.player.Position.Elevation)
}

func TestNoclipIgnoresObstacles(t *testing.T) {
	m := newMap("town", 5, 5)
	m.SetMovement(at(2, 1), world.Obstacle)
	f := newFixture(t, spawnAt("town", 2, 2, positions.Down), m)
	f.player.Noclip = true

	f.manager.TryMove(context.Background(), f.player, positions.Up)
	assert.True(t, f.player.Moving())
}

func TestMoveOffMapWithoutChunk(t *testing.T) {
	f := newFixture(t, spawnAt("house", 0, 0, positions.Down), newMap("house", 3, 3))
	f.player.Noclip = true

	f.manager.TryMove(context.Background(), f.player, positions.Left)
	assert.False(t, f.player.Moving())
}

func TestLedgeJump(t *testing.T) {
	m := newMap("route", 5, 6)
	m.SetTile(at(2, 3), tileLedge)
	f := newFixture(t, spawnAt("route", 2, 2, positions.Down), m)

	f.manager.TryMove(context.Background(), f.player, positions.Down)
	assert.Equal(t, []positions.Direction{positions.Down, positions.Down}, f.player.Pathing.Queue)
	_, ok := findAction[actions.PlayerJump](f.queue.Drain())
	assert.True(t, ok)

	f.until(t, func() bool { return !f.player.Moving() })
	assert.Equal(t, at(2, 4), f.player.Position.Coords)

	f.manager.TryMove(context.Background(), f.player, positions.Up)
	assert.False(t, f.player.Moving(), "ledges are one-way")
}

func TestLedgeWithBlockedLanding(t *testing.T) {
	m := newMap("route", 5, 6)
	m.SetTile(at(2, 3), tileLedge)
	m.SetMovement(at(2, 4), world.Obstacle)
	f := newFixture(t, spawnAt("route", 2, 2, positions.Down), m)

	f.manager.TryMove(context.Background(), f.player, positions.Down)
	assert.False(t, f.player.Moving())
	assert.Empty(t, f.queue.Drain())
}

func chunked(name string, w, h int32, edges map[positions.Direction][]world.Connection) *world.WorldMap {
	m := newMap(name, w, h)
	m.Chunk = &world.Chunk{Connections: edges}
	return m
}

func TestChunkCrossing(t *testing.T) {
	west := chunked("west", 5, 5, map[positions.Direction][]world.Connection{
		positions.Right: {{Location: loc("east")}},
	})
	east := chunked("east", 5, 5, map[positions.Direction][]world.Connection{
		positions.Left: {{Location: loc("west")}},
	})
	f := newFixture(t, spawnAt("west", 4, 2, positions.Right), west, east)

	f.manager.TryMove(context.Background(), f.player, positions.Right)
	assert.Equal(t, "east", f.player.Location.Name)
	assert.Equal(t, at(-1, 2), f.player.Position.Coords)

	change, ok := findAction[actions.MapChange](f.queue.Drain())
	require.True(t, ok)
	assert.Equal(t, "west", change.From.Name)

	f.until(t, func() bool { return !f.player.Moving() })
	assert.Equal(t, at(0, 2), f.player.Position.Coords)

	f.manager.TryMove(context.Background(), f.player, positions.Left)
	assert.Equal(t, "west", f.player.Location.Name)
	assert.Equal(t, at(5, 2), f.player.Position.Coords)
}

func TestChunkFirstDefinedConnectionWins(t *testing.T) {
	west := chunked("west", 5, 6, map[positions.Direction][]world.Connection{
		positions.Right: {
			{Location: loc("north-east"), Offset: 0},
			{Location: loc("south-east"), Offset: 2},
		},
	})
	northEast := chunked("north-east", 4, 2, map[positions.Direction][]world.Connection{
		positions.Left: {{Location: loc("west")}},
	})
	southEast := chunked("south-east", 4, 4, map[positions.Direction][]world.Connection{
		positions.Left: {{Location: loc("west"), Offset: -2}},
	})
	f := newFixture(t, spawnAt("west", 4, 1, positions.Right), west, northEast, southEast)

	location, origin, _, ok := f.manager.ConnectionMovement(positions.Right, 1, west.Chunk.Connections[positions.Right])
	require.True(t, ok)
	assert.Equal(t, "north-east", location.Name)
	assert.Equal(t, at(-1, 1), origin)

	location, origin, _, ok = f.manager.ConnectionMovement(positions.Right, 3, west.Chunk.Connections[positions.Right])
	require.True(t, ok)
	assert.Equal(t, "south-east", location.Name)
	assert.Equal(t, at(-1, 1), origin)

	_, _, _, ok = f.manager.ConnectionMovement(positions.Right, 9, west.Chunk.Connections[positions.Right])
	assert.False(t, ok)
}

func TestChunkCrossingRespectsNeighbourCode(t *testing.T) {
	west := chunked("west", 5, 5, map[positions.Direction][]world.Connection{
		positions.Right: {{Location: loc("east")}},
	})
	east := chunked("east", 5, 5, map[positions.Direction][]world.Connection{
		positions.Left: {{Location: loc("west")}},
	})
	east.SetMovement(at(0, 2), world.Obstacle)
	f := newFixture(t, spawnAt("west", 4, 2, positions.Right), west, east)

	f.manager.TryMove(context.Background(), f.player, positions.Right)
	assert.Equal(t, "west", f.player.Location.Name)
	assert.False(t, f.player.Moving())
}

func TestInputIgnoredWhileFrozenOrMoving(t *testing.T) {
	f := newFixture(t, spawnAt("town", 2, 2, positions.Down), newMap("town", 5, 5))

	f.player.Freeze()
	f.manager.Input(context.Background(), f.player, Move(positions.Up))
	assert.False(t, f.player.Moving())
	assert.Equal(t, positions.Down, f.player.Position.Direction)

	f.player.Unfreeze()
	f.manager.Input(context.Background(), f.player, Move(positions.Up))
	f.manager.Input(context.Background(), f.player, Move(positions.Left))
	assert.Equal(t, []positions.Direction{positions.Up}, f.player.Pathing.Queue)
}
