package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/overworld/internal/positions"
)

func TestMovementModeString(t *testing.T) {
	tests := []struct {
		mode     MovementMode
		expected string
	}{
		{Walking, "walking"},
		{Running, "running"},
		{Swimming, "swimming"},
		{MovementMode(9), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.mode.String())
	}
}

func TestDoMoveCompletesOneTile(t *testing.T) {
	c := &Character{Position: positions.NewCoordinate(2, 2).Position(positions.Down)}
	c.Pathing.Push(positions.Right)

	// Walking covers 1 px per 1/60 s, so 15 frames stay mid-tile.
	frame := float32(1.0 / 60.0)
	for i := 0; i < 15; i++ {
		require.False(t, c.DoMove(frame), "frame %d", i)
	}
	assert.Equal(t, positions.NewCoordinate(2, 2), c.Position.Coords)
	assert.Equal(t, positions.Right, c.Position.Direction)
	assert.False(t, c.Position.Offset.IsZero())

	assert.True(t, c.DoMove(frame*1.5))
	assert.Equal(t, positions.NewCoordinate(3, 2), c.Position.Coords)
	assert.True(t, c.Position.Offset.IsZero())
	assert.False(t, c.Moving())
}

func TestDoMoveAppliesTurnOnArrival(t *testing.T) {
	c := &Character{Movement: Swimming}
	up := positions.Up
	c.Pathing.Extend(positions.Path{Queue: []positions.Direction{positions.Left, positions.Left}, Turn: &up})

	completed := 0
	for i := 0; i < 100 && c.Moving(); i++ {
		if c.DoMove(0.1) {
			completed++
		}
	}
	assert.Equal(t, 1, completed)
	assert.Equal(t, positions.NewCoordinate(-2, 0), c.Position.Coords)
	assert.Equal(t, positions.Up, c.Position.Direction)
}

func TestStopMove(t *testing.T) {
	c := &Character{}
	c.Pathing.Push(positions.Up)
	c.DoMove(0.05)
	c.StopMove()
	assert.False(t, c.Moving())
	assert.True(t, c.Position.Offset.IsZero())
}

func TestPartyHelpers(t *testing.T) {
	party := Party{
		NewMember("sprout", 5, 20, "tackle"),
		NewMember("ripple", 7, 25, "tackle", "surf"),
	}
	assert.True(t, party.Knows("surf"))
	assert.False(t, party.Knows("cut"))

	party[0].TakeDamage(50)
	party[1].TakeDamage(3)
	assert.Equal(t, "ripple", party.Lead().Name())
	assert.False(t, party.IsDefeated())

	party[1].TakeDamage(100)
	assert.True(t, party.IsDefeated())
	assert.Nil(t, party.Lead())

	party.HealAll()
	assert.Equal(t, 20, party[0].HP)
	assert.Equal(t, 25, party[1].HP)
}

func TestPlayerWorldState(t *testing.T) {
	spawn := positions.Spawn{Location: positions.NewLocation("town"), Position: positions.NewCoordinate(1, 1).Position(positions.Down)}
	p := NewPlayer("red", spawn)
	assert.True(t, p.World.Encounters)

	loc := positions.NewLocation("route")
	c := positions.NewCoordinate(4, 4)
	assert.False(t, p.World.Removed(loc, c))
	p.World.Remove(loc, c)
	assert.True(t, p.World.Removed(loc, c))
	assert.False(t, p.World.Removed(spawn.Location, c))

	assert.False(t, p.World.Battle.Battled(loc, "ace"))
	p.World.Battle.Insert(loc, "ace", "rookie")
	assert.True(t, p.World.Battle.Battled(loc, "ace"))
	assert.True(t, p.World.Battle.Battled(loc, "rookie"))
}

func TestPlayerRelocate(t *testing.T) {
	p := NewPlayer("red", positions.Spawn{Location: positions.NewLocation("a")})
	p.Position.Elevation = 2
	p.Pathing.Push(positions.Left)

	left := positions.Left
	p.Relocate(positions.NewLocation("b"), positions.Destination{Coords: positions.NewCoordinate(1, 1), Direction: &left})
	assert.Equal(t, positions.NewLocation("b"), p.Location)
	assert.Equal(t, positions.NewCoordinate(1, 1), p.Position.Coords)
	assert.Equal(t, positions.Left, p.Position.Direction)
	assert.Equal(t, positions.Ungrounded, p.Position.Elevation)
	assert.False(t, p.Moving())
}

func TestNpcInteractFrom(t *testing.T) {
	npc := &Npc{Character: Character{Position: positions.NewCoordinate(3, 2).Position(positions.Down)}}
	assert.True(t, npc.InteractFrom(positions.NewCoordinate(3, 3).Position(positions.Up)))
	assert.False(t, npc.InteractFrom(positions.NewCoordinate(3, 3).Position(positions.Left)))

	assert.Equal(t, positions.NewCoordinate(3, 2), npc.Spawn())
	npc.Character.Position.Coords = positions.NewCoordinate(9, 9)
	assert.Equal(t, positions.NewCoordinate(3, 2), npc.Spawn())
}
