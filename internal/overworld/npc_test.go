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

func npcAt(id entity.NpcID, x, y int32, facing positions.Direction) *entity.Npc {
	return &entity.Npc{
		ID: id,
		Character: entity.Character{
			Name:     string(id),
			Position: positions.Position{Coords: at(x, y), Direction: facing, Elevation: 1},
		},
	}
}

func TestPatrolStaysInArea(t *testing.T) {
	m := newMap("park", 21, 21)
	walker := npcAt("walker", 10, 10, positions.Down)
	walker.Movement = []entity.NpcMovement{{Kind: entity.NpcWander, Area: 1}}
	m.AddNpc(walker)
	f := newFixture(t, spawnAt("park", 0, 0, positions.Down), m)
	f.manager.opts.NpcMoveChance = 1

	area := positions.BoundingBox{Min: at(9, 9), Max: at(11, 11)}
	moved := false
	for i := 0; i < 60*300; i++ {
		f.manager.MoveNpcs(context.Background(), f.player, frame)
		c := walker.Character.Position.Coords
		require.True(t, area.Contains(c), "walker left patrol area at %s", c)
		if c != at(10, 10) {
			moved = true
		}
	}
	assert.True(t, moved)
}

func TestPatrolNeverStepsOntoPlayer(t *testing.T) {
	m := newMap("park", 5, 5)
	walker := npcAt("walker", 2, 2, positions.Down)
	walker.Movement = []entity.NpcMovement{{Kind: entity.NpcWander, Area: 1}}
	m.AddNpc(walker)
	f := newFixture(t, spawnAt("park", 2, 3, positions.Up), m)
	f.manager.opts.NpcMoveChance = 1

	for i := 0; i < 60*120; i++ {
		f.manager.MoveNpcs(context.Background(), f.player, frame)
		require.NotEqual(t, f.player.Position.Coords, walker.Character.Position.Coords)
	}
}

func TestPlayerCannotStepWhereNpcIsWalking(t *testing.T) {
	m := newMap("park", 5, 3)
	walker := npcAt("walker", 2, 1, positions.Left)
	walker.Character.Pathing.Push(positions.Left)
	m.AddNpc(walker)
	f := newFixture(t, spawnAt("park", 0, 1, positions.Right), m)

	f.manager.Input(context.Background(), f.player, Move(positions.Right))
	f.frames(60)

	assert.Equal(t, at(1, 1), walker.Character.Position.Coords)
	assert.Equal(t, at(0, 1), f.player.Position.Coords)
}

func TestLookPicksAllowedDirection(t *testing.T) {
	m := newMap("park", 5, 5)
	looker := npcAt("looker", 2, 2, positions.Down)
	looker.Movement = []entity.NpcMovement{{Kind: entity.NpcLook, Directions: []positions.Direction{positions.Left, positions.Right}}}
	m.AddNpc(looker)
	f := newFixture(t, spawnAt("park", 0, 0, positions.Down), m)
	f.manager.opts.NpcMoveChance = 1

	seen := map[positions.Direction]bool{}
	for i := 0; i < 60*60; i++ {
		f.manager.MoveNpcs(context.Background(), f.player, frame)
		seen[looker.Character.Position.Direction] = true
	}
	assert.True(t, seen[positions.Left])
	assert.True(t, seen[positions.Right])
	assert.False(t, seen[positions.Up])
	assert.False(t, looker.Character.Moving())
}

func TestNpcDecisionsAreSeeded(t *testing.T) {
	build := func() (*fixture, *entity.Npc) {
		m := newMap("park", 21, 21)
		walker := npcAt("walker", 10, 10, positions.Down)
		walker.Movement = []entity.NpcMovement{{Kind: entity.NpcWander, Area: 3}}
		m.AddNpc(walker)
		f := newFixture(t, spawnAt("park", 0, 0, positions.Down), m)
		f.manager.Seed(77)
		return f, walker
	}
	f1, w1 := build()
	f2, w2 := build()
	for i := 0; i < 60*200; i++ {
		f1.manager.MoveNpcs(context.Background(), f1.player, frame)
		f2.manager.MoveNpcs(context.Background(), f2.player, frame)
		require.Equal(t, w1.Character.Position, w2.Character.Position)
	}
}

func trainerMap() (*world.WorldMap, *entity.Npc) {
	m := newMap("gym", 11, 11)
	trainer := npcAt("joey", 5, 1, positions.Down)
	trainer.Group = "youngster"
	trainer.Trainer = &entity.Trainer{
		Sight:       4,
		Encounter:   [][]string{{"%n wants to fight %p!"}},
		Defeat:      [][]string{{"%p is too strong"}},
		Party:       entity.Party{entity.NewMember("rattata", 4, 15)},
		AlsoDisable: []entity.NpcID{"twin"},
	}
	m.AddNpc(trainer)
	return m, trainer
}

func TestTrainerSpotsPlayer(t *testing.T) {
	m, trainer := trainerMap()
	f := newFixture(t, spawnAt("gym", 5, 5, positions.Up), m)
	f.manager.data.NpcGroups["youngster"] = world.NpcGroup{
		Message: world.MessageBlue,
		Trainer: &world.TrainerGroup{Name: "Youngster", Music: "trainer-theme"},
	}

	f.manager.Input(context.Background(), f.player, Move(positions.Up))
	f.until(t, func() bool { return f.player.World.Active != nil })

	assert.Equal(t, at(5, 4), f.player.Position.Coords)
	assert.Equal(t, entity.NpcID("joey"), *f.player.World.Active)
	assert.True(t, f.player.InputFrozen)

	f.until(t, func() bool { return f.player.World.Polling != nil })
	assert.Equal(t, at(5, 3), trainer.Character.Position.Coords)
	assert.Equal(t, positions.Down, trainer.Character.Position.Direction)
	assert.Equal(t, positions.Up, f.player.Position.Direction)

	drained := f.queue.Drain()
	music, ok := findAction[actions.PlayMusic](drained)
	require.True(t, ok)
	assert.Equal(t, world.MusicID("trainer-theme"), music.Music)
	msg, ok := findAction[actions.Message](drained)
	require.True(t, ok)
	assert.Equal(t, "joey wants to fight red!", msg.Pages[0][0])
	assert.Equal(t, world.MessageBlue, msg.Color)

	poll := findPoll(drained)
	require.NotNil(t, poll)
	f.frames(5)
	assert.NotNil(t, f.player.World.Active, "waits for the message")

	poll.Finish()
	f.frames(1)
	battle, ok := findAction[actions.Battle](f.queue.Drain())
	require.True(t, ok)
	require.True(t, battle.Entry.IsTrainer())
	assert.Equal(t, "Youngster joey", battle.Entry.Trainer.Name)
	assert.Equal(t, []string{"red is too strong"}, battle.Entry.Trainer.Defeat[0])
	assert.Nil(t, f.player.World.Active)
	assert.True(t, f.player.InputFrozen, "frozen until the battle ends")

	f.manager.PostBattle(context.Background(), f.player, true)
	assert.False(t, f.player.InputFrozen)
	assert.True(t, f.player.World.Battle.Battled(loc("gym"), "joey"))
	assert.True(t, f.player.World.Battle.Battled(loc("gym"), "twin"))
	assert.Nil(t, f.player.World.Battle.Battling)
}

func TestTrainerSightBlockedByWall(t *testing.T) {
	m, _ := trainerMap()
	m.SetMovement(at(5, 3), world.Obstacle)
	f := newFixture(t, spawnAt("gym", 5, 5, positions.Up), m)

	f.manager.Input(context.Background(), f.player, Move(positions.Up))
	f.until(t, func() bool { return !f.player.Moving() })
	assert.Nil(t, f.player.World.Active)
}

func TestTrainerOutOfRange(t *testing.T) {
	m, trainer := trainerMap()
	trainer.Trainer.Sight = 2
	f := newFixture(t, spawnAt("gym", 5, 5, positions.Up), m)

	f.manager.Input(context.Background(), f.player, Move(positions.Up))
	f.until(t, func() bool { return !f.player.Moving() })
	assert.Nil(t, f.player.World.Active)
}

func TestBattledTrainerIgnoresPlayer(t *testing.T) {
	m, _ := trainerMap()
	f := newFixture(t, spawnAt("gym", 5, 5, positions.Up), m)
	f.player.World.Battle.Insert(loc("gym"), "joey")

	f.manager.Input(context.Background(), f.player, Move(positions.Up))
	f.until(t, func() bool { return !f.player.Moving() })
	assert.Nil(t, f.player.World.Active)
}

func TestTrainerIgnoresPlayerDuringWarp(t *testing.T) {
	a, b := warpMaps()
	trainer := npcAt("joey", 1, 3, positions.Up)
	trainer.Movement = []entity.NpcMovement{{Kind: entity.NpcLook, Directions: []positions.Direction{positions.Up}}}
	trainer.Trainer = &entity.Trainer{
		Sight:     3,
		Encounter: [][]string{{"hey"}},
		Party:     entity.Party{entity.NewMember("rattata", 4, 15)},
	}
	b.AddNpc(trainer)
	f := newFixture(t, spawnAt("A", 3, 4, positions.Up), a, b)
	f.manager.opts.NpcMoveChance = 1

	f.manager.Input(context.Background(), f.player, Move(positions.Up))
	require.True(t, f.manager.Transition().Active())
	for i := 0; i < 10_000 && f.manager.Transition().Active(); i++ {
		f.manager.Update(context.Background(), f.player, frame)
		if f.manager.Transition().Active() {
			require.Nil(t, f.player.World.Active, "spotted mid-warp")
		}
	}
	require.False(t, f.manager.Transition().Active())
	assert.Equal(t, "B", f.player.Location.Name)

	f.until(t, func() bool { return f.player.World.Active != nil })
	assert.True(t, f.player.InputFrozen)
}
