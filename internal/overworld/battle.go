package overworld

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/telemetry"
	"github.com/samdwyer/overworld/internal/world"
)

// trainerEntry builds the battle for an unbeaten trainer NPC, or nil.
func (m *Manager) trainerEntry(player *entity.Player, current *world.WorldMap, npc *entity.Npc) *world.TrainerBattle {
	if npc.Trainer == nil || player.World.Battle.Battled(current.ID, npc.ID) {
		return nil
	}
	name := npc.Character.Name
	var music world.MusicID
	if group, ok := m.data.NpcGroups[npc.Group]; ok && group.Trainer != nil {
		if group.Trainer.Name != "" {
			name = group.Trainer.Name + " " + name
		}
		music = group.Trainer.Music
	}
	return &world.TrainerBattle{
		Ref:    entity.TrainerRef{Location: current.ID, ID: npc.ID},
		Name:   name,
		Music:  music,
		Party:  npc.Trainer.Party,
		Defeat: format(npc.Trainer.Defeat, player, npc),
	}
}

// PostBattle applies a battle's outcome. Beating a trainer marks it, and
// any trainers it lists, as battled. Losing sends the player to the last
// heal point, or the world spawn, with a healed party.
func (m *Manager) PostBattle(ctx context.Context, player *entity.Player, winner bool) {
	ctx, span := telemetry.Tracer("overworld").Start(ctx, "overworld.post_battle")
	defer span.End()
	span.SetAttributes(attribute.Bool("battle.winner", winner))

	player.Unfreeze()
	battling := player.World.Battle.Battling
	player.World.Battle.Battling = nil

	if winner {
		if battling == nil {
			return
		}
		trainerMap := m.Map(battling.Location)
		if trainerMap == nil {
			return
		}
		npc, ok := trainerMap.Npcs[battling.ID]
		if !ok || npc.Trainer == nil {
			return
		}
		player.World.Battle.Insert(battling.Location, battling.ID)
		player.World.Battle.Insert(battling.Location, npc.Trainer.AlsoDisable...)
		m.log.WithFields(logrus.Fields{
			"map":      battling.Location.String(),
			"npc":      string(battling.ID),
			"disabled": len(npc.Trainer.AlsoDisable),
		}).Info("trainer defeated")
		return
	}

	spawn := m.data.Spawn
	if player.World.Heal != nil {
		spawn = *player.World.Heal
	}
	from := player.Location
	player.Location = spawn.Location
	player.Position = spawn.Position
	player.StopMove()
	player.Movement = entity.Walking
	player.Party.HealAll()
	player.World.Active = nil
	player.World.Polling = nil
	m.log.WithFields(logrus.Fields{
		"from": from.String(),
		"to":   spawn.Location.String(),
	}).Info("player blacked out")
	m.onMapChange(ctx, from, player)
}
