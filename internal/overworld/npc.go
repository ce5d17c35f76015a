package overworld

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/pathfind"
	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/world"
)

// MoveNpcs animates every NPC on the player's map. Once per second of
// decision time each idle NPC may, with the configured chance, look
// around or wander one step inside its patrol square.
func (m *Manager) MoveNpcs(ctx context.Context, player *entity.Player, delta float32) {
	current := m.Map(player.Location)
	if current == nil {
		return
	}
	npcs := current.NpcList()
	for _, npc := range npcs {
		npc.Character.DoMove(delta)
	}

	if m.npcTimer > 0 {
		m.npcTimer -= delta
		return
	}
	m.npcTimer += 1

	for _, npc := range npcs {
		if npc.Character.Moving() || m.isActive(player, npc) {
			continue
		}
		if m.npcRand.Float64() >= m.opts.NpcMoveChance {
			continue
		}
		for _, movement := range npc.Movement {
			switch movement.Kind {
			case entity.NpcLook:
				if len(movement.Directions) > 0 {
					npc.Character.Position.Direction = movement.Directions[m.npcRand.Intn(len(movement.Directions))]
				}
				if npc.Trainer != nil {
					m.findBattle(ctx, player, current, npc)
				}
			case entity.NpcWander:
				m.wander(player, current, npc, movement)
			}
		}
	}
}

func (m *Manager) isActive(player *entity.Player, npc *entity.Npc) bool {
	return player.World.Active != nil && *player.World.Active == npc.ID
}

// wander turns the NPC to a random allowed direction and steps if the next
// tile is inside the patrol square and legal.
func (m *Manager) wander(player *entity.Player, current *world.WorldMap, npc *entity.Npc, movement entity.NpcMovement) {
	directions := movement.Directions
	if len(directions) == 0 {
		directions = positions.Directions[:]
	}
	direction := directions[m.npcRand.Intn(len(directions))]
	npc.Character.Position.Direction = direction

	next := npc.Character.Position.Forwards()
	if !positions.Centered(npc.Spawn(), movement.Area).Contains(next) {
		return
	}
	if m.occupiedByPlayer(player, next) || m.blockedByObject(player, current, next) {
		return
	}
	code, ok := current.LocalMovement(next)
	if !ok || !world.CanMove(npc.Character.Position.Elevation, code) {
		return
	}
	world.ChangeElevation(&npc.Character.Position.Elevation, code)
	npc.Character.Pathing.Push(direction)
}

// occupiedByPlayer reports whether the player stands on c or is stepping
// onto it.
func (m *Manager) occupiedByPlayer(player *entity.Player, c positions.Coordinate) bool {
	if player.Position.Coords == c {
		return true
	}
	next, ok := player.Stepping()
	return ok && next == c
}

// findBattle checks whether a trainer can see the player. A trainer that
// does becomes the active NPC and walks up to the player. Nobody is
// spotted mid-warp, since the transition owns the player's freeze state.
func (m *Manager) findBattle(ctx context.Context, player *entity.Player, current *world.WorldMap, npc *entity.Npc) bool {
	trainer := npc.Trainer
	if trainer == nil || trainer.Sight <= 0 || player.World.Active != nil || player.Moving() {
		return false
	}
	if m.transition.Active() {
		return false
	}
	if npc.Character.Moving() || player.World.Battle.Battled(current.ID, npc.ID) {
		return false
	}

	facing := npc.Character.Position.Direction
	if !m.inSight(player, current, npc.Character.Position.Coords, facing, trainer.Sight) {
		return false
	}

	approach := player.Position.Coords.InDirection(facing.Inverse())
	path, ok := pathfind.Find(ctx, npc.Character.Position,
		positions.Destination{Coords: approach, Direction: &facing},
		player.Position.Coords, current)
	if !ok {
		m.log.WithFields(logrus.Fields{
			"map": current.ID.String(),
			"npc": string(npc.ID),
		}).Debug("trainer has no path to player")
		return false
	}

	npc.Character.Pathing.Extend(path)
	id := npc.ID
	player.World.Active = &id
	player.Freeze()
	m.log.WithFields(logrus.Fields{
		"map":   current.ID.String(),
		"npc":   string(npc.ID),
		"steps": path.Len(),
	}).Info("trainer spotted player")
	return true
}

// inSight walks the trainer's facing line up to sight tiles, stopping at
// the first blocked tile.
func (m *Manager) inSight(player *entity.Player, current *world.WorldMap, from positions.Coordinate, facing positions.Direction, sight int32) bool {
	c := from
	for i := int32(0); i < sight; i++ {
		c = c.InDirection(facing)
		if c == player.Position.Coords {
			return true
		}
		code, ok := current.LocalMovement(c)
		if !ok || !code.Walkable() || m.blockedByObject(player, current, c) {
			return false
		}
	}
	return false
}
