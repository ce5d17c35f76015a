package overworld

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/overworld/internal/actions"
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/world"
)

// OnTile runs the actions for the tile the player just stepped onto: the
// OnTile notice, a wild encounter roll, and trainer sight checks.
func (m *Manager) OnTile(ctx context.Context, player *entity.Player) {
	m.queue.Send(actions.OnTile{Location: player.Location, Coords: player.Position.Coords})

	current := m.Map(player.Location)
	if current == nil {
		return
	}

	if player.World.Encounters {
		if tile, ok := current.Tile(player.Position.Coords); ok && m.data.Palettes.IsWild(current, tile) {
			kind := world.WildLand
			if player.Movement == entity.Swimming {
				kind = world.WildWater
			}
			if wild := current.Wild.Generate(kind, m.data.Wild, m.wildRand); wild != nil {
				m.queue.Send(actions.Battle{Entry: world.BattleEntry{Wild: wild}})
				m.log.WithFields(logrus.Fields{
					"map":     current.ID.String(),
					"species": wild.Species,
					"level":   wild.Level,
				}).Info("wild encounter")
			}
		}
	}

	if player.World.Active != nil {
		return
	}
	for _, npc := range current.NpcList() {
		if m.findBattle(ctx, player, current, npc) {
			return
		}
	}
}
