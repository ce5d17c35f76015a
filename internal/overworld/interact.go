package overworld

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/overworld/internal/actions"
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/world"
)

// TryInteract talks to the NPC in front of the player, reaching across
// counter tiles, then tries to break the object ahead or pick up the item
// ahead.
func (m *Manager) TryInteract(player *entity.Player) {
	current := m.Map(player.Location)
	if current == nil {
		return
	}

	if player.World.Active == nil {
		pos := player.Position
		if tile, ok := current.Tile(pos.Coords); ok && m.data.Palettes.IsForwarding(current, tile) {
			pos.Coords = pos.Forwards()
		}
		for _, npc := range current.NpcList() {
			if npc.Interactable() && npc.InteractFrom(pos) {
				id := npc.ID
				player.World.Active = &id
				break
			}
		}
	}

	forward := player.Position.Forwards()
	if m.isRemoved(player, current.ID, forward) {
		return
	}

	if object := current.ObjectAt(forward); object != nil {
		var move entity.MoveID
		switch object.Group {
		case world.ObjectTree:
			move = MoveCut
		case world.ObjectRock:
			move = MoveRockSmash
		}
		if move != "" && player.Party.Knows(move) {
			// Broken objects are cleared outright and leave no item behind.
			m.queue.Send(actions.BreakObject{Coords: forward, Group: object.Group})
			player.World.Remove(current.ID, forward)
			m.log.WithFields(logrus.Fields{
				"map":    current.ID.String(),
				"coords": forward.String(),
				"group":  string(object.Group),
			}).Info("object broken")
		}
	}

	if item := current.ItemAt(forward); item != nil {
		player.World.Remove(current.ID, forward)
		player.Bag.Insert(item.Item)
		m.log.WithFields(logrus.Fields{
			"map":  current.ID.String(),
			"item": string(item.Item),
		}).Info("item collected")
	}
}

// UpdateInteractions drives the active NPC. A trainer that has stopped
// walking shows its encounter text; a plain NPC shows its dialogue. Once
// the collaborator finishes the message, a pending trainer battle starts
// and the NPC is released.
func (m *Manager) UpdateInteractions(player *entity.Player) {
	if player.World.Active == nil {
		return
	}
	id := *player.World.Active
	current := m.Map(player.Location)
	var npc *entity.Npc
	if current != nil {
		npc = current.Npcs[id]
	}
	if npc == nil {
		m.release(player)
		return
	}

	if player.World.Polling != nil {
		if !player.World.Polling.Finished() {
			return
		}
		player.World.Polling = nil
		player.World.Active = nil
		if entry := m.trainerEntry(player, current, npc); entry != nil {
			player.World.Battle.Battling = &entry.Ref
			m.queue.Send(actions.Battle{Entry: world.BattleEntry{Trainer: entry}})
			m.log.WithFields(logrus.Fields{
				"map": current.ID.String(),
				"npc": string(npc.ID),
			}).Info("trainer battle started")
			return
		}
		player.Unfreeze()
		return
	}

	if npc.Character.Moving() {
		return
	}

	group := m.data.NpcGroups[npc.Group]
	if npc.Trainer != nil && !player.World.Battle.Battled(current.ID, npc.ID) {
		if group.Trainer != nil && group.Trainer.Music != "" {
			m.queue.Send(actions.PlayMusic{Music: group.Trainer.Music})
		}
		player.Position.Direction = npc.Character.Position.Direction.Inverse()
		player.Freeze()
		player.World.Polling = m.queue.SendPolling(actions.Message{
			Pages: format(npc.Trainer.Encounter, player, npc),
			Color: group.Message,
		})
		return
	}

	switch npc.Interact.Kind {
	case entity.InteractMessage:
		npc.Character.Position.Direction = player.Position.Direction.Inverse()
		player.Freeze()
		player.World.Polling = m.queue.SendPolling(actions.Message{
			Pages: format(npc.Interact.Pages, player, npc),
			Color: group.Message,
		})
	default:
		m.release(player)
	}
}

func (m *Manager) release(player *entity.Player) {
	player.World.Active = nil
	player.World.Polling = nil
	player.Unfreeze()
}

// format substitutes %p with the player's name and %n with the NPC's.
func format(pages [][]string, player *entity.Player, npc *entity.Npc) [][]string {
	r := strings.NewReplacer("%p", player.Name, "%n", npc.Character.Name)
	out := make([][]string, len(pages))
	for i, lines := range pages {
		out[i] = make([]string, len(lines))
		for j, line := range lines {
			out[i][j] = r.Replace(line)
		}
	}
	return out
}
