package entity

import "github.com/samdwyer/overworld/internal/positions"

// NpcID identifies an NPC within its map.
type NpcID string

// NpcGroupID keys the shared NPC group table.
type NpcGroupID string

// NpcMovementKind selects an idle behaviour.
type NpcMovementKind uint8

const (
	// NpcLook turns to a random direction from the allowed list.
	NpcLook NpcMovementKind = iota
	// NpcWander steps one tile inside a square around the spawn coordinate.
	NpcWander
)

// NpcMovement is one idle behaviour an NPC may pick on a decision tick.
type NpcMovement struct {
	Kind       NpcMovementKind
	Directions []positions.Direction
	// Area is the patrol half-extent in tiles for NpcWander.
	Area int32
}

// NpcInteractKind selects what happens when the player talks to an NPC.
type NpcInteractKind uint8

const (
	InteractNothing NpcInteractKind = iota
	InteractMessage
)

// NpcInteract holds the dialogue shown on interaction.
type NpcInteract struct {
	Kind  NpcInteractKind
	Pages [][]string
}

// Trainer marks an NPC that challenges the player.
type Trainer struct {
	// Sight is how many tiles ahead the trainer spots the player. Zero
	// disables spotting; the trainer then only battles on interaction.
	Sight     int32
	Encounter [][]string
	Defeat    [][]string
	Party     Party
	// AlsoDisable lists trainers on the same map that count as battled once
	// this one is beaten.
	AlsoDisable []NpcID
}

// TrainerRef locates a trainer across maps.
type TrainerRef struct {
	Location positions.Location `json:"location"`
	ID       NpcID              `json:"id"`
}

// Npc is a non-player actor owned by a map.
type Npc struct {
	ID        NpcID
	Group     NpcGroupID
	Character Character
	// Origin is the spawn coordinate patrol areas are anchored to.
	Origin   *positions.Coordinate
	Movement []NpcMovement
	Interact NpcInteract
	Trainer  *Trainer
}

// Interactable returns true if talking to the NPC does something.
func (n *Npc) Interactable() bool {
	return n.Interact.Kind != InteractNothing || n.Trainer != nil
}

// InteractFrom returns true if an actor standing at p faces the NPC.
func (n *Npc) InteractFrom(p positions.Position) bool {
	return !n.Character.Moving() && p.Forwards() == n.Character.Position.Coords
}

// Spawn returns the patrol anchor, recording the current tile on first use.
func (n *Npc) Spawn() positions.Coordinate {
	if n.Origin == nil {
		origin := n.Character.Position.Coords
		n.Origin = &origin
	}
	return *n.Origin
}
