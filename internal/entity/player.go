package entity

import "github.com/samdwyer/overworld/internal/positions"

// Poller reports whether a collaborator finished a polling message.
type Poller interface {
	Finished() bool
}

// Player is the user-controlled character. The caller owns it and lends it
// to every overworld call.
type Player struct {
	Character
	Location    positions.Location
	InputFrozen bool
	Party       Party
	Bag         Bag
	World       PlayerWorld
}

// PlayerWorld is per-session overworld state carried with the player.
type PlayerWorld struct {
	// Warp is the destination stashed when a warp zone is crossed.
	Warp *positions.WarpDestination
	// Active is the NPC currently in a dialogue or battle-trigger sequence.
	Active *NpcID
	// Polling is set while a message awaits the collaborator.
	Polling Poller
	Battle  BattleState
	// Heal is where a defeated player respawns. Nil means the world spawn.
	Heal *positions.Spawn
	// Encounters enables wild battles.
	Encounters bool

	removed map[positions.Location]map[positions.Coordinate]struct{}
}

// BattleState tracks beaten trainers for the session.
type BattleState struct {
	battled  map[positions.Location]map[NpcID]struct{}
	Battling *TrainerRef
}

// NewPlayer creates a player standing at spawn.
func NewPlayer(name string, spawn positions.Spawn) *Player {
	return &Player{
		Character: Character{
			Name:     name,
			Position: spawn.Position,
		},
		Location: spawn.Location,
		Bag:      Bag{},
		World:    PlayerWorld{Encounters: true},
	}
}

// Freeze blocks player input.
func (p *Player) Freeze() {
	p.InputFrozen = true
}

// Unfreeze restores player input.
func (p *Player) Unfreeze() {
	p.InputFrozen = false
}

// Relocate moves the player onto another map, discarding in-flight motion.
func (p *Player) Relocate(location positions.Location, dest positions.Destination) {
	p.Location = location
	p.Position.Coords = dest.Coords
	if dest.Direction != nil {
		p.Position.Direction = *dest.Direction
	}
	p.Position.Elevation = positions.Ungrounded
	p.StopMove()
}

// Battled reports whether the trainer was already beaten.
func (b *BattleState) Battled(location positions.Location, id NpcID) bool {
	_, ok := b.battled[location][id]
	return ok
}

// Insert records trainers as beaten.
func (b *BattleState) Insert(location positions.Location, ids ...NpcID) {
	if b.battled == nil {
		b.battled = make(map[positions.Location]map[NpcID]struct{})
	}
	set, ok := b.battled[location]
	if !ok {
		set = make(map[NpcID]struct{})
		b.battled[location] = set
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
}

// Removed reports whether the object or item at c was broken or collected.
func (w *PlayerWorld) Removed(location positions.Location, c positions.Coordinate) bool {
	_, ok := w.removed[location][c]
	return ok
}

// Remove records an object as broken or an item as collected.
func (w *PlayerWorld) Remove(location positions.Location, c positions.Coordinate) {
	if w.removed == nil {
		w.removed = make(map[positions.Location]map[positions.Coordinate]struct{})
	}
	set, ok := w.removed[location]
	if !ok {
		set = make(map[positions.Coordinate]struct{})
		w.removed[location] = set
	}
	set[c] = struct{}{}
}
