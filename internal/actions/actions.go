// Package actions carries the overworld's outbound messages to whoever
// drives it.
package actions

import (
	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/world"
)

// Action is one outbound message.
type Action interface {
	Kind() string
}

// PlayMusic asks the front-end to switch tracks.
type PlayMusic struct {
	Music world.MusicID `json:"music"`
}

// PlayerJump signals that the player hopped a ledge.
type PlayerJump struct{}

// BeginWarpTransition signals that a warp transition started at Coords.
type BeginWarpTransition struct {
	Coords positions.Coordinate `json:"coords"`
}

// BreakObject signals that a map object was cleared.
type BreakObject struct {
	Coords positions.Coordinate `json:"coords"`
	Group  world.ObjectGroup    `json:"group"`
}

// Battle hands a battle to the battle collaborator.
type Battle struct {
	Entry world.BattleEntry `json:"entry"`
}

// Message shows dialogue pages.
type Message struct {
	Pages [][]string         `json:"pages"`
	Color world.MessageColor `json:"color"`
}

// OnTile signals that the player finished a step on a tile.
type OnTile struct {
	Location positions.Location   `json:"location"`
	Coords   positions.Coordinate `json:"coords"`
}

// MapChange signals that the player arrived on another map.
type MapChange struct {
	From positions.Location `json:"from"`
	To   positions.Location `json:"to"`
}

func (PlayMusic) Kind() string           { return "play_music" }
func (PlayerJump) Kind() string          { return "player_jump" }
func (BeginWarpTransition) Kind() string { return "begin_warp_transition" }
func (BreakObject) Kind() string         { return "break_object" }
func (Battle) Kind() string              { return "battle" }
func (Message) Kind() string             { return "message" }
func (OnTile) Kind() string              { return "on_tile" }
func (MapChange) Kind() string           { return "map_change" }

// Polling wraps an action the overworld waits on until Poll finishes.
type Polling struct {
	Action Action
	Poll   *Poll
}

// Kind returns the wrapped action's kind.
func (p Polling) Kind() string {
	return p.Action.Kind()
}
