// Package game runs the frame loop tying terminal input, the overworld
// manager and rendering together.
package game

// State is the mode the frame loop is in.
type State int

const (
	// StateExplore is the default mode where input drives the overworld.
	StateExplore State = iota
	// StateMessage shows dialogue pages until the player confirms each one.
	StateMessage
	// StateBattle waits for the player to confirm before resolving a battle.
	StateBattle
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateMessage:
		return "message"
	case StateBattle:
		return "battle"
	default:
		return "unknown"
	}
}
