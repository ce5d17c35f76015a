package positions

// Destination is a target tile plus the facing to assume on arrival.
type Destination struct {
	Coords    Coordinate `json:"coords"`
	Direction *Direction `json:"direction,omitempty"`
}

// Path is a replayable sequence of single-tile steps followed by a turn.
type Path struct {
	Queue []Direction
	Turn  *Direction
}

// Len returns the number of steps.
func (p Path) Len() int {
	return len(p.Queue)
}

// Replay walks the path from start and returns the final coordinate.
func (p Path) Replay(start Coordinate) Coordinate {
	for _, d := range p.Queue {
		start = start.InDirection(d)
	}
	return start
}

// WarpDestination is where a warp zone sends the player.
type WarpDestination struct {
	Location Location    `json:"location"`
	Position Destination `json:"position"`
}

// Spawn is a map plus a full position, used for the world spawn and heal points.
type Spawn struct {
	Location Location `json:"location"`
	Position Position `json:"position"`
}
