package overworld

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/overworld/internal/actions"
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/transition"
	"github.com/samdwyer/overworld/internal/world"
)

// InputKind selects an input event variant.
type InputKind uint8

const (
	InputMove InputKind = iota
	InputInteract
)

// InputEvent is one frame's player input.
type InputEvent struct {
	Kind      InputKind
	Direction positions.Direction
}

// Move returns a movement input.
func Move(d positions.Direction) InputEvent {
	return InputEvent{Kind: InputMove, Direction: d}
}

// Interact returns an interaction input.
func Interact() InputEvent {
	return InputEvent{Kind: InputInteract}
}

// Input dispatches an event. Input is ignored while the player is frozen,
// still moving, or a warp transition is running.
func (m *Manager) Input(ctx context.Context, player *entity.Player, ev InputEvent) {
	if player.InputFrozen || player.Moving() || m.transition.Active() {
		return
	}
	switch ev.Kind {
	case InputMove:
		m.TryMove(ctx, player, ev.Direction)
	case InputInteract:
		m.TryInteract(player)
	}
}

// TryMove turns the player and, if the step is legal, queues it. Stepping
// into a warp zone starts a warp transition instead.
func (m *Manager) TryMove(ctx context.Context, player *entity.Player, direction positions.Direction) {
	player.Position.Direction = direction
	coords := player.Position.Coords.InDirection(direction)

	current := m.Map(player.Location)
	if current == nil {
		return
	}

	if player.World.Warp == nil && !m.transition.Active() {
		if dest, ok := current.WarpAt(coords); ok {
			player.World.Warp = &dest
			m.beginWarp(player, current, coords)
			return
		}
	}

	if tile, ok := current.Tile(coords); ok && !player.Noclip {
		if ledge, jumpable := m.data.Palettes.Cliff(current, tile, direction); ledge {
			if jumpable {
				m.jump(player, current, coords, direction)
			}
			return
		}
	}

	if !player.Noclip && m.blockedByObject(player, current, coords) {
		return
	}

	res := current.ChunkMovement(coords)
	switch res.Kind {
	case world.ResolveLocal:
		m.withCode(player, res.Code, direction)
	case world.ResolveChunk:
		location, origin, code, ok := m.ConnectionMovement(res.Direction, res.Offset, res.Connections)
		if !ok {
			return
		}
		if m.withCode(player, code, direction) {
			from := player.Location
			player.Position.Coords = origin
			player.Location = location
			m.onMapChange(ctx, from, player)
		}
	}
}

func (m *Manager) beginWarp(player *entity.Player, current *world.WorldMap, coords positions.Coordinate) {
	var door *transition.Door
	if tile, ok := current.Tile(coords); ok {
		if palette, kind, ok := m.data.Palettes.WarpTile(current, tile); ok && kind == world.WarpTileDoor {
			door = transition.NewDoor(palette, tile, coords)
		}
	}
	m.queue.Send(actions.BeginWarpTransition{Coords: coords})
	m.transition.Begin(player, door)

	dest := player.World.Warp
	m.log.WithFields(logrus.Fields{
		"from":   current.ID.String(),
		"coords": coords.String(),
		"to":     dest.Location.String(),
		"door":   door != nil,
	}).Info("warp started")
}

// jump hops the player over a ledge when the landing tile is legal.
func (m *Manager) jump(player *entity.Player, current *world.WorldMap, ledge positions.Coordinate, direction positions.Direction) {
	landing := ledge.InDirection(direction)
	code, ok := current.LocalMovement(landing)
	if !ok || !world.CanMove(player.Position.Elevation, code) || m.blockedByObject(player, current, landing) {
		return
	}
	world.ChangeElevation(&player.Position.Elevation, code)
	player.Pathing.Push(direction)
	player.Pathing.Push(direction)
	m.queue.Send(actions.PlayerJump{})
}

// withCode queues a step onto a tile with the given code, switching
// between walking and swimming. It returns false if the step is illegal.
func (m *Manager) withCode(player *entity.Player, code world.MovementID, direction positions.Direction) bool {
	if !world.CanMove(player.Position.Elevation, code) && !player.Noclip {
		return false
	}
	if code.IsWater() {
		if player.Movement != entity.Swimming {
			if !player.Party.Knows(MoveSurf) && !player.Noclip {
				return false
			}
			player.Movement = entity.Swimming
		}
	} else if player.Movement == entity.Swimming {
		player.Movement = entity.Walking
	}
	world.ChangeElevation(&player.Position.Elevation, code)
	player.Pathing.Push(direction)
	return true
}

// ConnectionMovement resolves an edge crossing against the candidate
// neighbours in order. The first neighbour with a defined code at the
// entry tile wins; the returned coordinate is the tile just outside that
// neighbour's edge, one step from the entry.
func (m *Manager) ConnectionMovement(direction positions.Direction, offset int32, connections []world.Connection) (positions.Location, positions.Coordinate, world.MovementID, bool) {
	for _, c := range connections {
		neighbour := m.Map(c.Location)
		if neighbour == nil {
			continue
		}
		origin := world.EdgeOrigin(direction, neighbour, offset-c.Offset)
		if code, ok := neighbour.LocalMovement(origin.InDirection(direction)); ok {
			return neighbour.ID, origin, code, true
		}
	}
	return positions.Location{}, positions.Coordinate{}, 0, false
}
