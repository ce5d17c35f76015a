// Package transition animates warps: doors swinging, the screen fading
// out, the relocation itself, and the fade back in.
package transition

import (
	"context"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/world"
)

const (
	// DoorMax is the accumulator value of a fully open door. The integer
	// part selects one of four animation frames.
	DoorMax  float32 = 3.99
	DoorRate float32 = 6.0

	FadeOutRate float32 = 2.5
	FadeInRate  float32 = 3.0
)

// Phase is the state of a WarpTransition.
type Phase uint8

const (
	Idle Phase = iota
	DoorOpening
	DoorClosing
	FadingOut
	FadingIn
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case DoorOpening:
		return "door_opening"
	case DoorClosing:
		return "door_closing"
	case FadingOut:
		return "fading_out"
	case FadingIn:
		return "fading_in"
	default:
		return "unknown"
	}
}

// Door is the animation state of one door tile.
type Door struct {
	Palette     world.PaletteID
	Tile        world.TileID
	Coords      positions.Coordinate
	Open        bool
	Accumulator float32
}

// NewDoor returns a closed door.
func NewDoor(palette world.PaletteID, tile world.TileID, coords positions.Coordinate) *Door {
	return &Door{Palette: palette, Tile: tile, Coords: coords}
}

// Frame returns the animation frame to draw, 0 through 3.
func (d *Door) Frame() int {
	return int(d.Accumulator)
}

// Host performs the world lookups and the relocation a transition needs.
type Host interface {
	// Warp relocates the player, returning false for unknown destinations.
	Warp(ctx context.Context, player *entity.Player, dest positions.WarpDestination) bool
	// WarpTileAt classifies the tile at coords on the player's current map.
	WarpTileAt(player *entity.Player, coords positions.Coordinate) (world.PaletteID, world.TileID, world.WarpTile, bool)
}

// WarpTransition is the single in-flight warp sequence. The zero value is
// idle.
type WarpTransition struct {
	phase  Phase
	door   *Door
	alpha  float32
	warped bool
	// arrival is the destination tile, classified once the fade in ends.
	arrival *positions.Coordinate
	// frozen is the player's input freeze before the transition began.
	frozen bool
}

// Active returns true while a sequence is in flight.
func (t *WarpTransition) Active() bool {
	return t.phase != Idle
}

// Phase returns the current state.
func (t *WarpTransition) Phase() Phase {
	return t.phase
}

// Alpha returns the opacity of the fade cover, always within [0,1].
func (t *WarpTransition) Alpha() float32 {
	return t.alpha
}

// Door returns the animating door, or nil.
func (t *WarpTransition) Door() *Door {
	return t.door
}

// Warped reports whether the relocation already happened.
func (t *WarpTransition) Warped() bool {
	return t.warped
}

// Begin starts a sequence. A non-nil entrance door opens before the fade.
// It returns false while another sequence is in flight.
func (t *WarpTransition) Begin(player *entity.Player, entrance *Door) bool {
	if t.Active() {
		return false
	}
	*t = WarpTransition{
		phase:  FadingOut,
		door:   entrance,
		frozen: player.InputFrozen,
	}
	if entrance != nil {
		t.phase = DoorOpening
	}
	player.Freeze()
	return true
}

// Update advances the sequence by delta seconds. It returns true on the
// frame the player was relocated.
func (t *WarpTransition) Update(ctx context.Context, host Host, player *entity.Player, delta float32) bool {
	switch t.phase {
	case DoorOpening:
		t.openDoor(player, delta)
	case DoorClosing:
		t.closeDoor(player, delta)
	case FadingOut:
		return t.fadeOut(ctx, host, player, delta)
	case FadingIn:
		t.fadeIn(host, player, delta)
	}
	return false
}

func (t *WarpTransition) openDoor(player *entity.Player, delta float32) {
	door := t.door
	door.Accumulator += delta * DoorRate
	if door.Accumulator < DoorMax {
		return
	}
	door.Accumulator = DoorMax
	door.Open = true
	if t.warped {
		player.Hidden = false
	} else {
		player.Pathing.Push(player.Position.Direction)
	}
	t.phase = DoorClosing
}

func (t *WarpTransition) closeDoor(player *entity.Player, delta float32) {
	if player.Moving() {
		return
	}
	door := t.door
	if door.Accumulator == DoorMax && !t.warped {
		player.Hidden = true
	}
	door.Accumulator -= delta * DoorRate
	if door.Accumulator > 0 {
		return
	}
	door.Accumulator = 0
	t.door = nil
	if t.warped {
		t.finish(player)
	} else {
		t.phase = FadingOut
	}
}

func (t *WarpTransition) fadeOut(ctx context.Context, host Host, player *entity.Player, delta float32) bool {
	t.alpha += delta * FadeOutRate
	if t.alpha < 1 {
		return false
	}
	t.alpha = 1
	t.phase = FadingIn
	t.warped = true

	dest := player.World.Warp
	player.World.Warp = nil
	player.Hidden = false
	if dest == nil || !host.Warp(ctx, player, *dest) {
		return false
	}
	coords := dest.Position.Coords
	t.arrival = &coords
	return true
}

func (t *WarpTransition) fadeIn(host Host, player *entity.Player, delta float32) {
	t.alpha -= delta * FadeInRate
	if t.alpha > 0 {
		return
	}
	t.alpha = 0

	if t.arrival != nil {
		if palette, tile, kind, ok := host.WarpTileAt(player, *t.arrival); ok {
			switch kind {
			case world.WarpTileDoor:
				player.Hidden = true
				t.door = NewDoor(palette, tile, *t.arrival)
				t.phase = DoorOpening
				return
			default:
				player.Pathing.Push(player.Position.Direction)
			}
		}
	}
	t.finish(player)
}

func (t *WarpTransition) finish(player *entity.Player) {
	player.Hidden = false
	player.InputFrozen = t.frozen
	t.phase = Idle
	t.door = nil
	t.arrival = nil
}
