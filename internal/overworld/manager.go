// Package overworld runs the per-frame simulation of the world maps: player
// input, NPC behaviour, interactions, battles and warps.
package overworld

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/overworld/internal/actions"
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/transition"
	"github.com/samdwyer/overworld/internal/world"
)

// DefaultNpcMoveChance is the chance an idle NPC acts on a decision tick.
const DefaultNpcMoveChance = 1.0 / 12.0

// Roster moves that gate overworld actions.
const (
	MoveSurf      entity.MoveID = "surf"
	MoveCut       entity.MoveID = "cut"
	MoveRockSmash entity.MoveID = "rock-smash"
)

// Options tunes a Manager.
type Options struct {
	NpcMoveChance float64
	// Seed feeds the NPC and wild generators. Zero picks a time-based seed.
	Seed int64
}

// DefaultOptions returns the stock tuning with a time-based seed.
func DefaultOptions() Options {
	return Options{NpcMoveChance: DefaultNpcMoveChance}
}

// Manager owns the world data and drives it one frame at a time. It is
// not safe for concurrent use.
type Manager struct {
	data  *world.Data
	queue *actions.Queue
	log   logrus.FieldLogger

	npcRand  *rand.Rand
	wildRand *rand.Rand
	npcTimer float32

	transition transition.WarpTransition
	opts       Options
}

// New creates a manager over data that reports to queue.
func New(data *world.Data, queue *actions.Queue, log logrus.FieldLogger, opts Options) *Manager {
	if opts.NpcMoveChance <= 0 {
		opts.NpcMoveChance = DefaultNpcMoveChance
	}
	m := &Manager{
		data:  data,
		queue: queue,
		log:   log,
		opts:  opts,
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.Seed(seed)
	return m
}

// Seed resets both random generators.
func (m *Manager) Seed(seed int64) {
	m.npcRand = rand.New(rand.NewSource(seed))
	m.wildRand = rand.New(rand.NewSource(seed ^ 0x5eed))
}

// Data returns the world bundle.
func (m *Manager) Data() *world.Data {
	return m.data
}

// Contains returns true if the location names a loaded map.
func (m *Manager) Contains(location positions.Location) bool {
	_, ok := m.data.Maps[location]
	return ok
}

// Map returns the map at location, or nil.
func (m *Manager) Map(location positions.Location) *world.WorldMap {
	return m.data.Maps[location]
}

// Transition exposes the warp transition for drawing.
func (m *Manager) Transition() *transition.WarpTransition {
	return &m.transition
}

// Start announces the player's starting map.
func (m *Manager) Start(ctx context.Context, player *entity.Player) {
	m.onMapChange(ctx, player.Location, player)
}

// Update advances one frame: the warp transition, the player's motion,
// NPCs, then the active interaction.
func (m *Manager) Update(ctx context.Context, player *entity.Player, delta float32) {
	if m.transition.Active() {
		if m.transition.Update(ctx, m, player, delta) {
			m.log.WithFields(logrus.Fields{
				"location": player.Location.String(),
				"coords":   player.Position.Coords.String(),
			}).Debug("warp transition relocated player")
		}
	}
	if player.DoMove(delta) {
		m.stopPlayer(ctx, player)
	}
	m.MoveNpcs(ctx, player, delta)
	m.UpdateInteractions(player)
}

func (m *Manager) stopPlayer(ctx context.Context, player *entity.Player) {
	player.StopMove()

	current := m.Map(player.Location)
	if current == nil {
		return
	}
	coords := player.Position.Coords
	if dest, ok := current.WarpAt(coords); ok {
		// Warping does not run tile actions.
		player.World.Warp = &dest
		if !m.transition.Active() {
			m.beginWarp(player, current, coords)
		}
		return
	}
	if current.InBounds(coords) {
		m.OnTile(ctx, player)
	}
}

func (m *Manager) isRemoved(player *entity.Player, location positions.Location, c positions.Coordinate) bool {
	return player.World.Removed(location, c)
}

// blockedByObject reports whether an unbroken object or uncollected item
// sits on c.
func (m *Manager) blockedByObject(player *entity.Player, current *world.WorldMap, c positions.Coordinate) bool {
	if current.ObjectAt(c) == nil && current.ItemAt(c) == nil {
		return false
	}
	return !m.isRemoved(player, current.ID, c)
}
