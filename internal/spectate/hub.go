// Package spectate streams the overworld's outbound actions to read-only
// websocket observers.
package spectate

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/overworld/internal/actions"
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/positions"
)

// subscriberBuffer is how many envelopes a slow observer may fall behind
// before new ones are dropped for it.
const subscriberBuffer = 128

// Envelope is one message on the wire.
type Envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// PlayerSnapshot is the per-frame player state sent to observers.
type PlayerSnapshot struct {
	Location  positions.Location   `json:"location"`
	Coords    positions.Coordinate `json:"coords"`
	Direction positions.Direction  `json:"direction"`
	Elevation positions.Elevation  `json:"elevation"`
	Movement  string               `json:"movement"`
	Frozen    bool                 `json:"frozen"`
}

// Hub fans envelopes out to every subscriber. Sends never block: a full
// subscriber channel drops the envelope.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]chan Envelope
	log         logrus.FieldLogger
}

// NewHub creates an empty hub.
func NewHub(log logrus.FieldLogger) *Hub {
	return &Hub{
		subscribers: make(map[uuid.UUID]chan Envelope),
		log:         log,
	}
}

// Register adds a subscriber and returns its id and channel.
func (h *Hub) Register() (uuid.UUID, <-chan Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.New()
	ch := make(chan Envelope, subscriberBuffer)
	h.subscribers[id] = ch
	h.log.WithField("subscriber", id.String()).Info("spectator joined")
	return id, ch
}

// Unregister removes a subscriber and closes its channel.
func (h *Hub) Unregister(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		close(ch)
		delete(h.subscribers, id)
		h.log.WithField("subscriber", id.String()).Info("spectator left")
	}
}

// Count returns the number of subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Broadcast sends env to every subscriber.
func (h *Hub) Broadcast(env Envelope) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subscribers {
		select {
		case ch <- env:
		default:
			h.log.WithFields(logrus.Fields{
				"subscriber": id.String(),
				"type":       env.Type,
			}).Debug("spectator buffer full, dropping")
		}
	}
}

// Publish broadcasts drained actions in order. Polling wrappers are
// stripped; observers cannot finish polls.
func (h *Hub) Publish(drained []actions.Action) {
	for _, a := range drained {
		a = actions.Unwrap(a)
		h.Broadcast(Envelope{Type: a.Kind(), Payload: a})
	}
}

// Snapshot broadcasts the player's current state.
func (h *Hub) Snapshot(player *entity.Player) {
	h.Broadcast(Envelope{Type: "player", Payload: NewPlayerSnapshot(player)})
}

// NewPlayerSnapshot captures the observable player state.
func NewPlayerSnapshot(player *entity.Player) PlayerSnapshot {
	return PlayerSnapshot{
		Location:  player.Location,
		Coords:    player.Position.Coords,
		Direction: player.Position.Direction,
		Elevation: player.Position.Elevation,
		Movement:  player.Movement.String(),
		Frozen:    player.InputFrozen,
	}
}
