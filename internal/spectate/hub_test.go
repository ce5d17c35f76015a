package spectate

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/overworld/internal/actions"
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/world"
)

func newHub() *Hub {
	log, _ := test.NewNullLogger()
	return NewHub(log)
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := newHub()
	id, ch := hub.Register()
	assert.Equal(t, 1, hub.Count())

	hub.Unregister(id)
	assert.Equal(t, 0, hub.Count())
	_, ok := <-ch
	assert.False(t, ok, "channel closed on unregister")

	hub.Unregister(id)
	assert.Equal(t, 0, hub.Count())
}

func TestHubPublishStripsPolling(t *testing.T) {
	hub := newHub()
	_, ch := hub.Register()

	q := actions.NewQueue()
	q.Send(actions.PlayMusic{Music: "route"})
	q.SendPolling(actions.Message{Pages: [][]string{{"hi"}}})
	hub.Publish(q.Drain())

	first := <-ch
	assert.Equal(t, "play_music", first.Type)
	assert.Equal(t, actions.PlayMusic{Music: "route"}, first.Payload)

	second := <-ch
	assert.Equal(t, "message", second.Type)
	assert.IsType(t, actions.Message{}, second.Payload)
}

func TestHubDropsWhenFull(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	hub := NewHub(log)
	_, ch := hub.Register()

	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Broadcast(Envelope{Type: "tick"})
	}
	assert.Len(t, ch, subscriberBuffer)
	assert.Equal(t, "spectator buffer full, dropping", hook.LastEntry().Message)
}

func TestPlayerSnapshot(t *testing.T) {
	player := entity.NewPlayer("red", positions.Spawn{
		Location: positions.NewLocation("town"),
		Position: positions.Position{Coords: positions.NewCoordinate(3, 4), Direction: positions.Left, Elevation: positions.Ungrounded},
	})
	player.Freeze()

	data, err := json.Marshal(NewPlayerSnapshot(player))
	require.NoError(t, err)
	assert.JSONEq(t, `{"location":"town","coords":{"x":3,"y":4},"direction":"left","elevation":null,"movement":"walking","frozen":true}`, string(data))
}

func TestServeHTTPStreamsEnvelopes(t *testing.T) {
	hub := newHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish([]actions.Action{
		actions.BeginWarpTransition{Coords: positions.NewCoordinate(4, 4)},
		actions.Battle{Entry: world.BattleEntry{Wild: &world.WildBattle{Species: "pidgey", Level: 3}}},
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var env struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	require.NoError(t, conn.ReadJSON(&env))
	assert.Equal(t, "begin_warp_transition", env.Type)
	assert.JSONEq(t, `{"coords":{"x":4,"y":4}}`, string(env.Payload))

	require.NoError(t, conn.ReadJSON(&env))
	assert.Equal(t, "battle", env.Type)
	assert.JSONEq(t, `{"entry":{"wild":{"species":"pidgey","level":3}}}`, string(env.Payload))

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Count() == 0 }, time.Second, 10*time.Millisecond)
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- ListenAndServe(ctx, "127.0.0.1:0", newHub())
	}()

	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
