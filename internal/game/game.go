package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/overworld/internal/actions"
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/overworld"
	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/spectate"
	"github.com/samdwyer/overworld/internal/telemetry"
	"github.com/samdwyer/overworld/internal/ui"
	"github.com/samdwyer/overworld/internal/world"
)

const (
	// maxInputs bounds the buffered key presses; older ones are dropped.
	maxInputs = 2
	// maxDelta caps a frame's elapsed time after a stall.
	maxDelta = 0.25
)

// dialog is a run of message pages, optionally finishing a poll when the
// last page is confirmed.
type dialog struct {
	pages [][]string
	page  int
	color world.MessageColor
	poll  *actions.Poll
}

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	manager  *overworld.Manager
	queue    *actions.Queue
	player   *entity.Player
	hub      *spectate.Hub
	log      logrus.FieldLogger
	rng      *rand.Rand

	state   State
	inputs  []overworld.InputEvent
	dialogs []*dialog
	battles []world.BattleEntry
	music   world.MusicID
	running bool
}

// New creates a game over a loaded world. hub may be nil.
func New(cfg Config, screen *ui.Screen, bundle *gamedata.Bundle, log logrus.FieldLogger, hub *spectate.Hub) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		cfg.Seed = seed
	}
	queue := actions.NewQueue()
	player := entity.NewPlayer(cfg.PlayerName, bundle.Data.Spawn)
	player.Noclip = cfg.Noclip
	player.Party = entity.Party{
		entity.NewMember("pikachu", 5, 20, "thundershock", overworld.MoveCut, overworld.MoveSurf, overworld.MoveRockSmash),
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, bundle.Tiles),
		manager:  overworld.New(bundle.Data, queue, log, cfg.Options()),
		queue:    queue,
		player:   player,
		hub:      hub,
		log:      log,
		rng:      rand.New(rand.NewSource(seed ^ 0xba771e)),
		state:    StateExplore,
		running:  true,
	}
}

// Player returns the player.
func (g *Game) Player() *entity.Player {
	return g.player
}

// State returns the current mode.
func (g *Game) State() State {
	return g.state
}

// Run executes the main game loop until the player quits or ctx ends.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	g.manager.Start(ctx, g.player)
	g.handleActions(ctx, g.queue.Drain())
	initSpan.SetAttributes(
		telemetry.Location("player.location", g.player.Location),
		attribute.Int64("game.seed", g.cfg.Seed),
		attribute.Int("game.fps", g.cfg.FrameRate),
	)
	initSpan.End()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(events, done)

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FrameRate))
	defer ticker.Stop()
	last := time.Now()

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev := <-events:
			g.handleEvent(ctx, ev)
		case now := <-ticker.C:
			delta := float32(now.Sub(last).Seconds())
			last = now
			g.frame(ctx, delta)
		}
	}

	// Cleanup
	g.screen.Close()
	return nil
}

// pollEvents forwards terminal events until the screen closes.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// frame advances the simulation and redraws.
func (g *Game) frame(ctx context.Context, delta float32) {
	if delta > maxDelta {
		delta = maxDelta
	}
	if g.state == StateExplore && len(g.inputs) > 0 && g.ready() {
		ev := g.inputs[0]
		g.inputs = g.inputs[1:]
		g.manager.Input(ctx, g.player, ev)
	}
	g.manager.Update(ctx, g.player, delta)

	drained := g.queue.Drain()
	g.handleActions(ctx, drained)
	if g.hub != nil {
		g.hub.Publish(drained)
		g.hub.Snapshot(g.player)
	}
	g.render()
}

// ready reports whether the overworld would accept input this frame.
func (g *Game) ready() bool {
	return !g.player.InputFrozen && !g.player.Moving() && !g.manager.Transition().Active()
}

func (g *Game) handleActions(ctx context.Context, drained []actions.Action) {
	for _, a := range drained {
		var poll *actions.Poll
		if p, ok := a.(actions.Polling); ok {
			poll = p.Poll
		}
		switch a := actions.Unwrap(a).(type) {
		case actions.Message:
			g.dialogs = append(g.dialogs, &dialog{pages: a.Pages, color: a.Color, poll: poll})
			poll = nil
		case actions.Battle:
			g.battles = append(g.battles, a.Entry)
		case actions.PlayMusic:
			if a.Music != g.music {
				g.music = a.Music
				g.log.WithField("music", string(a.Music)).Debug("music changed")
			}
		default:
			g.log.WithField("action", a.Kind()).Debug("action")
		}
		if poll != nil {
			// Only dialogue waits on the player.
			poll.Finish()
		}
	}
	g.updateState()
}

func (g *Game) updateState() {
	switch {
	case len(g.dialogs) > 0:
		g.state = StateMessage
	case len(g.battles) > 0:
		g.state = StateBattle
	default:
		g.state = StateExplore
	}
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.move(positions.Up)
	case tcell.KeyDown:
		g.move(positions.Down)
	case tcell.KeyLeft:
		g.move(positions.Left)
	case tcell.KeyRight:
		g.move(positions.Right)

	case tcell.KeyEnter:
		g.confirm(ctx)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case ' ', 'z', 'Z':
			g.confirm(ctx)
		}
	}
}

func (g *Game) move(d positions.Direction) {
	if g.state != StateExplore {
		return
	}
	g.pushInput(overworld.Move(d))
}

func (g *Game) pushInput(ev overworld.InputEvent) {
	g.inputs = append(g.inputs, ev)
	if len(g.inputs) > maxInputs {
		g.inputs = g.inputs[len(g.inputs)-maxInputs:]
	}
}

// confirm advances dialogue, resolves a pending battle, or interacts.
func (g *Game) confirm(ctx context.Context) {
	switch g.state {
	case StateMessage:
		d := g.dialogs[0]
		d.page++
		if d.page < len(d.pages) {
			return
		}
		if d.poll != nil {
			d.poll.Finish()
		}
		g.dialogs = g.dialogs[1:]
		g.updateState()
	case StateBattle:
		entry := g.battles[0]
		g.battles = g.battles[1:]
		g.fight(ctx, entry)
		g.updateState()
	default:
		g.pushInput(overworld.Interact())
	}
}

func (g *Game) render() {
	view := ui.View{
		Map:        g.manager.Map(g.player.Location),
		Player:     g.player,
		Transition: g.manager.Transition(),
	}
	switch g.state {
	case StateMessage:
		d := g.dialogs[0]
		if d.page < len(d.pages) {
			view.Message = d.pages[d.page]
		}
		view.Color = d.color
	case StateBattle:
		view.Message = []string{battlePrompt(g.battles[0])}
	}
	g.renderer.Render(view)
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
