package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/transition"
	"github.com/samdwyer/overworld/internal/world"
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	require.NoError(t, err)
	t.Cleanup(screen.Close)
	sim.SetSize(80, 30)

	tiles := gamedata.Tileset{
		0: {Glyph: '.', Fg: tcell.ColorGreen, Bg: tcell.ColorBlack},
		1: {Glyph: '#', Fg: tcell.ColorGray, Bg: tcell.ColorBlack},
	}
	return NewRenderer(screen, tiles), sim
}

func cellAt(t *testing.T, sim tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	primary, _, _, _ := sim.GetContent(x, y)
	return primary
}

func testMap() *world.WorldMap {
	m := world.NewWorldMap(positions.NewLocation("town"), 10, 10, world.Crossing)
	m.Name = "Town"
	m.Border = [4]world.TileID{1, 1, 1, 1}
	m.SetTile(positions.NewCoordinate(5, 4), 1)
	return m
}

func testPlayer(x, y int32) *entity.Player {
	return entity.NewPlayer("red", positions.Spawn{
		Location: positions.NewLocation("town"),
		Position: positions.Position{Coords: positions.NewCoordinate(x, y)},
	})
}

// The player sits 8 tiles from the window's left edge and 7 from its top.
const (
	playerCol = 8 * cellWidth
	playerRow = mapTop + 7
)

func TestRenderPlayerCentered(t *testing.T) {
	r, sim := newTestRenderer(t)
	r.Render(View{Map: testMap(), Player: testPlayer(5, 5)})

	assert.Equal(t, '@', cellAt(t, sim, playerCol, playerRow))
	assert.Equal(t, '#', cellAt(t, sim, playerCol, playerRow-1), "wall tile above")
	assert.Equal(t, '.', cellAt(t, sim, playerCol+cellWidth, playerRow))
}

func TestRenderBorderOutsideMap(t *testing.T) {
	r, sim := newTestRenderer(t)
	r.Render(View{Map: testMap(), Player: testPlayer(0, 0)})

	assert.Equal(t, '#', cellAt(t, sim, playerCol-cellWidth, playerRow))
	assert.Equal(t, '#', cellAt(t, sim, playerCol, playerRow-1))
}

func TestRenderNpcsObjectsItems(t *testing.T) {
	r, sim := newTestRenderer(t)
	m := testMap()
	npc := &entity.Npc{ID: "joey", Character: entity.Character{Position: positions.Position{Coords: positions.NewCoordinate(6, 5)}}}
	m.AddNpc(npc)
	m.Objects = []world.MapObject{{Coords: positions.NewCoordinate(4, 5), Group: world.ObjectTree}}
	m.Items = []world.MapItem{{Coords: positions.NewCoordinate(5, 6), Item: "potion"}}
	player := testPlayer(5, 5)

	r.Render(View{Map: m, Player: player})
	assert.Equal(t, '&', cellAt(t, sim, playerCol+cellWidth, playerRow))
	assert.Equal(t, 't', cellAt(t, sim, playerCol-cellWidth, playerRow))
	assert.Equal(t, '*', cellAt(t, sim, playerCol, playerRow+1))

	player.World.Remove(m.ID, positions.NewCoordinate(4, 5))
	r.Render(View{Map: m, Player: player})
	assert.Equal(t, '.', cellAt(t, sim, playerCol-cellWidth, playerRow))
}

func TestRenderHiddenPlayer(t *testing.T) {
	r, sim := newTestRenderer(t)
	player := testPlayer(5, 5)
	player.Hidden = true

	r.Render(View{Map: testMap(), Player: player})
	assert.Equal(t, '.', cellAt(t, sim, playerCol, playerRow))
}

func TestRenderStatusAndMessage(t *testing.T) {
	r, sim := newTestRenderer(t)
	r.Render(View{
		Map:        testMap(),
		Player:     testPlayer(5, 5),
		Transition: &transition.WarpTransition{},
		Message:    []string{"Hello!"},
		Color:      world.MessageBlue,
	})

	assert.Equal(t, 'T', cellAt(t, sim, 0, statusRow))
	top := mapTop + 14 + 1
	assert.Equal(t, 'H', cellAt(t, sim, 1, top))
}
