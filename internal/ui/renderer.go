package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/overworld"
	"github.com/samdwyer/overworld/internal/positions"
	"github.com/samdwyer/overworld/internal/transition"
	"github.com/samdwyer/overworld/internal/world"
)

// Layout of the frame: a status line, the map, then the message box.
const (
	statusRow = 0
	mapTop    = 1
	// cellWidth is how many terminal columns one tile spans.
	cellWidth = 2
)

var (
	playerStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	npcStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	trainerStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	treeStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	rockStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	itemStyle    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	textStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

var messageStyles = map[world.MessageColor]tcell.Style{
	world.MessageBlack: textStyle,
	world.MessageWhite: textStyle.Bold(true),
	world.MessageRed:   tcell.StyleDefault.Foreground(tcell.ColorRed),
	world.MessageBlue:  tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue),
}

// View is everything one frame draws.
type View struct {
	Map        *world.WorldMap
	Player     *entity.Player
	Transition *transition.WarpTransition
	// Message is the page currently shown, if any.
	Message []string
	Color   world.MessageColor
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	tiles  gamedata.Tileset
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, tiles gamedata.Tileset) *Renderer {
	return &Renderer{screen: screen, tiles: tiles}
}

// Render draws the render window around the player.
func (r *Renderer) Render(v View) {
	r.screen.Begin()

	window := overworld.NewRenderWindow(&v.Player.Character)
	fade := float32(0)
	if v.Transition != nil {
		fade = v.Transition.Alpha()
	}

	if v.Map != nil && fade < 1 {
		style := func(s tcell.Style) tcell.Style {
			if fade > 0 {
				return s.Dim(true)
			}
			return s
		}
		r.drawTiles(v, window, style)
		r.drawObjects(v, window, style)
		r.drawNpcs(v, window, style)
		if !v.Player.Hidden {
			r.drawCell(window, v.Player.Position.Coords, '@', style(playerStyle))
		}
	}

	r.drawStatus(v)
	r.drawMessage(v, window)
	r.screen.Commit()
}

func (r *Renderer) drawTiles(v View, window overworld.RenderWindow, style func(tcell.Style) tcell.Style) {
	var door *transition.Door
	if v.Transition != nil {
		door = v.Transition.Door()
	}
	for y := window.Top; y <= window.Bottom; y++ {
		for x := window.Left; x <= window.Right; x++ {
			c := positions.NewCoordinate(x, y)
			id, ok := v.Map.Tile(c)
			if !ok {
				id = v.Map.BorderTile(c)
			}
			tile := r.tiles.Lookup(id)
			glyph := tile.Glyph
			if door != nil && door.Coords == c && door.Frame() >= 2 {
				glyph = ' '
			}
			r.drawCell(window, c, glyph, style(tile.Style()))
		}
	}
}

func (r *Renderer) drawObjects(v View, window overworld.RenderWindow, style func(tcell.Style) tcell.Style) {
	for _, object := range v.Map.Objects {
		if v.Player.World.Removed(v.Map.ID, object.Coords) {
			continue
		}
		switch object.Group {
		case world.ObjectTree:
			r.drawCell(window, object.Coords, 't', style(treeStyle))
		case world.ObjectRock:
			r.drawCell(window, object.Coords, 'o', style(rockStyle))
		}
	}
	for _, item := range v.Map.Items {
		if !v.Player.World.Removed(v.Map.ID, item.Coords) {
			r.drawCell(window, item.Coords, '*', style(itemStyle))
		}
	}
}

func (r *Renderer) drawNpcs(v View, window overworld.RenderWindow, style func(tcell.Style) tcell.Style) {
	for _, npc := range v.Map.NpcList() {
		if npc.Character.Hidden {
			continue
		}
		s := npcStyle
		if npc.Trainer != nil && !v.Player.World.Battle.Battled(v.Map.ID, npc.ID) {
			s = trainerStyle
		}
		r.drawCell(window, npc.Character.Position.Coords, '&', style(s))
	}
}

// drawCell draws glyph at a map coordinate, skipping anything outside the
// window.
func (r *Renderer) drawCell(window overworld.RenderWindow, c positions.Coordinate, glyph rune, style tcell.Style) {
	if c.X < window.Left || c.X > window.Right || c.Y < window.Top || c.Y > window.Bottom {
		return
	}
	r.screen.SetTile(int(c.X-window.Left), mapTop+int(c.Y-window.Top), glyph, style)
}

func (r *Renderer) drawStatus(v View) {
	name := ""
	if v.Map != nil {
		name = v.Map.Name
	}
	status := fmt.Sprintf("%s %s %s", name, v.Player.Position.Coords, v.Player.Movement)
	if v.Transition != nil && v.Transition.Active() {
		status += " " + v.Transition.Phase().String()
	}
	r.screen.SetText(0, statusRow, status, textStyle)
}

func (r *Renderer) drawMessage(v View, window overworld.RenderWindow) {
	if len(v.Message) == 0 {
		return
	}
	style, ok := messageStyles[v.Color]
	if !ok {
		style = textStyle
	}
	top := mapTop + int(window.Height()) + 1
	for i, line := range v.Message {
		r.screen.SetText(1, top+i, line, style)
	}
	r.screen.SetText(1, top+len(v.Message), "[enter]", textStyle.Dim(true))
}
