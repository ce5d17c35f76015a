package gamedata

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/overworld/internal/world"
)

// TileStyle is how a tile is drawn in the terminal.
type TileStyle struct {
	Glyph rune
	Fg    tcell.Color
	Bg    tcell.Color
}

// Style returns the tcell style for the tile's colours.
func (t TileStyle) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Fg).Background(t.Bg)
}

// Tileset maps tile ids to their terminal rendering.
type Tileset map[world.TileID]TileStyle

// Lookup returns the style for id, or a blank default.
func (t Tileset) Lookup(id world.TileID) TileStyle {
	if style, ok := t[id]; ok {
		return style
	}
	return TileStyle{Glyph: ' ', Fg: tcell.ColorDefault, Bg: tcell.ColorDefault}
}

func convertTileset(raw map[world.TileID]rawTileStyle) (Tileset, error) {
	tiles := make(Tileset, len(raw))
	for id, rs := range raw {
		if utf8.RuneCountInString(rs.Glyph) != 1 {
			return nil, fmt.Errorf("tile %d: glyph %q must be one character", id, rs.Glyph)
		}
		glyph, _ := utf8.DecodeRuneInString(rs.Glyph)
		tiles[id] = TileStyle{
			Glyph: glyph,
			Fg:    parseColor(rs.Fg),
			Bg:    parseColor(rs.Bg),
		}
	}
	return tiles, nil
}

// parseColor accepts tcell colour names and #rrggbb hex values.
func parseColor(s string) tcell.Color {
	if s == "" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(s)
}
