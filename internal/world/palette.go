package world

import (
	"slices"

	"github.com/samdwyer/overworld/internal/positions"
)

// PaletteTileData classifies the tiles of one palette.
type PaletteTileData struct {
	// Warp marks tiles that animate when used as warp entrances or exits.
	Warp map[TileID]WarpTile
	// Cliffs lists ledge tiles that may only be jumped in the keyed direction.
	Cliffs map[positions.Direction][]TileID
	// Wild lists tiles that roll wild encounters.
	Wild []TileID
	// Forwarding lists counter tiles that interaction reaches across.
	Forwarding []TileID
}

// Palettes is the shared palette table.
type Palettes map[PaletteID]*PaletteTileData

func (p Palettes) each(m *WorldMap, fn func(PaletteID, *PaletteTileData) bool) {
	for _, id := range m.Palettes {
		if data, ok := p[id]; ok && data != nil {
			if fn(id, data) {
				return
			}
		}
	}
}

// WarpTile returns the warp classification of a tile on m.
func (p Palettes) WarpTile(m *WorldMap, tile TileID) (PaletteID, WarpTile, bool) {
	var (
		palette PaletteID
		kind    WarpTile
		found   bool
	)
	p.each(m, func(id PaletteID, data *PaletteTileData) bool {
		kind, found = data.Warp[tile]
		palette = id
		return found
	})
	return palette, kind, found
}

// IsWild returns true if the tile rolls wild encounters on m.
func (p Palettes) IsWild(m *WorldMap, tile TileID) bool {
	found := false
	p.each(m, func(_ PaletteID, data *PaletteTileData) bool {
		found = slices.Contains(data.Wild, tile)
		return found
	})
	return found
}

// IsForwarding returns true if interaction reaches across the tile on m.
func (p Palettes) IsForwarding(m *WorldMap, tile TileID) bool {
	found := false
	p.each(m, func(_ PaletteID, data *PaletteTileData) bool {
		found = slices.Contains(data.Forwarding, tile)
		return found
	})
	return found
}

// Cliff reports whether the tile is a ledge on m and, if so, whether it may
// be jumped travelling in d.
func (p Palettes) Cliff(m *WorldMap, tile TileID, d positions.Direction) (ledge, jumpable bool) {
	p.each(m, func(_ PaletteID, data *PaletteTileData) bool {
		for dir, tiles := range data.Cliffs {
			if slices.Contains(tiles, tile) {
				ledge = true
				if dir == d {
					jumpable = true
					return true
				}
			}
		}
		return false
	})
	return ledge, jumpable
}
