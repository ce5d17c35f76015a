package overworld

import (
	"math"

	"github.com/samdwyer/overworld/internal/entity"
)

// Screen geometry the render window is sized for.
const (
	ScreenWidth  = 240
	ScreenHeight = 160

	halfWidth       = (ScreenWidth + entity.TileSize) >> 1
	halfHeight      = (ScreenHeight + entity.TileSize) >> 1
	halfWidthTiles  = halfWidth >> 4
	halfHeightTiles = (halfHeight >> 4) + 2
)

// RenderWindow is the tile range around a character a renderer should
// draw, plus the pixel focus the view is centred on. Ranges are inclusive.
type RenderWindow struct {
	Left, Right int32
	Top, Bottom int32
	FocusX      float32
	FocusY      float32
}

// NewRenderWindow centres a window on the character, following its
// sub-tile offset.
func NewRenderWindow(c *entity.Character) RenderWindow {
	coords := c.Position.Coords
	offset := c.Position.Offset
	return RenderWindow{
		Left:   coords.X - halfWidthTiles,
		Right:  coords.X + halfWidthTiles,
		Top:    coords.Y - halfHeightTiles,
		Bottom: coords.Y + halfHeightTiles - 1,
		FocusX: float32(math.Round(float64(float32((coords.X+1)<<4) + offset.X - halfWidth))),
		FocusY: float32(math.Round(float64(float32((coords.Y+1)<<4) + offset.Y - halfHeight))),
	}
}

// Width returns the number of tile columns in the window.
func (w RenderWindow) Width() int32 {
	return w.Right - w.Left + 1
}

// Height returns the number of tile rows in the window.
func (w RenderWindow) Height() int32 {
	return w.Bottom - w.Top + 1
}
