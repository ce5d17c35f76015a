package positions

// BoundingBox is an inclusive rectangle of tiles.
type BoundingBox struct {
	Min Coordinate `json:"min"`
	Max Coordinate `json:"max"`
}

// Centered returns the box spanning radius tiles on every side of origin.
func Centered(origin Coordinate, radius int32) BoundingBox {
	return BoundingBox{
		Min: Coordinate{X: origin.X - radius, Y: origin.Y - radius},
		Max: Coordinate{X: origin.X + radius, Y: origin.Y + radius},
	}
}

// Contains returns true if the coordinate lies inside the box.
func (b BoundingBox) Contains(c Coordinate) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X && c.Y >= b.Min.Y && c.Y <= b.Max.Y
}

// Intersects returns true if the boxes share at least one tile.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return b.Min.X <= o.Max.X &&
		b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y &&
		b.Max.Y >= o.Min.Y
}

// Within returns true if the whole box lies in [0,width)x[0,height).
func (b BoundingBox) Within(width, height int32) bool {
	return b.Min.X >= 0 && b.Min.Y >= 0 && b.Max.X < width && b.Max.Y < height &&
		b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y
}
