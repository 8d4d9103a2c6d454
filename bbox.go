package outline

import "math"

// BBox is an axis-aligned bounding box in font units.
type BBox struct {
	MinX, MinY, MaxX, MaxY float32
}

// EmptyBBox returns a box that contains no points.
// Extending it with a point yields the degenerate box around that point.
func EmptyBBox() BBox {
	return BBox{
		MinX: math.MaxFloat32,
		MinY: math.MaxFloat32,
		MaxX: -math.MaxFloat32,
		MaxY: -math.MaxFloat32,
	}
}

// IsEmpty returns true if the box contains no points.
func (b BBox) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Width returns the box width, or 0 for an empty box.
func (b BBox) Width() float32 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the box height, or 0 for an empty box.
func (b BBox) Height() float32 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxY - b.MinY
}

// Extend grows the box to include p.
func (b *BBox) Extend(p Point) {
	b.MinX = min(b.MinX, p.X)
	b.MinY = min(b.MinY, p.Y)
	b.MaxX = max(b.MaxX, p.X)
	b.MaxY = max(b.MaxY, p.Y)
}
