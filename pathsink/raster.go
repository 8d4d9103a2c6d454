package pathsink

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/outline"
)

// ErrEmptyBBox is returned by FitRaster when there is nothing to frame.
var ErrEmptyBBox = errors.New("pathsink: empty bounding box")

// Raster is an outline.PathSink that fills the outline into an alpha
// mask.
//
// Font units (Y up) are mapped to pixels (Y down) by
//
//	px = x*Scale + OriginX
//	py = OriginY - y*Scale
//
// so (OriginX, OriginY) is the pixel position of the font origin.
type Raster struct {
	Scale            float32
	OriginX, OriginY float32

	r *vector.Rasterizer
}

// NewRaster returns a Raster producing a w×h mask.
func NewRaster(w, h int, scale, originX, originY float32) *Raster {
	return &Raster{
		Scale:   scale,
		OriginX: originX,
		OriginY: originY,
		r:       vector.NewRasterizer(w, h),
	}
}

// FitRaster returns a Raster whose longer side is size pixels and which
// frames b with margin pixels on every side.
func FitRaster(b outline.BBox, size, margin int) (*Raster, error) {
	extent := max(b.Width(), b.Height())
	if b.IsEmpty() || extent <= 0 {
		return nil, ErrEmptyBBox
	}
	inner := size - 2*margin
	if inner <= 0 {
		return nil, fmt.Errorf("pathsink: size %d too small for margin %d", size, margin)
	}

	scale := float32(inner) / extent
	w := int(math.Ceil(float64(b.Width()*scale))) + 2*margin
	h := int(math.Ceil(float64(b.Height()*scale))) + 2*margin
	m := float32(margin)
	return NewRaster(w, h, scale, m-b.MinX*scale, m+b.MaxY*scale), nil
}

// Size returns the mask size in pixels.
func (r *Raster) Size() image.Point {
	return r.r.Size()
}

func (r *Raster) px(x, y float32) (float32, float32) {
	return x*r.Scale + r.OriginX, r.OriginY - y*r.Scale
}

// MoveTo implements outline.PathSink.
func (r *Raster) MoveTo(x, y float32) {
	r.r.MoveTo(r.px(x, y))
}

// LineTo implements outline.PathSink.
func (r *Raster) LineTo(x, y float32) {
	r.r.LineTo(r.px(x, y))
}

// QuadTo implements outline.PathSink.
func (r *Raster) QuadTo(cx, cy, x, y float32) {
	px, py := r.px(cx, cy)
	qx, qy := r.px(x, y)
	r.r.QuadTo(px, py, qx, qy)
}

// CubeTo implements outline.PathSink.
func (r *Raster) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	ax, ay := r.px(c1x, c1y)
	bx, by := r.px(c2x, c2y)
	qx, qy := r.px(x, y)
	r.r.CubeTo(ax, ay, bx, by, qx, qy)
}

// ClosePath implements outline.PathSink.
func (r *Raster) ClosePath() {
	r.r.ClosePath()
}

// Mask renders the accumulated path into a new alpha mask.
func (r *Raster) Mask() *image.Alpha {
	size := r.r.Size()
	mask := image.NewAlpha(image.Rect(0, 0, size.X, size.Y))
	r.r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// WritePNG encodes Mask as a grayscale PNG.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.Mask()); err != nil {
		return fmt.Errorf("pathsink: encode png: %w", err)
	}
	return nil
}
