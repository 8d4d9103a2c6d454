package face

import "github.com/gogpu/outline"

// closer forwards drawing commands to a sink and makes contour closing
// explicit. Font backends differ: x/image and go-text leave contours
// implicitly closed by the next MoveTo, while seehuhn's paths close them.
// closer closes an open contour before each MoveTo and at the end, and
// drops a ClosePath that has no open contour.
type closer struct {
	sink outline.PathSink
	open bool
}

func (c *closer) MoveTo(x, y float32) {
	if c.open {
		c.ClosePath()
	}
	c.sink.MoveTo(x, y)
	c.open = true
}

func (c *closer) LineTo(x, y float32) {
	c.sink.LineTo(x, y)
}

func (c *closer) QuadTo(cx, cy, x, y float32) {
	c.sink.QuadTo(cx, cy, x, y)
}

func (c *closer) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	c.sink.CubeTo(c1x, c1y, c2x, c2y, x, y)
}

func (c *closer) ClosePath() {
	if !c.open {
		return
	}
	c.sink.ClosePath()
	c.open = false
}

// finish closes the last contour.
func (c *closer) finish() {
	if c.open {
		c.ClosePath()
	}
}
