package canvas

import (
	"math"

	"github.com/grindlemire/go-flex/wire"
)

// Draw renders a computed layout with each box outlined and titled with
// its id. Box edges are rounded to the nearest cell in absolute
// coordinates, so adjacent boxes share edges exactly. Children are drawn
// after their parent.
func Draw(root wire.Box, border BorderStyle) *Canvas {
	bounds := extent(root, 0, 0)
	c := New(bounds.Right(), bounds.Bottom())
	draw(c, root, 0, 0, border)
	return c
}

func draw(c *Canvas, b wire.Box, ox, oy float32, border BorderStyle) {
	x, y := ox+b.X, oy+b.Y
	DrawBoxWithTitle(c, cellRect(x, y, b.Width, b.Height), border, b.ID)
	for _, child := range b.Children {
		draw(c, child, x, y, border)
	}
}

// extent returns the cells covered by b and its descendants.
func extent(b wire.Box, ox, oy float32) Rect {
	x, y := ox+b.X, oy+b.Y
	r := cellRect(x, y, b.Width, b.Height)
	for _, child := range b.Children {
		cr := extent(child, x, y)
		if cr.IsEmpty() {
			continue
		}
		x0, y0 := min(r.X, cr.X), min(r.Y, cr.Y)
		x1, y1 := max(r.Right(), cr.Right()), max(r.Bottom(), cr.Bottom())
		r = Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
	}
	return r
}

func cellRect(x, y, w, h float32) Rect {
	x0, y0 := round(x), round(y)
	return Rect{X: x0, Y: y0, Width: round(x+w) - x0, Height: round(y+h) - y0}
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
