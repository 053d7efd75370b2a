package flexbox

import (
	"math"

	"github.com/grindlemire/go-flex/internal/layout"
)

// roundLayout snaps l and its subtree to a grid of 1/scale points. Edges
// are rounded in absolute coordinates and sizes derived from the rounded
// edges, so boxes that touch before rounding still touch after it.
// parentX and parentY are the unrounded absolute origin of the parent's
// content box.
func roundLayout(l *layout.Layout, parentX, parentY, scale float32) {
	absX, absY := parentX+l.X, parentY+l.Y
	cx := absX + l.Border.Left + l.Padding.Left
	cy := absY + l.Border.Top + l.Padding.Top

	left, top := snap(absX, scale), snap(absY, scale)
	right, bottom := snap(absX+l.Width, scale), snap(absY+l.Height, scale)

	l.X = snap(l.X, scale)
	l.Y = snap(l.Y, scale)
	l.Width = right - left
	l.Height = bottom - top
	l.Padding = snapInsets(l.Padding, scale)
	l.Border = snapInsets(l.Border, scale)

	for i := range l.Children {
		roundLayout(&l.Children[i], cx, cy, scale)
	}
}

func snap(v, scale float32) float32 {
	return float32(math.Round(float64(v*scale))) / scale
}

func snapInsets(in layout.Insets, scale float32) layout.Insets {
	return layout.Insets{
		Top:    snap(in.Top, scale),
		Right:  snap(in.Right, scale),
		Bottom: snap(in.Bottom, scale),
		Left:   snap(in.Left, scale),
	}
}
