// Package canvas draws computed layouts onto a grid of terminal cells.
package canvas

import (
	"strings"

	"github.com/grindlemire/go-flex/measure"
)

// Cell is one position of the grid. A wide rune occupies its own cell plus
// a continuation cell to its right with Width 0.
type Cell struct {
	Rune  rune
	Width uint8
}

var blank = Cell{Rune: ' ', Width: 1}

// IsContinuation reports whether c is the right half of a wide rune.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Rect is an integer cell rectangle.
type Rect struct {
	X, Y, Width, Height int
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty reports whether r covers no cells.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Intersect returns the overlap of r and o.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Canvas is a fixed-size grid of cells, initially blank.
type Canvas struct {
	cells  []Cell
	width  int
	height int
}

// New creates a width by height canvas. Negative sizes are treated as zero.
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blank
	}
	return &Canvas{cells: cells, width: width, height: height}
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in rows.
func (c *Canvas) Height() int { return c.height }

// Rect returns the canvas bounds.
func (c *Canvas) Rect() Rect {
	return Rect{Width: c.width, Height: c.height}
}

func (c *Canvas) idx(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return -1
	}
	return y*c.width + x
}

// Cell returns the cell at (x, y), or the zero Cell out of bounds.
func (c *Canvas) Cell(x, y int) Cell {
	i := c.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return c.cells[i]
}

func (c *Canvas) set(x, y int, cell Cell) {
	if i := c.idx(x, y); i >= 0 {
		c.cells[i] = cell
	}
}

// runeWidth is at least one cell; zero-width runes still need a place.
func runeWidth(r rune) int {
	return max(measure.RuneWidth(r), 1)
}

// SetRune puts r at (x, y). Wide runes it overlaps are cleared whole, and a
// wide rune that does not fit in the last column becomes a space.
func (c *Canvas) SetRune(x, y int, r rune) {
	if c.idx(x, y) < 0 {
		return
	}
	w := runeWidth(r)
	cur := c.Cell(x, y)
	if cur.IsContinuation() {
		c.clearWide(x, y)
	}
	if cur.Width == 2 {
		c.set(x+1, y, blank)
	}
	if w == 2 && x+1 < c.width {
		if next := c.Cell(x+1, y); next.Width == 2 || next.IsContinuation() {
			c.clearWide(x+1, y)
		}
	}
	if w == 2 && x+1 >= c.width {
		c.set(x, y, blank)
		return
	}

	c.set(x, y, Cell{Rune: r, Width: uint8(w)})
	if w == 2 {
		c.set(x+1, y, Cell{})
	}
}

// clearWide blanks the wide rune covering (x, y).
func (c *Canvas) clearWide(x, y int) {
	switch cell := c.Cell(x, y); {
	case cell.IsContinuation():
		c.set(x-1, y, blank)
		c.set(x, y, blank)
	case cell.Width == 2:
		c.set(x, y, blank)
		c.set(x+1, y, blank)
	}
}

// SetString writes s from (x, y) without wrapping and returns the number of
// columns written. Runes left of the canvas are skipped; writing stops at
// the right edge.
func (c *Canvas) SetString(x, y int, s string) int {
	if y < 0 || y >= c.height {
		return 0
	}
	written := 0
	for _, r := range s {
		w := runeWidth(r)
		if x >= c.width || (w == 2 && x+1 >= c.width) {
			break
		}
		if x >= 0 {
			c.SetRune(x, y, r)
			written += w
		}
		x += w
	}
	return written
}

// String returns the rows joined by newlines with trailing spaces removed.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := range c.height {
		var row strings.Builder
		for x := range c.width {
			if cell := c.Cell(x, y); !cell.IsContinuation() {
				row.WriteRune(cell.Rune)
			}
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
