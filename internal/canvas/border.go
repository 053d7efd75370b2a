package canvas

import "fmt"

// BorderStyle selects the characters used for box outlines.
type BorderStyle int

const (
	// BorderNone draws nothing.
	BorderNone BorderStyle = iota
	// BorderASCII uses +, - and |.
	BorderASCII
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corners (╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

var borderNames = map[string]BorderStyle{
	"none":    BorderNone,
	"ascii":   BorderASCII,
	"single":  BorderSingle,
	"double":  BorderDouble,
	"rounded": BorderRounded,
	"thick":   BorderThick,
}

// ParseBorder returns the style with the given name.
func ParseBorder(name string) (BorderStyle, error) {
	b, ok := borderNames[name]
	if !ok {
		return BorderNone, fmt.Errorf("unknown border style %q", name)
	}
	return b, nil
}

func (b BorderStyle) String() string {
	for name, v := range borderNames {
		if v == b {
			return name
		}
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// BorderChars holds the characters of one outline.
type BorderChars struct {
	TopLeft, Top, TopRight          rune
	Left, Right                     rune
	BottomLeft, Bottom, BottomRight rune
}

// Chars returns the outline characters for b; spaces for BorderNone.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderASCII:
		return BorderChars{'+', '-', '+', '|', '|', '+', '-', '+'}
	case BorderSingle:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	}
	return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
}

// DrawBox outlines rect. Positions come from the full rect; only cells on
// the canvas are drawn. Rectangles smaller than 2x2 are skipped.
func DrawBox(c *Canvas, rect Rect, border BorderStyle) {
	if rect.Width < 2 || rect.Height < 2 || border == BorderNone {
		return
	}
	ch := border.Chars()
	left, right := rect.X, rect.Right()-1
	top, bottom := rect.Y, rect.Bottom()-1

	c.SetRune(left, top, ch.TopLeft)
	c.SetRune(right, top, ch.TopRight)
	c.SetRune(left, bottom, ch.BottomLeft)
	c.SetRune(right, bottom, ch.BottomRight)
	for x := left + 1; x < right; x++ {
		c.SetRune(x, top, ch.Top)
		c.SetRune(x, bottom, ch.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		c.SetRune(left, y, ch.Left)
		c.SetRune(right, y, ch.Right)
	}
}

// DrawBoxWithTitle outlines rect and writes title into the top edge after
// the corner, truncated to fit.
func DrawBoxWithTitle(c *Canvas, rect Rect, border BorderStyle, title string) {
	if rect.Width < 2 || rect.Height < 2 || border == BorderNone {
		return
	}
	DrawBox(c, rect, border)

	room := rect.Width - 2
	var (
		fit  []rune
		used int
	)
	for _, r := range title {
		w := runeWidth(r)
		if used+w > room {
			break
		}
		fit = append(fit, r)
		used += w
	}
	x := rect.X + 1
	for _, r := range fit {
		c.SetRune(x, rect.Y, r)
		x += runeWidth(r)
	}
}
