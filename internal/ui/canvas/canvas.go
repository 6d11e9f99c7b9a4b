// Package canvas is a terminal cell buffer that widgets draw into. The
// finished buffer is turned into a string with lipgloss styling runs.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/txview/internal/ui/layout"
	"github.com/alexisbeaulieu97/txview/internal/ui/widget"
)

// continuation marks the second cell of a double-width rune.
const continuation rune = -1

type cell struct {
	r    rune
	fg   lipgloss.TerminalColor
	bg   lipgloss.TerminalColor
	bold bool
}

type styleKey struct {
	fg   lipgloss.TerminalColor
	bg   lipgloss.TerminalColor
	bold bool
}

// Canvas is a fixed-size grid of styled cells.
type Canvas struct {
	width  int
	height int
	cells  []cell
}

var _ widget.Renderer = (*Canvas)(nil)

// New creates a blank canvas.
func New(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	cells := make([]cell, width*height)
	for i := range cells {
		cells[i].r = ' '
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) bounds() layout.Rectangle {
	return layout.Rectangle{Width: c.width, Height: c.height}
}

func (c *Canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}

// FillQuad paints the quad background and, when the quad is at least two
// cells in each direction, its border.
func (c *Canvas) FillQuad(q widget.Quad) {
	area := q.Bounds.Intersect(c.bounds())
	if area.Width == 0 {
		return
	}

	if q.Background != nil {
		for y := area.Y; y < area.Y+area.Height; y++ {
			for x := area.X; x < area.X+area.Width; x++ {
				c.at(x, y).bg = q.Background
			}
		}
	}

	if q.BorderWidth > 0 && q.Bounds.Width >= 2 && q.Bounds.Height >= 2 {
		c.drawBorder(q)
	}
}

func (c *Canvas) drawBorder(q widget.Quad) {
	border := lipgloss.NormalBorder()
	if q.BorderRadius > 0 {
		border = lipgloss.RoundedBorder()
	}

	b := q.Bounds
	right, bottom := b.X+b.Width-1, b.Y+b.Height-1
	c.setRune(b.X, b.Y, border.TopLeft, q.BorderColor)
	c.setRune(right, b.Y, border.TopRight, q.BorderColor)
	c.setRune(b.X, bottom, border.BottomLeft, q.BorderColor)
	c.setRune(right, bottom, border.BottomRight, q.BorderColor)
	for x := b.X + 1; x < right; x++ {
		c.setRune(x, b.Y, border.Top, q.BorderColor)
		c.setRune(x, bottom, border.Bottom, q.BorderColor)
	}
	for y := b.Y + 1; y < bottom; y++ {
		c.setRune(b.X, y, border.Left, q.BorderColor)
		c.setRune(right, y, border.Right, q.BorderColor)
	}
}

func (c *Canvas) setRune(x, y int, s string, fg lipgloss.TerminalColor) {
	target := c.at(x, y)
	if target == nil || s == "" {
		return
	}
	target.r = []rune(s)[0]
	if fg != nil {
		target.fg = fg
	}
}

// DrawText writes t left to right, never past MaxWidth cells or the canvas
// edge. A double-width rune that does not fit is dropped.
func (c *Canvas) DrawText(t widget.TextRun) {
	limit := t.MaxWidth
	if limit <= 0 {
		return
	}

	x := t.Position.X
	used := 0
	for _, r := range t.Content {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > limit {
			break
		}
		target := c.at(x, t.Position.Y)
		if target == nil {
			if x >= c.width {
				break
			}
		} else {
			if w == 2 && c.at(x+1, t.Position.Y) == nil {
				break
			}
			target.r = r
			target.fg = t.Color
			target.bold = t.Bold
			if w == 2 {
				next := c.at(x+1, t.Position.Y)
				next.r = continuation
				next.fg = t.Color
				next.bold = t.Bold
			}
		}
		x += w
		used += w
	}
}

// Rune returns the rune at (x, y), or 0 outside the canvas.
func (c *Canvas) Rune(x, y int) rune {
	target := c.at(x, y)
	if target == nil {
		return 0
	}
	return target.r
}

// Background returns the background colour at (x, y).
func (c *Canvas) Background(x, y int) lipgloss.TerminalColor {
	target := c.at(x, y)
	if target == nil {
		return nil
	}
	return target.bg
}

// Foreground returns the text colour at (x, y).
func (c *Canvas) Foreground(x, y int) lipgloss.TerminalColor {
	target := c.at(x, y)
	if target == nil {
		return nil
	}
	return target.fg
}

// Line returns row y as plain text with trailing spaces trimmed.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < c.width; x++ {
		if r := c.cells[y*c.width+x].r; r != continuation {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Plain renders the canvas without styling.
func (c *Canvas) Plain() string {
	lines := make([]string, c.height)
	for y := range lines {
		lines[y] = c.Line(y)
	}
	return strings.Join(lines, "\n")
}

// String renders the canvas, grouping cells that share a style into a single
// lipgloss run.
func (c *Canvas) String() string {
	var out strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}

		var run strings.Builder
		var current styleKey
		flush := func() {
			if run.Len() == 0 {
				return
			}
			out.WriteString(current.style().Render(run.String()))
			run.Reset()
		}

		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			if cl.r == continuation {
				continue
			}
			key := styleKey{fg: cl.fg, bg: cl.bg, bold: cl.bold}
			if key != current {
				flush()
				current = key
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return out.String()
}

func (k styleKey) style() lipgloss.Style {
	style := lipgloss.NewStyle()
	if k.fg != nil {
		style = style.Foreground(k.fg)
	}
	if k.bg != nil {
		style = style.Background(k.bg)
	}
	if k.bold {
		style = style.Bold(true)
	}
	return style
}
