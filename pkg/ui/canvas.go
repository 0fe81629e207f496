package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// canvas is a fixed-size grid of styled lines that blocks are composited
// onto. Every line is kept exactly width cells wide.
type canvas struct {
	width  int
	height int
	lines  []string
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: max(width, 0), height: max(height, 0)}
	blank := strings.Repeat(" ", c.width)
	c.lines = make([]string, c.height)
	for i := range c.lines {
		c.lines[i] = blank
	}
	return c
}

// place draws block with its top-left corner at x,y, clipping whatever falls
// outside the canvas.
func (c *canvas) place(block string, x, y int) {
	if block == "" {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= c.height {
			continue
		}
		c.lines[row] = splice(c.lines[row], line, x, c.width)
	}
}

// splice replaces the cells of row under line, starting at column x.
func splice(row, line string, x, width int) string {
	w := ansi.StringWidth(line)
	if x < 0 {
		line = ansi.Cut(line, -x, w)
		w += x
		x = 0
	}
	if x >= width || w <= 0 {
		return row
	}
	if x+w > width {
		line = ansi.Truncate(line, width-x, "")
		w = width - x
	}

	return head(row, x) + ansi.ResetStyle + line + ansi.ResetStyle + tail(row, x+w)
}

// head returns the cells of s left of col, with the escape sequences that
// precede the cell at col. A wide character straddling col becomes spaces.
func head(s string, col int) string {
	var state byte
	cur := 0
	for i := 0; i < len(s); {
		_, width, n, newState := ansi.DecodeSequence(s[i:], state, nil)
		state = newState
		if width > 0 && cur+width > col {
			return s[:i] + strings.Repeat(" ", col-cur)
		}
		cur += width
		i += n
	}
	return s + strings.Repeat(" ", max(col-cur, 0))
}

// tail returns the cells of s from col on, with the escape sequences that
// follow the cell before col. Styles set earlier are carried over so the
// cells keep their look, but zone markers are not: those belong to head or
// to the covered cells, and a repeated marker pairs with the wrong partner.
func tail(s string, col int) string {
	var (
		state byte
		carry strings.Builder
	)
	cur := 0
	for i := 0; i < len(s); {
		seq, width, n, newState := ansi.DecodeSequence(s[i:], state, nil)
		state = newState
		switch {
		case cur >= col:
			return carry.String() + s[i:]
		case width == 0:
			if !zoneMarker(seq) {
				carry.WriteString(seq)
			}
		default:
			cur += width
			if cur > col {
				carry.WriteString(strings.Repeat(" ", cur-col))
			}
		}
		i += n
	}
	if cur < col {
		return ""
	}
	return carry.String()
}

// zoneMarker reports whether seq is a mouse zone marker.
func zoneMarker(seq string) bool {
	return len(seq) > 2 && strings.HasPrefix(seq, "\x1b[") && seq[len(seq)-1] == 'z'
}

// apply rewrites every line with fn.
func (c *canvas) apply(fn func(string) string) {
	for i, line := range c.lines {
		c.lines[i] = fn(line)
	}
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}
