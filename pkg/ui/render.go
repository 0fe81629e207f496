package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Dicklesworthstone/layout_drawer/pkg/drawer"
)

// drawerFrame is where a drawer lands on screen for one frame.
type drawerFrame struct {
	X, Y    int
	Width   int
	Height  int
	Visible int  // columns currently slid in
	Right   bool // sits on the physical right edge
}

// frameFor places a drawer of the given presentation on a width x height
// screen. Hidden position sign tells which physical edge the drawer hugs.
func frameFor(p drawer.Presentation, edgeDir, width, height int) drawerFrame {
	top := styleInt(p.Style, "top")
	bottom := styleInt(p.Style, "bottom")

	f := drawerFrame{
		Y:      top,
		Width:  min(p.Size, width),
		Height: max(height-top-bottom, 0),
		Right:  edgeDir > 0,
	}
	shift := p.Position
	if shift < 0 {
		shift = -shift
	}
	f.Visible = max(f.Width-shift, 0)
	if f.Right {
		f.X = width - f.Visible
	}
	return f
}

func styleInt(style map[string]string, key string) int {
	v, err := strconv.Atoi(style[key])
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// renderPanel draws drawer content into a panel of the frame's full width.
// The delimiter is a border on the edge facing the page.
func renderPanel(p drawer.Presentation, f drawerFrame, content string, t Theme) string {
	style := t.Renderer.NewStyle().
		Background(t.Panel).
		Foreground(t.Text).
		PaddingLeft(SpaceXS).
		Height(f.Height).
		MaxHeight(f.Height)

	width := f.Width
	if p.HasClass(drawer.ClassDelimiter) && width > 1 {
		style = style.BorderForeground(t.Border)
		if f.Right {
			style = style.Border(lipgloss.NormalBorder(), false, false, false, true)
		} else {
			style = style.Border(lipgloss.NormalBorder(), false, true, false, false)
		}
		width--
	}
	style = style.Width(width).MaxWidth(f.Width)

	if bg, ok := p.Style["background"]; ok {
		style = style.Background(lipgloss.Color(bg))
	}
	if fg, ok := p.Style["foreground"]; ok {
		style = style.Foreground(lipgloss.Color(fg))
	}

	lines := strings.Split(content, "\n")
	if p.ScrollTop > 0 {
		lines = lines[min(p.ScrollTop, len(lines)):]
	}
	return style.Render(strings.Join(lines, "\n"))
}

// slide clips a full-width panel to the columns currently on screen. A left
// drawer slides out to the left, so its rightmost columns stay visible.
func slide(panel string, f drawerFrame) string {
	if f.Visible >= f.Width {
		return panel
	}
	if f.Visible <= 0 {
		return ""
	}
	lines := strings.Split(panel, "\n")
	for i, line := range lines {
		if f.Right {
			lines[i] = ansi.Cut(line, 0, f.Visible)
		} else {
			lines[i] = ansi.Cut(line, f.Width-f.Visible, f.Width)
		}
	}
	return strings.Join(lines, "\n")
}

// shade dims a rendered line for the backdrop. Colors under the backdrop are
// dropped and the text is redrawn muted on a darkened background.
func shade(line string, opacity float64, t Theme) string {
	if opacity <= 0 {
		return line
	}
	return t.Renderer.NewStyle().
		Foreground(Dim(t.muted(), opacity)).
		Background(Dim(t.background(), opacity)).
		Render(ansi.Strip(line))
}
