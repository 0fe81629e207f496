package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"
)

// PageModel shows the current page's markdown in a scrolling viewport.
type PageModel struct {
	viewport viewport.Model
	markdown string
	rendered string
	wrap     int
	style    string
}

// NewPageModel creates an empty page. style is a glamour standard style
// name ("dark", "light", "notty").
func NewPageModel(style string) PageModel {
	if style == "" {
		style = "dark"
	}
	return PageModel{viewport: viewport.New(0, 0), style: style}
}

// SetContent replaces the markdown and scrolls back to the top.
func (m *PageModel) SetContent(markdown string) {
	m.markdown = markdown
	m.wrap = -1
	m.render()
	m.viewport.GotoTop()
}

// Markdown returns the page source.
func (m PageModel) Markdown() string {
	return m.markdown
}

// SetSize resizes the viewport, re-rendering when the wrap width changes.
func (m *PageModel) SetSize(width, height int) {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	m.render()
}

func (m *PageModel) render() {
	wrap := max(m.viewport.Width-2, 10)
	if wrap == m.wrap {
		return
	}
	m.wrap = wrap

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		m.rendered, err = r.Render(m.markdown)
	}
	if err != nil {
		log.Printf("Warning: could not render page markdown: %v", err)
		m.rendered = m.markdown
	}
	m.viewport.SetContent(strings.Trim(m.rendered, "\n"))
}

// Update forwards scroll keys and wheel events to the viewport.
func (m PageModel) Update(msg tea.Msg) (PageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// ScrollPercent reports how far down the page is scrolled.
func (m PageModel) ScrollPercent() float64 {
	return m.viewport.ScrollPercent()
}

// View renders the visible part of the page.
func (m PageModel) View() string {
	return m.viewport.View()
}

// Outline lists the markdown headings, indented by level and truncated to
// width.
func (m PageModel) Outline(width int) []string {
	var out []string
	inFence := false
	for _, line := range strings.Split(m.markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence || !strings.HasPrefix(trimmed, "#") {
			continue
		}
		level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
		title := strings.TrimSpace(trimmed[level:])
		if title == "" {
			continue
		}
		entry := strings.Repeat(" ", (level-1)*SpaceSM) + title
		out = append(out, runewidth.Truncate(entry, max(width, 0), "…"))
	}
	return out
}
