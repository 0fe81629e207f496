package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/Dicklesworthstone/layout_drawer/pkg/drawer"
	"github.com/Dicklesworthstone/layout_drawer/pkg/layout"
)

const swipeBarWidth = 10

// View implements tea.Model. Layers go bottom up: header, footer and page,
// then docked drawers, then for each mobile drawer its backdrop, panel and
// opener strip, then the help overlay.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	c := newCanvas(m.width, m.height)

	if hdr := m.layout.Region(layout.RegionHeader); hdr.Space && hdr.Size > 0 {
		in := m.layout.HeaderInsets()
		c.place(m.renderHeader(m.width-in.Left-in.Right, hdr.Size), in.Left, 0)
	}
	if ftr := m.layout.Region(layout.RegionFooter); ftr.Space && ftr.Size > 0 {
		in := m.layout.FooterInsets()
		c.place(m.renderFooter(m.width-in.Left-in.Right, ftr.Size), in.Left, m.height-ftr.Size)
	}

	pad := m.layout.PagePadding()
	c.place(m.page.View(), pad.Left, pad.Top)

	for _, side := range sides {
		if d := m.drawers[side]; d != nil && !d.MobileView() {
			m.placeDrawer(c, d)
		}
	}
	for _, side := range sides {
		d := m.drawers[side]
		if d == nil || !d.MobileView() {
			continue
		}
		p := d.Presentation()
		if p.Backdrop && p.BackdropOpacity > 0 {
			c.apply(func(line string) string { return shade(line, p.BackdropOpacity, m.theme) })
		}
		m.placeDrawer(c, d)
		if p.Opener && !p.Showing {
			m.placeOpener(c, d)
		}
	}

	if m.help.ShowAll {
		box := m.renderHelp()
		x := max((m.width-lipgloss.Width(box))/2, 0)
		y := max((m.height-lipgloss.Height(box))/2, 0)
		c.place(box, x, y)
	}

	return m.zones.Scan(c.String())
}

func (m *Model) placeDrawer(c *canvas, d *drawer.Drawer) {
	p := d.Presentation()
	f := frameFor(p, d.StateDirection(), m.width, m.height)
	if f.Visible <= 0 || f.Height <= 0 {
		return
	}
	panel := renderPanel(p, f, m.drawerContent(d, f), m.theme)
	panel = m.zones.Mark(m.zoneID(d.Side(), "content"), slide(panel, f))
	c.place(panel, f.X, f.Y)
}

// placeOpener draws the one-column strip a closed mobile drawer is swiped
// open from.
func (m *Model) placeOpener(c *canvas, d *drawer.Drawer) {
	strip := m.theme.Renderer.NewStyle().
		Foreground(m.theme.Border).
		Render(strings.TrimSuffix(strings.Repeat("▏\n", m.height), "\n"))
	x := 0
	if d.StateDirection() > 0 {
		x = m.width - 1
	}
	c.place(m.zones.Mark(m.zoneID(d.Side(), "opener"), strip), x, 0)
}

// drawerContent is the nav list on the left and the page outline plus
// layout status on the right.
func (m *Model) drawerContent(d *drawer.Drawer, f drawerFrame) string {
	width := max(f.Width-SpaceSM, 1)
	if d.Side() == layout.SideLeft {
		return m.nav.View(width)
	}

	title := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Primary)
	muted := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)

	lines := []string{title.Render(truncate.StringWithTail("Outline", uint(width), "…"))}
	lines = append(lines, RenderSubtleDivider(width, m.theme))
	for _, h := range m.page.Outline(width) {
		lines = append(lines, muted.Render(h))
	}
	lines = append(lines, "", RenderDivider(width, m.theme))
	for _, s := range m.layoutStatus() {
		lines = append(lines, muted.Render(truncate.StringWithTail(s, uint(width), "…")))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) layoutStatus() []string {
	status := []string{fmt.Sprintf("width %d  view %s", m.width, m.layout.View())}
	for _, side := range sides {
		d := m.drawers[side]
		if d == nil {
			continue
		}
		mode := "docked"
		switch {
		case d.MobileView():
			mode = "mobile"
		case d.Overlay():
			mode = "overlay"
		}
		state := "closed"
		switch {
		case d.Transitioning() && d.Showing():
			state = "opening"
		case d.Transitioning():
			state = "closing"
		case d.Showing():
			state = "open"
		}
		status = append(status, fmt.Sprintf("%s %s %s <%d", side, mode, state, d.Breakpoint()))
	}
	return status
}

func (m *Model) renderHeader(width, height int) string {
	if width <= 0 {
		return ""
	}
	style := m.theme.Renderer.NewStyle().
		Background(m.theme.Highlight).
		Foreground(m.theme.Text).
		Width(width).
		Height(height)
	titleStyle := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Primary).Background(m.theme.Highlight)
	routeStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext).Background(m.theme.Highlight)

	route := routeStyle.Render(m.route + " ")
	room := max(width-lipgloss.Width(route)-SpaceXS, 0)
	title := titleStyle.Render(" " + truncate.StringWithTail(m.cfg.Title, uint(max(room-1, 0)), "…"))
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(route), 0)
	if lipgloss.Width(title)+lipgloss.Width(route) > width {
		route = ""
		gap = max(width-lipgloss.Width(title), 0)
	}
	return style.Render(title + strings.Repeat(" ", gap) + route)
}

func (m *Model) renderFooter(width, height int) string {
	if width <= 0 {
		return ""
	}
	style := m.theme.Renderer.NewStyle().
		Foreground(m.theme.Subtext).
		Width(width).
		Height(height).
		MaxHeight(height)

	right := m.footerStatus()
	h := m.help
	h.Width = max(width-lipgloss.Width(right)-SpaceSM, 0)
	short := h.ShortHelpView(m.keys.ShortHelp())
	gap := max(width-lipgloss.Width(short)-lipgloss.Width(right), 1)
	return style.Render(short + strings.Repeat(" ", gap) + right)
}

// footerStatus shows a swipe in progress, else the last status message,
// else how far the page is scrolled.
func (m *Model) footerStatus() string {
	for _, side := range sides {
		d := m.drawers[side]
		if d == nil {
			continue
		}
		if progress, commits, active := d.Swipe(); active {
			return string(side) + " " + RenderSwipeBar(progress, commits, swipeBarWidth, m.theme)
		}
	}
	if m.status != "" {
		return m.theme.Renderer.NewStyle().Foreground(m.theme.Success).Render(m.status)
	}
	return fmt.Sprintf("%3.0f%%", m.page.ScrollPercent()*100)
}

func (m *Model) renderHelp() string {
	box := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Primary).
		Padding(0, SpaceXS)
	title := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Primary).Render("Keys")
	return box.Render(title + "\n\n" + m.help.FullHelpView(m.keys.FullHelp()))
}
