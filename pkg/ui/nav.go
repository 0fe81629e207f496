package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"

	"github.com/Dicklesworthstone/layout_drawer/pkg/config"
)

// NavItem is one entry of the navigation drawer.
type NavItem struct {
	Route string
	Title string
}

// NavModel is the route list shown in the left drawer, with a fuzzy filter.
type NavModel struct {
	// Data
	allItems      []NavItem
	filteredItems []NavItem

	// UI State
	filterInput   textinput.Model
	filtering     bool
	selectedIndex int
	current       string

	theme Theme
	zones *zone.Manager
	ids   string
}

// NewNavModel creates the navigation list for pages.
func NewNavModel(pages []config.Page, theme Theme, zones *zone.Manager) NavModel {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.Prompt = "/ "
	ti.CharLimit = 64

	m := NavModel{
		filterInput: ti,
		theme:       theme,
		zones:       zones,
	}
	if zones != nil {
		m.ids = zones.NewPrefix()
	}
	m.SetPages(pages)
	return m
}

// SetPages replaces the items, keeping the filter.
func (m *NavModel) SetPages(pages []config.Page) {
	m.allItems = make([]NavItem, 0, len(pages))
	for _, p := range pages {
		title := p.Title
		if title == "" {
			title = p.Route
		}
		m.allItems = append(m.allItems, NavItem{Route: p.Route, Title: title})
	}
	m.filterItems()
}

// SetCurrent marks route as the page on screen.
func (m *NavModel) SetCurrent(route string) {
	m.current = route
}

// Items returns the items currently listed.
func (m NavModel) Items() []NavItem {
	return m.filteredItems
}

// Selected returns the highlighted item.
func (m NavModel) Selected() (NavItem, bool) {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.filteredItems) {
		return NavItem{}, false
	}
	return m.filteredItems[m.selectedIndex], true
}

// Filtering reports whether the filter input has focus.
func (m NavModel) Filtering() bool {
	return m.filtering
}

// StartFilter focuses the filter input.
func (m *NavModel) StartFilter() tea.Cmd {
	m.filtering = true
	return m.filterInput.Focus()
}

// StopFilter blurs the filter input. clear also drops the query.
func (m *NavModel) StopFilter(clear bool) {
	m.filtering = false
	m.filterInput.Blur()
	if clear {
		m.filterInput.SetValue("")
		m.filterItems()
	}
}

// MoveUp moves the highlight up
func (m *NavModel) MoveUp() {
	if m.selectedIndex > 0 {
		m.selectedIndex--
	}
}

// MoveDown moves the highlight down
func (m *NavModel) MoveDown() {
	if m.selectedIndex < len(m.filteredItems)-1 {
		m.selectedIndex++
	}
}

// Update feeds a key into the filter input while filtering.
func (m NavModel) Update(msg tea.Msg) (NavModel, tea.Cmd) {
	if !m.filtering {
		return m, nil
	}
	before := m.filterInput.Value()
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filterInput.Value() != before {
		m.filterItems()
	}
	return m, cmd
}

func (m *NavModel) filterItems() {
	query := strings.TrimSpace(m.filterInput.Value())
	if query == "" {
		m.filteredItems = m.allItems
		m.selectedIndex = min(m.selectedIndex, max(len(m.filteredItems)-1, 0))
		return
	}

	searchStrings := make([]string, len(m.allItems))
	for i, item := range m.allItems {
		searchStrings[i] = item.Title + " " + item.Route
	}

	matches := fuzzy.Find(query, searchStrings)
	m.filteredItems = make([]NavItem, 0, len(matches))
	for _, match := range matches {
		m.filteredItems = append(m.filteredItems, m.allItems[match.Index])
	}
	m.selectedIndex = 0
}

// ZoneID returns the click zone of route.
func (m NavModel) ZoneID(route string) string {
	return m.ids + "nav:" + route
}

// ItemAt returns the item whose zone contains x,y.
func (m NavModel) ItemAt(msg tea.MouseMsg) (NavItem, bool) {
	if m.zones == nil {
		return NavItem{}, false
	}
	for _, item := range m.filteredItems {
		if z := m.zones.Get(m.ZoneID(item.Route)); z != nil && z.InBounds(msg) {
			return item, true
		}
	}
	return NavItem{}, false
}

// View renders the list into width columns.
func (m NavModel) View(width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder

	titleStyle := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Primary)
	b.WriteString(titleStyle.Render(runewidth.Truncate("Pages", width, "…")))
	b.WriteString("\n")

	if m.filtering || m.filterInput.Value() != "" {
		m.filterInput.Width = max(width-runewidth.StringWidth(m.filterInput.Prompt)-1, 1)
		b.WriteString(m.filterInput.View())
		b.WriteString("\n")
	}
	b.WriteString(RenderSubtleDivider(width, m.theme))
	b.WriteString("\n")

	if len(m.filteredItems) == 0 {
		b.WriteString(m.theme.Renderer.NewStyle().Faint(true).Render("no match"))
		return b.String()
	}

	itemStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	selectedStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Text).Background(m.theme.Highlight).Bold(true)
	currentStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Success)

	for i, item := range m.filteredItems {
		marker := "  "
		if item.Route == m.current {
			marker = currentStyle.Render("● ")
		}
		label := runewidth.Truncate(item.Title, max(width-2, 0), "…")
		label = runewidth.FillRight(label, max(width-2, 0))

		style := itemStyle
		if i == m.selectedIndex {
			style = selectedStyle
		}
		line := marker + style.Render(label)
		if m.zones != nil {
			line = m.zones.Mark(m.ZoneID(item.Route), line)
		}
		b.WriteString(line)
		if i < len(m.filteredItems)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
