// Package ui is the terminal front end: a bubbletea model composing a
// header, a footer, the routed page and a drawer on each side of a
// responsive layout.
package ui

import (
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/Dicklesworthstone/layout_drawer/pkg/config"
	"github.com/Dicklesworthstone/layout_drawer/pkg/drawer"
	"github.com/Dicklesworthstone/layout_drawer/pkg/gesture"
	"github.com/Dicklesworthstone/layout_drawer/pkg/layout"
	"github.com/Dicklesworthstone/layout_drawer/pkg/prefs"
	"github.com/Dicklesworthstone/layout_drawer/pkg/sched"
)

// ConfigReloadedMsg carries a configuration reloaded from disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// Options configures a Model. Zero values select the defaults.
type Options struct {
	Prefs        *prefs.Store
	Logger       *log.Logger
	Renderer     *lipgloss.Renderer
	GlamourStyle string

	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
}

var sides = []layout.Side{layout.SideLeft, layout.SideRight}

// Model is the shell. It is used through a pointer: drawers, the layout
// coordinator and the zone manager are shared with callbacks.
type Model struct {
	cfg     *config.Config
	queue   *sched.Queue
	layout  *layout.Coordinator
	drawers map[layout.Side]*drawer.Drawer

	zones *zone.Manager
	ids   string
	nav   NavModel
	page  PageModel
	help  help.Model
	keys  KeyMap
	theme Theme

	prefs     *prefs.Store
	logger    *log.Logger
	clipboard func(string) error

	route  string
	width  int
	height int
	status string
	press  *tea.MouseMsg
}

// NewModel builds the shell for cfg. The viewport size arrives later with
// the first tea.WindowSizeMsg.
func NewModel(cfg *config.Config, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	q := sched.NewQueue()
	zones := zone.New()
	theme := DefaultTheme(opts.Renderer)

	m := &Model{
		cfg:       cfg,
		queue:     q,
		layout:    layout.New(q),
		drawers:   make(map[layout.Side]*drawer.Drawer),
		zones:     zones,
		ids:       zones.NewPrefix(),
		page:      NewPageModel(opts.GlamourStyle),
		help:      help.New(),
		keys:      DefaultKeyMap(),
		theme:     theme,
		prefs:     opts.Prefs,
		logger:    logger,
		clipboard: copyFn,
	}
	m.nav = NewNavModel(cfg.Pages, theme, zones)

	m.applyLayout(cfg)
	for _, side := range sides {
		if dc := cfg.Drawer(side); dc.Enabled {
			m.addDrawer(side, dc)
		}
	}

	route, err := m.prefs.Get(prefs.KeyLastRoute)
	if err != nil {
		logger.Printf("Warning: %v", err)
	}
	if _, ok := cfg.Page(route); !ok && len(cfg.Pages) > 0 {
		route = cfg.Pages[0].Route
	}
	m.setRoute(route)
	return m
}

func (m *Model) applyLayout(cfg *config.Config) {
	if err := m.layout.SetView(cfg.View); err != nil {
		m.logger.Printf("Warning: %v", err)
	}
	m.layout.SetRTL(cfg.RTL)
	m.setBand(layout.RegionHeader, cfg.Header)
	m.setBand(layout.RegionFooter, cfg.Footer)
}

// setBand publishes a header or footer that is always fully revealed.
func (m *Model) setBand(name layout.RegionName, size int) {
	size = max(size, 0)
	m.layout.SetSize(name, size)
	m.layout.SetOffset(name, size)
	m.layout.SetSpace(name, size > 0)
}

func (m *Model) addDrawer(side layout.Side, dc config.DrawerConfig) {
	opts := dc.Options(side)
	opts.Logger = m.logger
	opts.Value = m.prefs.InitialValue(side)

	var d *drawer.Drawer
	opts.OnInput = func(showing bool) {
		// only desktop intent is remembered
		if d == nil || d.BelowBreakpoint() {
			return
		}
		if err := m.prefs.SetShowing(side, showing); err != nil {
			m.logger.Printf("Warning: %v", err)
		}
	}
	d = drawer.New(m.layout, opts)
	d.BindGestures(drawer.Targets{
		Opener:   gesture.ZoneHit(m.zones, m.zoneID(side, "opener")),
		Content:  gesture.ZoneHit(m.zones, m.zoneID(side, "content")),
		Backdrop: m.screenHit,
	})
	if side == layout.SideLeft {
		// a closed nav cannot keep the keyboard
		d.OnHidden(func() { m.nav.StopFilter(true) })
	}
	m.drawers[side] = d
	m.resizeDrawer(side, dc)
}

func (m *Model) resizeDrawer(side layout.Side, dc config.DrawerConfig) {
	d := m.drawers[side]
	if d == nil {
		return
	}
	size := dc.Size
	if size <= 0 {
		size = drawer.DefaultSize
	}
	if m.width > 0 {
		size = min(size, m.width)
	}
	d.Resize(size)
}

func (m *Model) zoneID(side layout.Side, part string) string {
	return m.ids + "drawer:" + string(side) + ":" + part
}

func (m *Model) screenHit(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Drawer returns the drawer on side, or nil when it is disabled.
func (m *Model) Drawer(side layout.Side) *drawer.Drawer {
	return m.drawers[side]
}

// Layout returns the shared layout coordinator.
func (m *Model) Layout() *layout.Coordinator {
	return m.layout
}

// Route returns the route on screen.
func (m *Model) Route() string {
	return m.route
}

// Status returns the last status message.
func (m *Model) Status() string {
	return m.status
}

// Settle runs every pending deferred update and transition timer at once.
// It is for static rendering, where no program delivers timer messages.
func (m *Model) Settle() {
	m.queue.Advance(time.Second)
}

// Close releases the zone manager and tears the drawers down.
func (m *Model) Close() {
	for _, side := range sides {
		if d := m.drawers[side]; d != nil {
			d.Destroy()
		}
	}
	m.zones.Close()
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.queue.Cmd()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.queue.Update(msg) {
		m.layoutPage()
		return m, m.queue.Cmd()
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case ConfigReloadedMsg:
		m.apply(msg.Config)

	case tea.KeyMsg:
		m.status = ""
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))
	}

	m.layoutPage()
	cmds = append(cmds, m.queue.Cmd())
	return m, tea.Batch(cmds...)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.layout.SetWidth(width)
	m.layout.SetHeight(height)
	m.help.Width = width
	for _, side := range sides {
		m.resizeDrawer(side, m.cfg.Drawer(side))
	}
}

// layoutPage sizes the page to whatever header, footer and docked drawers
// leave free.
func (m *Model) layoutPage() {
	pad := m.layout.PagePadding()
	m.page.SetSize(m.width-pad.Left-pad.Right, m.height-pad.Top-pad.Bottom)
}

func (m *Model) navActive() bool {
	d := m.drawers[layout.SideLeft]
	return d != nil && d.Showing()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.nav.Filtering() {
		switch msg.String() {
		case "esc":
			m.nav.StopFilter(true)
		case "enter":
			if item, ok := m.nav.Selected(); ok {
				m.navigate(item.Route)
			}
			m.nav.StopFilter(true)
		case "up":
			m.nav.MoveUp()
		case "down":
			m.nav.MoveDown()
		default:
			var cmd tea.Cmd
			m.nav, cmd = m.nav.Update(msg)
			return cmd
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.ToggleLeft):
		m.toggle(layout.SideLeft)
	case key.Matches(msg, m.keys.ToggleRight):
		m.toggle(layout.SideRight)
	case key.Matches(msg, m.keys.Filter):
		if d := m.drawers[layout.SideLeft]; d != nil {
			d.Show()
			return m.nav.StartFilter()
		}
	case key.Matches(msg, m.keys.Up):
		if m.navActive() {
			m.nav.MoveUp()
		} else {
			m.page.viewport.ScrollUp(1)
		}
	case key.Matches(msg, m.keys.Down):
		if m.navActive() {
			m.nav.MoveDown()
		} else {
			m.page.viewport.ScrollDown(1)
		}
	case key.Matches(msg, m.keys.Open):
		if item, ok := m.nav.Selected(); ok && m.navActive() {
			m.navigate(item.Route)
		}
	case key.Matches(msg, m.keys.Back):
		for _, side := range sides {
			if d := m.drawers[side]; d != nil && (d.MobileOpened() || d.OnScreenOverlay()) {
				d.Hide()
			}
		}
	case key.Matches(msg, m.keys.Copy):
		m.copyPage()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.page, cmd = m.page.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) toggle(side layout.Side) {
	if d := m.drawers[side]; d != nil {
		d.Toggle()
	}
}

// handleMouse offers the event to the drawers, mobile-opened ones first
// since they sit on top. Unclaimed wheel events scroll the page; a click
// that did not move selects a nav item.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	var clickedItem *NavItem
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			press := msg
			m.press = &press
		}
	case tea.MouseActionRelease:
		if m.press != nil && m.press.X == msg.X && m.press.Y == msg.Y && m.navActive() {
			if item, ok := m.nav.ItemAt(msg); ok {
				clickedItem = &item
			}
		}
		m.press = nil
	}

	consumed := false
	for _, d := range m.mouseOrder() {
		if d.HandleMouse(msg) {
			consumed = true
			break
		}
	}

	if clickedItem != nil {
		m.navigate(clickedItem.Route)
		return nil
	}
	if consumed {
		return nil
	}
	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return cmd
}

func (m *Model) mouseOrder() []*drawer.Drawer {
	var top, rest []*drawer.Drawer
	for _, side := range sides {
		d := m.drawers[side]
		switch {
		case d == nil:
		case d.MobileOpened():
			top = append(top, d)
		default:
			rest = append(rest, d)
		}
	}
	return append(top, rest...)
}

// navigate changes route and lets drawers that cover the page close.
func (m *Model) navigate(route string) {
	if !m.setRoute(route) {
		return
	}
	for _, side := range sides {
		if d := m.drawers[side]; d != nil {
			d.RouteChanged()
		}
	}
}

func (m *Model) setRoute(route string) bool {
	p, ok := m.cfg.Page(route)
	if !ok {
		m.logger.Printf("Warning: unknown route %q", route)
		return false
	}
	m.route = route
	m.page.SetContent(p.Body)
	m.nav.SetCurrent(route)
	if err := m.prefs.Set(prefs.KeyLastRoute, route); err != nil {
		m.logger.Printf("Warning: %v", err)
	}
	return true
}

func (m *Model) copyPage() {
	if err := m.clipboard(m.page.Markdown()); err != nil {
		m.logger.Printf("Warning: could not copy page: %v", err)
		m.status = "clipboard unavailable"
		return
	}
	m.status = "copied " + m.route
}

// apply switches to a reloaded configuration, updating drawers in place.
func (m *Model) apply(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if err := cfg.Validate(); err != nil {
		m.logger.Printf("Warning: ignoring invalid config: %v", err)
		return
	}
	m.cfg = cfg
	m.applyLayout(cfg)

	for _, side := range sides {
		dc := cfg.Drawer(side)
		d := m.drawers[side]
		switch {
		case d == nil && dc.Enabled:
			m.addDrawer(side, dc)
		case d != nil && !dc.Enabled:
			d.Destroy()
			delete(m.drawers, side)
		case d != nil:
			behavior := drawer.Behavior(dc.Behavior)
			if behavior == "" {
				behavior = drawer.BehaviorDefault
			}
			breakpoint := dc.Breakpoint
			if breakpoint <= 0 {
				breakpoint = drawer.DefaultBreakpoint
			}
			d.SetBehavior(behavior)
			d.SetBreakpoint(breakpoint)
			d.SetOverlay(dc.Overlay)
			d.SetSwipeThreshold(dc.SwipeThreshold)
			opts := dc.Options(side)
			d.SetSwipes(opts.NoSwipeOpen, opts.NoSwipeClose)
			d.SetNoHideOnRouteChange(opts.NoHideOnRouteChange)
			d.SetContent(opts.ContentStyle, opts.ContentClass)
			m.resizeDrawer(side, dc)
		}
	}

	m.nav.SetPages(cfg.Pages)
	if _, ok := cfg.Page(m.route); !ok && len(cfg.Pages) > 0 {
		m.setRoute(cfg.Pages[0].Route)
	} else {
		m.setRoute(m.route)
	}
	m.status = "config reloaded"
}
