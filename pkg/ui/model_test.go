package ui

import (
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Dicklesworthstone/layout_drawer/pkg/config"
	"github.com/Dicklesworthstone/layout_drawer/pkg/gesture"
	"github.com/Dicklesworthstone/layout_drawer/pkg/layout"
	"github.com/Dicklesworthstone/layout_drawer/pkg/prefs"
)

// keyMsg creates a tea.KeyMsg for testing
func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

type testShell struct {
	*Model
	copied []string
}

func newTestShell(t *testing.T, cfg *config.Config, store *prefs.Store, width, height int) *testShell {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	s := &testShell{}
	s.Model = NewModel(cfg, Options{
		Prefs:        store,
		Logger:       log.New(io.Discard, "", 0),
		Renderer:     lipgloss.NewRenderer(io.Discard),
		GlamourStyle: "notty",
		Clipboard: func(text string) error {
			s.copied = append(s.copied, text)
			return nil
		},
	})
	t.Cleanup(s.Close)
	s.send(tea.WindowSizeMsg{Width: width, Height: height})
	return s
}

// send delivers msg and settles every deferred update it caused.
func (s *testShell) send(msg tea.Msg) {
	s.Update(msg)
	s.Settle()
	s.layoutPage()
}

func (s *testShell) press(x, y int) {
	s.send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
}

func (s *testShell) release(x, y int) {
	s.send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
}

func (s *testShell) drag(x, y int) {
	s.send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
}

// waitZone renders the shell and waits until the zone manager has picked up
// the drawer part at x,y. Zones are registered in the background.
func (s *testShell) waitZone(t *testing.T, side layout.Side, part string, x, y int) gesture.HitFunc {
	t.Helper()
	s.View()
	hit := gesture.ZoneHit(s.zones, s.zoneID(side, part))
	deadline := time.Now().Add(time.Second)
	for !hit(x, y) {
		if time.Now().After(deadline) {
			t.Fatalf("Expected %s %s zone at %d,%d", side, part, x, y)
		}
		time.Sleep(5 * time.Millisecond)
	}
	return hit
}

func TestShellDesktopStart(t *testing.T) {
	s := newTestShell(t, nil, nil, 120, 30)

	left := s.Drawer(layout.SideLeft)
	right := s.Drawer(layout.SideRight)
	if left == nil || right == nil {
		t.Fatal("Expected both drawers from the default config")
	}
	if !left.Showing() || left.MobileView() {
		t.Errorf("Expected left drawer docked above the breakpoint, showing=%v mobile=%v", left.Showing(), left.MobileView())
	}
	if right.Showing() {
		t.Error("Expected overlay drawer to start closed")
	}

	pad := s.Layout().PagePadding()
	if pad.Left != 28 || pad.Top != 1 || pad.Bottom != 1 || pad.Right != 0 {
		t.Errorf("Unexpected page padding %+v", pad)
	}
	if s.page.viewport.Width != 120-28 || s.page.viewport.Height != 28 {
		t.Errorf("Expected page 92x28, got %dx%d", s.page.viewport.Width, s.page.viewport.Height)
	}
	if s.Route() != "/" {
		t.Errorf("Expected initial route /, got %q", s.Route())
	}
}

func TestShellMobileStart(t *testing.T) {
	s := newTestShell(t, nil, nil, 60, 20)

	left := s.Drawer(layout.SideLeft)
	if left.Showing() || !left.MobileView() {
		t.Errorf("Expected left drawer hidden in mobile view, showing=%v mobile=%v", left.Showing(), left.MobileView())
	}
	if pad := s.Layout().PagePadding(); pad.Left != 0 {
		t.Errorf("Expected no left padding below the breakpoint, got %d", pad.Left)
	}
}

func TestShellToggleKeys(t *testing.T) {
	s := newTestShell(t, nil, nil, 120, 30)
	left := s.Drawer(layout.SideLeft)
	right := s.Drawer(layout.SideRight)

	s.send(keyMsg("["))
	if left.Showing() {
		t.Error("Expected [ to close the left drawer")
	}
	if pad := s.Layout().PagePadding(); pad.Left != 0 {
		t.Errorf("Expected page to reclaim the left column, got padding %d", pad.Left)
	}

	s.send(keyMsg("]"))
	if !right.OnScreenOverlay() {
		t.Error("Expected ] to open the right overlay")
	}
	if pad := s.Layout().PagePadding(); pad.Right != 0 {
		t.Errorf("Overlay must not push the page, got right padding %d", pad.Right)
	}

	s.send(tea.KeyMsg{Type: tea.KeyEsc})
	if right.Showing() {
		t.Error("Expected esc to close the overlay")
	}
}

func TestShellMobileOpenAndEscape(t *testing.T) {
	s := newTestShell(t, nil, nil, 60, 20)
	left := s.Drawer(layout.SideLeft)

	s.send(keyMsg("["))
	if !left.MobileOpened() {
		t.Fatal("Expected [ to open the drawer over the page")
	}
	if left.Backdrop() != 1 {
		t.Errorf("Expected full backdrop, got %v", left.Backdrop())
	}

	s.send(tea.KeyMsg{Type: tea.KeyEsc})
	if left.Showing() || left.MobileOpened() {
		t.Error("Expected esc to close the mobile drawer")
	}
}

func TestShellBackdropTapCloses(t *testing.T) {
	s := newTestShell(t, nil, nil, 60, 20)
	left := s.Drawer(layout.SideLeft)

	s.send(keyMsg("["))
	if !left.MobileOpened() {
		t.Fatal("Expected drawer open")
	}

	s.press(50, 10)
	s.release(50, 10)
	if left.Showing() {
		t.Error("Expected a tap on the backdrop to close the drawer")
	}
}

func TestShellOpeningOneSideClosesTheOther(t *testing.T) {
	s := newTestShell(t, nil, nil, 60, 20)
	left := s.Drawer(layout.SideLeft)
	right := s.Drawer(layout.SideRight)

	s.send(keyMsg("["))
	s.send(keyMsg("]"))
	if left.Showing() {
		t.Error("Expected left drawer to close when the right one opens")
	}
	if !right.MobileOpened() {
		t.Error("Expected right drawer open over the page")
	}
}

func TestShellFilterNavigates(t *testing.T) {
	s := newTestShell(t, nil, nil, 120, 30)

	s.send(keyMsg("/"))
	if !s.nav.Filtering() {
		t.Fatal("Expected / to start filtering")
	}
	s.send(keyMsg("gest"))
	if items := s.nav.filteredItems; len(items) != 1 || items[0].Route != "/gestures" {
		t.Fatalf("Expected only /gestures to match, got %+v", items)
	}
	s.send(tea.KeyMsg{Type: tea.KeyEnter})

	if s.Route() != "/gestures" {
		t.Errorf("Expected route /gestures, got %q", s.Route())
	}
	if s.nav.Filtering() {
		t.Error("Expected filter to close after enter")
	}
	if !strings.Contains(s.page.Markdown(), "Gestures") {
		t.Error("Expected gestures page content")
	}
	if !s.Drawer(layout.SideLeft).Showing() {
		t.Error("Docked drawer must stay open across navigation")
	}
}

func TestShellNavigationClosesMobileDrawer(t *testing.T) {
	s := newTestShell(t, nil, nil, 60, 20)
	left := s.Drawer(layout.SideLeft)

	s.send(keyMsg("["))
	s.send(keyMsg("j"))
	s.send(tea.KeyMsg{Type: tea.KeyEnter})

	if s.Route() != "/drawers" {
		t.Errorf("Expected route /drawers, got %q", s.Route())
	}
	if left.Showing() {
		t.Error("Expected route change to close the mobile drawer")
	}
}

func TestShellCopyPage(t *testing.T) {
	s := newTestShell(t, nil, nil, 120, 30)

	s.send(keyMsg("y"))
	if len(s.copied) != 1 || s.copied[0] != s.page.Markdown() {
		t.Fatalf("Expected page markdown on the clipboard, got %d copies", len(s.copied))
	}
	if s.Status() != "copied /" {
		t.Errorf("Expected status 'copied /', got %q", s.Status())
	}

	s.clipboard = func(string) error { return errors.New("no clipboard") }
	s.send(keyMsg("y"))
	if s.Status() != "clipboard unavailable" {
		t.Errorf("Expected clipboard failure status, got %q", s.Status())
	}
}

func TestShellConfigReload(t *testing.T) {
	s := newTestShell(t, nil, nil, 120, 30)

	next := config.Default()
	next.Right.Enabled = false
	next.Left.Breakpoint = 150
	next.Left.Size = 20
	s.send(ConfigReloadedMsg{Config: next})

	if s.Drawer(layout.SideRight) != nil {
		t.Error("Expected disabled right drawer to be removed")
	}
	left := s.Drawer(layout.SideLeft)
	if left.Breakpoint() != 150 || !left.BelowBreakpoint() {
		t.Errorf("Expected new breakpoint 150 to apply, got %d below=%v", left.Breakpoint(), left.BelowBreakpoint())
	}
	if left.Showing() {
		t.Error("Expected left drawer to hide below its new breakpoint")
	}
	if left.Size() != 20 {
		t.Errorf("Expected size 20, got %d", left.Size())
	}
	if s.Status() != "config reloaded" {
		t.Errorf("Expected reload status, got %q", s.Status())
	}

	next.Right.Enabled = true
	s.send(ConfigReloadedMsg{Config: next})
	if s.Drawer(layout.SideRight) == nil {
		t.Error("Expected re-enabled right drawer to be created")
	}
}

func TestShellConfigReloadRejectsInvalid(t *testing.T) {
	s := newTestShell(t, nil, nil, 120, 30)

	bad := config.Default()
	bad.View = "nope"
	s.send(ConfigReloadedMsg{Config: bad})

	if s.Layout().View() != config.Default().View {
		t.Errorf("Expected invalid view to be ignored, got %q", s.Layout().View())
	}
	if s.Status() == "config reloaded" {
		t.Error("Expected no reload status for an invalid config")
	}
}

func TestShellRemembersDesktopState(t *testing.T) {
	dir := t.TempDir()
	store, err := prefs.Open(filepath.Join(dir, "prefs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	s := newTestShell(t, nil, store, 120, 30)
	s.send(keyMsg("["))

	showing, ok, err := store.Showing(layout.SideLeft)
	if err != nil || !ok || showing {
		t.Errorf("Expected left=false saved, got showing=%v ok=%v err=%v", showing, ok, err)
	}

	again := newTestShell(t, nil, store, 120, 30)
	if again.Drawer(layout.SideLeft).Showing() {
		t.Error("Expected remembered closed state on the next start")
	}
}

func TestShellMobileStateNotRemembered(t *testing.T) {
	dir := t.TempDir()
	store, err := prefs.Open(filepath.Join(dir, "prefs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	s := newTestShell(t, nil, store, 60, 20)
	s.send(keyMsg("["))

	if _, ok, _ := store.Showing(layout.SideLeft); ok {
		t.Error("Mobile open must not be saved as desktop intent")
	}
}

func TestShellRemembersRoute(t *testing.T) {
	dir := t.TempDir()
	store, err := prefs.Open(filepath.Join(dir, "prefs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	s := newTestShell(t, nil, store, 120, 30)
	s.navigate("/drawers")

	again := newTestShell(t, nil, store, 120, 30)
	if again.Route() != "/drawers" {
		t.Errorf("Expected last route /drawers, got %q", again.Route())
	}
}

func TestShellView(t *testing.T) {
	s := newTestShell(t, nil, nil, 120, 30)

	view := s.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 30 {
		t.Fatalf("Expected 30 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 120 {
			t.Errorf("Line %d: expected width 120, got %d", i, w)
			break
		}
	}
	plain := ansi.Strip(view)
	if !strings.Contains(ansi.Strip(lines[0]), "layout drawer") {
		t.Error("Expected title in the header row")
	}
	if !strings.Contains(plain, "Pages") {
		t.Error("Expected nav drawer in the view")
	}
}

func TestShellViewMobile(t *testing.T) {
	s := newTestShell(t, nil, nil, 60, 20)

	if strings.Contains(ansi.Strip(s.View()), "Pages") {
		t.Error("Closed mobile drawer must not be drawn")
	}

	s.send(keyMsg("["))
	if !strings.Contains(ansi.Strip(s.View()), "Pages") {
		t.Error("Expected open mobile drawer to be drawn")
	}
}

func TestShellHelpOverlay(t *testing.T) {
	s := newTestShell(t, nil, nil, 120, 30)

	s.send(keyMsg("?"))
	if !s.help.ShowAll {
		t.Fatal("Expected ? to show full help")
	}
	if !strings.Contains(ansi.Strip(s.View()), "Keys") {
		t.Error("Expected help overlay in the view")
	}
	s.send(keyMsg("?"))
	if s.help.ShowAll {
		t.Error("Expected ? to hide full help")
	}
}

func TestShellQuit(t *testing.T) {
	s := newTestShell(t, nil, nil, 120, 30)

	_, cmd := s.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("Expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected q to quit")
	}
}

func TestShellSwipeOpensFromOpener(t *testing.T) {
	s := newTestShell(t, nil, nil, 60, 20)
	left := s.Drawer(layout.SideLeft)

	s.waitZone(t, layout.SideLeft, "opener", 0, 5)
	s.press(0, 5)
	s.drag(10, 5)
	s.drag(20, 5)
	s.release(20, 5)
	if !left.MobileOpened() {
		t.Error("Expected a swipe from the left edge to open the drawer")
	}
}

func TestShellSwipeOpensFromOpenerRTL(t *testing.T) {
	cfg := config.Default()
	cfg.RTL = true
	s := newTestShell(t, cfg, nil, 60, 20)
	left := s.Drawer(layout.SideLeft)

	hit := s.waitZone(t, layout.SideLeft, "opener", 59, 5)
	if hit(0, 5) {
		t.Error("Expected the left drawer opener to stay on the right edge")
	}
	if hit(30, 5) {
		t.Error("Expected the opener zone to be one column wide")
	}

	s.press(59, 5)
	s.drag(50, 5)
	s.drag(40, 5)
	s.release(40, 5)
	if !left.MobileOpened() {
		t.Error("Expected a swipe from the right edge to open the left drawer in RTL")
	}
}

func TestShellSwipeClosesFromContent(t *testing.T) {
	s := newTestShell(t, nil, nil, 60, 20)
	left := s.Drawer(layout.SideLeft)

	s.send(keyMsg("["))
	if !left.MobileOpened() {
		t.Fatal("Expected drawer open")
	}

	hit := s.waitZone(t, layout.SideLeft, "content", 20, 5)
	if hit(40, 5) {
		t.Error("Expected the content zone to end at the drawer edge")
	}

	s.press(20, 5)
	s.drag(12, 5)
	s.drag(5, 5)
	s.release(5, 5)
	if left.Showing() {
		t.Error("Expected a swipe across the panel to close the drawer")
	}
}

func TestShellConfigReloadAppliesDrawerOptions(t *testing.T) {
	s := newTestShell(t, nil, nil, 60, 20)
	left := s.Drawer(layout.SideLeft)
	if !left.Presentation().Opener {
		t.Fatal("Expected an opener strip before the reload")
	}

	next := config.Default()
	next.Left.NoSwipeOpen = true
	next.Left.NoHideOnRouteChange = true
	next.Left.Class = []string{"nav-panel"}
	next.Left.Style = map[string]string{"background": "#112233"}
	s.send(ConfigReloadedMsg{Config: next})

	if s.Drawer(layout.SideLeft) != left {
		t.Error("Expected the reload to keep the drawer instance")
	}
	p := left.Presentation()
	if p.Opener {
		t.Error("Expected no opener strip once swipe-to-open is off")
	}
	if !p.HasClass("nav-panel") {
		t.Errorf("Expected content class nav-panel, got %v", p.Classes)
	}
	if p.Style["background"] != "#112233" {
		t.Errorf("Expected content background #112233, got %q", p.Style["background"])
	}

	s.send(keyMsg("["))
	s.send(keyMsg("j"))
	s.send(tea.KeyMsg{Type: tea.KeyEnter})
	if s.Route() != "/drawers" {
		t.Errorf("Expected route /drawers, got %q", s.Route())
	}
	if !left.Showing() {
		t.Error("Expected the drawer to survive navigation after the reload")
	}
}

func TestShellLayoutStatusShowsTransition(t *testing.T) {
	s := newTestShell(t, nil, nil, 120, 30)

	s.Update(keyMsg("["))
	if status := strings.Join(s.layoutStatus(), "\n"); !strings.Contains(status, "left docked closing") {
		t.Errorf("Expected closing state during the transition, got %q", status)
	}
	s.Settle()
	if status := strings.Join(s.layoutStatus(), "\n"); !strings.Contains(status, "left docked closed") {
		t.Errorf("Expected closed state after the transition, got %q", status)
	}

	s.Update(keyMsg("["))
	if status := strings.Join(s.layoutStatus(), "\n"); !strings.Contains(status, "left docked opening") {
		t.Errorf("Expected opening state during the transition, got %q", status)
	}
}

func TestShellHidingNavStopsFilter(t *testing.T) {
	s := newTestShell(t, nil, nil, 60, 20)
	left := s.Drawer(layout.SideLeft)

	s.send(keyMsg("["))
	s.send(keyMsg("/"))
	s.send(keyMsg("g"))
	if !s.nav.Filtering() {
		t.Fatal("Expected filter to take focus")
	}

	s.press(50, 10)
	s.release(50, 10)
	if left.Showing() {
		t.Fatal("Expected a tap on the backdrop to close the drawer")
	}
	if s.nav.Filtering() {
		t.Error("Expected the filter to let go of the keyboard once the nav is hidden")
	}
	if n := len(s.nav.Items()); n != len(config.Default().Pages) {
		t.Errorf("Expected the query to be cleared, got %d items", n)
	}
}
