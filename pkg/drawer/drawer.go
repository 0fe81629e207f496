// Package drawer implements a collapsible side drawer for a responsive page
// layout. A Drawer reconciles three sources of state: the user's open/closed
// intent, the responsive mode derived from viewport width and breakpoint,
// and the transient position of a swipe in progress. It publishes what it
// reserves in the layout (size, offset, space) to the shared
// layout.Coordinator so header, footer and page content can reflow.
package drawer

import (
	"log"
	"time"

	"github.com/Dicklesworthstone/layout_drawer/pkg/gesture"
	"github.com/Dicklesworthstone/layout_drawer/pkg/layout"
	"github.com/Dicklesworthstone/layout_drawer/pkg/sched"
	"github.com/Dicklesworthstone/layout_drawer/pkg/toggle"
)

// Behavior selects how the drawer responds to the breakpoint.
type Behavior string

const (
	// BehaviorDefault docks above the breakpoint and goes mobile below it.
	BehaviorDefault Behavior = "default"
	// BehaviorDesktop never goes mobile.
	BehaviorDesktop Behavior = "desktop"
	// BehaviorMobile is always mobile.
	BehaviorMobile Behavior = "mobile"
)

// Valid reports whether b is a known behavior.
func (b Behavior) Valid() bool {
	switch b {
	case BehaviorDefault, BehaviorDesktop, BehaviorMobile:
		return true
	}
	return false
}

const (
	DefaultBreakpoint     = 992
	DefaultSize           = 300
	DefaultSwipeThreshold = 75

	// TransitionDuration matches the visual slide transition.
	TransitionDuration = 150 * time.Millisecond

	// BodyScrollClass locks page scrolling while a docked drawer opens.
	BodyScrollClass = "drawer-scroll"

	// BackdropDim is the backdrop darkness at full opacity.
	BackdropDim = 0.4
)

// Options configures a Drawer. Zero values select the defaults.
type Options struct {
	Overlay    bool
	Side       layout.Side // default left
	Breakpoint int         // default DefaultBreakpoint
	Behavior   Behavior    // default BehaviorDefault
	Size       int         // initial size before the first Resize, default DefaultSize

	// SwipeThreshold is the distance a swipe must cover to commit, capped
	// at the drawer size. Default DefaultSwipeThreshold.
	SwipeThreshold int

	ContentStyle map[string]string
	ContentClass []string

	NoHideOnRouteChange bool
	NoSwipeOpen         bool
	NoSwipeClose        bool

	// Value is the caller's bound open/closed value, nil when unbound.
	Value *bool
	// OnInput is told about every change of showing. It also fires during
	// New when the computed initial state differs from Value.
	OnInput func(bool)

	// Scheduler defaults to the coordinator's scheduler.
	Scheduler sched.Scheduler
	Logger    *log.Logger
}

// Drawer is one side drawer. It is not safe for concurrent use.
type Drawer struct {
	layout *layout.Coordinator
	sched  sched.Scheduler
	logger *log.Logger
	toggle *toggle.Machine
	timer  *sched.Slot

	side                layout.Side
	overlay             bool
	breakpoint          int
	behavior            Behavior
	threshold           int
	contentStyle        map[string]string
	contentClass        []string
	noHideOnRouteChange bool
	noSwipeOpen         bool
	noSwipeClose        bool

	size             int
	belowBreakpoint  bool
	largeScreenState bool
	mobileOpened     bool

	// render state
	position     int
	backdrop     float64
	noTransition bool
	delimiter    bool
	scrollTop    int
	swipe        int

	// last values pushed to the coordinator
	lastOffset     int
	lastOnLayout   bool
	lastMobileView bool

	openerPan   *gesture.Pan
	backdropPan *gesture.Pan
	contentPan  *gesture.Pan
	contentHit  gesture.HitFunc

	depth       int
	unsubscribe func()
	destroyed   bool
}

// hooks keeps the toggle callbacks off the Drawer's exported API.
type hooks struct{ d *Drawer }

func (h hooks) OnShow() { h.d.onShow() }
func (h hooks) OnHide() { h.d.onHide() }

// New creates a drawer, registers it with coord for its side and publishes
// its initial space and offset. A nil coord is a misconfiguration: it is
// logged and the drawer runs against a private coordinator.
func New(coord *layout.Coordinator, opts Options) *Drawer {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	side := opts.Side
	if side == "" {
		side = layout.SideLeft
	} else if !side.Valid() {
		logger.Printf("drawer: invalid side %q, using %q", side, layout.SideLeft)
		side = layout.SideLeft
	}

	behavior := opts.Behavior
	if behavior == "" {
		behavior = BehaviorDefault
	} else if !behavior.Valid() {
		logger.Printf("drawer: invalid behavior %q, using %q", behavior, BehaviorDefault)
		behavior = BehaviorDefault
	}

	s := opts.Scheduler
	if coord == nil {
		logger.Printf("drawer: %s drawer needs to be a child of a layout", side)
		if s == nil {
			s = sched.NewQueue()
		}
		coord = layout.New(s)
	}
	if s == nil {
		s = coord.Scheduler()
	}

	d := &Drawer{
		layout:              coord,
		sched:               s,
		logger:              logger,
		timer:               sched.NewSlot(s),
		side:                side,
		overlay:             opts.Overlay,
		breakpoint:          orDefault(opts.Breakpoint, DefaultBreakpoint),
		behavior:            behavior,
		threshold:           orDefault(opts.SwipeThreshold, DefaultSwipeThreshold),
		contentStyle:        opts.ContentStyle,
		contentClass:        opts.ContentClass,
		noHideOnRouteChange: opts.NoHideOnRouteChange,
		noSwipeOpen:         opts.NoSwipeOpen,
		noSwipeClose:        opts.NoSwipeClose,
		size:                orDefault(opts.Size, DefaultSize),
	}

	d.largeScreenState = true
	if opts.Value != nil {
		d.largeScreenState = *opts.Value
	}
	showing := false
	if d.behavior != BehaviorMobile && d.breakpoint < coord.Width() && !d.overlay {
		showing = d.largeScreenState
	}
	d.belowBreakpoint = isBelowBreakpoint(d.behavior, d.breakpoint, coord.Width())

	d.toggle = toggle.New(hooks{d}, showing)
	if opts.OnInput != nil {
		if opts.Value != nil && *opts.Value != showing {
			opts.OnInput(showing)
		}
		d.toggle.OnInput(opts.OnInput)
	}

	coord.Register(side, d)
	d.lastOnLayout = d.OnLayout()
	d.lastOffset = d.Offset()
	d.lastMobileView = d.MobileView()
	coord.SetSpace(d.region(), d.lastOnLayout)
	coord.SetOffset(d.region(), d.lastOffset)

	if showing {
		d.applyPosition(0)
	} else {
		d.applyPosition(d.hiddenPosition())
	}

	d.unsubscribe = coord.Subscribe(d.handleLayoutEvent)
	return d
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Destroy tears the drawer down: its transition timer is cancelled, its
// gestures are disposed and, if it is still the registered drawer for its
// side, its contribution to the layout is zeroed.
func (d *Drawer) Destroy() {
	if d.destroyed {
		return
	}
	d.destroyed = true
	d.timer.Cancel()
	d.disposeGestures()
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
	if d.layout.Unregister(d.side, d) {
		d.layout.SetSize(d.region(), 0)
		d.layout.SetOffset(d.region(), 0)
		d.layout.SetSpace(d.region(), false)
	}
}

// Destroyed reports whether Destroy has been called.
func (d *Drawer) Destroyed() bool {
	return d.destroyed
}

// Show opens the drawer.
func (d *Drawer) Show() *toggle.Pending {
	var p *toggle.Pending
	d.batch(func() { p = d.toggle.Show() })
	return p
}

// Hide closes the drawer.
func (d *Drawer) Hide() *toggle.Pending {
	var p *toggle.Pending
	d.batch(func() { p = d.toggle.Hide() })
	return p
}

// Toggle flips the drawer.
func (d *Drawer) Toggle() *toggle.Pending {
	var p *toggle.Pending
	d.batch(func() { p = d.toggle.Toggle() })
	return p
}

// SetValue applies a bound value from the caller.
func (d *Drawer) SetValue(v bool) {
	d.batch(func() { d.toggle.SetValue(v) })
}

// OnInput registers fn for showing changes.
func (d *Drawer) OnInput(fn func(bool)) {
	d.toggle.OnInput(fn)
}

// OnHidden registers fn to run once a hide transition has finished.
func (d *Drawer) OnHidden(fn func()) {
	d.toggle.OnHidden(fn)
}

// Side returns the drawer's side.
func (d *Drawer) Side() layout.Side { return d.side }

// Showing reports the open/closed intent.
func (d *Drawer) Showing() bool { return d.toggle.Showing() }

// Overlay reports whether the drawer floats above content.
func (d *Drawer) Overlay() bool { return d.overlay }

// Breakpoint returns the configured breakpoint.
func (d *Drawer) Breakpoint() int { return d.breakpoint }

// Behavior returns the configured behavior.
func (d *Drawer) Behavior() Behavior { return d.behavior }

// Size returns the drawer width.
func (d *Drawer) Size() int { return d.size }

// BelowBreakpoint reports whether the viewport is in mobile mode for this drawer.
func (d *Drawer) BelowBreakpoint() bool { return d.belowBreakpoint }

// MobileOpened reports whether the drawer is open as a mobile overlay.
func (d *Drawer) MobileOpened() bool { return d.mobileOpened }

// LargeScreenState returns the state restored when leaving mobile mode.
func (d *Drawer) LargeScreenState() bool { return d.largeScreenState }

// MobileView reports whether the drawer renders as a swipeable overlay with
// a backdrop.
func (d *Drawer) MobileView() bool {
	return d.belowBreakpoint || d.mobileOpened
}

// Offset is the room the drawer reserves in the layout: its size when docked
// open, otherwise zero.
func (d *Drawer) Offset() int {
	if d.Showing() && !d.mobileOpened && !d.overlay {
		return d.size
	}
	return 0
}

// OnLayout reports whether the drawer occupies layout flow.
func (d *Drawer) OnLayout() bool {
	return d.Showing() && !d.MobileView() && !d.overlay
}

// OnScreenOverlay reports whether an overlay drawer is open outside mobile view.
func (d *Drawer) OnScreenOverlay() bool {
	return d.Showing() && !d.MobileView() && d.overlay
}

// SetOverlay switches between overlay and docked presentation.
func (d *Drawer) SetOverlay(overlay bool) {
	if d.overlay == overlay {
		return
	}
	d.batch(func() { d.overlay = overlay })
}

// SetSwipes turns swipe-to-open and swipe-to-close on or off. A swipe in
// progress on a gesture being turned off is abandoned and the drawer goes
// back to rest.
func (d *Drawer) SetSwipes(noOpen, noClose bool) {
	abort := (noOpen && !d.noSwipeOpen && d.openerPan != nil && d.openerPan.Active()) ||
		(noClose && !d.noSwipeClose && d.contentPan != nil && d.contentPan.Active())
	d.noSwipeOpen, d.noSwipeClose = noOpen, noClose
	if !abort {
		return
	}
	d.batch(func() {
		d.cancelGestures()
		d.noTransition = false
		d.delimiter = false
		if d.toggle.Showing() {
			d.applyBackdrop(1)
		} else {
			d.applyBackdrop(0)
		}
		d.schedulePosition()
	})
}

// SetNoHideOnRouteChange controls whether RouteChanged closes the drawer.
func (d *Drawer) SetNoHideOnRouteChange(v bool) {
	d.noHideOnRouteChange = v
}

// SetContent replaces the content style and classes passed through to the
// presentation.
func (d *Drawer) SetContent(style map[string]string, class []string) {
	d.contentStyle = style
	d.contentClass = class
}

// SetSwipeThreshold changes the commit distance for swipes.
func (d *Drawer) SetSwipeThreshold(threshold int) {
	d.threshold = orDefault(threshold, DefaultSwipeThreshold)
}

func (d *Drawer) region() layout.RegionName {
	return layout.RegionFor(d.side)
}

// batch runs fn and then pushes derived state to the coordinator once,
// so intermediate values inside one operation are never published.
func (d *Drawer) batch(fn func()) {
	d.depth++
	fn()
	d.depth--
	if d.depth == 0 && !d.destroyed {
		d.sync()
	}
}

func (d *Drawer) handleLayoutEvent(e layout.Event) {
	if d.destroyed {
		return
	}
	switch e.Kind {
	case layout.EventWidth:
		d.batch(d.recomputeBreakpoint)
	case layout.EventRTL:
		d.batch(d.schedulePosition)
	}
}
