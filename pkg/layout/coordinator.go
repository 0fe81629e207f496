// Package layout holds the state shared by every region of a page layout:
// viewport size, text direction, the view string describing which region
// owns each corner, and the per-region size/offset/space records that
// header, footer, drawers and page content read to reflow around each other.
package layout

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Dicklesworthstone/layout_drawer/pkg/sched"
	"github.com/Dicklesworthstone/layout_drawer/pkg/toggle"
)

// Side identifies a drawer edge.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Valid reports whether s is one of the two known sides.
func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideRight {
		return SideLeft
	}
	return SideRight
}

// RegionName identifies a region record.
type RegionName string

const (
	RegionHeader RegionName = "header"
	RegionFooter RegionName = "footer"
	RegionLeft   RegionName = "left"
	RegionRight  RegionName = "right"
)

// RegionFor returns the region record owned by the drawer on side.
func RegionFor(side Side) RegionName {
	return RegionName(side)
}

// Region is what a region contributes to the layout. Size is its extent,
// Offset how much of it is currently on screen, Space whether it occupies
// layout flow.
type Region struct {
	Size   int
	Offset int
	Space  bool
}

// DefaultView gives every corner to header and footer and keeps drawers
// scrolling with the page.
const DefaultView = "hhh lpr fff"

// AnimateClass is present on the body while a layout-wide transition runs.
const AnimateClass = "layout-animate"

// AnimateDuration is how long AnimateClass stays on after the last Animate.
const AnimateDuration = 150 * time.Millisecond

var viewPattern = regexp.MustCompile(`^(h|l)h(h|r) lpr (f|l)f(f|r)$`)

// Rows is the parsed view string, one three-letter row per band.
type Rows struct {
	Top    string
	Middle string
	Bottom string
}

// Instance is the part of a drawer the coordinator and sibling drawers use.
type Instance interface {
	MobileOpened() bool
	Hide() *toggle.Pending
}

// EventKind says what changed.
type EventKind int

const (
	EventWidth EventKind = iota
	EventHeight
	EventRTL
	EventView
	EventRegion
)

// Event is delivered to subscribers after a change has been stored.
type Event struct {
	Kind   EventKind
	Region RegionName // set for EventRegion
}

type listener struct {
	id int
	fn func(Event)
}

// Coordinator is the shared layout context. It is passed by pointer to every
// region and is not safe for concurrent use; all access happens on the UI
// loop. Writes are compare-and-set so unchanged values never notify.
type Coordinator struct {
	width  int
	height int
	rtl    bool
	view   string
	rows   Rows

	sched     sched.Scheduler
	regions   map[RegionName]*Region
	instances map[Side]Instance
	body      *ClassList
	animate   *sched.Slot

	listeners    []listener
	nextListener int
	writes       int
}

// New creates a coordinator using DefaultView.
func New(s sched.Scheduler) *Coordinator {
	c := &Coordinator{
		regions: map[RegionName]*Region{
			RegionHeader: {},
			RegionFooter: {},
			RegionLeft:   {},
			RegionRight:  {},
		},
		sched:     s,
		instances: make(map[Side]Instance),
		body:      NewClassList(),
		animate:   sched.NewSlot(s),
	}
	c.view, c.rows = DefaultView, parseRows(DefaultView)
	return c
}

// Scheduler returns the scheduler shared by every region of this layout.
func (c *Coordinator) Scheduler() sched.Scheduler { return c.sched }

// Width returns the viewport width.
func (c *Coordinator) Width() int { return c.width }

// Height returns the viewport height.
func (c *Coordinator) Height() int { return c.height }

// RTL reports whether text runs right to left.
func (c *Coordinator) RTL() bool { return c.rtl }

// View returns the view string.
func (c *Coordinator) View() string { return c.view }

// Rows returns the parsed view string.
func (c *Coordinator) Rows() Rows { return c.rows }

// SetWidth stores the viewport width and notifies subscribers on change.
func (c *Coordinator) SetWidth(w int) {
	if c.width == w {
		return
	}
	c.width = w
	c.emit(Event{Kind: EventWidth})
}

// SetHeight stores the viewport height and notifies subscribers on change.
func (c *Coordinator) SetHeight(h int) {
	if c.height == h {
		return
	}
	c.height = h
	c.emit(Event{Kind: EventHeight})
}

// SetRTL switches text direction and notifies subscribers on change.
func (c *Coordinator) SetRTL(rtl bool) {
	if c.rtl == rtl {
		return
	}
	c.rtl = rtl
	c.emit(Event{Kind: EventRTL})
}

// SetView validates and stores a view string such as "hHh lpR fFf".
// Lowercase letters scroll with the page, uppercase ones are fixed.
func (c *Coordinator) SetView(view string) error {
	if err := ValidateView(view); err != nil {
		return err
	}
	if c.view == view {
		return nil
	}
	c.view, c.rows = view, parseRows(view)
	c.emit(Event{Kind: EventView})
	return nil
}

// ValidateView checks the shape of a view string.
func ValidateView(view string) error {
	if !viewPattern.MatchString(strings.ToLower(view)) {
		return fmt.Errorf("invalid layout view %q: want three rows like \"hhh lpr fff\"", view)
	}
	return nil
}

func parseRows(view string) Rows {
	parts := strings.Split(strings.ToLower(view), " ")
	return Rows{Top: parts[0], Middle: parts[1], Bottom: parts[2]}
}

// Fixed reports whether the view pins the given letter (h, l, r, f) in place.
func (c *Coordinator) Fixed(letter byte) bool {
	upper := strings.ToUpper(string(letter))
	return strings.Contains(c.view, upper)
}

// Region returns a copy of the named region record.
func (c *Coordinator) Region(name RegionName) Region {
	if r, ok := c.regions[name]; ok {
		return *r
	}
	return Region{}
}

// SetSize writes a region's size. It reports whether the value changed.
func (c *Coordinator) SetSize(name RegionName, size int) bool {
	r := c.region(name)
	if r == nil || r.Size == size {
		return false
	}
	r.Size = size
	c.written(name)
	return true
}

// SetOffset writes a region's offset. It reports whether the value changed.
func (c *Coordinator) SetOffset(name RegionName, offset int) bool {
	r := c.region(name)
	if r == nil || r.Offset == offset {
		return false
	}
	r.Offset = offset
	c.written(name)
	return true
}

// SetSpace writes whether a region occupies layout flow. It reports whether
// the value changed.
func (c *Coordinator) SetSpace(name RegionName, space bool) bool {
	r := c.region(name)
	if r == nil || r.Space == space {
		return false
	}
	r.Space = space
	c.written(name)
	return true
}

// Writes returns how many region writes actually changed a value.
func (c *Coordinator) Writes() int {
	return c.writes
}

func (c *Coordinator) region(name RegionName) *Region {
	return c.regions[name]
}

func (c *Coordinator) written(name RegionName) {
	c.writes++
	c.emit(Event{Kind: EventRegion, Region: name})
}

// Register makes inst the drawer for side, replacing any previous one.
func (c *Coordinator) Register(side Side, inst Instance) {
	c.instances[side] = inst
}

// Instance returns the drawer registered for side, or nil.
func (c *Coordinator) Instance(side Side) Instance {
	return c.instances[side]
}

// Unregister clears side only when inst is still the registered drawer, so a
// stale instance torn down late cannot evict its replacement. It reports
// whether the registration was cleared.
func (c *Coordinator) Unregister(side Side, inst Instance) bool {
	if cur, ok := c.instances[side]; !ok || cur != inst {
		return false
	}
	delete(c.instances, side)
	return true
}

// Body returns the document-level class list shared by every region.
func (c *Coordinator) Body() *ClassList {
	return c.body
}

// Animate turns on AnimateClass for AnimateDuration, extending the window
// when called again before it closes.
func (c *Coordinator) Animate() {
	if !c.animate.Pending() {
		c.body.Add(AnimateClass)
	}
	c.animate.Schedule(AnimateDuration, func() {
		c.body.Remove(AnimateClass)
	})
}

// Animating reports whether a layout-wide transition is running.
func (c *Coordinator) Animating() bool {
	return c.body.Has(AnimateClass)
}

// Subscribe registers fn for change events and returns a function that
// removes it.
func (c *Coordinator) Subscribe(fn func(Event)) func() {
	c.nextListener++
	id := c.nextListener
	c.listeners = append(c.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

func (c *Coordinator) emit(e Event) {
	ls := append([]listener(nil), c.listeners...)
	for _, l := range ls {
		l.fn(e)
	}
}
