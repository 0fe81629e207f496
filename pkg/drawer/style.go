package drawer

import (
	"strconv"

	"github.com/Dicklesworthstone/layout_drawer/pkg/layout"
)

// Presentation classes.
const (
	ClassDrawer       = "layout-drawer"
	ClassTransition   = "layout-transition"
	ClassScroll       = "scroll"
	ClassFixed        = "fixed"
	ClassOnTop        = "on-top"
	ClassTopPadding   = "top-padding"
	ClassDelimiter    = "layout-drawer-delimiter"
	ClassNoTransition = "no-transition"
)

// Presentation is everything a renderer needs to draw the drawer for the
// current state.
type Presentation struct {
	Side       layout.Side
	MobileView bool
	Showing    bool
	Classes    []string
	// Style is the content style passthrough plus "top"/"bottom" offsets
	// outside mobile view.
	Style     map[string]string
	Size      int
	Position  int
	ScrollTop int

	// Backdrop is only rendered in mobile view.
	Backdrop            bool
	BackdropOpacity     float64
	BackdropInteractive bool

	// Opener is the swipe-open strip on the drawer's edge.
	Opener bool
}

// Fixed reports whether the drawer is pinned to the viewport rather than
// scrolling with the page.
func (d *Drawer) Fixed() bool {
	letter := byte('l')
	if d.side == layout.SideRight {
		letter = 'r'
	}
	return d.overlay || d.layout.Fixed(letter)
}

// headerSlot reports whether the drawer owns the top corner on its side.
func (d *Drawer) headerSlot() bool {
	if d.overlay {
		return false
	}
	return d.ownsCorner(d.layout.Rows().Top)
}

// footerSlot reports whether the drawer owns the bottom corner on its side.
func (d *Drawer) footerSlot() bool {
	if d.overlay {
		return false
	}
	return d.ownsCorner(d.layout.Rows().Bottom)
}

func (d *Drawer) ownsCorner(row string) bool {
	if len(row) != 3 {
		return false
	}
	if d.side == layout.SideRight {
		return row[2] == 'r'
	}
	return row[0] == 'l'
}

func (d *Drawer) belowClasses() []string {
	classes := []string{ClassFixed, ClassOnTop}
	if d.Fixed() && d.Showing() {
		classes = append(classes, ClassDelimiter)
	}
	return append(classes, ClassTopPadding)
}

func (d *Drawer) aboveClasses() []string {
	var classes []string
	if d.Fixed() || !d.OnLayout() {
		classes = append(classes, ClassFixed)
	}
	if d.Fixed() && d.Showing() {
		classes = append(classes, ClassDelimiter)
	}
	if d.headerSlot() {
		classes = append(classes, ClassTopPadding)
	}
	return classes
}

// aboveStyle keeps a drawer that does not own a corner clear of the header
// and footer: a fixed drawer follows their on-screen offset, a scrolling
// one their full size.
func (d *Drawer) aboveStyle() map[string]string {
	css := make(map[string]string)

	if header := d.layout.Region(layout.RegionHeader); header.Space && !d.headerSlot() {
		if d.Fixed() {
			css["top"] = strconv.Itoa(header.Offset)
		} else {
			css["top"] = strconv.Itoa(header.Size)
		}
	}

	if footer := d.layout.Region(layout.RegionFooter); footer.Space && !d.footerSlot() {
		if d.Fixed() {
			css["bottom"] = strconv.Itoa(footer.Offset)
		} else {
			css["bottom"] = strconv.Itoa(footer.Size)
		}
	}

	return css
}

// Presentation derives the current render state.
func (d *Drawer) Presentation() Presentation {
	mobile := d.MobileView()

	classes := []string{ClassDrawer, ClassTransition, "layout-drawer-" + string(d.side), ClassScroll}
	classes = append(classes, d.contentClass...)
	if mobile {
		classes = append(classes, d.belowClasses()...)
	} else {
		classes = append(classes, d.aboveClasses()...)
	}
	if d.noTransition {
		classes = append(classes, ClassNoTransition)
	}
	if d.delimiter {
		classes = append(classes, ClassDelimiter)
	}

	style := make(map[string]string, len(d.contentStyle)+2)
	for k, v := range d.contentStyle {
		style[k] = v
	}
	if !mobile {
		for k, v := range d.aboveStyle() {
			style[k] = v
		}
	}

	return Presentation{
		Side:                d.side,
		MobileView:          mobile,
		Showing:             d.Showing(),
		Classes:             dedupe(classes),
		Style:               style,
		Size:                d.size,
		Position:            d.position,
		ScrollTop:           d.scrollTop,
		Backdrop:            mobile,
		BackdropOpacity:     d.backdrop,
		BackdropInteractive: d.Showing(),
		Opener:              mobile && !d.noSwipeOpen,
	}
}

// HasClass reports whether the presentation carries class.
func (p Presentation) HasClass(class string) bool {
	for _, c := range p.Classes {
		if c == class {
			return true
		}
	}
	return false
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
