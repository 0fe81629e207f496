package drawer

import "github.com/Dicklesworthstone/layout_drawer/pkg/layout"

// StateDirection is the sign of the hidden position: the drawer slides off
// toward its own edge, mirrored under right-to-left text.
func (d *Drawer) StateDirection() int {
	dir := 1
	if d.layout.RTL() {
		dir = -1
	}
	if d.side == layout.SideRight {
		return dir
	}
	return -dir
}

// Position returns the current horizontal translation of the drawer.
// Zero is fully open; StateDirection()*Size() is fully hidden.
func (d *Drawer) Position() int {
	return d.position
}

// Backdrop returns the backdrop opacity in [0, 1].
func (d *Drawer) Backdrop() float64 {
	return d.backdrop
}

func (d *Drawer) hiddenPosition() int {
	return d.StateDirection() * d.size
}

func (d *Drawer) applyPosition(position int) {
	d.position = position
}

// schedulePosition recomputes the resting position after the current batch,
// once size and showing are final for this update.
func (d *Drawer) schedulePosition() {
	d.sched.NextTick(func() {
		if d.destroyed {
			return
		}
		d.batch(func() {
			if d.toggle.Showing() {
				d.applyPosition(0)
			} else {
				d.applyPosition(d.hiddenPosition())
			}
		})
	})
}

// applyBackdrop sets the backdrop opacity. There is no backdrop outside
// mobile view, so the call is dropped there.
func (d *Drawer) applyBackdrop(opacity float64) {
	if !d.MobileView() {
		return
	}
	d.backdrop = opacity
}

func between(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func betweenf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}
