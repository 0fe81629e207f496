package drawer

import (
	"github.com/Dicklesworthstone/layout_drawer/pkg/gesture"
	"github.com/Dicklesworthstone/layout_drawer/pkg/layout"
)

// swipeThreshold is the distance a swipe must cover to commit.
func (d *Drawer) swipeThreshold(width int) int {
	return min(d.threshold, width)
}

// OpenByTouch follows a swipe that pulls a closed drawer in from its edge.
// It only acts below the breakpoint.
func (d *Drawer) OpenByTouch(s gesture.Sample) {
	if !d.belowBreakpoint {
		return
	}
	d.batch(func() { d.openByTouch(s) })
}

func (d *Drawer) openByTouch(s gesture.Sample) {
	width := d.size
	position := between(s.Distance.X, 0, width)
	d.swipe = position

	if s.IsFinal {
		opened := position >= d.swipeThreshold(width)

		d.noTransition = false
		d.layout.Animate()
		d.sched.NextTick(func() {
			if d.destroyed {
				return
			}
			d.batch(func() {
				if opened {
					d.toggle.Show()
					return
				}
				d.applyBackdrop(0)
				d.applyPosition(d.StateDirection() * width)
				d.delimiter = false
			})
		})
		return
	}

	if d.physicalRight() {
		d.applyPosition(max(width-position, 0))
	} else {
		d.applyPosition(min(0, position-width))
	}
	d.applyBackdrop(betweenf(ratio(position, width), 0, 1))

	if s.IsFirst {
		d.noTransition = true
		d.delimiter = true
	}
}

// CloseByTouch follows a swipe that pushes an open mobile drawer back to
// its edge. Movement in the other direction counts as no movement, so a
// final sample in that direction snaps the drawer back open.
func (d *Drawer) CloseByTouch(s gesture.Sample) {
	if !d.mobileOpened {
		return
	}
	d.batch(func() { d.closeByTouch(s) })
}

func (d *Drawer) closeByTouch(s gesture.Sample) {
	width := d.size
	dir := string(s.Direction) == string(d.side)
	if d.layout.RTL() {
		dir = !dir
	}
	position := 0
	if dir {
		position = between(s.Distance.X, 0, width)
	}
	d.swipe = position

	if s.IsFinal {
		opened := abs(position) < d.swipeThreshold(width)

		d.noTransition = false
		d.layout.Animate()
		d.sched.NextTick(func() {
			if d.destroyed {
				return
			}
			d.batch(func() {
				if opened {
					d.applyBackdrop(1)
					d.applyPosition(0)
					return
				}
				d.toggle.Hide()
			})
		})
		return
	}

	d.applyPosition(d.StateDirection() * position)
	d.applyBackdrop(betweenf(1-ratio(position, width), 0, 1))

	if s.IsFirst {
		d.noTransition = true
	}
}

// Swipe reports the swipe in progress: how far it has travelled as a
// fraction of the drawer size, and whether releasing now would commit.
func (d *Drawer) Swipe() (progress float64, commits, active bool) {
	if !d.noTransition {
		return 0, false, false
	}
	return ratio(d.swipe, d.size), d.swipe >= d.swipeThreshold(d.size), true
}

// physicalRight reports whether the drawer sits on the right edge of the
// screen once text direction is applied.
func (d *Drawer) physicalRight() bool {
	right := d.side == layout.SideRight
	if d.layout.RTL() {
		return !right
	}
	return right
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
