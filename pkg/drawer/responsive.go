package drawer

// isBelowBreakpoint is the responsive rule: mobile behavior always counts as
// below, desktop behavior never does, default compares against the width.
func isBelowBreakpoint(behavior Behavior, breakpoint, width int) bool {
	return behavior == BehaviorMobile ||
		(behavior != BehaviorDesktop && breakpoint >= width)
}

// SetBehavior changes the behavior and re-derives the responsive mode.
// Unknown behaviors are logged and ignored.
func (d *Drawer) SetBehavior(b Behavior) {
	if !b.Valid() {
		d.logger.Printf("drawer: invalid behavior %q ignored", b)
		return
	}
	if d.behavior == b {
		return
	}
	d.batch(func() {
		d.behavior = b
		d.recomputeBreakpoint()
	})
}

// SetBreakpoint changes the breakpoint and re-derives the responsive mode.
func (d *Drawer) SetBreakpoint(breakpoint int) {
	if d.breakpoint == breakpoint {
		return
	}
	d.batch(func() {
		d.breakpoint = breakpoint
		d.recomputeBreakpoint()
	})
}

// SetBelowBreakpoint forces the responsive mode. It goes through the same
// reconciliation as a width or breakpoint change.
func (d *Drawer) SetBelowBreakpoint(below bool) {
	d.batch(func() { d.setBelowBreakpoint(below) })
}

func (d *Drawer) recomputeBreakpoint() {
	d.setBelowBreakpoint(isBelowBreakpoint(d.behavior, d.breakpoint, d.layout.Width()))
}

func (d *Drawer) setBelowBreakpoint(below bool) {
	if d.belowBreakpoint == below {
		return
	}
	d.belowBreakpoint = below
	d.reconcileBreakpoint(below)
}

// reconcileBreakpoint is the single side-effecting reaction to a change of
// responsive mode. A drawer open as a mobile overlay is left alone.
func (d *Drawer) reconcileBreakpoint(below bool) {
	if d.mobileOpened {
		return
	}
	if below {
		if !d.overlay {
			d.largeScreenState = d.toggle.Showing()
		}
		d.toggle.Hide()
		return
	}
	if !d.overlay {
		if d.largeScreenState {
			d.toggle.Show()
		} else {
			d.toggle.Hide()
		}
	}
}
