package drawer

// sync publishes derived state after a batch. Offset changes go straight to
// the coordinator; a change of layout participation also starts a
// layout-wide animation because every sibling's geometry moves.
func (d *Drawer) sync() {
	if mv := d.MobileView(); mv != d.lastMobileView {
		d.lastMobileView = mv
		if !mv {
			// backdrop and swipe targets only exist in mobile view
			d.backdrop = 0
			d.noTransition = false
			d.cancelGestures()
		}
	}

	if off := d.Offset(); off != d.lastOffset {
		d.lastOffset = off
		d.layout.SetOffset(d.region(), off)
	}

	if on := d.OnLayout(); on != d.lastOnLayout {
		d.lastOnLayout = on
		d.layout.SetSpace(d.region(), on)
		d.layout.Animate()
	}
}

// Resize reports the measured width of the drawer's content. The size is
// written both to the coordinator, for siblings, and locally, for the
// drawer's own position math.
func (d *Drawer) Resize(width int) {
	if width < 0 {
		width = 0
	}
	d.batch(func() {
		d.layout.SetSize(d.region(), width)
		if d.size != width {
			d.size = width
			d.schedulePosition()
		}
	})
}

// RouteChanged closes a drawer that covers the page, unless configured to
// survive navigation.
func (d *Drawer) RouteChanged() {
	if d.noHideOnRouteChange {
		return
	}
	if d.mobileOpened || d.OnScreenOverlay() {
		d.Hide()
	}
}
