package drawer

func (d *Drawer) onShow() {
	d.layout.Animate()
	d.applyPosition(0)

	if other := d.layout.Instance(d.side.Opposite()); other != nil && other.MobileOpened() {
		other.Hide()
	}

	if d.belowBreakpoint {
		d.mobileOpened = true
		d.applyBackdrop(1)
	} else {
		d.layout.Body().Add(BodyScrollClass)
	}

	d.timer.Schedule(TransitionDuration, func() {
		d.batch(func() {
			p := d.toggle.ShowPending()
			if p == nil {
				return
			}
			p.Then(func() {
				d.layout.Body().Remove(BodyScrollClass)
			})
			d.toggle.ResolveShow()
		})
	})
}

func (d *Drawer) onHide() {
	d.layout.Animate()
	d.timer.Cancel()

	d.mobileOpened = false
	d.delimiter = false
	d.applyPosition(d.hiddenPosition())
	d.applyBackdrop(0)

	d.layout.Body().Remove(BodyScrollClass)

	d.timer.Schedule(TransitionDuration, func() {
		d.batch(func() {
			if d.toggle.HidePending() != nil {
				d.toggle.ResolveHide()
			}
		})
	})
}

// Transitioning reports whether a show or hide transition is still running.
func (d *Drawer) Transitioning() bool {
	return d.timer.Pending()
}
