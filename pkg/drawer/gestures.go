package drawer

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/layout_drawer/pkg/gesture"
)

// Targets are the hit areas the renderer exposes for a drawer.
type Targets struct {
	// Opener is the edge strip used to swipe a closed drawer open.
	Opener gesture.HitFunc
	// Backdrop covers the page behind a mobile drawer.
	Backdrop gesture.HitFunc
	// Content is the drawer panel itself.
	Content gesture.HitFunc
}

// BindGestures attaches horizontal pan recognizers to the given targets,
// replacing any previous binding.
func (d *Drawer) BindGestures(t Targets) {
	d.disposeGestures()

	if t.Content != nil {
		d.contentPan = gesture.NewPan(t.Content, gesture.AxisHorizontal, d.CloseByTouch)
	}
	if t.Opener != nil {
		d.openerPan = gesture.NewPan(t.Opener, gesture.AxisHorizontal, d.OpenByTouch)
	}
	if t.Backdrop != nil {
		d.backdropPan = gesture.NewPan(t.Backdrop, gesture.AxisHorizontal, d.CloseByTouch)
		d.backdropPan.OnTap(func() { d.Hide() })
	}
	d.contentHit = t.Content
}

// HandleMouse routes a mouse event to the drawer. Wheel events over the
// content scroll it; everything else only matters in mobile view, where
// the panel, the opener strip and the backdrop accept swipes. It reports
// whether the event was consumed.
func (d *Drawer) HandleMouse(msg tea.MouseMsg) bool {
	if d.destroyed {
		return false
	}

	if msg.Action == tea.MouseActionPress && d.contentHit != nil && d.contentHit(msg.X, msg.Y) {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return d.Scroll(-1)
		case tea.MouseButtonWheelDown:
			return d.Scroll(1)
		}
	}

	if !d.MobileView() {
		return false
	}
	for _, p := range d.activeGestures() {
		if p.HandleMouse(msg) {
			return true
		}
	}
	return false
}

// Scroll moves the content of a fixed drawer by delta rows. Drawers in
// layout flow scroll with the page, so the call is not consumed.
func (d *Drawer) Scroll(delta int) bool {
	if !d.Fixed() {
		return false
	}
	d.scrollTop = max(0, d.scrollTop+delta)
	return true
}

// ScrollTop returns the content scroll offset.
func (d *Drawer) ScrollTop() int {
	return d.scrollTop
}

// activeGestures lists the pans live in the current state, panel first so
// it wins over the opener and backdrop beneath it. A hidden panel is
// off-screen and takes nothing.
func (d *Drawer) activeGestures() []*gesture.Pan {
	var pans []*gesture.Pan
	if d.contentPan != nil && !d.noSwipeClose && d.Showing() {
		pans = append(pans, d.contentPan)
	}
	if d.openerPan != nil && !d.noSwipeOpen && !d.Showing() {
		pans = append(pans, d.openerPan)
	}
	if d.backdropPan != nil && d.Showing() {
		pans = append(pans, d.backdropPan)
	}
	return pans
}

func (d *Drawer) cancelGestures() {
	for _, p := range []*gesture.Pan{d.contentPan, d.openerPan, d.backdropPan} {
		if p != nil {
			p.Cancel()
		}
	}
}

func (d *Drawer) disposeGestures() {
	for _, p := range []*gesture.Pan{d.contentPan, d.openerPan, d.backdropPan} {
		if p != nil {
			p.Dispose()
		}
	}
	d.contentPan, d.openerPan, d.backdropPan = nil, nil, nil
	d.contentHit = nil
}
