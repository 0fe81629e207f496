package layout

import (
	"testing"
	"time"

	"github.com/Dicklesworthstone/layout_drawer/pkg/sched"
	"github.com/Dicklesworthstone/layout_drawer/pkg/toggle"
)

type fakeInstance struct {
	mobileOpened bool
	hidden       int
}

func (f *fakeInstance) MobileOpened() bool { return f.mobileOpened }

func (f *fakeInstance) Hide() *toggle.Pending {
	f.hidden++
	return toggle.Resolved()
}

func TestSetRegionIsCompareAndSet(t *testing.T) {
	c := New(sched.NewQueue())
	var events []Event
	c.Subscribe(func(e Event) { events = append(events, e) })

	if !c.SetOffset(RegionLeft, 300) {
		t.Error("Expected first write to report a change")
	}
	if c.SetOffset(RegionLeft, 300) {
		t.Error("Expected identical write to be skipped")
	}
	if !c.SetSpace(RegionLeft, true) {
		t.Error("Expected space write to report a change")
	}
	if c.Writes() != 2 {
		t.Errorf("Expected 2 writes, got %d", c.Writes())
	}
	if len(events) != 2 || events[0].Region != RegionLeft {
		t.Errorf("Expected 2 region events for left, got %v", events)
	}

	got := c.Region(RegionLeft)
	if got.Offset != 300 || !got.Space {
		t.Errorf("Unexpected left region %+v", got)
	}
}

func TestSetWidthNotifiesOnlyOnChange(t *testing.T) {
	c := New(sched.NewQueue())
	count := 0
	cancel := c.Subscribe(func(e Event) {
		if e.Kind == EventWidth {
			count++
		}
	})

	c.SetWidth(1200)
	c.SetWidth(1200)
	if count != 1 {
		t.Errorf("Expected 1 width event, got %d", count)
	}

	cancel()
	c.SetWidth(600)
	if count != 1 {
		t.Errorf("Expected no events after unsubscribe, got %d", count)
	}
	if c.Width() != 600 {
		t.Errorf("Expected width 600, got %d", c.Width())
	}
}

func TestRegistryGuardsStaleUnregister(t *testing.T) {
	c := New(sched.NewQueue())
	first := &fakeInstance{}
	second := &fakeInstance{}

	c.Register(SideLeft, first)
	c.Register(SideLeft, second)

	if c.Unregister(SideLeft, first) {
		t.Error("Stale instance must not clear the registration")
	}
	if c.Instance(SideLeft) != second {
		t.Error("Expected second instance to stay registered")
	}
	if !c.Unregister(SideLeft, second) {
		t.Error("Expected owner to clear its registration")
	}
	if c.Instance(SideLeft) != nil {
		t.Error("Expected empty registration")
	}
}

func TestAnimateWindow(t *testing.T) {
	q := sched.NewQueue()
	c := New(q)

	c.Animate()
	if !c.Animating() {
		t.Fatal("Expected animate class after Animate")
	}

	q.Advance(100 * time.Millisecond)
	c.Animate()
	q.Advance(100 * time.Millisecond)
	if !c.Animating() {
		t.Error("Expected a second Animate to extend the window")
	}

	q.Advance(50 * time.Millisecond)
	if c.Animating() {
		t.Error("Expected animate class to be removed after the window")
	}
}

func TestSetView(t *testing.T) {
	tests := []struct {
		view    string
		wantErr bool
	}{
		{"hhh lpr fff", false},
		{"hHh lpR fFf", false},
		{"lHh LpR lFf", false},
		{"hhh lpr", true},
		{"xhh lpr fff", true},
		{"", true},
	}

	for _, tt := range tests {
		c := New(sched.NewQueue())
		err := c.SetView(tt.view)
		if (err != nil) != tt.wantErr {
			t.Errorf("SetView(%q) error = %v, wantErr %v", tt.view, err, tt.wantErr)
		}
	}
}

func TestRowsAndFixed(t *testing.T) {
	c := New(sched.NewQueue())
	if err := c.SetView("lHh lpR fFr"); err != nil {
		t.Fatal(err)
	}

	rows := c.Rows()
	if rows.Top != "lhh" || rows.Middle != "lpr" || rows.Bottom != "ffr" {
		t.Errorf("Unexpected rows %+v", rows)
	}
	if !c.Fixed('r') {
		t.Error("Expected right drawer to be fixed")
	}
	if c.Fixed('l') {
		t.Error("Expected left drawer to scroll")
	}
}

func TestPagePaddingAndInsets(t *testing.T) {
	c := New(sched.NewQueue())
	if err := c.SetView("lhh lpr fff"); err != nil {
		t.Fatal(err)
	}
	c.SetSize(RegionHeader, 3)
	c.SetSpace(RegionHeader, true)
	c.SetSize(RegionLeft, 30)
	c.SetSpace(RegionLeft, true)
	c.SetSize(RegionRight, 20)

	p := c.PagePadding()
	if p.Top != 3 || p.Left != 30 || p.Right != 0 || p.Bottom != 0 {
		t.Errorf("Unexpected padding %+v", p)
	}

	in := c.HeaderInsets()
	if in.Left != 30 || in.Right != 0 {
		t.Errorf("Unexpected header insets %+v", in)
	}
	if got := c.FooterInsets(); got.Left != 0 {
		t.Errorf("Expected footer to span the corner, got %+v", got)
	}

	c.SetRTL(true)
	p = c.PagePadding()
	if p.Right != 30 || p.Left != 0 {
		t.Errorf("Expected RTL to mirror drawer padding, got %+v", p)
	}
}

func TestClassList(t *testing.T) {
	l := NewClassList()
	if !l.Add("b") || !l.Add("a") {
		t.Error("Expected new classes to be added")
	}
	if l.Add("a") {
		t.Error("Expected duplicate add to report false")
	}
	got := l.List()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Expected sorted [a b], got %v", got)
	}
	if !l.Remove("a") || l.Remove("a") {
		t.Error("Unexpected Remove results")
	}
	if l.Has("a") || !l.Has("b") {
		t.Error("Unexpected Has results")
	}
}

func TestSideOpposite(t *testing.T) {
	if SideLeft.Opposite() != SideRight || SideRight.Opposite() != SideLeft {
		t.Error("Unexpected Opposite")
	}
	if Side("top").Valid() {
		t.Error("Expected 'top' to be invalid")
	}
}
