// Package gesture turns pointer drags into pan samples. A Pan is bound to a
// target (a hit test), an axis constraint and a callback, and is disposed
// explicitly when its owner goes away.
package gesture

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Axis constrains which movements a Pan reports.
type Axis int

const (
	AxisBoth Axis = iota
	AxisHorizontal
	AxisVertical
)

// Direction is the overall direction of travel since the pan started.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
)

// Vector is a cell position or distance.
type Vector struct {
	X int
	Y int
}

// Sample is one update of a pan in progress.
type Sample struct {
	Position  Vector
	Distance  Vector // absolute distance from the start point, per axis
	Delta     Vector // signed movement since the previous sample
	Direction Direction
	IsFirst   bool
	IsFinal   bool
	Duration  time.Duration
}

// Handler receives samples in arrival order.
type Handler func(Sample)

// HitFunc reports whether a press at x,y lands on the pan's target.
type HitFunc func(x, y int) bool

// Pan recognizes a single-pointer pan on its target. A press must land on
// the target; once started, moves and the release are tracked wherever they
// happen.
type Pan struct {
	hit     HitFunc
	axis    Axis
	handler Handler
	tap     func()
	now     func() time.Time

	active    bool
	detected  bool
	start     Vector
	last      Vector
	startTime time.Time
	disposed  bool
}

// NewPan creates a pan recognizer for the target described by hit.
func NewPan(hit HitFunc, axis Axis, handler Handler) *Pan {
	return &Pan{
		hit:     hit,
		axis:    axis,
		handler: handler,
		now:     time.Now,
	}
}

// OnTap sets a callback for a press and release on the target without any
// recognized pan in between.
func (p *Pan) OnTap(fn func()) {
	p.tap = fn
}

// Active reports whether a press is being tracked.
func (p *Pan) Active() bool {
	return p.active
}

// Down starts tracking when x,y hits the target. It reports whether the
// press was taken.
func (p *Pan) Down(x, y int) bool {
	if p.disposed || p.hit == nil || !p.hit(x, y) {
		return false
	}
	p.active = true
	p.detected = false
	p.start = Vector{X: x, Y: y}
	p.last = p.start
	p.startTime = p.now()
	return true
}

// Move reports a pointer move. The first movement decides whether the pan is
// accepted: a horizontal-only pan that starts mostly vertical (or the other
// way round) is abandoned without emitting anything.
func (p *Pan) Move(x, y int) bool {
	if !p.active {
		return false
	}
	dx, dy := x-p.start.X, y-p.start.Y

	if !p.detected {
		if dx == 0 && dy == 0 {
			return true
		}
		switch p.axis {
		case AxisHorizontal:
			if abs(dy) > abs(dx) {
				p.reset()
				return false
			}
		case AxisVertical:
			if abs(dx) > abs(dy) {
				p.reset()
				return false
			}
		}
		p.detected = true
		p.emit(x, y, true, false)
		return true
	}

	p.emit(x, y, false, false)
	return true
}

// Up ends the pan, emitting the final sample if one was recognized, or
// calling the tap callback when the release lands on the target of an
// unmoved press.
func (p *Pan) Up(x, y int) bool {
	if !p.active {
		return false
	}
	switch {
	case p.detected:
		p.emit(x, y, false, true)
	case p.tap != nil && p.hit(x, y):
		p.tap()
	}
	p.reset()
	return true
}

// Cancel drops the pan in progress without a final sample.
func (p *Pan) Cancel() {
	p.reset()
}

// Dispose cancels tracking and detaches the pan from its target for good.
func (p *Pan) Dispose() {
	p.reset()
	p.disposed = true
	p.handler = nil
	p.tap = nil
}

// HandleMouse feeds a bubbletea mouse event into the pan. It reports whether
// the event was consumed.
func (p *Pan) HandleMouse(msg tea.MouseMsg) bool {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		return p.Down(msg.X, msg.Y)
	case tea.MouseActionMotion:
		return p.Move(msg.X, msg.Y)
	case tea.MouseActionRelease:
		return p.Up(msg.X, msg.Y)
	}
	return false
}

func (p *Pan) emit(x, y int, first, final bool) {
	pos := Vector{X: x, Y: y}
	dx, dy := x-p.start.X, y-p.start.Y
	s := Sample{
		Position:  pos,
		Distance:  Vector{X: abs(dx), Y: abs(dy)},
		Delta:     Vector{X: x - p.last.X, Y: y - p.last.Y},
		Direction: p.direction(dx, dy),
		IsFirst:   first,
		IsFinal:   final,
		Duration:  p.now().Sub(p.startTime),
	}
	p.last = pos
	if p.handler != nil {
		p.handler(s)
	}
}

func (p *Pan) direction(dx, dy int) Direction {
	horizontal := p.axis == AxisHorizontal ||
		(p.axis == AxisBoth && abs(dx) >= abs(dy))
	if horizontal {
		if dx < 0 {
			return DirectionLeft
		}
		return DirectionRight
	}
	if dy < 0 {
		return DirectionUp
	}
	return DirectionDown
}

func (p *Pan) reset() {
	p.active = false
	p.detected = false
}

// ZoneHit binds a pan target to a bubblezone zone.
func ZoneHit(m *zone.Manager, id string) HitFunc {
	return func(x, y int) bool {
		if m == nil {
			return false
		}
		z := m.Get(id)
		if z == nil || z.IsZero() {
			return false
		}
		return z.InBounds(tea.MouseMsg{X: x, Y: y})
	}
}

// RectHit is a HitFunc for a fixed rectangle, useful before the first
// render has produced zones.
func RectHit(x, y, w, h int) HitFunc {
	return func(px, py int) bool {
		return px >= x && px < x+w && py >= y && py < y+h
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
