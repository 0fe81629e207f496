package sched

import "time"

// Slot holds at most one pending timer. Scheduling a new callback cancels the
// previous one, and a callback whose timer was superseded never runs even if
// the scheduler already considered it due.
type Slot struct {
	s     Scheduler
	timer Timer
	seq   uint64
}

// NewSlot creates a Slot backed by s.
func NewSlot(s Scheduler) *Slot {
	return &Slot{s: s}
}

// Schedule replaces any pending callback with fn, due after d.
func (sl *Slot) Schedule(d time.Duration, fn func()) {
	sl.seq++
	seq := sl.seq

	if sl.timer != nil {
		sl.timer.Stop()
	}
	sl.timer = sl.s.After(d, func() {
		if seq != sl.seq {
			return
		}
		sl.timer = nil
		fn()
	})
}

// Cancel drops the pending callback, if any.
func (sl *Slot) Cancel() {
	sl.seq++
	if sl.timer != nil {
		sl.timer.Stop()
		sl.timer = nil
	}
}

// Pending reports whether a callback is waiting to run.
func (sl *Slot) Pending() bool {
	return sl.timer != nil
}
