// Package sched provides the cooperative scheduling primitives used by the
// layout components: a next-tick queue whose callbacks run after the current
// update batch, and timers that stand in for transition completion.
//
// Nothing here runs in parallel. In the terminal UI both kinds of callback
// are delivered as bubbletea messages and executed inside Update; in tests
// they are driven by hand with Flush and Advance.
package sched

import "time"

// Scheduler defers work without blocking the caller.
type Scheduler interface {
	// NextTick queues fn to run once the current update batch has been applied.
	NextTick(fn func())
	// After runs fn once d has elapsed, unless the returned Timer is stopped first.
	After(d time.Duration, fn func()) Timer
}

// Timer is a pending After callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer, false if it already fired or was stopped.
	Stop() bool
}
