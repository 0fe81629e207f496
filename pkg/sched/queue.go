package sched

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FlushMsg asks the owning model to run queued next-tick callbacks.
type FlushMsg struct{}

// TimerMsg reports that the timer with the given ID is due.
type TimerMsg struct {
	ID uint64
}

// Queue is a single-threaded Scheduler. Time is virtual: Advance moves it
// forward in tests, while Cmd/Update hand timers to the bubbletea runtime.
type Queue struct {
	ticks       []func()
	timers      map[uint64]*queueTimer
	armed       []*queueTimer // timers not yet handed out by Cmd
	nextID      uint64
	now         time.Duration
	flushQueued bool
}

type queueTimer struct {
	q       *Queue
	id      uint64
	delay   time.Duration
	due     time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *queueTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	delete(t.q.timers, t.id)
	return true
}

// NewQueue creates an empty queue at virtual time zero.
func NewQueue() *Queue {
	return &Queue{timers: make(map[uint64]*queueTimer)}
}

// NextTick implements Scheduler.
func (q *Queue) NextTick(fn func()) {
	q.ticks = append(q.ticks, fn)
}

// After implements Scheduler.
func (q *Queue) After(d time.Duration, fn func()) Timer {
	q.nextID++
	t := &queueTimer{
		q:     q,
		id:    q.nextID,
		delay: d,
		due:   q.now + d,
		fn:    fn,
	}
	q.timers[t.id] = t
	q.armed = append(q.armed, t)
	return t
}

// Flush runs queued next-tick callbacks in FIFO order, including callbacks
// queued while flushing, until the queue is empty.
func (q *Queue) Flush() {
	for len(q.ticks) > 0 {
		fn := q.ticks[0]
		q.ticks = q.ticks[1:]
		fn()
	}
}

// Advance flushes pending ticks, then moves virtual time forward by d,
// firing every timer that falls due in order. Ticks queued by a timer are
// flushed before the next timer fires.
func (q *Queue) Advance(d time.Duration) {
	q.Flush()
	target := q.now + d
	for {
		t := q.nextDue(target)
		if t == nil {
			break
		}
		q.now = t.due
		q.fire(t)
		q.Flush()
	}
	q.now = target
}

// Now returns the current virtual time.
func (q *Queue) Now() time.Duration {
	return q.now
}

// PendingTicks returns the number of queued next-tick callbacks.
func (q *Queue) PendingTicks() int {
	return len(q.ticks)
}

// PendingTimers returns the number of timers that have neither fired nor
// been stopped.
func (q *Queue) PendingTimers() int {
	return len(q.timers)
}

func (q *Queue) nextDue(limit time.Duration) *queueTimer {
	var next *queueTimer
	for _, t := range q.timers {
		if t.due > limit {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.id < next.id) {
			next = t
		}
	}
	return next
}

func (q *Queue) fire(t *queueTimer) {
	delete(q.timers, t.id)
	t.fired = true
	t.fn()
}

// Cmd returns the bubbletea commands needed to drive the queue: one FlushMsg
// when ticks are waiting and one tea.Tick per timer armed since the last call.
// It returns nil when there is nothing to do.
func (q *Queue) Cmd() tea.Cmd {
	var cmds []tea.Cmd
	if len(q.ticks) > 0 && !q.flushQueued {
		q.flushQueued = true
		cmds = append(cmds, func() tea.Msg { return FlushMsg{} })
	}
	for _, t := range q.armed {
		if t.stopped || t.fired {
			continue
		}
		id := t.id
		cmds = append(cmds, tea.Tick(t.delay, func(time.Time) tea.Msg {
			return TimerMsg{ID: id}
		}))
	}
	q.armed = q.armed[:0]
	return tea.Batch(cmds...)
}

// Update consumes FlushMsg and TimerMsg. It reports whether msg belonged to
// the queue. Ticks queued by a firing timer stay queued for the next Cmd.
func (q *Queue) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case FlushMsg:
		q.flushQueued = false
		q.Flush()
		return true
	case TimerMsg:
		if t, ok := q.timers[msg.ID]; ok {
			if t.due > q.now {
				q.now = t.due
			}
			q.fire(t)
		}
		return true
	}
	return false
}
