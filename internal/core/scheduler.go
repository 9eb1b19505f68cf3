package core

import "time"

// Scheduler runs delayed callbacks against a virtual clock that only moves
// when Advance is called. Lessons own one scheduler each, so dropping a
// lesson drops every callback it had pending.
//
// Callbacks run on the caller's goroutine inside Advance; there is no
// concurrency to guard against, only re-entrancy, which is handled by the
// Timer handles returned from After.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	tasks []*Timer
}

// Timer is a handle to one scheduled callback.
// A nil *Timer is valid and behaves like a stopped timer.
type Timer struct {
	due     time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once d has elapsed on the virtual clock.
// A non-positive d runs fn on the next Advance call.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{due: s.now + d, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Replace stops prev (if still pending) and schedules a new callback.
// This is the supersede pattern for actions that must not overlap.
func (s *Scheduler) Replace(prev *Timer, d time.Duration, fn func()) *Timer {
	prev.Stop()
	return s.After(d, fn)
}

// Advance moves the clock forward by dt, firing due callbacks in order of
// due time, then scheduling order. Callbacks scheduled while advancing fire
// in the same call if they fall due before the new time.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		if next.due > s.now {
			s.now = next.due
		}
		next.fired = true
		next.fn()
	}
	s.now = target
	s.compact()
}

// Pending returns the number of callbacks still waiting to fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}

// StopAll cancels every pending callback.
func (s *Scheduler) StopAll() {
	for _, t := range s.tasks {
		t.Stop()
	}
	s.tasks = nil
}

// nextDue returns the earliest pending timer due at or before limit.
func (s *Scheduler) nextDue(limit time.Duration) *Timer {
	var best *Timer
	for _, t := range s.tasks {
		if !t.Pending() || t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// compact drops timers that can no longer fire.
func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Pending() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Stop cancels the timer. Returns true if the call prevented the callback
// from running.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Pending reports whether the callback has neither fired nor been stopped.
func (t *Timer) Pending() bool {
	return t != nil && !t.stopped && !t.fired
}
