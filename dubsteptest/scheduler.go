// Package dubsteptest provides a virtual-clock Scheduler and a hook Recorder
// for testing code built on dubstep.Controller.
package dubsteptest

import (
	"sync"
	"time"

	"github.com/librescoot/dubstep"
)

type timer struct {
	due      time.Duration
	interval time.Duration
	repeat   bool
	fn       func()
}

// Scheduler is a dubstep.Scheduler driven by Advance instead of the wall
// clock. Callbacks run synchronously on the goroutine calling Advance.
type Scheduler struct {
	mu     sync.Mutex
	now    time.Duration
	next   dubstep.Handle
	timers map[dubstep.Handle]*timer
}

// NewScheduler creates a Scheduler with its clock at zero
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[dubstep.Handle]*timer)}
}

// ScheduleOnce arms fn to run once delay from now
func (s *Scheduler) ScheduleOnce(delay time.Duration, fn func()) dubstep.Handle {
	return s.schedule(delay, false, fn)
}

// ScheduleRepeating arms fn to run every interval. Non-positive intervals are
// refused and return the zero handle.
func (s *Scheduler) ScheduleRepeating(interval time.Duration, fn func()) dubstep.Handle {
	if interval <= 0 {
		return 0
	}
	return s.schedule(interval, true, fn)
}

func (s *Scheduler) schedule(d time.Duration, repeat bool, fn func()) dubstep.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	s.timers[s.next] = &timer{
		due:      s.now + d,
		interval: d,
		repeat:   repeat,
		fn:       fn,
	}
	return s.next
}

// Cancel disarms a timer
func (s *Scheduler) Cancel(h dubstep.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.timers, h)
}

// Advance moves the clock forward by d, firing due timers in order of their
// due time. Ties fire in the order the timers were armed.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		h, t := s.earliest(target)
		if t == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = t.due
		if t.repeat {
			t.due += t.interval
		} else {
			delete(s.timers, h)
		}
		fn := t.fn
		s.mu.Unlock()

		fn()
	}
}

func (s *Scheduler) earliest(limit time.Duration) (dubstep.Handle, *timer) {
	var (
		bestH dubstep.Handle
		best  *timer
	)
	for h, t := range s.timers {
		if t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && h < bestH) {
			bestH, best = h, t
		}
	}
	return bestH, best
}

// Now returns the virtual time elapsed since creation
func (s *Scheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of armed timers
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Active reports whether h is still armed
func (s *Scheduler) Active(h dubstep.Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[h]
	return ok
}
