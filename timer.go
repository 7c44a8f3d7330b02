package dubstep

import (
	"log/slog"
	"sync"
	"time"
)

// timerEntry tracks a running timer
type timerEntry struct {
	timer    *time.Timer
	interval time.Duration
	repeat   bool
	fn       func()
}

// TimerScheduler is the default Scheduler, backed by time.AfterFunc.
// A callback is released from the handle map before it runs, so a Cancel
// racing with that moment returns while the callback still executes.
type TimerScheduler struct {
	mu     sync.Mutex
	next   Handle
	timers map[Handle]*timerEntry
	logger *slog.Logger
}

// NewTimerScheduler creates a scheduler using wall-clock timers
func NewTimerScheduler(logger *slog.Logger) *TimerScheduler {
	if logger == nil {
		logger = Logger
	}
	return &TimerScheduler{
		timers: make(map[Handle]*timerEntry),
		logger: logger,
	}
}

// ScheduleOnce runs fn once after delay
func (s *TimerScheduler) ScheduleOnce(delay time.Duration, fn func()) Handle {
	return s.schedule(delay, false, fn)
}

// ScheduleRepeating runs fn every interval until cancelled
func (s *TimerScheduler) ScheduleRepeating(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		s.logger.Warn("refusing repeating timer with non-positive interval", "interval", interval)
		return 0
	}
	return s.schedule(interval, true, fn)
}

func (s *TimerScheduler) schedule(d time.Duration, repeat bool, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := s.next
	s.timers[h] = &timerEntry{
		timer:    time.AfterFunc(d, func() { s.fire(h) }),
		interval: d,
		repeat:   repeat,
		fn:       fn,
	}

	s.logger.Debug("timer started", "handle", h, "duration", d, "repeat", repeat)
	return h
}

func (s *TimerScheduler) fire(h Handle) {
	s.mu.Lock()
	// Check timer still exists (wasn't cancelled)
	entry, ok := s.timers[h]
	if !ok {
		s.mu.Unlock()
		return
	}
	if entry.repeat {
		entry.timer = time.AfterFunc(entry.interval, func() { s.fire(h) })
	} else {
		delete(s.timers, h)
	}
	fn := entry.fn
	s.mu.Unlock()

	s.logger.Debug("timer fired", "handle", h)
	fn()
}

// Cancel stops a timer by handle
func (s *TimerScheduler) Cancel(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.timers[h]; ok {
		entry.timer.Stop()
		delete(s.timers, h)
		s.logger.Debug("timer stopped", "handle", h)
	}
}

// Active checks if a timer is still armed
func (s *TimerScheduler) Active(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[h]
	return ok
}

// Len returns the number of armed timers
func (s *TimerScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels all armed timers
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for h, entry := range s.timers {
		entry.timer.Stop()
		s.logger.Debug("timer stopped (cleanup)", "handle", h)
	}
	s.timers = make(map[Handle]*timerEntry)
}
