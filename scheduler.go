package dubstep

import "time"

// Handle identifies a timer armed through a Scheduler. Its value is only
// meaningful to the Scheduler that returned it.
type Handle uint64

// Scheduler arms and cancels timers on behalf of a Controller.
//
// Callbacks may run on any goroutine. Cancel prevents callbacks that have not
// been handed off yet; one already on its way may still run once, so callers
// must recognize and drop stale callbacks themselves.
type Scheduler interface {
	// ScheduleRepeating runs fn every interval until cancelled
	ScheduleRepeating(interval time.Duration, fn func()) Handle
	// ScheduleOnce runs fn once after delay unless cancelled first
	ScheduleOnce(delay time.Duration, fn func()) Handle
	// Cancel stops a timer. No-op for unknown or already fired handles.
	Cancel(h Handle)
}
