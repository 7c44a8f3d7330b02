package dubstep

import (
	"errors"
	"time"
)

// Hooks are optional callbacks fired around transitions and playback changes.
// A trigger called from a hook is queued and runs once the current transition
// has finished.
type Hooks struct {
	OnNext     func()
	OnPrevious func()
	OnPlay     func()
	OnPause    func()

	OnBeforeChange func(step int) // receives the step before the transition
	OnChange       func(step int) // receives the step after the transition
	OnAfterChange  func(step int)
}

// Config is fixed for the lifetime of a Controller.
// Non-positive Total, Duration and AnimationSpeed mean "not configured".
type Config struct {
	Total          int
	Cycle          bool
	Duration       time.Duration // interval between autonomous advances
	AutoPlay       bool
	AnimationSpeed time.Duration // how long Animating stays true after a step change

	Hooks Hooks
}

// Validate checks option dependencies. Every violation is reported.
func (c Config) Validate() error {
	var errs []error
	if c.Cycle && c.Total <= 0 {
		errs = append(errs, &ConfigurationError{Option: "cycle", Err: ErrCycleRequiresTotal})
	}
	if c.AutoPlay && c.Duration <= 0 {
		errs = append(errs, &ConfigurationError{Option: "autoPlay", Err: ErrAutoPlayRequiresDuration})
	}
	return errors.Join(errs...)
}

func (c Config) playable() bool {
	return c.Duration > 0
}

func (c Config) animated() bool {
	return c.AnimationSpeed > 0
}

// wrap applies the cycle policy to a target step
func (c Config) wrap(target int) int {
	if !c.Cycle {
		return target
	}
	r := target % c.Total
	if r < 0 {
		r += c.Total
	}
	return r
}
