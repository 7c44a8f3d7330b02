package dubstep

import (
	"errors"
	"fmt"
)

var (
	// ErrCycleRequiresTotal is reported when Cycle is set without a positive Total
	ErrCycleRequiresTotal = errors.New("cycle requires a positive total")
	// ErrAutoPlayRequiresDuration is reported when AutoPlay is set without a positive Duration
	ErrAutoPlayRequiresDuration = errors.New("autoPlay requires a positive duration")
)

// ConfigurationError is returned at construction when options that depend
// on each other are inconsistent.
type ConfigurationError struct {
	Option string
	Err    error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %v", e.Option, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
