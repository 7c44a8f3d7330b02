package dubstep

import "log/slog"

// Kind classifies a step transition
type Kind int

const (
	// KindNext advances the step by one
	KindNext Kind = iota
	// KindPrevious moves the step back by one
	KindPrevious
	// KindJump moves the step to an absolute index
	KindJump
)

func (k Kind) String() string {
	switch k {
	case KindNext:
		return "next"
	case KindPrevious:
		return "previous"
	case KindJump:
		return "jump"
	default:
		return "unknown"
	}
}

// State is a snapshot of the controller's mutable state
type State struct {
	Step      int
	Paused    bool
	Animating bool
}

// Logger is the default logger used when none is provided
var Logger = slog.Default()
