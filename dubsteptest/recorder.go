package dubsteptest

import (
	"sync"

	"github.com/librescoot/dubstep"
)

// Hook names recorded by Recorder
const (
	HookNext         = "onNext"
	HookPrevious     = "onPrevious"
	HookPlay         = "onPlay"
	HookPause        = "onPause"
	HookBeforeChange = "onBeforeChange"
	HookChange       = "onChange"
	HookAfterChange  = "onAfterChange"
)

// Call is one recorded hook invocation. Step is zero for hooks without an
// argument.
type Call struct {
	Hook string
	Step int
}

// Recorder collects hook invocations in order
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// Hooks returns a dubstep.Hooks with every hook wired to r
func (r *Recorder) Hooks() dubstep.Hooks {
	return dubstep.Hooks{
		OnNext:         func() { r.add(HookNext, 0) },
		OnPrevious:     func() { r.add(HookPrevious, 0) },
		OnPlay:         func() { r.add(HookPlay, 0) },
		OnPause:        func() { r.add(HookPause, 0) },
		OnBeforeChange: func(step int) { r.add(HookBeforeChange, step) },
		OnChange:       func(step int) { r.add(HookChange, step) },
		OnAfterChange:  func(step int) { r.add(HookAfterChange, step) },
	}
}

func (r *Recorder) add(hook string, step int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Hook: hook, Step: step})
}

// Calls returns a copy of everything recorded so far
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Names returns the recorded hook names in order
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.calls))
	for i, c := range r.calls {
		names[i] = c.Hook
	}
	return names
}

// Count returns how many times hook was called
func (r *Recorder) Count(hook string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Hook == hook {
			n++
		}
	}
	return n
}

// Reset discards recorded calls
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
