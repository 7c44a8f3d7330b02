package dubstep

import (
	"log/slog"
	"sync"
)

// Controller owns a step cursor, its autoplay timer and the animating flag.
//
// Triggers and timer callbacks run to completion one at a time. A trigger
// that arrives while another is being dispatched, including one fired from a
// hook or the renderer, is queued and runs after the current one finishes.
type Controller[T any] struct {
	cfg      Config
	renderer Renderer[T]
	actions  Actions
	logger   *slog.Logger

	scheduler      Scheduler
	ownedScheduler *TimerScheduler // set when no scheduler was supplied

	mu          sync.Mutex
	state       State
	output      T
	mounted     bool
	tornDown    bool
	dispatching bool
	queue       []func()

	playArmed bool
	playTimer Handle
	playGen   uint64

	animArmed bool
	animTimer Handle
	animGen   uint64
}

type options struct {
	logger    *slog.Logger
	scheduler Scheduler
}

// Option is a functional option for configuring a Controller
type Option func(*options)

// WithLogger sets the logger for the controller
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithScheduler replaces the wall-clock scheduler. The controller cancels its
// own timers on Teardown but never stops a supplied scheduler.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// New validates cfg and creates a Controller. A nil renderer is allowed for
// headless use.
func New[T any](cfg Config, renderer Renderer[T], opts ...Option) (*Controller[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{logger: Logger}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller[T]{
		cfg:       cfg,
		renderer:  renderer,
		logger:    o.logger,
		scheduler: o.scheduler,
		state:     State{Paused: !cfg.AutoPlay},
	}
	if c.scheduler == nil {
		c.ownedScheduler = NewTimerScheduler(o.logger)
		c.scheduler = c.ownedScheduler
	}
	c.actions = Actions{
		Next:      c.Next,
		Previous:  c.Previous,
		StepIndex: c.StepIndex,
		Play:      c.Play,
		Pause:     c.Pause,
	}

	return c, nil
}

// Mount starts autoplay when configured and renders the initial state.
// Hosts call it exactly once, before Teardown.
func (c *Controller[T]) Mount() {
	c.mu.Lock()
	tornDown := c.tornDown
	c.mu.Unlock()
	if tornDown {
		c.logger.Warn("ignoring mount after teardown")
		return
	}

	c.dispatch(func() {
		c.mu.Lock()
		if c.mounted || c.tornDown {
			c.mu.Unlock()
			c.logger.Warn("ignoring repeated mount")
			return
		}
		c.mounted = true
		c.mu.Unlock()
		c.logger.Debug("mounted", "autoplay", c.cfg.AutoPlay)

		if c.cfg.AutoPlay {
			c.startPlaying()
		}
		c.render()
	})
}

// Teardown cancels every outstanding timer and drops queued triggers.
// Afterwards triggers and timer callbacks have no effect. It never waits for
// a dispatch in progress, so it is safe to call from a hook.
func (c *Controller[T]) Teardown() {
	c.mu.Lock()
	if c.tornDown {
		c.mu.Unlock()
		return
	}
	wasPlaying := c.playArmed
	c.tornDown = true
	c.state.Paused = true
	c.queue = nil

	c.cancelPlayTimer()
	c.cancelAnimTimer()
	if c.ownedScheduler != nil {
		c.ownedScheduler.Stop()
	}
	step := c.state.Step
	c.mu.Unlock()

	if wasPlaying {
		call(c.cfg.Hooks.OnPause)
	}
	c.logger.Debug("torn down", "step", step)
}

// Snapshot returns the current state
func (c *Controller[T]) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Output returns what the renderer produced last
func (c *Controller[T]) Output() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.output
}

// Props returns the current state together with the bound triggers
func (c *Controller[T]) Props() Props {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.props()
}

func (c *Controller[T]) props() Props {
	return Props{State: c.state, Actions: c.actions}
}

// dispatch runs op, or queues it when another op is being dispatched. The
// goroutine that started dispatching drains the queue before returning.
func (c *Controller[T]) dispatch(op func()) {
	c.mu.Lock()
	if c.tornDown {
		c.mu.Unlock()
		return
	}
	c.queue = append(c.queue, op)
	if c.dispatching {
		c.mu.Unlock()
		return
	}
	c.dispatching = true

	drained := false
	// a panicking hook must not leave the controller stuck in dispatch
	defer func() {
		if !drained {
			c.mu.Lock()
			c.dispatching = false
			c.queue = nil
			c.mu.Unlock()
		}
	}()

	for len(c.queue) > 0 && !c.tornDown {
		next := c.queue[0]
		c.queue[0] = nil
		c.queue = c.queue[1:]
		c.mu.Unlock()

		next()

		c.mu.Lock()
	}
	c.queue = nil
	c.dispatching = false
	drained = true
	c.mu.Unlock()
}

// live reports whether the controller still accepts mutations.
// Must be called with c.mu held.
func (c *Controller[T]) live() bool {
	return !c.tornDown
}

func (c *Controller[T]) render() {
	if c.renderer == nil {
		return
	}
	c.mu.Lock()
	if !c.live() {
		c.mu.Unlock()
		return
	}
	p := c.props()
	c.mu.Unlock()

	out := c.renderer.Render(p)

	c.mu.Lock()
	if c.live() {
		c.output = out
	}
	c.mu.Unlock()
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

func callStep(fn func(int), step int) {
	if fn != nil {
		fn(step)
	}
}
