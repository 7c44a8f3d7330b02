package dubstep

// Next advances one step
func (c *Controller[T]) Next() {
	c.dispatch(func() { c.transition(KindNext, 0) })
}

// Previous goes back one step
func (c *Controller[T]) Previous() {
	c.dispatch(func() { c.transition(KindPrevious, 0) })
}

// StepIndex jumps to step. With Cycle set the index is wrapped into [0, Total).
func (c *Controller[T]) StepIndex(step int) {
	c.dispatch(func() { c.transition(KindJump, step) })
}

func (c *Controller[T]) transition(kind Kind, index int) {
	if c.changeStep(kind, index) {
		c.render()
	}
}

// changeStep moves the cursor and fires the change hooks in order. It runs
// inside dispatch, so no other trigger interleaves with it.
func (c *Controller[T]) changeStep(kind Kind, index int) bool {
	c.mu.Lock()
	if !c.live() {
		c.mu.Unlock()
		return false
	}
	prev := c.state.Step
	c.mu.Unlock()

	target := index
	switch kind {
	case KindNext:
		target = prev + 1
	case KindPrevious:
		target = prev - 1
	}
	next := c.cfg.wrap(target)

	h := c.cfg.Hooks
	callStep(h.OnBeforeChange, prev)

	c.mu.Lock()
	if !c.live() {
		c.mu.Unlock()
		return false
	}
	c.state.Step = next
	if c.cfg.animated() {
		c.startAnimating()
	}
	c.mu.Unlock()
	c.logger.Debug("step changed", "kind", kind, "from", prev, "to", next)

	switch kind {
	case KindNext:
		call(h.OnNext)
	case KindPrevious:
		call(h.OnPrevious)
	}
	callStep(h.OnChange, next)
	callStep(h.OnAfterChange, next)
	return true
}
