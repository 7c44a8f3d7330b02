package dubstep

// Animating reports whether a transition is in flight
func (c *Controller[T]) Animating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Animating
}

// startAnimating raises the flag and (re)arms the reset timer.
// Must be called with c.mu held.
func (c *Controller[T]) startAnimating() {
	c.state.Animating = true
	c.cancelAnimTimer()

	c.animGen++
	gen := c.animGen
	c.animTimer = c.scheduler.ScheduleOnce(c.cfg.AnimationSpeed, func() { c.stopAnimating(gen) })
	c.animArmed = true
}

// cancelAnimTimer must be called with c.mu held
func (c *Controller[T]) cancelAnimTimer() {
	if !c.animArmed {
		return
	}
	c.animArmed = false
	c.animGen++
	c.scheduler.Cancel(c.animTimer)
}

func (c *Controller[T]) stopAnimating(gen uint64) {
	c.dispatch(func() {
		c.mu.Lock()
		if !c.live() || !c.animArmed || gen != c.animGen {
			c.mu.Unlock()
			return
		}
		c.animArmed = false
		c.state.Animating = false
		c.mu.Unlock()
		c.render()
	})
}
