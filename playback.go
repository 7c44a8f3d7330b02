package dubstep

// Play starts autonomous advancement every Duration. No-op without a
// Duration or while already playing.
func (c *Controller[T]) Play() {
	c.dispatch(func() {
		if c.startPlaying() {
			c.render()
		}
	})
}

// Pause stops autonomous advancement
func (c *Controller[T]) Pause() {
	c.dispatch(func() {
		if c.stopPlaying() {
			c.render()
		}
	})
}

// Playing reports whether the autoplay timer is armed
func (c *Controller[T]) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playArmed
}

func (c *Controller[T]) startPlaying() bool {
	if !c.cfg.playable() {
		c.logger.Debug("play ignored, no duration configured")
		return false
	}

	c.mu.Lock()
	if !c.live() || c.playArmed {
		c.mu.Unlock()
		return false
	}
	c.state.Paused = false
	c.mu.Unlock()

	call(c.cfg.Hooks.OnPlay)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.live() {
		return true
	}
	c.playGen++
	gen := c.playGen
	c.playTimer = c.scheduler.ScheduleRepeating(c.cfg.Duration, func() { c.tick(gen) })
	c.playArmed = true
	c.logger.Debug("playing", "duration", c.cfg.Duration)
	return true
}

func (c *Controller[T]) stopPlaying() bool {
	c.mu.Lock()
	if !c.live() || (!c.playArmed && c.state.Paused) {
		c.mu.Unlock()
		return false
	}
	c.state.Paused = true
	c.cancelPlayTimer()
	step := c.state.Step
	c.mu.Unlock()

	call(c.cfg.Hooks.OnPause)
	c.logger.Debug("paused", "step", step)
	return true
}

// cancelPlayTimer must be called with c.mu held
func (c *Controller[T]) cancelPlayTimer() {
	if !c.playArmed {
		return
	}
	c.playArmed = false
	c.playGen++
	c.scheduler.Cancel(c.playTimer)
}

// tick is the autoplay timer callback. Stale generations are dropped so a
// callback racing with Pause or Teardown never mutates state.
func (c *Controller[T]) tick(gen uint64) {
	c.dispatch(func() {
		c.mu.Lock()
		stale := !c.live() || !c.playArmed || gen != c.playGen
		c.mu.Unlock()
		if stale {
			c.logger.Debug("dropping stale autoplay tick", "gen", gen)
			return
		}
		c.transition(KindNext, 0)
	})
}
