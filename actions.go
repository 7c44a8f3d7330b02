package dubstep

// Actions are the triggers handed to a Renderer
type Actions struct {
	Next      func()
	Previous  func()
	StepIndex func(step int)
	Play      func()
	Pause     func()
}

// Props is everything a Renderer receives: the current state plus triggers
type Props struct {
	State
	Actions
}

// Renderer turns Props into presentation output. The controller never
// inspects the output. Actions called from Render are queued behind the
// current dispatch.
type Renderer[T any] interface {
	Render(p Props) T
}

// RenderFunc adapts an ordinary function to a Renderer
type RenderFunc[T any] func(p Props) T

// Render calls f(p)
func (f RenderFunc[T]) Render(p Props) T {
	return f(p)
}
