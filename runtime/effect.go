package runtime

// Effect pairs a setup step with the cleanup it returns. Each Run first
// executes the cleanup from the previous Run, so at most one setup is live
// at a time; Cleanup releases it on unmount. An Effect must not be copied
// after first use.
//
//	func (c *Widget) Render(r runtime.Renderer) *vdom.VNode {
//	    c.effect.Run(func() func() {
//	        return source.Subscribe(c.handle)
//	    })
//	    ...
//	}
//
//	func (c *Widget) OnUnmount() { c.effect.Cleanup() }
type Effect struct {
	cleanup func()
}

// Run releases the previous setup, then runs setup and keeps its cleanup.
// A nil setup (or a setup returning nil) leaves the effect inactive.
func (e *Effect) Run(setup func() (cleanup func())) {
	e.Cleanup()
	if setup != nil {
		e.cleanup = setup()
	}
}

// Cleanup releases the live setup, if any. Safe to call repeatedly.
func (e *Effect) Cleanup() {
	if c := e.cleanup; c != nil {
		e.cleanup = nil
		c()
	}
}

// Active reports whether a setup is currently live.
func (e *Effect) Active() bool {
	return e.cleanup != nil
}
