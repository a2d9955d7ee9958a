package session

// Commands buffers work that must wait until every system has run for the
// tick: listener callbacks and state transitions. This keeps the session
// state stable while systems execute.
type Commands struct {
	defers      []func()
	transitions []State
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues a function to run after the tick's systems
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Transition queues a change of session state
func (c *Commands) Transition(to State) {
	c.transitions = append(c.transitions, to)
}

// Flush runs deferred functions in order, then applies transitions,
// resetting the buffer state
func (c *Commands) Flush(session *Session) {
	for _, fn := range c.defers {
		fn()
	}

	for _, to := range c.transitions {
		session.transition(to)
	}

	c.defers = c.defers[:0]
	c.transitions = c.transitions[:0]
}
