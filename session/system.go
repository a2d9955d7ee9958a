package session

// System is one step of a simulation tick. Systems run in registration order
// and may keep their own state between ticks.
type System interface {
	Execute(frame *Frame)
}
