package session

import "github.com/plus3/pillars/well"

// Frame is what every system sees during one tick
type Frame struct {
	DeltaTime float64
	Session   *Session
	Commands  *Commands
}

func newFrame(dt float64, session *Session) *Frame {
	return &Frame{
		DeltaTime: dt,
		Session:   session,
		Commands:  newCommands(),
	}
}

// Well returns the session's well, or nil outside a session
func (f *Frame) Well() *well.Well {
	return f.Session.Well()
}
