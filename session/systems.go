package session

// GravitySystem advances the well by the frame's delta time while a game is
// being played, and reports landings and newly spawned pieces.
type GravitySystem struct {
	Ticks int64
}

func (g *GravitySystem) Execute(frame *Frame) {
	if frame.Session.State() != Gameplay {
		return
	}
	w := frame.Well()

	before := w.Landings()
	w.Advance(frame.DeltaTime)
	g.Ticks++

	if w.Landings() == before {
		return
	}

	landed := w.LastLanding()
	piece := w.Piece()
	session := frame.Session
	frame.Commands.Defer(func() {
		session.notifyLanded(landed)
		session.notifySpawn(piece)
	})
}

// TopOutSystem ends play once a landing has left gems above the grid
type TopOutSystem struct{}

func (TopOutSystem) Execute(frame *Frame) {
	if frame.Session.State() != Gameplay {
		return
	}
	if frame.Well().ToppedOut() {
		frame.Commands.Transition(Gameover)
	}
}

// DefaultSystems returns the systems a session needs to play, in order
func DefaultSystems() []System {
	return []System{
		&GravitySystem{},
		TopOutSystem{},
	}
}
