package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pillars/session"
	"github.com/plus3/pillars/session/debugui"
	debugui_ebiten "github.com/plus3/pillars/session/debugui/ebiten"
)

// Game implements ebiten.Game and renders the debug panels over the well.
type Game struct {
	session   *session.Session
	scheduler *session.Scheduler
	backend   *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Panels are rendered by deferred commands, so the whole tick runs
	// inside the ImGui frame.
	g.backend.Frame(func() {
		g.scheduler.Once(1.0 / 60.0)
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the well
	// ...

	g.backend.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Pillars Debug", 1280, 720)

	s, err := session.New(session.DefaultConfig())
	if err != nil {
		panic(err)
	}

	scheduler := session.NewScheduler(s, session.DefaultSystems()...)
	scheduler.Register(debugui.NewImguiSystem(
		debugui.NewWellInspector(),
		debugui.NewSchedulerStats(scheduler, 120),
	))

	if err := s.OnSessionStart(); err != nil {
		panic(err)
	}

	game := &Game{
		session:   s,
		scheduler: scheduler,
		backend:   backend,
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
