package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/pillars/session"
	"github.com/plus3/pillars/session/debugui"
	debugui_ebiten "github.com/plus3/pillars/session/debugui/ebiten"
	"github.com/plus3/pillars/well"
)

// Game implements ebiten.Game on top of a session. It keeps one sprite per
// live gem identity and never touches the well outside the scheduler tick.
type Game struct {
	session   *session.Session
	scheduler *session.Scheduler
	logger    *log.Logger

	sprites map[well.GemId]Sprite
	piece   well.Piece

	overlay *debugui.ImguiSystem
	backend *debugui_ebiten.ImguiBackend

	titleImage *ebiten.Image
}

func NewGame(s *session.Session, logger *log.Logger, debug bool) *Game {
	g := &Game{
		session: s,
		logger:  logger,
		sprites: make(map[well.GemId]Sprite),
	}

	g.scheduler = session.NewScheduler(s, session.DefaultSystems()...)
	if debug {
		g.backend = debugui_ebiten.NewImguiBackend(WindowTitle, ScreenWidth, ScreenHeight)
		g.overlay = debugui.NewImguiSystem(
			debugui.NewWellInspector(),
			debugui.NewSchedulerStats(g.scheduler, 120),
			debugui.PanelFunc(renderControls),
		)
		g.scheduler.Register(g.overlay)
	}

	s.Listen(session.Listener{
		PieceSpawned: g.bindPiece,
		Landed:       g.dropReleased,
		StateChanged: g.stateChanged,
	})

	return g
}

// bindPiece creates sprites for a freshly spawned piece
func (g *Game) bindPiece(piece well.Piece) {
	g.piece = piece
	for _, gem := range piece {
		g.sprites[gem.Id] = NewSprite(gem.Type)
	}
}

// dropReleased forgets the sprites of piece gems that were not committed to
// the board.
func (g *Game) dropReleased(landed []well.SettledGem) {
	for _, gem := range g.piece {
		kept := false
		for _, sg := range landed {
			if sg.Id == gem.Id {
				kept = true
				break
			}
		}
		if !kept {
			delete(g.sprites, gem.Id)
		}
	}
}

func (g *Game) stateChanged(from, to session.State) {
	g.logger.Printf("state %s -> %s", from, to)
	if to == session.Title {
		clear(g.sprites)
		g.piece = well.Piece{}
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.backend == nil {
		g.tick()
		return nil
	}
	g.backend.Frame(g.tick)
	return nil
}

func (g *Game) tick() {
	if g.overlay == nil || !g.overlay.WantCaptureKeyboard {
		g.handleInput()
	}
	g.scheduler.Once(1.0 / 60.0)
}

func (g *Game) handleInput() {
	switch g.session.State() {
	case session.Title:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || g.playClicked() {
			g.logger.Println("play requested")
			g.start()
		}
	case session.Gameplay:
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			g.session.OnSessionEnd()
		}
	case session.Gameover:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.session.OnSessionEnd()
			g.start()
		}
	}
}

func (g *Game) start() {
	if err := g.session.OnSessionStart(); err != nil {
		g.logger.Printf("start failed: %v", err)
	}
}

func (g *Game) playClicked() bool {
	if g.overlay != nil && g.overlay.WantCaptureMouse {
		return false
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y).In(g.playButton())
}

func (g *Game) playButton() image.Rectangle {
	const w, h = 160, 48
	x := (ScreenWidth - w) / 2
	y := ScreenHeight/2 + 20
	return image.Rect(x, y, x+w, y+h)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch g.session.State() {
	case session.Title:
		g.drawTitle(screen)
	case session.Gameplay:
		g.drawWell(screen)
	case session.Gameover:
		g.drawWell(screen)
		g.drawGameover(screen)
	}

	if g.backend != nil {
		g.backend.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(ScreenWidth, ScreenHeight)
	}
	return ScreenWidth, ScreenHeight
}
