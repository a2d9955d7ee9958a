package main

import (
	"fmt"
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/pillars/session"
	"github.com/plus3/pillars/well"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{24, 24, 32, 255}
	wellColor       = color.RGBA{128, 128, 128, 255}
	titleColor      = color.RGBA{255, 255, 0, 255}
	buttonColor     = color.RGBA{220, 20, 60, 255}
)

var gemColors = [well.NumGemTypes]color.RGBA{
	well.Red:    {255, 0, 0, 255},
	well.Pink:   {255, 20, 147, 255},
	well.Blue:   {0, 0, 255, 255},
	well.Green:  {0, 255, 0, 255},
	well.Yellow: {255, 255, 0, 255},
	well.Orange: {255, 165, 0, 255},
}

// Sprite is the visual bound to one gem identity
type Sprite struct {
	Color color.RGBA
}

func NewSprite(t well.GemType) Sprite {
	return Sprite{Color: gemColors[t]}
}

// wellOrigin returns the screen position of the well's bottom-left corner.
// Well coordinates grow upwards from there.
func wellOrigin(w *well.Well) (float32, float32) {
	cell := float32(w.Layout().CellSize)
	width := cell * float32(w.Columns())
	height := cell * float32(w.Rows())
	left := (ScreenWidth - width) / 2
	top := (ScreenHeight - height) / 2
	return left, top + height
}

func (g *Game) drawWell(screen *ebiten.Image) {
	w := g.session.Well()
	if w == nil {
		return
	}

	layout := w.Layout()
	cell := float32(layout.CellSize)
	left, floor := wellOrigin(w)

	vector.DrawFilledRect(screen, left, floor-cell*float32(w.Rows()), cell*float32(w.Columns()), cell*float32(w.Rows()), wellColor, false)

	drawGem := func(id well.GemId, x, y float64) {
		sprite, ok := g.sprites[id]
		if !ok {
			return
		}
		sx := left + float32(x-layout.OriginX)
		sy := floor - float32(y-layout.OriginY) - cell
		vector.DrawFilledRect(screen, sx+1, sy+1, cell-2, cell-2, sprite.Color, false)
	}

	for _, sg := range w.Settled() {
		x, y := layout.CellOrigin(sg.Row, sg.Col)
		drawGem(sg.Id, x, y)
	}
	for _, offset := range w.PieceOffsets() {
		drawGem(offset.Id, offset.X, offset.Y)
	}

	status := fmt.Sprintf("Landings: %d", w.Landings())
	text.Draw(screen, status, basicfont.Face7x13, int(left), int(floor)+20, color.White)
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	const title = "PILLARS"
	face := basicfont.Face7x13

	if g.titleImage == nil {
		g.titleImage = ebiten.NewImage(len(title)*face.Advance, face.Height)
		text.Draw(g.titleImage, title, face, 0, face.Ascent, titleColor)
	}

	const scale = 6
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(ScreenWidth-len(title)*face.Advance*scale)/2, ScreenHeight/2-120)
	screen.DrawImage(g.titleImage, op)

	button := g.playButton()
	vector.DrawFilledRect(screen, float32(button.Min.X), float32(button.Min.Y), float32(button.Dx()), float32(button.Dy()), buttonColor, false)
	text.Draw(screen, "Play", face, button.Min.X+(button.Dx()-4*face.Advance)/2, button.Min.Y+button.Dy()/2+face.Ascent/2, color.White)

	if played := g.session.Played(); played > 0 {
		text.Draw(screen, fmt.Sprintf("Games played: %d", played), face, button.Min.X, button.Max.Y+30, color.White)
	}
}

func (g *Game) drawGameover(screen *ebiten.Image) {
	const msg = "GAME OVER - press R to play again"
	face := basicfont.Face7x13
	x := (ScreenWidth - len(msg)*face.Advance) / 2
	vector.DrawFilledRect(screen, float32(x-10), ScreenHeight/2-20, float32(len(msg)*face.Advance+20), 30, color.RGBA{0, 0, 0, 200}, false)
	text.Draw(screen, msg, face, x, ScreenHeight/2, color.White)
}

func renderControls(frame *session.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(ScreenWidth-230, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(220, 130), imgui.CondOnce)
	if imgui.BeginV("Controls", nil, imgui.WindowFlagsNone) {
		imgui.BulletText("Enter / click Play: start")
		imgui.BulletText("Backspace: back to title")
		imgui.BulletText("R: restart after game over")
		imgui.BulletText("Esc: quit")
		imgui.Text(fmt.Sprintf("State: %s", frame.Session.State()))
	}
	imgui.End()
}
