package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pillars/session"
)

// WellInspector shows the falling piece and the settled board of the
// current session's well.
type WellInspector struct {
	showSettled bool
}

func NewWellInspector() *WellInspector {
	return &WellInspector{}
}

func (wi *WellInspector) Render(frame *session.Frame) {
	if !imgui.BeginV("Well Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := frame.Session
	imgui.Text(fmt.Sprintf("State: %s", s.State()))
	imgui.Text(fmt.Sprintf("Sessions played: %d", s.Played()))

	w := s.Well()
	if w == nil {
		imgui.Text("No well (not in a session)")
		imgui.End()
		return
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Grid: %d x %d", w.Columns(), w.Rows()))
	imgui.Text(fmt.Sprintf("Piece: row %d, column %d", w.PieceRow(), w.PieceCol()))
	imgui.Text(fmt.Sprintf("Progress: %.3f (%.1f rows/s)", w.Progress(), w.Speed()))
	imgui.Text(fmt.Sprintf("Can descend: %v", w.CanDescend()))
	imgui.Text(fmt.Sprintf("Landings: %d, settled: %d", w.Landings(), w.SettledCount()))
	if w.ToppedOut() {
		imgui.Text("Topped out")
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.TreeNodeStr("Falling Piece") {
		if imgui.BeginTableV("PieceTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Index")
			imgui.TableSetupColumn("Gem ID")
			imgui.TableSetupColumn("Generation")
			imgui.TableSetupColumn("Type")
			imgui.TableHeadersRow()

			for i, gem := range w.Piece() {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", i))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%X", uint64(gem.Id)))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", gem.Id.Generation()))
				imgui.TableNextColumn()
				imgui.Text(gem.Type.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.Checkbox("Show settled cells", &wi.showSettled)
	if wi.showSettled {
		if imgui.BeginTableV("SettledTable", 4, tableFlags|imgui.TableFlagsScrollY, imgui.NewVec2(0, 200), 0) {
			imgui.TableSetupColumn("Row")
			imgui.TableSetupColumn("Column")
			imgui.TableSetupColumn("Type")
			imgui.TableSetupColumn("Gem ID")
			imgui.TableHeadersRow()

			for _, sg := range w.Settled() {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sg.Row))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sg.Col))
				imgui.TableNextColumn()
				imgui.Text(sg.Type.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%X", uint64(sg.Id)))
			}

			imgui.EndTable()
		}
	}

	imgui.End()
}
