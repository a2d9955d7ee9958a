// Package debugui provides Dear ImGui panels for inspecting a running session.
// Panels are queued by ImguiSystem and rendered after the tick's systems.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pillars/session"
)

// Panel renders one ImGui window
type Panel interface {
	Render(frame *session.Frame)
}

// PanelFunc adapts a plain render function to a Panel.
type PanelFunc func(frame *session.Frame)

func (f PanelFunc) Render(frame *session.Frame) { f(frame) }

// ImguiSystem records Dear ImGui's input capture state and defers every
// panel's render function to the end of the tick.
type ImguiSystem struct {
	Panels []Panel

	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// NewImguiSystem creates an ImguiSystem rendering the given panels in order
func NewImguiSystem(panels ...Panel) *ImguiSystem {
	return &ImguiSystem{Panels: panels}
}

// Execute updates the capture flags and queues every panel's render.
func (i *ImguiSystem) Execute(frame *session.Frame) {
	io := imgui.CurrentIO()
	i.WantCaptureMouse = io.WantCaptureMouse()
	i.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, panel := range i.Panels {
		frame.Commands.Defer(func() {
			panel.Render(frame)
		})
	}
}
