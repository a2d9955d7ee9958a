package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/pillars/session"
)

// SchedulerStats plots frame times and per-system latency, and lists the
// scheduler's timing table.
type SchedulerStats struct {
	scheduler     *session.Scheduler
	historyFrames int
	frameHistory  []float32
	frameIndex    int

	// per system, in registration order
	latency [][]float32
}

func NewSchedulerStats(scheduler *session.Scheduler, historyFrames int) *SchedulerStats {
	historyFrames = max(historyFrames, 1)
	return &SchedulerStats{
		scheduler:     scheduler,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (ss *SchedulerStats) record(frame *session.Frame, stats *session.SchedulerStats) {
	for len(ss.latency) < len(stats.Systems) {
		ss.latency = append(ss.latency, make([]float32, ss.historyFrames))
	}

	ss.frameHistory[ss.frameIndex] = float32(frame.DeltaTime * 1000.0)
	for i, system := range stats.Systems {
		ss.latency[i][ss.frameIndex] = float32(system.LastDuration.Seconds() * 1000.0)
	}
	ss.frameIndex = (ss.frameIndex + 1) % ss.historyFrames
}

// ordered returns a ring buffer oldest sample first
func (ss *SchedulerStats) ordered(samples []float32) []float32 {
	out := make([]float32, ss.historyFrames)
	copy(out, samples[ss.frameIndex:])
	copy(out[ss.historyFrames-ss.frameIndex:], samples[:ss.frameIndex])
	return out
}

func (ss *SchedulerStats) Render(frame *session.Frame) {
	stats := ss.scheduler.Stats()
	ss.record(frame, stats)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 360), imgui.CondOnce)
	if !imgui.BeginV("Scheduler Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	var avgFrameTime float32
	for _, ft := range ss.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ss.historyFrames)

	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms", avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ss.frameHistory[0], int32(len(ss.frameHistory)))

	if imgui.BeginTabBar("SchedulerTabs") {
		if imgui.BeginTabItem("Systems") {
			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
			if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
				imgui.TableSetupColumn("System")
				imgui.TableSetupColumn("Runs")
				imgui.TableSetupColumn("Avg")
				imgui.TableSetupColumn("Max")
				imgui.TableHeadersRow()

				for _, system := range stats.Systems {
					imgui.TableNextRow()
					imgui.TableNextColumn()
					imgui.Text(system.Name)
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
					imgui.TableNextColumn()
					imgui.Text(system.AvgDuration.String())
					imgui.TableNextColumn()
					imgui.Text(system.MaxDuration.String())
				}

				imgui.EndTable()
			}
			imgui.EndTabItem()
		}

		if imgui.BeginTabItem("System Latency") {
			maxLatency := float32(0.01)
			for _, samples := range ss.latency {
				for _, val := range samples {
					maxLatency = max(maxLatency, val)
				}
			}

			if implot.BeginPlotV("System Latency", imgui.NewVec2(-1, -1), 0) {
				implot.SetupAxesV("Tick", "Time (ms)", 0, 0)
				implot.SetupAxisLimitsV(implot.AxisY1, 0, float64(maxLatency*1.1), implot.CondAlways)

				for i, system := range stats.Systems {
					samples := ss.ordered(ss.latency[i])
					implot.PlotLineFloatPtrInt(system.Name, &samples[0], int32(len(samples)))
				}

				implot.EndPlot()
			}
			imgui.EndTabItem()
		}

		imgui.EndTabBar()
	}

	imgui.End()
}
