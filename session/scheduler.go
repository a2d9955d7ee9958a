package session

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount int
	Ticks       int64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemTimings struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler ticks a session by running its systems in order.
// It is the single writer of the session's well while a tick runs.
type Scheduler struct {
	session *Session
	systems []System
	timings []*systemTimings
	ticks   int64
}

// NewScheduler creates a scheduler for the given session with the given
// systems registered in order.
func NewScheduler(session *Session, systems ...System) *Scheduler {
	s := &Scheduler{
		session: session,
		systems: make([]System, 0, len(systems)),
	}
	for _, system := range systems {
		s.Register(system)
	}
	return s
}

// Register appends a system to the tick
func (s *Scheduler) Register(system System) {
	if system == nil {
		panic("cannot register a nil system")
	}
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.timings = append(s.timings, &systemTimings{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once runs every system with the given delta time, then flushes the
// commands they queued.
func (s *Scheduler) Once(dt float64) {
	frame := newFrame(dt, s.session)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		timing := s.timings[i]
		timing.executionCount++
		timing.lastDuration = duration
		timing.totalDuration += duration

		if duration < timing.minDuration {
			timing.minDuration = duration
		}
		if duration > timing.maxDuration {
			timing.maxDuration = duration
		}
	}

	frame.Commands.Flush(s.session)
	s.ticks++
}

// Run ticks the session at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Ticks:       s.ticks,
		Systems:     make([]SystemStats, len(s.timings)),
	}

	for i, timing := range s.timings {
		avgDuration := time.Duration(0)
		if timing.executionCount > 0 {
			avgDuration = timing.totalDuration / time.Duration(timing.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           timing.name,
			ExecutionCount: timing.executionCount,
			MinDuration:    timing.minDuration,
			MaxDuration:    timing.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   timing.lastDuration,
			TotalDuration:  timing.totalDuration,
		}
	}

	return stats
}
