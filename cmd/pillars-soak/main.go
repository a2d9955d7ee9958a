// Command pillars-soak drives sessions headlessly with jittered frame times,
// checks the board after every tick and prints a report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/pillars/session"
	"github.com/plus3/pillars/well"
)

func main() {
	cfg := session.DefaultConfig()
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	tick := flag.Duration("tick", time.Second/60, "Nominal frame time fed to the scheduler.")
	jitter := flag.Float64("jitter", 0.5, "Frame time variation as a fraction of -tick, in [0, 1].")
	flag.Uint64Var(&cfg.Seed, "seed", 1, "Seed for the gem palette and the frame jitter.")
	flag.Float64Var(&cfg.Well.Speed, "speed", 60, "Fall speed in rows per second.")
	flag.IntVar(&cfg.Well.Columns, "cols", cfg.Well.Columns, "Number of columns in the well.")
	flag.IntVar(&cfg.Well.Rows, "rows", cfg.Well.Rows, "Number of rows in the well.")
	flag.IntVar(&cfg.Well.SpawnColumn, "column", cfg.Well.SpawnColumn, "Column new pieces spawn in.")
	verbose := flag.Bool("v", false, "Log session lifecycle traces.")
	flag.Parse()

	if *jitter < 0 || *jitter > 1 {
		log.Fatalf("-jitter must be in [0, 1], got %v", *jitter)
	}

	log.Println("Starting pillars soak test...")

	var opts []session.Option
	if *verbose {
		opts = append(opts, session.WithLogger(log.Default()))
	}
	s, err := session.New(cfg, opts...)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	report := &Report{
		Duration: *duration,
		Tick:     *tick,
		Jitter:   *jitter,
		Seed:     cfg.Seed,
		Well:     cfg.Well,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	s.Listen(session.Listener{
		Landed: func(gems []well.SettledGem) {
			report.Landings++
			report.GemsSettled += int64(len(gems))
		},
		StateChanged: func(from, to session.State) {
			if to == session.Gameover {
				report.TopOuts++
			}
		},
	})

	scheduler := session.NewScheduler(s, session.DefaultSystems()...)
	frames := newFrameClock(*tick, *jitter, cfg.Seed)

	if err := s.OnSessionStart(); err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running soak for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			dt := frames.next()

			updateStart := time.Now()
			scheduler.Once(dt)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			report.TotalUpdates++
			report.SimulatedTime += dt

			if err := CheckWell(s.Well()); err != nil {
				log.Fatalf("Invariant violated in session %d after %d updates: %v", s.Played(), report.TotalUpdates, err)
			}

			if s.State() == session.Gameover {
				s.OnSessionEnd()
				if err := s.OnSessionStart(); err != nil {
					log.Fatalf("Failed to restart session: %v", err)
				}
			}
		}
	}

	report.Sessions = s.Played()
	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Scheduler = scheduler.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// frameClock produces frame times spread uniformly around a nominal tick
type frameClock struct {
	tick   float64
	jitter float64
	rng    *rand.Rand
}

func newFrameClock(tick time.Duration, jitter float64, seed uint64) *frameClock {
	return &frameClock{
		tick:   tick.Seconds(),
		jitter: jitter,
		rng:    rand.New(rand.NewPCG(seed, seed+1)),
	}
}

func (c *frameClock) next() float64 {
	return c.tick * (1 + c.jitter*(2*c.rng.Float64()-1))
}
