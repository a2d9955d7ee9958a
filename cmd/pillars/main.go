// Command pillars plays the falling-gem well in an Ebiten window.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pillars/session"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Pillars"
)

func main() {
	cfg := session.DefaultConfig()
	flag.IntVar(&cfg.Well.Columns, "cols", cfg.Well.Columns, "Number of columns in the well.")
	flag.IntVar(&cfg.Well.Rows, "rows", cfg.Well.Rows, "Number of rows in the well.")
	flag.IntVar(&cfg.Well.SpawnColumn, "column", cfg.Well.SpawnColumn, "Column new pieces spawn in.")
	flag.Float64Var(&cfg.Well.Speed, "speed", cfg.Well.Speed, "Fall speed in rows per second.")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Gem palette seed. 0 seeds from the clock.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	flag.Parse()

	logger := log.New(os.Stderr, "pillars: ", log.LstdFlags)
	s, err := session.New(cfg, session.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	game := NewGame(s, logger, *debug)
	if !*debug {
		// the ImGui backend creates its own window
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle(WindowTitle)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Println("setup complete, showing title")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}
