// Package well simulates a falling-gem well: a fixed grid, a three gem
// piece falling at constant speed, and the board of gems that have landed.
// A Well is driven by elapsed time and is not safe for concurrent use.
package well

import (
	"fmt"
	"math"
)

// Well is the simulation state of one play field
type Well struct {
	columns int
	rows    int
	speed   float64
	layout  Layout
	palette *Palette

	gems    *arena
	settled *board

	piece    Piece
	pieceRow int
	pieceCol int
	progress float64

	spawnCol    int
	landings    int
	lastLanding []SettledGem
	toppedOut   bool
}

// New creates a well with an empty board and a freshly sampled piece
// waiting above the grid. A nil palette samples from the process-wide source.
func New(cfg Config, palette *Palette) (*Well, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if palette == nil {
		palette = NewPalette(nil)
	}

	w := &Well{
		columns:  cfg.Columns,
		rows:     cfg.Rows,
		speed:    cfg.Speed,
		layout:   cfg.Layout,
		palette:  palette,
		gems:     newArena(),
		settled:  newBoard(cfg.Columns, cfg.Rows),
		spawnCol: cfg.SpawnColumn,
	}
	w.spawn()
	return w, nil
}

// MustNew is like New but panics on an invalid config
func MustNew(cfg Config, palette *Palette) *Well {
	w, err := New(cfg, palette)
	if err != nil {
		panic(fmt.Sprintf("well.MustNew: %v", err))
	}
	return w
}

// Reset empties the board and spawns a new piece. Identities issued
// before the reset no longer resolve.
func (w *Well) Reset() {
	w.gems.reset()
	w.settled.clear()
	w.landings = 0
	w.lastLanding = nil
	w.toppedOut = false
	w.spawn()
}

// spawn replaces the falling piece with three new gems above the grid
func (w *Well) spawn() {
	for i := range w.piece {
		w.piece[i] = w.gems.alloc(w.palette.Sample())
	}
	w.pieceRow = w.rows
	w.pieceCol = w.spawnCol
	w.progress = 0
}

// CanDescend reports whether the piece has room to drop one more row
func (w *Well) CanDescend() bool {
	return w.pieceRow > 0 && !w.settled.occupied(w.pieceRow-1, w.pieceCol)
}

// Advance moves the simulation forward by dt seconds. Every whole row of
// progress drops the piece by one; when it cannot drop it lands, a new
// piece spawns and the rest of dt is discarded, so a single call never
// lands more than one piece.
func (w *Well) Advance(dt float64) {
	if w.toppedOut || !(dt > 0) || math.IsInf(dt, 0) {
		return
	}

	w.progress += dt * w.speed
	for w.progress >= 1 {
		w.progress--
		if w.CanDescend() {
			w.pieceRow--
			continue
		}
		w.land()
		return
	}
}

// land commits the piece to the board and spawns the next one. Gems that
// would sit above the grid are dropped and the well tops out.
func (w *Well) land() {
	landed := make([]SettledGem, 0, PieceSize)
	for i, gem := range w.piece {
		row := w.pieceRow + i
		if !w.settled.put(row, w.pieceCol, gem) {
			w.gems.release(gem.Id)
			w.toppedOut = true
			continue
		}
		landed = append(landed, SettledGem{Cell: Cell{Row: row, Col: w.pieceCol}, Gem: gem})
	}

	w.landings++
	w.lastLanding = landed
	w.spawn()
}

// PieceOffsets returns the interpolated position of each falling gem,
// lowest first. Each gem sits between its current row and the row below
// it according to the fall progress.
func (w *Well) PieceOffsets() [PieceSize]PieceOffset {
	var out [PieceSize]PieceOffset
	cell := w.layout.CellSize
	for i, gem := range w.piece {
		out[i] = PieceOffset{
			Id: gem.Id,
			X:  w.layout.OriginX + float64(w.pieceCol)*cell,
			Y:  w.layout.OriginY + (float64(w.pieceRow+i)-w.progress)*cell,
		}
	}
	return out
}

func (w *Well) Columns() int { return w.columns }
func (w *Well) Rows() int    { return w.rows }

// SpawnRow is the row a new piece's lowest gem starts at
func (w *Well) SpawnRow() int { return w.rows }

func (w *Well) PieceRow() int     { return w.pieceRow }
func (w *Well) PieceCol() int     { return w.pieceCol }
func (w *Well) Progress() float64 { return w.progress }
func (w *Well) Speed() float64    { return w.speed }
func (w *Well) Piece() Piece      { return w.piece }
func (w *Well) Layout() Layout    { return w.layout }
func (w *Well) Landings() int     { return w.landings }
func (w *Well) ToppedOut() bool   { return w.toppedOut }
func (w *Well) SettledCount() int { return w.settled.len() }

// LastLanding returns the gems committed by the most recent landing
func (w *Well) LastLanding() []SettledGem {
	return append([]SettledGem(nil), w.lastLanding...)
}

// At returns the settled gem at (row, col), if any
func (w *Well) At(row, col int) (Gem, bool) {
	return w.settled.get(row, col)
}

// Settled returns every settled gem ordered by row, then column
func (w *Well) Settled() []SettledGem {
	return w.settled.sorted()
}

// Lookup resolves a gem identity issued by this well. Identities from
// before the last Reset, and those of gems dropped on top-out, report false.
func (w *Well) Lookup(id GemId) (Gem, bool) {
	return w.gems.get(id)
}
