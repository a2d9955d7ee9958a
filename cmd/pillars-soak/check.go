package main

import (
	"errors"
	"fmt"

	"github.com/plus3/pillars/well"
)

var ErrInvariant = errors.New("well invariant violated")

// CheckWell verifies the board and falling piece of w. A nil well passes.
func CheckWell(w *well.Well) error {
	if w == nil {
		return nil
	}

	if col := w.PieceCol(); col < 0 || col >= w.Columns() {
		return fmt.Errorf("%w: piece column %d outside [0, %d)", ErrInvariant, col, w.Columns())
	}
	if row := w.PieceRow(); row < 0 || row > w.SpawnRow() {
		return fmt.Errorf("%w: piece row %d outside [0, %d]", ErrInvariant, row, w.SpawnRow())
	}
	if p := w.Progress(); p < 0 || p >= 1 {
		return fmt.Errorf("%w: progress %v outside [0, 1)", ErrInvariant, p)
	}

	settled := w.Settled()
	if len(settled) != w.SettledCount() {
		return fmt.Errorf("%w: %d settled gems listed, %d counted", ErrInvariant, len(settled), w.SettledCount())
	}

	for i, sg := range settled {
		if sg.Row < 0 || sg.Row >= w.Rows() || sg.Col < 0 || sg.Col >= w.Columns() {
			return fmt.Errorf("%w: settled gem at %v outside the grid", ErrInvariant, sg.Cell)
		}
		if i > 0 {
			prev := settled[i-1]
			if prev.Row > sg.Row || (prev.Row == sg.Row && prev.Col >= sg.Col) {
				return fmt.Errorf("%w: settled cells %v and %v out of order", ErrInvariant, prev.Cell, sg.Cell)
			}
		}
		if gem, ok := w.Lookup(sg.Id); !ok || gem != sg.Gem {
			return fmt.Errorf("%w: settled gem %v does not resolve", ErrInvariant, sg.Cell)
		}
		// nothing floats: every gem rests on the floor or another gem
		if _, below := w.At(sg.Row-1, sg.Col); sg.Row > 0 && !below {
			return fmt.Errorf("%w: settled gem at %v has nothing below it", ErrInvariant, sg.Cell)
		}
	}

	for _, gem := range w.Piece() {
		if _, ok := w.Lookup(gem.Id); !ok {
			return fmt.Errorf("%w: piece gem %d does not resolve", ErrInvariant, gem.Id)
		}
	}

	return nil
}
