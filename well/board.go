package well

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// maxDimension bounds rows and columns so a cell packs into a cellKey
const maxDimension = 0xFFFF

type cellKey uint32

func keyOf(row, col int) cellKey {
	return cellKey(uint32(row)<<16 | uint32(col))
}

func (k cellKey) cell() Cell {
	return Cell{Row: int(k >> 16), Col: int(k & 0xFFFF)}
}

// SettledGem is a gem that has landed, together with the cell it occupies
type SettledGem struct {
	Cell
	Gem
}

// board holds the settled gems of a well, one per cell
type board struct {
	columns int
	rows    int
	cells   *intmap.Map[cellKey, Gem]
}

func newBoard(columns, rows int) *board {
	return &board{
		columns: columns,
		rows:    rows,
		cells:   intmap.New[cellKey, Gem](columns * rows),
	}
}

func (b *board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.columns
}

// put settles gem at (row, col). It refuses cells outside the grid and
// cells that are already occupied.
func (b *board) put(row, col int, gem Gem) bool {
	if !b.inBounds(row, col) {
		return false
	}
	key := keyOf(row, col)
	if _, taken := b.cells.Get(key); taken {
		return false
	}
	b.cells.Put(key, gem)
	return true
}

func (b *board) get(row, col int) (Gem, bool) {
	if !b.inBounds(row, col) {
		return Gem{}, false
	}
	return b.cells.Get(keyOf(row, col))
}

func (b *board) occupied(row, col int) bool {
	_, ok := b.get(row, col)
	return ok
}

func (b *board) len() int {
	return b.cells.Len()
}

func (b *board) clear() {
	b.cells.Clear()
}

// sorted returns every settled gem ordered by row, then column
func (b *board) sorted() []SettledGem {
	out := make([]SettledGem, 0, b.cells.Len())
	b.cells.ForEach(func(key cellKey, gem Gem) bool {
		out = append(out, SettledGem{Cell: key.cell(), Gem: gem})
		return true
	})
	slices.SortFunc(out, func(x, y SettledGem) int {
		if x.Row != y.Row {
			return x.Row - y.Row
		}
		return x.Col - y.Col
	})
	return out
}
