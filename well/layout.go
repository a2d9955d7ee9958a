package well

// Layout maps grid coordinates to a continuous plane. X grows to the
// right from the left wall, Y grows upwards from the floor line.
type Layout struct {
	CellSize float64
	OriginX  float64
	OriginY  float64
}

func DefaultLayout() Layout {
	return Layout{CellSize: 20}
}

// CellOrigin returns the position of the cell at (row, col)
func (l Layout) CellOrigin(row, col int) (x, y float64) {
	return l.OriginX + float64(col)*l.CellSize, l.OriginY + float64(row)*l.CellSize
}

// PieceOffset is the interpolated position of one falling gem
type PieceOffset struct {
	Id   GemId
	X, Y float64
}
