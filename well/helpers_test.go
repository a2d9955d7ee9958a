package well_test

import "github.com/plus3/pillars/well"

// sequenceSource replays a fixed list of draws, wrapping around
type sequenceSource struct {
	values []int
	next   int
}

func (s *sequenceSource) IntN(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func newSequencePalette(values ...int) *well.Palette {
	return well.NewPalette(&sequenceSource{values: values})
}

func newTestWell(speed float64) *well.Well {
	cfg := well.DefaultConfig()
	cfg.Speed = speed
	return well.MustNew(cfg, well.NewSeededPalette(42))
}

// dropPiece advances far enough for the falling piece to land
func dropPiece(w *well.Well) {
	w.Advance(float64(w.Rows()+well.PieceSize+1) / w.Speed())
}
