package well

import "math/rand/v2"

// Source is the randomness a Palette draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// Palette samples gem types uniformly from the six categories.
type Palette struct {
	src Source
}

// NewPalette creates a palette drawing from src.
// A nil src uses the process-wide math/rand/v2 source.
func NewPalette(src Source) *Palette {
	if src == nil {
		src = globalSource{}
	}
	return &Palette{src: src}
}

// NewSeededPalette creates a palette with its own PCG source, so that two
// palettes built from the same seed produce the same sequence.
func NewSeededPalette(seed uint64) *Palette {
	return NewPalette(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Sample returns a uniformly chosen gem type
func (p *Palette) Sample() GemType {
	return GemType(p.src.IntN(NumGemTypes))
}
