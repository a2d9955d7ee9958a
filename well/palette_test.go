package well_test

import (
	"testing"

	"github.com/plus3/pillars/well"
	"github.com/stretchr/testify/assert"
)

func TestPaletteSample(t *testing.T) {
	t.Run("maps source draws to gem types", func(t *testing.T) {
		palette := newSequencePalette(0, 1, 2, 3, 4, 5)
		for _, expected := range []well.GemType{well.Red, well.Pink, well.Blue, well.Green, well.Yellow, well.Orange} {
			assert.Equal(t, expected, palette.Sample())
		}
	})

	t.Run("roughly uniform", func(t *testing.T) {
		const draws = 60000
		palette := well.NewSeededPalette(7)

		counts := make(map[well.GemType]int)
		for range draws {
			gemType := palette.Sample()
			assert.True(t, gemType.Valid())
			counts[gemType]++
		}

		assert.Len(t, counts, well.NumGemTypes)
		expected := draws / well.NumGemTypes
		for gemType, count := range counts {
			assert.InDelta(t, expected, count, float64(expected)/10, "gem type %s", gemType)
		}
	})

	t.Run("same seed same sequence", func(t *testing.T) {
		a := well.NewSeededPalette(99)
		b := well.NewSeededPalette(99)
		for range 100 {
			assert.Equal(t, a.Sample(), b.Sample())
		}
	})

	t.Run("nil source uses the global source", func(t *testing.T) {
		palette := well.NewPalette(nil)
		for range 100 {
			assert.True(t, palette.Sample().Valid())
		}
	})
}
