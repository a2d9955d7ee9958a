package well_test

import (
	"fmt"
	"testing"

	"github.com/plus3/pillars/well"
	"github.com/stretchr/testify/assert"
)

func TestGemIdEncoding(t *testing.T) {
	tests := []struct {
		generation uint32
		slot       uint32
	}{
		{0, 0},
		{1, 0},
		{0, 1},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("generation=%d,slot=%d", tt.generation, tt.slot), func(t *testing.T) {
			id := well.NewGemId(tt.generation, tt.slot)
			assert.Equal(t, tt.generation, id.Generation())
			assert.Equal(t, tt.slot, id.Slot())
		})
	}
}

func TestGemTypeString(t *testing.T) {
	names := map[well.GemType]string{
		well.Red:    "Red",
		well.Pink:   "Pink",
		well.Blue:   "Blue",
		well.Green:  "Green",
		well.Yellow: "Yellow",
		well.Orange: "Orange",
	}
	for gemType, name := range names {
		assert.Equal(t, name, gemType.String())
		assert.True(t, gemType.Valid())
	}

	assert.Equal(t, "GemType(6)", well.GemType(6).String())
	assert.False(t, well.GemType(6).Valid())
}
