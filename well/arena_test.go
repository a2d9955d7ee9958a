package well

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaAllocAndRelease(t *testing.T) {
	a := newArena()

	first := a.alloc(Red)
	second := a.alloc(Blue)
	assert.NotEqual(t, first.Id, second.Id)
	assert.Equal(t, uint32(1), first.Id.Generation())
	assert.Equal(t, 2, a.len())

	got, ok := a.get(second.Id)
	assert.True(t, ok)
	assert.Equal(t, second, got)

	assert.True(t, a.release(first.Id))
	assert.False(t, a.release(first.Id))
	assert.Equal(t, 1, a.len())

	_, ok = a.get(first.Id)
	assert.False(t, ok)

	t.Run("freed slots are reused with a new generation", func(t *testing.T) {
		reused := a.alloc(Green)
		assert.Equal(t, first.Id.Slot(), reused.Id.Slot())
		assert.Equal(t, first.Id.Generation()+1, reused.Id.Generation())

		_, ok := a.get(first.Id)
		assert.False(t, ok)
		got, ok := a.get(reused.Id)
		assert.True(t, ok)
		assert.Equal(t, Green, got.Type)
	})

	t.Run("zero and unknown ids never resolve", func(t *testing.T) {
		_, ok := a.get(0)
		assert.False(t, ok)
		_, ok = a.get(NewGemId(1, 10_000))
		assert.False(t, ok)
		assert.False(t, a.release(NewGemId(1, 10_000)))
	})
}

func TestArenaGrowsAcrossBlocks(t *testing.T) {
	a := newArena()

	ids := make([]GemId, 0, arenaBlockSize*3)
	for i := range arenaBlockSize * 3 {
		ids = append(ids, a.alloc(GemType(i%NumGemTypes)).Id)
	}
	assert.Equal(t, arenaBlockSize*3, a.len())
	assert.Len(t, a.blocks, 3)

	for i, id := range ids {
		gem, ok := a.get(id)
		assert.True(t, ok)
		assert.Equal(t, GemType(i%NumGemTypes), gem.Type)
	}

	a.reset()
	assert.Equal(t, 0, a.len())
	for _, id := range ids {
		_, ok := a.get(id)
		assert.False(t, ok)
	}

	again := a.alloc(Pink)
	assert.Equal(t, uint32(2), again.Id.Generation())
	assert.Len(t, a.blocks, 3)
}

func TestBoardPut(t *testing.T) {
	b := newBoard(6, 13)
	gem := Gem{Id: NewGemId(1, 0), Type: Yellow}

	assert.True(t, b.put(0, 0, gem))
	assert.False(t, b.put(0, 0, Gem{Id: NewGemId(1, 1), Type: Red}))

	got, ok := b.get(0, 0)
	assert.True(t, ok)
	assert.Equal(t, gem, got)

	assert.False(t, b.put(13, 0, gem))
	assert.False(t, b.put(0, 6, gem))
	assert.False(t, b.put(-1, 0, gem))
	assert.False(t, b.occupied(13, 0))
	assert.Equal(t, 1, b.len())

	assert.True(t, b.put(12, 5, gem))
	assert.Equal(t, []SettledGem{
		{Cell: Cell{Row: 0, Col: 0}, Gem: gem},
		{Cell: Cell{Row: 12, Col: 5}, Gem: gem},
	}, b.sorted())

	b.clear()
	assert.Equal(t, 0, b.len())
	assert.Empty(t, b.sorted())
}

func TestCellKeyPacking(t *testing.T) {
	for _, c := range []Cell{{0, 0}, {12, 5}, {maxDimension - 1, maxDimension - 1}, {1, 0}, {0, 1}} {
		assert.Equal(t, c, keyOf(c.Row, c.Col).cell())
	}
}
