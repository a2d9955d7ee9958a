package session_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/plus3/pillars/session"
	"github.com/plus3/pillars/well"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, opts ...session.Option) *session.Session {
	t.Helper()
	cfg := session.DefaultConfig()
	cfg.Seed = 42
	s, err := session.New(cfg, opts...)
	require.NoError(t, err)
	return s
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.Well.Rows = 0

	s, err := session.New(cfg)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, well.ErrInvalidDimensions)
}

func TestSessionLifecycle(t *testing.T) {
	var logs bytes.Buffer
	s := newTestSession(t, session.WithLogger(log.New(&logs, "", 0)))

	var transitions [][2]session.State
	var spawned []well.Piece
	s.Listen(session.Listener{
		StateChanged: func(from, to session.State) {
			transitions = append(transitions, [2]session.State{from, to})
		},
		PieceSpawned: func(piece well.Piece) {
			spawned = append(spawned, piece)
		},
	})

	assert.Equal(t, session.Title, s.State())
	assert.Nil(t, s.Well())

	require.NoError(t, s.OnSessionStart())
	assert.Equal(t, session.Gameplay, s.State())
	require.NotNil(t, s.Well())
	assert.Equal(t, 1, s.Played())
	require.Len(t, spawned, 1)
	assert.Equal(t, s.Well().Piece(), spawned[0])

	t.Run("starting twice fails", func(t *testing.T) {
		err := s.OnSessionStart()
		assert.ErrorIs(t, err, session.ErrAlreadyStarted)
		assert.Equal(t, session.Gameplay, s.State())
	})

	first := s.Well()
	s.OnSessionEnd()
	assert.Equal(t, session.Title, s.State())
	assert.Nil(t, s.Well())

	s.OnSessionEnd()
	assert.Equal(t, session.Title, s.State())

	require.NoError(t, s.OnSessionStart())
	assert.NotSame(t, first, s.Well())
	assert.Equal(t, 2, s.Played())

	assert.Equal(t, [][2]session.State{
		{session.Title, session.Gameplay},
		{session.Gameplay, session.Title},
		{session.Title, session.Gameplay},
	}, transitions)

	assert.Contains(t, logs.String(), "session 1: start (6x13, 5.0 rows/s)")
	assert.Contains(t, logs.String(), "session 1: end after 0 landings")
}

func TestSessionPlaysToGameOver(t *testing.T) {
	s := newTestSession(t)
	scheduler := session.NewScheduler(s, session.DefaultSystems()...)

	var landings [][]well.SettledGem
	var spawned []well.Piece
	var gameOver bool
	s.Listen(session.Listener{
		Landed: func(gems []well.SettledGem) {
			landings = append(landings, gems)
		},
		PieceSpawned: func(piece well.Piece) {
			spawned = append(spawned, piece)
		},
		StateChanged: func(from, to session.State) {
			if to == session.Gameover {
				gameOver = true
			}
		},
	})
	require.NoError(t, s.OnSessionStart())

	for tick := 0; tick < 100_000 && s.State() == session.Gameplay; tick++ {
		scheduler.Once(1.0 / 60.0)
	}

	require.Equal(t, session.Gameover, s.State())
	assert.True(t, gameOver)
	assert.True(t, s.Well().ToppedOut())

	// Default well: pieces land at rows 0, 3, 6, 9 and 12 in column 3.
	require.Len(t, landings, 5)
	for i, gems := range landings[:4] {
		require.Len(t, gems, 3)
		assert.Equal(t, well.Cell{Row: 3 * i, Col: 3}, gems[0].Cell)
	}
	assert.Len(t, landings[4], 1)

	// One spawn for the start plus one per landing.
	assert.Len(t, spawned, 6)
	assert.Equal(t, s.Well().Piece(), spawned[len(spawned)-1])

	t.Run("the board stays frozen after game over", func(t *testing.T) {
		w := s.Well()
		before := w.Settled()
		row := w.PieceRow()
		for range 100 {
			scheduler.Once(1.0 / 60.0)
		}
		assert.Equal(t, before, w.Settled())
		assert.Equal(t, row, w.PieceRow())
	})

	t.Run("restart after game over", func(t *testing.T) {
		s.OnSessionEnd()
		require.NoError(t, s.OnSessionStart())
		assert.Equal(t, session.Gameplay, s.State())
		assert.Equal(t, 0, s.Well().SettledCount())
	})
}

func TestSessionsShareThePalette(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.Seed = 7

	a, err := session.New(cfg)
	require.NoError(t, err)
	b, err := session.New(cfg)
	require.NoError(t, err)

	for range 3 {
		require.NoError(t, a.OnSessionStart())
		require.NoError(t, b.OnSessionStart())

		pa, pb := a.Well().Piece(), b.Well().Piece()
		for i := range pa {
			assert.Equal(t, pa[i].Type, pb[i].Type)
		}

		a.OnSessionEnd()
		b.OnSessionEnd()
	}
}

func TestWithPalette(t *testing.T) {
	s := newTestSession(t, session.WithPalette(well.NewSeededPalette(3)))
	require.NoError(t, s.OnSessionStart())

	reference := well.NewSeededPalette(3)
	for _, gem := range s.Well().Piece() {
		assert.Equal(t, reference.Sample(), gem.Type)
	}
}
