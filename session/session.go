// Package session runs a well simulation on behalf of a presentation host.
// It owns the well for the length of one game, moves between the title,
// gameplay and game-over states, and ticks the simulation through an
// ordered list of systems.
package session

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/plus3/pillars/well"
)

//go:generate go tool stringer -type=State

// State is the game state the host is presenting
type State uint8

const (
	Title State = iota
	Gameplay
	Gameover
)

var ErrAlreadyStarted = errors.New("session: already started")

// Config holds everything needed to start sessions
type Config struct {
	Well well.Config
	Seed uint64 // 0 seeds from the clock
}

func DefaultConfig() Config {
	return Config{Well: well.DefaultConfig()}
}

// Listener receives session notifications. Nil fields are skipped.
// Callbacks run after the tick's systems have finished.
type Listener struct {
	// PieceSpawned fires when a new piece enters the well; hosts rebind
	// their visuals to the new gem identities here.
	PieceSpawned func(piece well.Piece)
	Landed       func(gems []well.SettledGem)
	StateChanged func(from, to State)
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger used for lifecycle traces
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithPalette overrides the palette built from Config.Seed
func WithPalette(palette *well.Palette) Option {
	return func(s *Session) {
		s.palette = palette
	}
}

// Session owns at most one well at a time
type Session struct {
	cfg       Config
	palette   *well.Palette
	logger    *log.Logger
	listeners []Listener

	state  State
	well   *well.Well
	played int
}

// New creates a session in the Title state. The well config is validated
// here so that a bad config is reported before any game starts.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Well.Validate(); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}

	s := &Session{
		cfg:   cfg,
		state: Title,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.palette == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		s.palette = well.NewSeededPalette(seed)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}

	return s, nil
}

// Listen registers a listener for the lifetime of the session
func (s *Session) Listen(l Listener) {
	s.listeners = append(s.listeners, l)
}

// OnSessionStart creates a fresh well and enters Gameplay. It fails if a
// game is already running or over but not yet ended.
func (s *Session) OnSessionStart() error {
	if s.state != Title {
		return fmt.Errorf("%w: state %s", ErrAlreadyStarted, s.state)
	}

	w, err := well.New(s.cfg.Well, s.palette)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	s.well = w
	s.played++
	s.logger.Printf("session %d: start (%dx%d, %.1f rows/s)", s.played, w.Columns(), w.Rows(), w.Speed())
	s.setState(Gameplay)
	s.notifySpawn(w.Piece())
	return nil
}

// OnSessionEnd discards the well and returns to Title. It is a no-op when
// no session is running.
func (s *Session) OnSessionEnd() {
	if s.state == Title {
		return
	}

	s.logger.Printf("session %d: end after %d landings", s.played, s.well.Landings())
	s.well = nil
	s.setState(Title)
}

// transition applies a state change requested by a system
func (s *Session) transition(to State) {
	switch {
	case to == s.state:
	case to == Gameover && s.state == Gameplay:
		s.logger.Printf("session %d: game over, %d gems settled", s.played, s.well.SettledCount())
		s.setState(Gameover)
	case to == Title:
		s.OnSessionEnd()
	case to == Gameplay && s.state == Title:
		if err := s.OnSessionStart(); err != nil {
			s.logger.Printf("session: %v", err)
		}
	default:
		s.logger.Printf("session %d: ignoring transition %s -> %s", s.played, s.state, to)
	}
}

func (s *Session) setState(to State) {
	from := s.state
	s.state = to
	for _, l := range s.listeners {
		if l.StateChanged != nil {
			l.StateChanged(from, to)
		}
	}
}

func (s *Session) notifySpawn(piece well.Piece) {
	for _, l := range s.listeners {
		if l.PieceSpawned != nil {
			l.PieceSpawned(piece)
		}
	}
}

func (s *Session) notifyLanded(gems []well.SettledGem) {
	for _, l := range s.listeners {
		if l.Landed != nil {
			l.Landed(gems)
		}
	}
}

func (s *Session) State() State { return s.state }

// Well returns the current well, or nil in the Title state
func (s *Session) Well() *well.Well { return s.well }

// Played returns how many sessions have been started
func (s *Session) Played() int { return s.played }

func (s *Session) Config() Config { return s.cfg }
