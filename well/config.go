package well

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidDimensions = errors.New("well: invalid grid dimensions")
	ErrInvalidColumn     = errors.New("well: spawn column outside grid")
	ErrInvalidSpeed      = errors.New("well: invalid fall speed")
)

// Config describes the fixed shape and speed of a well
type Config struct {
	Columns     int
	Rows        int
	SpawnColumn int
	Speed       float64 // rows per second
	Layout      Layout
}

// DefaultConfig returns the 6x13 well with pieces entering at column 3
func DefaultConfig() Config {
	return Config{
		Columns:     6,
		Rows:        13,
		SpawnColumn: 3,
		Speed:       5,
		Layout:      DefaultLayout(),
	}
}

// Validate checks the construction preconditions of a well
func (c Config) Validate() error {
	if c.Columns <= 0 || c.Rows <= 0 || c.Columns > maxDimension || c.Rows > maxDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Columns, c.Rows)
	}
	if c.SpawnColumn < 0 || c.SpawnColumn >= c.Columns {
		return fmt.Errorf("%w: column %d of %d", ErrInvalidColumn, c.SpawnColumn, c.Columns)
	}
	if c.Speed < 0 || math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, c.Speed)
	}
	return nil
}
