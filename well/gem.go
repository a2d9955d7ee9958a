package well

//go:generate go tool stringer -type=GemType

// GemType is the colour category of a gem
type GemType uint8

const (
	Red GemType = iota
	Pink
	Blue
	Green
	Yellow
	Orange
)

// NumGemTypes is the number of gem categories a Palette samples from
const NumGemTypes = 6

// Valid reports whether t is one of the known gem categories
func (t GemType) Valid() bool {
	return t < NumGemTypes
}

// GemId is the logical identity of a gem. It encodes the arena slot
// generation (upper 32 bits) and the slot index (lower 32 bits).
// The zero value never identifies a live gem.
type GemId uint64

// NewGemId creates a GemId from a slot generation and slot index
func NewGemId(generation uint32, slot uint32) GemId {
	return GemId(uint64(generation)<<32 | uint64(slot))
}

// Generation extracts the slot generation from the gem ID
func (id GemId) Generation() uint32 {
	return uint32(id >> 32)
}

// Slot extracts the arena slot index from the gem ID
func (id GemId) Slot() uint32 {
	return uint32(id & 0xFFFFFFFF)
}

// Gem is a single gem, either falling as part of the piece or settled in the well
type Gem struct {
	Id   GemId
	Type GemType
}

// Cell is a grid coordinate. Row 0 is the floor of the well.
type Cell struct {
	Row, Col int
}

// PieceSize is the number of gems in a falling piece
const PieceSize = 3

// Piece holds the falling gems, lowest first. Gem i occupies the cell
// i rows above the piece's reference position.
type Piece [PieceSize]Gem
