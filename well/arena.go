package well

const (
	arenaBlockSize = 64
)

type arenaSlot struct {
	gem        Gem
	generation uint32
	live       bool
}

// arena hands out gem identities. Slots live in fixed-size blocks and are
// reused after release; each reuse bumps the slot generation so that ids
// issued for an earlier occupant stop resolving.
type arena struct {
	blocks    [][arenaBlockSize]arenaSlot
	freeSlots []uint32
	nextSlot  uint32
	live      int
}

func newArena() *arena {
	return &arena{}
}

func (a *arena) slot(index uint32) *arenaSlot {
	blockIdx := int(index / arenaBlockSize)
	if blockIdx >= len(a.blocks) {
		return nil
	}
	return &a.blocks[blockIdx][index%arenaBlockSize]
}

// alloc stores a gem of the given type and returns it with its new identity
func (a *arena) alloc(t GemType) Gem {
	var index uint32
	if len(a.freeSlots) > 0 {
		index = a.freeSlots[len(a.freeSlots)-1]
		a.freeSlots = a.freeSlots[:len(a.freeSlots)-1]
	} else {
		index = a.nextSlot
		a.nextSlot++
		if int(index/arenaBlockSize) >= len(a.blocks) {
			a.blocks = append(a.blocks, [arenaBlockSize]arenaSlot{})
		}
	}

	s := a.slot(index)
	// Generation 0 is reserved so the zero GemId never resolves.
	s.generation++
	s.live = true
	s.gem = Gem{Id: NewGemId(s.generation, index), Type: t}
	a.live++
	return s.gem
}

// get resolves an identity to its gem. Stale and unknown ids report false.
func (a *arena) get(id GemId) (Gem, bool) {
	s := a.slot(id.Slot())
	if s == nil || !s.live || s.generation != id.Generation() {
		return Gem{}, false
	}
	return s.gem, true
}

// release frees the slot behind id. Releasing a stale id is a no-op.
func (a *arena) release(id GemId) bool {
	s := a.slot(id.Slot())
	if s == nil || !s.live || s.generation != id.Generation() {
		return false
	}
	s.live = false
	s.gem = Gem{}
	a.freeSlots = append(a.freeSlots, id.Slot())
	a.live--
	return true
}

// reset releases every live gem. Generations are kept so old ids stay dead.
func (a *arena) reset() {
	for index := uint32(0); index < a.nextSlot; index++ {
		s := a.slot(index)
		if s.live {
			s.live = false
			s.gem = Gem{}
			a.freeSlots = append(a.freeSlots, index)
		}
	}
	a.live = 0
}

func (a *arena) len() int {
	return a.live
}
