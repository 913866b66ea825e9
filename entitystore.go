package ecscore

// EntityStoreConfig configures an EntityStore's boundary options.
type EntityStoreConfig struct {
	// Codec is the handle codec used to pack/unpack slot index and version.
	Codec *Codec
	// Capacity is the initial number of slots to pre-allocate.
	Capacity int
	// Resizable allows capacity to double once appendIndex reaches it.
	Resizable bool
	// Typed selects the entities array's backing representation.
	Typed bool
}

// DefaultEntityStoreConfig returns the package's named default options.
func DefaultEntityStoreConfig() EntityStoreConfig {
	return EntityStoreConfig{Codec: MediumCodec(), Capacity: 1000, Resizable: true, Typed: true}
}

// EntityStore is a generational slot allocator. The free-slot list is
// embedded in the entity array itself: a freed cell's
// index field stores the next free slot, and its version field stores the
// version the NEXT live handle at that slot will carry. No auxiliary
// memory is used for the free list.
type EntityStore struct {
	codec       *Codec
	entities    Buffer[EntityID]
	appendIndex uint64
	freeSlot    uint64 // codec.InvalidIndex() sentinel means "empty"
	cap         int
	resizable   bool
	invalid     uint64
	alive       int
	retired     map[uint64]bool
}

// NewEntityStore builds an EntityStore from the given config.
func NewEntityStore(cfg EntityStoreConfig) *EntityStore {
	codec := cfg.Codec
	if codec == nil {
		codec = MediumCodec()
	}
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = 1000
	}
	return &EntityStore{
		codec:     codec,
		entities:  NewBuffer[EntityID](cfg.Typed, capacity),
		freeSlot:  codec.InvalidIndex(),
		cap:       capacity,
		resizable: cfg.Resizable,
		invalid:   codec.InvalidIndex(),
	}
}

// Create allocates a new entity, preferring a recycled slot from the free
// list. Fails with ErrOutOfHandles if the codec's index space is
// exhausted, or ErrCapacityExceeded if growth is required but the store is
// not resizable.
func (s *EntityStore) Create() (EntityID, error) {
	if s.freeSlot != s.invalid {
		slot := s.freeSlot
		cell := s.entities.Get(int(slot))
		next := s.codec.Index(cell)
		version := s.codec.Version(cell)
		handle := s.codec.Make(slot, version)
		s.entities.Set(int(slot), handle)
		s.freeSlot = next
		s.alive++
		return handle, nil
	}

	if s.appendIndex == s.invalid {
		return EntityID(0), ErrOutOfHandles
	}
	if int(s.appendIndex) >= s.cap {
		if !s.resizable {
			return EntityID(0), ErrCapacityExceeded
		}
		newCap := s.cap * 2
		if newCap == 0 {
			newCap = 1
		}
		s.entities.Grow(newCap)
		s.cap = newCap
	}
	handle := s.codec.Make(s.appendIndex, 0)
	s.entities.Set(int(s.appendIndex), handle)
	s.appendIndex++
	s.alive++
	return handle, nil
}

// IsAlive reports whether e refers to a currently live entity: its index
// is within the appended range and the slot still holds exactly e.
func (s *EntityStore) IsAlive(e EntityID) bool {
	idx := s.codec.Index(e)
	if idx >= s.appendIndex {
		return false
	}
	if s.retired[idx] {
		return false
	}
	return s.entities.Get(int(idx)) == e
}

// Remove retires e. The slot's version is bumped to invalidate every
// previously-held handle; the bumped version then becomes the free-list
// payload for that slot. If bumping would overflow the codec's version
// width, the slot is retired permanently instead of being recycled,
// preferring a permanently dead slot over risking alias of two live
// handles.
func (s *EntityStore) Remove(e EntityID) error {
	if !s.IsAlive(e) {
		return ErrInvalidHandle
	}
	idx := s.codec.Index(e)
	nextVersion := s.codec.Version(e) + 1
	if nextVersion > s.codec.MaxVersion() {
		// Retire permanently: never rejoin the free list. The version field
		// has no unused bit pattern left to act as a sentinel once it has
		// reached MaxVersion, so retirement is tracked out-of-band instead
		// of by stashing an "impossible" encoded value.
		if s.retired == nil {
			s.retired = make(map[uint64]bool)
		}
		s.retired[idx] = true
		s.alive--
		return nil
	}
	s.entities.Set(int(idx), s.codec.Make(s.freeSlot, nextVersion))
	s.freeSlot = idx
	s.alive--
	return nil
}

// Len reports how many slots have ever been appended (live + freed, not
// counting slots still awaiting their first append).
func (s *EntityStore) Len() int { return int(s.appendIndex) }

// AliveCount reports the number of currently live entities.
func (s *EntityStore) AliveCount() int { return s.alive }

// Cap reports the entity store's current slot capacity.
func (s *EntityStore) Cap() int { return s.cap }

// Iterator returns an iterator over every currently live entity, in slot
// order.
func (s *EntityStore) Iterator() *EntityStoreIterator {
	return &EntityStoreIterator{store: s, pos: -1}
}

// EntityStoreIterator is a position-plus-container record over an
// EntityStore's live slots. It aliases the store and is invalidated by
// any mutation performed mid-iteration.
type EntityStoreIterator struct {
	store *EntityStore
	pos   int
}

// Next advances to the next live entity, skipping freed and retired cells.
func (it *EntityStoreIterator) Next() (EntityID, bool) {
	for {
		it.pos++
		if it.pos >= int(it.store.appendIndex) {
			return EntityID(0), false
		}
		cand := it.store.entities.Get(it.pos)
		if it.store.IsAlive(cand) {
			return cand, true
		}
	}
}

// Reset rewinds the iterator to the beginning.
func (it *EntityStoreIterator) Reset() {
	it.pos = -1
}
