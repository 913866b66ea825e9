package ecscore

// SparseSetConfig configures a SparseSet's boundary options.
type SparseSetConfig struct {
	// PageSize is the sparse table's page size; must be a power of two
	// and at least 128.
	PageSize int
	// PoolSize is the initial dense capacity.
	PoolSize int
	// Typed selects the dense array's backing representation (see buffer.go).
	Typed bool
	// Codec decodes the EntityID values stored in the dense array.
	Codec *Codec
}

// DefaultSparseSetConfig returns the package's named default options.
func DefaultSparseSetConfig() SparseSetConfig {
	return SparseSetConfig{PageSize: 128, PoolSize: 16, Typed: true, Codec: MediumCodec()}
}

// EntityLess orders two entities for SparseSet.Sort; it must describe a
// total order. Stability across equal elements is not guaranteed.
type EntityLess func(a, b EntityID) bool

// SparseSet is a per-component index: a two-level paged sparse table
// mapping entity index to a position in a packed dense array of entity
// IDs, giving O(1) contains/index/add/remove via swap-with-last.
type SparseSet struct {
	sparse *pagedSparse
	dense  Buffer[EntityID]
	length int
	codec  *Codec
}

// NewSparseSet builds a SparseSet from the given config.
func NewSparseSet(cfg SparseSetConfig) (*SparseSet, error) {
	if !isPowerOfTwo(cfg.PageSize) || cfg.PageSize < 128 {
		return nil, ErrBadPageSize
	}
	codec := cfg.Codec
	if codec == nil {
		codec = MediumCodec()
	}
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 16
	}
	return &SparseSet{
		sparse: newPagedSparse(cfg.PageSize),
		dense:  NewBuffer[EntityID](cfg.Typed, poolSize),
		codec:  codec,
	}, nil
}

// Len returns the number of entities currently present.
func (s *SparseSet) Len() int { return s.length }

// Count is an alias for Len, matching the supplemented-accessor name
// SPEC_FULL.md documents alongside Capacity.
func (s *SparseSet) Count() int { return s.length }

// Capacity returns the dense array's current capacity.
func (s *SparseSet) Capacity() int { return s.dense.Len() }

// Contains reports whether e is present: the relevant page exists, the
// offset cell is set, is not the tombstone, and is strictly less than the
// current length.
func (s *SparseSet) Contains(e EntityID) bool {
	return s.Index(e) >= 0
}

// Index returns e's dense index, or -1 if e is absent.
func (s *SparseSet) Index(e EntityID) int {
	idx := s.codec.Index(e)
	v := s.sparse.get(idx)
	if v == tombstone || int(v) >= s.length {
		return -1
	}
	return int(v)
}

// Add inserts e if absent, growing the dense array when autoResize is
// true and the array is at capacity. Re-adding a present entity is
// idempotent and returns its existing index. Returns (-1, StatusFail) on
// refusal to grow.
func (s *SparseSet) Add(e EntityID, autoResize bool) (int, Status) {
	if i := s.Index(e); i >= 0 {
		return i, StatusOK
	}
	if s.length == s.dense.Len() {
		if !autoResize {
			return -1, StatusFail
		}
		newCap := s.dense.Len() * 2
		if newCap == 0 {
			newCap = 16
		}
		s.dense.Grow(newCap)
	}
	pos := s.length
	s.dense.Set(pos, e)
	s.sparse.set(s.codec.Index(e), int32(pos))
	s.length++
	return pos, StatusOK
}

// Remove swap-removes e from the dense array, moving the last entity into
// its place. Fails if e is absent or the set is empty.
func (s *SparseSet) Remove(e EntityID) Status {
	i := s.Index(e)
	if i < 0 {
		return StatusFail
	}
	last := s.length - 1
	if i != last {
		lastEntity := s.dense.Get(last)
		s.dense.Set(i, lastEntity)
		s.sparse.set(s.codec.Index(lastEntity), int32(i))
	}
	s.sparse.unset(s.codec.Index(e))
	s.dense.Clear(last)
	s.length--
	return StatusOK
}

// Swap exchanges the dense positions of a and b, preserving the order of
// every other entry. Both must be present and distinct.
func (s *SparseSet) Swap(a, b EntityID) Status {
	ia, ib := s.Index(a), s.Index(b)
	if ia < 0 || ib < 0 || ia == ib {
		return StatusFail
	}
	s.swapPositions(ia, ib)
	return StatusOK
}

// swapPositions exchanges the dense array contents at positions i and j
// and fixes up both sparse cells. i and j are assumed valid and distinct.
func (s *SparseSet) swapPositions(i, j int) {
	ei, ej := s.dense.Get(i), s.dense.Get(j)
	s.dense.Set(i, ej)
	s.dense.Set(j, ei)
	s.sparse.set(s.codec.Index(ej), int32(i))
	s.sparse.set(s.codec.Index(ei), int32(j))
}

// Sort orders the dense array's live prefix by less, updating the two
// affected sparse cells on every swap. Returns StatusFail for length <= 1
// without touching anything rather than silently treating it as a no-op.
func (s *SparseSet) Sort(less EntityLess) Status {
	if s.length <= 1 {
		return StatusFail
	}
	// Stable insertion sort: simplest shape that keeps the coherence
	// invariant (sparse[dense[i]] == i) trivially provable at every step.
	for i := 1; i < s.length; i++ {
		for j := i; j > 0 && less(s.dense.Get(j), s.dense.Get(j-1)); j-- {
			s.swapPositions(j, j-1)
		}
	}
	return StatusOK
}

// Resize grows the dense array's capacity to newCap. Fails if newCap is
// not greater than the current capacity.
func (s *SparseSet) Resize(newCap int) Status {
	if newCap <= s.dense.Len() {
		return StatusFail
	}
	s.dense.Grow(newCap)
	return StatusOK
}

// Clear drops all sparse pages and resets length to 0.
func (s *SparseSet) Clear() {
	s.sparse.clear()
	s.length = 0
}

// Reset sets length to 0 without releasing sparse pages, so Contains
// returns false for everything (the length check fails) but the pages
// remain allocated for reuse.
func (s *SparseSet) Reset() {
	s.length = 0
}

// Dense returns a copy of the live (entity) prefix of the dense array. The
// returned slice does not alias the store and is not updated by later
// mutations.
func (s *SparseSet) Dense() []EntityID {
	out := make([]EntityID, s.length)
	for i := 0; i < s.length; i++ {
		out[i] = s.dense.Get(i)
	}
	return out
}

// At returns the entity at dense position i (0 <= i < Len()).
func (s *SparseSet) At(i int) EntityID {
	return s.dense.Get(i)
}

// EntityIterator is a position-plus-container record over a SparseSet's
// live entities, rather than a closure, so it can be reset and reused.
// It aliases the set and is invalidated by any mutation performed
// mid-iteration.
type EntityIterator struct {
	set *SparseSet
	pos int
}

// Iterator returns a fresh iterator over s's current entities, in dense
// (insertion-order-up-to-swaps) order.
func (s *SparseSet) Iterator() *EntityIterator {
	return &EntityIterator{set: s, pos: -1}
}

// Next advances the iterator and reports whether a live entity was found.
func (it *EntityIterator) Next() (EntityID, bool) {
	it.pos++
	if it.pos >= it.set.length {
		return EntityID(0), false
	}
	return it.set.dense.Get(it.pos), true
}

// Reset rewinds the iterator to the beginning.
func (it *EntityIterator) Reset() {
	it.pos = -1
}
