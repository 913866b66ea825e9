package ecscore

// ComponentConfig configures a ComponentStore's boundary options (spec §6).
type ComponentConfig struct {
	// Typed selects the payload array's backing representation.
	Typed bool
	// PoolSize is the initial dense/payload capacity.
	PoolSize int
	// PageSize is the underlying sparse set's page size.
	PageSize int
	// Replace controls whether re-adding a present entity overwrites its
	// payload (true) or is a no-op (false).
	Replace bool
	// Resize controls whether add/reserve may grow capacity automatically.
	Resize bool
	// Codec decodes the EntityID values the underlying sparse set stores.
	Codec *Codec
}

// DefaultComponentConfig returns spec §6's named defaults.
func DefaultComponentConfig() ComponentConfig {
	return ComponentConfig{Typed: true, PoolSize: 16, PageSize: 128, Replace: true, Resize: true, Codec: MediumCodec()}
}

// ComponentStore pairs a SparseSet with a parallel packed payload array
// (spec §3/§4.4). For Empty (tag) components the payload array is unused;
// every payload-facing method rejects the call with ErrEmptyComponent
// (ReplaceExisting, which returns only a Status, reports StatusFail).
type ComponentStore[T any] struct {
	kind    Kind
	sparse  *SparseSet
	payload Buffer[T]
	replace bool
	resize  bool
}

// NewComponentStore builds a ComponentStore of the given kind from cfg.
func NewComponentStore[T any](kind Kind, cfg ComponentConfig) (*ComponentStore[T], error) {
	sparse, err := NewSparseSet(SparseSetConfig{
		PageSize: cfg.PageSize,
		PoolSize: cfg.PoolSize,
		Typed:    cfg.Typed,
		Codec:    cfg.Codec,
	})
	if err != nil {
		return nil, err
	}
	cs := &ComponentStore[T]{kind: kind, sparse: sparse, replace: cfg.Replace, resize: cfg.Resize}
	if kind == Standard {
		cs.payload = NewBuffer[T](cfg.Typed, cfg.PoolSize)
	}
	return cs, nil
}

// Kind reports the store's fixed kind.
func (c *ComponentStore[T]) Kind() Kind { return c.kind }

// Len reports the number of entities currently present.
func (c *ComponentStore[T]) Len() int { return c.sparse.Len() }

// Contains reports whether e currently has this component.
func (c *ComponentStore[T]) Contains(e EntityID) bool { return c.sparse.Contains(e) }

// Data returns the live entity list, in dense order.
func (c *ComponentStore[T]) Data() []EntityID { return c.sparse.Dense() }

// Reserve grows both the sparse set's dense capacity and the payload
// capacity in lockstep. Fails if newCap is not greater than the current
// capacity.
func (c *ComponentStore[T]) Reserve(newCap int) Status {
	if newCap <= c.sparse.Capacity() {
		return StatusFail
	}
	if st := c.sparse.Resize(newCap); st == StatusFail {
		return StatusFail
	}
	if c.kind == Standard {
		c.payload.Grow(newCap)
	}
	return StatusOK
}

// Add inserts or updates e's component using the store's configured
// Replace/Resize defaults.
func (c *ComponentStore[T]) Add(e EntityID, value T) Status {
	return c.AddWith(e, value, c.replace, c.resize)
}

// AddWith is Add with explicit replace/autoResize arguments (spec §4.4).
// Pre-existence is queried before insertion; on first insertion beyond
// payload capacity, autoResize controls whether the payload array grows
// or the sparse-set insertion is rolled back.
func (c *ComponentStore[T]) AddWith(e EntityID, value T, replace, autoResize bool) Status {
	existed := c.sparse.Contains(e)
	pos, st := c.sparse.Add(e, autoResize)
	if st == StatusFail {
		return StatusFail
	}
	if c.kind == Empty {
		return StatusOK
	}
	if pos >= c.payload.Len() {
		if !autoResize {
			c.sparse.Remove(e)
			return StatusFail
		}
		newCap := c.payload.Len() * 2
		if newCap <= pos {
			newCap = pos + 1
		}
		c.payload.Grow(newCap)
	}
	if existed && !replace {
		return StatusOK
	}
	c.payload.Set(pos, value)
	return StatusOK
}

// Remove swap-removes e, mirroring the sparse-set's swap-with-last in the
// payload array before delegating. Fails if e is absent.
func (c *ComponentStore[T]) Remove(e EntityID) Status {
	i := c.sparse.Index(e)
	if i < 0 {
		return StatusFail
	}
	if c.kind == Standard {
		last := c.sparse.Len() - 1
		if i != last {
			c.payload.Set(i, c.payload.Get(last))
		}
		c.payload.Clear(last)
	}
	return c.sparse.Remove(e)
}

// Get returns a live reference to e's payload, aliasing the store's
// memory until the next mutation. Fails with ErrEmptyComponent on a tag
// store, or ErrNoSuchComponent if e is absent.
func (c *ComponentStore[T]) Get(e EntityID) (*T, error) {
	if c.kind == Empty {
		return nil, ErrEmptyComponent
	}
	i := c.sparse.Index(e)
	if i < 0 {
		return nil, ErrNoSuchComponent
	}
	return c.payload.Ptr(i), nil
}

// TryGet is Get, but absence reports (nil, nil) instead of an error; only
// type misuse (a tag store) raises an error.
func (c *ComponentStore[T]) TryGet(e EntityID) (*T, error) {
	if c.kind == Empty {
		return nil, ErrEmptyComponent
	}
	i := c.sparse.Index(e)
	if i < 0 {
		return nil, nil
	}
	return c.payload.Ptr(i), nil
}

// GetConst returns an independent deep copy of e's payload. Fails with
// ErrEmptyComponent on a tag store, or ErrNoSuchComponent if e is absent.
func (c *ComponentStore[T]) GetConst(e EntityID) (T, error) {
	var zero T
	if c.kind == Empty {
		return zero, ErrEmptyComponent
	}
	i := c.sparse.Index(e)
	if i < 0 {
		return zero, ErrNoSuchComponent
	}
	return deepCopy(c.payload.Get(i)), nil
}

// TryGetConst is GetConst, but absence reports (zero value, nil) instead
// of an error.
func (c *ComponentStore[T]) TryGetConst(e EntityID) (T, error) {
	var zero T
	if c.kind == Empty {
		return zero, ErrEmptyComponent
	}
	i := c.sparse.Index(e)
	if i < 0 {
		return zero, nil
	}
	return deepCopy(c.payload.Get(i)), nil
}

// Raw returns the live payload slice (aliasing the store when the payload
// is a typed buffer) and the current length. Fails with ErrEmptyComponent
// on a tag store.
func (c *ComponentStore[T]) Raw() ([]T, int, error) {
	if c.kind == Empty {
		return nil, 0, ErrEmptyComponent
	}
	n := c.sparse.Len()
	return c.payload.RawSlice(n), n, nil
}

// ReplaceExisting overwrites e's payload without consulting the store's
// Replace default. Fails if e is absent or this is a tag store.
func (c *ComponentStore[T]) ReplaceExisting(e EntityID, value T) Status {
	if c.kind == Empty {
		return StatusFail
	}
	i := c.sparse.Index(e)
	if i < 0 {
		return StatusFail
	}
	c.payload.Set(i, value)
	return StatusOK
}

// Swap exchanges the positions of a and b. If instancesOnly is false, the
// underlying sparse set's entity positions are swapped too, preserving
// the (entity, payload) pairing; if true, only the payload positions are
// exchanged and the pairing intentionally changes. Fails if either entity
// is absent or a == b.
func (c *ComponentStore[T]) Swap(a, b EntityID, instancesOnly bool) Status {
	ia, ib := c.sparse.Index(a), c.sparse.Index(b)
	if ia < 0 || ib < 0 || ia == ib {
		return StatusFail
	}
	if c.kind == Standard {
		pa, pb := c.payload.Get(ia), c.payload.Get(ib)
		c.payload.Set(ia, pb)
		c.payload.Set(ib, pa)
	}
	if !instancesOnly {
		return c.sparse.Swap(a, b)
	}
	return StatusOK
}

// SortEmpty sorts a tag store by entity id, delegating directly to the
// sparse set. Fails with ErrEmptyComponent if this is not a tag store.
func (c *ComponentStore[T]) SortEmpty(less EntityLess) (Status, error) {
	if c.kind != Empty {
		return StatusFail, ErrEmptyComponent
	}
	return c.sparse.Sort(less), nil
}

// SortBasedComponent sorts a standard store by payload, keeping the
// (entity, payload) pairing intact: a stable insertion sort swaps the
// payload array directly while swapping the corresponding entity
// positions via the sparse set's Swap. Trivially fails when length <= 1.
// Fails with ErrEmptyComponent if this is a tag store.
func (c *ComponentStore[T]) SortBasedComponent(less func(a, b T) bool) (Status, error) {
	if c.kind != Standard {
		return StatusFail, ErrEmptyComponent
	}
	n := c.sparse.Len()
	if n <= 1 {
		return StatusFail, nil
	}
	for i := 1; i < n; i++ {
		for j := i; j > 0 && less(c.payload.Get(j), c.payload.Get(j-1)); j-- {
			pj, pj1 := c.payload.Get(j), c.payload.Get(j-1)
			c.payload.Set(j, pj1)
			c.payload.Set(j-1, pj)
			ej, ej1 := c.sparse.At(j), c.sparse.At(j-1)
			c.sparse.Swap(ej, ej1)
		}
	}
	return StatusOK, nil
}

// ForEach returns an iterator pairing this store's live entities with
// their dense position, so a caller can walk Data()/Raw() in lockstep
// without the store exposing closures for iteration (spec §9).
func (c *ComponentStore[T]) ForEach() *EntityIterator {
	return c.sparse.Iterator()
}
