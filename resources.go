package ecscore

import "reflect"

// Resources manages a collection of world-global, non-per-entity values —
// a clock, an asset table, tuning constants — keyed by type, with at most
// one value of a given type present at a time. Backed by a slice plus a
// free list so IDs get reused instead of growing without bound.
type Resources struct {
	items   []any
	types   map[reflect.Type]int
	freeIDs []int
}

// Add stores res and returns its ID. Panics if res is nil or a resource of
// the same dynamic type is already present — this is a caller-misuse
// condition, not a runtime failure the caller is meant to recover from.
func (r *Resources) Add(res any) int {
	if res == nil {
		panic("ecscore: cannot add a nil resource")
	}
	t := reflect.TypeOf(res)
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	if _, ok := r.types[t]; ok {
		panic("ecscore: resource of type " + t.String() + " already exists")
	}
	var id int
	if len(r.freeIDs) > 0 {
		id = r.freeIDs[len(r.freeIDs)-1]
		r.freeIDs = r.freeIDs[:len(r.freeIDs)-1]
		r.items[id] = res
	} else {
		r.items = append(r.items, res)
		id = len(r.items) - 1
	}
	r.types[t] = id
	return id
}

// Has reports whether a resource is present at id.
func (r *Resources) Has(id int) bool {
	return id >= 0 && id < len(r.items) && r.items[id] != nil
}

// Get returns the resource at id, or nil if absent.
func (r *Resources) Get(id int) any {
	if !r.Has(id) {
		return nil
	}
	return r.items[id]
}

// Remove drops the resource at id, if present, freeing the slot for reuse.
func (r *Resources) Remove(id int) {
	if !r.Has(id) {
		return
	}
	t := reflect.TypeOf(r.items[id])
	delete(r.types, t)
	r.items[id] = nil
	r.freeIDs = append(r.freeIDs, id)
}

// Clear drops every resource.
func (r *Resources) Clear() {
	for i := range r.items {
		r.items[i] = nil
	}
	r.items = r.items[:0]
	clear(r.types)
	r.freeIDs = r.freeIDs[:0]
}

// HasResource reports whether a resource of type T is present, and its ID.
func HasResource[T any](r *Resources) (bool, int) {
	t := reflect.TypeOf((*T)(nil))
	if id, ok := r.types[t]; ok {
		return true, id
	}
	return false, -1
}

// GetResource returns the resource of type T, and its ID, or (nil, -1) if
// absent.
func GetResource[T any](r *Resources) (*T, int) {
	t := reflect.TypeOf((*T)(nil))
	id, ok := r.types[t]
	if !ok {
		return nil, -1
	}
	res, ok := r.items[id].(*T)
	if !ok {
		return nil, -1
	}
	return res, id
}
