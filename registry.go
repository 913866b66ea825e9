package ecscore

import (
	"reflect"

	"github.com/kestrelnet/ecscore/ecslog"
)

// storeEntry boxes a *ComponentStore[T] behind type-erased operations the
// Registry needs without re-asserting T at every call site (destroy,
// stats).
type storeEntry struct {
	kind   Kind
	store  any
	remove func(e EntityID) bool
	length func() int
}

// Registry owns one EntityStore and a component-type-identity -> store
// mapping, routing add/remove/get/has against the right store. Component
// type identity is keyed on reflect.Type.
type Registry struct {
	entities      *EntityStore
	stores        map[reflect.Type]*storeEntry
	defaultConfig ComponentConfig
	logger        *ecslog.Logger
	events        *EventBus
}

// RegistryOption configures a Registry at construction time.
type RegistryOption func(*Registry)

// WithLogger attaches a diagnostic logger (see package ecslog). A nil
// logger, or omitting this option, disables logging entirely.
func WithLogger(l *ecslog.Logger) RegistryOption {
	return func(r *Registry) { r.logger = l }
}

// WithEventBus attaches an EventBus. Registry.Destroy then publishes an
// EntityDestroyed event after the destroyed entity's slot is freed. A nil
// bus, or omitting this option, disables event publication entirely.
func WithEventBus(bus *EventBus) RegistryOption {
	return func(r *Registry) { r.events = bus }
}

// NewRegistry builds a Registry. A nil cfg uses DefaultConfig().
func NewRegistry(cfg *Config, opts ...RegistryOption) *Registry {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &Registry{
		entities:      NewEntityStore(cfg.EntityStore),
		stores:        make(map[reflect.Type]*storeEntry),
		defaultConfig: cfg.Component,
		logger:        ecslog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = ecslog.Nop()
	}
	return r
}

func typeKey[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

// Prepare idempotently returns the ComponentStore for T, creating one
// under the given kind/config on first call. The kind is fixed at first
// registration; subsequent calls ignore the kind argument.
func Prepare[T any](r *Registry, kind Kind, cfg ComponentConfig) (*ComponentStore[T], error) {
	key := typeKey[T]()
	if entry, ok := r.stores[key]; ok {
		cs, ok := entry.store.(*ComponentStore[T])
		if !ok {
			return nil, ErrMalformedSpec
		}
		return cs, nil
	}
	cs, err := NewComponentStore[T](kind, cfg)
	if err != nil {
		return nil, err
	}
	r.stores[key] = &storeEntry{
		kind: kind,
		store: cs,
		remove: func(e EntityID) bool {
			if !cs.Contains(e) {
				return false
			}
			cs.Remove(e)
			return true
		},
		length: cs.Len,
	}
	r.logger.ComponentRegistered(key.String(), kind.String())
	return cs, nil
}

func storeFor[T any](r *Registry) (*ComponentStore[T], bool) {
	entry, ok := r.stores[typeKey[T]()]
	if !ok {
		return nil, false
	}
	cs, ok := entry.store.(*ComponentStore[T])
	return cs, ok
}

// Create allocates a new entity.
func (r *Registry) Create() (EntityID, error) {
	before := r.entities.Cap()
	e, err := r.entities.Create()
	if err != nil {
		return EntityID(0), err
	}
	if after := r.entities.Cap(); after != before {
		r.logger.CapacityGrown("entity_store", before, after)
	}
	return e, nil
}

// Valid reports whether e is currently alive.
func (r *Registry) Valid(e EntityID) bool {
	return r.entities.IsAlive(e)
}

// RemoveAll strips e from every registered store without freeing its slot,
// leaving the entity itself alive (spec §4.5's "removeAll"). Returns the
// number of stores e was actually present in. A dead/stale handle is a
// no-op that purges nothing.
func (r *Registry) RemoveAll(e EntityID) int {
	if !r.entities.IsAlive(e) {
		return 0
	}
	purged := 0
	for _, entry := range r.stores {
		if entry.remove(e) {
			purged++
		}
	}
	return purged
}

// Destroy purges e from every registered store (via RemoveAll) then frees
// its slot. Destroying a non-live entity is a silent no-op — the single
// operation in this API that treats invalid input as a no-op rather than
// a failure.
func (r *Registry) Destroy(e EntityID) {
	if !r.entities.IsAlive(e) {
		return
	}
	purged := r.RemoveAll(e)
	_ = r.entities.Remove(e)
	r.logger.EntityDestroyed(uint64(e), purged)
	if r.events != nil {
		Publish(r.events, EntityDestroyed{ID: e})
	}
}

// Stats is a read-only diagnostic snapshot of a Registry.
type Stats struct {
	EntityCount int
	StoreCount  int
	Stores      map[string]int
}

// Stats reports entity and per-store counts.
func (r *Registry) Stats() Stats {
	s := Stats{
		EntityCount: r.entities.AliveCount(),
		StoreCount:  len(r.stores),
		Stores:      make(map[string]int, len(r.stores)),
	}
	for t, entry := range r.stores {
		s.Stores[t.String()] = entry.length()
	}
	return s
}

// Add requires Valid(e) and routes to Prepare(type, kind, cfg).Add(e, value).
func Add[T any](r *Registry, e EntityID, value T, kind Kind, cfg ComponentConfig) (Status, error) {
	if !r.entities.IsAlive(e) {
		return StatusFail, ErrInvalidHandle
	}
	cs, err := Prepare[T](r, kind, cfg)
	if err != nil {
		return StatusFail, err
	}
	before := cs.sparse.Capacity()
	st := cs.Add(e, value)
	if after := cs.sparse.Capacity(); after != before {
		r.logger.CapacityGrown(typeKey[T]().String(), before, after)
	}
	return st, nil
}

// AddTag is Add specialized for Empty-kind (tag) components.
func AddTag[T any](r *Registry, e EntityID, cfg ComponentConfig) (Status, error) {
	var zero T
	return Add[T](r, e, zero, Empty, cfg)
}

// Replace requires Valid(e), a registered store for T, and e already
// present in that store; it overwrites the payload unconditionally.
func Replace[T any](r *Registry, e EntityID, value T) (Status, error) {
	if !r.entities.IsAlive(e) {
		return StatusFail, ErrInvalidHandle
	}
	cs, ok := storeFor[T](r)
	if !ok {
		return StatusFail, ErrUnknownComponent
	}
	if !cs.Contains(e) {
		return StatusFail, ErrNoSuchComponent
	}
	return cs.ReplaceExisting(e, value), nil
}

// FetchReplace is Replace, but returns the previous payload (a snapshot
// taken before the overwrite, not the post-overwrite live reference)
// first.
func FetchReplace[T any](r *Registry, e EntityID, value T) (*T, error) {
	if !r.entities.IsAlive(e) {
		return nil, ErrInvalidHandle
	}
	cs, ok := storeFor[T](r)
	if !ok {
		return nil, ErrUnknownComponent
	}
	if cs.kind == Empty {
		return nil, ErrEmptyComponent
	}
	i := cs.sparse.Index(e)
	if i < 0 {
		return nil, ErrNoSuchComponent
	}
	prev := cs.payload.Get(i)
	cs.payload.Set(i, value)
	return &prev, nil
}

// Remove requires Valid(e) and a registered store for T.
func Remove[T any](r *Registry, e EntityID) (Status, error) {
	if !r.entities.IsAlive(e) {
		return StatusFail, ErrInvalidHandle
	}
	cs, ok := storeFor[T](r)
	if !ok {
		return StatusFail, ErrUnknownComponent
	}
	return cs.Remove(e), nil
}

// RemoveIfExist is Remove, but a missing store is a no-op success rather
// than ErrUnknownComponent.
func RemoveIfExist[T any](r *Registry, e EntityID) Status {
	cs, ok := storeFor[T](r)
	if !ok {
		return StatusOK
	}
	if !r.entities.IsAlive(e) {
		return StatusFail
	}
	return cs.Remove(e)
}

// Has requires Valid(e), then reports whether e currently has a T
// component. Unknown component types report false rather than erroring,
// but a dead/stale handle surfaces ErrInvalidHandle like Get/Remove/Replace
// do — destroy is the only deliberately silent no-op in this API (spec §7).
func Has[T any](r *Registry, e EntityID) (bool, error) {
	if !r.entities.IsAlive(e) {
		return false, ErrInvalidHandle
	}
	cs, ok := storeFor[T](r)
	if !ok {
		return false, nil
	}
	return cs.Contains(e), nil
}

// Get requires Valid(e) and a registered store for T; see
// ComponentStore.Get.
func Get[T any](r *Registry, e EntityID) (*T, error) {
	if !r.entities.IsAlive(e) {
		return nil, ErrInvalidHandle
	}
	cs, ok := storeFor[T](r)
	if !ok {
		return nil, ErrUnknownComponent
	}
	return cs.Get(e)
}

// GetConst is Get, returning an independent deep copy.
func GetConst[T any](r *Registry, e EntityID) (T, error) {
	var zero T
	if !r.entities.IsAlive(e) {
		return zero, ErrInvalidHandle
	}
	cs, ok := storeFor[T](r)
	if !ok {
		return zero, ErrUnknownComponent
	}
	return cs.GetConst(e)
}

// TryGet is Get, but reports (nil, nil) for absence — either because e
// lacks the component or because T was never registered.
func TryGet[T any](r *Registry, e EntityID) (*T, error) {
	if !r.entities.IsAlive(e) {
		return nil, ErrInvalidHandle
	}
	cs, ok := storeFor[T](r)
	if !ok {
		return nil, nil
	}
	return cs.TryGet(e)
}

// TryGetConst is TryGet, returning a value instead of a pointer.
func TryGetConst[T any](r *Registry, e EntityID) (T, error) {
	var zero T
	if !r.entities.IsAlive(e) {
		return zero, ErrInvalidHandle
	}
	cs, ok := storeFor[T](r)
	if !ok {
		return zero, nil
	}
	return cs.TryGetConst(e)
}

// Sort delegates to SortBasedComponent on the registered store for T.
func Sort[T any](r *Registry, less func(a, b T) bool) (Status, error) {
	cs, ok := storeFor[T](r)
	if !ok {
		return StatusFail, ErrUnknownComponent
	}
	return cs.SortBasedComponent(less)
}

// SortTag delegates to SortEmpty on the registered store for T.
func SortTag[T any](r *Registry, less EntityLess) (Status, error) {
	cs, ok := storeFor[T](r)
	if !ok {
		return StatusFail, ErrUnknownComponent
	}
	return cs.SortEmpty(less)
}

// ComponentSpec is one entry of a batched AddComponents call: a
// self-applying (type, kind, args, config) tuple.
type ComponentSpec interface {
	apply(r *Registry, e EntityID) (Status, error)
}

type componentAddSpec[T any] struct {
	value T
	kind  Kind
	cfg   ComponentConfig
}

func (s componentAddSpec[T]) apply(r *Registry, e EntityID) (Status, error) {
	return Add[T](r, e, s.value, s.kind, s.cfg)
}

// ComponentAdd builds a standard-component ComponentSpec for use with
// AddComponents. An optional cfg is used on first registration; without
// one, DefaultComponentConfig() is used. The Registry's own configured
// component defaults are not consulted.
func ComponentAdd[T any](value T, cfg ...ComponentConfig) ComponentSpec {
	c := DefaultComponentConfig()
	if len(cfg) > 0 {
		c = cfg[0]
	}
	return componentAddSpec[T]{value: value, kind: Standard, cfg: c}
}

// TagAdd builds a tag-component ComponentSpec for use with AddComponents.
func TagAdd[T any](cfg ...ComponentConfig) ComponentSpec {
	c := DefaultComponentConfig()
	if len(cfg) > 0 {
		c = cfg[0]
	}
	var zero T
	return componentAddSpec[T]{value: zero, kind: Empty, cfg: c}
}

// AddComponents applies each spec to e in order. A malformed entry (one
// whose apply fails) is recorded as StatusFail in its slot but does not
// roll back earlier entries — all-or-nothing is NOT guaranteed.
func AddComponents(r *Registry, e EntityID, specs []ComponentSpec) []Status {
	out := make([]Status, len(specs))
	if !r.entities.IsAlive(e) {
		for i := range out {
			out[i] = StatusFail
		}
		return out
	}
	for i, spec := range specs {
		st, err := spec.apply(r, e)
		if err != nil {
			out[i] = StatusFail
			continue
		}
		out[i] = st
	}
	return out
}
