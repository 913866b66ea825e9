package ecscore_test

import (
	"testing"

	"github.com/kestrelnet/ecscore"
	"github.com/stretchr/testify/require"
)

type velocity struct{ VX, VY float64 }
type tagDead struct{}

// hasOK asserts Has reported no error (the entity is alive) and returns
// the presence bool, so call sites read as plainly as the old bool-only
// Has did.
func hasOK[T any](t *testing.T, r *ecscore.Registry, e ecscore.EntityID) bool {
	t.Helper()
	ok, err := ecscore.Has[T](r, e)
	require.NoError(t, err)
	return ok
}

func TestRegistryCreateAndDestroy(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, err := r.Create()
	require.NoError(t, err)
	require.True(t, r.Valid(e))

	r.Destroy(e)
	require.False(t, r.Valid(e))
}

func TestRegistryDestroyingDeadEntityIsNoOp(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, _ := r.Create()
	r.Destroy(e)
	require.NotPanics(t, func() { r.Destroy(e) })
}

func TestRegistryAddAndGet(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, _ := r.Create()

	st, err := ecscore.Add[position](r, e, position{X: 1, Y: 2}, ecscore.Standard, ecscore.DefaultComponentConfig())
	require.NoError(t, err)
	require.True(t, st.Ok())

	p, err := ecscore.Get[position](r, e)
	require.NoError(t, err)
	require.Equal(t, position{X: 1, Y: 2}, *p)
}

func TestRegistryAddOnInvalidHandleFails(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, _ := r.Create()
	r.Destroy(e)

	_, err := ecscore.Add[position](r, e, position{}, ecscore.Standard, ecscore.DefaultComponentConfig())
	require.ErrorIs(t, err, ecscore.ErrInvalidHandle)
}

func TestRegistryGetOnUnregisteredTypeFails(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, _ := r.Create()
	_, err := ecscore.Get[position](r, e)
	require.ErrorIs(t, err, ecscore.ErrUnknownComponent)
}

func TestRegistryTryGetOnUnregisteredTypeIsNilNoError(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, _ := r.Create()
	p, err := ecscore.TryGet[position](r, e)
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestRegistryAddTag(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, _ := r.Create()

	st, err := ecscore.AddTag[tagDead](r, e, ecscore.DefaultComponentConfig())
	require.NoError(t, err)
	require.True(t, st.Ok())
	require.True(t, hasOK[tagDead](t, r, e))
}

func TestRegistryReplaceRequiresExistingComponent(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, _ := r.Create()

	_, err := ecscore.Replace[position](r, e, position{X: 1})
	require.ErrorIs(t, err, ecscore.ErrUnknownComponent)

	ecscore.Add[position](r, e, position{X: 1}, ecscore.Standard, ecscore.DefaultComponentConfig())
	st, err := ecscore.Replace[position](r, e, position{X: 9})
	require.NoError(t, err)
	require.True(t, st.Ok())

	p, _ := ecscore.Get[position](r, e)
	require.Equal(t, 9.0, p.X)
}

func TestRegistryFetchReplaceReturnsSnapshotNotLiveAlias(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, _ := r.Create()
	ecscore.Add[position](r, e, position{X: 1}, ecscore.Standard, ecscore.DefaultComponentConfig())

	prev, err := ecscore.FetchReplace[position](r, e, position{X: 99})
	require.NoError(t, err)
	require.Equal(t, 1.0, prev.X)

	cur, _ := ecscore.Get[position](r, e)
	require.Equal(t, 99.0, cur.X)
	// prev must not have been mutated by the overwrite.
	require.Equal(t, 1.0, prev.X)
}

func TestRegistryRemoveAndRemoveIfExist(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, _ := r.Create()
	ecscore.Add[position](r, e, position{X: 1}, ecscore.Standard, ecscore.DefaultComponentConfig())

	st, err := ecscore.Remove[position](r, e)
	require.NoError(t, err)
	require.True(t, st.Ok())
	require.False(t, hasOK[position](t, r, e))

	// Removing again with Remove fails with StatusFail but no error (the
	// type is registered; the entity just lacks the component).
	st, err = ecscore.Remove[position](r, e)
	require.NoError(t, err)
	require.False(t, st.Ok())

	// RemoveIfExist on a never-registered type is a no-op success.
	st = ecscore.RemoveIfExist[velocity](r, e)
	require.True(t, st.Ok())
}

func TestRegistryDestroyPurgesAllStores(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, _ := r.Create()
	ecscore.Add[position](r, e, position{X: 1}, ecscore.Standard, ecscore.DefaultComponentConfig())
	ecscore.Add[velocity](r, e, velocity{VX: 1}, ecscore.Standard, ecscore.DefaultComponentConfig())

	r.Destroy(e)

	e2, _ := r.Create()
	require.False(t, hasOK[position](t, r, e2))
	require.False(t, hasOK[velocity](t, r, e2))
}

func TestRegistrySortAndSortTag(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e1, _ := r.Create()
	e2, _ := r.Create()
	ecscore.Add[position](r, e1, position{X: 2}, ecscore.Standard, ecscore.DefaultComponentConfig())
	ecscore.Add[position](r, e2, position{X: 1}, ecscore.Standard, ecscore.DefaultComponentConfig())

	st, err := ecscore.Sort[position](r, func(a, b position) bool { return a.X < b.X })
	require.NoError(t, err)
	require.True(t, st.Ok())

	_, err = ecscore.SortTag[tagDead](r, func(a, b ecscore.EntityID) bool { return a < b })
	require.ErrorIs(t, err, ecscore.ErrUnknownComponent)
}

func TestRegistryAddComponentsAppliesEachSpec(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, _ := r.Create()

	statuses := ecscore.AddComponents(r, e, []ecscore.ComponentSpec{
		ecscore.ComponentAdd[position](position{X: 1, Y: 2}),
		ecscore.ComponentAdd[velocity](velocity{VX: 3}),
		ecscore.TagAdd[tagDead](),
	})
	require.Len(t, statuses, 3)
	for _, st := range statuses {
		require.True(t, st.Ok())
	}
	require.True(t, hasOK[position](t, r, e))
	require.True(t, hasOK[velocity](t, r, e))
	require.True(t, hasOK[tagDead](t, r, e))
}

func TestRegistryAddComponentsOnDeadEntityAllFail(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, _ := r.Create()
	r.Destroy(e)

	statuses := ecscore.AddComponents(r, e, []ecscore.ComponentSpec{
		ecscore.ComponentAdd[position](position{X: 1}),
	})
	require.Len(t, statuses, 1)
	require.False(t, statuses[0].Ok())
}

func TestRegistryHasOnDestroyedEntityRaisesInvalidHandle(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, _ := r.Create()
	ecscore.Add[position](r, e, position{X: 1}, ecscore.Standard, ecscore.DefaultComponentConfig())
	r.Destroy(e)

	ok, err := ecscore.Has[position](r, e)
	require.ErrorIs(t, err, ecscore.ErrInvalidHandle)
	require.False(t, ok)
}

func TestRegistryHasOnUnregisteredTypeIsFalseNoError(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, _ := r.Create()

	ok, err := ecscore.Has[velocity](r, e)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRegistryRemoveAllStripsComponentsButKeepsEntityAlive(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, _ := r.Create()
	ecscore.Add[position](r, e, position{X: 1}, ecscore.Standard, ecscore.DefaultComponentConfig())
	ecscore.Add[velocity](r, e, velocity{VX: 1}, ecscore.Standard, ecscore.DefaultComponentConfig())

	purged := r.RemoveAll(e)
	require.Equal(t, 2, purged)
	require.True(t, r.Valid(e))
	require.False(t, hasOK[position](t, r, e))
	require.False(t, hasOK[velocity](t, r, e))
}

func TestRegistryRemoveAllOnDeadEntityIsNoOp(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e, _ := r.Create()
	r.Destroy(e)
	require.Equal(t, 0, r.RemoveAll(e))
}

func TestRegistryStats(t *testing.T) {
	r := ecscore.NewRegistry(nil)
	e1, _ := r.Create()
	e2, _ := r.Create()
	ecscore.Add[position](r, e1, position{X: 1}, ecscore.Standard, ecscore.DefaultComponentConfig())
	ecscore.Add[position](r, e2, position{X: 2}, ecscore.Standard, ecscore.DefaultComponentConfig())
	r.Destroy(e1)

	stats := r.Stats()
	require.Equal(t, 1, stats.EntityCount)
	require.Equal(t, 1, stats.StoreCount)
}
