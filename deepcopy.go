package ecscore

import "reflect"

// deepCopy returns an independent copy of v that shares no mutable
// sub-structure (slices, maps, pointers) with the original, backing
// ComponentStore.GetConst/TryGetConst. Unexported struct fields cannot be
// set through reflect, so they are copied shallowly: their values are kept,
// but any slices, maps or pointers they hold are shared with the original.
// No third-party deep-copy library
// fit this use, so this is implemented directly against reflect — a
// small, self-contained traversal rather than a dependency pulled in
// for one helper.
func deepCopy[T any](v T) T {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return v
	}
	out := deepCopyValue(rv)
	return out.Interface().(T)
}

func deepCopyValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return v
		}
		np := reflect.New(v.Type().Elem())
		np.Elem().Set(deepCopyValue(v.Elem()))
		return np
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		ns := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			ns.Index(i).Set(deepCopyValue(v.Index(i)))
		}
		return ns
	case reflect.Array:
		na := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			na.Index(i).Set(deepCopyValue(v.Index(i)))
		}
		return na
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		nm := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			nm.SetMapIndex(deepCopyValue(iter.Key()), deepCopyValue(iter.Value()))
		}
		return nm
	case reflect.Struct:
		ns := reflect.New(v.Type()).Elem()
		ns.Set(v)
		for i := 0; i < v.NumField(); i++ {
			f := ns.Field(i)
			if !f.CanSet() {
				continue
			}
			f.Set(deepCopyValue(v.Field(i)))
		}
		return ns
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		ni := reflect.New(v.Type()).Elem()
		ni.Set(deepCopyValue(v.Elem()))
		return ni
	default:
		return v
	}
}
