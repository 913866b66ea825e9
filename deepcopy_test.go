package ecscore

import "testing"

type deepCopyNested struct {
	Values []int
	Lookup map[string]int
	Child  *deepCopyNested
}

func TestDeepCopyPrimitive(t *testing.T) {
	if got := deepCopy(42); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestDeepCopySliceIsIndependent(t *testing.T) {
	original := deepCopyNested{Values: []int{1, 2, 3}}
	copied := deepCopy(original)
	copied.Values[0] = 99
	if original.Values[0] != 1 {
		t.Fatalf("mutating the copy's slice affected the original: %v", original.Values)
	}
}

func TestDeepCopyMapIsIndependent(t *testing.T) {
	original := deepCopyNested{Lookup: map[string]int{"a": 1}}
	copied := deepCopy(original)
	copied.Lookup["a"] = 99
	if original.Lookup["a"] != 1 {
		t.Fatalf("mutating the copy's map affected the original: %v", original.Lookup)
	}
}

func TestDeepCopyNestedPointerIsIndependent(t *testing.T) {
	original := deepCopyNested{Child: &deepCopyNested{Values: []int{7}}}
	copied := deepCopy(original)
	copied.Child.Values[0] = 99
	if original.Child.Values[0] != 7 {
		t.Fatalf("mutating the copy's nested pointer affected the original: %v", original.Child.Values)
	}
	if copied.Child == original.Child {
		t.Fatal("expected distinct pointer identity for nested struct")
	}
}

func TestDeepCopyNilFieldsStayNil(t *testing.T) {
	original := deepCopyNested{}
	copied := deepCopy(original)
	if copied.Values != nil || copied.Lookup != nil || copied.Child != nil {
		t.Fatalf("expected nil fields to stay nil, got %+v", copied)
	}
}
