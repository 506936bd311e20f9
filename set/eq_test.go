package set

import (
	"testing"
)

func TestEqualItemsNil(t *testing.T) {
	eq := DeepEquality[int]()
	if !EqualItems[int](nil, nil, eq, false) {
		t.Error("expected two nil slices to be equal")
	}
	if EqualItems(nil, []int{}, eq, false) {
		t.Error("expected nil to differ from a present slice")
	}
	if EqualItems([]int{1}, nil, eq, false) {
		t.Error("expected a present slice to differ from nil")
	}
}

func TestEqualItemsUnordered(t *testing.T) {
	eq := DeepEquality[int]()
	if !EqualItems([]int{1, 2, 3}, []int{3, 1, 2}, eq, false) {
		t.Error("expected unordered comparison to ignore positions")
	}
	if EqualItems([]int{1, 2, 3}, []int{3, 1, 2}, eq, true) {
		t.Error("expected ordered comparison to honor positions")
	}
	if EqualItems([]int{1, 2}, []int{1, 2, 3}, eq, false) {
		t.Error("expected length fast-reject to fail the comparison")
	}
}

func TestEqualItemsIdenticalBacking(t *testing.T) {
	items := []int{1, 2, 3}
	if !EqualItems(items, items, IdentityEquality[int](), true) {
		t.Error("expected identical slices to short-circuit to equal")
	}
}

func TestDeepVsIdentity(t *testing.T) {
	type box struct{ n int }
	a, b := &box{7}, &box{7}
	if !DeepEquality[*box]().Eq(a, b) {
		t.Error("expected deep equality to accept structurally equal pointees")
	}
	if IdentityEquality[*box]().Eq(a, b) {
		t.Error("expected identity equality to reject distinct pointers")
	}
	if !IdentityEquality[*box]().Eq(a, a) {
		t.Error("expected identity equality to accept the same pointer")
	}
}

func TestHashItemsOrderInsensitive(t *testing.T) {
	eq := IdentityEquality[int]()
	h1 := hashItems([]int{1, 2, 3}, eq)
	h2 := hashItems([]int{3, 2, 1}, eq)
	if h1 != h2 {
		t.Errorf("expected order-insensitive hash, have %x vs %x", h1, h2)
	}
	h3 := hashItems([]int{1, 2}, eq)
	if h1 == h3 {
		t.Error("expected different element sets to hash differently")
	}
}

func TestDeepHashConsistent(t *testing.T) {
	type box struct{ n int }
	eq := DeepEquality[*box]()
	a, b := &box{7}, &box{7}
	if eq.HashItem(a) != eq.HashItem(b) {
		t.Error("expected deep-equal struct pointees to hash alike")
	}
}
