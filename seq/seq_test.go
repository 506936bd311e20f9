package seq_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/icoll"
	"github.com/npillmayer/icoll/seq"
)

func TestDistinct(t *testing.T) {
	got := slices.Collect(seq.Distinct(slices.Values([]int{3, 1, 2, 2, 1})))
	if !slices.Equal(got, []int{3, 1, 2}) {
		t.Errorf("expected distinct elements [3 1 2], have %v", got)
	}
}

func TestDistinctLazy(t *testing.T) {
	// pulling only the first element must not drain the source
	pulled := 0
	src := func(yield func(int) bool) {
		for _, x := range []int{1, 1, 2, 3} {
			pulled++
			if !yield(x) {
				return
			}
		}
	}
	for range seq.Distinct(src) {
		break
	}
	if pulled != 1 {
		t.Errorf("expected a single pull from the source, have %d", pulled)
	}
}

func TestDiff(t *testing.T) {
	got := slices.Collect(seq.Diff(slices.Values([]int{5, 4, 6, 4}), 4, 9))
	if !slices.Equal(got, []int{5, 6}) {
		t.Errorf("expected difference [5 6], have %v", got)
	}
}

func TestCombine(t *testing.T) {
	pairs := seq.Combine([]int{1, 2}, []string{"a", "b"}, false)
	if len(pairs) != 2 || !pairs[0].Matches(icoll.P(1, "a")) {
		t.Errorf("expected pairs [(1 a) (2 b)], have %v", pairs)
	}
	l, r := pairs[1].Decompose()
	if l != 2 || r != "b" {
		t.Errorf("expected second pair to decompose into 2 and b, have %v and %v", l, r)
	}
}

func TestCombineUneven(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Error("expected combining uneven sequences to panic, didn't")
			return
		}
		if err, ok := r.(error); !ok || !errors.Is(err, seq.ErrUneven) {
			t.Errorf("expected a panic wrapping ErrUneven, have %v", r)
		}
	}()
	seq.Combine([]int{1, 2, 3}, []string{"a"}, false)
}

func TestCombineUnevenPermitted(t *testing.T) {
	pairs := seq.Combine([]int{1, 2, 3}, []string{"a"}, true)
	if len(pairs) != 1 || !pairs[0].Matches(icoll.P(1, "a")) {
		t.Errorf("expected truncation to [(1 a)], have %v", pairs)
	}
}
