package maybe_test

import (
	"testing"

	. "github.com/npillmayer/icoll/maybe"
)

func TestMaybeMatch(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if Just(7).WithDefault(100) != 7 {
		t.Error("expected Just(7) to have value 7, isn't")
	}
	if Nothing[int]().WithDefault(100) != 100 {
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeFrom(t *testing.T) {
	if From(7, true).WithDefault(-1) != 7 {
		t.Error("expected From(7, true) to be Just(7), isn't")
	}
	if From(7, false).WithDefault(-1) != -1 {
		t.Error("expected From(7, false) to be Nothing, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	double := func(n int) int { return n * 2 }

	if Just(7).Map(double).WithDefault(-1) != 14 {
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}
	if Map(double, Just(10)).WithDefault(-1) != 20 {
		t.Error("expected Map(…, Just 10) to return 20, didn't")
	}
	if Nothing[int]().Map(double).WithDefault(99) != 99 {
		t.Error("expected Nothing.Map(…) to stay Nothing, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	gt := AndThen(gt0, Just(7))
	var isGreater bool
	switch m := gt.Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}

	none := AndThen(gt0, Nothing[int]())
	switch m := none.Match(); m {
	case m.Just(&isGreater):
		t.Error("expected Nothing |> andThen(gt0) to stay Nothing, isn't")
	case m.Nothing():
	}
}
