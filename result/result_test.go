package result_test

import (
	"errors"
	"testing"

	. "github.com/npillmayer/icoll/result"
)

func TestResultMatch(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultWithDefault(t *testing.T) {
	if Ok(7).WithDefault(100) != 7 {
		t.Error("expected Ok(7) to have value 7, isn't")
	}
	if Err[int](errors.New("boom")).WithDefault(100) != 100 {
		t.Error("expected Err to default to 100, isn't")
	}
}

func TestResultToMaybe(t *testing.T) {
	if Ok(7).ToMaybe().WithDefault(-1) != 7 {
		t.Error("expected Ok(7) to convert to Just(7), didn't")
	}
	if Err[int](errors.New("boom")).ToMaybe().WithDefault(-1) != -1 {
		t.Error("expected Err to convert to Nothing, didn't")
	}
}
