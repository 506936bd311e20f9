package set

import (
	"errors"
	"fmt"
)

// Precondition violations are panicked, wrapped with call-site context; use
// errors.Is against these sentinels when recovering. ErrConfigLocked is the
// exception: SetDefaultConfig returns it, since reacting to a locked default
// is an ordinary control-flow decision.
var (
	ErrNilSource    = errors.New("set: source must not be nil")
	ErrEmpty        = errors.New("set: empty collection")
	ErrTooMany      = errors.New("set: too many elements")
	ErrOutOfRange   = errors.New("set: index out of range")
	ErrConfigLocked = errors.New("set: default configuration is locked")
)

// assertThat guards internal invariants.
func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("set: "+msg, msgargs...)
		panic(msg)
	}
}
