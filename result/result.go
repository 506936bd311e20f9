/*
Package result provides a fallible-value type in the spirit of Elm's Result.

A Result either holds a computed value (Ok) or the error that prevented its
computation (Err). Collection accessors with preconditions come in a Try…
variant returning a Result, for call sites that prefer inspecting the error
over recovering from a panic.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import (
	"github.com/npillmayer/icoll/maybe"
)

// Result is the outcome of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	ToMaybe() maybe.Maybe[T]
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successfully computed value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps the error of a failed computation.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// WithDefault returns the computed value, or def for a failed computation.
func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// ToMaybe forgets the error, keeping only the presence of a value.
func (r result[T]) ToMaybe() maybe.Maybe[T] {
	return maybe.From(r.value, r.err == nil)
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients pattern-match on a Result:
//
//     var v int
//     var e error
//     switch m := r.Match(); m {
//     case m.Ok(&v):    // v now holds the value
//     case m.Err(&e):   // e now holds the error
//     }
//
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
