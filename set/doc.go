/*
Package set implements an immutable set with structural sharing and deferred
materialization.

An immutable set has copy-on-write behaviour: each “modification” (adding,
removing, merging) creates a new set value, leaving the original unmodified.
Modifications are not applied right away; they are recorded as deferred
states on top of the previous state and flushed into a flat backing store on
the first read. Repeated modify-then-read cycles therefore amortize to a
single materialization pass.

Every set carries a Config, selecting the equality strategy used by
comparisons (deep vs. identity), whether materialization sorts the elements,
and whether the collection hash is cached. Sets constructed without an
explicit configuration use the process-wide default, which may be locked
against further change during application startup.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package set

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'icoll.set'.
func tracer() tracing.Trace {
	return tracing.Select("icoll.set")
}
