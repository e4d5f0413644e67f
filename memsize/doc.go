/*
Package memsize aggregates byte counts from the styling and layout
subsystems into the three report buckets DOM, Style and Other.

Overview

Memory reporting sums a fixed enumeration of size fields. Window-level
fields (DOM node sizes, style sheets, text runs, …) live in WindowSizes;
sizes of arena-allocated layout objects (line boxes, rule nodes, style
contexts, frames by kind) live in ArenaSizes. Each field maps to exactly
one bucket through a static table built once at process start; the
aggregation code iterates the tables generically, so adding a field is a
one-line table change. An incomplete table is a programming error and
detected at init.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package memsize

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stycache.memsize'.
func tracer() tracing.Trace {
	return tracing.Select("stycache.memsize")
}
