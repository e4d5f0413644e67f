/*
Package style holds the vocabulary of computed styles: property values,
property groups, pseudo-element kinds and anonymous-box kinds.

Overview

Styling a document produces computed styles, which clients of this module
receive as immutable payloads (see package styctx). Package style provides
the building blocks these payloads are made of. CSS knows a whole lot of
properties; we segment them into logical groups ("style structs" in layout
engine parlance), which also serve as the granularity for recording which
parts of a style have been resolved.

Pseudo-element kinds are described by a static table which classifies every
kind as eagerly or lazily cascaded, and marks kinds whose matched rules may
depend on transient user-action state. These classifications gate the style
sharing performed by package styctx.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stycache.style'.
func tracer() tracing.Trace {
	return tracing.Select("stycache.style")
}
