/*
Package prestree implements the presentation tree which consumes shared
style contexts.

Overview

A PresContext is the scope of one styled presentation of a document: it
knows the viewport geometry, anchors the root of the presentation tree and
keeps book on live style contexts for memory reporting. Style contexts
point back to their PresContext non-owningly (see styctx.Scope).

Nodes of the presentation tree link an HTML DOM node to a retained style
context. Styling and layout of HTML/CSS involves a lot of operations on
trees; nodes here maintain a concurrency-safe slice of children, so that
subtrees may be built up from parallel workers, while the style-context
chains themselves stay single-writer.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package prestree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stycache.tree'.
func tracer() tracing.Trace {
	return tracing.Select("stycache.tree")
}
