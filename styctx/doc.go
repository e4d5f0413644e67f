/*
Package styctx caches and shares immutable computed-style results.

Overview

Resolving style for a document is expensive, and structurally identical
elements frequently end up with identical computed styles. A Context wraps
one immutable computed-style payload and records where it may be reused
instead of recomputed: every context carries two small intrusive caches, one
for the styles of anonymous boxes inheriting from it, one for the styles of
lazily-cascaded pseudo-elements originating at it.

Both caches are singly-linked chains whose slots play a dual role. For a
context which is not itself a member of a cache kind, the slot is the head
of the chain of cached children anchored at this context (the context is an
"owner"). For a context which is such a member, the same slot holds the
link to its next sibling within the chain it was inserted into (the context
is a "link"). The role is never stored; it derives from the context's own
classification (IsAnonBox, IsLazilyCascadedPseudoElement), and a context can
never be owner and link for the same cache kind at once. Chains are short,
acyclic, and a context is inserted as a link at most once per kind.

Contexts are reference counted. The count is maintained atomically, since a
payload computed on one worker goroutine may be released from another. Chain
mutation, in contrast, is deliberately unsynchronized: lookups and inserts
on an owner must be confined to a single goroutine at a time (typically the
coordinating goroutine of the styling pass, see the package root).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styctx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stycache.ctx'.
func tracer() tracing.Trace {
	return tracing.Select("stycache.ctx")
}
