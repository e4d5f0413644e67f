/*
Package stycache wires the style-sharing cache to a style resolution
engine: it implements the lookup-before-compute protocol on top of the
chain caches of package styctx.

Overview

A resolution engine (the Resolver interface) produces immutable computed
style payloads. Payload computation is the expensive part of styling, so
before asking for a fresh computation for an anonymous box or a
lazily-cascaded pseudo-element, callers go through StyleForAnonBox and
StyleForLazyPseudo: a cache hit returns the already-computed shared style
context (retained for the caller), a miss resolves, wraps and caches.

Payloads may be computed in parallel (see ResolveSubtree), but cache
population is confined to the calling goroutine: the chain caches are
single-writer by design, while context reference counts are atomic and may
be manipulated from any goroutine.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stycache

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stycache.resolve'.
func tracer() tracing.Trace {
	return tracing.Select("stycache.resolve")
}
