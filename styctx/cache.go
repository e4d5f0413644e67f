package styctx

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/stycache/style"
)

// This file holds the two sharing caches. Both are intrusive singly-linked
// chains threaded through the contexts' chain slots; see the package
// documentation for the owner/link dual role of the slots.
//
// Chain mutation is single-writer: concurrent inserts or lookups on the
// same owner from multiple goroutines are not synchronized here and must
// be prevented by the caller. Reference counting, in contrast, is atomic.

// chainRole tells how a context's chain slot is to be interpreted. The
// role is never stored; it derives from the context's own classification,
// so a context cannot be owner and link for the same cache kind at once.
type chainRole uint8

const (
	chainOwner chainRole = iota // slot is the head of the cache list anchored here
	chainLink                   // slot is the link to the next sibling in a list
)

func (cx *Context) anonBoxChainRole() chainRole {
	if cx.IsAnonBox() {
		return chainLink
	}
	return chainOwner
}

func (cx *Context) pseudoChainRole() chainRole {
	if cx.IsLazilyCascadedPseudoElement() {
		return chainLink
	}
	return chainOwner
}

// --- Anonymous-box chain ---------------------------------------------------

// CachedAnonBoxStyle looks up the cached style for an anonymous box of
// kind box inheriting from cx, or nil if none is cached. The chain is
// scanned linearly; chains are expected to stay short, as only a few
// distinct anonymous-box kinds inherit from any one style.
func (cx *Context) CachedAnonBoxStyle(box style.Atom) *Context {
	for c := cx.nextAnonBoxStyle; c != nil; c = c.nextAnonBoxStyle {
		if c.anonBox == box {
			return c
		}
	}
	return nil
}

// SetCachedAnonBoxStyle caches sc, the style of an anonymous box inheriting
// from cx, in cx's anonymous-box chain. Caching the same kind twice, or a
// context which is already linked into a chain, is a caller bug and panics.
//
// If cx is itself an anonymous box, its chain slot is a link within some
// ancestor's chain and cannot double as a list head: a style cached there
// would appear to inherit from cx's parent. In this case the insert is
// silently skipped; sc stays valid and usable, just unshared.
func (cx *Context) SetCachedAnonBoxStyle(sc *Context) {
	if sc == nil || !sc.IsAnonBox() {
		panic("stycache: only anonymous-box styles belong in the anon-box cache")
	}
	if cx.CachedAnonBoxStyle(sc.anonBox) != nil {
		panic("stycache: anon-box style for " + sc.anonBox.String() + " is already cached")
	}
	if sc.nextAnonBoxStyle != nil {
		panic("stycache: style context is already linked into an anon-box chain")
	}
	if cx.anonBoxChainRole() == chainLink {
		tracer().Debugf("%v is a chain link, not caching %v", cx, sc)
		return
	}
	sc.nextAnonBoxStyle = cx.nextAnonBoxStyle // sc takes over the reference on the old head
	cx.nextAnonBoxStyle = sc.Retain()
}

// --- Lazy-pseudo chain -----------------------------------------------------

// CachedLazyPseudoStyle looks up the cached style for a lazily-cascaded
// pseudo-element of kind pseudo originating at cx, or nil.
func (cx *Context) CachedLazyPseudoStyle(pseudo style.PseudoType) *Context {
	for c := cx.nextLazyPseudoStyle; c != nil; c = c.nextLazyPseudoStyle {
		if c.pseudo == pseudo {
			return c
		}
	}
	return nil
}

// SetCachedLazyPseudoStyle caches sc, the style of a lazily-cascaded
// pseudo-element originating at cx, in cx's lazy-pseudo chain.
//
// Unlike the anonymous-box cache, owner eligibility is asserted, not
// skipped: a lazily-cascaded pseudo style asked to own another lazy pseudo's
// cache entry indicates a logic error upstream, since lazy pseudos cannot
// originate lazy pseudos.
//
// Since lazy pseudo styles are cached on the originating element's style,
// two elements sharing that style would match the same pseudo rules, which
// is what makes sharing sound without re-matching selectors. The one case
// where this breaks is pseudo-element kinds whose rules depend on transient
// user-action state; those are never cached, and the insert is silently
// skipped.
func (cx *Context) SetCachedLazyPseudoStyle(sc *Context) {
	if sc == nil || !sc.pseudo.IsPseudo() || sc.IsAnonBox() {
		panic("stycache: only pseudo-element styles belong in the lazy-pseudo cache")
	}
	if !sc.IsLazilyCascadedPseudoElement() {
		panic("stycache: eagerly cascaded pseudo styles are not cached for sharing")
	}
	if cx.CachedLazyPseudoStyle(sc.pseudo) != nil {
		panic("stycache: pseudo style for " + sc.pseudo.String() + " is already cached")
	}
	if sc.nextLazyPseudoStyle != nil {
		panic("stycache: style context is already linked into a lazy-pseudo chain")
	}
	if cx.pseudoChainRole() == chainLink {
		panic("stycache: lazy pseudo styles cannot own a lazy-pseudo cache")
	}
	if sc.pseudo.SupportsUserActionState() {
		tracer().Debugf("%s may depend on user-action state, not caching", sc.pseudo)
		return
	}
	sc.nextLazyPseudoStyle = cx.nextLazyPseudoStyle // sc takes over the reference on the old head
	cx.nextLazyPseudoStyle = sc.Retain()
}

// --- Debugging -------------------------------------------------------------

// DumpChains returns a one-line-per-entry description of both cache chains
// of cx, for tracing and tests.
func (cx *Context) DumpChains() string {
	var sb strings.Builder
	sb.WriteString("anon-box chain:")
	for c := cx.nextAnonBoxStyle; c != nil; c = c.nextAnonBoxStyle {
		sb.WriteString(" " + c.anonBox.String())
	}
	sb.WriteString("\nlazy-pseudo chain:")
	for c := cx.nextLazyPseudoStyle; c != nil; c = c.nextLazyPseudoStyle {
		sb.WriteString(" " + c.pseudo.String())
	}
	return sb.String()
}
