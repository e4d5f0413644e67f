package stycache

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/stycache/prestree"
	"github.com/npillmayer/stycache/styctx"
	"github.com/npillmayer/stycache/style"
	"golang.org/x/sync/errgroup"
)

// Resolver is the boundary to the style resolution engine. Implementations
// run the cascade for one element, pseudo-element or anonymous box and
// return a freshly computed, immutable payload. Resolvers may be called
// from multiple goroutines concurrently and must be safe for that.
//
// The cache-hit paths of this package never invoke the resolver.
type Resolver interface {
	// ComputeStyle resolves the rules matching a pseudo-element of kind
	// pseudo against an originating computed style. pseudo may be
	// style.PseudoNone to compute an element style, with originating being
	// the parent element's style (or nil at the root).
	ComputeStyle(originating *styctx.ComputedStyles, pseudo style.PseudoType) (*styctx.ComputedStyles, error)

	// ComputeAnonBoxStyle derives the style for an anonymous box of kind
	// box, inheriting from an originating computed style.
	ComputeAnonBoxStyle(originating *styctx.ComputedStyles, box style.Atom) (*styctx.ComputedStyles, error)
}

// StyleForAnonBox returns a style context for an anonymous box of kind box
// inheriting from owner. If owner already caches a style for this kind, the
// shared context is returned; otherwise the resolver computes a payload,
// which is wrapped and, if owner is cache-eligible, cached for subsequent
// calls.
//
// The returned context is retained for the caller, who must release it.
func StyleForAnonBox(owner *styctx.Context, box style.Atom, res Resolver) (*styctx.Context, error) {
	if cached := owner.CachedAnonBoxStyle(box); cached != nil {
		tracer().Debugf("sharing anon-box style for %s", box)
		return cached.Retain(), nil
	}
	styles, err := res.ComputeAnonBoxStyle(owner.Styles(), box)
	if err != nil {
		return nil, err
	}
	cx := styctx.NewForAnonBox(owner.Scope(), box, styles)
	owner.SetCachedAnonBoxStyle(cx)
	return cx, nil
}

// StyleForLazyPseudo returns a style context for a lazily-cascaded
// pseudo-element of kind pseudo originating at owner, sharing a cached
// context when possible. Eagerly-cascaded kinds are resolved together with
// their element and have no business here; passing one is a caller bug and
// panics. Kinds supporting user-action state are resolved but never cached.
//
// The returned context is retained for the caller, who must release it.
func StyleForLazyPseudo(owner *styctx.Context, pseudo style.PseudoType, res Resolver) (*styctx.Context, error) {
	if !pseudo.IsPseudo() || pseudo.IsEagerlyCascaded() {
		panic("stycache: only lazily-cascaded pseudo styles are shared through the cache")
	}
	if cached := owner.CachedLazyPseudoStyle(pseudo); cached != nil {
		tracer().Debugf("sharing pseudo style for %s", pseudo)
		return cached.Retain(), nil
	}
	styles, err := res.ComputeStyle(owner.Styles(), pseudo)
	if err != nil {
		return nil, err
	}
	cx := styctx.NewForPseudo(owner.Scope(), pseudo, styles)
	owner.SetCachedLazyPseudoStyle(cx)
	return cx, nil
}

// ResolveSubtree computes element styles for every node of the subtree
// rooted at root and attaches them as style contexts.
//
// Resolution proceeds level by level: the payloads of one tree level are
// computed concurrently on worker goroutines, since each depends only on
// the parent styles of the previous level. Context construction and
// attachment then happen on the calling goroutine, honoring the
// single-writer discipline of the cache chains. The first resolver error
// aborts the walk; already-attached styles stay attached.
func ResolveSubtree(pc *prestree.PresContext, root *prestree.Node, res Resolver) error {
	level := []*prestree.Node{root}
	for len(level) > 0 {
		styles := make([]*styctx.ComputedStyles, len(level))
		g := new(errgroup.Group)
		for i, nd := range level {
			i, nd := i, nd
			g.Go(func() error {
				var originating *styctx.ComputedStyles
				if p := nd.Parent(); p != nil && p.StyleContext() != nil {
					originating = p.StyleContext().Styles()
				}
				cs, err := res.ComputeStyle(originating, style.PseudoNone)
				if err != nil {
					return err
				}
				styles[i] = cs
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		var next []*prestree.Node
		for i, nd := range level {
			cx := styctx.New(pc, styles[i])
			nd.SetStyleContext(cx)
			cx.Release() // the node now holds the only client reference
			next = append(next, nd.Children()...)
		}
		level = next
	}
	tracer().Debugf("resolved subtree at %v", root)
	return nil
}
