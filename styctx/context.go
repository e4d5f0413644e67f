package styctx

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/npillmayer/stycache/memsize"
	"github.com/npillmayer/stycache/style"
)

// Scope is the non-owning back-reference from a style context to the
// presentation it styles (see package prestree for the default
// implementation). The scope keeps book on live contexts for memory
// reporting; it must never retain contexts itself, or scope and context
// would keep each other alive.
type Scope interface {
	CountContexts(delta int)
}

// --- Computed styles -------------------------------------------------------

// ComputedStyles is the immutable payload of a style context: the result of
// resolving one element or pseudo-element against a rule set. Payloads are
// produced by a resolution engine outside of this package and must not be
// modified once attached to a context.
//
// A payload may embed a read-only cross-link to the computed style of the
// ':visited' variant of its element. The link is not an ownership edge;
// the visited style's lifetime is managed by whoever resolved it.
type ComputedStyles struct {
	props   *style.PropertyMap
	visited *Context
}

// NewComputedStyles wraps a property map into a payload. visited may be nil.
func NewComputedStyles(props *style.PropertyMap, visited *Context) *ComputedStyles {
	return &ComputedStyles{props: props, visited: visited}
}

// Props returns the properties of the computed style.
func (cs *ComputedStyles) Props() *style.PropertyMap {
	if cs == nil {
		return nil
	}
	return cs.props
}

// --- Style contexts --------------------------------------------------------

// Context is a shareable, reference-counted node wrapping one computed-style
// payload. Identity metadata (pseudo-element kind, anonymous-box kind) is
// fixed at construction, as are the payload and the scope back-reference.
// Only the chain slots and the resolved struct set mutate afterwards.
type Context struct {
	refcnt  int32 // atomic; see Retain and Release
	scope   Scope // non-owning
	pseudo  style.PseudoType
	anonBox style.Atom // NoAtom unless this styles an anonymous box

	styles *ComputedStyles

	// The two cache-chain slots. Each is either a list head or a sibling
	// link, depending on this context's own classification; see the package
	// documentation. Slots own a reference on the context they point to.
	nextAnonBoxStyle    *Context
	nextLazyPseudoStyle *Context

	resolved style.StructSet // which style-struct categories have been resolved
}

// New creates a style context for an element style. The new context starts
// with a reference count of one, owned by the caller.
func New(scope Scope, styles *ComputedStyles) *Context {
	return newContext(scope, style.PseudoNone, style.NoAtom, styles)
}

// NewForPseudo creates a style context for a pseudo-element style.
func NewForPseudo(scope Scope, pseudo style.PseudoType, styles *ComputedStyles) *Context {
	if !pseudo.IsPseudo() {
		panic("stycache: pseudo-element style context needs a pseudo-element kind")
	}
	return newContext(scope, pseudo, style.NoAtom, styles)
}

// NewForAnonBox creates a style context for an anonymous box of kind box.
func NewForAnonBox(scope Scope, box style.Atom, styles *ComputedStyles) *Context {
	if box == style.NoAtom {
		panic("stycache: anonymous-box style context needs an anonymous-box kind")
	}
	return newContext(scope, style.PseudoNone, box, styles)
}

func newContext(scope Scope, pseudo style.PseudoType, box style.Atom, styles *ComputedStyles) *Context {
	cx := &Context{
		refcnt:  1,
		scope:   scope,
		pseudo:  pseudo,
		anonBox: box,
		styles:  styles,
	}
	if scope != nil {
		scope.CountContexts(1)
	}
	return cx
}

func (cx *Context) String() string {
	switch {
	case cx == nil:
		return "(Context nil)"
	case cx.IsAnonBox():
		return fmt.Sprintf("(Context anon=%s)", cx.anonBox)
	case cx.pseudo.IsPseudo():
		return fmt.Sprintf("(Context pseudo=%s)", cx.pseudo)
	}
	return "(Context element)"
}

// Scope returns the presentation scope this context belongs to.
func (cx *Context) Scope() Scope {
	return cx.scope
}

// Styles returns the computed-style payload.
func (cx *Context) Styles() *ComputedStyles {
	return cx.styles
}

// Pseudo returns the pseudo-element kind, or style.PseudoNone.
func (cx *Context) Pseudo() style.PseudoType {
	return cx.pseudo
}

// AnonBox returns the anonymous-box kind, or style.NoAtom.
func (cx *Context) AnonBox() style.Atom {
	return cx.anonBox
}

// IsAnonBox is true if this context styles an anonymous box.
func (cx *Context) IsAnonBox() bool {
	return cx.anonBox != style.NoAtom
}

// IsLazilyCascadedPseudoElement is true if this context styles a
// pseudo-element whose style is not eagerly computed via independent
// selector matching, but derived by inheriting from its originating
// element's resolved style. Such styles are sharing candidates.
func (cx *Context) IsLazilyCascadedPseudoElement() bool {
	return cx.pseudo.IsPseudo() && !cx.pseudo.IsEagerlyCascaded()
}

// StyleIfVisited returns the computed style of the ':visited' variant of
// this context's element, or nil. This is a plain read accessor on the
// payload's cross-link; it does not touch the cache chains.
func (cx *Context) StyleIfVisited() *Context {
	if cx.styles == nil {
		return nil
	}
	return cx.styles.visited
}

// --- Reference counting ----------------------------------------------------

// Retain increments the reference count and returns cx, for chaining.
// Safe to call from any goroutine.
func (cx *Context) Retain() *Context {
	atomic.AddInt32(&cx.refcnt, 1)
	return cx
}

// Release decrements the reference count. Dropping the last reference
// destroys the context, which in turn releases the chain references it
// owns, so an owner going away tears down its whole cache transitively.
// Releasing more often than retained is a caller bug and panics.
// Safe to call from any goroutine.
func (cx *Context) Release() {
	rc := atomic.AddInt32(&cx.refcnt, -1)
	if rc < 0 {
		panic("stycache: style context released more often than retained")
	}
	if rc == 0 {
		cx.destroy()
	}
}

// refCount is test support; the value is momentary.
func (cx *Context) refCount() int32 {
	return atomic.LoadInt32(&cx.refcnt)
}

func (cx *Context) destroy() {
	tracer().Debugf("destroying %v", cx)
	if next := cx.nextAnonBoxStyle; next != nil {
		cx.nextAnonBoxStyle = nil
		next.Release()
	}
	if next := cx.nextLazyPseudoStyle; next != nil {
		cx.nextLazyPseudoStyle = nil
		next.Release()
	}
	cx.styles = nil
	if cx.scope != nil {
		cx.scope.CountContexts(-1)
		cx.scope = nil
	}
}

// --- Resolved style structs ------------------------------------------------

// MarkStructResolved records that a style-struct category of the payload
// has been materialized.
func (cx *Context) MarkStructResolved(category string) {
	cx.resolved.Mark(category)
}

// HasResolvedStruct tests wether a style-struct category has been
// materialized for this context.
func (cx *Context) HasResolvedStruct(category string) bool {
	return cx.resolved.Has(category)
}

// ResolveSameStructsAs makes cx match other in terms of which style-struct
// categories have been resolved, without recomputing any of them. The
// caller must know both contexts to have been resolved against equivalent
// rule sets; this cannot be verified here. The resolved-set is copied
// wholesale.
func (cx *Context) ResolveSameStructsAs(other *Context) {
	cx.resolved = other.resolved.Clone()
}

// --- Memory reporting ------------------------------------------------------

// AddWindowSizes adds this context's memory footprint to the style-context
// and style-struct arena entries of ws.
func (cx *Context) AddWindowSizes(ws *memsize.WindowSizes) {
	ws.Arena.Add(memsize.StyleContexts, uint64(unsafe.Sizeof(*cx)))
	if cx.styles != nil {
		ws.Arena.Add(memsize.StyleStructs, cx.styles.props.ByteEstimate())
	}
}
