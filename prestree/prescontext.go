package prestree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync/atomic"
	"unsafe"

	"github.com/npillmayer/stycache/memsize"
	"github.com/npillmayer/stycache/styctx"
	"github.com/npillmayer/tyse/core/dimen"
	"golang.org/x/net/html"
)

// PresContext is the scope of one styled presentation of a document.
// It implements styctx.Scope; style contexts created for this presentation
// point back to it without retaining it.
type PresContext struct {
	width, height dimen.DU // viewport geometry
	root          *Node
	liveContexts  int64 // atomic; live style contexts in this scope
}

// NewPresContext creates a presentation scope for a viewport of the given
// dimensions.
func NewPresContext(width, height dimen.DU) *PresContext {
	return &PresContext{width: width, height: height}
}

// Viewport returns the width and height of the presentation's viewport.
func (pc *PresContext) Viewport() (dimen.DU, dimen.DU) {
	return pc.width, pc.height
}

// CountContexts is part of interface styctx.Scope. It tracks the number of
// live style contexts belonging to this presentation and may be called from
// any goroutine, as contexts are released wherever the last reference drops.
func (pc *PresContext) CountContexts(delta int) {
	if n := atomic.AddInt64(&pc.liveContexts, int64(delta)); n < 0 {
		panic("stycache: more style contexts destroyed than created in this scope")
	}
}

// LiveContexts returns the momentary number of live style contexts in this
// presentation.
func (pc *PresContext) LiveContexts() int {
	return int(atomic.LoadInt64(&pc.liveContexts))
}

// SetRoot anchors the root node of the presentation tree.
func (pc *PresContext) SetRoot(root *Node) {
	pc.root = root
}

// Root returns the root node of the presentation tree, or nil.
func (pc *PresContext) Root() *Node {
	return pc.root
}

// AddWindowSizes walks the presentation tree and adds the sizes of DOM
// nodes, style contexts and frames to ws.
func (pc *PresContext) AddWindowSizes(ws *memsize.WindowSizes) {
	ws.Add(memsize.LayoutPresShell, uint64(unsafe.Sizeof(*pc)))
	if pc.root == nil {
		return
	}
	pc.root.addWindowSizes(ws)
}

func (n *Node) addWindowSizes(ws *memsize.WindowSizes) {
	nodeSize := uint64(unsafe.Sizeof(*n))
	if h := n.htmlNode; h != nil {
		switch h.Type {
		case html.TextNode:
			ws.Add(memsize.DOMTextNodes, nodeSize+uint64(len(h.Data)))
			ws.Arena.Add(memsize.TextFrames, nodeSize)
		case html.CommentNode:
			ws.Add(memsize.DOMCommentNodes, nodeSize+uint64(len(h.Data)))
		default:
			ws.Add(memsize.DOMElementNodes, nodeSize)
			ws.Arena.Add(memsize.BlockFrames, nodeSize)
		}
	} else {
		ws.Add(memsize.DOMOtherSize, nodeSize)
	}
	if cx := n.StyleContext(); cx != nil {
		cx.AddWindowSizes(ws)
	}
	for _, ch := range n.Children() {
		ch.addWindowSizes(ws)
	}
}

var _ styctx.Scope = &PresContext{}
