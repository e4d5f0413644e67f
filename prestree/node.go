package prestree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/stycache/styctx"
	"golang.org/x/net/html"
)

// Node is a node of the presentation tree, linking an HTML DOM node to a
// style context. Nodes retain the style context set on them and release it
// when the style changes or the subtree is torn down.
type Node struct {
	parent   *Node
	children childrenSlice // mutex-protected slice of children nodes
	htmlNode *html.Node
	styles   *styctx.Context // retained; nil until styled
}

// NewNode creates a presentation node linked to an HTML node.
func NewNode(h *html.Node) *Node {
	return &Node{htmlNode: h}
}

func (n *Node) String() string {
	name := "#anonymous"
	if n.htmlNode != nil {
		name = n.htmlNode.Data
	}
	return fmt.Sprintf("(Node %s #ch=%d)", name, n.ChildCount())
}

// HTMLNode returns the HTML DOM node corresponding to this node, or nil
// for layout-generated nodes.
func (n *Node) HTMLNode() *html.Node {
	return n.htmlNode
}

// StyleContext returns the style context of this node, without retaining
// it. Callers keeping the context beyond the node's lifetime must retain
// it themselves.
func (n *Node) StyleContext() *styctx.Context {
	return n.styles
}

// SetStyleContext attaches a style context to this node. The node retains
// cx and releases any context previously set. cx may be nil to just drop
// the current style.
func (n *Node) SetStyleContext(cx *styctx.Context) {
	if cx != nil {
		cx.Retain()
	}
	if n.styles != nil {
		n.styles.Release()
	}
	n.styles = cx
}

// AddChild appends a child node, connecting it to this node as its parent.
// It returns the parent node to allow for chaining.
//
// This operation is concurrency-safe.
func (n *Node) AddChild(ch *Node) *Node {
	if ch != nil {
		n.children.addChild(ch, n)
	}
	return n
}

// Parent returns the parent node or nil (for the root of the tree).
func (n *Node) Parent() *Node {
	return n.parent
}

// ChildCount returns the number of children-nodes for a node
// (concurrency-safe).
func (n *Node) ChildCount() int {
	return n.children.length()
}

// Child is a concurrency-safe way to get a children-node of a node.
func (n *Node) Child(i int) (*Node, bool) {
	if i < 0 || n.children.length() <= i {
		return nil, false
	}
	ch := n.children.child(i)
	return ch, ch != nil
}

// Children returns a slice with all children of a node.
func (n *Node) Children() []*Node {
	return n.children.asSlice()
}

// ReleaseSubtree drops the style contexts of this node and all of its
// descendants. Node linkage stays intact; only the styling is released,
// e.g. before re-styling a subtree from scratch.
func (n *Node) ReleaseSubtree() {
	tracer().Debugf("releasing styles of subtree at %v", n)
	n.SetStyleContext(nil)
	for _, ch := range n.Children() {
		ch.ReleaseSubtree()
	}
}

// --- Slices of concurrency-safe sets of children ---------------------------

type childrenSlice struct {
	sync.RWMutex
	slice []*Node
}

func (chs *childrenSlice) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

func (chs *childrenSlice) addChild(child *Node, parent *Node) {
	if child == nil {
		return
	}
	chs.Lock()
	defer chs.Unlock()
	chs.slice = append(chs.slice, child)
	child.parent = parent
}

func (chs *childrenSlice) child(i int) *Node {
	chs.RLock()
	defer chs.RUnlock()
	if len(chs.slice) == 0 || i < 0 || i >= len(chs.slice) {
		return nil
	}
	return chs.slice[i]
}

func (chs *childrenSlice) asSlice() []*Node {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Node, len(chs.slice))
	copy(children, chs.slice)
	return children
}
