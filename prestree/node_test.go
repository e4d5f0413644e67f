package prestree_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stycache/memsize"
	"github.com/npillmayer/stycache/prestree"
	"github.com/npillmayer/stycache/styctx"
	"github.com/npillmayer/stycache/style"
	"github.com/npillmayer/tyse/core/dimen"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

func payload() *styctx.ComputedStyles {
	return styctx.NewComputedStyles(style.InitializeDefaultPropertyValues(nil), nil)
}

func parseDoc(t *testing.T, doc string) *html.Node {
	h, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("cannot parse test document: %v", err)
	}
	return h
}

// mirror builds a presentation node for an HTML node and its element and
// text children.
func mirror(h *html.Node) *prestree.Node {
	n := prestree.NewNode(h)
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode || ch.Type == html.TextNode {
			n.AddChild(mirror(ch))
		}
	}
	return n
}

func TestNodeLinkage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stycache.tree")
	defer teardown()
	//
	doc := parseDoc(t, "<html><body><p>Hello</p><p>World</p></body></html>")
	root := mirror(doc)
	t.Logf("tree =\n%s", printNodeTree(root))
	body := findNode(root, "body")
	if body == nil {
		t.Fatal("expected to find a body node, didn't")
	}
	if body.ChildCount() != 2 {
		t.Errorf("expected body to have 2 children, has %d", body.ChildCount())
	}
	p, ok := body.Child(0)
	if !ok || p.Parent() != body {
		t.Error("expected child 0 of body to link back to body, doesn't")
	}
}

func TestStyleContextOwnership(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stycache.tree")
	defer teardown()
	//
	pc := prestree.NewPresContext(dimen.PT*500, dimen.PT*800)
	n := prestree.NewNode(nil)
	cx := styctx.New(pc, payload())
	n.SetStyleContext(cx)
	cx.Release() // node keeps its own reference
	if pc.LiveContexts() != 1 {
		t.Fatalf("expected 1 live context, have %d", pc.LiveContexts())
	}
	cx2 := styctx.New(pc, payload())
	n.SetStyleContext(cx2) // must release the old context
	cx2.Release()
	if pc.LiveContexts() != 1 {
		t.Errorf("expected the replaced context to be destroyed, %d live", pc.LiveContexts())
	}
	n.SetStyleContext(nil)
	if pc.LiveContexts() != 0 {
		t.Errorf("expected no live contexts, have %d", pc.LiveContexts())
	}
}

func TestReleaseSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stycache.tree")
	defer teardown()
	//
	pc := prestree.NewPresContext(dimen.PT*500, dimen.PT*800)
	doc := parseDoc(t, "<html><body><p>Hello</p></body></html>")
	root := mirror(doc)
	pc.SetRoot(root)
	styleAll(pc, root)
	if pc.LiveContexts() == 0 {
		t.Fatal("expected live contexts after styling, have none")
	}
	root.ReleaseSubtree()
	if pc.LiveContexts() != 0 {
		t.Errorf("expected release of subtree to destroy all contexts, %d left",
			pc.LiveContexts())
	}
}

func TestPresContextWindowSizes(t *testing.T) {
	pc := prestree.NewPresContext(dimen.PT*500, dimen.PT*800)
	doc := parseDoc(t, "<html><body><p>Hello</p></body></html>")
	root := mirror(doc)
	pc.SetRoot(root)
	styleAll(pc, root)
	//
	var ws memsize.WindowSizes
	pc.AddWindowSizes(&ws)
	var bt memsize.BucketTotals
	ws.AddToBucketTotals(&bt)
	if bt.Get(memsize.DOM) == 0 {
		t.Error("expected DOM nodes to be accounted, aren't")
	}
	if bt.Get(memsize.Style) == 0 {
		t.Error("expected style contexts to be accounted, aren't")
	}
	if ws.TotalSize() != bt.Grand() {
		t.Errorf("expected total size %d to equal bucket sum %d",
			ws.TotalSize(), bt.Grand())
	}
	root.ReleaseSubtree()
}

func styleAll(pc *prestree.PresContext, n *prestree.Node) {
	cx := styctx.New(pc, payload())
	n.SetStyleContext(cx)
	cx.Release()
	for _, ch := range n.Children() {
		styleAll(pc, ch)
	}
}

func findNode(n *prestree.Node, name string) *prestree.Node {
	if h := n.HTMLNode(); h != nil && h.Type == html.ElementNode && h.Data == name {
		return n
	}
	for _, ch := range n.Children() {
		if found := findNode(ch, name); found != nil {
			return found
		}
	}
	return nil
}

func printNodeTree(root *prestree.Node) string {
	p := tp.New()
	ppt(p, root)
	return p.String()
}

func ppt(p tp.Tree, n *prestree.Node) {
	if n.ChildCount() == 0 {
		p.AddNode(n.String())
		return
	}
	branch := p.AddBranch(n.String())
	for _, ch := range n.Children() {
		ppt(branch, ch)
	}
}
