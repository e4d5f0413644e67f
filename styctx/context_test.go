package styctx

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stycache/memsize"
	"github.com/npillmayer/stycache/style"
)

// countingScope is a minimal styctx.Scope for tests.
type countingScope struct {
	n int64
}

func (cs *countingScope) CountContexts(delta int) {
	atomic.AddInt64(&cs.n, int64(delta))
}

func (cs *countingScope) live() int64 {
	return atomic.LoadInt64(&cs.n)
}

func payload() *ComputedStyles {
	return NewComputedStyles(style.InitializeDefaultPropertyValues(nil), nil)
}

func TestContextLifecycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stycache.ctx")
	defer teardown()
	//
	scope := &countingScope{}
	cx := New(scope, payload())
	if scope.live() != 1 {
		t.Fatalf("expected 1 live context after construction, have %d", scope.live())
	}
	cx.Retain()
	cx.Release()
	if scope.live() != 1 {
		t.Error("expected context to survive a balanced retain/release, didn't")
	}
	cx.Release()
	if scope.live() != 0 {
		t.Errorf("expected no live contexts after final release, have %d", scope.live())
	}
}

func TestContextOverReleasePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected over-release to panic, didn't")
		}
	}()
	cx := New(&countingScope{}, payload())
	cx.Release()
	cx.Release()
}

func TestContextRetainIsConcurrencySafe(t *testing.T) {
	scope := &countingScope{}
	cx := New(scope, payload())
	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				cx.Retain()
				cx.Release()
			}
		}()
	}
	wg.Wait()
	if rc := cx.refCount(); rc != 1 {
		t.Errorf("expected refcount 1 after balanced concurrent use, have %d", rc)
	}
	cx.Release()
	if scope.live() != 0 {
		t.Errorf("expected no live contexts, have %d", scope.live())
	}
}

func TestReleaseTearsDownChains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stycache.ctx")
	defer teardown()
	//
	scope := &countingScope{}
	owner := New(scope, payload())
	child := NewForAnonBox(scope, style.AnonPageBreak, payload())
	owner.SetCachedAnonBoxStyle(child)
	child.Release() // only the chain references it now
	if scope.live() != 2 {
		t.Fatalf("expected 2 live contexts, have %d", scope.live())
	}
	owner.Release()
	if scope.live() != 0 {
		t.Errorf("expected owner release to tear down the chain, %d contexts left", scope.live())
	}
}

func TestContextClassification(t *testing.T) {
	scope := &countingScope{}
	before := NewForPseudo(scope, style.PseudoBefore, payload())
	if before.IsLazilyCascadedPseudoElement() {
		t.Error("expected ::before context not to be lazily cascaded, is")
	}
	marker := NewForPseudo(scope, style.PseudoMarker, payload())
	if !marker.IsLazilyCascadedPseudoElement() {
		t.Error("expected ::marker context to be lazily cascaded, isn't")
	}
	anon := NewForAnonBox(scope, style.AnonTableCell, payload())
	if !anon.IsAnonBox() || anon.IsLazilyCascadedPseudoElement() {
		t.Error("expected anon-box context to be an anon box and no lazy pseudo")
	}
	before.Release()
	marker.Release()
	anon.Release()
}

func TestStyleIfVisited(t *testing.T) {
	scope := &countingScope{}
	visited := New(scope, payload())
	cx := New(scope, NewComputedStyles(style.InitializeDefaultPropertyValues(nil), visited))
	if cx.StyleIfVisited() != visited {
		t.Error("expected the payload's visited cross-link to be returned, isn't")
	}
	plain := New(scope, payload())
	if plain.StyleIfVisited() != nil {
		t.Error("expected no visited style on a plain context, got one")
	}
	cx.Release()
	plain.Release()
	visited.Release()
}

func TestResolveSameStructsAs(t *testing.T) {
	scope := &countingScope{}
	other := New(scope, payload())
	other.MarkStructResolved(style.PGColor)
	other.MarkStructResolved(style.PGDisplay)
	cx := New(scope, payload())
	cx.ResolveSameStructsAs(other)
	if !cx.HasResolvedStruct(style.PGColor) || !cx.HasResolvedStruct(style.PGDisplay) {
		t.Error("expected resolved-struct state to be copied wholesale, isn't")
	}
	other.MarkStructResolved(style.PGText)
	if cx.HasResolvedStruct(style.PGText) {
		t.Error("expected the copy to be independent of later marks, isn't")
	}
	cx.Release()
	other.Release()
}

func TestContextAddWindowSizes(t *testing.T) {
	scope := &countingScope{}
	cx := New(scope, payload())
	var ws memsize.WindowSizes
	cx.AddWindowSizes(&ws)
	if ws.Arena.Size(memsize.StyleContexts) == 0 {
		t.Error("expected the context to account for its own size, doesn't")
	}
	if ws.Arena.Size(memsize.StyleStructs) == 0 {
		t.Error("expected the payload to account for its struct sizes, doesn't")
	}
	cx.Release()
}
