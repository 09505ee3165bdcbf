package redblack

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func setupTest(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	t.Cleanup(teardown)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
}

func intAscending(a, b int) Order {
	switch {
	case a < b:
		return BelongsLeft
	case a > b:
		return BelongsRight
	default:
		return Matches
	}
}

func newIntTree(t *testing.T, dup Duplicates) *Tree[int, int] {
	tree, err := NewTree(Config[int, int]{
		Compare:    intAscending,
		Key:        func(r int) int { return r },
		Duplicates: dup,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tree
}

func TestNewTreeRejectsInvalidConfig(t *testing.T) {
	setupTest(t)
	_, err := NewTree(Config[int, int]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestScenario1AscendingMix(t *testing.T) {
	setupTest(t)
	tree := newIntTree(t, Refuse)
	tree.InsertAll(5, 3, 8, 1, 4, 7, 9)
	got := tree.ToSlice()
	want := []int{1, 3, 4, 5, 7, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if tree.Height() > 6 {
		t.Errorf("height %d exceeds bound", tree.Height())
	}
	if err := tree.Check(); err != nil {
		t.Errorf("invariants violated: %v", err)
	}
}

func TestScenario2DegenerateAscending(t *testing.T) {
	setupTest(t)
	tree := newIntTree(t, Refuse)
	for i := 1; i <= 7; i++ {
		tree.Insert(i)
	}
	if tree.Height() > 6 {
		t.Errorf("height %d should be bounded below plain BST height 7", tree.Height())
	}
	if err := tree.Check(); err != nil {
		t.Errorf("invariants violated: %v", err)
	}
}

func TestScenario3RemoveRoot(t *testing.T) {
	setupTest(t)
	tree := newIntTree(t, Refuse)
	tree.InsertAll(5, 3, 8)
	if _, ok := tree.Remove(5); !ok {
		t.Fatalf("expected removal of 5 to succeed")
	}
	got := tree.ToSlice()
	if len(got) != 2 || got[0] != 3 || got[1] != 8 {
		t.Fatalf("got %v, want [3 8]", got)
	}
	if err := tree.Check(); err != nil {
		t.Errorf("invariants violated: %v", err)
	}
}

type taggedRecord struct {
	key int
	tag string
}

func newTaggedTree(t *testing.T, dup Duplicates) *Tree[taggedRecord, int] {
	tree, err := NewTree(Config[taggedRecord, int]{
		Compare:    intAscending,
		Key:        func(r taggedRecord) int { return r.key },
		Duplicates: dup,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tree
}

func TestScenario4FIFO(t *testing.T) {
	setupTest(t)
	tree := newTaggedTree(t, UseFIFO)
	tree.Insert(taggedRecord{5, "a"})
	tree.Insert(taggedRecord{5, "b"})
	tree.Insert(taggedRecord{5, "c"})
	all := tree.FetchAll(5)
	if len(all) != 3 || all[0].tag != "a" || all[1].tag != "b" || all[2].tag != "c" {
		t.Fatalf("fetchAll(5) = %v, want [a b c]", all)
	}
	r, ok := tree.Remove(5)
	if !ok || r.tag != "a" {
		t.Fatalf("first remove(5) = %v, want a", r)
	}
	r, ok = tree.Remove(5)
	if !ok || r.tag != "b" {
		t.Fatalf("second remove(5) = %v, want b", r)
	}
}

func TestScenario5LIFO(t *testing.T) {
	setupTest(t)
	tree := newTaggedTree(t, UseLIFO)
	tree.Insert(taggedRecord{5, "a"})
	tree.Insert(taggedRecord{5, "b"})
	tree.Insert(taggedRecord{5, "c"})
	all := tree.FetchAll(5)
	if len(all) != 3 || all[0].tag != "c" || all[1].tag != "b" || all[2].tag != "a" {
		t.Fatalf("fetchAll(5) = %v, want [c b a]", all)
	}
	r, ok := tree.Remove(5)
	if !ok || r.tag != "c" {
		t.Fatalf("remove(5) = %v, want leftmost-in-tree-order 'c'", r)
	}
	if err := tree.Check(); err != nil {
		t.Errorf("invariants violated: %v", err)
	}
	remaining := tree.FetchAll(5)
	if len(remaining) != 2 || remaining[0].tag != "b" || remaining[1].tag != "a" {
		t.Fatalf("fetchAll(5) after remove = %v, want [b a]", remaining)
	}
}

func TestScenario6RandomChurn(t *testing.T) {
	setupTest(t)
	tree := newIntTree(t, Refuse)
	present := map[int]bool{}
	rng := newLCG(12345)
	for i := 0; i < 1000; i++ {
		k := int(rng.next() % 300)
		if present[k] {
			if _, ok := tree.Remove(k); !ok {
				t.Fatalf("expected key %d to be present", k)
			}
			present[k] = false
		} else {
			tree.Insert(k)
			present[k] = true
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("step %d: invariants violated: %v", i, err)
		}
	}
}

func TestRefuseDuplicateIdempotent(t *testing.T) {
	setupTest(t)
	tree := newIntTree(t, Refuse)
	if !tree.Insert(5) {
		t.Fatalf("first insert should succeed")
	}
	before := tree.ToSlice()
	if tree.Insert(5) {
		t.Fatalf("duplicate insert under Refuse should be rejected")
	}
	after := tree.ToSlice()
	if len(before) != len(after) || before[0] != after[0] {
		t.Fatalf("tree changed after refused duplicate insert")
	}
}

func TestCountLaw(t *testing.T) {
	setupTest(t)
	tree := newIntTree(t, Refuse)
	for _, k := range []int{5, 3, 8, 3, 1} {
		before := tree.Count()
		inserted := tree.Insert(k)
		after := tree.Count()
		if inserted && after != before+1 {
			t.Fatalf("count law violated on insert of %d", k)
		}
		if !inserted && after != before {
			t.Fatalf("count law violated on rejected insert of %d", k)
		}
	}
}

func TestNeighboursFor(t *testing.T) {
	setupTest(t)
	tree := newIntTree(t, Refuse)
	tree.InsertAll(10, 20, 30, 40, 50)
	n := tree.NeighboursFor(30)
	if n.Left == nil || *n.Left != 20 {
		t.Fatalf("expected left neighbour 20, got %v", n.Left)
	}
	if n.Right == nil || *n.Right != 40 {
		t.Fatalf("expected right neighbour 40, got %v", n.Right)
	}
	if _, ok := tree.NeighboursOf(999); ok {
		t.Fatalf("expected NeighboursOf(999) to report false")
	}
}

func TestRemoveAllExhausts(t *testing.T) {
	setupTest(t)
	tree := newTaggedTree(t, UseFIFO)
	tree.Insert(taggedRecord{5, "a"})
	tree.Insert(taggedRecord{5, "b"})
	tree.Insert(taggedRecord{7, "z"})
	removed := tree.RemoveAll(5)
	if len(removed) != 2 {
		t.Fatalf("expected 2 removed, got %d", len(removed))
	}
	if tree.Contains(5) {
		t.Fatalf("expected key 5 to be gone after RemoveAll")
	}
	if !tree.Contains(7) {
		t.Fatalf("expected key 7 to remain")
	}
}

// lcg is a tiny deterministic pseudo-random generator so tests don't
// depend on math/rand's global seed behaving the same across versions.
type lcg struct{ state uint64 }

func newLCG(seed uint64) *lcg { return &lcg{state: seed} }

func (g *lcg) next() uint64 {
	g.state = g.state*6364136223846793005 + 1442695040888963407
	return g.state >> 33
}
