package ba

import (
	"testing"

	"github.com/tfp-graph/pagg/storage"
	"github.com/tfp-graph/pagg/stream"
)

func memEngine(t *testing.T) storage.Engine {
	t.Helper()
	e, err := storage.LookupEngine("mem")
	if err != nil {
		t.Fatalf("lookup mem engine: %v", err)
	}
	return e
}

// drainEdges pairs up consecutive vertex values the way a writer would.
func drainEdges(t *testing.T, vs stream.Stream[uint64]) [][2]uint64 {
	t.Helper()
	var flat []uint64
	for !vs.Empty() {
		flat = append(flat, vs.Current())
		vs.Advance()
	}
	if len(flat)%2 != 0 {
		t.Fatalf("odd number of vertices emitted: %d", len(flat))
	}
	var edges [][2]uint64
	for i := 0; i < len(flat); i += 2 {
		edges = append(edges, [2]uint64{flat[i], flat[i+1]})
	}
	return edges
}

func TestSeedOnly(t *testing.T) {
	m := New(Config{SeedVertices: 4, NewVertices: 0, EdgesPerVertex: 2, Seed: 1, Engine: memEngine(t)})
	edges := drainEdges(t, m.Vertices())
	if len(edges) != 4 {
		t.Fatalf("expected 4 seed edges, got %d: %v", len(edges), edges)
	}
	want := [][2]uint64{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	for i, e := range want {
		if edges[i] != e {
			t.Fatalf("edge %d = %v, want %v", i, edges[i], e)
		}
	}
}

func TestBATinyEdgeCountAndBounds(t *testing.T) {
	cfg := Config{SeedVertices: 4, NewVertices: 2, EdgesPerVertex: 1, EdgeDependencies: false, Seed: 42, Engine: memEngine(t)}
	m := New(cfg)
	edges := drainEdges(t, m.Vertices())
	wantEdges := cfg.NewVertices*cfg.EdgesPerVertex + 4 // seed cycle on 4 vertices has 4 edges
	if uint64(len(edges)) != wantEdges {
		t.Fatalf("expected %d edges, got %d: %v", wantEdges, len(edges), edges)
	}
	maxVertex := cfg.SeedVertices + cfg.NewVertices - 1
	for _, e := range edges {
		if e[0] > maxVertex || e[1] > maxVertex {
			t.Fatalf("edge %v exceeds max vertex id %d", e, maxVertex)
		}
	}
}

func TestBATinyDeterministic(t *testing.T) {
	cfg := Config{SeedVertices: 4, NewVertices: 2, EdgesPerVertex: 1, EdgeDependencies: false, Seed: 42, Engine: memEngine(t)}
	a := drainEdges(t, New(cfg).Vertices())
	b := drainEdges(t, New(cfg).Vertices())
	if len(a) != len(b) {
		t.Fatalf("run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("edge %d differs across runs: %v vs %v", i, a[i], b[i])
		}
	}
}
