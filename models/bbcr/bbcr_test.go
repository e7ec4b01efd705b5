package bbcr

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

func baseConfig(t *testing.T) Config {
	return Config{
		SeedVertices: 4,
		NumEdges:     20,
		Alpha:        0.3,
		Beta:         0.5,
		Gamma:        0.2,
		Seed:         7,
		Engine:       memEngine(t),
	}
}

func TestEdgeCountAndDeterminism(t *testing.T) {
	cfg := baseConfig(t)
	a := drainEdges(t, New(cfg).Vertices())
	want := cfg.NumEdges + 4 // seed cycle on 4 vertices
	if uint64(len(a)) != want {
		t.Fatalf("expected %d edges, got %d", want, len(a))
	}
	b := drainEdges(t, New(cfg).Vertices())
	if len(a) != len(b) {
		t.Fatalf("run lengths differ across identical seeds: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("edge %d differs across runs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestInvalidSeedVertices(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for seed_verts < 2")
		}
	}()
	cfg := baseConfig(t)
	cfg.SeedVertices = 1
	New(cfg)
}

func TestDegreeOffsetSampling(t *testing.T) {
	cfg := baseConfig(t)
	cfg.DegreeOffsetIn = 0.5
	cfg.DegreeOffsetOut = 0.5
	edges := drainEdges(t, New(cfg).Vertices())
	want := cfg.NumEdges + 4
	if uint64(len(edges)) != want {
		t.Fatalf("expected %d edges, got %d", want, len(edges))
	}
}
