// Package ba wires the three token generators of spec.md §4.9 — seed
// cycle, regular-vertex creates, and preferential-attachment queries —
// through the sequential processor of spec.md §4.10, producing the flat
// vertex stream an edge writer consumes directly.
package ba

import (
	"github.com/tfp-graph/pagg/edgewriter"
	"github.com/tfp-graph/pagg/initialcircle"
	"github.com/tfp-graph/pagg/paggrt"
	"github.com/tfp-graph/pagg/processor"
	"github.com/tfp-graph/pagg/regularvertex"
	"github.com/tfp-graph/pagg/rng"
	"github.com/tfp-graph/pagg/storage"
	"github.com/tfp-graph/pagg/stream"
	"github.com/tfp-graph/pagg/token"
)

// Config is the sequential undirected BA model's full parameter set.
type Config struct {
	SeedVertices     uint64 // n0: size of the initial circle
	NewVertices      uint64 // n: vertices added by preferential attachment
	EdgesPerVertex   uint64 // m: edges each new vertex brings
	EdgeDependencies bool   // §4.9: whether a vertex's own earlier edges count toward its own later draws
	Seed             int64
	Engine           storage.Engine
}

// Model owns the generators and the processor built from them; WriteTo
// drains the processor straight into a writer.
type Model struct {
	seed *initialcircle.Circle
	proc *processor.Processor
}

// New builds the token pipeline described by cfg but does not run it.
func New(cfg Config) *Model {
	if cfg.SeedVertices < 2 {
		panic(paggrt.Usagef("ba: seed_verts must be >= 2, got %d", cfg.SeedVertices))
	}
	if cfg.EdgesPerVertex == 0 {
		panic(paggrt.Usagef("ba: edges_per_vertex must be >= 1, got %d", cfg.EdgesPerVertex))
	}

	seed := initialcircle.New(cfg.SeedVertices, 0)
	firstEven := seed.NumberOfEdges() * 2 // = 2*n0, first free even edge-list slot
	firstVertex := seed.MaxVertexID() + 1

	reg := regularvertex.New(firstVertex, firstEven, cfg.NewVertices, cfg.EdgesPerVertex)

	g := rng.New(cfg.Seed)
	queries := buildQueries(cfg.Engine, firstEven+1, firstEven, cfg.NewVertices, cfg.EdgesPerVertex, cfg.EdgeDependencies, g)

	merged := stream.NewMerger[token.Token](func(a, b token.Token) bool { return a.Less(b) },
		reg, queries, seed)

	return &Model{
		seed: seed,
		proc: processor.New(merged, cfg.Engine.NewPriorityQueue()),
	}
}

// edgeWeight returns the total weight w(i) in force when new edge number
// i (0-indexed across every new vertex's edges) draws its preferential-
// attachment sample, given w0 (twice the number of edges already
// materialised by the seed) and m edges per vertex. With
// edgeDependencies set, w(i) = w0 + 2*i: the weight grows between every
// edge of the same vertex, matching original_source/main_pba.cpp's
// "weight += 2*edge_dependencies" inside its per-vertex edge loop. With
// it clear (the default), a vertex's own edges share one weight that
// only advances once its full batch of m edges has been placed:
// w(i) = w0 + 2*m*(i/m). Shared verbatim between the sequential
// buildQueries below and the parallel driver's populateInitial so the
// two can never drift apart on this formula again.
func edgeWeight(w0, m, i uint64, edgeDependencies bool) uint64 {
	if edgeDependencies {
		return w0 + 2*i
	}
	return w0 + 2*m*(i/m)
}

// buildQueries pushes one query token per new edge into an external
// sorter and sorts it, per spec.md §4.9: for each new edge i in order,
// draw r from edgeWeight(i), push (true, r, idx), then advance idx by 2.
func buildQueries(engine storage.Engine, firstIdx, firstEven, numVertices, edgesPerVertex uint64, edgeDependencies bool, g *rng.RNG) storage.Sorter {
	sorter := engine.NewSorter()
	total := numVertices * edgesPerVertex
	idx := firstIdx
	for i := uint64(0); i < total; i++ {
		w := edgeWeight(firstEven, edgesPerVertex, i, edgeDependencies)
		r := g.UniformInt(w)
		sorter.Push(token.New(true, r, idx))
		idx += 2
	}
	sorter.Sort()
	return sorter
}

// WriteTo drains the model's resolved vertex stream into w.
func (m *Model) WriteTo(w *edgewriter.Writer) error {
	return w.WriteVertices(m.proc)
}

// Vertices exposes the resolved output stream directly, for callers
// that want to post-process before writing (e.g. feed it through
// edgesort/edgefilter instead of writing vertices as a flat stream).
func (m *Model) Vertices() stream.Stream[uint64] { return m.proc }
