// Package bbcr implements the directed Bollobás–Borgs–Chayes–Riordan
// preferential-attachment model of spec.md §4.8: each new edge either
// creates a vertex with an outgoing edge, links two existing vertices,
// or creates a vertex with an incoming edge, with endpoints drawn by a
// mixture of uniform and preferential-attachment sampling.
package bbcr

import (
	"github.com/tfp-graph/pagg/edgewriter"
	"github.com/tfp-graph/pagg/initialcircle"
	"github.com/tfp-graph/pagg/paggrt"
	"github.com/tfp-graph/pagg/processor"
	"github.com/tfp-graph/pagg/rng"
	"github.com/tfp-graph/pagg/storage"
	"github.com/tfp-graph/pagg/stream"
	"github.com/tfp-graph/pagg/token"
)

// Config is the directed BBCR model's full parameter set. Alpha, Beta,
// Gamma need not already sum to 1: they are normalised on entry, exactly
// as the "-a -b -g" CLI flags are in spec.md §6.
type Config struct {
	SeedVertices    uint64
	NumEdges        uint64
	Alpha           float64
	Beta            float64
	Gamma           float64
	DegreeOffsetIn  float64
	DegreeOffsetOut float64
	Seed            int64
	Engine          storage.Engine
}

// Model owns the seed circle and the processor built from it plus the
// generated edge tokens.
type Model struct {
	seed *initialcircle.Circle
	proc *processor.Processor
}

// New validates cfg, generates and sorts the edge tokens, and builds the
// processor that resolves them into a vertex stream.
func New(cfg Config) *Model {
	if cfg.SeedVertices < 2 {
		panic(paggrt.Usagef("bbcr: seed_verts must be >= 2, got %d", cfg.SeedVertices))
	}
	if cfg.NumEdges == 0 {
		panic(paggrt.Usagef("bbcr: no-edges must be > 0"))
	}
	if cfg.Alpha < 0 || cfg.Beta < 0 || cfg.Gamma < 0 {
		panic(paggrt.Usagef("bbcr: alpha, beta, gamma must be >= 0"))
	}
	norm := cfg.Alpha + cfg.Beta + cfg.Gamma
	if norm < 1e-9 {
		panic(paggrt.Usagef("bbcr: alpha + beta + gamma must be > 0"))
	}
	if cfg.DegreeOffsetIn < 0 || cfg.DegreeOffsetOut < 0 {
		panic(paggrt.Usagef("bbcr: d-in, d-out must be >= 0"))
	}
	// Offset-based sampling divides by vertex_id*offset + token_id/2; both
	// operands are non-negative, and this module only reaches that branch
	// once a seed of at least 2 vertices has pushed the starting vertex id
	// above zero, keeping the denominator strictly positive.

	alpha := cfg.Alpha / norm
	beta := cfg.Beta / norm

	seed := initialcircle.New(cfg.SeedVertices, 0)
	g := rng.New(cfg.Seed)
	sorter := buildTokens(cfg.Engine, cfg.NumEdges, seed.MaxVertexID()+1, seed.NumberOfEdges(), alpha, beta, cfg.DegreeOffsetIn, cfg.DegreeOffsetOut, g)

	merged := stream.NewMerger[token.Token](func(a, b token.Token) bool { return a.Less(b) }, sorter, seed)

	return &Model{
		seed: seed,
		proc: processor.New(merged, cfg.Engine.NewPriorityQueue()),
	}
}

// buildTokens fills and sorts an external sorter with one token pair per
// edge, per spec.md §4.8.
func buildTokens(engine storage.Engine, numEdges, firstVertexID, firstEdgeID uint64, alpha, beta, degOffsetIn, degOffsetOut float64, g *rng.RNG) storage.Sorter {
	sorter := engine.NewSorter()
	vertexID := firstVertexID
	tokenID := 2 * firstEdgeID
	maxTokenID := tokenID + 2*numEdges

	// randomToken draws a link or query token for one endpoint of direction
	// out (true) or in (false), advancing tokenID by exactly 1.
	randomToken := func(out bool) token.Token {
		offset := degOffsetIn
		if out {
			offset = degOffsetOut
		}
		var t token.Token
		if offset > 0 && g.UniformFloat() < (float64(vertexID)*offset)/(float64(vertexID)*offset+float64(tokenID)/2) {
			t = token.New(false, tokenID, g.UniformInt(vertexID+1))
		} else {
			r := g.UniformInt(tokenID &^ 1)
			if out {
				r &^= 1
			} else {
				r |= 1
			}
			t = token.New(true, r, tokenID)
		}
		tokenID++
		return t
	}

	for tokenID < maxTokenID {
		paggrt.Assertf(tokenID&1 == 0, "bbcr: edge must start at an even token id, got %d", tokenID)
		mode := g.UniformFloat()
		switch {
		case mode < alpha:
			sorter.Push(token.New(false, tokenID, vertexID))
			tokenID++
			sorter.Push(randomToken(false))
			vertexID++
		case mode < alpha+beta:
			sorter.Push(randomToken(true))
			sorter.Push(randomToken(false))
		default:
			sorter.Push(randomToken(true))
			sorter.Push(token.New(false, tokenID, vertexID))
			tokenID++
			vertexID++
		}
	}
	sorter.Sort()
	return sorter
}

// WriteTo drains the model's resolved vertex stream into w.
func (m *Model) WriteTo(w *edgewriter.Writer) error {
	return w.WriteVertices(m.proc)
}

// Vertices exposes the resolved output stream directly.
func (m *Model) Vertices() stream.Stream[uint64] { return m.proc }
