// Package regularvertex emits the deterministic "create" link tokens for
// new vertices, per spec.md §4.7: each new vertex id is written
// edgesPerVertex times, at consecutive even edge-list positions, before
// the vertex id advances.
package regularvertex

import "github.com/tfp-graph/pagg/token"

// Stream is the RegularVertexTokenStream generator.
type Stream struct {
	vertexEnd      uint64
	edgesPerVertex uint64
	currentVertex  uint64
	currentEdge    uint64
	edgeListIdx    uint64
	current        token.Token
	empty          bool
}

// New builds a generator that writes numVertices new vertices starting
// at firstVertex, each repeated edgesPerVertex times, with the first
// token targeting firstEdgeListIdx (and every following token advancing
// by 2).
func New(firstVertex, firstEdgeListIdx, numVertices, edgesPerVertex uint64) *Stream {
	s := &Stream{
		vertexEnd:      firstVertex + numVertices,
		edgesPerVertex: edgesPerVertex,
		currentVertex:  firstVertex,
		edgeListIdx:    firstEdgeListIdx,
	}
	s.advance()
	return s
}

func (s *Stream) advance() {
	if s.currentVertex >= s.vertexEnd {
		s.empty = true
		return
	}
	s.current = token.New(false, s.edgeListIdx, s.currentVertex)
	s.edgeListIdx += 2
	s.currentEdge++
	if s.currentEdge >= s.edgesPerVertex {
		s.currentVertex++
		s.currentEdge = 0
	}
}

func (s *Stream) Empty() bool          { return s.empty }
func (s *Stream) Current() token.Token { return s.current }
func (s *Stream) Advance()             { s.advance() }
