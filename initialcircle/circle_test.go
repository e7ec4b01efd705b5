package initialcircle

import (
	"testing"

	"github.com/tfp-graph/pagg/stream"
	"github.com/tfp-graph/pagg/token"
)

func TestFourVertexCycle(t *testing.T) {
	c := New(4, 0)
	if c.NumberOfEdges() != 4 {
		t.Fatalf("expected 4 edges, got %d", c.NumberOfEdges())
	}
	if c.MaxVertexID() != 3 {
		t.Fatalf("expected max vertex id 3, got %d", c.MaxVertexID())
	}
	toks := stream.Drain[token.Token](c)
	if len(toks) != 8 {
		t.Fatalf("expected 8 tokens, got %d", len(toks))
	}
	want := []uint64{0, 1, 1, 2, 2, 3, 3, 0}
	for i, tok := range toks {
		if tok.Query {
			t.Fatalf("token %d should be a link token", i)
		}
		if tok.Index != uint64(i) {
			t.Fatalf("token %d index = %d, want %d", i, tok.Index, i)
		}
		if tok.Value != want[i] {
			t.Fatalf("token %d value = %d, want %d", i, tok.Value, want[i])
		}
	}
}
