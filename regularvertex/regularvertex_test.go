package regularvertex

import (
	"testing"

	"github.com/tfp-graph/pagg/stream"
	"github.com/tfp-graph/pagg/token"
)

func TestMultiplicityAndIndexAdvance(t *testing.T) {
	s := New(10, 100, 3, 2) // vertices 10,11,12, each repeated twice
	toks := stream.Drain[token.Token](s)
	if len(toks) != 6 {
		t.Fatalf("expected 6 tokens, got %d", len(toks))
	}
	wantValues := []uint64{10, 10, 11, 11, 12, 12}
	for i, tok := range toks {
		if tok.Query {
			t.Fatalf("token %d should be a link token", i)
		}
		if tok.Index != uint64(100+2*i) {
			t.Fatalf("token %d index = %d, want %d", i, tok.Index, 100+2*i)
		}
		if tok.Value != wantValues[i] {
			t.Fatalf("token %d value = %d, want %d", i, tok.Value, wantValues[i])
		}
	}
}

func TestEmptyWhenZeroVertices(t *testing.T) {
	s := New(0, 0, 0, 2)
	if !s.Empty() {
		t.Fatalf("expected empty stream for zero vertices")
	}
}
