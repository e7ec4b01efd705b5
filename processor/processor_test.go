package processor

import (
	"testing"

	"github.com/tfp-graph/pagg/storage"
	"github.com/tfp-graph/pagg/stream"
	"github.com/tfp-graph/pagg/token"
)

// toks builds a merged stream.Stream[token.Token] from an already-sorted
// slice, mirroring what the sorter+merger stage would hand the processor.
func toks(ts ...token.Token) stream.Stream[token.Token] {
	return stream.FromSlice(ts)
}

func TestSeedOnlyNoQueries(t *testing.T) {
	// A 3-vertex seed cycle: link tokens at idx 0,1,2,3,4,5 write 0,1,1,2,2,0.
	in := toks(
		token.New(false, 0, 0),
		token.New(false, 1, 1),
		token.New(false, 2, 1),
		token.New(false, 3, 2),
		token.New(false, 4, 2),
		token.New(false, 5, 0),
	)
	p := New(in, storage.NewMemPQ[token.Token](func(a, b token.Token) bool { return a.Less(b) }))
	var got []uint64
	for !p.Empty() {
		got = append(got, p.Current())
		p.Advance()
	}
	want := []uint64{0, 1, 1, 2, 2, 0}
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("value %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestQueryResolvesPrecedingLinkAndReinserts(t *testing.T) {
	// idx0 link writes 7. idx1 is a query pointing back to idx0 (resolves
	// to 7) and asks that 7 be rewritten at idx2.
	in := toks(
		token.New(false, 0, 7),
		token.New(true, 0, 2),
		token.New(false, 3, 9),
	)
	p := New(in, storage.NewMemPQ[token.Token](func(a, b token.Token) bool { return a.Less(b) }))
	var got []uint64
	for !p.Empty() {
		got = append(got, p.Current())
		p.Advance()
	}
	want := []uint64{7, 7, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("value %d = %d, want %d", i, got[i], want[i])
		}
	}
}
