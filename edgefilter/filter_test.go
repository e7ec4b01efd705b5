package edgefilter

import (
	"testing"

	"github.com/tfp-graph/pagg/stream"
)

func TestFilterExample(t *testing.T) {
	in := stream.FromSlice([]Edge{
		{0, 0}, {0, 1}, {0, 1}, {1, 2}, {2, 2},
	})
	f := New(stream.Stream[Edge](in), Options{DropSelfLoops: true, DropMultiEdges: true})
	got := stream.Drain[Edge](f)
	want := []Edge{{0, 1}, {1, 2}}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got %v want %v", i, got, want)
		}
	}
}

func TestPassThroughWhenDisabled(t *testing.T) {
	in := stream.FromSlice([]Edge{{0, 0}, {0, 1}, {0, 1}})
	f := New(stream.Stream[Edge](in), Options{})
	got := stream.Drain[Edge](f)
	if len(got) != 3 {
		t.Fatalf("pass-through filter should keep all %d edges, got %d", 3, len(got))
	}
}
