// Package edgesort adapts a flat stream of vertex IDs, taken two at a
// time, into a stream of ascending (u, v) edges, per spec.md §4.4.
package edgesort

import (
	"github.com/tfp-graph/pagg/edgefilter"
	"github.com/tfp-graph/pagg/storage"
	"github.com/tfp-graph/pagg/stream"
)

// Less orders edges lexicographically by (U, V).
func Less(a, b edgefilter.Edge) bool {
	if a.U != b.U {
		return a.U < b.U
	}
	return a.V < b.V
}

// Sort drains vs (whose length the caller guarantees is even — spec.md
// §4.4 leaves odd-length input undefined) two values at a time into an
// external sorter, sorts it, and returns the ascending edge stream. The
// returned Sorter must be closed by the caller once the stream is
// exhausted, releasing whatever spill storage it used.
func Sort(vs stream.Stream[uint64]) (*storage.MemSorter[edgefilter.Edge], stream.Stream[edgefilter.Edge]) {
	s := storage.NewMemSorter[edgefilter.Edge](Less)
	for !vs.Empty() {
		u := vs.Current()
		vs.Advance()
		v := vs.Current()
		vs.Advance()
		s.Push(edgefilter.Edge{U: u, V: v})
	}
	s.Sort()
	return s, s
}
