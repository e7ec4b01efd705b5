package edgewriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tfp-graph/pagg/edgefilter"
	"github.com/tfp-graph/pagg/stream"
)

func TestWriteEdgesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.bin")
	w, err := New(path, Width32, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	edges := []edgefilter.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}
	if err := w.WriteEdges(stream.Stream[edgefilter.Edge](stream.FromSlice(edges))); err != nil {
		t.Fatalf("WriteEdges: %v", err)
	}
	if w.EdgesWritten() != uint64(len(edges)) {
		t.Fatalf("expected %d edges written, got %d", len(edges), w.EdgesWritten())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	wantSize := len(edges) * 2 * Width32.Bytes()
	if len(data) != wantSize {
		t.Fatalf("file size = %d, want %d", len(data), wantSize)
	}
	for i, e := range edges {
		off := i * 2 * Width32.Bytes()
		u := Width32.Decode(data[off : off+Width32.Bytes()])
		v := Width32.Decode(data[off+Width32.Bytes() : off+2*Width32.Bytes()])
		if u != e.U || v != e.V {
			t.Fatalf("edge %d: got (%d,%d) want (%d,%d)", i, u, v, e.U, e.V)
		}
	}
}

func TestWriteVerticesCountsHalved(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.bin")
	w, err := New(path, Width64, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	vs := []uint64{10, 20, 30, 40, 50, 60}
	if err := w.WriteVertices(stream.Stream[uint64](stream.FromSlice(vs))); err != nil {
		t.Fatalf("WriteVertices: %v", err)
	}
	if w.EdgesWritten() != 3 {
		t.Fatalf("expected 3 edges, got %d", w.EdgesWritten())
	}
	w.Close()
}

func TestDisableOutputDrains(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.bin")
	w, err := New(path, Width32, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.SetDisableOutput(true)
	edges := []edgefilter.Edge{{U: 0, V: 1}, {U: 1, V: 2}}
	if err := w.WriteEdges(stream.Stream[edgefilter.Edge](stream.FromSlice(edges))); err != nil {
		t.Fatalf("WriteEdges: %v", err)
	}
	if w.EdgesWritten() != uint64(len(edges)) {
		t.Fatalf("disabled output should still count drained edges: expected %d, got %d", len(edges), w.EdgesWritten())
	}
	w.Close()
	data, _ := os.ReadFile(path)
	if len(data) != 0 {
		t.Fatalf("disabled output should produce an empty file, got %d bytes", len(data))
	}
}
