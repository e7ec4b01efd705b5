package bfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tfp-graph/pagg/edgewriter"
)

func writeEdges(t *testing.T, pairs [][2]uint64) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.bin")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	for _, p := range pairs {
		var tmp [4]byte
		edgewriter.Width32.Encode(tmp[:], p[0])
		if _, err := f.Write(tmp[:]); err != nil {
			t.Fatalf("write: %v", err)
		}
		edgewriter.Width32.Encode(tmp[:], p[1])
		if _, err := f.Write(tmp[:]); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return path
}

func TestSingleComponent(t *testing.T) {
	path := writeEdges(t, [][2]uint64{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	res, err := Run([]string{path}, edgewriter.Width32, false, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Connected() {
		t.Fatalf("expected a single connected component, got %d", res.NumComponents)
	}
	if res.VerticesVisited != 4 {
		t.Fatalf("expected 4 vertices visited, got %d", res.VerticesVisited)
	}
}

func TestTwoComponents(t *testing.T) {
	path := writeEdges(t, [][2]uint64{{0, 1}, {2, 3}})
	res, err := Run([]string{path}, edgewriter.Width32, false, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.NumComponents != 2 {
		t.Fatalf("expected 2 components, got %d", res.NumComponents)
	}
	if res.Connected() {
		t.Fatalf("graph with two components should not report connected")
	}
}

func TestDirectedDoesNotAddReverseEdge(t *testing.T) {
	// 1->0 only: the BFS from vertex 0 can't follow the edge backwards to
	// reach 1, so 1 starts a second component.
	path := writeEdges(t, [][2]uint64{{1, 0}})
	res, err := Run([]string{path}, edgewriter.Width32, true, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.NumComponents != 2 {
		t.Fatalf("expected 2 components for a directed single edge, got %d", res.NumComponents)
	}
}

func TestDuplicateEdgesDeduped(t *testing.T) {
	path := writeEdges(t, [][2]uint64{{0, 1}, {0, 1}, {0, 1}})
	res, err := Run([]string{path}, edgewriter.Width32, false, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.DuplicatesRemoved == 0 {
		t.Fatalf("expected duplicate adjacency entries to be removed")
	}
}
