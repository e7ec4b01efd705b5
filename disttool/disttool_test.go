package disttool

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/tfp-graph/pagg/edgewriter"
)

func TestUndirectedTriangleDegrees(t *testing.T) {
	// Triangle 0-1, 1-2, 2-0: every vertex has degree 2.
	path := writeEdgesSimple(t, [][2]uint64{{0, 1}, {1, 2}, {2, 0}})
	var buf bytes.Buffer
	if err := Run([]string{path}, edgewriter.Width32, false, &buf); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("2 3\n")) {
		t.Fatalf("expected a \"2 3\" degree-distribution line, got:\n%s", got)
	}
}

func TestDirectedStarOutIn(t *testing.T) {
	// 0->1, 0->2, 0->3: out-degree 3 for vertex 0, in-degree 1 for 1,2,3.
	path := writeEdgesSimple(t, [][2]uint64{{0, 1}, {0, 2}, {0, 3}})
	var buf bytes.Buffer
	if err := Run([]string{path}, edgewriter.Width32, true, &buf); err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("# Out-Degrees")) || !bytes.Contains([]byte(out), []byte("# In-Degrees")) {
		t.Fatalf("expected both out- and in-degree sections, got:\n%s", out)
	}
	if !bytes.Contains([]byte(out), []byte("3 1\n")) {
		t.Fatalf("expected an out-degree-3 line, got:\n%s", out)
	}
	if !bytes.Contains([]byte(out), []byte("1 3\n")) {
		t.Fatalf("expected an in-degree-1 (x3) line, got:\n%s", out)
	}
}

func writeEdgesSimple(t *testing.T, pairs [][2]uint64) string {
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
