// Package bfs checks the connectivity of a materialised edge list,
// carried over from original_source/tests/main_im_bfs.cpp per
// SPEC_FULL.md §4.17: an in-memory study tool for small graphs, not part
// of the external-memory pipeline proper.
package bfs

import (
	"sort"

	"github.com/tfp-graph/pagg/edgereader"
	"github.com/tfp-graph/pagg/edgewriter"
	"github.com/tfp-graph/pagg/paggrt"
)

// Result summarises one connectivity pass.
type Result struct {
	NumVertices      uint64
	NumEdges         uint64
	NumComponents    uint64
	VerticesVisited  uint64
	DuplicatesRemoved uint64
}

// Connected reports whether the graph visited in a single pass, i.e. has
// exactly one connected component.
func (r Result) Connected() bool { return r.NumComponents == 1 }

// Run reads filenames, builds an adjacency list (undirected unless
// directed is set), deduplicates parallel edges per vertex, and
// traverses it with a plain BFS.
func Run(filenames []string, width edgewriter.Width, directed bool, minVertices uint64) (Result, error) {
	vertices, edges, err := edgereader.ReadAll(filenames, width)
	if err != nil {
		return Result{}, err
	}

	n := minVertices
	for i := 0; i+1 < len(vertices); i += 2 {
		if m := vertices[i] + 1; m > n {
			n = m
		}
		if m := vertices[i+1] + 1; m > n {
			n = m
		}
	}

	adj := make([][]uint64, n)
	for i := 0; i+1 < len(vertices); i += 2 {
		from, to := vertices[i], vertices[i+1]
		adj[from] = append(adj[from], to)
		if !directed {
			adj[to] = append(adj[to], from)
		}
	}

	var removed uint64
	for v, neighbors := range adj {
		before := len(neighbors)
		adj[v] = dedupSorted(neighbors)
		removed += uint64(before - len(adj[v]))
	}
	paggrt.Infof("bfs: %d duplicate adjacency entries removed", removed)

	numComponents, visited := traverse(adj)

	return Result{
		NumVertices:       n,
		NumEdges:          edges,
		NumComponents:     numComponents,
		VerticesVisited:   visited,
		DuplicatesRemoved: removed,
	}, nil
}

func dedupSorted(xs []uint64) []uint64 {
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

// traverse runs a BFS from every unvisited vertex, counting components
// and total vertices reached, and stops early once every vertex has been
// visited.
func traverse(adj [][]uint64) (numComponents, visited uint64) {
	seen := make([]bool, len(adj))
	for start := range adj {
		if seen[start] {
			continue
		}
		numComponents++
		queue := []uint64{uint64(start)}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if seen[cur] {
				continue
			}
			seen[cur] = true
			visited++
			for _, nb := range adj[cur] {
				if !seen[nb] {
					queue = append(queue, nb)
				}
			}
		}
		if visited == uint64(len(adj)) {
			break
		}
	}
	return numComponents, visited
}
