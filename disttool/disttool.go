// Package disttool reads back one or more edge files and prints a
// degree distribution, per spec.md §4.13: endpoints are sorted into an
// ascending external sorter (two sorters — out/in — in the directed
// case), run-length encoded into per-vertex degrees, then run-length
// encoded again into a degree distribution.
package disttool

import (
	"fmt"
	"io"

	"github.com/tfp-graph/pagg/distcount"
	"github.com/tfp-graph/pagg/edgereader"
	"github.com/tfp-graph/pagg/edgewriter"
	"github.com/tfp-graph/pagg/paggrt"
	"github.com/tfp-graph/pagg/storage"
)

// Run reads filenames, builds the degree distribution, and writes it to
// w as "value count" lines. When directed is set, out-degrees and
// in-degrees are reported as two separate sections.
func Run(filenames []string, width edgewriter.Width, directed bool, w io.Writer) error {
	vertices, edges, err := edgereader.ReadAll(filenames, width)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "# Number of edges: %d\n", edges)

	if !directed {
		return countAndDisplayDegree(vertices, w)
	}

	var outEndpoints, inEndpoints []uint64
	for i := 0; i+1 < len(vertices); i += 2 {
		outEndpoints = append(outEndpoints, vertices[i])
		inEndpoints = append(inEndpoints, vertices[i+1])
	}

	fmt.Fprintln(w, "# Out-Degrees")
	if err := countAndDisplayDegree(outEndpoints, w); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# In-Degrees")
	return countAndDisplayDegree(inEndpoints, w)
}

// countAndDisplayDegree sorts endpoints, run-length encodes them into
// per-vertex degrees, sorts those degrees, run-length encodes again into
// a degree distribution, and writes "degree count" lines.
func countAndDisplayDegree(endpoints []uint64, w io.Writer) error {
	nodeSorter := storage.NewMemSorter[uint64](func(a, b uint64) bool { return a < b })
	for _, v := range endpoints {
		nodeSorter.Push(v)
	}
	nodeSorter.Sort()

	degreeCount := distcount.New[uint64](nodeSorter, distcount.Equatable[uint64])

	degreeSorter := storage.NewMemSorter[uint64](func(a, b uint64) bool { return a < b })
	for !degreeCount.Empty() {
		degreeSorter.Push(degreeCount.Current().Count)
		degreeCount.Advance()
	}
	degreeSorter.Sort()

	var degreeSum uint64
	distrCount := distcount.New[uint64](degreeSorter, distcount.Equatable[uint64])
	for !distrCount.Empty() {
		b := distrCount.Current()
		if _, err := fmt.Fprintf(w, "%d %d\n", b.Value, b.Count); err != nil {
			return err
		}
		degreeSum += b.Value * b.Count
		distrCount.Advance()
	}
	paggrt.Debugf("degree distribution written, sum of degrees %d", degreeSum)
	return nil
}
