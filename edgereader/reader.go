// Package edgereader reads back the fixed-width edge files edgewriter
// produces, for the distribution tool and the BFS connectivity check
// (spec.md §4.13, SPEC_FULL.md §4.17).
package edgereader

import (
	"bufio"
	"io"
	"os"

	"github.com/tfp-graph/pagg/edgewriter"
	"github.com/tfp-graph/pagg/paggrt"
)

// ReadAll reads every vertex ID out of filenames, in order, concatenating
// them as if they were a single file (matching the original's "multiple
// files interpreted as concatenated" convention). Returns the flat vertex
// slice and the total edge count (len/2).
func ReadAll(filenames []string, width edgewriter.Width) ([]uint64, uint64, error) {
	if !width.Valid() {
		return nil, 0, &widthError{width}
	}
	var out []uint64
	var totalEdges uint64
	buf := make([]byte, width.Bytes())
	for _, name := range filenames {
		f, err := os.Open(name)
		if err != nil {
			return nil, 0, err
		}
		n, err := readOne(f, width, buf, &out)
		f.Close()
		if err != nil {
			return nil, 0, err
		}
		paggrt.Infof("read %d edges from file %s", n/2, name)
		totalEdges += n / 2
	}
	return out, totalEdges, nil
}

func readOne(f *os.File, width edgewriter.Width, buf []byte, out *[]uint64) (uint64, error) {
	r := bufio.NewReader(f)
	var count uint64
	for {
		_, err := io.ReadFull(r, buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		*out = append(*out, width.Decode(buf))
		count++
	}
	return count, nil
}

type widthError struct{ w edgewriter.Width }

func (e *widthError) Error() string { return "edgereader: unsupported width " + e.w.String() }
