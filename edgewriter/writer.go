package edgewriter

import (
	"bufio"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/tfp-graph/pagg/edgefilter"
	"github.com/tfp-graph/pagg/paggrt"
	"github.com/tfp-graph/pagg/stream"
)

// Writer appends fixed-width vertex IDs to a single output file. The
// file is only truncated to its true size — 2*edgesWritten*width bytes —
// on Close, matching the "overestimate not truncated" crash behaviour of
// spec.md §7: a process that dies mid-run leaves an oversized file.
type Writer struct {
	width         Width
	file          *os.File
	buf           *bufio.Writer
	edgesWritten  uint64
	disableOutput bool
}

// New creates (or truncates) filename and preallocates room for roughly
// expectedEdges edges, matching the original's "over-estimate the file
// size up front" strategy to avoid repeated grow operations.
func New(filename string, width Width, expectedEdges uint64) (*Writer, error) {
	if !width.Valid() {
		return nil, paggrt.Usagef("edgewriter: unsupported width %v", width)
	}
	f, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	if expectedEdges > 0 {
		if err := f.Truncate(int64(2 * expectedEdges * uint64(width.Bytes()))); err != nil {
			f.Close()
			return nil, err
		}
		if _, err := f.Seek(0, 0); err != nil {
			f.Close()
			return nil, err
		}
	}
	return &Writer{width: width, file: f, buf: bufio.NewWriter(f)}, nil
}

// SetDisableOutput turns writes into drains, for measuring pipeline
// throughput with I/O removed from the critical path.
func (w *Writer) SetDisableOutput(v bool) { w.disableOutput = v }

func (w *Writer) putVertex(v uint64) error {
	var tmp [8]byte
	w.width.Encode(tmp[:w.width.Bytes()], v)
	_, err := w.buf.Write(tmp[:w.width.Bytes()])
	return err
}

// WriteVertices consumes a flat vertex stream, writing one ID per step
// and counting ⌊count/2⌋ edges.
func (w *Writer) WriteVertices(vs stream.Stream[uint64]) error {
	var n uint64
	for !vs.Empty() {
		if !w.disableOutput {
			if err := w.putVertex(vs.Current()); err != nil {
				return err
			}
		}
		n++
		vs.Advance()
	}
	w.edgesWritten += n / 2
	return nil
}

// WriteEdges consumes a stream of (u, v) pairs, writing two IDs per step.
func (w *Writer) WriteEdges(es stream.Stream[edgefilter.Edge]) error {
	for !es.Empty() {
		if !w.disableOutput {
			e := es.Current()
			if err := w.putVertex(e.U); err != nil {
				return err
			}
			if err := w.putVertex(e.V); err != nil {
				return err
			}
		}
		w.edgesWritten++
		es.Advance()
	}
	return nil
}

// WriteEdgePair writes a single resolved edge (u, v), for callers that
// complete edges one at a time rather than through a stream, such as the
// parallel BA driver's batch loop.
func (w *Writer) WriteEdgePair(u, v uint64) error {
	if !w.disableOutput {
		if err := w.putVertex(u); err != nil {
			return err
		}
		if err := w.putVertex(v); err != nil {
			return err
		}
	}
	w.edgesWritten++
	return nil
}

// EdgesWritten returns the number of edges passed to the writer so far,
// including edges drained while output is disabled.
func (w *Writer) EdgesWritten() uint64 { return w.edgesWritten }

// Close flushes buffered output and truncates the file to its true size
// (2*edgesWritten*width bytes), then closes the handle.
func (w *Writer) Close() error {
	if w.disableOutput {
		return w.file.Close()
	}
	if err := w.buf.Flush(); err != nil {
		return err
	}
	trueSize := int64(2 * w.edgesWritten * uint64(w.width.Bytes()))
	paggrt.Debugf("closing edge writer, %s edges written (%s)", humanize.Comma(int64(w.edgesWritten)), humanize.Bytes(uint64(trueSize)))
	if err := w.file.Truncate(trueSize); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
