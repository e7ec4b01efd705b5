// Package edgefilter drops self-loops and collapses multi-edges from a
// stream of (u, v) pairs, per spec.md §4.3.
package edgefilter

import "github.com/tfp-graph/pagg/stream"

// Edge is an ordered pair of vertex IDs.
type Edge struct {
	U, V uint64
}

// Options selects which checks run. With both false, Filter is a
// pass-through.
type Options struct {
	DropSelfLoops bool
	DropMultiEdges bool
}

// Filter wraps a stream of Edge. When DropMultiEdges is set the input
// must already be sorted lexicographically by (U, V); only an edge's
// first occurrence survives.
type Filter struct {
	in      stream.Stream[Edge]
	opts    Options
	current Edge
	last    Edge
	haveLast bool
	empty   bool
}

func New(in stream.Stream[Edge], opts Options) *Filter {
	f := &Filter{in: in, opts: opts}
	f.fetch(true)
	return f
}

func (f *Filter) fetch(initial bool) {
	if !initial {
		f.last = f.current
		f.haveLast = true
	}
	for {
		if f.in.Empty() {
			f.empty = true
			return
		}
		candidate := f.in.Current()
		reject := (f.opts.DropSelfLoops && candidate.U == candidate.V) ||
			(f.opts.DropMultiEdges && f.haveLast && f.last == candidate)
		f.in.Advance()
		if !reject {
			f.current = candidate
			f.empty = false
			return
		}
	}
}

func (f *Filter) Empty() bool   { return f.empty }
func (f *Filter) Current() Edge { return f.current }
func (f *Filter) Advance()      { f.fetch(false) }
