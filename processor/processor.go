// Package processor drives the merged token sequence through a min
// priority queue, turning it into a stream of vertex values — one per
// materialised edge-list position — per spec.md §4.10.
package processor

import (
	"github.com/tfp-graph/pagg/paggrt"
	"github.com/tfp-graph/pagg/storage"
	"github.com/tfp-graph/pagg/token"
)

// Processor consumes a merged token stream and owns a min priority queue
// ordered by ascending (index, value). Its output is the stream of
// vertex values written at each edge-list position: pairs of consecutive
// outputs are the edges of spec.md §3.
type Processor struct {
	in           merged
	pq           storage.PriorityQueue
	currentIdx   uint64
	currentValue uint64
	empty        bool
}

// merged is the minimal surface Processor needs from its input stream.
type merged interface {
	Empty() bool
	Current() token.Token
	Advance()
}

// New builds a Processor over in, using pq as its scheduling queue. pq
// must start empty; the processor owns it and advances it as a side
// effect of Advance.
func New(in merged, pq storage.PriorityQueue) *Processor {
	p := &Processor{in: in, pq: pq}
	p.advance()
	return p
}

// process handles one token: if it's a query, it resolves to the most
// recently written vertex and schedules a new link for later; if it's a
// link, it becomes the processor's current output. Returns true if
// processing should continue (a query was consumed, no output yet).
func (p *Processor) process(t token.Token) bool {
	if t.Query {
		paggrt.Assertf(p.currentIdx-1 == t.Index,
			"query at index %d resolved out of order: most recent link was at index %d", t.Index, p.currentIdx-1)
		p.pq.Push(token.New(false, t.Value, p.currentValue))
		return true
	}
	p.currentValue = t.Value
	p.currentIdx++
	return false
}

func (p *Processor) advance() {
	for {
		pqEmpty := p.pq.Empty()
		inEmpty := p.in.Empty()
		switch {
		case pqEmpty && inEmpty:
			p.empty = true
			return
		case pqEmpty:
			t := p.in.Current()
			p.in.Advance()
			if !p.process(t) {
				return
			}
		case inEmpty:
			t := p.pq.Pop()
			if !p.process(t) {
				return
			}
		case p.in.Current().Less(p.pq.Top()):
			t := p.in.Current()
			p.in.Advance()
			if !p.process(t) {
				return
			}
		default:
			t := p.pq.Pop()
			if !p.process(t) {
				return
			}
		}
	}
}

func (p *Processor) Empty() bool     { return p.empty }
func (p *Processor) Current() uint64 { return p.currentValue }
func (p *Processor) Advance()        { p.advance() }
