// Package storage defines the external-memory collaborators the TFP
// pipeline needs — an ascending sorter and a (parallel) min priority
// queue — per spec.md §4.4, §4.10, §4.11 and the "External sorter /
// priority queue" design note in spec.md §9: the core only depends on
// these interfaces, never a concrete implementation. Concrete engines
// register themselves under a name in an init(), mirroring the teacher's
// storage.RegisterEngine/DataHandler pattern for pluggable key-value
// backends.
package storage

import (
	"fmt"

	"github.com/tfp-graph/pagg/token"
)

// Sorter is an external-memory ascending sorter: push everything, call
// Sort once, then consume via the Stream contract (Empty/Current/Advance).
type Sorter interface {
	Push(t token.Token)
	Sort()
	Empty() bool
	Current() token.Token
	Advance()
	Close() error
}

// PriorityQueue is a min priority queue ordered by ascending
// (encodedIndex, value).
type PriorityQueue interface {
	Push(t token.Token)
	Pop() token.Token
	Top() token.Token
	Empty() bool
	Size() int
	Close() error
}

// ParallelPriorityQueue adds the bulk push/pop windows the parallel BA
// driver needs to amortise synchronisation across a whole batch.
type ParallelPriorityQueue interface {
	PriorityQueue
	BulkPush(fn func(push func(token.Token)))
	BulkPop(n int) []token.Token
}

// Engine names a concrete backend and builds the token-pipeline
// collaborators against it.
type Engine interface {
	Name() string
	NewSorter() Sorter
	NewPriorityQueue() PriorityQueue
}

// ParallelEngine is an Engine that can also back the parallel driver.
type ParallelEngine interface {
	Engine
	NewParallelPriorityQueue() ParallelPriorityQueue
}

var registry = map[string]Engine{}

// RegisterEngine makes e available under e.Name() for the -engine CLI
// flag and for LookupEngine.
func RegisterEngine(e Engine) {
	registry[e.Name()] = e
}

// LookupEngine returns the engine registered under name.
func LookupEngine(name string) (Engine, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("storage: no engine registered as %q", name)
	}
	return e, nil
}

func init() {
	RegisterEngine(memEngine{})
}

// memEngine is the default, always-available engine: pure in-memory
// sorter and priority queue, adequate for small runs and all tests.
type memEngine struct{}

func (memEngine) Name() string { return "mem" }

func (memEngine) NewSorter() Sorter {
	return NewMemSorter[token.Token](func(a, b token.Token) bool { return a.Less(b) })
}

func (memEngine) NewPriorityQueue() PriorityQueue {
	return NewMemPQ[token.Token](func(a, b token.Token) bool { return a.Less(b) })
}

func (memEngine) NewParallelPriorityQueue() ParallelPriorityQueue {
	return NewCompressedPPQ()
}

var _ ParallelEngine = memEngine{}
