package storage

import (
	"container/heap"
	"sort"
	"sync"

	"github.com/tfp-graph/pagg/token"
)

// MemSorter is the simplest possible Sorter: push everything into a
// slice, sort it once with sort.SliceStable, then stream it back out. It is
// registered as the "mem" engine and used directly wherever a generic
// ascending sort is needed outside the token pipeline (the edge sorter,
// the distribution tool's endpoint sorters).
type MemSorter[T any] struct {
	less  func(a, b T) bool
	items []T
	pos   int
}

func NewMemSorter[T any](less func(a, b T) bool) *MemSorter[T] {
	return &MemSorter[T]{less: less}
}

func (s *MemSorter[T]) Push(v T) { s.items = append(s.items, v) }

func (s *MemSorter[T]) Sort() {
	sort.SliceStable(s.items, func(i, j int) bool { return s.less(s.items[i], s.items[j]) })
}

func (s *MemSorter[T]) Empty() bool  { return s.pos >= len(s.items) }
func (s *MemSorter[T]) Current() T   { return s.items[s.pos] }
func (s *MemSorter[T]) Advance()     { s.pos++ }
func (s *MemSorter[T]) Close() error { s.items = nil; return nil }

// memHeap adapts a slice plus a caller-supplied Less into container/heap.
type memHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *memHeap[T]) Len() int            { return len(h.items) }
func (h *memHeap[T]) Less(i, j int) bool  { return h.less(h.items[i], h.items[j]) }
func (h *memHeap[T]) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *memHeap[T]) Push(x interface{})  { h.items = append(h.items, x.(T)) }
func (h *memHeap[T]) Pop() interface{} {
	old := h.items
	n := len(old)
	v := old[n-1]
	h.items = old[:n-1]
	return v
}

// MemPQ is an in-memory min priority queue built on container/heap.
type MemPQ[T any] struct {
	h *memHeap[T]
}

func NewMemPQ[T any](less func(a, b T) bool) *MemPQ[T] {
	h := &memHeap[T]{less: less}
	heap.Init(h)
	return &MemPQ[T]{h: h}
}

func (p *MemPQ[T]) Push(v T)    { heap.Push(p.h, v) }
func (p *MemPQ[T]) Pop() T      { return heap.Pop(p.h).(T) }
func (p *MemPQ[T]) Top() T      { return p.h.items[0] }
func (p *MemPQ[T]) Empty() bool { return p.h.Len() == 0 }
func (p *MemPQ[T]) Size() int   { return p.h.Len() }
func (p *MemPQ[T]) Close() error {
	p.h.items = nil
	return nil
}

// MemPPQ wraps MemPQ with a mutex and bulk push/pop windows, standing in
// for the external parallel priority queue the parallel BA driver needs
// (spec.md §4.11). Every Push takes the mutex and BulkPush holds it for a
// whole window, so pushes from concurrent worker goroutines are
// serialised.
type MemPPQ[T any] struct {
	mu sync.Mutex
	pq *MemPQ[T]
}

func NewMemPPQ[T any](less func(a, b T) bool) *MemPPQ[T] {
	return &MemPPQ[T]{pq: NewMemPQ[T](less)}
}

func (p *MemPPQ[T]) Push(v T) {
	p.mu.Lock()
	p.pq.Push(v)
	p.mu.Unlock()
}

func (p *MemPPQ[T]) Pop() T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pq.Pop()
}

func (p *MemPPQ[T]) Top() T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pq.Top()
}

func (p *MemPPQ[T]) Empty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pq.Empty()
}

func (p *MemPPQ[T]) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pq.Size()
}

func (p *MemPPQ[T]) Close() error { return nil }

// BulkPush opens a single critical section and lets fn push as many
// items as it likes through the provided closure.
func (p *MemPPQ[T]) BulkPush(fn func(push func(T))) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(func(v T) { p.pq.Push(v) })
}

// BulkPop pops up to n items, strictly ascending under the queue's
// ordering, into a freshly allocated buffer.
func (p *MemPPQ[T]) BulkPop(n int) []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]T, 0, n)
	for i := 0; i < n && !p.pq.Empty(); i++ {
		out = append(out, p.pq.Pop())
	}
	return out
}

// CompressedPPQ is the "mem" engine's ParallelPriorityQueue: a MemPPQ
// holding token.Compressed rather than token.Token, matching how
// original_source/main_pba.cpp's mppq holds TokenCompressed as the real
// element type flowing through the bulk-push/bulk-pop windows the
// parallel BA driver spends nearly all its time in (spec.md's
// "bandwidth-critical paths"). Push/BulkPush compress on the way in;
// Pop/Top/BulkPop decompress on the way out, so callers never see the
// packed form.
type CompressedPPQ struct {
	inner *MemPPQ[token.Compressed]
}

func NewCompressedPPQ() *CompressedPPQ {
	less := func(a, b token.Compressed) bool { return a.Less(b) }
	return &CompressedPPQ{inner: NewMemPPQ[token.Compressed](less)}
}

func (q *CompressedPPQ) Push(t token.Token) { q.inner.Push(token.Compress(t)) }
func (q *CompressedPPQ) Pop() token.Token   { return q.inner.Pop().Decompress() }
func (q *CompressedPPQ) Top() token.Token   { return q.inner.Top().Decompress() }
func (q *CompressedPPQ) Empty() bool        { return q.inner.Empty() }
func (q *CompressedPPQ) Size() int          { return q.inner.Size() }
func (q *CompressedPPQ) Close() error       { return q.inner.Close() }

func (q *CompressedPPQ) BulkPush(fn func(push func(token.Token))) {
	q.inner.BulkPush(func(push func(token.Compressed)) {
		fn(func(t token.Token) { push(token.Compress(t)) })
	})
}

func (q *CompressedPPQ) BulkPop(n int) []token.Token {
	buf := q.inner.BulkPop(n)
	out := make([]token.Token, len(buf))
	for i, c := range buf {
		out[i] = c.Decompress()
	}
	return out
}

var _ ParallelPriorityQueue = (*CompressedPPQ)(nil)
