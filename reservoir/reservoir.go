// Package reservoir implements algorithm R: a fixed-size uniform sample
// maintained online over a stream of unknown length, with erase support
// so a caller can cancel the sampling bias introduced by revealing an
// element via Sample (spec.md §3, §4.12).
package reservoir

import "github.com/tfp-graph/pagg/rng"

// Index identifies a slot in the reservoir. It is only valid until the
// next Erase/EraseMaybe call that doesn't target it, since Erase
// compacts by swapping with the last element.
type Index int

// Reservoir holds a uniform sample of size k drawn from however many
// elements have been pushed so far.
type Reservoir[T any] struct {
	items []T
	k     int
	n     uint64
	g     *rng.RNG
}

// New allocates an empty reservoir targeting size k, which must be > 0.
func New[T any](k int, g *rng.RNG) *Reservoir[T] {
	if k <= 0 {
		panic("reservoir: target size must be > 0")
	}
	return &Reservoir[T]{k: k, g: g}
}

// Push adds d to the reservoir with probability min(1, k/n), where n is
// the number of elements pushed so far (this one included).
func (r *Reservoir[T]) Push(d T) {
	r.n++
	if len(r.items) < r.k {
		r.items = append(r.items, d)
		return
	}
	idx := r.g.UniformInt(r.n)
	if idx < uint64(r.k) {
		r.items[idx] = d
	}
}

// Empty reports whether nothing has been retained.
func (r *Reservoir[T]) Empty() bool { return len(r.items) == 0 }

// Size returns how many elements are currently retained (<= k).
func (r *Reservoir[T]) Size() int { return len(r.items) }

// Sample returns the index of an element drawn uniformly from the
// current reservoir contents. Panics if the reservoir is empty — an
// empty-reservoir sample is a programmer error (spec.md §7).
func (r *Reservoir[T]) Sample() Index {
	if r.Empty() {
		panic("reservoir: sample of empty reservoir")
	}
	return Index(r.g.UniformInt(uint64(len(r.items))))
}

// At returns the element currently stored at idx.
func (r *Reservoir[T]) At(idx Index) T { return r.items[idx] }

// Erase removes the element at idx by swapping it with the last element
// and shrinking the reservoir by one.
func (r *Reservoir[T]) Erase(idx Index) {
	last := len(r.items) - 1
	if int(idx) != last {
		r.items[idx] = r.items[last]
	}
	r.items = r.items[:last]
}

// EraseMaybe erases idx with probability 1 - k/n, cancelling the bias
// introduced once Sample has revealed *it. It draws r ~ U(0,n) and keeps
// (does not erase) iff r < k.
func (r *Reservoir[T]) EraseMaybe(idx Index) {
	if r.g.UniformInt(r.n) < uint64(r.k) {
		return
	}
	r.Erase(idx)
}
