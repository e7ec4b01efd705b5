package edgewriter

import "fmt"

// Pool constructs numWriters Writers, distributing them across one or
// more output-path prefixes in round-robin fashion (spec.md §6: worker i
// writes to prefix[i mod N] + "graph" + i + ".bin"). The writers it owns
// are destroyed — and their files truncated to true size — when Close is
// called; there is no reference counting, matching the original's
// single-owner lifetime.
type Pool struct {
	writers []*Writer
}

// NewPool loads the output-pool configuration (via FindConfigPaths
// unless prefixes is non-empty) and builds numWriters writers at the
// given width, each pre-sized for expectedEdgesPerWriter edges.
func NewPool(numWriters int, width Width, expectedEdgesPerWriter uint64, prefixes []string) (*Pool, error) {
	if len(prefixes) == 0 {
		prefixes = FindConfigPaths()
	}
	p := &Pool{}
	for i := 0; i < numWriters; i++ {
		prefix := prefixes[i%len(prefixes)]
		filename := fmt.Sprintf("%sgraph%d.bin", prefix, i)
		w, err := New(filename, width, expectedEdgesPerWriter)
		if err != nil {
			p.Close()
			return nil, err
		}
		p.writers = append(p.writers, w)
	}
	return p, nil
}

// At returns the writer assigned to worker idx.
func (p *Pool) At(idx int) *Writer { return p.writers[idx] }

// Len returns the number of writers in the pool.
func (p *Pool) Len() int { return len(p.writers) }

// TotalEdgesWritten sums EdgesWritten across every writer in the pool.
func (p *Pool) TotalEdgesWritten() uint64 {
	var total uint64
	for _, w := range p.writers {
		total += w.EdgesWritten()
	}
	return total
}

// Close closes every writer in the pool, returning the first error
// encountered (if any) after attempting to close them all.
func (p *Pool) Close() error {
	var firstErr error
	for _, w := range p.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
