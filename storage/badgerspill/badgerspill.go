//go:build badger
// +build badger

// Package badgerspill is the disk-backed storage engine: when it is
// selected as the "badger" engine, tokens go to a Badger LSM database
// instead of an in-memory slice/heap, per SPEC_FULL.md §4.16. There is no
// automatic switch from the mem engine when a run grows large.
// Badger's own key ordering becomes the ascending token order, so "sort"
// is free and priority-queue "pop the minimum" is "read the first key."
// This mirrors the teacher's storage/badger engine: a semver-tagged
// Engine registered in an init(), opened against a throwaway directory.
package badgerspill

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/blang/semver"
	badger "github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	"github.com/twinj/uuid"

	"github.com/tfp-graph/pagg/paggrt"
	"github.com/tfp-graph/pagg/storage"
	"github.com/tfp-graph/pagg/token"
)

func init() {
	ver, _ := semver.Make("0.1.0")
	storage.RegisterEngine(Engine{name: "badger", semver: ver})
}

// Engine is the badger-backed storage.Engine.
type Engine struct {
	name   string
	semver semver.Version
}

func (e Engine) Name() string { return e.name }

func openTemp() *badger.DB {
	dir, err := os.MkdirTemp("", "pagg-badger-"+uuid.NewV4().String())
	if err != nil {
		paggrt.Criticalf("badgerspill: could not create temp dir: %v", err)
		panic(err)
	}
	opts := badger.DefaultOptions(dir).
		WithLogger(nil).
		WithCompression(options.ZSTD)
	db, err := badger.Open(opts)
	if err != nil {
		paggrt.Criticalf("badgerspill: could not open badger at %s: %v", dir, err)
		panic(err)
	}
	return db
}

// encodeKey packs a token into a 24-byte key whose byte ordering equals
// the token's ascending order: encodedIndex, then value, then a
// monotonic sequence number that breaks ties between otherwise-equal
// tokens without disturbing their relative order.
func encodeKey(t token.Token, seq uint64) []byte {
	b := make([]byte, 24)
	binary.BigEndian.PutUint64(b[0:8], t.EncodedIndex())
	binary.BigEndian.PutUint64(b[8:16], t.Value)
	binary.BigEndian.PutUint64(b[16:24], seq)
	return b
}

func decodeKey(b []byte) token.Token {
	encodedIndex := binary.BigEndian.Uint64(b[0:8])
	value := binary.BigEndian.Uint64(b[8:16])
	return token.Token{
		Index: encodedIndex >> 1,
		Query: encodedIndex&1 != 0,
		Value: value,
	}
}

func (Engine) NewSorter() storage.Sorter {
	return &Sorter{db: openTemp()}
}

func (Engine) NewPriorityQueue() storage.PriorityQueue {
	return &PriorityQueue{db: openTemp()}
}

func (Engine) NewParallelPriorityQueue() storage.ParallelPriorityQueue {
	return &ParallelPriorityQueue{PriorityQueue: PriorityQueue{db: openTemp()}}
}

var _ storage.ParallelEngine = Engine{}

// Sorter spills pushed tokens into Badger and streams them back out in
// key (== ascending token) order.
type Sorter struct {
	db      *badger.DB
	seq     uint64
	iter    *badger.Iterator
	txn     *badger.Txn
	current token.Token
	empty   bool
	started bool
}

func (s *Sorter) Push(t token.Token) {
	key := encodeKey(t, s.seq)
	s.seq++
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, nil)
	}); err != nil {
		paggrt.Criticalf("badgerspill sorter push failed: %v", err)
		panic(err)
	}
}

// Sort has nothing to do: Badger already orders keys ascending.
func (s *Sorter) Sort() {}

func (s *Sorter) ensureStarted() {
	if s.started {
		return
	}
	s.started = true
	s.txn = s.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	s.iter = s.txn.NewIterator(opts)
	s.iter.Rewind()
	s.advanceInternal()
}

func (s *Sorter) advanceInternal() {
	if !s.iter.Valid() {
		s.empty = true
		return
	}
	s.current = decodeKey(s.iter.Item().KeyCopy(nil))
	s.iter.Next()
}

func (s *Sorter) Empty() bool {
	s.ensureStarted()
	return s.empty
}

func (s *Sorter) Current() token.Token {
	s.ensureStarted()
	return s.current
}

func (s *Sorter) Advance() {
	s.ensureStarted()
	s.advanceInternal()
}

func (s *Sorter) Close() error {
	if s.iter != nil {
		s.iter.Close()
	}
	if s.txn != nil {
		s.txn.Discard()
	}
	dir := s.db.Opts().Dir
	if err := s.db.Close(); err != nil {
		return err
	}
	return os.RemoveAll(dir)
}

// PriorityQueue is a min priority queue backed by a Badger database: the
// smallest key is always the minimum token, so Pop/Top read the first
// key of a fresh iterator.
type PriorityQueue struct {
	db  *badger.DB
	seq uint64
}

func (q *PriorityQueue) Push(t token.Token) {
	key := encodeKey(t, q.seq)
	q.seq++
	if err := q.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, nil)
	}); err != nil {
		paggrt.Criticalf("badgerspill pq push failed: %v", err)
		panic(err)
	}
}

func (q *PriorityQueue) peek() (key []byte, tok token.Token, found bool) {
	err := q.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()
		it.Rewind()
		if !it.Valid() {
			return nil
		}
		key = it.Item().KeyCopy(nil)
		tok = decodeKey(key)
		found = true
		return nil
	})
	if err != nil {
		paggrt.Criticalf("badgerspill pq peek failed: %v", err)
		panic(err)
	}
	return
}

func (q *PriorityQueue) Top() token.Token {
	_, tok, found := q.peek()
	if !found {
		panic("badgerspill: Top on empty priority queue")
	}
	return tok
}

func (q *PriorityQueue) Pop() token.Token {
	key, tok, found := q.peek()
	if !found {
		panic("badgerspill: Pop on empty priority queue")
	}
	if err := q.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	}); err != nil {
		paggrt.Criticalf("badgerspill pq delete failed: %v", err)
		panic(err)
	}
	return tok
}

func (q *PriorityQueue) Empty() bool {
	_, _, found := q.peek()
	return !found
}

func (q *PriorityQueue) Size() int {
	n := 0
	_ = q.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n
}

func (q *PriorityQueue) Close() error {
	dir := q.db.Opts().Dir
	if err := q.db.Close(); err != nil {
		return err
	}
	return os.RemoveAll(dir)
}

// ParallelPriorityQueue adds bulk push/pop windows over the same Badger
// database, batching everything into one write/read transaction to
// amortise the per-call overhead a real PPQ's bulk window exists for.
type ParallelPriorityQueue struct {
	PriorityQueue
}

func (q *ParallelPriorityQueue) BulkPush(fn func(push func(token.Token))) {
	err := q.db.Update(func(txn *badger.Txn) error {
		var txErr error
		fn(func(t token.Token) {
			if txErr != nil {
				return
			}
			key := encodeKey(t, q.seq)
			q.seq++
			txErr = txn.Set(key, nil)
		})
		return txErr
	})
	if err != nil {
		paggrt.Criticalf("badgerspill bulk push failed: %v", err)
		panic(err)
	}
}

func (q *ParallelPriorityQueue) BulkPop(n int) []token.Token {
	out := make([]token.Token, 0, n)
	var keys [][]byte
	err := q.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()
		it.Rewind()
		for i := 0; i < n && it.Valid(); i++ {
			item := it.Item()
			keys = append(keys, item.KeyCopy(nil))
			out = append(out, decodeKey(item.Key()))
			it.Next()
		}
		return nil
	})
	if err != nil {
		paggrt.Criticalf("badgerspill bulk pop read failed: %v", err)
		panic(err)
	}
	if len(keys) == 0 {
		return out
	}
	err = q.db.Update(func(txn *badger.Txn) error {
		for _, k := range keys {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		paggrt.Criticalf("badgerspill bulk pop delete failed: %v", err)
		panic(err)
	}
	return out
}

var _ fmt.Stringer = Engine{}

func (e Engine) String() string { return fmt.Sprintf("%s [%s]", e.name, e.semver) }
