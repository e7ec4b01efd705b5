package ba

import (
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tfp-graph/pagg/edgewriter"
	"github.com/tfp-graph/pagg/paggrt"
	"github.com/tfp-graph/pagg/rng"
	"github.com/tfp-graph/pagg/storage"
	"github.com/tfp-graph/pagg/token"
)

// ParallelConfig is the parallel undirected BA driver's full parameter
// set, per spec.md §4.11.
type ParallelConfig struct {
	SeedVertices     uint64 // n0 >= 2: size of the RAGPath seed
	NewVertices      uint64 // n: vertices added by preferential attachment
	EdgesPerVertex   uint64 // m: edges each new vertex brings
	EdgeDependencies bool   // §4.9: whether a vertex's own earlier edges count toward its own later draws
	Seed             int64
	Workers          int
	MinBatch         int
	PPQExtractCap    int
	Engine           storage.ParallelEngine
	Pool             *edgewriter.Pool // must have Len() == Workers
}

// ParallelDriver owns the PPQ and runs the batch loop described in
// spec.md §4.11 to completion.
type ParallelDriver struct {
	cfg         ParallelConfig
	ppq         storage.ParallelPriorityQueue
	firstVertex uint64
	completed   uint64
	unanswered  uint64
}

// ragPathNode is the RAGPath seed structure: node(i) = i/2 + (i&1),
// producing the path 0,1,1,2,2,3,3,... rather than InitialCircle's cycle.
func ragPathNode(i uint64) uint64 { return i/2 + (i & 1) }

// NewParallel validates cfg, writes the RAGPath seed directly to
// worker 0's edge file, and populates the PPQ with the initial token
// set via a multi-threaded parallel-for over new vertices.
func NewParallel(cfg ParallelConfig) (*ParallelDriver, error) {
	if cfg.SeedVertices < 2 {
		return nil, paggrt.Usagef("ba-parallel: seed_verts must be >= 2, got %d", cfg.SeedVertices)
	}
	if cfg.EdgesPerVertex == 0 {
		return nil, paggrt.Usagef("ba-parallel: edges_per_vertex must be >= 1")
	}
	if cfg.Workers < 1 {
		return nil, paggrt.Usagef("ba-parallel: workers must be >= 1")
	}
	if cfg.MinBatch < 1 {
		return nil, paggrt.Usagef("ba-parallel: min_batch must be >= 1")
	}
	if cfg.PPQExtractCap < cfg.MinBatch {
		return nil, paggrt.Usagef("ba-parallel: ppq_extract_cap must be >= min_batch")
	}
	if cfg.Pool == nil || cfg.Pool.Len() != cfg.Workers {
		return nil, paggrt.Usagef("ba-parallel: pool must have exactly %d writers, got %d", cfg.Workers, poolLen(cfg.Pool))
	}

	numSeedEdges := cfg.SeedVertices - 1
	maxSeedVertex := cfg.SeedVertices - 1
	firstVertex := maxSeedVertex + 1
	w0 := 2 * numSeedEdges

	if err := writeSeedPath(cfg.Pool.At(0), numSeedEdges); err != nil {
		return nil, err
	}

	ppq := cfg.Engine.NewParallelPriorityQueue()
	populateInitial(ppq, cfg.NewVertices, cfg.EdgesPerVertex, w0, firstVertex, cfg.Workers, cfg.Seed, cfg.EdgeDependencies)

	return &ParallelDriver{cfg: cfg, ppq: ppq, firstVertex: firstVertex}, nil
}

func poolLen(p *edgewriter.Pool) int {
	if p == nil {
		return 0
	}
	return p.Len()
}

// writeSeedPath materialises the RAGPath edges directly, bypassing the
// token pipeline entirely since they need no resolution.
func writeSeedPath(w *edgewriter.Writer, numSeedEdges uint64) error {
	flat := make([]uint64, 0, 2*numSeedEdges)
	for k := uint64(0); k < numSeedEdges; k++ {
		flat = append(flat, ragPathNode(2*k), ragPathNode(2*k+1))
	}
	return w.WriteVertices(&uint64Slice{items: flat})
}

type uint64Slice struct {
	items []uint64
	pos   int
}

func (s *uint64Slice) Empty() bool     { return s.pos >= len(s.items) }
func (s *uint64Slice) Current() uint64 { return s.items[s.pos] }
func (s *uint64Slice) Advance()        { s.pos++ }

// populateInitial draws, for every new edge i in [0, numVertices*m), the
// preferential-attachment sample r from the deterministic weight w(i) =
// edgeWeight(w0, m, i, edgeDependencies) (the same helper §4.9's
// buildQueries uses, so the two formulas cannot drift apart again). When
// r falls in the deterministic range (the seed, or an already-known
// new-vertex slot) the edge's attractor is resolved on the spot and
// pushed as a link; otherwise a query is pushed referring to the earlier
// edge whose own attractor answers it. Since w(i) depends only on i,
// every worker can compute its shard's starting state without
// coordinating with the others.
func populateInitial(ppq storage.ParallelPriorityQueue, numVertices, m, w0, firstVertex uint64, workers int, masterSeed int64, edgeDependencies bool) {
	total := numVertices * m
	if total == 0 {
		return
	}
	shard := (total + uint64(workers) - 1) / uint64(workers)

	var wg sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		lo := uint64(worker) * shard
		hi := lo + shard
		if lo >= total {
			continue
		}
		if hi > total {
			hi = total
		}
		wg.Add(1)
		go func(workerID int, lo, hi uint64) {
			defer wg.Done()
			g := rng.ForWorker(masterSeed, workerID)
			ppq.BulkPush(func(push func(token.Token)) {
				for i := lo; i < hi; i++ {
					w := edgeWeight(w0, m, i, edgeDependencies)
					r := g.UniformInt(w)
					switch {
					case r < w0:
						push(token.New(false, i, ragPathNode(r)))
					case r&1 == 1:
						k := (r - w0) / 2
						push(token.New(false, i, firstVertex+k/m))
					default:
						j := (r - w0) / 2
						push(token.New(true, j, i))
					}
				}
			})
		}(worker, lo, hi)
	}
	wg.Wait()
}

// Run drains the PPQ to completion, writing every resolved edge to its
// assigned worker's file, and returns the number of non-seed edges it
// completed (the seed path is written by NewParallel).
func (d *ParallelDriver) Run() (uint64, error) {
	m := d.cfg.EdgesPerVertex
	for !d.ppq.Empty() {
		b := batchSize(d.completed, d.cfg.MinBatch, d.cfg.PPQExtractCap)
		buf := d.ppq.BulkPop(b)
		if len(buf) == 0 {
			break
		}
		// drained is true once this pop leaves nothing behind to ever
		// answer a trailing lone link, so that one must be completed now
		// instead of deferred — every query was generated up front, so
		// a deferral only ever makes sense while the queue still holds
		// something that could reference it.
		drained := d.ppq.Empty()

		if len(buf) < 2*d.cfg.MinBatch {
			completed, unanswered, err := d.processChunk(buf, 0, true, drained, m)
			if err != nil {
				return d.completed, err
			}
			d.completed += completed
			d.unanswered += unanswered
			continue
		}

		chunks := splitChunks(buf, d.cfg.Workers)
		var eg errgroup.Group
		var mu sync.Mutex
		for wi, chunk := range chunks {
			wi, chunk := wi, chunk
			isLast := wi == len(chunks)-1
			eg.Go(func() error {
				if len(chunk) == 0 {
					return nil
				}
				c, u, err := d.processChunk(chunk, wi, isLast, drained, m)
				if err != nil {
					return err
				}
				mu.Lock()
				d.completed += c
				d.unanswered += u
				mu.Unlock()
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return d.completed, err
		}
		paggrt.Debugf("ba-parallel batch: popped %d, completed %d total, %d unanswered", len(buf), d.completed, d.unanswered)
	}
	return d.completed, nil
}

// batchSize implements spec.md §4.11 step 1: B = clamp(pow(edgesEmitted,
// 0.75), minBatch, ppqExtractCap).
func batchSize(edgesEmitted uint64, minBatch, ppqExtractCap int) int {
	b := int(math.Pow(float64(edgesEmitted), 0.75))
	if b < minBatch {
		return minBatch
	}
	if b > ppqExtractCap {
		return ppqExtractCap
	}
	return b
}

// splitChunks divides buf into exactly n contiguous pieces under the
// chunking discipline of spec.md §4.11 step 4: every internal boundary
// is pushed forward past a run of query tokens so that no chunk splits
// a link from the queries immediately answered by it.
func splitChunks(buf []token.Token, n int) [][]token.Token {
	if n < 1 {
		n = 1
	}
	bounds := make([]int, n+1)
	bounds[0] = 0
	bounds[n] = len(buf)
	step := len(buf) / n
	for i := 1; i < n; i++ {
		b := i * step
		for b < len(buf) && buf[b].Query {
			b++
		}
		if b < bounds[i-1] {
			b = bounds[i-1]
		}
		bounds[i] = b
	}
	chunks := make([][]token.Token, n)
	for i := 0; i < n; i++ {
		chunks[i] = buf[bounds[i]:bounds[i+1]]
	}
	return chunks
}

// processChunk implements spec.md §4.11 step 5 (plus the step 6 special
// case) over one contiguous chunk of the popped buffer. A leading run of
// queries with no preceding link in this chunk is re-pushed unchanged
// (the unanswered case, since the link they reference is still pending
// elsewhere); otherwise each link completes an edge (its value paired
// with the deterministic new-vertex id derived from its own index) and
// every immediately following query referring to it is answered by
// pushing a new link back into the PPQ.
func (d *ParallelDriver) processChunk(chunk []token.Token, workerID int, isLastChunk, drained bool, m uint64) (completed, unanswered uint64, err error) {
	writer := d.cfg.Pool.At(workerID % d.cfg.Pool.Len())
	i := 0
	for i < len(chunk) {
		if chunk[i].Query {
			j := i
			for j < len(chunk) && chunk[j].Query {
				d.ppq.Push(chunk[j])
				j++
			}
			unanswered += uint64(j - i)
			i = j
			continue
		}

		t := chunk[i]
		j := i + 1
		for j < len(chunk) && chunk[j].Query && chunk[j].Index == t.Index {
			q := chunk[j]
			d.ppq.Push(token.New(false, q.Value, t.Value))
			j++
		}

		// A group's matching-query scan above only stops early (before
		// exhausting the chunk) once it hits a token that can't belong to
		// this link — proof no more of its queries exist. Reaching the
		// literal end of the whole popped buffer instead proves nothing:
		// bulk_pop cuts by count, not by group, so further queries for
		// this same link may simply be sitting later in the PPQ. Such a
		// group must be deferred, re-pushing the link unchanged, unless
		// the PPQ is now empty and nothing will ever answer it.
		ambiguous := isLastChunk && j == len(chunk)
		if ambiguous && !drained {
			d.ppq.Push(t)
		} else {
			deterministicEnd := d.firstVertex + t.Index/m
			if werr := writer.WriteEdgePair(t.Value, deterministicEnd); werr != nil {
				return completed, unanswered, werr
			}
			completed++
		}
		i = j
	}
	return completed, unanswered, nil
}

// Completed returns the number of edges emitted so far.
func (d *ParallelDriver) Completed() uint64 { return d.completed }

// Unanswered returns the number of queries re-pushed so far.
func (d *ParallelDriver) Unanswered() uint64 { return d.unanswered }
