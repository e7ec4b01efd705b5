// Command pagg-ba-parallel generates an undirected Barabási–Albert graph
// with the parallel bulk-extract/batch-process/bulk-reinsert driver of
// spec.md §4.11, fanning writes out across one edge-writer file per worker.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"

	_ "github.com/tfp-graph/pagg/storage/badgerspill"

	"github.com/tfp-graph/pagg/edgewriter"
	"github.com/tfp-graph/pagg/models/ba"
	"github.com/tfp-graph/pagg/paggrt"
	"github.com/tfp-graph/pagg/paggrt/config"
	"github.com/tfp-graph/pagg/storage"
)

var (
	showHelp = flag.Bool("help", false, "")

	edgeDeps      = flag.Bool("d", false, "")
	seed          = flag.Int64("x", 0, "")
	workers       = flag.Int("p", 0, "")
	minBatch      = flag.Int("min-batch", 0, "")
	ppqExtractCap = flag.Int("ppq-cap", 0, "")
	widthBits     = flag.Int("w", 64, "")
	engineName    = flag.String("engine", "", "")
	logfile       = flag.String("logfile", "", "")
	logmaxsize    = flag.Int("logmaxsize", 100, "")
	configPath    = flag.String("config", "", "")
	runVerbose    = flag.Bool("verbose", false, "")
)

const helpMessage = `
pagg-ba-parallel generates an undirected Barabasi-Albert graph with the
parallel bulk-extract/batch-process/bulk-reinsert driver over an external
parallel priority queue.

Usage: pagg-ba-parallel [options] <filename-prefix> <no-vertices> <edges-per-vert>

      -d          (flag)    Weight edge dependencies within a vertex.
      -p          =number   Worker threads (default: number of CPUs).
      -x          =number   RNG seed (0 -> a fixed default seed).
      -min-batch  =number   Minimum batch size per bulk-pop round.
      -ppq-cap    =number   Maximum batch size per bulk-pop round.
      -w          =number   Vertex-ID width in bits: 32, 40, 48, or 64.
      -engine     =string   Storage engine: mem (default) or badger.
      -logfile    =string   Rotate logs to this file instead of stdout.
      -logmaxsize =number   Max log file size in MB before rotation.
      -config     =string   Path to the pagg.toml pipeline-defaults file.
      -verbose    (flag)    Run in verbose mode.
  -h, -help       (flag)    Show help message

One output file per worker is written under <filename-prefix>, following
the "graph<i>.bin" naming of the output-pool configuration (spec.md §6).
Exits 0 on success, -1 on invalid arguments.
`

var usage = func() {
	fmt.Print(helpMessage)
}

func main() {
	flag.BoolVar(showHelp, "h", false, "Show help message")
	flag.Usage = usage
	flag.Parse()

	if *showHelp || flag.NArg() != 3 {
		flag.Usage()
		os.Exit(0)
	}
	if *runVerbose {
		paggrt.Verbose = true
	}
	(&paggrt.LogConfig{Logfile: *logfile, MaxSize: *logmaxsize}).SetLogger()

	defaults, err := config.Load(*configPath)
	if err != nil {
		paggrt.Errorf("loading pipeline defaults: %v", err)
		os.Exit(-1)
	}

	enginePick := *engineName
	if enginePick == "" {
		enginePick = defaults.Engine
	}
	if enginePick == "" {
		enginePick = "mem"
	}

	workerCount := *workers
	if workerCount == 0 {
		workerCount = defaults.Workers
	}
	if workerCount == 0 {
		workerCount = runtime.NumCPU()
	}

	prefix := flag.Arg(0)
	numVertices, err1 := strconv.ParseUint(flag.Arg(1), 10, 64)
	edgesPerVert, err2 := strconv.ParseUint(flag.Arg(2), 10, 64)
	if err1 != nil || err2 != nil || numVertices == 0 || edgesPerVert == 0 {
		fmt.Println("no-vertices and edges-per-vert must both be positive integers")
		os.Exit(-1)
	}

	width, err := edgewriter.ParseWidth(*widthBits)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}

	engine, err := storage.LookupEngine(enginePick)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
	parallelEngine, ok := engine.(storage.ParallelEngine)
	if !ok {
		fmt.Printf("engine %q does not support the parallel driver\n", enginePick)
		os.Exit(-1)
	}

	seedValue := *seed
	if seedValue == 0 {
		seedValue = defaultSeed
	}

	// The RAGPath seed has 1000*edges-per-vert edges (the original
	// hardcodes this as a compile-time constant; there is no seed-size
	// flag for the BA models, unlike BBCR's -n).
	seedVertices := 1 + 1000*edgesPerVert

	expectedPerWorker := (seedVertices + numVertices*edgesPerVert) / uint64(workerCount)
	pool, err := edgewriter.NewPool(workerCount, width, expectedPerWorker, prefixArg(prefix))
	if err != nil {
		paggrt.Criticalf("building writer pool: %v", err)
		os.Exit(-1)
	}

	driver, err := ba.NewParallel(ba.ParallelConfig{
		SeedVertices:     seedVertices,
		NewVertices:      numVertices,
		EdgesPerVertex:   edgesPerVert,
		EdgeDependencies: *edgeDeps,
		Seed:             seedValue,
		Workers:          workerCount,
		MinBatch:         effective(*minBatch, defaults.MinBatch, 64),
		PPQExtractCap:    effective(*ppqExtractCap, defaults.PPQExtractCap, 1<<16),
		Engine:           parallelEngine,
		Pool:             pool,
	})
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}

	t := paggrt.NewTimeLog()
	completed, err := driver.Run()
	if err != nil {
		paggrt.Criticalf("parallel driver failed: %v", err)
		os.Exit(-1)
	}
	if err := pool.Close(); err != nil {
		paggrt.Criticalf("closing writer pool: %v", err)
		os.Exit(-1)
	}
	t.Infof("pagg-ba-parallel: %d edges completed, %d queries unanswered during the run", completed, driver.Unanswered())
	paggrt.Shutdown()
}

// prefixArg turns a bare CLI argument into the single-prefix slice NewPool
// expects, or nil (triggering the output-pool configuration search of
// spec.md §6) when the caller passed the empty string.
func prefixArg(prefix string) []string {
	if prefix == "" {
		return nil
	}
	return []string{prefix}
}

func effective(flagValue, configValue, builtin int) int {
	if flagValue != 0 {
		return flagValue
	}
	if configValue != 0 {
		return configValue
	}
	return builtin
}

const defaultSeed int64 = 0x5EED
