// Command pagg-bbcr generates a directed Bollobás–Borgs–Chayes–Riordan
// preferential-attachment graph via the token pipeline of spec.md §4.8.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	_ "github.com/tfp-graph/pagg/storage/badgerspill"

	"github.com/tfp-graph/pagg/edgefilter"
	"github.com/tfp-graph/pagg/edgesort"
	"github.com/tfp-graph/pagg/edgewriter"
	"github.com/tfp-graph/pagg/models/bbcr"
	"github.com/tfp-graph/pagg/paggrt"
	"github.com/tfp-graph/pagg/paggrt/config"
	"github.com/tfp-graph/pagg/storage"
)

var (
	showHelp = flag.Bool("help", false, "")

	seedVerts  = flag.Uint64("n", 2, "")
	alpha      = flag.Float64("a", 0.1, "")
	beta       = flag.Float64("b", 0.8, "")
	gamma      = flag.Float64("g", 0.1, "")
	degOffsetIn  = flag.Float64("y", 0, "")
	degOffsetOut = flag.Float64("z", 0, "")
	selfLoops  = flag.Bool("s", false, "")
	multiEdges = flag.Bool("m", false, "")
	seed       = flag.Int64("x", 0, "")
	widthBits  = flag.Int("w", 64, "")
	engineName = flag.String("engine", "", "")
	logfile    = flag.String("logfile", "", "")
	logmaxsize = flag.Int("logmaxsize", 100, "")
	configPath = flag.String("config", "", "")
	runVerbose = flag.Bool("verbose", false, "")
)

const helpMessage = `
pagg-bbcr generates a directed Bollobas-Borgs-Chayes-Riordan preferential-
attachment graph.

Usage: pagg-bbcr [options] <filename> <no-edges>

      -n          =number   Seed vertex count (must be >= 2).
      -a          =number   Alpha: probability of a new out-vertex.
      -b          =number   Beta: probability of linking two existing.
      -g          =number   Gamma: probability of a new in-vertex.
      -y          =number   Degree offset for in-endpoint sampling.
      -z          =number   Degree offset for out-endpoint sampling.
      -s          (flag)    Drop self-loops from the output.
      -m          (flag)    Collapse consecutive duplicate edges.
      -x          =number   RNG seed (0 -> a fixed default seed).
      -w          =number   Vertex-ID width in bits: 32, 40, 48, or 64.
      -engine     =string   Storage engine: mem (default) or badger.
      -logfile    =string   Rotate logs to this file instead of stdout.
      -logmaxsize =number   Max log file size in MB before rotation.
      -config     =string   Path to the pagg.toml pipeline-defaults file.
      -verbose    (flag)    Run in verbose mode.
  -h, -help       (flag)    Show help message

Alpha, beta, and gamma are auto-normalised to sum to 1. Exits 0 on
success, -1 on invalid arguments.
`

var usage = func() {
	fmt.Print(helpMessage)
}

func main() {
	flag.BoolVar(showHelp, "h", false, "Show help message")
	flag.Usage = usage
	flag.Parse()

	if *showHelp || flag.NArg() != 2 {
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

	filename := flag.Arg(0)
	numEdges, err1 := strconv.ParseUint(flag.Arg(1), 10, 64)
	if err1 != nil || numEdges == 0 {
		fmt.Println("no-edges must be a positive integer")
		os.Exit(-1)
	}
	if *seedVerts < 2 {
		fmt.Println("seed vertex count (-n) must be >= 2")
		os.Exit(-1)
	}
	if *alpha < 0 || *beta < 0 || *gamma < 0 || *alpha+*beta+*gamma == 0 {
		fmt.Println("alpha, beta, gamma must be non-negative with a non-zero sum")
		os.Exit(-1)
	}
	if *degOffsetIn < 0 || *degOffsetOut < 0 {
		fmt.Println("d-in (-y) and d-out (-z) must be non-negative")
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

	seedValue := *seed
	if seedValue == 0 {
		seedValue = defaultSeed
	}

	model := bbcr.New(bbcr.Config{
		SeedVertices:    *seedVerts,
		NumEdges:        numEdges,
		Alpha:           *alpha,
		Beta:            *beta,
		Gamma:           *gamma,
		DegreeOffsetIn:  *degOffsetIn,
		DegreeOffsetOut: *degOffsetOut,
		Seed:            seedValue,
		Engine:          engine,
	})

	expectedEdges := *seedVerts - 1 + numEdges
	w, err := edgewriter.New(filename, width, expectedEdges)
	if err != nil {
		paggrt.Criticalf("opening %s: %v", filename, err)
		os.Exit(-1)
	}

	t := paggrt.NewTimeLog()
	if *selfLoops || *multiEdges {
		sorter, edges := edgesort.Sort(model.Vertices())
		filtered := edgefilter.New(edges, edgefilter.Options{DropSelfLoops: *selfLoops, DropMultiEdges: *multiEdges})
		err = w.WriteEdges(filtered)
		sorter.Close()
	} else {
		err = model.WriteTo(w)
	}
	if err != nil {
		paggrt.Criticalf("writing %s: %v", filename, err)
		os.Exit(-1)
	}
	if err := w.Close(); err != nil {
		paggrt.Criticalf("closing %s: %v", filename, err)
		os.Exit(-1)
	}
	t.Infof("pagg-bbcr: wrote %d edges to %s", w.EdgesWritten(), filename)
	paggrt.Shutdown()
}

const defaultSeed int64 = 0x5EED
