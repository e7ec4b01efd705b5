// Command pagg-dist reads back one or more edge files and prints the
// degree distribution, per spec.md §4.13.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tfp-graph/pagg/disttool"
	"github.com/tfp-graph/pagg/edgewriter"
	"github.com/tfp-graph/pagg/paggrt"
)

var (
	showHelp   = flag.Bool("help", false, "")
	directed   = flag.Bool("d", false, "")
	outFile    = flag.String("o", "", "")
	widthBits  = flag.Int("w", 64, "")
	logfile    = flag.String("logfile", "", "")
	logmaxsize = flag.Int("logmaxsize", 100, "")
	runVerbose = flag.Bool("verbose", false, "")
)

const helpMessage = `
pagg-dist reads back one or more edge files (treated as concatenated) and
prints a "degree count" line per distinct degree.

Usage: pagg-dist [options] <edgefile> [edgefile ...]

      -d          (flag)    Directed mode: report out-degrees then in-degrees.
      -o          =string   Write output here instead of stdout.
      -w          =number   Vertex-ID width in bits: 32, 40, 48, or 64.
      -logfile    =string   Rotate logs to this file instead of stdout.
      -logmaxsize =number   Max log file size in MB before rotation.
      -verbose    (flag)    Run in verbose mode.
  -h, -help       (flag)    Show help message
`

var usage = func() {
	fmt.Print(helpMessage)
}

func main() {
	flag.BoolVar(showHelp, "h", false, "Show help message")
	flag.Usage = usage
	flag.Parse()

	if *showHelp || flag.NArg() < 1 {
		flag.Usage()
		os.Exit(0)
	}
	if *runVerbose {
		paggrt.Verbose = true
	}
	(&paggrt.LogConfig{Logfile: *logfile, MaxSize: *logmaxsize}).SetLogger()

	width, err := edgewriter.ParseWidth(*widthBits)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}

	out := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			paggrt.Criticalf("creating %s: %v", *outFile, err)
			os.Exit(-1)
		}
		defer f.Close()
		out = f
	}

	if err := disttool.Run(flag.Args(), width, *directed, out); err != nil {
		paggrt.Criticalf("pagg-dist: %v", err)
		os.Exit(-1)
	}
	paggrt.Shutdown()
}
