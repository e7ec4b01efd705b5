package edgewriter

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/tfp-graph/pagg/paggrt"
)

// FindConfigPaths implements the search order of spec.md §6: the
// PAGGCFG environment variable, then ./.pagg_out[.HOSTNAME], then
// $HOME/.pagg_out[.HOSTNAME]. If nothing is found, the default is a
// single "./" prefix.
func FindConfigPaths() []string {
	if path := os.Getenv("PAGGCFG"); path != "" && fileReadable(path) {
		if paths, err := parseConfigFile(path); err == nil {
			return paths
		}
	}
	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		hostname, _ = os.Hostname()
	}
	for _, dir := range []string{".", os.Getenv("HOME")} {
		if dir == "" {
			continue
		}
		base := filepath.Join(dir, ".pagg_out")
		if hostname != "" && fileReadable(base+"."+hostname) {
			if paths, err := parseConfigFile(base + "." + hostname); err == nil {
				return paths
			}
		}
		if fileReadable(base) {
			if paths, err := parseConfigFile(base); err == nil {
				return paths
			}
		}
	}
	paggrt.Warningf("no output-pool configuration file found; writing to ./")
	return []string{"./"}
}

func fileReadable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// parseConfigFile reads one prefix per line; "#" begins an end-of-line
// comment, leading/trailing whitespace is stripped, and empty lines are
// skipped.
func parseConfigFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var paths []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return []string{"./"}, nil
	}
	return paths, nil
}
