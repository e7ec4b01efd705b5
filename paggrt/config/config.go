// Package config loads the optional pagg.toml pipeline-defaults file per
// SPEC_FULL.md §4.15, mirroring the teacher's server.LoadConfig:
// toml.DecodeFile into a struct, with CLI flags always taking precedence
// over whatever a config file sets.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tfp-graph/pagg/paggrt"
)

// Defaults holds the non-authoritative pipeline defaults a pagg.toml file
// may supply. The CLIs apply Engine, Workers, MinBatch and PPQExtractCap
// when the matching flag is left at its zero value; Seed, SpillThreshold
// and LogMaxSizeMB are parsed but no CLI reads them.
type Defaults struct {
	Engine         string `toml:"engine"`
	Workers        int    `toml:"workers"`
	MinBatch       int    `toml:"min_batch"`
	PPQExtractCap  int    `toml:"ppq_extract_cap"`
	SpillThreshold int    `toml:"spill_threshold"`
	Seed           int64  `toml:"seed"`
	LogMaxSizeMB   int    `toml:"log_max_size_mb"`
}

// Load reads path if non-empty, else searches ./pagg.toml then
// $HOME/.pagg.toml. An explicit path that cannot be read is an error; a
// search that finds no file is not — it just returns the zero Defaults,
// exactly as the original output-pool config search treats "nothing
// found" as "use the built-in default."
func Load(path string) (Defaults, error) {
	var d Defaults
	if path != "" {
		_, err := toml.DecodeFile(path, &d)
		return d, err
	}
	for _, candidate := range searchPaths() {
		if !readable(candidate) {
			continue
		}
		if _, err := toml.DecodeFile(candidate, &d); err != nil {
			return Defaults{}, err
		}
		paggrt.Infof("config: loaded pipeline defaults from %s", candidate)
		return d, nil
	}
	return d, nil
}

func searchPaths() []string {
	var out []string
	out = append(out, "pagg.toml")
	if home, err := os.UserHomeDir(); err == nil {
		out = append(out, filepath.Join(home, ".pagg.toml"))
	}
	return out
}

func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
