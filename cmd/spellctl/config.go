package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/corpusgo/spell"
)

// loaderFileConfig names a dictionary or bigram file on disk and how
// to parse its lines.
type loaderFileConfig struct {
	Path       string `yaml:"path"`
	TermIndex  int    `yaml:"term_index"`
	CountIndex int    `yaml:"count_index"`
	Separator  string `yaml:"separator"`
}

func (c loaderFileConfig) toLoaderConfig() spell.LoaderConfig {
	cfg := spell.DefaultLoaderConfig()
	cfg.TermIndex = c.TermIndex
	cfg.CountIndex = c.CountIndex
	cfg.Separator = c.Separator
	return cfg
}

// cliConfig is spellctl's on-disk configuration: how to build the
// dictionary and which files to load into it.
type cliConfig struct {
	MaxDictionaryEditDistance uint32           `yaml:"max_dictionary_edit_distance"`
	PrefixLength              uint32           `yaml:"prefix_length"`
	CountThreshold            uint64           `yaml:"count_threshold"`
	DistanceAlgorithm         string           `yaml:"distance_algorithm"`
	Dictionary                loaderFileConfig `yaml:"dictionary"`
	Bigrams                   loaderFileConfig `yaml:"bigrams"`
	Snapshot                  string           `yaml:"snapshot"`
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		MaxDictionaryEditDistance: 2,
		PrefixLength:              7,
		CountThreshold:            1,
		DistanceAlgorithm:         "damerau-osa",
		Dictionary:                loaderFileConfig{TermIndex: 0, CountIndex: 1},
		Bigrams:                   loaderFileConfig{TermIndex: 0, CountIndex: 2},
	}
}

func loadCLIConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cliConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cliConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func parseDistanceAlgorithm(name string) (spell.DistanceAlgorithm, error) {
	switch name {
	case "", "damerau-osa":
		return spell.DamerauOSA, nil
	case "damerau-osa-fast":
		return spell.DamerauOSAFast, nil
	case "levenshtein":
		return spell.Levenshtein, nil
	case "levenshtein-fast":
		return spell.LevenshteinFast, nil
	default:
		return 0, fmt.Errorf("unknown distance_algorithm %q", name)
	}
}
