package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corpusgo/spell"
)

// runLogger tags every log line from a single spellctl invocation with
// a run id, so related lines from the same command can be grepped out
// of a shared log stream.
func runLogger(base *zap.Logger) (*zap.Logger, string) {
	runID := uuid.NewString()
	return base.With(zap.String("run_id", runID)), runID
}

// buildEngine loads a cliConfig's configuration and optional
// dictionary/bigram files into a fresh engine. Malformed lines are
// logged and skipped rather than failing the whole build.
func buildEngine(cfg cliConfig, logger *zap.Logger) (*spell.Spell, error) {
	alg, err := parseDistanceAlgorithm(cfg.DistanceAlgorithm)
	if err != nil {
		return nil, err
	}

	s, err := spell.New(
		spell.MaxDictionaryEditDistance(cfg.MaxDictionaryEditDistance),
		spell.PrefixLength(cfg.PrefixLength),
		spell.CountThreshold(cfg.CountThreshold),
		spell.WithDistanceAlgorithm(alg),
		spell.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("constructing engine: %w", err)
	}

	if cfg.Dictionary.Path != "" {
		accepted, rejected, err := s.LoadDictionaryFile(cfg.Dictionary.Path, cfg.Dictionary.toLoaderConfig())
		if err != nil {
			return nil, fmt.Errorf("loading dictionary %s: %w", cfg.Dictionary.Path, err)
		}
		logger.Info("loaded dictionary", zap.String("path", cfg.Dictionary.Path), zap.Bool("accepted_any", accepted), zap.Int("rejected_lines", rejected))
	}

	if cfg.Bigrams.Path != "" {
		accepted, rejected, err := s.LoadBigramDictionaryFile(cfg.Bigrams.Path, cfg.Bigrams.toLoaderConfig())
		if err != nil {
			return nil, fmt.Errorf("loading bigrams %s: %w", cfg.Bigrams.Path, err)
		}
		logger.Info("loaded bigrams", zap.String("path", cfg.Bigrams.Path), zap.Bool("accepted_any", accepted), zap.Int("rejected_lines", rejected))
	}

	return s, nil
}

func configFlag(cmd *cobra.Command) (cliConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	return loadCLIConfig(path)
}
