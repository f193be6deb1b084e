package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBuildCmd(baseLogger *zap.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a dictionary from the configured files and save a snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, _ := runLogger(baseLogger)

			cfg, err := configFlag(cmd)
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Snapshot = output
			}

			s, err := buildEngine(cfg, logger)
			if err != nil {
				return err
			}

			stats := s.Stats()
			logger.Info("dictionary built",
				zap.Int("term_count", stats.TermCount),
				zap.Int("delete_buckets", stats.DeleteBuckets),
				zap.Uint64("total_frequency", stats.TotalFrequency),
			)

			if cfg.Snapshot == "" {
				return nil
			}
			if err := s.Save(cfg.Snapshot); err != nil {
				return fmt.Errorf("saving snapshot: %w", err)
			}
			logger.Info("snapshot saved", zap.String("path", cfg.Snapshot))
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "path to save the built dictionary snapshot (overrides the config file's snapshot setting)")
	return cmd
}
