package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corpusgo/spell"
)

func newSegmentCmd(baseLogger *zap.Logger) *cobra.Command {
	var (
		snapshot        string
		maxEditDistance uint32
		maxWordLength   uint32
	)

	cmd := &cobra.Command{
		Use:   "segment [text...]",
		Short: "Split run-together text into dictionary words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, _ := runLogger(baseLogger)

			s, err := loadEngine(cmd, snapshot, logger)
			if err != nil {
				return err
			}

			opts := []spell.SegmentOption{spell.WithSegmentMaxEditDistance(maxEditDistance)}
			if maxWordLength > 0 {
				opts = append(opts, spell.WithSegmentMaxWordLength(maxWordLength))
			}

			composition, err := s.Segment(strings.Join(args, " "), opts...)
			if err != nil {
				return err
			}

			fmt.Printf("segmented: %s\n", composition.SegmentedString)
			fmt.Printf("corrected: %s\n", composition.CorrectedString)
			fmt.Printf("distance:  %d\n", composition.DistanceSum)
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshot, "snapshot", "", "load a previously built dictionary snapshot instead of rebuilding from the config")
	cmd.Flags().Uint32Var(&maxEditDistance, "max-edit-distance", 2, "maximum edit distance to search per part")
	cmd.Flags().Uint32Var(&maxWordLength, "max-word-length", 0, "maximum candidate part width (default: the dictionary's prefix length)")
	return cmd
}
