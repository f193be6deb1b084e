package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corpusgo/spell"
)

func newCompoundCmd(baseLogger *zap.Logger) *cobra.Command {
	var (
		snapshot        string
		maxEditDistance uint32
		transferCasing  bool
		ignoreNonWords  bool
	)

	cmd := &cobra.Command{
		Use:   "compound [phrase...]",
		Short: "Correct a whitespace-tokenized phrase, merging accidental splits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, _ := runLogger(baseLogger)

			s, err := loadEngine(cmd, snapshot, logger)
			if err != nil {
				return err
			}

			suggestions, err := s.LookupCompound(strings.Join(args, " "),
				spell.WithCompoundMaxEditDistance(maxEditDistance),
				spell.WithCompoundTransferCasing(transferCasing),
				spell.WithIgnoreNonWords(ignoreNonWords),
			)
			if err != nil {
				return err
			}

			printSuggestions(suggestions)
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshot, "snapshot", "", "load a previously built dictionary snapshot instead of rebuilding from the config")
	cmd.Flags().Uint32Var(&maxEditDistance, "max-edit-distance", 2, "maximum edit distance to search per token")
	cmd.Flags().BoolVar(&transferCasing, "transfer-casing", false, "re-apply the phrase's casing pattern to the result")
	cmd.Flags().BoolVar(&ignoreNonWords, "ignore-non-words", false, "pass integers and acronyms through uncorrected")
	return cmd
}
