package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corpusgo/spell"
)

func newLookupCmd(baseLogger *zap.Logger) *cobra.Command {
	var (
		snapshot        string
		maxEditDistance uint32
		verbosity       string
		transferCasing  bool
	)

	cmd := &cobra.Command{
		Use:   "lookup [term]",
		Short: "Correct a single term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, _ := runLogger(baseLogger)

			s, err := loadEngine(cmd, snapshot, logger)
			if err != nil {
				return err
			}

			v, err := parseVerbosity(verbosity)
			if err != nil {
				return err
			}

			opts := []spell.LookupOption{
				spell.WithVerbosity(v),
				spell.WithMaxEditDistance(maxEditDistance),
				spell.WithTransferCasing(transferCasing),
			}
			suggestions, err := s.Lookup(args[0], opts...)
			if err != nil {
				return err
			}

			printSuggestions(suggestions)
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshot, "snapshot", "", "load a previously built dictionary snapshot instead of rebuilding from the config")
	cmd.Flags().Uint32Var(&maxEditDistance, "max-edit-distance", 2, "maximum edit distance to search")
	cmd.Flags().StringVar(&verbosity, "verbosity", "top", "one of top, closest, all")
	cmd.Flags().BoolVar(&transferCasing, "transfer-casing", false, "re-apply the input's casing pattern to the suggestion")
	return cmd
}

func parseVerbosity(name string) (spell.Verbosity, error) {
	switch name {
	case "top":
		return spell.VerbosityTop, nil
	case "closest":
		return spell.VerbosityClosest, nil
	case "all":
		return spell.VerbosityAll, nil
	default:
		return 0, fmt.Errorf("unknown verbosity %q", name)
	}
}

func loadEngine(cmd *cobra.Command, snapshot string, logger *zap.Logger) (*spell.Spell, error) {
	if snapshot != "" {
		return spell.Load(snapshot, spell.WithLogger(logger))
	}
	cfg, err := configFlag(cmd)
	if err != nil {
		return nil, err
	}
	return buildEngine(cfg, logger)
}

func printSuggestions(suggestions []spell.Suggestion) {
	if len(suggestions) == 0 {
		fmt.Println("(no suggestions)")
		return
	}
	for _, sug := range suggestions {
		fmt.Printf("%s\tdistance=%d\tcount=%d\n", sug.Term, sug.Distance, sug.Count)
	}
}
