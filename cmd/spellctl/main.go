// Command spellctl builds, queries and persists a spell dictionary
// from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "spellctl: starting logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	rootCmd := &cobra.Command{
		Use:   "spellctl",
		Short: "Build and query a SymSpell dictionary",
		Long:  `spellctl builds a delete-index dictionary from term and bigram files, runs single-word, compound and segmentation lookups against it, and saves/loads the result as a portable snapshot.`,
	}

	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file (see spellctl.example.yaml)")

	rootCmd.AddCommand(
		newBuildCmd(logger),
		newLookupCmd(logger),
		newCompoundCmd(logger),
		newSegmentCmd(logger),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
