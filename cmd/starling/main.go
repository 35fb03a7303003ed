package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/starling-lang/starling/internal/analyzer/cache"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "starling",
		Short: "Static attribute and control-flow analysis for a Python-like AST",
		Long: `Starling models class attribute resolution, stub merging, and
statement desugaring the way a Pyre-style type checker does, without
tying either to a concrete parser front end.`,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newDumpCmd(cache.NewAttributeCache(), uuid.New()))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
