package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var cpuProfile bool

// stopper matches the handle returned by profile.Start.
type stopper interface {
	Stop()
}

func newRootCmd() *cobra.Command {
	var prof stopper

	rootCmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Generate and solve 9x9 Sudoku puzzles",
		Long: `Generate Sudoku puzzles of controlled difficulty and solve arbitrary
boards with a backtracking or SAT engine.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cpuProfile {
				prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if prof != nil {
				prof.Stop()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&cpuProfile, "profile", false, "Write a CPU profile to the current directory")

	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newSolveCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
