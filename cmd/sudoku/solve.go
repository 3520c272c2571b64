package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/michaelYZh/Sudoku-Game/internal/board"
	"github.com/michaelYZh/Sudoku-Game/internal/sat"
	"github.com/michaelYZh/Sudoku-Game/internal/solver"
)

var (
	engine       string
	solveTimeout time.Duration
)

func newSolveCmd() *cobra.Command {
	solveCmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a Sudoku puzzle",
		Long: `Solve a puzzle given as an 81-character string ('.' or '0' for empty
cells), either as an argument or on stdin.

Examples:
  sudoku solve 53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79
  cat puzzle.txt | sudoku solve
  sudoku solve --engine sat < puzzle.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&engine, "engine", "e", "backtrack", "Solving engine: backtrack or sat")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 10*time.Second, "Solve timeout (backtrack engine only)")

	return solveCmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	input, err := readPuzzle(args)
	if err != nil {
		return err
	}

	b, err := board.NewFromString(input)
	if err != nil {
		return err
	}

	var solved *board.Board
	switch engine {
	case "backtrack":
		opts := solver.DefaultOptions()
		opts.Timeout = solveTimeout
		solved, err = solver.New(b, opts).Solve()
	case "sat":
		solved, err = sat.Solve(b)
	default:
		return fmt.Errorf("unknown engine %q (want backtrack or sat)", engine)
	}

	if err != nil {
		if errors.Is(err, solver.ErrNoSolution) {
			return fmt.Errorf("no solution exists for this puzzle")
		}
		return err
	}

	fmt.Println(solved.Format())
	return nil
}

// readPuzzle takes the puzzle string from the argument list or stdin.
func readPuzzle(args []string) (string, error) {
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading puzzle from stdin: %w", err)
		}
		return "", fmt.Errorf("no puzzle provided: pass an 81-character string or pipe one on stdin")
	}
	return strings.TrimSpace(scanner.Text()), nil
}
