// Package sudoku is the narrow interface a presentation layer consumes:
// puzzle generation at a chosen difficulty, solving arbitrary boards,
// validating a player's move against board legality, and checking entries
// against a puzzle's stored solution. Grids cross this boundary in the
// nested row-major form: 9 rows of 9 integers, 0 meaning empty.
package sudoku

import (
	"fmt"

	"github.com/michaelYZh/Sudoku-Game/internal/board"
	"github.com/michaelYZh/Sudoku-Game/internal/generator"
	"github.com/michaelYZh/Sudoku-Game/internal/solver"
)

// Grid is a 9x9 board in nested row-major form. Values are 0 for empty
// cells and 1-9 for placed digits.
type Grid [9][9]int

// Difficulty selects how hard a generated puzzle should be.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// String returns the difficulty's display name.
func (d Difficulty) String() string {
	return d.internal().String()
}

func (d Difficulty) internal() generator.Difficulty {
	switch d {
	case Easy:
		return generator.Easy
	case Medium:
		return generator.Medium
	case Hard:
		return generator.Hard
	case Expert:
		return generator.Expert
	default:
		return generator.Medium
	}
}

// Sentinel errors surfaced to callers. Unsolvable is a routine outcome and
// must be branched on, not treated as exceptional.
var (
	ErrUnsolvable       = solver.ErrNoSolution
	ErrInvalidBoard     = solver.ErrInvalidPuzzle
	ErrGenerationFailed = generator.ErrGenerationFailed
)

// Puzzle pairs a clue grid with its unique solution.
type Puzzle struct {
	Clues      Grid
	Solution   Grid
	Difficulty Difficulty
	ClueCount  int
}

// Generate produces a puzzle at the requested difficulty. The emitted clue
// grid always has exactly one completion, equal to Solution.
func Generate(d Difficulty) (*Puzzle, error) {
	return GenerateSeeded(d, 0)
}

// GenerateSeeded is Generate with an explicit random seed; equal seeds at
// the same difficulty yield identical puzzles. Seed 0 picks a random seed.
func GenerateSeeded(d Difficulty, seed int64) (*Puzzle, error) {
	opts := generator.OptionsForDifficulty(d.internal())
	opts.Seed = seed

	clues, solution, err := generator.New(opts).Generate()
	if err != nil {
		return nil, fmt.Errorf("generate %s puzzle: %w", d, err)
	}

	return &Puzzle{
		Clues:      Grid(clues.Grid()),
		Solution:   Grid(solution.Grid()),
		Difficulty: d,
		ClueCount:  clues.ClueCount(),
	}, nil
}

// Solve completes the given grid, which may mix fixed clues with
// player-filled cells. Returns ErrInvalidBoard if the grid already breaks
// row/column/box legality and ErrUnsolvable if no completion exists.
func Solve(g Grid) (Grid, error) {
	b, err := board.NewFromGrid(board.Grid(g))
	if err != nil {
		return Grid{}, fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}

	solved, err := solver.New(b, nil).Solve()
	if err != nil {
		return Grid{}, err
	}
	return Grid(solved.Grid()), nil
}

// CountSolutions reports how many completions the grid has, counting no
// further than limit (values below 2 are treated as 2). Only 0, 1, and
// "limit or more" are distinguishable outcomes.
func CountSolutions(g Grid, limit int) (int, error) {
	b, err := board.NewFromGrid(board.Grid(g))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}
	return solver.New(b, nil).CountSolutions(limit)
}

// IsLegalMove reports whether placing value at (row, col) keeps the grid
// legal: no other cell in the same row, column, or box holds value. It
// validates against board state, not against any stored solution.
// Coordinates outside [0,8] or values outside [0,9] are an error.
func IsLegalMove(g Grid, row, col, value int) (bool, error) {
	pos := board.MakePos(row, col)
	if pos == board.InvalidCell {
		return false, fmt.Errorf("%w: row %d col %d", board.ErrInvalidPosition, row, col)
	}
	if value < 0 || value > 9 {
		return false, fmt.Errorf("%w: got %d", board.ErrInvalidValue, value)
	}

	b, err := board.NewFromGrid(board.Grid(g))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}
	return b.IsLegal(pos, value), nil
}

// CheckAgainstSolution reports whether value matches the stored solution at
// (row, col). This is how mistake feedback is decided: faster than a
// legality scan and strict about the one true completion.
// Out-of-range coordinates never match.
func CheckAgainstSolution(solution Grid, row, col, value int) bool {
	if board.MakePos(row, col) == board.InvalidCell {
		return false
	}
	return solution[row][col] == value
}
