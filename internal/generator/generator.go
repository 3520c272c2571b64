package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/michaelYZh/Sudoku-Game/internal/board"
	"github.com/michaelYZh/Sudoku-Game/internal/solver"
)

const (
	MinValidClueCount = 17
	MaxValidClueCount = 80
	DefaultClueCount  = 32
)

var (
	ErrGenerationFailed = errors.New("failed to generate valid puzzle")
	ErrInvalidClueCount = errors.New("clue count must be between 17 and 80")
	ErrDiggingFailed    = errors.New("failed to remove proper number of clues")
)

// Generator creates Sudoku puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
// The random source is derived from Options.Seed, so equal seeds produce
// identical puzzles.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(DefaultClueCount)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new Sudoku puzzle.
// Returns the puzzle (clue grid) and its full solution, or an error if
// generation fails within the configured timeout.
func (g *Generator) Generate() (puzzle *board.Board, solution *board.Board, err error) {
	if g.options.ClueCount < MinValidClueCount || g.options.ClueCount > MaxValidClueCount {
		return nil, nil, ErrInvalidClueCount
	}

	start := time.Now()
	timeout := g.options.Timeout

	for {
		if timeout > 0 && time.Since(start) >= timeout {
			return nil, nil, ErrGenerationFailed
		}

		// Generate a complete valid board
		solution, err = g.generateSolution()
		if err != nil {
			// A correct solver always completes an empty board; treat
			// anything else as the fatal internal failure it is.
			return nil, nil, errors.Join(ErrGenerationFailed, err)
		}

		// Remove clues to create the puzzle
		puzzle, err = g.removeCells(solution)
		if err != nil {
			continue
		}

		return puzzle, solution, nil
	}
}

// generateSolution creates a complete valid Sudoku board.
func (g *Generator) generateSolution() (*board.Board, error) {
	b := board.New()

	// Randomized value ordering at each branch point yields a different
	// full board per call while MRV keeps the search fast.
	s := solver.New(b, &solver.Options{
		Randomize: true,
		Rand:      g.rng,
		Timeout:   g.options.Timeout,
	})

	return s.Solve()
}

// removeCells removes clues from a complete board to create a puzzle.
// Each removal is kept only if the puzzle still has exactly one solution;
// otherwise the clue is restored and the next position is tried.
func (g *Generator) removeCells(solution *board.Board) (*board.Board, error) {
	puzzle := solution.Clone()

	// Calculate how many cells to remove
	targetClues := g.options.ClueCount
	cellsToRemove := board.CellCount - targetClues

	// Create shuffled list of all positions
	positions := g.rng.Perm(board.CellCount)

	// Remove cells until we reach target clues
	cellsRemoved := 0
	for _, pos := range positions {
		if cellsRemoved >= cellsToRemove {
			break
		}

		// Try removing this cell
		val := puzzle.Get(pos)
		if val == board.EmptyCell {
			continue
		}

		puzzle.Clear(pos)
		cellsRemoved++

		// Verify the puzzle still has a unique solution
		if g.options.EnsureUnique {
			if !g.hasUniqueSolution(puzzle) {
				// Restore the clue
				puzzle.SetForce(pos, val)
				cellsRemoved--
			}
		}
	}

	if cellsRemoved == cellsToRemove {
		return puzzle, nil
	}
	return puzzle, ErrDiggingFailed
}

// hasUniqueSolution checks if the puzzle has exactly one solution.
func (g *Generator) hasUniqueSolution(puzzle *board.Board) bool {
	s := solver.New(puzzle, &solver.Options{
		Randomize: false,
		Timeout:   g.options.Timeout,
	})

	count, err := s.CountSolutions(2)
	return err == nil && count == 1
}

// GenerateWithClueCount is a convenience function to generate a puzzle with a specific clue count.
func GenerateWithClueCount(clueCount int) (*board.Board, *board.Board, error) {
	gen := New(DefaultOptions(clueCount))
	return gen.Generate()
}

// GenerateWithDifficulty is a convenience function to generate a puzzle at a
// difficulty level.
func GenerateWithDifficulty(d Difficulty) (*board.Board, *board.Board, error) {
	gen := New(OptionsForDifficulty(d))
	return gen.Generate()
}
