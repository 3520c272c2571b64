package solver

import (
	"context"
	"errors"
	"math/bits"
	"math/rand"
	"time"

	"github.com/michaelYZh/Sudoku-Game/internal/board"
)

var (
	ErrNoSolution    = errors.New("puzzle has no solution")
	ErrInvalidPuzzle = errors.New("puzzle violates Sudoku constraints")
	ErrTimeout       = errors.New("solver timeout exceeded")
)

// Stats records search effort for a single solver run.
type Stats struct {
	// Nodes counts search-tree nodes expanded during backtracking.
	Nodes int
	// Backtracks counts tentative placements that had to be undone.
	Backtracks int
}

// Solver implements algorithms for solving Sudoku puzzles.
type Solver struct {
	Board   *board.Board
	options *Options
	rng     *rand.Rand
	stats   Stats
}

// New creates a solver for the given board. The board is cloned; the
// caller's copy is never mutated.
func New(b *board.Board, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}

	s := &Solver{
		Board:   b.Clone(),
		options: options,
	}

	if options.Randomize {
		s.rng = options.Rand
		if s.rng == nil {
			s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}

	return s
}

// Stats returns effort counters for the most recent run.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Solve attempts to solve the puzzle.
// Returns the solved board, or ErrInvalidPuzzle if the input already
// breaks row/column/box legality, or ErrNoSolution if no completion exists.
func (s *Solver) Solve() (*board.Board, error) {
	if !s.Board.IsValid() {
		return nil, ErrInvalidPuzzle
	}

	// Seeding 3 diagonal boxes is sound on an empty board: they share no
	// row, column, or box constraints with each other.
	if s.Board.EmptyCount() == board.CellCount {
		s.fillThreeBoxes()
	}

	// Constraint propagation is faster, try this first
	if err := s.PropagateConstraints(); err != nil {
		return nil, err
	}
	if s.Board.EmptyCount() == 0 {
		return s.Board, nil
	}

	// Start backtracking with MRV heuristic
	// MRV = Minimum Remaining Values, guess on the most constrained cells first
	// to reduce total search space
	ctx, cancel := s.makeContext()
	defer cancel()

	if !s.backtrack(ctx) {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, ErrNoSolution
	}
	return s.Board, nil
}

// PropagateConstraints applies constraint propagation techniques until no
// further cells can be deduced.
func (s *Solver) PropagateConstraints() error {
	changed := true
	iterations := 0
	maxIterations := board.CellCount * board.CellCount

	for changed && iterations < maxIterations {
		changed = false
		iterations++

		if s.applyNakedSingles() {
			changed = true
		}
		if s.applyHiddenSingles() {
			changed = true
		}

		if s.Board.HasDeadCell() {
			return ErrNoSolution
		}
	}

	return nil
}

// applyNakedSingles fills cells with only one candidate.
func (s *Solver) applyNakedSingles() bool {
	changed := false

	for pos := 0; pos < board.CellCount; pos++ {
		if s.Board.Get(pos) == board.EmptyCell {
			mask := s.Board.GetCandidatesMask(pos)

			if mask == 0 {
				break // Will be caught by the dead-cell check
			}

			// Check if only one bit is set
			if bits.OnesCount(mask) == 1 {
				val := bits.TrailingZeros(mask) + 1
				s.Board.SetForce(pos, val)
				changed = true
			}
		}
	}

	return changed
}

// applyHiddenSingles finds values that can only go in one place within a unit.
func (s *Solver) applyHiddenSingles() bool {
	changed := false

	for row := 0; row < 9; row++ {
		positions := rowPositions(row)
		changed = s.findHiddenSingles(positions[:]) || changed
	}
	for col := 0; col < 9; col++ {
		positions := colPositions(col)
		changed = s.findHiddenSingles(positions[:]) || changed
	}
	for box := 0; box < 9; box++ {
		positions := s.Board.BoxCells(box)
		changed = s.findHiddenSingles(positions[:]) || changed
	}

	return changed
}

// findHiddenSingles places values that have exactly one possible position
// among the given unit's cells.
func (s *Solver) findHiddenSingles(positions []int) bool {
	changed := false

	// Track where each value can go
	valuePossibilities := make([][]int, 10)

	for _, pos := range positions {
		if s.Board.Get(pos) == board.EmptyCell {
			for _, val := range s.Board.GetCandidates(pos) {
				valuePossibilities[val] = append(valuePossibilities[val], pos)
			}
		}
	}

	// Find values with only one possible position
	for val := 1; val <= 9; val++ {
		if len(valuePossibilities[val]) == 1 {
			pos := valuePossibilities[val][0]
			// A previous placement in this pass may have claimed the cell.
			if s.Board.Get(pos) == board.EmptyCell && s.Board.IsLegal(pos, val) {
				s.Board.SetForce(pos, val)
				changed = true
			}
		}
	}

	return changed
}

// backtrack implements recursive backtracking with MRV heuristic.
// Propagation placements are rolled back on failure by restoring the
// pre-propagation board snapshot.
func (s *Solver) backtrack(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}

	s.stats.Nodes++

	// Apply constraint propagation at each level
	saved := *s.Board
	if err := s.PropagateConstraints(); err != nil {
		*s.Board = saved
		return false
	}

	// Check if we've already solved it
	if s.Board.EmptyCount() == 0 {
		return true
	}

	// Find the cell with the minimum remaining values
	pos, candidates := s.FindMRVCell()
	if len(candidates) == 0 {
		*s.Board = saved
		return false
	}

	// Randomize candidates if needed
	if s.options.Randomize && s.rng != nil {
		s.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}

	for _, val := range candidates {
		s.Board.SetForce(pos, val)
		if s.backtrack(ctx) {
			return true
		}
		s.Board.Clear(pos)
		s.stats.Backtracks++
	}

	*s.Board = saved
	return false
}

// FindMRVCell finds the empty cell with fewest candidates.
func (s *Solver) FindMRVCell() (int, []int) {
	return findMRVCell(s.Board)
}

// findMRVCell scans for the most constrained empty cell. Ties on candidate
// count are broken by degree (more empty peers first), then by lowest
// position, so unrandomized runs are reproducible.
func findMRVCell(b *board.Board) (int, []int) {
	mrvPos := -1
	mrvCount := 10
	mrvDegree := -1
	var mrvCandidates []int

	for pos := 0; pos < board.CellCount; pos++ {
		if b.Get(pos) != board.EmptyCell {
			continue
		}

		candidates := b.GetCandidates(pos)
		count := len(candidates)
		if count > mrvCount {
			continue
		}

		if count < mrvCount {
			mrvCount = count
			mrvPos = pos
			mrvDegree = degree(b, pos)
			mrvCandidates = candidates

			if count <= 1 {
				break
			}
			continue
		}

		// Same candidate count: prefer the cell touching more empty peers,
		// since filling it constrains the most future choices.
		d := degree(b, pos)
		if d > mrvDegree {
			mrvPos = pos
			mrvDegree = d
			mrvCandidates = candidates
		}
	}

	return mrvPos, mrvCandidates
}

// degree counts empty cells sharing a row, column, or box with pos.
func degree(b *board.Board, pos int) int {
	row, col := pos/9, pos%9
	count := 0

	for i := 0; i < 9; i++ {
		if p := board.MakePos(row, i); p != pos && b.Get(p) == board.EmptyCell {
			count++
		}
		if p := board.MakePos(i, col); p != pos && b.Get(p) == board.EmptyCell {
			count++
		}
	}

	boxRow, boxCol := row/3*3, col/3*3
	for r := boxRow; r < boxRow+3; r++ {
		for c := boxCol; c < boxCol+3; c++ {
			// Box cells on the same row or column were already counted.
			if r == row || c == col {
				continue
			}
			if b.Get(board.MakePos(r, c)) == board.EmptyCell {
				count++
			}
		}
	}

	return count
}

// fillThreeBoxes fills three diagonal 3x3 boxes (27 cells total) that are
// mutually independent.
func (s *Solver) fillThreeBoxes() {
	boxColumns := []int{0, 3, 6}
	if s.options.Randomize && s.rng != nil {
		s.rng.Shuffle(len(boxColumns), func(i, j int) {
			boxColumns[i], boxColumns[j] = boxColumns[j], boxColumns[i]
		})
	}
	nums := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	for i, boxRow := range []int{0, 3, 6} {
		boxCol := boxColumns[i]
		if s.options.Randomize && s.rng != nil {
			s.rng.Shuffle(len(nums), func(i, j int) {
				nums[i], nums[j] = nums[j], nums[i]
			})
		}
		for j, val := range nums {
			dr, dc := int(j/3), j%3
			pos := (boxRow+dr)*9 + boxCol + dc
			s.Board.SetForce(pos, val)
		}
	}
}

// rowPositions returns the 9 positions of the given row.
func rowPositions(row int) [9]int {
	var positions [9]int
	for col := 0; col < 9; col++ {
		positions[col] = 9*row + col
	}
	return positions
}

// colPositions returns the 9 positions of the given column.
func colPositions(col int) [9]int {
	var positions [9]int
	for row := 0; row < 9; row++ {
		positions[row] = 9*row + col
	}
	return positions
}

// makeContext builds the context bounding a search.
func (s *Solver) makeContext() (context.Context, context.CancelFunc) {
	if s.options.Timeout > 0 {
		return context.WithTimeout(context.Background(), s.options.Timeout)
	}
	return context.WithCancel(context.Background())
}
