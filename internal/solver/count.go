package solver

import "github.com/michaelYZh/Sudoku-Game/internal/board"

// CountSolutions counts distinct completions of the board, stopping as soon
// as limit solutions have been found. Uniqueness checks only care whether
// the answer is 0, 1, or "2 or more", so they pass limit=2 and never pay
// for full enumeration.
// Returns ErrInvalidPuzzle if the board already breaks legality, and
// ErrTimeout if the search deadline expired before the count settled.
func (s *Solver) CountSolutions(limit int) (int, error) {
	if limit < 1 {
		limit = 2
	}
	if !s.Board.IsValid() {
		return 0, ErrInvalidPuzzle
	}

	ctx, cancel := s.makeContext()
	defer cancel()

	count := 0

	// Each branch works on its own clone so sibling branches never see
	// propagation placements from one another.
	var search func(b *board.Board)
	search = func(b *board.Board) {
		if ctx.Err() != nil || count >= limit {
			return
		}

		s.stats.Nodes++

		sub := &Solver{Board: b, options: s.options}
		if err := sub.PropagateConstraints(); err != nil {
			return
		}

		if b.EmptyCount() == 0 {
			count++
			return
		}

		pos, candidates := findMRVCell(b)
		if len(candidates) == 0 {
			return
		}

		for _, val := range candidates {
			if count >= limit {
				return
			}
			next := b.Clone()
			next.SetForce(pos, val)
			search(next)
		}
	}

	search(s.Board.Clone())

	if ctx.Err() != nil && count < limit {
		return count, ErrTimeout
	}
	return count, nil
}
