package solver

import "github.com/michaelYZh/Sudoku-Game/internal/board"

// Rating values on the classic rank scale.
const (
	RankEasy   = 50
	RankMedium = 100
	RankHard   = 150
	RankExpert = 200
)

// Score measures how much search a deterministic solve of b needs.
// A puzzle that falls to constraint propagation alone scores near zero;
// the score grows with every node expanded and every guess undone.
// Returns an error if b is invalid or unsolvable.
func Score(b *board.Board) (int, error) {
	s := New(b, DefaultOptions())
	if _, err := s.Solve(); err != nil {
		return 0, err
	}

	// A puzzle cracked by propagation alone never enters backtracking, so
	// Nodes stays zero; otherwise the root node is free.
	stats := s.Stats()
	nodes := stats.Nodes
	if nodes > 0 {
		nodes--
	}
	return nodes + 2*stats.Backtracks, nil
}

// Rank buckets a puzzle's search score onto the rank scale.
// The thresholds are heuristic: they were tuned so that puzzles dug down to
// the clue counts used by the generator land in their intended bucket most
// of the time.
func Rank(b *board.Board) (int, error) {
	score, err := Score(b)
	if err != nil {
		return 0, err
	}

	switch {
	case score <= 2:
		return RankEasy, nil
	case score <= 12:
		return RankMedium, nil
	case score <= 48:
		return RankHard, nil
	default:
		return RankExpert, nil
	}
}
