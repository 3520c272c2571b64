package generator

import (
	"fmt"
	"strings"

	"github.com/michaelYZh/Sudoku-Game/internal/solver"
)

// Difficulty selects how hard a generated puzzle should be. Each level maps
// to a target clue count: fewer clues leave more of the grid to deduce.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// targetClues maps each difficulty to the clue count the generator digs
// down to.
var targetClues = map[Difficulty]int{
	Easy:   40,
	Medium: 32,
	Hard:   28,
	Expert: 24,
}

// String returns the difficulty's display name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case Expert:
		return "Expert"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// TargetClues returns the clue count the generator aims for at this level.
func (d Difficulty) TargetClues() int {
	if clues, ok := targetClues[d]; ok {
		return clues
	}
	return DefaultClueCount
}

// Rank returns the level's value on the classic rating scale.
func (d Difficulty) Rank() int {
	switch d {
	case Easy:
		return solver.RankEasy
	case Medium:
		return solver.RankMedium
	case Hard:
		return solver.RankHard
	case Expert:
		return solver.RankExpert
	default:
		return solver.RankMedium
	}
}

// ParseDifficulty converts a case-insensitive level name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q (want easy, medium, hard, or expert)", s)
	}
}
