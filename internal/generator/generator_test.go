package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelYZh/Sudoku-Game/internal/board"
	"github.com/michaelYZh/Sudoku-Game/internal/solver"
)

func TestGenerateProducesUniquePuzzle(t *testing.T) {
	opts := DefaultOptions(32)
	opts.Seed = 12345
	puzzle, solution, err := New(opts).Generate()
	require.NoError(t, err)

	// The solution is a complete legal grid.
	assert.True(t, solution.IsComplete())
	assert.True(t, solution.IsValid())

	// The puzzle holds exactly the target clue count and is a subset of
	// the solution.
	assert.Equal(t, 32, puzzle.ClueCount())
	for pos := 0; pos < board.CellCount; pos++ {
		val := puzzle.Get(pos)
		if val != board.EmptyCell {
			assert.Equal(t, solution.Get(pos), val, "pos %d", pos)
		}
	}

	// Exactly one completion exists, and it is the emitted solution.
	count, err := solver.New(puzzle, nil).CountSolutions(2)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	solved, err := solver.New(puzzle, nil).Solve()
	require.NoError(t, err)
	assert.Equal(t, solution.String(), solved.String())
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	generate := func() (string, string) {
		opts := DefaultOptions(30)
		opts.Seed = 99
		puzzle, solution, err := New(opts).Generate()
		require.NoError(t, err)
		return puzzle.String(), solution.String()
	}

	p1, s1 := generate()
	p2, s2 := generate()
	assert.Equal(t, p1, p2)
	assert.Equal(t, s1, s2)
}

func TestGenerateRejectsInvalidClueCount(t *testing.T) {
	for _, clues := range []int{0, 16, 81, 100} {
		opts := &Options{ClueCount: clues, Timeout: time.Second, EnsureUnique: true}
		_, _, err := New(opts).Generate()
		assert.ErrorIs(t, err, ErrInvalidClueCount, "clues %d", clues)
	}
}

func TestGenerateAllDifficulties(t *testing.T) {
	cases := []struct {
		name string
		diff Difficulty
	}{
		{"easy", Easy},
		{"medium", Medium},
		{"hard", Hard},
		{"expert", Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := OptionsForDifficulty(tc.diff)
			opts.Seed = 4242
			opts.Timeout = time.Minute
			puzzle, solution, err := New(opts).Generate()
			require.NoError(t, err)

			assert.Equal(t, tc.diff.TargetClues(), puzzle.ClueCount())
			assert.True(t, solution.IsComplete())

			count, err := solver.New(puzzle, nil).CountSolutions(2)
			require.NoError(t, err)
			assert.Equal(t, 1, count)
		})
	}
}

// Every row, column, and box of a generated solution is a permutation of 1-9.
func TestSolutionUnitsArePermutations(t *testing.T) {
	opts := DefaultOptions(40)
	opts.Seed = 7
	_, solution, err := New(opts).Generate()
	require.NoError(t, err)

	for unit := 0; unit < 9; unit++ {
		var rowSeen, colSeen, boxSeen [10]bool
		for i := 0; i < 9; i++ {
			rowSeen[solution.Get(board.MakePos(unit, i))] = true
			colSeen[solution.Get(board.MakePos(i, unit))] = true
			boxSeen[solution.Get(solution.BoxCells(unit)[i])] = true
		}
		for val := 1; val <= 9; val++ {
			assert.True(t, rowSeen[val], "row %d missing %d", unit, val)
			assert.True(t, colSeen[val], "col %d missing %d", unit, val)
			assert.True(t, boxSeen[val], "box %d missing %d", unit, val)
		}
	}
}

// Hard puzzles should on balance take at least as much search effort as
// easy ones. The comparison is over summed scores so an individual lucky
// dig cannot flip it.
func TestDifficultyScoreMonotonicity(t *testing.T) {
	sumScores := func(d Difficulty) int {
		total := 0
		for _, seed := range []int64{11, 12, 13} {
			opts := OptionsForDifficulty(d)
			opts.Seed = seed
			opts.Timeout = time.Minute
			puzzle, _, err := New(opts).Generate()
			require.NoError(t, err)

			score, err := solver.Score(puzzle)
			require.NoError(t, err)
			total += score
		}
		return total
	}

	assert.GreaterOrEqual(t, sumScores(Hard), sumScores(Easy))
}

func TestDifficultyMapping(t *testing.T) {
	assert.Equal(t, 40, Easy.TargetClues())
	assert.Equal(t, 32, Medium.TargetClues())
	assert.Equal(t, 28, Hard.TargetClues())
	assert.Equal(t, 24, Expert.TargetClues())

	assert.Equal(t, solver.RankEasy, Easy.Rank())
	assert.Equal(t, solver.RankExpert, Expert.Rank())

	assert.Equal(t, "Easy", Easy.String())
	assert.Equal(t, "Expert", Expert.String())
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]Difficulty{
		"easy":     Easy,
		"Medium":   Medium,
		"HARD":     Hard,
		" expert ": Expert,
	} {
		got, err := ParseDifficulty(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDifficulty("impossible")
	assert.Error(t, err)
}
