package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	knownPuzzle   = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	knownSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func TestMakePos(t *testing.T) {
	assert.Equal(t, 0, MakePos(0, 0))
	assert.Equal(t, 80, MakePos(8, 8))
	assert.Equal(t, 40, MakePos(4, 4))
	assert.Equal(t, InvalidCell, MakePos(-1, 0))
	assert.Equal(t, InvalidCell, MakePos(0, 9))
	assert.Equal(t, InvalidCell, MakePos(9, 9))
}

func TestSetGetClear(t *testing.T) {
	b := New()
	require.Equal(t, CellCount, b.EmptyCount())

	require.NoError(t, b.Set(MakePos(2, 3), 7))
	assert.Equal(t, 7, b.Get(MakePos(2, 3)))
	assert.Equal(t, CellCount-1, b.EmptyCount())
	assert.Equal(t, 1, b.ClueCount())

	require.NoError(t, b.Clear(MakePos(2, 3)))
	assert.Equal(t, EmptyCell, b.Get(MakePos(2, 3)))
	assert.Equal(t, CellCount, b.EmptyCount())

	// Clearing an empty cell is a no-op
	require.NoError(t, b.Clear(MakePos(2, 3)))
	assert.Equal(t, CellCount, b.EmptyCount())

	// Setting zero clears
	require.NoError(t, b.Set(MakePos(1, 1), 4))
	require.NoError(t, b.Set(MakePos(1, 1), 0))
	assert.Equal(t, EmptyCell, b.Get(MakePos(1, 1)))

	assert.Equal(t, InvalidCell, b.Get(-1))
	assert.Equal(t, InvalidCell, b.Get(CellCount))
}

func TestSetRejectsIllegalAndInvalid(t *testing.T) {
	b := New()
	require.NoError(t, b.Set(MakePos(0, 0), 5))

	// Same row, column, and box conflicts
	assert.ErrorIs(t, b.Set(MakePos(0, 8), 5), ErrIllegalMove)
	assert.ErrorIs(t, b.Set(MakePos(8, 0), 5), ErrIllegalMove)
	assert.ErrorIs(t, b.Set(MakePos(2, 2), 5), ErrIllegalMove)

	// Out-of-range position and value
	assert.ErrorIs(t, b.Set(-1, 5), ErrInvalidPosition)
	assert.ErrorIs(t, b.Set(CellCount, 5), ErrInvalidPosition)
	assert.ErrorIs(t, b.Set(MakePos(4, 4), 10), ErrInvalidValue)
	assert.ErrorIs(t, b.Set(MakePos(4, 4), -3), ErrInvalidValue)

	// The failed placements must not have changed anything
	assert.Equal(t, 1, b.ClueCount())
}

func TestIsLegalDuplicateInRow(t *testing.T) {
	b := New()
	require.NoError(t, b.Set(MakePos(3, 2), 5))

	for col := 0; col < 9; col++ {
		if col == 2 {
			continue
		}
		assert.False(t, b.IsLegal(MakePos(3, col), 5), "col %d", col)
	}

	// Other digits stay legal in the same row
	assert.True(t, b.IsLegal(MakePos(3, 4), 6))
	// Zero is always legal
	assert.True(t, b.IsLegal(MakePos(3, 4), 0))
	// Out of range is never legal
	assert.False(t, b.IsLegal(-1, 5))
	assert.False(t, b.IsLegal(MakePos(0, 0), 12))
}

// A placement IsLegal deems legal must succeed and keep the whole board
// valid; one it rejects must fail.
func TestIsLegalAgreesWithSet(t *testing.T) {
	b, err := NewFromString(knownPuzzle)
	require.NoError(t, err)

	for pos := 0; pos < CellCount; pos++ {
		if b.Get(pos) != EmptyCell {
			continue
		}
		for val := 1; val <= 9; val++ {
			legal := b.IsLegal(pos, val)
			err := b.Set(pos, val)
			if legal {
				require.NoError(t, err, "pos %d val %d", pos, val)
				assert.True(t, b.IsValid(), "pos %d val %d", pos, val)
				require.NoError(t, b.Clear(pos))
			} else {
				require.Error(t, err, "pos %d val %d", pos, val)
			}
		}
	}
}

func TestIsComplete(t *testing.T) {
	solution, err := NewFromString(knownSolution)
	require.NoError(t, err)
	assert.True(t, solution.IsComplete())
	assert.True(t, solution.IsValid())

	puzzle, err := NewFromString(knownPuzzle)
	require.NoError(t, err)
	assert.False(t, puzzle.IsComplete())

	require.NoError(t, solution.Clear(MakePos(0, 0)))
	assert.False(t, solution.IsComplete())
}

func TestCandidatesSingleMissingCell(t *testing.T) {
	b, err := NewFromString(knownSolution)
	require.NoError(t, err)
	pos := MakePos(4, 4)
	removed := b.Get(pos)
	require.NoError(t, b.Clear(pos))

	assert.Equal(t, []int{removed}, b.GetCandidates(pos))
	assert.Equal(t, uint(1<<(removed-1)), b.GetCandidatesMask(pos))
}

// deadEndBoard returns a legal board whose cell (0,0) has no candidates:
// digits 1-4 block its row, 5-8 its column, and 9 its box.
func deadEndBoard(t *testing.T) *Board {
	t.Helper()
	b := New()
	require.NoError(t, b.Set(MakePos(0, 1), 1))
	require.NoError(t, b.Set(MakePos(0, 2), 2))
	require.NoError(t, b.Set(MakePos(0, 3), 3))
	require.NoError(t, b.Set(MakePos(0, 4), 4))
	require.NoError(t, b.Set(MakePos(1, 0), 5))
	require.NoError(t, b.Set(MakePos(2, 0), 6))
	require.NoError(t, b.Set(MakePos(3, 0), 7))
	require.NoError(t, b.Set(MakePos(4, 0), 8))
	require.NoError(t, b.Set(MakePos(1, 1), 9))
	return b
}

func TestHasDeadCell(t *testing.T) {
	b := deadEndBoard(t)
	assert.True(t, b.IsValid())
	assert.True(t, b.HasDeadCell())
	assert.Empty(t, b.GetCandidates(MakePos(0, 0)))

	fine, err := NewFromString(knownPuzzle)
	require.NoError(t, err)
	assert.False(t, fine.HasDeadCell())
}

func TestIsValidDetectsDuplicates(t *testing.T) {
	b := New()
	b.SetForce(MakePos(0, 0), 5)
	b.SetForce(MakePos(0, 7), 5)
	assert.False(t, b.IsValid())
}

func TestStringRoundTrip(t *testing.T) {
	b, err := NewFromString(knownPuzzle)
	require.NoError(t, err)
	assert.Equal(t, knownPuzzle, b.String())
	assert.Equal(t, 30, b.ClueCount())

	_, err = NewFromString("123")
	assert.Error(t, err)

	_, err = NewFromString(knownPuzzle[:80] + "x")
	assert.Error(t, err)

	// A string encoding an illegal board is rejected
	bad := "55" + knownPuzzle[2:]
	_, err = NewFromString(bad)
	assert.ErrorIs(t, err, ErrIllegalMove)
}

func TestGridRoundTrip(t *testing.T) {
	b, err := NewFromString(knownPuzzle)
	require.NoError(t, err)

	g := b.Grid()
	assert.Equal(t, 5, g[0][0])
	assert.Equal(t, 0, g[0][2])
	assert.Equal(t, 9, g[8][8])

	back, err := NewFromGrid(g)
	require.NoError(t, err)
	assert.Equal(t, b.String(), back.String())

	var dup Grid
	dup[0][0], dup[0][5] = 7, 7
	_, err = NewFromGrid(dup)
	assert.ErrorIs(t, err, ErrIllegalMove)
}

func TestCloneIndependence(t *testing.T) {
	b, err := NewFromString(knownPuzzle)
	require.NoError(t, err)

	clone := b.Clone()
	require.NoError(t, clone.Set(MakePos(0, 2), 4))

	assert.Equal(t, EmptyCell, b.Get(MakePos(0, 2)))
	assert.NotEqual(t, b.EmptyCount(), clone.EmptyCount())
}

func TestBoxCells(t *testing.T) {
	b := New()
	assert.Equal(t, [9]int{0, 1, 2, 9, 10, 11, 18, 19, 20}, b.BoxCells(0))
	assert.Equal(t, [9]int{60, 61, 62, 69, 70, 71, 78, 79, 80}, b.BoxCells(8))
}
