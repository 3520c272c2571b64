package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelYZh/Sudoku-Game/internal/board"
)

const maxSteps = 1_000_000

func TestStepperSolvesKnownPuzzle(t *testing.T) {
	start := mustBoard(t, knownPuzzle)
	st, err := NewStepper(start)
	require.NoError(t, err)

	// Replay every event onto an independent board; it must track the
	// stepper's own state exactly.
	replay := start.Clone()
	steps := 0
	for {
		step, ok := st.Next()
		if !ok {
			break
		}
		steps++
		require.LessOrEqual(t, steps, maxSteps, "stepper did not terminate")

		if step.Placed {
			replay.SetForce(step.Pos, step.Value)
		} else {
			require.NoError(t, replay.Clear(step.Pos))
		}
	}

	assert.True(t, st.Solved())
	assert.Equal(t, knownSolution, st.Board().String())
	assert.Equal(t, st.Board().String(), replay.String())

	// Finished steppers stay finished.
	_, ok := st.Next()
	assert.False(t, ok)
}

func TestStepperUnsolvableBoard(t *testing.T) {
	st, err := NewStepper(deadEndBoard(t))
	require.NoError(t, err)

	steps := 0
	for {
		_, ok := st.Next()
		if !ok {
			break
		}
		steps++
		require.LessOrEqual(t, steps, maxSteps, "stepper did not terminate")
	}

	assert.False(t, st.Solved())
}

func TestStepperCompleteBoard(t *testing.T) {
	st, err := NewStepper(mustBoard(t, knownSolution))
	require.NoError(t, err)

	_, ok := st.Next()
	assert.False(t, ok)
	assert.True(t, st.Solved())
}

func TestStepperRejectsInvalidBoard(t *testing.T) {
	b := board.New()
	b.SetForce(board.MakePos(0, 0), 5)
	b.SetForce(board.MakePos(0, 7), 5)

	_, err := NewStepper(b)
	assert.ErrorIs(t, err, ErrInvalidPuzzle)
}

func TestStepperDoesNotMutateInput(t *testing.T) {
	start := mustBoard(t, knownPuzzle)
	st, err := NewStepper(start)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		if _, ok := st.Next(); !ok {
			break
		}
	}
	assert.Equal(t, knownPuzzle, start.String())
}
