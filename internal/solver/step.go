package solver

import "github.com/michaelYZh/Sudoku-Game/internal/board"

// Step describes a single event of an externally paced solve: one tentative
// placement or one retraction.
type Step struct {
	Pos   int
	Value int
	// Placed is true when Value was written to Pos, false when it was
	// retracted during backtracking.
	Placed bool
}

// frame holds one level of the search: the chosen cell, its candidates in
// trial order, the index of the next candidate, and the value currently
// placed (0 when none).
type frame struct {
	pos        int
	candidates []int
	idx        int
	val        int
}

// Stepper runs the backtracking search one event at a time so a caller can
// pace auto-solve visualization from its own loop without goroutines. The
// frame stack never exceeds 81 entries.
//
// The stepper does not propagate constraints between steps: every placement
// the search makes is surfaced as an event, which is the point of stepping.
type Stepper struct {
	board   *board.Board
	frames  []*frame
	retract bool
	done    bool
	solved  bool
}

// NewStepper creates a stepper over a clone of b.
// Returns ErrInvalidPuzzle if b already breaks row/column/box legality.
func NewStepper(b *board.Board) (*Stepper, error) {
	if !b.IsValid() {
		return nil, ErrInvalidPuzzle
	}
	return &Stepper{board: b.Clone()}, nil
}

// Board returns the stepper's current board state.
func (st *Stepper) Board() *board.Board {
	return st.board
}

// Solved reports whether the search has finished with a complete board.
func (st *Stepper) Solved() bool {
	return st.solved
}

// Next advances the search by one event. It returns ok=false once the
// search has finished: either the board is complete (Solved reports true)
// or every branch was exhausted (the puzzle is unsolvable).
func (st *Stepper) Next() (Step, bool) {
	if st.done {
		return Step{}, false
	}

	if st.retract {
		return st.retractTop(), true
	}

	if st.board.EmptyCount() == 0 {
		st.done, st.solved = true, true
		return Step{}, false
	}

	// Open a frame for the most constrained cell unless the top frame is
	// still between candidates.
	if n := len(st.frames); n == 0 || st.frames[n-1].val != 0 {
		pos, candidates := findMRVCell(st.board)
		st.frames = append(st.frames, &frame{pos: pos, candidates: candidates})
	}

	f := st.frames[len(st.frames)-1]
	if f.idx >= len(f.candidates) {
		// Every candidate for this cell failed; unwind to the parent's
		// placement.
		st.frames = st.frames[:len(st.frames)-1]
		if len(st.frames) == 0 {
			st.done = true
			return Step{}, false
		}
		return st.retractTop(), true
	}

	val := f.candidates[f.idx]
	f.idx++
	f.val = val
	st.board.SetForce(f.pos, val)

	if st.board.EmptyCount() == 0 {
		st.done, st.solved = true, true
	} else if st.board.HasDeadCell() {
		// Forward check failed, the next event undoes this placement.
		st.retract = true
	}

	return Step{Pos: f.pos, Value: val, Placed: true}, true
}

// retractTop undoes the top frame's current placement. If the frame has no
// candidates left it is popped and the parent is marked for retraction.
func (st *Stepper) retractTop() Step {
	f := st.frames[len(st.frames)-1]
	st.board.Clear(f.pos)
	step := Step{Pos: f.pos, Value: f.val, Placed: false}
	f.val = 0
	st.retract = false

	if f.idx >= len(f.candidates) {
		st.frames = st.frames[:len(st.frames)-1]
		if len(st.frames) == 0 {
			st.done = true
		} else {
			st.retract = true
		}
	}

	return step
}
