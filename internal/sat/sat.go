// Package sat solves Sudoku boards by reduction to propositional
// satisfiability using the gini solver. It is an independent engine from
// the backtracking solver: one boolean variable per (row, col, digit)
// triple, clauses for the Sudoku rules, and unit clauses pinning the clues.
package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/michaelYZh/Sudoku-Game/internal/board"
	"github.com/michaelYZh/Sudoku-Game/internal/solver"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// lit returns the literal meaning "digit num+1 appears at (row, col)".
func lit(row, col, num int) z.Lit {
	n := num
	n += col * 9
	n += row * 81
	return z.Var(n + 1).Pos()
}

// Solve finds a completion of b, or returns solver.ErrNoSolution when none
// exists and solver.ErrInvalidPuzzle when b already breaks legality.
func Solve(b *board.Board) (*board.Board, error) {
	if !b.IsValid() {
		return nil, solver.ErrInvalidPuzzle
	}

	g := newFormula(b)
	if g.Solve() != satisfiable {
		return nil, solver.ErrNoSolution
	}
	return extract(g)
}

// CountUpToTwo reports how many completions b has, capped at two: after a
// first model is found, a blocking clause over its 81 chosen literals
// forces the next model to differ in at least one cell.
func CountUpToTwo(b *board.Board) (int, error) {
	if !b.IsValid() {
		return 0, solver.ErrInvalidPuzzle
	}

	g := newFormula(b)
	if g.Solve() != satisfiable {
		return 0, nil
	}

	first, err := extract(g)
	if err != nil {
		return 0, err
	}
	for pos := 0; pos < board.CellCount; pos++ {
		row, col := pos/9, pos%9
		g.Add(lit(row, col, first.Get(pos)-1).Not())
	}
	g.Add(0)

	if g.Solve() != satisfiable {
		return 1, nil
	}
	return 2, nil
}

// newFormula encodes the Sudoku rules plus b's clues as CNF.
func newFormula(b *board.Board) *gini.Gini {
	g := gini.New()

	// every position on the board has exactly one number
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			for n := 0; n < 9; n++ {
				g.Add(lit(row, col, n))
			}
			g.Add(0)
			for nA := 0; nA < 9; nA++ {
				for nB := nA + 1; nB < 9; nB++ {
					g.Add(lit(row, col, nA).Not())
					g.Add(lit(row, col, nB).Not())
					g.Add(0)
				}
			}
		}
	}

	// every row has unique numbers
	for n := 0; n < 9; n++ {
		for row := 0; row < 9; row++ {
			for colA := 0; colA < 9; colA++ {
				a := lit(row, colA, n)
				for colB := colA + 1; colB < 9; colB++ {
					g.Add(a.Not())
					g.Add(lit(row, colB, n).Not())
					g.Add(0)
				}
			}
		}
	}

	// every column has unique numbers
	for n := 0; n < 9; n++ {
		for col := 0; col < 9; col++ {
			for rowA := 0; rowA < 9; rowA++ {
				a := lit(rowA, col, n)
				for rowB := rowA + 1; rowB < 9; rowB++ {
					g.Add(a.Not())
					g.Add(lit(rowB, col, n).Not())
					g.Add(0)
				}
			}
		}
	}

	// every box has unique numbers
	offs := []struct{ r, c int }{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	for boxRow := 0; boxRow < 9; boxRow += 3 {
		for boxCol := 0; boxCol < 9; boxCol += 3 {
			for n := 0; n < 9; n++ {
				for i, offA := range offs {
					a := lit(boxRow+offA.r, boxCol+offA.c, n)
					for j := i + 1; j < len(offs); j++ {
						offB := offs[j]
						g.Add(a.Not())
						g.Add(lit(boxRow+offB.r, boxCol+offB.c, n).Not())
						g.Add(0)
					}
				}
			}
		}
	}

	// pin the clues
	for pos := 0; pos < board.CellCount; pos++ {
		val := b.Get(pos)
		if val == board.EmptyCell {
			continue
		}
		g.Add(lit(pos/9, pos%9, val-1))
		g.Add(0)
	}

	return g
}

// extract reads a solved model back into a Board.
func extract(g *gini.Gini) (*board.Board, error) {
	solved := board.New()
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			placed := false
			for n := 0; n < 9; n++ {
				if g.Value(lit(row, col, n)) {
					solved.SetForce(board.MakePos(row, col), n+1)
					placed = true
					break
				}
			}
			if !placed {
				return nil, fmt.Errorf("model left cell (%d,%d) unassigned", row, col)
			}
		}
	}
	return solved, nil
}
