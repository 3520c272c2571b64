package board

import "fmt"

// Grid is the nested row-major representation used at the package boundary:
// 9 rows of 9 integers, 0 for empty cells and 1-9 for placed digits.
type Grid [9][9]int

// NewFromGrid creates a Board from a nested grid.
// Returns an error if any value is out of range or the grid breaks
// row/column/box legality.
func NewFromGrid(g Grid) (*Board, error) {
	b := New()
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			val := g[row][col]
			if val == EmptyCell {
				continue
			}
			if err := b.Set(MakePos(row, col), val); err != nil {
				return nil, fmt.Errorf("invalid grid at row %d col %d: %w", row, col, err)
			}
		}
	}
	return b, nil
}

// Grid returns the board contents as a nested grid.
func (b *Board) Grid() Grid {
	var g Grid
	for pos := 0; pos < CellCount; pos++ {
		g[posToRow[pos]][posToCol[pos]] = b.cells[pos]
	}
	return g
}
