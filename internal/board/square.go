// Package board holds the state behind the drag-and-drop chessboard:
// the 8×8 grid of pieces, the move log and the drag state machine.
// It has no rendering dependencies.
package board

import "fmt"

// Size is the number of rows and columns on the board.
const Size = 8

// Cell addresses one square of the grid.
// Row 0 is the top of the window (black's back rank), Col 0 the left edge.
type Cell struct {
	Row int
	Col int
}

// NoCell is returned for positions outside the board.
var NoCell = Cell{Row: -1, Col: -1}

// IsValid returns true if the cell lies on the board.
func (c Cell) IsValid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// String returns the algebraic name of the cell (e.g., "e4").
func (c Cell) String() string {
	if !c.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+c.Col, '8'-c.Row)
}

// ParseCell parses algebraic notation (e.g., "e4") into a Cell.
func ParseCell(s string) (Cell, error) {
	if len(s) != 2 {
		return NoCell, fmt.Errorf("invalid square: %s", s)
	}

	col := int(s[0] - 'a')
	row := int('8' - s[1])

	c := Cell{Row: row, Col: col}
	if !c.IsValid() {
		return NoCell, fmt.Errorf("invalid square: %s", s)
	}
	return c, nil
}

// CellAt maps pixel coordinates to the cell under them, for cells of the
// given pixel size with the board drawn at the origin.
func CellAt(x, y, cellSize int) Cell {
	if cellSize <= 0 || x < 0 || y < 0 {
		return NoCell
	}
	c := Cell{Row: y / cellSize, Col: x / cellSize}
	if !c.IsValid() {
		return NoCell
	}
	return c
}

// Origin returns the top-left pixel of the cell for the given cell size.
func (c Cell) Origin(cellSize int) (int, int) {
	return c.Col * cellSize, c.Row * cellSize
}
