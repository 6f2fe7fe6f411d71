package board

import "strings"

// Grid is the 8×8 board of pieces, indexed [row][col].
// Nothing about chess rules is enforced; any cell may hold any piece.
type Grid [Size][Size]Piece

var backRank = [Size]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewGrid returns a grid set up in the standard starting position.
func NewGrid() Grid {
	var g Grid
	g.Clear()
	for col := 0; col < Size; col++ {
		g[0][col] = NewPiece(backRank[col], Black)
		g[1][col] = BlackPawn
		g[6][col] = WhitePawn
		g[7][col] = NewPiece(backRank[col], White)
	}
	return g
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for row := range g {
		for col := range g[row] {
			g[row][col] = NoPiece
		}
	}
}

// At returns the piece on a cell, NoPiece for empty or off-board cells.
func (g *Grid) At(c Cell) Piece {
	if !c.IsValid() {
		return NoPiece
	}
	return g[c.Row][c.Col]
}

// Set places a piece on a cell, replacing whatever was there.
// Off-board cells are ignored.
func (g *Grid) Set(c Cell, p Piece) {
	if !c.IsValid() {
		return
	}
	g[c.Row][c.Col] = p
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for row := range g {
		for col := range g[row] {
			if g[row][col] != NoPiece {
				n++
			}
		}
	}
	return n
}

// String renders the grid as eight lines of space-separated piece codes.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := range g {
		for col := range g[row] {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g[row][col].Code())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
