package board

import (
	"fmt"
	"strings"
)

// StartPlacement is the FEN piece-placement field of the starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement parses the piece-placement field of a FEN string into a Grid.
// Only the first field is read; any side-to-move or castling fields are ignored.
func ParsePlacement(fen string) (Grid, error) {
	var g Grid
	g.Clear()

	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return g, fmt.Errorf("invalid FEN: empty")
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != Size {
		return g, fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	// FEN starts from rank 8, which is row 0.
	for row, rankStr := range ranks {
		col := 0

		for _, c := range rankStr {
			if col > 7 {
				return g, fmt.Errorf("too many squares in rank %d", Size-row)
			}

			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			piece := pieceFromFENChar(byte(c))
			if piece == NoPiece {
				return g, fmt.Errorf("invalid piece character: %c", c)
			}
			g[row][col] = piece
			col++
		}

		if col != Size {
			return g, fmt.Errorf("invalid number of squares in rank %d: got %d", Size-row, col)
		}
	}

	return g, nil
}

// Placement returns the FEN piece-placement field for the grid.
func (g *Grid) Placement() string {
	var sb strings.Builder

	for row := 0; row < Size; row++ {
		empty := 0
		for col := 0; col < Size; col++ {
			piece := g[row][col]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.fenChar())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < Size-1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
