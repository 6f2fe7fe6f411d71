package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieceCodes(t *testing.T) {
	tests := []struct {
		piece Piece
		code  string
	}{
		{WhitePawn, "wp"},
		{WhiteKnight, "wN"},
		{WhiteBishop, "wB"},
		{WhiteRook, "wR"},
		{WhiteQueen, "wQ"},
		{WhiteKing, "wK"},
		{BlackPawn, "bp"},
		{BlackKing, "bK"},
		{NoPiece, EmptyCode},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.piece.Code())

		p, err := ParseCode(tt.code)
		require.NoError(t, err)
		assert.Equal(t, tt.piece, p)
	}
}

func TestParseCodeRejects(t *testing.T) {
	for _, code := range []string{"", "w", "wP", "xK", "bk", "wKK"} {
		_, err := ParseCode(code)
		assert.ErrorIs(t, err, ErrInvalidCode, code)
	}
}

func TestAllPiecesDistinctCodes(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range AllPieces {
		assert.False(t, seen[p.Code()], p.Code())
		seen[p.Code()] = true
	}
	assert.Len(t, seen, 12)
}

func TestCellGeometry(t *testing.T) {
	assert.Equal(t, Cell{Row: 0, Col: 0}, CellAt(0, 0, 64))
	assert.Equal(t, Cell{Row: 7, Col: 7}, CellAt(511, 511, 64))
	assert.Equal(t, Cell{Row: 1, Col: 2}, CellAt(130, 70, 64))
	assert.Equal(t, NoCell, CellAt(512, 10, 64))
	assert.Equal(t, NoCell, CellAt(-1, 10, 64))
	assert.Equal(t, NoCell, CellAt(10, 10, 0))

	x, y := Cell{Row: 3, Col: 5}.Origin(64)
	assert.Equal(t, 320, x)
	assert.Equal(t, 192, y)

	c, err := ParseCell("a8")
	require.NoError(t, err)
	assert.Equal(t, Cell{Row: 0, Col: 0}, c)
	assert.Equal(t, "h1", Cell{Row: 7, Col: 7}.String())

	_, err = ParseCell("i9")
	assert.Error(t, err)
}
