package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridStartingPosition(t *testing.T) {
	want := [Size][Size]string{
		{"bR", "bN", "bB", "bQ", "bK", "bB", "bN", "bR"},
		{"bp", "bp", "bp", "bp", "bp", "bp", "bp", "bp"},
		{"--", "--", "--", "--", "--", "--", "--", "--"},
		{"--", "--", "--", "--", "--", "--", "--", "--"},
		{"--", "--", "--", "--", "--", "--", "--", "--"},
		{"--", "--", "--", "--", "--", "--", "--", "--"},
		{"wp", "wp", "wp", "wp", "wp", "wp", "wp", "wp"},
		{"wR", "wN", "wB", "wQ", "wK", "wB", "wN", "wR"},
	}

	g := NewGrid()
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			assert.Equal(t, want[row][col], g[row][col].Code(), "row %d col %d", row, col)
		}
	}
	assert.Equal(t, 32, g.Count())
	assert.Equal(t, StartPlacement, g.Placement())
}

func TestPlacementRoundTrip(t *testing.T) {
	fens := []string{
		StartPlacement,
		"8/8/8/8/8/8/8/8",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			g, err := ParsePlacement(fen + " w - - 0 1")
			require.NoError(t, err)
			assert.Equal(t, fen, g.Placement())
		})
	}
}

func TestParsePlacementErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX",
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
	}
	for _, fen := range bad {
		_, err := ParsePlacement(fen)
		assert.Error(t, err, fen)
	}
}

func TestGridString(t *testing.T) {
	g := NewGrid()
	lines := g.String()
	assert.Contains(t, lines, "bR bN bB bQ bK bB bN bR\n")
	assert.Contains(t, lines, "-- -- -- -- -- -- -- --\n")
}

func TestGridOffBoardAccess(t *testing.T) {
	g := NewGrid()
	assert.Equal(t, NoPiece, g.At(NoCell))
	g.Set(Cell{Row: 8, Col: 0}, WhiteQueen)
	assert.Equal(t, 32, g.Count())
}
