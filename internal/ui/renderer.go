package ui

import (
	"image/color"

	"github.com/hailam/dragboard/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare color.RGBA
	DarkSquare  color.RGBA
	OriginCell  color.RGBA
	TargetCell  color.RGBA
	Background  color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare: color.RGBA{255, 255, 255, 255}, // White
		DarkSquare:  color.RGBA{190, 190, 190, 255}, // Gray
		OriginCell:  color.RGBA{247, 247, 105, 110}, // Yellow
		TargetCell:  color.RGBA{130, 151, 105, 110}, // Green
		Background:  color.RGBA{255, 255, 255, 255},
	}
}

// Renderer handles all drawing operations for the board.
type Renderer struct {
	sprites   *SpriteSet
	theme     *Theme
	boardSize int
	cellSize  int
}

// NewRenderer creates a renderer for a square board of boardSize pixels.
func NewRenderer(boardSize int, sprites *SpriteSet) *Renderer {
	return &Renderer{
		sprites:   sprites,
		theme:     DefaultTheme(),
		boardSize: boardSize,
		cellSize:  boardSize / board.Size,
	}
}

// DrawBoard paints the alternating two-color grid.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := float32(r.cellSize)
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			c := r.theme.LightSquare
			if (row+col)%2 == 1 {
				c = r.theme.DarkSquare
			}
			x, y := board.Cell{Row: row, Col: col}.Origin(r.cellSize)
			vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
		}
	}
}

// DrawPieces blits every non-empty cell's sprite.
func (r *Renderer) DrawPieces(screen *ebiten.Image, grid *board.Grid) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			piece := grid[row][col]
			if piece == board.NoPiece {
				continue
			}
			x, y := board.Cell{Row: row, Col: col}.Origin(r.cellSize)
			r.sprites.DrawPieceAt(screen, piece, x, y)
		}
	}
}

// DrawDragCells tints the cell a piece was lifted from and the cell under the cursor.
func (r *Renderer) DrawDragCells(screen *ebiten.Image, from, target board.Cell) {
	r.highlightCell(screen, from, r.theme.OriginCell)
	if target != from {
		r.highlightCell(screen, target, r.theme.TargetCell)
	}
}

// DrawHeldPiece draws the held piece snapped to the cell under the cursor.
func (r *Renderer) DrawHeldPiece(screen *ebiten.Image, piece board.Piece, cell board.Cell) {
	if !cell.IsValid() {
		return
	}
	x, y := cell.Origin(r.cellSize)
	r.sprites.DrawPieceAt(screen, piece, x, y)
}

func (r *Renderer) highlightCell(screen *ebiten.Image, cell board.Cell, c color.RGBA) {
	if !cell.IsValid() {
		return
	}
	x, y := cell.Origin(r.cellSize)
	size := float32(r.cellSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
}

// CellAt converts screen coordinates to a board cell.
func (r *Renderer) CellAt(x, y int) board.Cell {
	if x >= r.boardSize || y >= r.boardSize {
		return board.NoCell
	}
	return board.CellAt(x, y, r.cellSize)
}

// BoardSize returns the board size in pixels.
func (r *Renderer) BoardSize() int {
	return r.boardSize
}

// CellSize returns the size of one cell in pixels.
func (r *Renderer) CellSize() int {
	return r.cellSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
