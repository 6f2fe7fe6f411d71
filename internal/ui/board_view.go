package ui

import (
	"github.com/hailam/dragboard/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Scene is an object the game updates and draws every frame.
type Scene interface {
	Update(input *InputHandler) error
	Draw(screen *ebiten.Image)
}

// BoardView is the scene object for the chessboard. It turns mouse state into
// pick-up and drop gestures on a board.Board and draws the result.
type BoardView struct {
	board    *board.Board
	renderer *Renderer
	feedback *FeedbackManager
	logger   *zap.Logger

	moves int
	undos int
}

// NewBoardView wraps b for display with the given renderer.
func NewBoardView(b *board.Board, renderer *Renderer, feedback *FeedbackManager, logger *zap.Logger) *BoardView {
	return &BoardView{
		board:    b,
		renderer: renderer,
		feedback: feedback,
		logger:   logger,
	}
}

// Update applies this frame's mouse state to the board.
func (bv *BoardView) Update(input *InputHandler) error {
	mx, my := input.MousePosition()
	cell := bv.renderer.CellAt(mx, my)

	switch bv.board.Step(cell, input.IsLeftPressed()) {
	case board.EventPickUp:
		piece, from := bv.board.Held()
		bv.logger.Debug("pick up", zap.Stringer("piece", piece), zap.Stringer("cell", from))
		ebiten.SetCursorShape(ebiten.CursorShapePointer)

	case board.EventDrop:
		last, _ := bv.board.Log().Last()
		bv.moves++
		bv.logger.Debug("drop", zap.Stringer("piece", last.Piece), zap.Stringer("cell", last.Cell))
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		bv.feedback.OnDrop()
	}

	return nil
}

// Undo reverts the last completed move on the board.
func (bv *BoardView) Undo() error {
	pickUp, drop, err := bv.board.Undo()
	if err != nil {
		return err
	}
	bv.undos++
	bv.logger.Info("undo",
		zap.Stringer("piece", pickUp.Piece),
		zap.Stringer("from", drop.Cell),
		zap.Stringer("to", pickUp.Cell),
		zap.Int("log_len", bv.board.Log().Len()),
	)
	bv.feedback.OnUndo()
	return nil
}

// Draw paints the grid, the pieces and any piece being dragged.
func (bv *BoardView) Draw(screen *ebiten.Image) {
	bv.renderer.DrawBoard(screen)

	if bv.board.Dragging() {
		_, from := bv.board.Held()
		bv.renderer.DrawDragCells(screen, from, bv.board.HoverCell())
	}

	grid := bv.board.Grid()
	bv.renderer.DrawPieces(screen, &grid)

	if bv.board.Dragging() {
		piece, _ := bv.board.Held()
		bv.renderer.DrawHeldPiece(screen, piece, bv.board.HoverCell())
	}
}

// Counts returns the number of completed moves and undos this session.
func (bv *BoardView) Counts() (moves, undos int) {
	return bv.moves, bv.undos
}
