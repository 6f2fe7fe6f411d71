package board

import "errors"

var (
	// ErrNothingToUndo is returned when the log holds no completed move.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrDragInProgress is returned when undo is asked for mid-drag.
	ErrDragInProgress = errors.New("piece is being dragged")
	// ErrInvalidCode is returned for malformed piece codes.
	ErrInvalidCode = errors.New("invalid piece code")
)

// DragState is the two-state drag machine.
type DragState uint8

const (
	Idle DragState = iota
	Dragging
)

// String returns the state name.
func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Event reports what a call to Step did.
type Event uint8

const (
	EventNone Event = iota
	EventPickUp
	EventHold
	EventDrop
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventPickUp:
		return "pick-up"
	case EventHold:
		return "hold"
	case EventDrop:
		return "drop"
	default:
		return "none"
	}
}

// Board owns the grid, the move log and the drag state.
type Board struct {
	grid  Grid
	log   MoveLog
	state DragState

	held     Piece
	heldFrom Cell
	hover    Cell
}

// New returns a board in the starting position with an empty log.
func New() *Board {
	return NewFromGrid(NewGrid())
}

// NewFromGrid returns a board holding a copy of the given grid.
func NewFromGrid(g Grid) *Board {
	return &Board{
		grid:     g,
		held:     NoPiece,
		heldFrom: NoCell,
		hover:    NoCell,
	}
}

// Step advances the drag state machine by one frame.
// cell is the cell under the mouse (NoCell when off the board) and
// pressed is the left-button state.
func (b *Board) Step(cell Cell, pressed bool) Event {
	b.hover = cell

	switch b.state {
	case Idle:
		if !pressed || b.grid.At(cell) == NoPiece {
			return EventNone
		}
		b.pickUp(cell)
		return EventPickUp

	case Dragging:
		if pressed {
			return EventHold
		}
		b.drop(cell)
		return EventDrop
	}

	return EventNone
}

func (b *Board) pickUp(cell Cell) {
	piece := b.grid.At(cell)
	b.state = Dragging
	b.held = piece
	b.heldFrom = cell
	b.grid.Set(cell, NoPiece)
	b.log.Append(piece, cell)
}

// drop writes the held piece into cell, overwriting any occupant.
// Off-board drops put the piece back where it came from.
func (b *Board) drop(cell Cell) {
	if !cell.IsValid() {
		cell = b.heldFrom
	}
	b.grid.Set(cell, b.held)
	b.log.Append(b.held, cell)
	b.state = Idle
	b.held = NoPiece
	b.heldFrom = NoCell
}

// Undo reverts the last completed move: the drop cell is cleared and the
// piece goes back to its pick-up cell. Exactly two log entries are removed.
func (b *Board) Undo() (pickUp, drop LogEntry, err error) {
	if b.state == Dragging {
		return LogEntry{}, LogEntry{}, ErrDragInProgress
	}

	pickUp, drop, err = b.log.PopPair()
	if err != nil {
		return LogEntry{}, LogEntry{}, err
	}

	b.grid.Set(drop.Cell, NoPiece)
	b.grid.Set(pickUp.Cell, pickUp.Piece)
	return pickUp, drop, nil
}

// Grid returns a copy of the current grid.
func (b *Board) Grid() Grid {
	return b.grid
}

// At returns the piece on a cell.
func (b *Board) At(c Cell) Piece {
	return b.grid.At(c)
}

// Log returns the move log.
func (b *Board) Log() *MoveLog {
	return &b.log
}

// State returns the current drag state.
func (b *Board) State() DragState {
	return b.state
}

// Dragging reports whether a piece is currently held.
func (b *Board) Dragging() bool {
	return b.state == Dragging
}

// Held returns the held piece and the cell it was lifted from.
func (b *Board) Held() (Piece, Cell) {
	return b.held, b.heldFrom
}

// HoverCell returns the cell under the mouse as of the last Step.
func (b *Board) HoverCell() Cell {
	return b.hover
}
