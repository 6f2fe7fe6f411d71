package ui

import (
	"time"

	"github.com/hailam/dragboard/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// UI Constants
const (
	ScreenWidth  = 512
	ScreenHeight = 512
	BoardSize    = ScreenWidth
	CellSize     = BoardSize / board.Size
)

// Options configures a new Game.
type Options struct {
	Sprites    *SpriteSet
	Audio      *AudioManager // nil for silence
	ShowToasts bool
	Logger     *zap.Logger
}

// Game implements ebiten.Game. It owns the scene list and handles the
// global quit and undo keys.
type Game struct {
	input     *InputHandler
	scene     []Scene
	boardView *BoardView
	feedback  *FeedbackManager
	renderer  *Renderer
	logger    *zap.Logger
	started   time.Time
}

// NewGame creates a game showing a board in the starting position.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	renderer := NewRenderer(BoardSize, opts.Sprites)
	feedback := NewFeedbackManager(ScreenWidth, opts.Audio, opts.ShowToasts)
	boardView := NewBoardView(board.New(), renderer, feedback, logger)

	return &Game{
		input:     NewInputHandler(),
		scene:     []Scene{boardView},
		boardView: boardView,
		feedback:  feedback,
		renderer:  renderer,
		logger:    logger,
		started:   time.Now(),
	}
}

// Update handles input and advances every scene object by one frame.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	if g.input.QuitRequested() {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}

	if g.input.UndoRequested() {
		if err := g.boardView.Undo(); err != nil {
			g.logger.Info("undo refused", zap.Error(err))
			g.feedback.OnUndoRefused(err)
		}
	}

	for _, obj := range g.scene {
		if err := obj.Update(g.input); err != nil {
			return err
		}
	}

	return nil
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	for _, obj := range g.scene {
		obj.Draw(screen)
	}

	g.feedback.Draw(screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Session returns the moves and undos made so far and the time since start.
func (g *Game) Session() (moves, undos int, elapsed time.Duration) {
	moves, undos = g.boardView.Counts()
	return moves, undos, time.Since(g.started)
}
