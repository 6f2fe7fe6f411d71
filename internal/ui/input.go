package ui

import (
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler snapshots mouse and keyboard state once per frame.
type InputHandler struct {
	mouseX, mouseY int
	leftPressed    bool
	undo           bool
	quit           bool
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update polls Ebitengine. Call this once per frame.
func (ih *InputHandler) Update() {
	ih.mouseX, ih.mouseY = ebiten.CursorPosition()
	ih.leftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	modifier := ebiten.IsKeyPressed(ebiten.KeyControl)
	if runtime.GOOS == "darwin" {
		modifier = modifier || ebiten.IsKeyPressed(ebiten.KeyMeta)
	}
	ih.undo = modifier && inpututil.IsKeyJustPressed(ebiten.KeyZ)
	ih.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// MousePosition returns the current mouse position.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// IsLeftPressed returns true if the left mouse button is currently pressed.
func (ih *InputHandler) IsLeftPressed() bool {
	return ih.leftPressed
}

// UndoRequested reports whether the undo shortcut was pressed this frame.
func (ih *InputHandler) UndoRequested() bool {
	return ih.undo
}

// QuitRequested reports whether the quit key was pressed this frame.
func (ih *InputHandler) QuitRequested() bool {
	return ih.quit
}
