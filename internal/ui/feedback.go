package ui

import (
	"errors"
	"image/color"
	"time"

	"github.com/hailam/dragboard/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
	width    int
	now      func() time.Time
}

// NewToastManager creates a toast manager that centres toasts across width pixels.
func NewToastManager(width int) *ToastManager {
	return &ToastManager{
		maxStack: 3,
		width:    width,
		now:      time.Now,
	}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: tm.now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := tm.now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Active returns the messages currently on screen, oldest first.
func (tm *ToastManager) Active() []string {
	out := make([]string, len(tm.toasts))
	for i, t := range tm.toasts {
		out[i] = t.Message
	}
	return out
}

// Draw renders all active toasts.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	y := 24.0
	for _, t := range tm.toasts {
		elapsed := tm.now().Sub(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		// Fade in/out
		alpha := 1.0
		fadeTime := 0.2
		if elapsed < fadeTime {
			alpha = elapsed / fadeTime
		} else if elapsed > duration-fadeTime {
			alpha = (duration - elapsed) / fadeTime
		}
		if alpha < 0 {
			alpha = 0
		}

		bgColor := color.RGBA{50, 100, 150, uint8(220 * alpha)}
		if t.Type == ToastWarning {
			bgColor = color.RGBA{180, 140, 20, uint8(220 * alpha)}
		}
		textColor := color.RGBA{255, 255, 255, uint8(255 * alpha)}

		w, h := MeasureText(t.Message, face)
		padding := 10.0
		boxW := w + padding*2
		boxH := h + padding*2
		x := float64(tm.width)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bgColor, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8
	}
}

// FeedbackManager coordinates sounds and toasts.
type FeedbackManager struct {
	toasts     *ToastManager
	audio      *AudioManager
	showToasts bool
}

// NewFeedbackManager creates a feedback manager. audio may be nil.
func NewFeedbackManager(width int, audio *AudioManager, showToasts bool) *FeedbackManager {
	return &FeedbackManager{
		toasts:     NewToastManager(width),
		audio:      audio,
		showToasts: showToasts,
	}
}

// Update expires old toasts.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
}

// Draw renders toasts over the board.
func (fm *FeedbackManager) Draw(screen *ebiten.Image) {
	fm.toasts.Draw(screen)
}

// OnDrop handles a piece being put down.
func (fm *FeedbackManager) OnDrop() {
	fm.play(SoundDrop)
}

// OnUndo handles a successful undo.
func (fm *FeedbackManager) OnUndo() {
	fm.play(SoundUndo)
}

// OnUndoRefused explains why an undo did nothing.
func (fm *FeedbackManager) OnUndoRefused(err error) {
	message := "Cannot undo"
	switch {
	case errors.Is(err, board.ErrNothingToUndo):
		message = "Nothing to undo"
	case errors.Is(err, board.ErrDragInProgress):
		message = "Drop the piece before undoing"
	}
	if fm.showToasts {
		fm.toasts.Show(message, ToastWarning, 2*time.Second)
	}
	fm.play(SoundRefused)
}

func (fm *FeedbackManager) play(sound SoundType) {
	if fm.audio != nil {
		fm.audio.Play(sound)
	}
}

// Toasts returns the toast manager.
func (fm *FeedbackManager) Toasts() *ToastManager {
	return fm.toasts
}
