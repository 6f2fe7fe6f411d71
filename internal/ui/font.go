package ui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const toastFontSize = 14.0

var regularFace *text.GoTextFace

// LoadFonts prepares the toast font. Call once before the first Draw.
func LoadFonts() error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load regular font: %w", err)
	}
	regularFace = &text.GoTextFace{
		Source: source,
		Size:   toastFontSize,
	}
	return nil
}

// GetRegularFace returns the regular font face, nil before LoadFonts.
func GetRegularFace() *text.GoTextFace {
	return regularFace
}

// MeasureText returns the width and height of the given text.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
