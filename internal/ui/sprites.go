// Package ui implements the chessboard front end using Ebitengine.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png" // register the decoder for sprite directories
	"io/fs"
	"os"

	"github.com/hailam/dragboard/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// svgRenderScale renders SVG sprites at 3x for sharp downscaling.
const svgRenderScale = 3.0

// SpriteSet holds one image per piece. It is filled once and read-only after.
type SpriteSet struct {
	pieces map[board.Piece]*ebiten.Image
	size   int // Display size in pixels
}

// LoadEmbeddedSprites rasterizes the built-in SVG pieces for the given cell size.
func LoadEmbeddedSprites(size int) (*SpriteSet, error) {
	sub, err := fs.Sub(pieceAssets, "assets/pieces")
	if err != nil {
		return nil, err
	}
	return loadSpriteSet(sub, ".svg", size)
}

// LoadSpriteDir loads <code>.png sprites (e.g. wp.png, bK.png) from dir.
func LoadSpriteDir(dir string, size int) (*SpriteSet, error) {
	return loadSpriteSet(os.DirFS(dir), ".png", size)
}

func loadSpriteSet(fsys fs.FS, ext string, size int) (*SpriteSet, error) {
	sources, err := decodeSprites(fsys, ext, int(float64(size)*svgRenderScale))
	if err != nil {
		return nil, err
	}

	ss := &SpriteSet{
		pieces: make(map[board.Piece]*ebiten.Image, len(sources)),
		size:   size,
	}
	for piece, img := range sources {
		ss.pieces[piece] = ebiten.NewImageFromImage(img)
	}
	return ss, nil
}

// decodeSprites reads <code><ext> for every piece. All failures are reported together.
func decodeSprites(fsys fs.FS, ext string, renderSize int) (map[board.Piece]image.Image, error) {
	out := make(map[board.Piece]image.Image, len(board.AllPieces))
	var result *multierror.Error

	for _, piece := range board.AllPieces {
		name := piece.Code() + ext
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("read sprite %s: %w", name, err))
			continue
		}

		img, err := decodeSprite(data, ext, renderSize)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("decode sprite %s: %w", name, err))
			continue
		}
		out[piece] = img
	}

	return out, result.ErrorOrNil()
}

func decodeSprite(data []byte, ext string, renderSize int) (image.Image, error) {
	if ext != ".svg" {
		img, _, err := image.Decode(bytes.NewReader(data))
		return img, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// Get returns the sprite for a piece, nil if there is none.
func (ss *SpriteSet) Get(p board.Piece) *ebiten.Image {
	return ss.pieces[p]
}

// DrawPieceAt draws a piece with its top-left corner at the given pixel coordinates.
func (ss *SpriteSet) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	if p == board.NoPiece {
		return
	}
	sprite := ss.Get(p)
	if sprite == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	// Scale from source resolution to cell size
	scale := float64(ss.size) / float64(sprite.Bounds().Dx())
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the display size of the sprites.
func (ss *SpriteSet) Size() int {
	return ss.size
}
