package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/hailam/dragboard/internal/board"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hasOpaquePixel(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				return true
			}
		}
	}
	return false
}

func TestEmbeddedSpritesDecode(t *testing.T) {
	sub, err := fs.Sub(pieceAssets, "assets/pieces")
	require.NoError(t, err)

	sources, err := decodeSprites(sub, ".svg", 48)
	require.NoError(t, err)
	require.Len(t, sources, 12)

	for _, piece := range board.AllPieces {
		img, ok := sources[piece]
		require.True(t, ok, piece.Code())
		assert.Equal(t, image.Rect(0, 0, 48, 48), img.Bounds(), piece.Code())
		assert.True(t, hasOpaquePixel(img), piece.Code())
	}
}

func TestSpriteErrorsAreAggregated(t *testing.T) {
	fsys := fstest.MapFS{
		"wp.svg": {Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 45 45"><circle cx="22" cy="22" r="10"/></svg>`)},
	}

	sources, err := decodeSprites(fsys, ".svg", 16)
	require.Error(t, err)
	assert.Len(t, sources, 1)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 11)
	assert.Contains(t, err.Error(), "bK.svg")
}

func TestPNGSpritesDecode(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.Set(1, 1, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	fsys := fstest.MapFS{}
	for _, piece := range board.AllPieces {
		fsys[piece.Code()+".png"] = &fstest.MapFile{Data: buf.Bytes()}
	}

	sources, err := decodeSprites(fsys, ".png", 64)
	require.NoError(t, err)
	require.Len(t, sources, 12)
	assert.Equal(t, image.Rect(0, 0, 4, 4), sources[board.BlackQueen].Bounds())
}

func TestCorruptPNGIsReported(t *testing.T) {
	fsys := fstest.MapFS{"wK.png": {Data: []byte("not a png")}}

	_, err := decodeSprites(fsys, ".png", 64)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode sprite wK.png")
}
