package capture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestShrink(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 200))

	got := Shrink(img, 100)
	assert.Equal(t, 100, got.Bounds().Dx())
	assert.Equal(t, 50, got.Bounds().Dy())

	assert.Same(t, img, Shrink(img, 800))
	assert.Same(t, img, Shrink(img, 0))
}

func TestSave(t *testing.T) {
	out := filepath.Join(t.TempDir(), "final.png")

	size, err := Save(testPNG(t, 320, 160), out, Options{MaxWidth: 160})
	require.NoError(t, err)
	assert.Positive(t, size)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 160, cfg.Width)
	assert.Equal(t, 80, cfg.Height)
}

func TestSaveRejectsNonPNG(t *testing.T) {
	_, err := Save([]byte("not an image"), filepath.Join(t.TempDir(), "x.png"), Options{})
	assert.Error(t, err)
}
