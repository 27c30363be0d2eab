// Package capture writes a downscaled PNG of the final browser state.
package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/nfnt/resize"
)

// Options configures the saved image
type Options struct {
	MaxWidth uint
}

// Save decodes a PNG screenshot, shrinks it to MaxWidth keeping the aspect
// ratio and writes it to outputPath. It returns the written size in bytes.
func Save(data []byte, outputPath string, opts Options) (int64, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("failed to decode screenshot: %w", err)
	}

	img = Shrink(img, opts.MaxWidth)

	f, err := os.Create(outputPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return 0, err
	}

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Shrink scales img down to maxWidth. Images already narrow enough, or a
// zero maxWidth, are returned unchanged.
func Shrink(img image.Image, maxWidth uint) image.Image {
	bounds := img.Bounds()
	if maxWidth == 0 || uint(bounds.Dx()) <= maxWidth {
		return img
	}
	// height 0 keeps the aspect ratio
	return resize.Resize(maxWidth, 0, img, resize.Lanczos3)
}
