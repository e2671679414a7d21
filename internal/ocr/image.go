package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/ArowuTest/ticket-ledger/internal/models"
)

// UpscaleFactor enlarges every crop before recognition
const UpscaleFactor = 2

// MaxImagePixels bounds the declared size of a decoded result sheet
const MaxImagePixels = 40_000_000

// ErrImageTooLarge is returned for images whose header declares more than MaxImagePixels pixels
var ErrImageTooLarge = errors.New("image dimensions are too large")

// DecodeImage decodes a PNG, JPEG, GIF or WebP result sheet. The header is checked against
// MaxImagePixels before any pixel data is decoded.
func DecodeImage(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// CropRect converts a percentage region into pixels of bounds, clamped to the image
func CropRect(bounds image.Rectangle, region models.CropRegion) image.Rectangle {
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	x0 := bounds.Min.X + int(math.Round(region.Left/100*w))
	y0 := bounds.Min.Y + int(math.Round(region.Top/100*h))
	x1 := x0 + int(math.Round(region.Width/100*w))
	y1 := y0 + int(math.Round(region.Height/100*h))
	return image.Rect(x0, y0, x1, y1).Intersect(bounds)
}

// CropAndScale copies rect out of img enlarged by factor using Catmull-Rom resampling
func CropAndScale(img image.Image, rect image.Rectangle, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx()*factor, rect.Dy()*factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, rect, xdraw.Src, nil)
	return dst
}
