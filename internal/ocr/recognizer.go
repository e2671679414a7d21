package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ArowuTest/ticket-ledger/internal/models"
)

// Recognizer reads the text printed in an image
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
}

// TesseractRecognizer runs the tesseract command line tool, streaming the crop as PNG on stdin
type TesseractRecognizer struct {
	Path     string
	Language string
}

// NewTesseractRecognizer returns a recognizer for the binary at path
func NewTesseractRecognizer(path, language string) *TesseractRecognizer {
	if language == "" {
		language = "eng"
	}
	return &TesseractRecognizer{Path: path, Language: language}
}

// Recognize implements Recognizer
func (t *TesseractRecognizer) Recognize(ctx context.Context, img image.Image) (string, error) {
	var in bytes.Buffer
	if err := png.Encode(&in, img); err != nil {
		return "", fmt.Errorf("failed to encode crop: %w", err)
	}

	var out, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, t.Path, "stdin", "stdout", "-l", t.Language)
	cmd.Stdin = &in
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return out.String(), nil
}

// BoxText is the recognized text of one crop region
type BoxText struct {
	BoxID    string               `json:"boxId"`
	Category models.PrizeCategory `json:"category"`
	Text     string               `json:"text"`
}

// RecognizeRegions crops every region out of img and recognizes it. A box that fails yields
// ErrorText instead of aborting the others.
func RecognizeRegions(ctx context.Context, img image.Image, regions []models.CropRegion, rec Recognizer) []BoxText {
	out := make([]BoxText, 0, len(regions))
	for _, region := range regions {
		box := BoxText{BoxID: region.BoxID, Category: region.Category}

		rect := CropRect(img.Bounds(), region)
		if rect.Empty() {
			log.WithFields(log.Fields{"boxId": region.BoxID}).Warn("Crop region lies outside the image")
			box.Text = ErrorText
			out = append(out, box)
			continue
		}

		text, err := rec.Recognize(ctx, CropAndScale(img, rect, UpscaleFactor))
		if err != nil {
			log.WithFields(log.Fields{
				"boxId":    region.BoxID,
				"category": region.Category,
				"error":    err,
			}).Warn("OCR failed for crop region")
			text = ErrorText
		}
		box.Text = text
		out = append(out, box)
	}
	return out
}
