package services

import (
	"context"
	"fmt"
	"image"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ArowuTest/ticket-ledger/internal/metrics"
	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/ocr"
	"github.com/ArowuTest/ticket-ledger/internal/repositories"
)

type ocrService struct {
	regions    repositories.CropRegionRepository
	results    ResultService
	recognizer ocr.Recognizer
}

// NewOCRService creates a new OCRService implementation. A nil recognizer disables image
// extraction while crop regions stay editable.
func NewOCRService(regions repositories.CropRegionRepository, results ResultService, recognizer ocr.Recognizer) OCRService {
	return &ocrService{
		regions:    regions,
		results:    results,
		recognizer: recognizer,
	}
}

// CropRegions returns the five regions, stored adjustments taking precedence over defaults
func (s *ocrService) CropRegions(ctx context.Context) ([]models.CropRegion, error) {
	stored, err := s.regions.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load crop regions: %w", err)
	}
	byBox := make(map[string]models.CropRegion, len(stored))
	for _, r := range stored {
		byBox[r.BoxID] = r
	}

	regions := models.DefaultCropRegions()
	for i, def := range regions {
		if r, ok := byBox[def.BoxID]; ok {
			r.Category = def.Category
			regions[i] = r
		}
	}
	return regions, nil
}

func (s *ocrService) UpdateCropRegion(ctx context.Context, region models.CropRegion) (*models.CropRegion, error) {
	var def *models.CropRegion
	for _, r := range models.DefaultCropRegions() {
		if r.BoxID == region.BoxID {
			r := r
			def = &r
			break
		}
	}
	if def == nil {
		return nil, fmt.Errorf("%w: unknown box %q", ErrInvalidCropRegion, region.BoxID)
	}
	if !region.Valid() {
		return nil, fmt.Errorf("%w: %s must lie within the image", ErrInvalidCropRegion, region.BoxID)
	}

	region.Category = def.Category
	if err := s.regions.Upsert(ctx, region); err != nil {
		return nil, fmt.Errorf("failed to save crop region: %w", err)
	}
	log.WithFields(log.Fields{"boxId": region.BoxID, "category": region.Category}).Info("Crop region updated")
	return &region, nil
}

// ExtractImage recognizes every crop region of a result sheet image and turns the text into prizes.
// Nothing is saved.
func (s *ocrService) ExtractImage(ctx context.Context, img image.Image) (*Extraction, error) {
	if s.recognizer == nil {
		return nil, ErrRecognizerUnavailable
	}
	regions, err := s.CropRegions(ctx)
	if err != nil {
		return nil, err
	}

	boxes := ocr.RecognizeRegions(ctx, img, regions, s.recognizer)
	prizes, err := s.results.ExtractFromText(boxes)
	metrics.RecordExtraction("image", err == nil && recognizedAny(boxes))
	if err != nil {
		return nil, err
	}
	return &Extraction{
		Boxes:  boxes,
		Prizes: prizes,
	}, nil
}

func recognizedAny(boxes []ocr.BoxText) bool {
	for _, b := range boxes {
		if strings.TrimSpace(b.Text) != "" {
			return true
		}
	}
	return false
}
