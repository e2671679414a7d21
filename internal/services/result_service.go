package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ArowuTest/ticket-ledger/internal/ledger"
	"github.com/ArowuTest/ticket-ledger/internal/metrics"
	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/ocr"
	"github.com/ArowuTest/ticket-ledger/internal/repositories"
	"github.com/ArowuTest/ticket-ledger/internal/utils"
)

type resultService struct {
	repo repositories.ResultRepository
}

// NewResultService creates a new ResultService implementation
func NewResultService(repo repositories.ResultRepository) ResultService {
	return &resultService{repo: repo}
}

// Save stores a complete result sheet for the draw; categories missing from prizes are
// recorded without numbers
func (s *resultService) Save(ctx context.Context, date, slot string, prizes []models.PrizeResult) (*models.WinningResult, error) {
	key, err := parseDrawKey(date, slot)
	if err != nil {
		return nil, err
	}
	normalized, err := normalizePrizes(prizes)
	if err != nil {
		return nil, err
	}

	result := &models.WinningResult{Date: key.Date, Slot: key.Slot, Prizes: normalized}
	if err := s.repo.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	log.WithFields(log.Fields{
		"date": result.Date,
		"slot": result.Slot,
	}).Info("Draw result saved")
	return result, nil
}

func (s *resultService) Get(ctx context.Context, date, slot string) (*models.WinningResult, error) {
	key, err := parseDrawKey(date, slot)
	if err != nil {
		return nil, err
	}
	result, err := s.repo.Get(ctx, key.Date, key.Slot)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s %s", ErrResultNotFound, key.Date, key.Slot)
		}
		return nil, fmt.Errorf("failed to load result: %w", err)
	}
	return withDefaultAmounts(result), nil
}

func (s *resultService) ListByDate(ctx context.Context, date string) ([]*models.WinningResult, error) {
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	results, err := s.repo.ListByDate(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	for i := range results {
		results[i] = withDefaultAmounts(results[i])
	}
	return results, nil
}

func (s *resultService) ListDates(ctx context.Context) ([]string, error) {
	dates, err := s.repo.ListDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list result dates: %w", err)
	}
	return dates, nil
}

func (s *resultService) Delete(ctx context.Context, date, slot string) error {
	key, err := parseDrawKey(date, slot)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, key.Date, key.Slot); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: %s %s", ErrResultNotFound, key.Date, key.Slot)
		}
		return fmt.Errorf("failed to delete result: %w", err)
	}
	log.WithFields(log.Fields{"date": key.Date, "slot": key.Slot}).Info("Draw result deleted")
	return nil
}

func (s *resultService) WinningNumbers(ctx context.Context, date string, slot models.DrawSlot) (*ledger.WinningNumbers, error) {
	result, err := s.repo.Get(ctx, date, slot)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ledger.NewWinningNumbers(nil), nil
		}
		return nil, fmt.Errorf("failed to load result: %w", err)
	}
	return ledger.NewWinningNumbers(withDefaultAmounts(result).Prizes), nil
}

// ExtractFromText applies the per-category number patterns to recognized box texts
func (s *resultService) ExtractFromText(texts []ocr.BoxText) ([]models.PrizeResult, error) {
	prizes := make([]models.PrizeResult, 0, len(texts))
	for _, t := range texts {
		if !t.Category.Valid() {
			continue
		}
		prizes = append(prizes, models.PrizeResult{
			Category: t.Category,
			Numbers:  ocr.ExtractNumbers(t.Category, t.Text),
		})
	}
	normalized, err := normalizePrizes(prizes)
	metrics.RecordExtraction("text", err == nil && len(texts) > 0)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize extracted prizes: %w", err)
	}
	return normalized, nil
}

func (s *resultService) ExportCSV(ctx context.Context, w io.Writer, date, slot string) error {
	result, err := s.Get(ctx, date, slot)
	if err != nil {
		return err
	}
	return utils.WriteResultsCSV(w, result)
}

func (s *resultService) ImportCSV(ctx context.Context, r io.Reader, date, slot string) (*models.WinningResult, error) {
	parsed, err := utils.ReadResultsCSV(r)
	if err != nil {
		return nil, err
	}
	if parsed.Date != "" {
		date = parsed.Date
	}
	if parsed.Slot != "" {
		slot = string(parsed.Slot)
	}
	return s.Save(ctx, date, slot, parsed.Prizes)
}

// normalizePrizes returns one row per category in sheet order, filling blank amounts with the
// printed defaults and blank numbers with models.NoNumbers. A later row for a category
// replaces an earlier one.
func normalizePrizes(prizes []models.PrizeResult) ([]models.PrizeResult, error) {
	byCategory := make(map[models.PrizeCategory]models.PrizeResult, len(prizes))
	for _, p := range prizes {
		p.Category = models.PrizeCategory(strings.TrimSpace(string(p.Category)))
		if !p.Category.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, p.Category)
		}
		p.Amount = strings.TrimSpace(p.Amount)
		p.Numbers = strings.TrimSpace(p.Numbers)
		byCategory[p.Category] = p
	}

	out := make([]models.PrizeResult, 0, len(models.PrizeCategories))
	for _, category := range models.PrizeCategories {
		p, ok := byCategory[category]
		if !ok {
			p = models.PrizeResult{Category: category}
		}
		if p.Amount == "" {
			p.Amount = category.DefaultAmount()
		}
		if p.Numbers == "" {
			p.Numbers = models.NoNumbers
		}
		out = append(out, p)
	}
	return out, nil
}

// withDefaultAmounts fills amounts missing from sheets saved before amounts were recorded
func withDefaultAmounts(result *models.WinningResult) *models.WinningResult {
	for i, p := range result.Prizes {
		if strings.TrimSpace(p.Amount) == "" {
			result.Prizes[i].Amount = p.Category.DefaultAmount()
		}
	}
	return result
}
