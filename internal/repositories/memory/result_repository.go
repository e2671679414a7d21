package memory

import (
	"context"
	"sort"
	"time"

	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/repositories"
)

type resultRepository struct {
	store *Store
}

func (r *resultRepository) Get(_ context.Context, date string, slot models.DrawSlot) (*models.WinningResult, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result, ok := r.store.results[models.ReportKey{Date: date, Slot: slot}]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return result.Clone(), nil
}

func (r *resultRepository) Save(_ context.Context, result *models.WinningResult) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	key := models.ReportKey{Date: result.Date, Slot: result.Slot}
	result.SlotOrder = result.Slot.Order()
	result.UpdatedAt = now
	if existing, ok := r.store.results[key]; ok {
		result.CreatedAt = existing.CreatedAt
	} else {
		result.CreatedAt = now
	}
	r.store.results[key] = result.Clone()
	return nil
}

func (r *resultRepository) ListByDate(_ context.Context, date string) ([]*models.WinningResult, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	results := []*models.WinningResult{}
	for key, result := range r.store.results {
		if key.Date == date {
			results = append(results, result.Clone())
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Slot.Order() < results[j].Slot.Order()
	})
	return results, nil
}

func (r *resultRepository) ListDates(_ context.Context) ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	seen := make(map[string]struct{})
	for key := range r.store.results {
		seen[key.Date] = struct{}{}
	}
	return sortedDatesDesc(seen), nil
}

func (r *resultRepository) Delete(_ context.Context, date string, slot models.DrawSlot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := models.ReportKey{Date: date, Slot: slot}
	if _, ok := r.store.results[key]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.store.results, key)
	return nil
}
