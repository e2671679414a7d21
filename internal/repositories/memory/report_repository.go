package memory

import (
	"context"
	"sort"
	"time"

	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/repositories"
)

type reportRepository struct {
	store *Store
}

func (r *reportRepository) Get(_ context.Context, date string, slot models.DrawSlot) (*models.Report, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	report, ok := r.store.reports[models.ReportKey{Date: date, Slot: slot}]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return report.Clone(), nil
}

func (r *reportRepository) Save(_ context.Context, report *models.Report) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	key := report.Key()
	report.SlotOrder = report.Slot.Order()
	report.UpdatedAt = now
	if existing, ok := r.store.reports[key]; ok {
		report.CreatedAt = existing.CreatedAt
	} else {
		report.CreatedAt = now
	}
	r.store.reports[key] = report.Clone()
	return nil
}

func (r *reportRepository) List(_ context.Context, date string) ([]*models.Report, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reports := []*models.Report{}
	for key, report := range r.store.reports {
		if date != "" && key.Date != date {
			continue
		}
		reports = append(reports, report.Clone())
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Key().After(reports[j].Key())
	})
	return reports, nil
}

func (r *reportRepository) ListDates(_ context.Context) ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	seen := make(map[string]struct{})
	for key := range r.store.reports {
		seen[key.Date] = struct{}{}
	}
	return sortedDatesDesc(seen), nil
}

func (r *reportRepository) Latest(_ context.Context) (*models.Report, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var latest *models.Report
	for _, report := range r.store.reports {
		if latest == nil || report.Key().After(latest.Key()) {
			latest = report
		}
	}
	if latest == nil {
		return nil, repositories.ErrNotFound
	}
	return latest.Clone(), nil
}

func (r *reportRepository) DeleteAll(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.reports = make(map[models.ReportKey]*models.Report)
	return nil
}
