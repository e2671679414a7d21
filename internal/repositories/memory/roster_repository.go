package memory

import (
	"context"
	"slices"
	"time"

	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/repositories"
)

type rosterRepository struct {
	store *Store
}

func (r *rosterRepository) Get(_ context.Context, date string) (*models.Roster, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	roster, ok := r.store.rosters[date]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	c := *roster
	c.Entries = slices.Clone(roster.Entries)
	return &c, nil
}

func (r *rosterRepository) Save(_ context.Context, roster *models.Roster) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	roster.UpdatedAt = time.Now()
	c := *roster
	c.Entries = slices.Clone(roster.Entries)
	r.store.rosters[roster.Date] = &c
	return nil
}

func (r *rosterRepository) DeleteAll(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.rosters = make(map[string]*models.Roster)
	return nil
}
