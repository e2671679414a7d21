package memory

import (
	"context"
	"sort"

	"github.com/ArowuTest/ticket-ledger/internal/models"
)

type cropRegionRepository struct {
	store *Store
}

func (r *cropRegionRepository) FindAll(_ context.Context) ([]models.CropRegion, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	regions := make([]models.CropRegion, 0, len(r.store.regions))
	for _, region := range r.store.regions {
		regions = append(regions, region)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].BoxID < regions[j].BoxID })
	return regions, nil
}

func (r *cropRegionRepository) Upsert(_ context.Context, region models.CropRegion) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.regions[region.BoxID] = region
	return nil
}
