// Package memory keeps every repository in process memory. It backs single-operator local
// runs (storage driver "memory") and the service tests.
package memory

import (
	"sort"
	"sync"

	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/repositories"
)

// Store holds the documents of all repositories. Values are copied on the way in and out.
type Store struct {
	mu        sync.RWMutex
	reports   map[models.ReportKey]*models.Report
	results   map[models.ReportKey]*models.WinningResult
	rosters   map[string]*models.Roster
	regions   map[string]models.CropRegion
	operators map[string]*models.Operator
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{
		reports:   make(map[models.ReportKey]*models.Report),
		results:   make(map[models.ReportKey]*models.WinningResult),
		rosters:   make(map[string]*models.Roster),
		regions:   make(map[string]models.CropRegion),
		operators: make(map[string]*models.Operator),
	}
}

// Reports returns the report repository backed by s
func (s *Store) Reports() repositories.ReportRepository { return &reportRepository{s} }

// Results returns the result repository backed by s
func (s *Store) Results() repositories.ResultRepository { return &resultRepository{s} }

// Rosters returns the roster repository backed by s
func (s *Store) Rosters() repositories.RosterRepository { return &rosterRepository{s} }

// CropRegions returns the crop region repository backed by s
func (s *Store) CropRegions() repositories.CropRegionRepository { return &cropRegionRepository{s} }

// Operators returns the operator repository backed by s
func (s *Store) Operators() repositories.OperatorRepository { return &operatorRepository{s} }

func sortedDatesDesc(seen map[string]struct{}) []string {
	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}
