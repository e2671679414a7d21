package repositories

import (
	"context"
	"errors"

	"github.com/ArowuTest/ticket-ledger/internal/models"
)

// ErrNotFound is returned when the requested document does not exist
var ErrNotFound = errors.New("not found")

// ReportRepository defines the interface for saved draw reports
type ReportRepository interface {
	Get(ctx context.Context, date string, slot models.DrawSlot) (*models.Report, error)
	// Save overwrites the report stored under the report's (date, slot)
	Save(ctx context.Context, report *models.Report) error
	// List returns reports newest first, limited to date when it is not empty
	List(ctx context.Context, date string) ([]*models.Report, error)
	ListDates(ctx context.Context) ([]string, error)
	// Latest returns the most recent report by date then slot order
	Latest(ctx context.Context) (*models.Report, error)
	DeleteAll(ctx context.Context) error
}

// ResultRepository defines the interface for draw result sheets
type ResultRepository interface {
	Get(ctx context.Context, date string, slot models.DrawSlot) (*models.WinningResult, error)
	Save(ctx context.Context, result *models.WinningResult) error
	ListByDate(ctx context.Context, date string) ([]*models.WinningResult, error)
	ListDates(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, date string, slot models.DrawSlot) error
}

// RosterRepository defines the interface for the per-day customer rosters
type RosterRepository interface {
	Get(ctx context.Context, date string) (*models.Roster, error)
	Save(ctx context.Context, roster *models.Roster) error
	DeleteAll(ctx context.Context) error
}

// CropRegionRepository defines the interface for OCR crop regions
type CropRegionRepository interface {
	FindAll(ctx context.Context) ([]models.CropRegion, error)
	Upsert(ctx context.Context, region models.CropRegion) error
}

// OperatorRepository defines the interface for operator accounts
type OperatorRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Operator, error)
	Create(ctx context.Context, operator *models.Operator) error
}
