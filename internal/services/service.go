package services

import (
	"context"
	"image"
	"io"
	"time"

	"github.com/ArowuTest/ticket-ledger/internal/ledger"
	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/ocr"
)

// SessionService defines the operations on an operator's open sheet
type SessionService interface {
	// Open starts a session for a draw, loading its saved report, carrying the latest report
	// forward or seeding the day's roster
	Open(ctx context.Context, date, slot string) (*models.Session, error)
	// OpenLatest starts a session on the most recently saved report
	OpenLatest(ctx context.Context) (*models.Session, error)
	Get(ctx context.Context, id string) (*models.Session, error)
	Close(ctx context.Context, id string) error

	ChangeSlot(ctx context.Context, id, slot string) (*models.Session, error)
	AddRow(ctx context.Context, id string, req models.AddRowRequest) (*models.Session, error)
	UpdateRow(ctx context.Context, id string, index int, patch models.RowPatch) (*models.Session, error)
	DeleteRow(ctx context.Context, id string, index int) (*models.Session, error)
	DeleteCustomer(ctx context.Context, id, name string) (*models.Session, error)

	Summary(ctx context.Context, id string) (*SheetSummary, error)
	SearchUnsold(ctx context.Context, id string, req models.SearchUnsoldRequest) ([]models.UnsoldMatch, error)
	// Save overwrites the draw's report and merges its customers into the day's roster
	Save(ctx context.Context, id string) (*models.Report, error)
}

// ReportService defines the read side of saved reports
type ReportService interface {
	ListReports(ctx context.Context, date string) ([]ReportOverview, error)
	ListDates(ctx context.Context) ([]string, error)
	GetReport(ctx context.Context, date, slot string) (*ReportDetail, error)
	CustomerReport(ctx context.Context, date, slot, name string) (*CustomerReport, error)
	DeleteAll(ctx context.Context) error
}

// ResultService defines the operations on draw result sheets
type ResultService interface {
	Save(ctx context.Context, date, slot string, prizes []models.PrizeResult) (*models.WinningResult, error)
	Get(ctx context.Context, date, slot string) (*models.WinningResult, error)
	ListByDate(ctx context.Context, date string) ([]*models.WinningResult, error)
	ListDates(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, date, slot string) error
	// WinningNumbers returns the draw's winning suffixes; a draw without a result has none
	WinningNumbers(ctx context.Context, date string, slot models.DrawSlot) (*ledger.WinningNumbers, error)
	ExtractFromText(texts []ocr.BoxText) ([]models.PrizeResult, error)
	ExportCSV(ctx context.Context, w io.Writer, date, slot string) error
	// ImportCSV saves a sheet read from CSV; date and slot fill in when the file omits them
	ImportCSV(ctx context.Context, r io.Reader, date, slot string) (*models.WinningResult, error)
}

// OCRService defines crop region management and image extraction
type OCRService interface {
	CropRegions(ctx context.Context) ([]models.CropRegion, error)
	UpdateCropRegion(ctx context.Context, region models.CropRegion) (*models.CropRegion, error)
	ExtractImage(ctx context.Context, img image.Image) (*Extraction, error)
}

// AuthService defines operator authentication
type AuthService interface {
	EnsureOperator(ctx context.Context, email, password string) error
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

// SheetSummary totals a session's rows
type SheetSummary struct {
	Date      string                   `json:"date"`
	Slot      models.DrawSlot          `json:"slot"`
	Summary   ledger.Summary           `json:"summary"`
	Customers []ledger.CustomerSummary `json:"customers"`
}

// ReportOverview is one entry of the report list
type ReportOverview struct {
	Date        string          `json:"date"`
	Slot        models.DrawSlot `json:"slot"`
	ResultLabel string          `json:"resultLabel"`
	Customers   []string        `json:"customers"`
	Rows        int             `json:"rows"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ReportDetail is a saved report recomputed against the current result
type ReportDetail struct {
	Report    *models.Report           `json:"report"`
	Summary   ledger.Summary           `json:"summary"`
	Customers []ledger.CustomerSummary `json:"customers"`
}

// CustomerReport is one customer's share of a draw next to the whole draw's totals
type CustomerReport struct {
	Date         string                 `json:"date"`
	Slot         models.DrawSlot        `json:"slot"`
	CustomerName string                 `json:"customerName"`
	Rows         []CustomerReportRow    `json:"rows"`
	Customer     ledger.CustomerSummary `json:"customer"`
	Draw         ledger.Summary         `json:"draw"`
}

// CustomerReportRow is a row with its sold tickets laid out for printing
type CustomerReportRow struct {
	models.SaleRow
	SoldLines []string `json:"soldLines"`
}

// Extraction is the outcome of reading a result sheet image
type Extraction struct {
	Boxes  []ocr.BoxText        `json:"boxes"`
	Prizes []models.PrizeResult `json:"prizes"`
}
