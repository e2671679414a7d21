package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/ArowuTest/ticket-ledger/internal/ledger"
	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/repositories"
)

type reportService struct {
	reports repositories.ReportRepository
	rosters repositories.RosterRepository
	results ResultService
	engine  *ledger.Engine
}

// NewReportService creates a new ReportService implementation
func NewReportService(
	reports repositories.ReportRepository,
	rosters repositories.RosterRepository,
	results ResultService,
	engine *ledger.Engine,
) ReportService {
	return &reportService{
		reports: reports,
		rosters: rosters,
		results: results,
		engine:  engine,
	}
}

// ListReports returns saved reports newest first, limited to one date when date is set
func (s *reportService) ListReports(ctx context.Context, date string) ([]ReportOverview, error) {
	if date != "" {
		d, err := parseDate(date)
		if err != nil {
			return nil, err
		}
		date = d
	}

	reports, err := s.reports.List(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	overviews := make([]ReportOverview, 0, len(reports))
	for _, r := range reports {
		overviews = append(overviews, ReportOverview{
			Date:        r.Date,
			Slot:        r.Slot,
			ResultLabel: r.Slot.ResultLabel(),
			Customers:   customerNames(r.Rows),
			Rows:        len(r.Rows),
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return overviews, nil
}

func (s *reportService) ListDates(ctx context.Context) ([]string, error) {
	dates, err := s.reports.ListDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list report dates: %w", err)
	}
	return dates, nil
}

// GetReport loads a saved report and reconciles it against the draw's current result
func (s *reportService) GetReport(ctx context.Context, date, slot string) (*ReportDetail, error) {
	report, err := s.load(ctx, date, slot)
	if err != nil {
		return nil, err
	}
	return &ReportDetail{
		Report:    report,
		Summary:   ledger.Summarize(report.Rows),
		Customers: ledger.SummarizeByCustomer(report.Rows),
	}, nil
}

// CustomerReport returns the rows of one customer next to the totals of the whole draw
func (s *reportService) CustomerReport(ctx context.Context, date, slot, name string) (*CustomerReport, error) {
	report, err := s.load(ctx, date, slot)
	if err != nil {
		return nil, err
	}

	var rows []models.SaleRow
	for _, r := range report.Rows {
		if r.CustomerName == name {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrCustomerNotFound, name)
	}

	out := &CustomerReport{
		Date:         report.Date,
		Slot:         report.Slot,
		CustomerName: name,
		Rows:         make([]CustomerReportRow, 0, len(rows)),
		Customer: ledger.CustomerSummary{
			CustomerName: name,
			Rows:         len(rows),
			Summary:      ledger.Summarize(rows),
		},
		Draw: ledger.Summarize(report.Rows),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, CustomerReportRow{
			SaleRow:   r,
			SoldLines: ledger.SoldLines(r.SoldTickets, ledger.SoldNumbersPerLine),
		})
	}
	return out, nil
}

// DeleteAll removes every saved report and roster. Results are kept.
func (s *reportService) DeleteAll(ctx context.Context) error {
	if err := s.reports.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete reports: %w", err)
	}
	if err := s.rosters.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete rosters: %w", err)
	}
	log.Warn("All reports and rosters deleted")
	return nil
}

func (s *reportService) load(ctx context.Context, date, slot string) (*models.Report, error) {
	key, err := parseDrawKey(date, slot)
	if err != nil {
		return nil, err
	}
	report, err := s.reports.Get(ctx, key.Date, key.Slot)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s %s", ErrReportNotFound, key.Date, key.Slot)
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	winners, err := s.results.WinningNumbers(ctx, key.Date, key.Slot)
	if err != nil {
		return nil, err
	}
	report = report.Clone()
	s.engine.ReconcileAll(report.Rows, winners)
	return report, nil
}

// customerNames returns the distinct customer names of rows, sorted
func customerNames(rows []models.SaleRow) []string {
	seen := make(map[string]struct{}, len(rows))
	names := []string{}
	for _, r := range rows {
		if _, ok := seen[r.CustomerName]; ok {
			continue
		}
		seen[r.CustomerName] = struct{}{}
		names = append(names, r.CustomerName)
	}
	sort.Strings(names)
	return names
}
