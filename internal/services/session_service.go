package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ArowuTest/ticket-ledger/internal/ledger"
	"github.com/ArowuTest/ticket-ledger/internal/metrics"
	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/repositories"
)

type sessionService struct {
	store   *SessionStore
	reports repositories.ReportRepository
	rosters repositories.RosterRepository
	results ResultService
	engine  *ledger.Engine
}

// NewSessionService creates a new SessionService implementation
func NewSessionService(
	store *SessionStore,
	reports repositories.ReportRepository,
	rosters repositories.RosterRepository,
	results ResultService,
	engine *ledger.Engine,
) SessionService {
	return &sessionService{
		store:   store,
		reports: reports,
		rosters: rosters,
		results: results,
		engine:  engine,
	}
}

func (s *sessionService) Open(ctx context.Context, date, slot string) (*models.Session, error) {
	key, err := parseDrawKey(date, slot)
	if err != nil {
		return nil, err
	}
	rows, source, err := s.initialRows(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := s.reconcile(ctx, key, rows); err != nil {
		return nil, err
	}

	session := s.store.Create(key.Date, key.Slot, rows)
	log.WithFields(log.Fields{
		"sessionId": session.ID,
		"date":      key.Date,
		"slot":      key.Slot,
		"source":    source,
		"rows":      len(rows),
	}).Info("Session opened")
	return session, nil
}

func (s *sessionService) OpenLatest(ctx context.Context) (*models.Session, error) {
	latest, err := s.reports.Latest(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to load latest report: %w", err)
	}

	key := latest.Key()
	rows := sourceRows(latest.Rows)
	if err := s.reconcile(ctx, key, rows); err != nil {
		return nil, err
	}
	session := s.store.Create(key.Date, key.Slot, rows)
	log.WithFields(log.Fields{"sessionId": session.ID, "date": key.Date, "slot": key.Slot}).Info("Session opened on latest report")
	return session, nil
}

// initialRows picks the rows a new session starts with: the draw's own saved report, else the
// latest report's input when the date is past it, else the day's roster with empty input
func (s *sessionService) initialRows(ctx context.Context, key models.ReportKey) ([]models.SaleRow, string, error) {
	report, err := s.reports.Get(ctx, key.Date, key.Slot)
	if err == nil {
		return sourceRows(report.Rows), "report", nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to load report: %w", err)
	}

	latest, err := s.reports.Latest(ctx)
	switch {
	case err == nil && key.Date > latest.Date:
		return sourceRows(latest.Rows), "carry-forward", nil
	case err != nil && !errors.Is(err, repositories.ErrNotFound):
		return nil, "", fmt.Errorf("failed to load latest report: %w", err)
	}

	roster, err := s.rosters.Get(ctx, key.Date)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return []models.SaleRow{}, "empty", nil
		}
		return nil, "", fmt.Errorf("failed to load roster: %w", err)
	}
	rows := make([]models.SaleRow, 0, len(roster.Entries))
	for _, e := range roster.Entries {
		rows = append(rows, models.SaleRow{CustomerName: e.CustomerName, Multiplier: e.Multiplier})
	}
	return rows, "roster", nil
}

func sourceRows(rows []models.SaleRow) []models.SaleRow {
	out := make([]models.SaleRow, len(rows))
	for i, r := range rows {
		out[i] = r.Source()
	}
	return out
}

func (s *sessionService) reconcile(ctx context.Context, key models.ReportKey, rows []models.SaleRow) error {
	winners, err := s.results.WinningNumbers(ctx, key.Date, key.Slot)
	if err != nil {
		return err
	}
	s.engine.ReconcileAll(rows, winners)
	return nil
}

func (s *sessionService) reconcileRow(ctx context.Context, session *models.Session, index int) error {
	winners, err := s.results.WinningNumbers(ctx, session.Date, session.Slot)
	if err != nil {
		return err
	}
	s.engine.Reconcile(&session.Rows[index], winners)
	return nil
}

func (s *sessionService) Get(_ context.Context, id string) (*models.Session, error) {
	return s.store.With(id, func(*models.Session) error { return nil })
}

func (s *sessionService) Close(_ context.Context, id string) error {
	return s.store.Delete(id)
}

// ChangeSlot moves the session to another draw of the same day and recomputes every row
// against that draw's result
func (s *sessionService) ChangeSlot(ctx context.Context, id, slot string) (*models.Session, error) {
	newSlot, err := parseSlot(slot)
	if err != nil {
		return nil, err
	}
	return s.store.With(id, func(session *models.Session) error {
		key := models.ReportKey{Date: session.Date, Slot: newSlot}
		if err := s.reconcile(ctx, key, session.Rows); err != nil {
			return err
		}
		session.Slot = newSlot
		return nil
	})
}

func (s *sessionService) AddRow(ctx context.Context, id string, req models.AddRowRequest) (*models.Session, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, ErrMissingCustomerName
	}
	if !s.engine.ValidMultiplier(req.Multiplier) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMultiplier, req.Multiplier)
	}
	return s.store.With(id, func(session *models.Session) error {
		session.Rows = append(session.Rows, models.SaleRow{CustomerName: name, Multiplier: req.Multiplier})
		return s.reconcileRow(ctx, session, len(session.Rows)-1)
	})
}

func (s *sessionService) UpdateRow(ctx context.Context, id string, index int, patch models.RowPatch) (*models.Session, error) {
	if patch.CustomerName != nil && strings.TrimSpace(*patch.CustomerName) == "" {
		return nil, ErrMissingCustomerName
	}
	if patch.Multiplier != nil && !s.engine.ValidMultiplier(*patch.Multiplier) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMultiplier, *patch.Multiplier)
	}
	return s.store.With(id, func(session *models.Session) error {
		if index < 0 || index >= len(session.Rows) {
			return fmt.Errorf("%w: %d", ErrRowNotFound, index)
		}
		row := &session.Rows[index]
		if patch.CustomerName != nil {
			row.CustomerName = strings.TrimSpace(*patch.CustomerName)
		}
		if patch.Multiplier != nil {
			row.Multiplier = *patch.Multiplier
		}
		if patch.PurchaseRanges != nil {
			row.PurchaseRanges = *patch.PurchaseRanges
		}
		if patch.UnsoldRaw != nil {
			row.UnsoldRaw = *patch.UnsoldRaw
		}
		return s.reconcileRow(ctx, session, index)
	})
}

func (s *sessionService) DeleteRow(_ context.Context, id string, index int) (*models.Session, error) {
	return s.store.With(id, func(session *models.Session) error {
		if index < 0 || index >= len(session.Rows) {
			return fmt.Errorf("%w: %d", ErrRowNotFound, index)
		}
		session.Rows = append(session.Rows[:index], session.Rows[index+1:]...)
		return nil
	})
}

// DeleteCustomer removes every row of the named customer
func (s *sessionService) DeleteCustomer(_ context.Context, id, name string) (*models.Session, error) {
	return s.store.With(id, func(session *models.Session) error {
		kept := session.Rows[:0]
		for _, row := range session.Rows {
			if row.CustomerName != name {
				kept = append(kept, row)
			}
		}
		if len(kept) == len(session.Rows) {
			return fmt.Errorf("%w: %q", ErrCustomerNotFound, name)
		}
		session.Rows = kept
		return nil
	})
}

func (s *sessionService) Summary(_ context.Context, id string) (*SheetSummary, error) {
	session, err := s.store.With(id, func(*models.Session) error { return nil })
	if err != nil {
		return nil, err
	}
	return &SheetSummary{
		Date:      session.Date,
		Slot:      session.Slot,
		Summary:   ledger.Summarize(session.Rows),
		Customers: ledger.SummarizeByCustomer(session.Rows),
	}, nil
}

// SearchUnsold lists unsold entries of the customer (case-insensitive exact name) and/or
// matching one of the comma separated numbers
func (s *sessionService) SearchUnsold(_ context.Context, id string, req models.SearchUnsoldRequest) ([]models.UnsoldMatch, error) {
	name := strings.ToLower(strings.TrimSpace(req.CustomerName))
	numbers := ledger.NewTicketSet(ledger.SplitList(req.Numbers)...)
	if name == "" && numbers.Len() == 0 {
		return nil, ErrEmptySearch
	}

	session, err := s.store.With(id, func(*models.Session) error { return nil })
	if err != nil {
		return nil, err
	}

	matches := []models.UnsoldMatch{}
	for _, row := range session.Rows {
		if name != "" && strings.ToLower(row.CustomerName) != name {
			continue
		}
		for _, e := range row.UnsoldEntries {
			if numbers.Len() > 0 && !numbers.Has(e.Ticket) {
				continue
			}
			matches = append(matches, models.UnsoldMatch{
				CustomerName: row.CustomerName,
				Multiplier:   row.Multiplier,
				Ticket:       e.Ticket,
				IsValid:      e.IsValid,
			})
		}
	}
	return matches, nil
}

func (s *sessionService) Save(ctx context.Context, id string) (*models.Report, error) {
	var report *models.Report
	_, err := s.store.With(id, func(session *models.Session) error {
		if len(session.Rows) == 0 {
			return ErrEmptyReport
		}
		report = &models.Report{
			Date: session.Date,
			Slot: session.Slot,
			Rows: models.CloneRows(session.Rows),
		}
		if err := s.reports.Save(ctx, report); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		return s.mergeRoster(ctx, session.Date, session.Rows)
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"sessionId": id,
		"date":      report.Date,
		"slot":      report.Slot,
		"rows":      len(report.Rows),
	}).Info("Report saved")
	metrics.RecordReportSaved(string(report.Slot))
	return report, nil
}

// mergeRoster adds every (customer, multiplier) pair of rows to the day's roster. Pairs stay
// grouped by customer, existing customers first.
func (s *sessionService) mergeRoster(ctx context.Context, date string, rows []models.SaleRow) error {
	var existing []models.RosterEntry
	roster, err := s.rosters.Get(ctx, date)
	switch {
	case err == nil:
		existing = roster.Entries
	case !errors.Is(err, repositories.ErrNotFound):
		return fmt.Errorf("failed to load roster: %w", err)
	}

	var names []string
	multipliers := make(map[string][]int)
	add := func(name string, sem int) {
		sems, ok := multipliers[name]
		if !ok {
			names = append(names, name)
		}
		for _, m := range sems {
			if m == sem {
				return
			}
		}
		multipliers[name] = append(sems, sem)
	}
	for _, e := range existing {
		add(e.CustomerName, e.Multiplier)
	}
	for _, r := range rows {
		add(r.CustomerName, r.Multiplier)
	}

	merged := &models.Roster{Date: date, Entries: []models.RosterEntry{}}
	for _, name := range names {
		for _, sem := range multipliers[name] {
			merged.Entries = append(merged.Entries, models.RosterEntry{CustomerName: name, Multiplier: sem})
		}
	}
	if err := s.rosters.Save(ctx, merged); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}
	return nil
}
