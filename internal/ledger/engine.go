package ledger

import "github.com/ArowuTest/ticket-ledger/internal/models"

// DefaultMaxMultiplier is the largest SEM a row may carry unless configured otherwise
const DefaultMaxMultiplier = 10000

// Engine recomputes the derived fields of sale rows
type Engine struct {
	expander      Expander
	amounts       *AmountFormatter
	maxMultiplier int
}

// NewEngine returns an engine that expands at most maxSpan tickets per row and groups amounts
// for locale
func NewEngine(maxSpan int64, locale string) *Engine {
	return &Engine{
		expander:      Expander{MaxSpan: maxSpan},
		amounts:       NewAmountFormatter(locale),
		maxMultiplier: DefaultMaxMultiplier,
	}
}

// WithMaxMultiplier sets the largest accepted SEM; n <= 0 keeps the default
func (e *Engine) WithMaxMultiplier(n int) *Engine {
	if n > 0 {
		e.maxMultiplier = n
	}
	return e
}

// ValidMultiplier reports whether n is an SEM the engine accepts
func (e *Engine) ValidMultiplier(n int) bool {
	return n >= 1 && n <= e.maxMultiplier
}

// Amounts returns the formatter used for line items
func (e *Engine) Amounts() *AmountFormatter {
	return e.amounts
}

// Reconcile rebuilds every derived field of row from its operator input and the draw's
// winning numbers. winners may be nil when no result has been entered yet.
func (e *Engine) Reconcile(row *models.SaleRow, winners *WinningNumbers) {
	row.ResetDerived()

	purchase := e.expander.Expand(row.PurchaseRanges)
	if purchase.Tickets.Len() == 0 {
		return
	}
	row.PurchasedTickets = purchase.Tickets.Tickets()
	row.PurchaseCount = purchase.Count

	c := Classify(purchase.Tickets, row.UnsoldRaw)
	row.UnsoldEntries = c.Unsold
	row.SoldTickets = c.Sold
	row.SoldRanges = CompressTickets(c.Sold)

	m := MatchWinners(c.Sold, row.Multiplier, winners, e.amounts)
	row.WinningTickets = m.Tickets
	row.Breakdown = m.Breakdown
}

// ReconcileAll reconciles every row in place
func (e *Engine) ReconcileAll(rows []models.SaleRow, winners *WinningNumbers) {
	for i := range rows {
		e.Reconcile(&rows[i], winners)
	}
}
