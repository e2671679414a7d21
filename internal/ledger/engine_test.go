package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ArowuTest/ticket-ledger/internal/models"
)

func TestEngine_Reconcile(t *testing.T) {
	engine := NewEngine(DefaultMaxRangeSpan, DefaultLocale)

	t.Run("unsold tickets compress out of the sold ranges", func(t *testing.T) {
		row := models.SaleRow{CustomerName: "A", Multiplier: 1, PurchaseRanges: "001-010", UnsoldRaw: "003,007"}
		engine.Reconcile(&row, nil)

		assert.Len(t, row.PurchasedTickets, 10)
		assert.Equal(t, 10, row.PurchaseCount)
		assert.Len(t, row.SoldTickets, 8)
		assert.NotContains(t, row.SoldTickets, "003")
		assert.NotContains(t, row.SoldTickets, "007")
		assert.Equal(t, []string{"001-002", "004-006", "008-010"}, row.SoldRanges)
		assert.Empty(t, row.WinningTickets)
	})

	t.Run("winning ticket pays all three kinds", func(t *testing.T) {
		winners := NewWinningNumbers([]models.PrizeResult{
			{Category: models.PrizeFirst, Amount: "2000", Numbers: "184"},
		})
		row := models.SaleRow{CustomerName: "B", Multiplier: 5, PurchaseRanges: "32180-32184"}
		engine.Reconcile(&row, winners)

		assert.Equal(t, []models.WinningTicket{{Ticket: "32184", WinningNumber: "184", Category: models.PrizeFirst}}, row.WinningTickets)
		assert.Equal(t, []string{"10,000 (1st Prize: 32184)"}, row.Breakdown.PWT)
		assert.Equal(t, []string{"10,000 (1st Prize: 32184)"}, row.Breakdown.VC)
		assert.Equal(t, []string{"2,000 (1st Prize: 32184)"}, row.Breakdown.SVC)
	})

	t.Run("unknown unsold ticket does not reduce sold", func(t *testing.T) {
		row := models.SaleRow{CustomerName: "C", Multiplier: 1, PurchaseRanges: "001-010", UnsoldRaw: "9999"}
		engine.Reconcile(&row, nil)

		assert.Len(t, row.SoldTickets, 10)
		assert.Equal(t, []models.UnsoldEntry{{Ticket: "9999", IsValid: false}}, row.UnsoldEntries)
		assert.Equal(t, 0, row.ValidUnsoldCount())
	})

	t.Run("prefixed range", func(t *testing.T) {
		row := models.SaleRow{CustomerName: "D", Multiplier: 1, PurchaseRanges: "AB001-AB005"}
		engine.Reconcile(&row, nil)

		assert.Equal(t, []string{"AB001", "AB002", "AB003", "AB004", "AB005"}, row.PurchasedTickets)
		assert.Equal(t, []string{"AB001-AB005"}, row.SoldRanges)
	})

	t.Run("reversed range resets the row", func(t *testing.T) {
		row := models.SaleRow{
			CustomerName:   "E",
			Multiplier:     1,
			PurchaseRanges: "010-001",
			UnsoldRaw:      "005",
			SoldTickets:    []string{"stale"},
		}
		engine.Reconcile(&row, nil)

		assert.Empty(t, row.PurchasedTickets)
		assert.Equal(t, 0, row.PurchaseCount)
		assert.Empty(t, row.SoldTickets)
		assert.Empty(t, row.SoldRanges)
		assert.Empty(t, row.UnsoldEntries)
		assert.Empty(t, row.Breakdown.PWT)
	})

	t.Run("degenerate input never panics", func(t *testing.T) {
		for _, spec := range []string{"", ",,,", "-", "--", "abc", "a-b-c", "1-", "ü-ö", "99999999999999999999-1",
			"9223372036854775807-9223372036854775807", "9223372036854775806-9223372036854775807"} {
			row := models.SaleRow{PurchaseRanges: spec, UnsoldRaw: spec}
			assert.NotPanics(t, func() { engine.Reconcile(&row, NewWinningNumbers(nil)) }, spec)
		}
	})
}

func TestEngine_ReconcileIsRepeatable(t *testing.T) {
	engine := NewEngine(0, DefaultLocale)
	winners := NewWinningNumbers([]models.PrizeResult{{Category: models.PrizeThird, Amount: "2000", Numbers: "0005"}})

	row := models.SaleRow{CustomerName: "F", Multiplier: 2, PurchaseRanges: "0001-0010", UnsoldRaw: "0002"}
	engine.Reconcile(&row, winners)
	first := models.CloneRows([]models.SaleRow{row})[0]
	engine.Reconcile(&row, winners)

	assert.Equal(t, first, row)
}

func TestEngine_ValidMultiplier(t *testing.T) {
	engine := NewEngine(0, DefaultLocale)
	assert.False(t, engine.ValidMultiplier(0))
	assert.True(t, engine.ValidMultiplier(1))
	assert.True(t, engine.ValidMultiplier(DefaultMaxMultiplier))
	assert.False(t, engine.ValidMultiplier(DefaultMaxMultiplier+1))

	engine.WithMaxMultiplier(50)
	assert.True(t, engine.ValidMultiplier(50))
	assert.False(t, engine.ValidMultiplier(51))

	engine.WithMaxMultiplier(0)
	assert.True(t, engine.ValidMultiplier(50), "non-positive limit keeps the current one")
}
