package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/ticket-ledger/internal/models"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		expected int64
	}{
		{name: "grouped", item: "10,000 (1st Prize: 32184)", expected: 10000},
		{name: "plain", item: "700 (4th Prize: 1)", expected: 700},
		{name: "no amount", item: "(1st Prize: 1)", expected: 0},
		{name: "empty", item: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAmount(tt.item))
		})
	}
}

func TestSummarize(t *testing.T) {
	engine := NewEngine(0, DefaultLocale)
	winners := NewWinningNumbers([]models.PrizeResult{
		{Category: models.PrizeFirst, Amount: "2000", Numbers: "184"},
		{Category: models.PrizeFourth, Amount: "₹700/-", Numbers: "0002"},
	})
	rows := []models.SaleRow{
		{CustomerName: "Ravi", Multiplier: 5, PurchaseRanges: "32180-32184", UnsoldRaw: "32180,9"},
		{CustomerName: "Anu", Multiplier: 1, PurchaseRanges: "0001-0003"},
		{CustomerName: "Ravi", Multiplier: 10, PurchaseRanges: "500"},
	}
	engine.ReconcileAll(rows, winners)

	s := Summarize(rows)
	assert.Equal(t, 9, s.PurchaseCount)
	assert.Equal(t, 8, s.SoldCount)
	assert.Equal(t, 1, s.UnsoldCount)
	assert.Equal(t, 1, s.InvalidUnsoldCount)
	assert.Equal(t, 2, s.WinningCount)
	assert.Equal(t, int64(10000+700), s.TotalPWT)
	assert.Equal(t, int64(10000+150), s.TotalVC)
	assert.Equal(t, int64(2000+20), s.TotalSVC)

	byCustomer := SummarizeByCustomer(rows)
	require.Len(t, byCustomer, 2)
	assert.Equal(t, "Ravi", byCustomer[0].CustomerName)
	assert.Equal(t, 2, byCustomer[0].Rows)
	assert.Equal(t, 6, byCustomer[0].PurchaseCount)
	assert.Equal(t, int64(10000), byCustomer[0].TotalPWT)
	assert.Equal(t, "Anu", byCustomer[1].CustomerName)
	assert.Equal(t, int64(700), byCustomer[1].TotalPWT)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
	assert.Empty(t, SummarizeByCustomer(nil))
}
