package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/ticket-ledger/internal/models"
)

func TestResultsCSV_RoundTrip(t *testing.T) {
	result := &models.WinningResult{
		Date: "2024-05-01",
		Slot: models.DrawSlotNoon,
		Prizes: []models.PrizeResult{
			{Category: models.PrizeFirst, Amount: "₹25,000/-", Numbers: "45C 32184"},
			{Category: models.PrizeSecond, Amount: "₹20,000/-", Numbers: "12345, 67890"},
			{Category: models.PrizeThird, Amount: "₹2,000/-", Numbers: models.NoNumbers},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResultsCSV(&buf, result))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Date,2024-05-01\nDraw,6PM\n\nPrize Category,Prize Amount,Ticket Numbers\n"))
	assert.Contains(t, out, `"12345, 67890"`)

	parsed, err := ReadResultsCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, result.Date, parsed.Date)
	assert.Equal(t, result.Slot, parsed.Slot)
	assert.Equal(t, result.Prizes, parsed.Prizes)
}

func TestReadResultsCSV(t *testing.T) {
	t.Run("bare table", func(t *testing.T) {
		in := "Category,Numbers\n1st Prize,\"12 34567\"\n"
		parsed, err := ReadResultsCSV(strings.NewReader(in))
		require.NoError(t, err)
		assert.Empty(t, parsed.Date)
		assert.Equal(t, []models.PrizeResult{{Category: models.PrizeFirst, Numbers: "12 34567"}}, parsed.Prizes)
	})

	t.Run("unknown draw", func(t *testing.T) {
		_, err := ReadResultsCSV(strings.NewReader("Date,2024-05-01\nDraw,3AM\n"))
		assert.Error(t, err)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := ReadResultsCSV(strings.NewReader("Date,2024-05-01\n"))
		assert.Error(t, err)
	})
}

func TestNormalizeDate(t *testing.T) {
	d, ok := NormalizeDate(" 2024-05-01 ")
	assert.True(t, ok)
	assert.Equal(t, "2024-05-01", d)

	_, ok = NormalizeDate("2024-02-30")
	assert.False(t, ok)
	_, ok = NormalizeDate("01/05/2024")
	assert.False(t, ok)
}
