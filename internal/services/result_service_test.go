package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/ticket-ledger/internal/ledger"
	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/ocr"
	"github.com/ArowuTest/ticket-ledger/internal/repositories/memory"
)

func TestResultService_SaveNormalizes(t *testing.T) {
	ctx := context.Background()
	svc := NewResultService(memory.NewStore().Results())

	saved, err := svc.Save(ctx, "2024-05-01", "8PM", []models.PrizeResult{
		{Category: models.PrizeThird, Numbers: " 1234, 5678 "},
		{Category: models.PrizeFirst, Amount: "₹30,000/-", Numbers: "11111"},
		{Category: models.PrizeFirst, Amount: "₹30,000/-", Numbers: "22222"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.DrawSlotEvening, saved.Slot)
	assert.Equal(t, []models.PrizeResult{
		{Category: models.PrizeFirst, Amount: "₹30,000/-", Numbers: "22222"},
		{Category: models.PrizeSecond, Amount: "₹20,000/-", Numbers: models.NoNumbers},
		{Category: models.PrizeThird, Amount: "₹2,000/-", Numbers: "1234, 5678"},
		{Category: models.PrizeFourth, Amount: "₹700/-", Numbers: models.NoNumbers},
		{Category: models.PrizeFifth, Amount: "₹300/-", Numbers: models.NoNumbers},
	}, saved.Prizes)

	got, err := svc.Get(ctx, "2024-05-01", "Evening")
	require.NoError(t, err)
	assert.Equal(t, saved.Prizes, got.Prizes)

	_, err = svc.Save(ctx, "2024-05-01", "Evening", []models.PrizeResult{{Category: "6th Prize", Numbers: "1"}})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestResultService_GetAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewResultService(memory.NewStore().Results())

	_, err := svc.Get(ctx, "2024-05-01", "Morning")
	assert.ErrorIs(t, err, ErrResultNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "2024-05-01", "Morning"), ErrResultNotFound)

	_, err = svc.Save(ctx, "2024-05-01", "Morning", nil)
	require.NoError(t, err)
	_, err = svc.Save(ctx, "2024-05-02", "Noon", nil)
	require.NoError(t, err)

	dates, err := svc.ListDates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-02", "2024-05-01"}, dates)

	list, err := svc.ListByDate(ctx, "2024-05-01")
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, "2024-05-01", "Morning"))
	_, err = svc.Get(ctx, "2024-05-01", "Morning")
	assert.ErrorIs(t, err, ErrResultNotFound)
}

func TestResultService_WinningNumbers(t *testing.T) {
	ctx := context.Background()
	svc := NewResultService(memory.NewStore().Results())

	none, err := svc.WinningNumbers(ctx, "2024-05-01", models.DrawSlotMorning)
	require.NoError(t, err)
	assert.Equal(t, 0, none.Len())

	_, err = svc.Save(ctx, "2024-05-01", "Morning", []models.PrizeResult{
		{Category: models.PrizeFirst, Numbers: "45C 32184"},
		{Category: models.PrizeFifth, Amount: "₹300/-", Numbers: "184, 0921"},
	})
	require.NoError(t, err)

	winners, err := svc.WinningNumbers(ctx, "2024-05-01", models.DrawSlotMorning)
	require.NoError(t, err)
	assert.Equal(t, []ledger.WinningEntry{
		{Suffix: "32184", Category: models.PrizeFirst, Amount: 25000},
		{Suffix: "184", Category: models.PrizeFifth, Amount: 300},
		{Suffix: "0921", Category: models.PrizeFifth, Amount: 300},
	}, winners.Entries())
}

func TestResultService_ExtractFromText(t *testing.T) {
	svc := NewResultService(memory.NewStore().Results())

	prizes, err := svc.ExtractFromText([]ocr.BoxText{
		{BoxID: "box1", Category: models.PrizeFirst, Text: "1st Prize 45C 32184"},
		{BoxID: "box5", Category: models.PrizeFifth, Text: ocr.ErrorText},
		{BoxID: "bogus", Category: "Jackpot", Text: "12345"},
	})
	require.NoError(t, err)
	require.Len(t, prizes, len(models.PrizeCategories))
	assert.Equal(t, "45C 32184", prizes[0].Numbers)
	assert.Equal(t, models.NoNumbers, prizes[4].Numbers)
	assert.Equal(t, "₹300/-", prizes[4].Amount)
}

func TestNormalizePrizes_UnknownCategory(t *testing.T) {
	_, err := normalizePrizes([]models.PrizeResult{
		{Category: models.PrizeFirst, Numbers: "12345"},
		{Category: "Jackpot", Numbers: "1"},
	})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestResultService_CSV(t *testing.T) {
	ctx := context.Background()
	svc := NewResultService(memory.NewStore().Results())

	_, err := svc.Save(ctx, "2024-05-01", "Noon", []models.PrizeResult{
		{Category: models.PrizeSecond, Numbers: "12345, 67890"},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, &buf, "2024-05-01", "Noon"))
	assert.True(t, strings.HasPrefix(buf.String(), "Date,2024-05-01\nDraw,6PM\n"))

	// the file's own date and draw win over the arguments
	imported, err := svc.ImportCSV(ctx, &buf, "2030-01-01", "Morning")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", imported.Date)
	assert.Equal(t, models.DrawSlotNoon, imported.Slot)

	bare := "Prize Category,Prize Amount,Ticket Numbers\n3rd Prize,,4321\n"
	imported, err = svc.ImportCSV(ctx, strings.NewReader(bare), "2024-05-03", "1PM")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-03", imported.Date)
	assert.Equal(t, models.DrawSlotMorning, imported.Slot)
	assert.Equal(t, "4321", imported.Prizes[2].Numbers)

	_, err = svc.ImportCSV(ctx, strings.NewReader(bare), "", "Morning")
	assert.ErrorIs(t, err, ErrInvalidDate)

	assert.ErrorIs(t, svc.ExportCSV(ctx, &buf, "2024-05-09", "Noon"), ErrResultNotFound)
}
