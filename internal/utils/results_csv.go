package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ArowuTest/ticket-ledger/internal/models"
)

var resultsHeader = []string{"Prize Category", "Prize Amount", "Ticket Numbers"}

// WriteResultsCSV writes a result sheet in the download layout:
//
//	Date,<date>
//	Draw,<result label>
//	(blank line)
//	Prize Category,Prize Amount,Ticket Numbers
//	<one line per prize>
func WriteResultsCSV(w io.Writer, result *models.WinningResult) error {
	if _, err := fmt.Fprintf(w, "Date,%s\nDraw,%s\n\n", result.Date, result.Slot.ResultLabel()); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(resultsHeader); err != nil {
		return err
	}
	for _, p := range result.Prizes {
		if err := cw.Write([]string{string(p.Category), p.Amount, p.Numbers}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadResultsCSV parses a sheet written by WriteResultsCSV. The prize table may also appear on
// its own, in which case date and slot stay empty for the caller to supply.
func ReadResultsCSV(r io.Reader) (*models.WinningResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	result := &models.WinningResult{}
	categoryIdx, amountIdx, numbersIdx := -1, -1, -1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse results csv: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		if categoryIdx == -1 {
			switch strings.TrimSpace(record[0]) {
			case "Date":
				if len(record) > 1 {
					result.Date = strings.TrimSpace(record[1])
				}
				continue
			case "Draw":
				if len(record) > 1 {
					slot, err := models.ParseDrawSlot(record[1])
					if err != nil {
						return nil, err
					}
					result.Slot = slot
				}
				continue
			}
			categoryIdx = findColumnIndex(record, []string{"Prize Category", "Category"})
			amountIdx = findColumnIndex(record, []string{"Prize Amount", "Amount"})
			numbersIdx = findColumnIndex(record, []string{"Ticket Numbers", "Numbers"})
			if categoryIdx == -1 || numbersIdx == -1 {
				return nil, errors.New("results csv has no prize table header")
			}
			continue
		}

		prize := models.PrizeResult{Category: models.PrizeCategory(field(record, categoryIdx))}
		if prize.Category == "" {
			continue
		}
		prize.Amount = field(record, amountIdx)
		prize.Numbers = field(record, numbersIdx)
		result.Prizes = append(result.Prizes, prize)
	}

	if categoryIdx == -1 {
		return nil, errors.New("results csv has no prize table header")
	}
	return result, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
