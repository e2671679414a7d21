package services

import (
	"fmt"

	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/utils"
)

func parseDate(date string) (string, error) {
	d, ok := utils.NormalizeDate(date)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return d, nil
}

func parseSlot(slot string) (models.DrawSlot, error) {
	s, err := models.ParseDrawSlot(slot)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	return s, nil
}

func parseDrawKey(date, slot string) (models.ReportKey, error) {
	d, err := parseDate(date)
	if err != nil {
		return models.ReportKey{}, err
	}
	s, err := parseSlot(slot)
	if err != nil {
		return models.ReportKey{}, err
	}
	return models.ReportKey{Date: d, Slot: s}, nil
}
