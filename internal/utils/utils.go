package utils

import (
	"strings"
	"time"

	"github.com/ArowuTest/ticket-ledger/internal/models"
)

// NormalizeDate returns s as a YYYY-MM-DD date key, or false when it is not a calendar date
func NormalizeDate(s string) (string, bool) {
	t, err := time.Parse(models.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return t.Format(models.DateLayout), true
}

// Today returns the current local date key
func Today() string {
	return time.Now().Format(models.DateLayout)
}

// findColumnIndex returns the first column whose header matches one of names, -1 if none
func findColumnIndex(header []string, names []string) int {
	for i, h := range header {
		for _, name := range names {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
	}
	return -1
}
