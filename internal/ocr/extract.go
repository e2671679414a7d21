// Package ocr turns photographed result sheets into winning numbers: it crops the prize boxes,
// hands them to a text recognizer and pulls ticket numbers out of the recognized text.
package ocr

import (
	"regexp"
	"strings"

	"github.com/ArowuTest/ticket-ledger/internal/models"
)

// ErrorText is recorded for a box the recognizer failed on
const ErrorText = "OCR Error"

var (
	seriesNumber = regexp.MustCompile(`\b\d{2}[A-Z]?\s+\d{5}\b`)
	fiveDigits   = regexp.MustCompile(`\b\d{5}\b`)
	fourDigits   = regexp.MustCompile(`\b\d{4}\b`)
	threeDigits  = regexp.MustCompile(`\b\d{3}\b`)
	// the 5th prize block is dense, so its runs are taken without word boundaries
	anyFour  = regexp.MustCompile(`\d{4}`)
	anyThree = regexp.MustCompile(`\d{3}`)
)

// ExtractNumbers pulls the winning numbers for category out of recognized text and joins them
// with ", ". It returns models.NoNumbers when nothing matches.
func ExtractNumbers(category models.PrizeCategory, text string) string {
	var matches []string
	switch category {
	case models.PrizeFirst:
		matches = seriesNumber.FindAllString(text, -1)
	case models.PrizeSecond:
		matches = fiveDigits.FindAllString(text, -1)
	case models.PrizeFifth:
		matches = firstMatching(text, anyFour, anyThree)
	default:
		matches = firstMatching(text, fourDigits, threeDigits)
	}
	if len(matches) == 0 {
		return models.NoNumbers
	}
	return strings.Join(matches, ", ")
}

func firstMatching(text string, patterns ...*regexp.Regexp) []string {
	for _, p := range patterns {
		if m := p.FindAllString(text, -1); len(m) > 0 {
			return m
		}
	}
	return nil
}
