package ledger

import (
	"regexp"
	"strings"
)

// SoldNumbersPerLine is how many sold tickets a customer report prints per line
const SoldNumbersPerLine = 7

var (
	rangePattern = regexp.MustCompile(`^(.*?)(\d+)(\D*)-(.*?)(\d+)(\D*)$`)
	digitRun     = regexp.MustCompile(`\d+`)
)

// NumericDisplay reduces a ticket or "A-B" range to its digits, e.g. "AB001-AB010" -> "001-010"
func NumericDisplay(s string) string {
	if s == "" {
		return ""
	}
	if m := rangePattern.FindStringSubmatch(s); m != nil {
		from := m[2]
		if n := len(m[5]) - len(from); n > 0 {
			from = strings.Repeat("0", n) + from
		}
		return from + "-" + m[5]
	}
	if d := digitRun.FindString(s); d != "" {
		return d
	}
	return s
}

// SoldLines groups the numeric display of tickets into lines of perLine entries
func SoldLines(tickets []string, perLine int) []string {
	if perLine <= 0 {
		perLine = SoldNumbersPerLine
	}
	lines := []string{}
	for i := 0; i < len(tickets); i += perLine {
		end := i + perLine
		if end > len(tickets) {
			end = len(tickets)
		}
		chunk := make([]string, 0, end-i)
		for _, t := range tickets[i:end] {
			chunk = append(chunk, NumericDisplay(t))
		}
		lines = append(lines, strings.Join(chunk, ", "))
	}
	return lines
}
