// Package ledger reconciles ticket purchases, unsold returns and draw results into sold ticket
// sets and prize payouts. Everything in it is pure and never returns an error: malformed
// operator input contributes nothing instead of failing.
package ledger

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"
)

var ticketPattern = regexp.MustCompile(`^(.*?)(\d+)(\D*)$`)

// TicketToken is a ticket number split around its last run of digits
type TicketToken struct {
	Prefix    string
	Value     int64
	PadWidth  int
	Suffix    string
	HasDigits bool
}

// ParseTicket splits s into prefix, numeric value and suffix. A string without a usable digit
// run parses to value 0 with a pad width equal to its length.
func ParseTicket(s string) TicketToken {
	m := ticketPattern.FindStringSubmatch(s)
	if m != nil {
		if v, err := strconv.ParseInt(m[2], 10, 64); err == nil {
			return TicketToken{Prefix: m[1], Value: v, PadWidth: len(m[2]), Suffix: m[3], HasDigits: true}
		}
	}
	return TicketToken{PadWidth: utf8.RuneCountInString(s)}
}

// FormatTicket renders a ticket with its value zero-padded to at least pad digits
func FormatTicket(prefix string, value int64, pad int, suffix string) string {
	return fmt.Sprintf("%s%0*d%s", prefix, pad, value, suffix)
}

// String formats the token back into a ticket number
func (t TicketToken) String() string {
	return FormatTicket(t.Prefix, t.Value, t.PadWidth, t.Suffix)
}

// WithValue returns the ticket that shares t's prefix, padding and suffix but carries v
func (t TicketToken) WithValue(v int64) string {
	return FormatTicket(t.Prefix, v, t.PadWidth, t.Suffix)
}
