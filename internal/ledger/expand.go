package ledger

import "strings"

// DefaultMaxRangeSpan bounds how many tickets the ranges of one purchase spec may expand to
const DefaultMaxRangeSpan int64 = 100000

// Expansion is the result of expanding a purchase range spec
type Expansion struct {
	Tickets *TicketSet
	// Count adds up every accepted segment, so overlapping segments are counted twice
	Count int
}

// Expander turns comma separated singles and A-B ranges into concrete tickets
type Expander struct {
	MaxSpan int64
}

// ExpandRanges expands spec with the default span limit
func ExpandRanges(spec string) Expansion {
	return Expander{MaxSpan: DefaultMaxRangeSpan}.Expand(spec)
}

// SplitList splits comma separated text into trimmed, non-empty items
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Expand expands every segment of spec. Segments that are neither a literal nor a well formed
// ascending range are skipped. Ranges share a budget of MaxSpan tickets; a range that does not
// fit in what is left is skipped like a malformed one.
func (e Expander) Expand(spec string) Expansion {
	budget := e.MaxSpan
	if budget <= 0 {
		budget = DefaultMaxRangeSpan
	}

	result := Expansion{Tickets: NewTicketSet()}
	for _, segment := range SplitList(spec) {
		parts := strings.Split(segment, "-")
		switch len(parts) {
		case 1:
			result.Tickets.Add(segment)
			result.Count++
		case 2:
			from, to, ok := parseRange(parts[0], parts[1])
			if !ok {
				continue
			}
			// from >= 0 and to >= from, so span cannot overflow
			span := to.Value - from.Value
			if span >= budget {
				continue
			}
			budget -= span + 1
			for i := int64(0); i <= span; i++ {
				result.Tickets.Add(from.WithValue(from.Value + i))
			}
			result.Count += int(span + 1)
		}
	}
	return result
}

// parseRange returns the bounds of an ascending range; the upper bound only contributes its
// value and pad width
func parseRange(rawFrom, rawTo string) (TicketToken, TicketToken, bool) {
	rawFrom, rawTo = strings.TrimSpace(rawFrom), strings.TrimSpace(rawTo)
	if rawFrom == "" || rawTo == "" {
		return TicketToken{}, TicketToken{}, false
	}
	from, to := ParseTicket(rawFrom), ParseTicket(rawTo)
	if !from.HasDigits || !to.HasDigits || to.Value < from.Value {
		return TicketToken{}, TicketToken{}, false
	}
	if to.PadWidth > from.PadWidth {
		from.PadWidth = to.PadWidth
	}
	return from, to, true
}
