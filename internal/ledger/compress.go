package ledger

import "sort"

// CompressTickets collapses tickets into "start-end" runs of consecutive values. All output
// uses the prefix, padding and suffix of the lowest ticket.
func CompressTickets(tickets []string) []string {
	if len(tickets) == 0 {
		return []string{}
	}

	tokens := make([]TicketToken, len(tickets))
	for i, t := range tickets {
		tokens[i] = ParseTicket(t)
	}
	sort.SliceStable(tokens, func(i, j int) bool { return tokens[i].Value < tokens[j].Value })

	format := tokens[0]
	var ranges []string
	emit := func(start, end int64) {
		if start == end {
			ranges = append(ranges, format.WithValue(start))
			return
		}
		ranges = append(ranges, format.WithValue(start)+"-"+format.WithValue(end))
	}

	start, end := tokens[0].Value, tokens[0].Value
	for _, tok := range tokens[1:] {
		if tok.Value == end+1 {
			end = tok.Value
			continue
		}
		emit(start, end)
		start, end = tok.Value, tok.Value
	}
	emit(start, end)
	return ranges
}
