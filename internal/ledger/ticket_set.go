package ledger

// TicketSet is an insertion ordered set of ticket strings
type TicketSet struct {
	order []string
	index map[string]struct{}
}

// NewTicketSet returns a set holding tickets in first-seen order
func NewTicketSet(tickets ...string) *TicketSet {
	s := &TicketSet{index: make(map[string]struct{}, len(tickets))}
	for _, t := range tickets {
		s.Add(t)
	}
	return s
}

// Add inserts t and reports whether it was new
func (s *TicketSet) Add(t string) bool {
	if _, ok := s.index[t]; ok {
		return false
	}
	s.index[t] = struct{}{}
	s.order = append(s.order, t)
	return true
}

// Has reports whether t is in the set
func (s *TicketSet) Has(t string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[t]
	return ok
}

// Len returns the number of distinct tickets
func (s *TicketSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Tickets returns a copy of the tickets in insertion order
func (s *TicketSet) Tickets() []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
