package ledger

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ArowuTest/ticket-ledger/internal/models"
)

var (
	trailingDigits = regexp.MustCompile(`\d+$`)
	nonDigits      = regexp.MustCompile(`\D`)
)

// WinningEntry is a winning ticket suffix with its category and per-unit prize amount
type WinningEntry struct {
	Suffix   string
	Category models.PrizeCategory
	Amount   int64
}

// WinningNumbers is the ordered set of winning suffixes of one draw. Setting a suffix again
// replaces its entry but keeps its original position.
type WinningNumbers struct {
	entries []WinningEntry
	index   map[string]int
}

// NewWinningNumbers collects the winning suffixes of a draw's result rows. Each comma separated
// number contributes its trailing digit run; rows without numbers contribute nothing.
func NewWinningNumbers(prizes []models.PrizeResult) *WinningNumbers {
	w := &WinningNumbers{index: make(map[string]int)}
	for _, prize := range prizes {
		numbers := strings.TrimSpace(prize.Numbers)
		if numbers == "" || numbers == models.NoNumbers {
			continue
		}
		amount := ParsePrizeAmount(prize.Amount)
		for _, n := range strings.Split(numbers, ",") {
			suffix := trailingDigits.FindString(strings.TrimSpace(n))
			if suffix == "" {
				continue
			}
			w.Set(WinningEntry{Suffix: suffix, Category: prize.Category, Amount: amount})
		}
	}
	return w
}

// Set adds or replaces the entry for e.Suffix
func (w *WinningNumbers) Set(e WinningEntry) {
	if w.index == nil {
		w.index = make(map[string]int)
	}
	if i, ok := w.index[e.Suffix]; ok {
		w.entries[i] = e
		return
	}
	w.index[e.Suffix] = len(w.entries)
	w.entries = append(w.entries, e)
}

// Entries returns the entries in insertion order
func (w *WinningNumbers) Entries() []WinningEntry {
	if w == nil {
		return nil
	}
	return append([]WinningEntry(nil), w.entries...)
}

// Len returns the number of distinct suffixes
func (w *WinningNumbers) Len() int {
	if w == nil {
		return 0
	}
	return len(w.entries)
}

// ParsePrizeAmount keeps the digits of a printed amount ("₹25,000/-" -> 25000); 0 when none
func ParsePrizeAmount(s string) int64 {
	v, err := strconv.ParseInt(nonDigits.ReplaceAllString(s, ""), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// Match is the outcome of matching one row's sold tickets
type Match struct {
	Tickets   []models.WinningTicket
	Breakdown models.PrizeBreakdown
}

// MatchWinners pairs each sold ticket with the first winning entry, in entry order, whose suffix
// it ends with. A ticket is paid at most once. Amounts are multiplied by the row multiplier.
func MatchWinners(sold []string, multiplier int, winners *WinningNumbers, amounts *AmountFormatter) Match {
	m := Match{
		Tickets:   []models.WinningTicket{},
		Breakdown: models.PrizeBreakdown{PWT: []string{}, VC: []string{}, SVC: []string{}},
	}
	if winners.Len() == 0 {
		return m
	}

	sem := int64(multiplier)
	lineItem := func(amount int64, e WinningEntry, ticket string) string {
		return fmt.Sprintf("%s (%s: %s)", amounts.Format(amount), e.Category, ticket)
	}

	for _, ticket := range sold {
		for _, e := range winners.entries {
			if !strings.HasSuffix(ticket, e.Suffix) {
				continue
			}
			m.Tickets = append(m.Tickets, models.WinningTicket{Ticket: ticket, WinningNumber: e.Suffix, Category: e.Category})
			m.Breakdown.PWT = append(m.Breakdown.PWT, lineItem(mulAmount(e.Amount, sem), e, ticket))
			if vc := e.Category.VCAmount(); vc > 0 {
				m.Breakdown.VC = append(m.Breakdown.VC, lineItem(mulAmount(vc, sem), e, ticket))
			}
			if svc := e.Category.SVCAmount(); svc > 0 {
				m.Breakdown.SVC = append(m.Breakdown.SVC, lineItem(mulAmount(svc, sem), e, ticket))
			}
			break
		}
	}
	return m
}

// mulAmount multiplies two non-negative amounts, saturating at math.MaxInt64
func mulAmount(amount, sem int64) int64 {
	if amount <= 0 || sem <= 0 {
		return 0
	}
	if amount > math.MaxInt64/sem {
		return math.MaxInt64
	}
	return amount * sem
}
