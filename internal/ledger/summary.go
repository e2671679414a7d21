package ledger

import (
	"strconv"
	"strings"

	"github.com/ArowuTest/ticket-ledger/internal/models"
)

// Summary totals a collection of rows
type Summary struct {
	PurchaseCount      int   `json:"purchaseCount"`
	SoldCount          int   `json:"soldCount"`
	UnsoldCount        int   `json:"unsoldCount"`
	InvalidUnsoldCount int   `json:"invalidUnsoldCount"`
	WinningCount       int   `json:"winningCount"`
	TotalPWT           int64 `json:"totalPwt"`
	TotalVC            int64 `json:"totalVc"`
	TotalSVC           int64 `json:"totalSvc"`
}

// CustomerSummary totals the rows of one customer
type CustomerSummary struct {
	CustomerName string `json:"customerName"`
	Rows         int    `json:"rows"`
	Summary
}

// Summarize totals rows. Monetary totals are read back from the formatted line items.
func Summarize(rows []models.SaleRow) Summary {
	var s Summary
	for _, row := range rows {
		s.add(row)
	}
	return s
}

func (s *Summary) add(row models.SaleRow) {
	s.PurchaseCount += row.PurchaseCount
	s.SoldCount += len(row.SoldTickets)
	for _, e := range row.UnsoldEntries {
		if e.IsValid {
			s.UnsoldCount++
		} else {
			s.InvalidUnsoldCount++
		}
	}
	s.WinningCount += len(row.WinningTickets)
	for _, item := range row.Breakdown.PWT {
		s.TotalPWT += ParseAmount(item)
	}
	for _, item := range row.Breakdown.VC {
		s.TotalVC += ParseAmount(item)
	}
	for _, item := range row.Breakdown.SVC {
		s.TotalSVC += ParseAmount(item)
	}
}

// SummarizeByCustomer totals rows per customer name, in the order names first appear
func SummarizeByCustomer(rows []models.SaleRow) []CustomerSummary {
	out := []CustomerSummary{}
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.CustomerName]
		if !ok {
			i = len(out)
			index[row.CustomerName] = i
			out = append(out, CustomerSummary{CustomerName: row.CustomerName})
		}
		out[i].Rows++
		out[i].add(row)
	}
	return out
}

// ParseAmount reads the amount at the start of a line item ("10,000 (1st Prize: 32184)" -> 10000)
func ParseAmount(item string) int64 {
	field, _, _ := strings.Cut(strings.TrimSpace(item), " ")
	v, err := strconv.ParseInt(nonDigits.ReplaceAllString(field, ""), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
