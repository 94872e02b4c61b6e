package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DayBucket aggregates the sales of one calendar day. Profit is derived
// from revenue at a flat margin; the store does not track cost of goods.
type DayBucket struct {
	Date   string          `json:"date"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
	Profit decimal.Decimal `json:"profit"`
}

// Summary is the dashboard view over a set of sales
type Summary struct {
	SaleCount   int             `json:"saleCount"`
	GrandTotal  decimal.Decimal `json:"grandTotal"`
	GrandProfit decimal.Decimal `json:"grandProfit"`
	Days        []DayBucket     `json:"days"`
}

// Summarize buckets sales by calendar date and derives profit at the given
// margin. Buckets are ordered by date ascending.
func Summarize(sales []Sale, profitMargin decimal.Decimal) Summary {
	buckets := make(map[string]*DayBucket)
	grand := decimal.Zero

	for _, s := range sales {
		date := s.Date()
		b, ok := buckets[date]
		if !ok {
			b = &DayBucket{Date: date, Total: decimal.Zero}
			buckets[date] = b
		}
		b.Count++
		b.Total = b.Total.Add(s.Total)
		grand = grand.Add(s.Total)
	}

	days := make([]DayBucket, 0, len(buckets))
	for _, b := range buckets {
		b.Profit = b.Total.Mul(profitMargin)
		days = append(days, *b)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return Summary{
		SaleCount:   len(sales),
		GrandTotal:  grand,
		GrandProfit: grand.Mul(profitMargin),
		Days:        days,
	}
}
