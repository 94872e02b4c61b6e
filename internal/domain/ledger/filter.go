package ledger

// Filter narrows a sales listing by calendar components of the sale date.
// Index, when set, selects a single record by its 1-based position in the
// list that remains after the date filters are applied.
type Filter struct {
	Year  *int
	Month *int // 1..12
	Day   *int // 1..31
	Index *int // 1-based position into the filtered list
}

// Apply returns the sales matching the filter, preserving ledger order
func (f Filter) Apply(sales []Sale) []Sale {
	filtered := make([]Sale, 0, len(sales))
	for _, s := range sales {
		if f.Year != nil && s.SaleDate.Year() != *f.Year {
			continue
		}
		if f.Month != nil && int(s.SaleDate.Month()) != *f.Month {
			continue
		}
		if f.Day != nil && s.SaleDate.Day() != *f.Day {
			continue
		}
		filtered = append(filtered, s)
	}

	if f.Index != nil {
		i := *f.Index
		if i < 1 || i > len(filtered) {
			return []Sale{}
		}
		return filtered[i-1 : i]
	}
	return filtered
}
