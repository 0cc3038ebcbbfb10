package service

import (
	"sort"
	"strings"

	"coin_tracker/internal/domain"
)

// FilterRecords keeps records whose lowercased name or symbol contains the
// lowercased search text. Source order is preserved and the input is not modified.
func FilterRecords(records []domain.MarketRecord, search string) []domain.MarketRecord {
	result := make([]domain.MarketRecord, 0, len(records))
	if search == "" {
		return append(result, records...)
	}

	needle := strings.ToLower(search)
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), needle) ||
			strings.Contains(strings.ToLower(r.Symbol), needle) {
			result = append(result, r)
		}
	}
	return result
}

// SortRecords returns a new slice ordered by spec. The sort is stable, so
// records comparing equal keep their relative order in either direction.
func SortRecords(records []domain.MarketRecord, spec domain.SortSpec) []domain.MarketRecord {
	result := make([]domain.MarketRecord, len(records))
	copy(result, records)

	if spec.Key == "" {
		return result
	}

	sort.SliceStable(result, func(i, j int) bool {
		c := compareField(result[i].Field(spec.Key), result[j].Field(spec.Key))
		if spec.Direction == domain.Descending {
			c = -c
		}
		return c < 0
	})
	return result
}

// compareField returns -1, 0 or 1. Text compares case-insensitively.
func compareField(a, b domain.FieldValue) int {
	if a.IsText && b.IsText {
		return strings.Compare(strings.ToLower(a.Text), strings.ToLower(b.Text))
	}
	return a.Number.Cmp(b.Number)
}

// NextSortSpec implements the sort-request action: the active key while
// ascending flips to descending, anything else resets to ascending on key.
func NextSortSpec(current domain.SortSpec, key domain.SortKey) domain.SortSpec {
	if current.Key == key && current.Direction == domain.Ascending {
		return domain.SortSpec{Key: key, Direction: domain.Descending}
	}
	return domain.SortSpec{Key: key, Direction: domain.Ascending}
}
