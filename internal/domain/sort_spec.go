package domain

// SortKey names a sortable column by its wire field name.
type SortKey string

const (
	SortByRank      SortKey = "market_cap_rank"
	SortByName      SortKey = "name"
	SortBySymbol    SortKey = "symbol"
	SortByPrice     SortKey = "current_price"
	SortByChange24h SortKey = "price_change_percentage_24h"
	SortByMarketCap SortKey = "market_cap"
)

// SortKeys lists every accepted key.
var SortKeys = []SortKey{SortByRank, SortByName, SortBySymbol, SortByPrice, SortByChange24h, SortByMarketCap}

// Valid reports whether k is a known column.
func (k SortKey) Valid() bool {
	for _, known := range SortKeys {
		if k == known {
			return true
		}
	}
	return false
}

// IsText reports whether values under k compare as text.
func (k SortKey) IsText() bool {
	return k == SortByName || k == SortBySymbol
}

// SortDirection is either ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortSpec is the active sort column and direction.
type SortSpec struct {
	Key       SortKey       `json:"key"`
	Direction SortDirection `json:"direction"`
}

// DefaultSortSpec sorts by market cap rank, ascending.
func DefaultSortSpec() SortSpec {
	return SortSpec{Key: SortByRank, Direction: Ascending}
}

// Indicator returns the arrow shown next to the active column.
func (d SortDirection) Indicator() string {
	if d == Descending {
		return "▼"
	}
	return "▲"
}
