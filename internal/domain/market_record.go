package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MarketRecord is one coin's market snapshot as returned by the markets endpoint.
// Records are read-only once loaded; derived views reorder them but never mutate.
type MarketRecord struct {
	ID                       string              `json:"id"`
	Name                     string              `json:"name"`
	Symbol                   string              `json:"symbol"`
	Image                    string              `json:"image"`
	CurrentPrice             decimal.Decimal     `json:"current_price"`
	MarketCap                decimal.Decimal     `json:"market_cap"`
	MarketCapRank            decimal.NullDecimal `json:"market_cap_rank"`
	PriceChangePercentage24h decimal.NullDecimal `json:"price_change_percentage_24h"`
}

// DisplayName returns "Name (SYMBOL)"
func (r MarketRecord) DisplayName() string {
	return r.Name + " (" + strings.ToUpper(r.Symbol) + ")"
}

// ChangeDirection returns "positive", "negative", or "neutral".
// A missing 24h change is neutral; zero counts as positive.
func (r MarketRecord) ChangeDirection() string {
	if !r.PriceChangePercentage24h.Valid {
		return "neutral"
	}
	if r.PriceChangePercentage24h.Decimal.IsNegative() {
		return "negative"
	}
	return "positive"
}

// FieldValue is a single column value read off a record for comparison.
type FieldValue struct {
	Text   string
	Number decimal.Decimal
	IsText bool
}

// Field reads the value of key off the record. Null numerics read as zero.
func (r MarketRecord) Field(key SortKey) FieldValue {
	switch key {
	case SortByName:
		return FieldValue{Text: r.Name, IsText: true}
	case SortBySymbol:
		return FieldValue{Text: r.Symbol, IsText: true}
	case SortByPrice:
		return FieldValue{Number: r.CurrentPrice}
	case SortByMarketCap:
		return FieldValue{Number: r.MarketCap}
	case SortByRank:
		return FieldValue{Number: nullToZero(r.MarketCapRank)}
	case SortByChange24h:
		return FieldValue{Number: nullToZero(r.PriceChangePercentage24h)}
	default:
		return FieldValue{Number: decimal.Zero}
	}
}

func nullToZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}
