package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMarketRecord_DecodeNulls(t *testing.T) {
	body := `[
		{"id":"btc","name":"Bitcoin","symbol":"btc","image":"https://img/btc.png","current_price":50000,"market_cap":900000000000,"market_cap_rank":1,"price_change_percentage_24h":2.5},
		{"id":"new","name":"Newcoin","symbol":"new","image":"","current_price":0.5,"market_cap":10,"market_cap_rank":null,"price_change_percentage_24h":null}
	]`

	var records []MarketRecord
	if err := json.Unmarshal([]byte(body), &records); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	btc := records[0]
	if !btc.CurrentPrice.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("Expected price 50000, got %v", btc.CurrentPrice)
	}
	if !btc.MarketCapRank.Valid || !btc.MarketCapRank.Decimal.Equal(decimal.NewFromInt(1)) {
		t.Errorf("Expected rank 1, got %+v", btc.MarketCapRank)
	}

	newcoin := records[1]
	if newcoin.MarketCapRank.Valid {
		t.Error("Expected null rank to decode as invalid")
	}
	if newcoin.PriceChangePercentage24h.Valid {
		t.Error("Expected null change to decode as invalid")
	}
}

func TestMarketRecord_ChangeDirection(t *testing.T) {
	tests := []struct {
		name   string
		change decimal.NullDecimal
		want   string
	}{
		{"null", decimal.NullDecimal{}, "neutral"},
		{"positive", decimal.NewNullDecimal(decimal.NewFromFloat(2.5)), "positive"},
		{"zero", decimal.NewNullDecimal(decimal.Zero), "positive"},
		{"negative", decimal.NewNullDecimal(decimal.NewFromFloat(-1.2)), "negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := MarketRecord{PriceChangePercentage24h: tt.change}
			if got := r.ChangeDirection(); got != tt.want {
				t.Errorf("ChangeDirection() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarketRecord_Field(t *testing.T) {
	r := MarketRecord{Name: "Bitcoin", Symbol: "btc", CurrentPrice: decimal.NewFromInt(50000)}

	if v := r.Field(SortByName); !v.IsText || v.Text != "Bitcoin" {
		t.Errorf("Unexpected name field: %+v", v)
	}
	if v := r.Field(SortByPrice); v.IsText || !v.Number.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("Unexpected price field: %+v", v)
	}
	if v := r.Field(SortByRank); !v.Number.IsZero() {
		t.Errorf("Expected null rank to read as zero, got %v", v.Number)
	}
	if v := r.Field(SortByChange24h); !v.Number.IsZero() {
		t.Errorf("Expected null change to read as zero, got %v", v.Number)
	}
}

func TestMarketRecord_DisplayName(t *testing.T) {
	r := MarketRecord{Name: "Ethereum", Symbol: "eth"}
	if got := r.DisplayName(); got != "Ethereum (ETH)" {
		t.Errorf("DisplayName() = %q", got)
	}
}
