package service

import (
	"strings"
	"testing"

	"coin_tracker/internal/domain"

	"github.com/shopspring/decimal"
)

func rank(n int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(n))
}

func change(f float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(f))
}

func sampleRecords() []domain.MarketRecord {
	return []domain.MarketRecord{
		{
			ID: "btc", Name: "Bitcoin", Symbol: "btc",
			CurrentPrice:             decimal.NewFromInt(50000),
			MarketCap:                decimal.NewFromInt(900000000000),
			MarketCapRank:            rank(1),
			PriceChangePercentage24h: change(2.5),
		},
		{
			ID: "eth", Name: "Ethereum", Symbol: "eth",
			CurrentPrice:             decimal.NewFromInt(3000),
			MarketCap:                decimal.NewFromInt(400000000000),
			MarketCapRank:            rank(2),
			PriceChangePercentage24h: change(-1.2),
		},
	}
}

func ids(records []domain.MarketRecord) string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return strings.Join(out, ",")
}

func TestFilterRecords(t *testing.T) {
	records := append(sampleRecords(), domain.MarketRecord{ID: "steth", Name: "Lido Staked Ether", Symbol: "stETH"})

	t.Run("empty search keeps everything in order", func(t *testing.T) {
		got := FilterRecords(records, "")
		if ids(got) != "btc,eth,steth" {
			t.Errorf("Expected all records, got %s", ids(got))
		}
	})

	t.Run("matches name or symbol case-insensitively", func(t *testing.T) {
		got := FilterRecords(records, "ETH")
		if ids(got) != "eth,steth" {
			t.Errorf("Expected eth,steth, got %s", ids(got))
		}
		for _, r := range got {
			name := strings.ToLower(r.Name)
			symbol := strings.ToLower(r.Symbol)
			if !strings.Contains(name, "eth") && !strings.Contains(symbol, "eth") {
				t.Errorf("Record %s does not match search", r.ID)
			}
		}
	})

	t.Run("no match", func(t *testing.T) {
		if got := FilterRecords(records, "doge"); len(got) != 0 {
			t.Errorf("Expected no records, got %s", ids(got))
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		got := FilterRecords(records, "")
		got[0].Name = "changed"
		if records[0].Name != "Bitcoin" {
			t.Error("FilterRecords must return a fresh slice")
		}
	})
}

func TestFilterRecords_Scenario(t *testing.T) {
	got := FilterRecords(sampleRecords(), "eth")
	if len(got) != 1 || got[0].Name != "Ethereum" {
		t.Errorf("Expected only Ethereum, got %s", ids(got))
	}
}

func TestSortRecords_Scenario(t *testing.T) {
	records := sampleRecords()

	if got := SortRecords(records, domain.DefaultSortSpec()); ids(got) != "btc,eth" {
		t.Errorf("Default sort: expected btc,eth, got %s", ids(got))
	}

	desc := domain.SortSpec{Key: domain.SortByPrice, Direction: domain.Descending}
	if got := SortRecords(records, desc); ids(got) != "btc,eth" {
		t.Errorf("Price desc: expected btc,eth, got %s", ids(got))
	}

	asc := domain.SortSpec{Key: domain.SortByPrice, Direction: domain.Ascending}
	if got := SortRecords(records, asc); ids(got) != "eth,btc" {
		t.Errorf("Price asc: expected eth,btc, got %s", ids(got))
	}
}

func TestSortRecords_TextIsCaseInsensitive(t *testing.T) {
	records := []domain.MarketRecord{
		{ID: "b", Name: "beta"},
		{ID: "a", Name: "Alpha"},
		{ID: "c", Name: "Charlie"},
	}

	got := SortRecords(records, domain.SortSpec{Key: domain.SortByName, Direction: domain.Ascending})
	if ids(got) != "a,b,c" {
		t.Errorf("Expected a,b,c, got %s", ids(got))
	}

	got = SortRecords(records, domain.SortSpec{Key: domain.SortByName, Direction: domain.Descending})
	if ids(got) != "c,b,a" {
		t.Errorf("Expected c,b,a, got %s", ids(got))
	}
}

func TestSortRecords_NullSortsAsZero(t *testing.T) {
	records := []domain.MarketRecord{
		{ID: "up", PriceChangePercentage24h: change(1.5)},
		{ID: "flat", PriceChangePercentage24h: change(0)},
		{ID: "null"},
		{ID: "down", PriceChangePercentage24h: change(-3)},
	}

	got := SortRecords(records, domain.SortSpec{Key: domain.SortByChange24h, Direction: domain.Ascending})
	if ids(got) != "down,flat,null,up" {
		t.Errorf("Expected null among zero values, got %s", ids(got))
	}
}

func TestSortRecords_StableAndIdempotent(t *testing.T) {
	records := []domain.MarketRecord{
		{ID: "a", MarketCapRank: rank(2)},
		{ID: "b", MarketCapRank: rank(1)},
		{ID: "c", MarketCapRank: rank(2)},
		{ID: "d"},
		{ID: "e", MarketCapRank: rank(1)},
	}

	for _, key := range domain.SortKeys {
		for _, dir := range []domain.SortDirection{domain.Ascending, domain.Descending} {
			spec := domain.SortSpec{Key: key, Direction: dir}
			once := SortRecords(records, spec)
			twice := SortRecords(once, spec)
			if ids(once) != ids(twice) {
				t.Errorf("%s %s: sorting twice changed order: %s vs %s", key, dir, ids(once), ids(twice))
			}
		}
	}

	asc := SortRecords(records, domain.SortSpec{Key: domain.SortByRank, Direction: domain.Ascending})
	if ids(asc) != "d,b,e,a,c" {
		t.Errorf("Expected stable ascending order d,b,e,a,c, got %s", ids(asc))
	}

	desc := SortRecords(records, domain.SortSpec{Key: domain.SortByRank, Direction: domain.Descending})
	if ids(desc) != "a,c,b,e,d" {
		t.Errorf("Expected stable descending order a,c,b,e,d, got %s", ids(desc))
	}
}

func TestSortRecords_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	SortRecords(records, domain.SortSpec{Key: domain.SortByPrice, Direction: domain.Ascending})
	if ids(records) != "btc,eth" {
		t.Errorf("Input reordered: %s", ids(records))
	}
}

func TestNextSortSpec(t *testing.T) {
	spec := domain.DefaultSortSpec()

	spec = NextSortSpec(spec, domain.SortByRank)
	if spec.Direction != domain.Descending {
		t.Errorf("Same key while ascending should flip to desc, got %+v", spec)
	}

	spec = NextSortSpec(spec, domain.SortByRank)
	if spec.Direction != domain.Ascending {
		t.Errorf("Same key while descending should reset to asc, got %+v", spec)
	}

	spec = NextSortSpec(domain.SortSpec{Key: domain.SortByRank, Direction: domain.Descending}, domain.SortByName)
	if spec.Key != domain.SortByName || spec.Direction != domain.Ascending {
		t.Errorf("Different key should reset to asc, got %+v", spec)
	}
}
