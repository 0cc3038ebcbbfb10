package domain

import (
	"context"
)

// MarketsSource fetches the market snapshot list.
type MarketsSource interface {
	FetchMarkets(ctx context.Context) ([]MarketRecord, error)
}

// IconCatalog defines how mirrored icon metadata is looked up and recorded.
type IconCatalog interface {
	GetCoin(id string) (*CoinInfo, error)
	GetAllCoins() ([]CoinInfo, error)
	UpsertCoin(coin *CoinInfo) error
	DeleteCoin(id string) error
}

// IconFetcher downloads an icon and returns its local path.
type IconFetcher interface {
	DownloadIcon(ctx context.Context, id, imageURL string) (string, error)
}
