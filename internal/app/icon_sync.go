package app

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"coin_tracker/internal/domain"
	"coin_tracker/internal/infra"

	"golang.org/x/time/rate"
)

// IconSync mirrors record icons to disk and records them in the catalog.
// Failures are logged and counted; they never reach the table.
type IconSync struct {
	Catalog     domain.IconCatalog
	Fetcher     domain.IconFetcher
	Limiter     *rate.Limiter
	Concurrency int
	Metrics     *infra.Metrics
	OnSynced    func(id string)
}

// Run blocks until every record has been handled or ctx is cancelled
func (s *IconSync) Run(ctx context.Context, records []domain.MarketRecord) {
	slog.Info("🔄 Starting icon synchronization...", slog.Int("records", len(records)))

	s.Prune()

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, concurrency) // Limit concurrent downloads

	for _, record := range records {
		if record.ID == "" || record.Image == "" {
			continue
		}

		wg.Add(1)
		go func(rec domain.MarketRecord) {
			defer wg.Done()
			select {
			case <-ctx.Done():
				return
			case semaphore <- struct{}{}: // Acquire
			}
			defer func() { <-semaphore }() // Release

			s.syncOne(ctx, rec)
		}(record)
	}

	wg.Wait()
	slog.Info("✨ Icon synchronization completed")
}

func (s *IconSync) syncOne(ctx context.Context, rec domain.MarketRecord) {
	existing, err := s.Catalog.GetCoin(rec.ID)
	if err != nil {
		slog.Warn("Failed to read icon catalog", slog.String("id", rec.ID), slog.Any("error", err))
	}
	if existing.HasIcon() && iconOnDisk(existing.IconPath) {
		s.notify(rec.ID)
		return
	}

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return
		}
	}

	path, err := s.Fetcher.DownloadIcon(ctx, rec.ID, rec.Image)
	if err != nil {
		s.recordError()
		slog.Warn("Failed to download icon", slog.String("id", rec.ID), slog.Any("error", err))
		return
	}

	coin := &domain.CoinInfo{
		ID:           rec.ID,
		Symbol:       rec.Symbol,
		Name:         rec.Name,
		ImageURL:     rec.Image,
		IconPath:     path,
		LastSyncedAt: time.Now(),
	}
	if existing != nil {
		coin.CreatedAt = existing.CreatedAt
	}
	if err := s.Catalog.UpsertCoin(coin); err != nil {
		slog.Error("Failed to upsert coin", slog.String("id", rec.ID), slog.Any("error", err))
	}

	if s.Metrics != nil {
		s.Metrics.RecordIconSynced()
	}
	s.notify(rec.ID)
}

// Prune drops catalog entries whose icon file no longer exists, so the next
// sync downloads them again. Returns the number of removed entries.
func (s *IconSync) Prune() int {
	coins, err := s.Catalog.GetAllCoins()
	if err != nil {
		slog.Warn("Failed to list icon catalog", slog.Any("error", err))
		return 0
	}

	removed := 0
	for _, coin := range coins {
		if !coin.HasIcon() || iconOnDisk(coin.IconPath) {
			continue
		}
		if err := s.Catalog.DeleteCoin(coin.ID); err != nil {
			slog.Warn("Failed to prune catalog entry", slog.String("id", coin.ID), slog.Any("error", err))
			continue
		}
		removed++
	}

	if removed > 0 {
		slog.Info("🧹 Pruned stale icon entries", slog.Int("count", removed))
	}
	return removed
}

func iconOnDisk(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func (s *IconSync) recordError() {
	if s.Metrics != nil {
		s.Metrics.RecordIconError()
	}
}

func (s *IconSync) notify(id string) {
	if s.OnSynced != nil {
		s.OnSynced(id)
	}
}
