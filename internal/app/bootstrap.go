package app

import (
	"context"
	"log/slog"
	"time"

	"coin_tracker/internal/infra"
	"coin_tracker/internal/infra/storage"
	"coin_tracker/internal/service"

	"golang.org/x/time/rate"
)

// Bootstrap orchestrates the application startup sequence
type Bootstrap struct {
	Config     *infra.Config
	Metrics    *infra.Metrics
	Storage    *storage.Storage
	Downloader *infra.IconDownloader
	Client     *infra.MarketsClient
	Dashboard  *service.Dashboard
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{Metrics: infra.GlobalMetrics}
}

// Initialize performs core system initialization (config, logger, DB, client)
func (b *Bootstrap) Initialize(configPath string) error {
	slog.Info("🚀 Bootstrapping Coin Tracker...")

	// 1. Load Config
	cfg, err := infra.LoadConfig(configPath)
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	// 2. Setup Logger
	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)

	// 3. Markets client and dashboard state
	b.Client = infra.NewMarketsClientWithConfig(b.Metrics, cfg.API.BaseURL, cfg.API.TimeoutSec)
	b.Dashboard = service.NewDashboard(b.Client)
	slog.Info("✅ Markets client ready", slog.String("url", b.Client.URL()))

	if !cfg.Icons.Enabled {
		slog.Info("Icon sync disabled")
		return nil
	}

	// 4. Initialize Storage (DB)
	store, err := storage.NewStorage(cfg.Storage.Path)
	if err != nil {
		return err
	}
	b.Storage = store
	slog.Info("✅ Icon catalog initialized")

	// 5. Initialize Icon Downloader
	downloader, err := infra.NewIconDownloader(cfg.Icons.Dir, cfg.Icons.Size)
	if err != nil {
		return err
	}
	b.Downloader = downloader
	slog.Info("✅ Icon downloader ready")

	return nil
}

// Start loads the market snapshot once and then mirrors icons in the background.
// onIcon is called for every icon that becomes available.
func (b *Bootstrap) Start(ctx context.Context, onIcon func(id string)) {
	if err := b.Dashboard.Load(ctx); err != nil {
		return
	}
	if b.Downloader == nil || b.Storage == nil {
		return
	}
	b.SyncAssets(ctx, onIcon)
}

// SyncAssets mirrors the icons of the loaded records
func (b *Bootstrap) SyncAssets(ctx context.Context, onIcon func(id string)) {
	syncer := &IconSync{
		Catalog:     b.Storage,
		Fetcher:     b.Downloader,
		Limiter:     rate.NewLimiter(rate.Limit(b.Config.Icons.RatePerSec), b.Config.Icons.Concurrency),
		Concurrency: b.Config.Icons.Concurrency,
		Metrics:     b.Metrics,
		OnSynced:    onIcon,
	}
	syncer.Run(ctx, b.Dashboard.State().Records)
}

// Close releases resources and logs a final metrics snapshot
func (b *Bootstrap) Close() {
	if b.Storage != nil {
		if err := b.Storage.Close(); err != nil {
			slog.Warn("Failed to close icon catalog", slog.Any("error", err))
		}
	}

	snap := b.Metrics.Snapshot()
	slog.Info("📊 Metrics",
		slog.Uint64("fetches", snap.FetchesTotal),
		slog.Uint64("fetch_errors", snap.FetchErrors),
		slog.Duration("avg_fetch_latency", time.Duration(snap.AvgFetchLatencyNs)),
		slog.Int64("records", snap.RecordsLoaded),
		slog.Uint64("icons_synced", snap.IconsSynced),
		slog.Uint64("icon_errors", snap.IconErrors),
		slog.Uint64("refreshes", snap.Refreshes),
	)
}
