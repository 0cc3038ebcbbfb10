package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"coin_tracker/internal/app"
	"coin_tracker/internal/infra"
	"coin_tracker/internal/ui"
)

func main() {
	// 1. System Bootstrapping
	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(infra.DefaultConfigPath); err != nil {
		slog.Error("❌ Bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer bootstrap.Close()

	// 2. Graceful Shutdown Context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Window
	cfg := bootstrap.Config
	a := fyneapp.NewWithID(ui.AppID)
	w := a.NewWindow(cfg.App.Name)
	w.Resize(fyne.NewSize(float32(cfg.UI.WindowWidth), float32(cfg.UI.WindowHeight)))

	var icons ui.IconSource
	if bootstrap.Downloader != nil {
		icons = bootstrap.Downloader
	}
	root := ui.NewRootUI(w, bootstrap.Dashboard, icons, bootstrap.Metrics)

	// 4. Load once, then mirror icons in the background
	go func() {
		bootstrap.Start(ctx, root.IconReady)
		fyne.Do(root.RefreshRows)
	}()

	go func() {
		<-ctx.Done()
		slog.Info("👋 Shutting down gracefully...")
		fyne.Do(a.Quit)
	}()

	slog.Info("✨ Coin Tracker started", slog.String("version", cfg.App.Version))
	w.ShowAndRun()
	stop()
}
