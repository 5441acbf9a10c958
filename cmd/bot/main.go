package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brainrot-value-bot/internal/api"
	"brainrot-value-bot/internal/commands"
	"brainrot-value-bot/internal/interfaces"
	"brainrot-value-bot/internal/logger"
	"brainrot-value-bot/internal/notify"
	"brainrot-value-bot/internal/reconcile"
	"brainrot-value-bot/internal/reconcile/reconcileobs"
	"brainrot-value-bot/internal/scraper"
	"brainrot-value-bot/internal/store"
	"brainrot-value-bot/internal/trace"
)

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	must(initializeSystem())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := loadConfig(ctx)
	must(err)

	compressOldLogs(ctx)

	// A store that exists but cannot be parsed is fatal: administrator
	// intent cannot be guessed.
	files, err := store.Open(cfg.DataDir)
	must(err)

	scr := scraper.New(
		cfg.SourceURL,
		time.Duration(cfg.FetchTimeoutSec)*time.Second,
		scraper.Selectors{
			Card:   cfg.Selectors.Card,
			Name:   cfg.Selectors.Name,
			Value:  cfg.Selectors.Value,
			Demand: cfg.Selectors.Demand,
		},
		cfg.DefaultIcon,
	)
	engine := reconcileobs.Wrap(reconcile.New(files))
	webhookBase := cfg.Notify.WebhookBase
	if v := os.Getenv("NOTIFY_WEBHOOK_BASE"); v != "" {
		webhookBase = v
	}
	notifier := notify.NewWebhook(webhookBase, time.Duration(cfg.Notify.TimeoutSec)*time.Second)

	handler := commands.NewHandler(files, notifier)
	server := api.NewServer(handler, cfg.API.Addr)
	go func() {
		logger.Info(ctx, "Command API listening", "addr", cfg.API.Addr)
		if err := server.ListenAndServe(); err != nil {
			logger.ErrorWithErr(ctx, "Command API stopped", err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	tick := time.NewTicker(time.Duration(cfg.ScrapeMinutes) * time.Minute)
	defer tick.Stop()

	logger.Info(ctx, "Bot started", "source", cfg.SourceURL, "interval_minutes", cfg.ScrapeMinutes)

	// Once at startup, then on the ticker.
	runCycle(ctx, scr, engine, files, notifier, cfg.Notify.SendLimit)

	for {
		select {
		case <-tick.C:
			runCycle(ctx, scr, engine, files, notifier, cfg.Notify.SendLimit)
		case <-sigc:
			logger.Info(ctx, "Shutting down")
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			_ = trace.Shutdown(shutdownCtx)
			done()
			return
		case <-ctx.Done():
			return
		}
	}
}

// runCycle runs one scrape/reconcile/notify pass. Every failure degrades
// to "no update this cycle": existing data is never touched on a bad
// fetch, and notifications only go out after the batch has been
// persisted.
func runCycle(ctx context.Context, scr *scraper.Scraper, engine interfaces.Reconciler, files *store.Files, notifier interfaces.Notifier, sendLimit int) {
	rows, err := scr.Fetch(ctx)
	if err != nil {
		logger.Warn(ctx, "Website fetch failed, using cached values", "error", err)
		return
	}

	candidates := scr.Normalize(rows)
	if len(candidates) == 0 {
		logger.Warn(ctx, "Source produced no usable entries, skipping cycle")
		return
	}

	changes, err := engine.Reconcile(ctx, candidates)
	if err != nil {
		logger.ErrorWithErr(ctx, "Reconciliation failed, no notifications this cycle", err)
		return
	}

	notify.AnnounceChanges(ctx, files, notifier, changes, sendLimit)
}
