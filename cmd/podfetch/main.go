// Command podfetch downloads the newest enclosures of the configured
// podcast feeds with a pool of concurrent fetch workers, then exits
// once the queue has drained.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	lg "github.com/Andrej220/go-utils/zlog"
	"github.com/azargarov/taskq"
	"github.com/azargarov/taskq/internal/config"
	"github.com/azargarov/taskq/internal/feed"
	"github.com/azargarov/taskq/internal/fetch"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "path to config file (optional, env vars with TASKQ_ prefix also apply)")
	flag.Parse()

	ctx := context.Background()
	logger := lg.FromContext(ctx)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Error("load config", lg.Any("error", err))
		os.Exit(1)
	}

	if err := run(ctx, cfg); err != nil {
		logger.Error("podfetch failed", lg.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := lg.FromContext(ctx)

	store, err := fetch.NewStore(cfg.OutputDir)
	if err != nil {
		return err
	}
	client := fetch.NewClient(cfg.UserAgent, cfg.HTTPTimeout)
	downloader := fetch.NewDownloader(client, store)

	metrics := &taskq.AtomicMetrics{}
	queue := taskq.NewFIFO[fetch.Job]()
	pool, err := taskq.New(queue, downloader.Download, taskq.Options{
		Workers: cfg.Workers,
		Metrics: metrics,
	})
	if err != nil {
		return err
	}

	source := feed.NewSource(cfg.UserAgent, cfg.EntryLimit)
	for _, feedURL := range cfg.Feeds {
		entries, err := source.Entries(ctx, feedURL)
		if err != nil {
			logger.Warn("skipping feed", lg.String("feed", feedURL), lg.Any("error", err))
			continue
		}
		for _, entry := range entries {
			for _, enclosure := range entry.Enclosures {
				job := fetch.NewJob(entry.Title, enclosure)
				if err := pool.Submit(taskq.Task[fetch.Job]{Payload: job, Ctx: ctx}); err != nil {
					return err
				}
				logger.Info("queued enclosure",
					lg.String("feed", feedURL),
					lg.String("title", entry.Title),
					lg.String("url", enclosure),
				)
			}
		}
	}

	logger.Info("waiting for downloads to finish", lg.Any("queued", metrics.Submitted()))
	queue.Join()

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := pool.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("done",
		lg.Any("downloaded", metrics.Executed()),
		lg.Any("failed", metrics.Failed()),
	)
	return nil
}
