package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"byrates/internal/config"
	"byrates/internal/platform/logging"
	"byrates/internal/scraper"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ScraperOptions struct {
	ConfigPath string
	Output     string
	Interval   time.Duration
	Once       bool
}

// RunScraper refreshes the bank snapshot once or on a schedule until a
// signal arrives.
func RunScraper(opts ScraperOptions) error {
	appCfg, err := config.Init(opts.ConfigPath)
	if err != nil {
		return err
	}
	logging.Setup(appCfg.Logging.Level)

	output := opts.Output
	if output == "" {
		output = appCfg.Snapshot.Path
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = appCfg.Scraper.Interval
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{Timeout: appCfg.HTTPClient.Timeout()}
	job := scraper.NewJob(scraper.NewFetcher(httpClient, appCfg.Scraper.URL, appCfg.Scraper.UserAgent), output)

	if opts.Once {
		return job.Run(ctx, uuid.NewString())
	}

	sched := scraper.NewScheduler(job, interval)
	if err := sched.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start scheduler")
		return err
	}
	logrus.WithField("interval", interval).Info("✅ Scheduler activation successful")

	<-ctx.Done()
	return sched.Shutdown()
}
