package scraper

import (
	"context"
	"fmt"

	"byrates/internal/metrics"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

type Job struct {
	fetcher *Fetcher
	output  string
}

func NewJob(fetcher *Fetcher, output string) *Job {
	return &Job{fetcher: fetcher, output: output}
}

// Run scrapes the page once and replaces the snapshot. On any failure the
// previous snapshot stays in place.
func (j *Job) Run(ctx context.Context, execID string) (err error) {
	log := logrus.WithFields(logrus.Fields{"exec_id": execID, "output": j.output})
	defer func() { metrics.ScrapeRuns.WithLabelValues(metrics.ResultLabel(err)).Inc() }()

	res, err := j.fetcher.Fetch(ctx)
	if res.RowErrors != nil {
		rowErrs := multierr.Errors(res.RowErrors)
		log.WithField("skipped", len(rowErrs)).Warn("Some rows could not be parsed")
		for _, e := range rowErrs {
			log.WithError(e).Debug("Skipped row")
		}
	}
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	if err = WriteSnapshot(j.output, res.Quotes); err != nil {
		return err
	}
	metrics.SnapshotBanks.Set(float64(len(res.Quotes)))
	log.WithField("banks", len(res.Quotes)).Info("Bank snapshot updated")
	return nil
}
