package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"byrates/internal/metrics"
)

const (
	DefaultURL       = "https://myfin.by/currency/minsk"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36"

	feedName     = "myfin"
	maxPageBytes = 10 << 20
)

// Fetcher downloads the city rates page with browser-like headers.
type Fetcher struct {
	http      *http.Client
	url       string
	userAgent string
}

func NewFetcher(httpClient *http.Client, url, userAgent string) *Fetcher {
	if url == "" {
		url = DefaultURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Fetcher{http: httpClient, url: url, userAgent: userAgent}
}

func (f *Fetcher) Fetch(ctx context.Context) (res Result, err error) {
	start := time.Now()
	defer func() {
		metrics.UpstreamRequests.WithLabelValues(feedName, metrics.ResultLabel(err)).Inc()
		metrics.UpstreamDuration.WithLabelValues(feedName).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Referer", "https://myfin.by/")

	resp, err := f.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return Parse(io.LimitReader(resp.Body, maxPageBytes))
}
