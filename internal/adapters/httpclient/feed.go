package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"byrates/internal/domain"
	"byrates/internal/metrics"

	"github.com/eapache/go-resiliency/breaker"
)

const maxErrorBody = 4 << 10

// StatusError is returned for non-2xx upstream responses.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Status)
}

type BreakerConfig struct {
	ErrorThreshold   int
	SuccessThreshold int
	Timeout          time.Duration
}

func (c BreakerConfig) build() *breaker.Breaker {
	if c.ErrorThreshold <= 0 {
		c.ErrorThreshold = 5
	}
	if c.SuccessThreshold <= 0 {
		c.SuccessThreshold = 1
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return breaker.New(c.ErrorThreshold, c.SuccessThreshold, c.Timeout)
}

// feed performs JSON GETs against one upstream behind a circuit breaker.
// 4xx responses are returned to the caller but do not trip the breaker.
type feed struct {
	name    string
	http    *http.Client
	breaker *breaker.Breaker
}

func newFeed(name string, httpClient *http.Client, bc BreakerConfig) feed {
	return feed{name: name, http: httpClient, breaker: bc.build()}
}

func (f feed) getJSON(ctx context.Context, url string, v any) error {
	start := time.Now()
	var clientErr error
	err := f.breaker.Run(func() error {
		reqErr := f.doGet(ctx, url, v)
		var se *StatusError
		if errors.As(reqErr, &se) && se.StatusCode >= 400 && se.StatusCode < 500 {
			clientErr = reqErr
			return nil
		}
		return reqErr
	})
	metrics.UpstreamDuration.WithLabelValues(f.name).Observe(time.Since(start).Seconds())
	if err == nil {
		err = clientErr
	}
	metrics.UpstreamRequests.WithLabelValues(f.name, metrics.ResultLabel(err)).Inc()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrFetch, f.name, err)
	}
	return nil
}

func (f feed) doGet(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: body}
	}

	if err = json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
