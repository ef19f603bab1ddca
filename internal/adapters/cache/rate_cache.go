package cache

import (
	"context"
	"sync"
	"time"

	"byrates/internal/metrics"

	"github.com/sirupsen/logrus"
)

const DefaultTTL = time.Hour

type FetchFunc[T any] func(ctx context.Context) (T, error)

// RateCache keeps the most recent successful fetch of one source.
// The payload is replaced as a whole and only after a successful fetch.
// Initially empty; there is nothing to tear down.
type RateCache[T any] struct {
	name  string
	ttl   time.Duration
	fetch FetchFunc[T]
	now   func() time.Time

	// mu guards the whole check-refresh-store sequence
	mu        sync.Mutex
	payload   T
	fetchedAt time.Time
	ok        bool
}

func NewRateCache[T any](name string, ttl time.Duration, fetch FetchFunc[T]) *RateCache[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RateCache[T]{name: name, ttl: ttl, fetch: fetch, now: time.Now}
}

// Get returns the cached payload while it is fresh and refreshes it otherwise.
// When the refresh fails the last good payload is returned however old it is;
// with no payload at all Get reports false. Failures are only logged.
func (c *RateCache[T]) Get(ctx context.Context) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ok && c.now().Sub(c.fetchedAt) < c.ttl {
		metrics.CacheReads.WithLabelValues(c.name, metrics.CacheFresh).Inc()
		return c.payload, true
	}

	payload, err := c.refreshLocked(ctx)
	if err == nil {
		metrics.CacheReads.WithLabelValues(c.name, metrics.CacheRefreshed).Inc()
		return payload, true
	}

	log := logrus.WithError(err).WithField("source", c.name)
	if c.ok {
		log.WithField("fetched_at", c.fetchedAt).Warn("refresh failed, serving stale rates")
		metrics.CacheReads.WithLabelValues(c.name, metrics.CacheStale).Inc()
		return c.payload, true
	}
	log.Error("refresh failed and no cached rates available")
	metrics.CacheReads.WithLabelValues(c.name, metrics.CacheEmpty).Inc()
	var zero T
	return zero, false
}

// Refresh fetches a new payload unconditionally.
func (c *RateCache[T]) Refresh(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked(ctx)
}

// FetchedAt reports when the current payload was fetched.
func (c *RateCache[T]) FetchedAt() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchedAt, c.ok
}

func (c *RateCache[T]) refreshLocked(ctx context.Context) (T, error) {
	payload, err := c.fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.payload = payload
	c.fetchedAt = c.now()
	c.ok = true
	logrus.WithField("source", c.name).Debug("rates refreshed")
	return payload, nil
}
