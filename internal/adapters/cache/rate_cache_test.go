package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type scriptedFetch struct {
	calls   atomic.Int32
	results []map[string]int
	errs    []error
}

func (s *scriptedFetch) fetch(context.Context) (map[string]int, error) {
	i := int(s.calls.Add(1)) - 1
	if i >= len(s.results) {
		i = len(s.results) - 1
	}
	return s.results[i], s.errs[i]
}

func newTestCache(t *testing.T, f FetchFunc[map[string]int]) (*RateCache[map[string]int], *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	c := NewRateCache("test", time.Hour, f)
	c.now = clock.Now
	return c, clock
}

func TestRateCache_GetWithinTTLReturnsSamePayload(t *testing.T) {
	src := &scriptedFetch{
		results: []map[string]int{{"USD": 1}},
		errs:    []error{nil},
	}
	c, clock := newTestCache(t, src.fetch)

	first, ok := c.Get(context.Background())
	require.True(t, ok)
	clock.Advance(59 * time.Minute)
	second, ok := c.Get(context.Background())
	require.True(t, ok)

	require.Equal(t, first, second)
	require.Equal(t, int32(1), src.calls.Load())
}

func TestRateCache_RefreshesAfterTTL(t *testing.T) {
	src := &scriptedFetch{
		results: []map[string]int{{"USD": 1}, {"USD": 2}},
		errs:    []error{nil, nil},
	}
	c, clock := newTestCache(t, src.fetch)

	_, ok := c.Get(context.Background())
	require.True(t, ok)
	clock.Advance(time.Hour)

	got, ok := c.Get(context.Background())
	require.True(t, ok)
	require.Equal(t, map[string]int{"USD": 2}, got)
	require.Equal(t, int32(2), src.calls.Load())
}

func TestRateCache_StaleFallbackOnFailedRefresh(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	src := &scriptedFetch{
		results: []map[string]int{{"USD": 1}, nil},
		errs:    []error{nil, errors.New("timeout")},
	}
	c, clock := newTestCache(t, src.fetch)

	first, ok := c.Get(context.Background())
	require.True(t, ok)
	fetchedAt, _ := c.FetchedAt()

	clock.Advance(3 * time.Hour)
	got, ok := c.Get(context.Background())
	require.True(t, ok)
	require.Equal(t, first, got)

	// the failed refresh must not move the timestamp
	after, _ := c.FetchedAt()
	require.Equal(t, fetchedAt, after)

	require.NotNil(t, hook.LastEntry())
	require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	require.Equal(t, "test", hook.LastEntry().Data["source"])
}

func TestRateCache_EmptyWhenFirstFetchFails(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	src := &scriptedFetch{
		results: []map[string]int{nil},
		errs:    []error{errors.New("connection refused")},
	}
	c, _ := newTestCache(t, src.fetch)

	got, ok := c.Get(context.Background())
	require.False(t, ok)
	require.Nil(t, got)
	_, has := c.FetchedAt()
	require.False(t, has)
	require.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestRateCache_RetriesOnEveryGetWhileEmpty(t *testing.T) {
	src := &scriptedFetch{
		results: []map[string]int{nil, {"EUR": 3}},
		errs:    []error{errors.New("boom"), nil},
	}
	c, _ := newTestCache(t, src.fetch)

	_, ok := c.Get(context.Background())
	require.False(t, ok)

	got, ok := c.Get(context.Background())
	require.True(t, ok)
	require.Equal(t, map[string]int{"EUR": 3}, got)
}

func TestRateCache_RefreshErrorKeepsPreviousPayload(t *testing.T) {
	src := &scriptedFetch{
		results: []map[string]int{{"USD": 1}, {"USD": 99}},
		errs:    []error{nil, errors.New("partial response")},
	}
	c, _ := newTestCache(t, src.fetch)

	_, err := c.Refresh(context.Background())
	require.NoError(t, err)

	_, err = c.Refresh(context.Background())
	require.Error(t, err)

	got, ok := c.Get(context.Background())
	require.True(t, ok)
	require.Equal(t, map[string]int{"USD": 1}, got)
}

func TestRateCache_ConcurrentGetFetchesOnce(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	c, _ := newTestCache(t, func(context.Context) (map[string]int, error) {
		calls.Add(1)
		<-release
		return map[string]int{"USD": 1}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, ok := c.Get(context.Background())
			assert.True(t, ok)
			assert.Equal(t, 1, got["USD"])
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, int32(1), calls.Load())
}

func TestNewRateCache_DefaultsTTL(t *testing.T) {
	c := NewRateCache("x", 0, func(context.Context) (int, error) { return 1, nil })
	require.Equal(t, DefaultTTL, c.ttl)
}
