package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/shopspring/decimal"
)

type pairEntry struct {
	price   decimal.Decimal
	missing bool
}

// RistrettoPairPriceCache keeps short-lived per-symbol prices from the exchange,
// including a negative marker for symbols the exchange does not list.
type RistrettoPairPriceCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

const (
	DefaultPairTTL      = 30 * time.Second
	defaultPairMaxItems = 1000
)

func NewPairPriceCache(maxItems int64, ttl time.Duration) (*RistrettoPairPriceCache, error) {
	if maxItems <= 0 {
		maxItems = defaultPairMaxItems
	}
	if ttl <= 0 {
		ttl = DefaultPairTTL
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create pair price cache failed: %w", err)
	}
	return &RistrettoPairPriceCache{cache: c, ttl: ttl}, nil
}

// Get returns the cached price of a symbol. found is false for symbols cached
// as missing; ok is false when nothing is cached.
func (c *RistrettoPairPriceCache) Get(symbol string) (price decimal.Decimal, found bool, ok bool) {
	v, ok := c.cache.Get(symbol)
	if !ok {
		return decimal.Zero, false, false
	}
	entry, ok := v.(pairEntry)
	if !ok {
		return decimal.Zero, false, false
	}
	return entry.price, !entry.missing, true
}

func (c *RistrettoPairPriceCache) SetPrice(symbol string, price decimal.Decimal) {
	c.cache.SetWithTTL(symbol, pairEntry{price: price}, 1, c.ttl)
}

func (c *RistrettoPairPriceCache) SetMissing(symbol string) {
	c.cache.SetWithTTL(symbol, pairEntry{missing: true}, 1, c.ttl)
}

func (c *RistrettoPairPriceCache) Close() { c.cache.Close() }
