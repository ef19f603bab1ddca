package rate

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"byrates/internal/adapters"
	"byrates/internal/adapters/cache"
	"byrates/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// DefaultQuoteAsset is the exchange asset standing in for the reference fiat.
const DefaultQuoteAsset = "USDT"

var errNoCryptoPrices = errors.New("response contains none of the supported crypto symbols")

type cryptoTable = map[domain.CurrencyCode]domain.CryptoRate

type FiatRateReader interface {
	Rate(ctx context.Context, code domain.CurrencyCode) (domain.FiatRate, bool)
	PerUnit(ctx context.Context, code domain.CurrencyCode) (decimal.Decimal, bool)
}

// CryptoRateSource serves spot prices of the supported crypto currencies in
// the reference fiat and, when the official USD rate is known, in BYN.
type CryptoRateSource struct {
	client     adapters.CryptoPriceClient
	official   FiatRateReader
	quoteAsset string
	cache      *cache.RateCache[cryptoTable]
}

func NewCryptoRateSource(client adapters.CryptoPriceClient, official FiatRateReader, quoteAsset string, ttl time.Duration) *CryptoRateSource {
	if quoteAsset == "" {
		quoteAsset = DefaultQuoteAsset
	}
	s := &CryptoRateSource{client: client, official: official, quoteAsset: quoteAsset}
	s.cache = cache.NewRateCache("crypto", ttl, s.Fetch)
	return s
}

func (s *CryptoRateSource) Fetch(ctx context.Context) (cryptoTable, error) {
	prices, err := s.client.AllPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch crypto prices: %w", err)
	}

	usd, hasUSD := s.official.Rate(ctx, domain.ReferenceFiat)
	if !hasUSD {
		logrus.Warn("Official USD rate unavailable, crypto prices in BYN are left empty")
	}

	rates := make(cryptoTable, len(domain.CryptoSet))
	for _, c := range domain.CryptoSet {
		symbol := string(c) + s.quoteAsset
		price, ok := prices[symbol]
		if !ok {
			logrus.WithField("symbol", symbol).Debug("Symbol missing from price feed")
			continue
		}
		r := domain.CryptoRate{Currency: c, PriceUSD: price}
		if hasUSD && usd.Scale > 0 {
			byn := price.Mul(usd.OfficialRate).Div(decimal.NewFromInt(int64(usd.Scale)))
			r.PriceBYN = &byn
		}
		rates[c] = r
	}
	if len(rates) == 0 {
		return nil, errNoCryptoPrices
	}
	return rates, nil
}

// Rates returns the cached table; empty when nothing was ever fetched.
func (s *CryptoRateSource) Rates(ctx context.Context) cryptoTable {
	rates, ok := s.cache.Get(ctx)
	if !ok {
		return cryptoTable{}
	}
	return maps.Clone(rates)
}

func (s *CryptoRateSource) Rate(ctx context.Context, code domain.CurrencyCode) (domain.CryptoRate, bool) {
	r, ok := s.Rates(ctx)[code]
	return r, ok
}

func (s *CryptoRateSource) QuoteAsset() string { return s.quoteAsset }

func (s *CryptoRateSource) UpdatedAt() (time.Time, bool) { return s.cache.FetchedAt() }
