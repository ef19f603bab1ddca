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

var errNoSupportedRates = errors.New("response contains none of the supported currencies")

type fiatTable = map[domain.CurrencyCode]domain.FiatRate

// OfficialRateSource serves official rates of the fetched fiat currencies
// against the home currency.
type OfficialRateSource struct {
	client adapters.OfficialRateClient
	cache  *cache.RateCache[fiatTable]
}

func NewOfficialRateSource(client adapters.OfficialRateClient, ttl time.Duration) *OfficialRateSource {
	s := &OfficialRateSource{client: client}
	s.cache = cache.NewRateCache("official", ttl, s.Fetch)
	return s
}

// Fetch reads the feed and keeps only the configured fiat currencies.
func (s *OfficialRateSource) Fetch(ctx context.Context) (fiatTable, error) {
	all, err := s.client.GetRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch official rates: %w", err)
	}

	wanted := make(map[domain.CurrencyCode]struct{})
	for _, c := range domain.FetchedFiat() {
		wanted[c] = struct{}{}
	}

	rates := make(fiatTable, len(wanted))
	for _, r := range all {
		if _, ok := wanted[r.Currency]; !ok {
			continue
		}
		if r.Scale <= 0 || !r.OfficialRate.IsPositive() {
			logrus.WithFields(logrus.Fields{"currency": r.Currency, "rate": r.OfficialRate, "scale": r.Scale}).
				Warn("Skipping official rate with non-positive value")
			continue
		}
		rates[r.Currency] = r
	}
	if len(rates) == 0 {
		return nil, errNoSupportedRates
	}
	return rates, nil
}

// Rates returns the cached table, refreshing it when stale. It never fails:
// with no data at all the result is empty.
func (s *OfficialRateSource) Rates(ctx context.Context) fiatTable {
	rates, ok := s.cache.Get(ctx)
	if !ok {
		return fiatTable{}
	}
	return maps.Clone(rates)
}

func (s *OfficialRateSource) Rate(ctx context.Context, code domain.CurrencyCode) (domain.FiatRate, bool) {
	r, ok := s.Rates(ctx)[code]
	return r, ok
}

// PerUnit returns the home-currency price of one unit of a fiat currency.
// The home currency itself is always 1.
func (s *OfficialRateSource) PerUnit(ctx context.Context, code domain.CurrencyCode) (decimal.Decimal, bool) {
	if code == domain.HomeCurrency {
		return decimal.NewFromInt(1), true
	}
	r, ok := s.Rate(ctx, code)
	if !ok {
		return decimal.Zero, false
	}
	return r.PerUnit(), true
}

func (s *OfficialRateSource) UpdatedAt() (time.Time, bool) { return s.cache.FetchedAt() }
