package rate

import (
	"context"
	"sync"

	"byrates/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Testify mocks ---

type MockOfficialRateClient struct{ mock.Mock }

func (m *MockOfficialRateClient) GetRates(ctx context.Context) ([]domain.FiatRate, error) {
	args := m.Called(ctx)
	rates, _ := args.Get(0).([]domain.FiatRate)
	return rates, args.Error(1)
}

type MockCryptoPriceClient struct{ mock.Mock }

func (m *MockCryptoPriceClient) AllPrices(ctx context.Context) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx)
	prices, _ := args.Get(0).(map[string]decimal.Decimal)
	return prices, args.Error(1)
}

func (m *MockCryptoPriceClient) Price(ctx context.Context, symbol string) (decimal.Decimal, error) {
	args := m.Called(ctx, symbol)
	price, _ := args.Get(0).(decimal.Decimal)
	return price, args.Error(1)
}

// --- Stubs ---

type stubFiat map[domain.CurrencyCode]domain.FiatRate

func (s stubFiat) Rate(_ context.Context, code domain.CurrencyCode) (domain.FiatRate, bool) {
	r, ok := s[code]
	return r, ok
}

func (s stubFiat) PerUnit(_ context.Context, code domain.CurrencyCode) (decimal.Decimal, bool) {
	if code == domain.HomeCurrency {
		return decimal.NewFromInt(1), true
	}
	r, ok := s[code]
	if !ok {
		return decimal.Zero, false
	}
	return r.PerUnit(), true
}

type stubCrypto map[domain.CurrencyCode]domain.CryptoRate

func (s stubCrypto) Rate(_ context.Context, code domain.CurrencyCode) (domain.CryptoRate, bool) {
	r, ok := s[code]
	return r, ok
}

type memPairs struct {
	mu      sync.Mutex
	prices  map[string]decimal.Decimal
	missing map[string]bool
}

func newMemPairs() *memPairs {
	return &memPairs{prices: map[string]decimal.Decimal{}, missing: map[string]bool{}}
}

func (p *memPairs) Get(symbol string) (decimal.Decimal, bool, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.missing[symbol] {
		return decimal.Zero, false, true
	}
	price, ok := p.prices[symbol]
	return price, true, ok
}

func (p *memPairs) SetPrice(symbol string, price decimal.Decimal) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prices[symbol] = price
}

func (p *memPairs) SetMissing(symbol string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.missing[symbol] = true
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func fiatRate(code domain.CurrencyCode, rate string, scale int) domain.FiatRate {
	return domain.FiatRate{Currency: code, OfficialRate: dec(rate), Scale: scale}
}
