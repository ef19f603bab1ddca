package adapters

import (
	"context"

	"byrates/internal/domain"

	"github.com/shopspring/decimal"
)

type OfficialRateClient interface {
	GetRates(ctx context.Context) ([]domain.FiatRate, error)
}

type CryptoPriceClient interface {
	AllPrices(ctx context.Context) (map[string]decimal.Decimal, error)
	Price(ctx context.Context, symbol string) (decimal.Decimal, error)
}

type PairPriceCache interface {
	Get(symbol string) (price decimal.Decimal, found bool, ok bool)
	SetPrice(symbol string, price decimal.Decimal)
	SetMissing(symbol string)
}
