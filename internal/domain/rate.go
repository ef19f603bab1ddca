package domain

import (
	"github.com/shopspring/decimal"
)

// FiatRate means Scale units of Currency cost OfficialRate units of BYN.
type FiatRate struct {
	Currency     CurrencyCode    `json:"currency"`
	OfficialRate decimal.Decimal `json:"official_rate"`
	Scale        int             `json:"scale"`
}

// PerUnit returns the BYN price of a single unit of the currency.
func (r FiatRate) PerUnit() decimal.Decimal {
	if r.Scale <= 0 {
		return decimal.Zero
	}
	return r.OfficialRate.Div(decimal.NewFromInt(int64(r.Scale)))
}

// CryptoRate is a spot price in the reference fiat and, when the official USD
// rate was known at fetch time, in the home currency.
type CryptoRate struct {
	Currency CurrencyCode     `json:"currency"`
	PriceUSD decimal.Decimal  `json:"price_usd"`
	PriceBYN *decimal.Decimal `json:"price_byn,omitempty"`
}
