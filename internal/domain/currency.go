package domain

import (
	"strings"
)

type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	CNY CurrencyCode = "CNY"
	BYN CurrencyCode = "BYN"

	BTC CurrencyCode = "BTC"
	ETH CurrencyCode = "ETH"
	BNB CurrencyCode = "BNB"
	XRP CurrencyCode = "XRP"
	ADA CurrencyCode = "ADA"
)

// HomeCurrency is the currency official rates are quoted in. It is never fetched.
const HomeCurrency = BYN

// ReferenceFiat is the pivot for crypto prices and triangulated conversions.
const ReferenceFiat = USD

var (
	FiatSet   = []CurrencyCode{USD, EUR, CNY, BYN}
	CryptoSet = []CurrencyCode{BTC, ETH, BNB, XRP, ADA}
)

func (c CurrencyCode) IsFiat() bool {
	for _, f := range FiatSet {
		if c == f {
			return true
		}
	}
	return false
}

func (c CurrencyCode) IsCrypto() bool {
	for _, cr := range CryptoSet {
		if c == cr {
			return true
		}
	}
	return false
}

func (c CurrencyCode) String() string { return string(c) }

// FetchedFiat lists the fiat currencies requested from the official feed.
func FetchedFiat() []CurrencyCode {
	res := make([]CurrencyCode, 0, len(FiatSet)-1)
	for _, f := range FiatSet {
		if f != HomeCurrency {
			res = append(res, f)
		}
	}
	return res
}

// ParseCurrencyCode normalizes raw input and accepts only supported codes.
func ParseCurrencyCode(raw string) (CurrencyCode, error) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
	if code == "" {
		return "", ErrCurrencyRequired
	}
	if !code.IsFiat() && !code.IsCrypto() {
		return "", ErrUnsupportedCurrency
	}
	return code, nil
}
