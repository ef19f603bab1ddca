package rate

import (
	"context"
	"errors"
	"fmt"

	"byrates/internal/adapters"
	"byrates/internal/domain"
	"byrates/internal/metrics"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Conversion paths, also used as metric labels.
const (
	PathIdentity   = "identity"
	PathFiat       = "fiat"
	PathFiatCrypto = "fiat_crypto"
	PathCrypto     = "crypto"
)

type CryptoRateReader interface {
	Rate(ctx context.Context, code domain.CurrencyCode) (domain.CryptoRate, bool)
}

// Converter converts amounts between any two supported currencies.
//
// Fiat and crypto are bridged through cached crypto prices. Two crypto
// currencies use the exchange pair directly when it is listed and fall back
// to triangulation through the quote asset otherwise. Fiat pairs go through
// official cross rates.
type Converter struct {
	official   FiatRateReader
	crypto     CryptoRateReader
	prices     adapters.CryptoPriceClient
	pairs      adapters.PairPriceCache
	quoteAsset string
}

// NewConverter builds a converter. pairs may be nil to disable pair caching.
func NewConverter(official FiatRateReader, crypto CryptoRateReader, prices adapters.CryptoPriceClient, pairs adapters.PairPriceCache, quoteAsset string) *Converter {
	if quoteAsset == "" {
		quoteAsset = DefaultQuoteAsset
	}
	return &Converter{official: official, crypto: crypto, prices: prices, pairs: pairs, quoteAsset: quoteAsset}
}

func NewRegistryConverter(reg *Registry, prices adapters.CryptoPriceClient, pairs adapters.PairPriceCache) *Converter {
	return NewConverter(reg.Official, reg.Crypto, prices, pairs, reg.Crypto.QuoteAsset())
}

// Convert returns amount of from expressed in to. Every failure is a
// *domain.ConversionError.
func (c *Converter) Convert(ctx context.Context, amount decimal.Decimal, from, to domain.CurrencyCode) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, convErr(from, to, "invalid amount", domain.ErrInvalidAmount)
	}
	for _, code := range []domain.CurrencyCode{from, to} {
		if !code.IsFiat() && !code.IsCrypto() {
			return decimal.Zero, convErr(from, to, "unsupported currency", fmt.Errorf("%w: %q", domain.ErrUnsupportedCurrency, code))
		}
	}

	var (
		path   string
		result decimal.Decimal
		err    error
	)
	switch {
	case from == to:
		path, result = PathIdentity, amount
	case from.IsCrypto() != to.IsCrypto():
		path = PathFiatCrypto
		result, err = c.convertFiatCrypto(ctx, amount, from, to)
	case from.IsCrypto():
		path = PathCrypto
		result, err = c.convertCrypto(ctx, amount, from, to)
	default:
		path = PathFiat
		result, err = c.convertFiat(ctx, amount, from, to)
	}

	metrics.Conversions.WithLabelValues(path, metrics.ResultLabel(err)).Inc()
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"from":   from,
			"to":     to,
			"amount": amount,
			"path":   path,
		}).Warn("Conversion failed")
		return decimal.Zero, err
	}
	return result, nil
}

func (c *Converter) convertFiatCrypto(ctx context.Context, amount decimal.Decimal, from, to domain.CurrencyCode) (decimal.Decimal, error) {
	crypto, fiat := from, to
	if from.IsFiat() {
		crypto, fiat = to, from
	}

	cr, ok := c.crypto.Rate(ctx, crypto)
	if !ok {
		return decimal.Zero, convErr(from, to, fmt.Sprintf("no price for %s", crypto), domain.ErrFetch)
	}

	price, err := c.fiatPrice(ctx, cr, fiat)
	if err != nil {
		return decimal.Zero, convErr(from, to, err.Error(), domain.ErrFetch)
	}

	if from.IsCrypto() {
		return amount.Mul(price), nil
	}
	if price.IsZero() {
		return decimal.Zero, convErr(from, to, fmt.Sprintf("zero price for %s", crypto), nil)
	}
	return amount.Div(price), nil
}

// fiatPrice returns the price of one unit of crypto in fiat.
func (c *Converter) fiatPrice(ctx context.Context, cr domain.CryptoRate, fiat domain.CurrencyCode) (decimal.Decimal, error) {
	if fiat == domain.ReferenceFiat {
		return cr.PriceUSD, nil
	}
	if cr.PriceBYN == nil {
		return decimal.Zero, fmt.Errorf("no %s price for %s", domain.HomeCurrency, cr.Currency)
	}
	if fiat == domain.HomeCurrency {
		return *cr.PriceBYN, nil
	}

	perUnit, ok := c.official.PerUnit(ctx, fiat)
	if !ok || perUnit.IsZero() {
		return decimal.Zero, fmt.Errorf("no official rate for %s", fiat)
	}
	return cr.PriceBYN.Div(perUnit), nil
}

func (c *Converter) convertCrypto(ctx context.Context, amount decimal.Decimal, from, to domain.CurrencyCode) (decimal.Decimal, error) {
	price, err := c.pairPrice(ctx, string(from)+string(to))
	if err == nil {
		return amount.Mul(price), nil
	}
	if !errors.Is(err, domain.ErrSymbolNotFound) {
		return decimal.Zero, convErr(from, to, "direct pair lookup failed", err)
	}

	var rateFrom, rateTo decimal.Decimal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rateFrom, err = c.pairPrice(gctx, string(from)+c.quoteAsset)
		return err
	})
	g.Go(func() error {
		var err error
		rateTo, err = c.pairPrice(gctx, string(to)+c.quoteAsset)
		return err
	})
	if err := g.Wait(); err != nil {
		return decimal.Zero, convErr(from, to, "triangulation via "+c.quoteAsset+" failed", err)
	}
	if rateTo.IsZero() {
		return decimal.Zero, convErr(from, to, fmt.Sprintf("zero price for %s%s", to, c.quoteAsset), nil)
	}
	return amount.Mul(rateFrom.Div(rateTo)), nil
}

func (c *Converter) pairPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	if c.pairs != nil {
		if price, found, ok := c.pairs.Get(symbol); ok {
			if !found {
				return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrSymbolNotFound, symbol)
			}
			return price, nil
		}
	}

	price, err := c.prices.Price(ctx, symbol)
	if c.pairs != nil {
		switch {
		case err == nil:
			c.pairs.SetPrice(symbol, price)
		case errors.Is(err, domain.ErrSymbolNotFound):
			c.pairs.SetMissing(symbol)
		}
	}
	return price, err
}

func (c *Converter) convertFiat(ctx context.Context, amount decimal.Decimal, from, to domain.CurrencyCode) (decimal.Decimal, error) {
	fromUnit, ok := c.official.PerUnit(ctx, from)
	if !ok {
		return decimal.Zero, convErr(from, to, fmt.Sprintf("no official rate for %s", from), domain.ErrFetch)
	}
	toUnit, ok := c.official.PerUnit(ctx, to)
	if !ok {
		return decimal.Zero, convErr(from, to, fmt.Sprintf("no official rate for %s", to), domain.ErrFetch)
	}
	if toUnit.IsZero() {
		return decimal.Zero, convErr(from, to, fmt.Sprintf("zero official rate for %s", to), nil)
	}
	return amount.Mul(fromUnit).Div(toUnit), nil
}

func convErr(from, to domain.CurrencyCode, reason string, err error) error {
	return &domain.ConversionError{From: from, To: to, Reason: reason, Err: err}
}
