package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"byrates/internal/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const (
	DefaultBinanceURL = "https://api.binance.com"
	tickerPricePath   = "/api/v3/ticker/price"

	// binance error code for an unknown trading pair
	codeInvalidSymbol = -1121
)

// BinanceClient reads spot prices from the exchange ticker endpoint.
type BinanceClient struct {
	feed
	baseURL string
	limiter *rate.Limiter
}

type tickerPrice struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

type apiError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// AllPrices returns the price of every listed symbol, keyed by symbol.
func (c *BinanceClient) AllPrices(ctx context.Context) (map[string]decimal.Decimal, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: binance: %w", domain.ErrFetch, err)
	}

	var body []tickerPrice
	if err := c.getJSON(ctx, c.baseURL+tickerPricePath, &body); err != nil {
		return nil, err
	}

	prices := make(map[string]decimal.Decimal, len(body))
	for _, t := range body {
		prices[t.Symbol] = t.Price
	}
	return prices, nil
}

// Price returns the price of a single symbol such as ETHBTC.
// Unknown symbols yield domain.ErrSymbolNotFound.
func (c *BinanceClient) Price(ctx context.Context, symbol string) (decimal.Decimal, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return decimal.Zero, fmt.Errorf("%w: binance: %w", domain.ErrFetch, err)
	}

	u := c.baseURL + tickerPricePath + "?symbol=" + url.QueryEscape(strings.ToUpper(symbol))
	var body tickerPrice
	err := c.getJSON(ctx, u, &body)
	if err != nil {
		if isInvalidSymbol(err) {
			return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrSymbolNotFound, symbol)
		}
		return decimal.Zero, err
	}
	return body.Price, nil
}

func isInvalidSymbol(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusBadRequest {
		return false
	}
	var ae apiError
	if jsonErr := json.Unmarshal(se.Body, &ae); jsonErr != nil {
		return false
	}
	return ae.Code == codeInvalidSymbol
}

func NewBinanceClient(httpClient *http.Client, baseURL string, requestsPerSecond float64, bc BreakerConfig) *BinanceClient {
	if baseURL == "" {
		baseURL = DefaultBinanceURL
	}
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &BinanceClient{
		feed:    newFeed("binance", httpClient, bc),
		baseURL: strings.TrimSuffix(baseURL, "/"),
		limiter: rate.NewLimiter(limit, 5),
	}
}
