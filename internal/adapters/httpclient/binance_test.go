package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"byrates/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newBinanceServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/ticker/price" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("symbol") {
		case "":
			_, _ = w.Write([]byte(`[{"symbol":"BTCUSDT","price":"60000.00000000"},{"symbol":"ETHUSDT","price":"3000.10000000"}]`))
		case "ETHBTC":
			_, _ = w.Write([]byte(`{"symbol":"ETHBTC","price":"0.05000000"}`))
		case "BTCETH":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":-1121,"msg":"Invalid symbol."}`))
		case "BROKEN":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":-1100,"msg":"Illegal characters found in parameter 'symbol'"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestBinanceClient_AllPrices(t *testing.T) {
	srv := newBinanceServer(t)
	c := NewBinanceClient(srv.Client(), srv.URL+"/", 0, BreakerConfig{})

	prices, err := c.AllPrices(context.Background())
	require.NoError(t, err)
	require.Len(t, prices, 2)
	require.True(t, decimal.RequireFromString("60000").Equal(prices["BTCUSDT"]))
	require.True(t, decimal.RequireFromString("3000.1").Equal(prices["ETHUSDT"]))
}

func TestBinanceClient_Price(t *testing.T) {
	srv := newBinanceServer(t)
	c := NewBinanceClient(srv.Client(), srv.URL, 0, BreakerConfig{})

	price, err := c.Price(context.Background(), "ethbtc")
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("0.05").Equal(price))
}

func TestBinanceClient_PriceInvalidSymbol(t *testing.T) {
	srv := newBinanceServer(t)
	c := NewBinanceClient(srv.Client(), srv.URL, 0, BreakerConfig{})

	_, err := c.Price(context.Background(), "BTCETH")
	require.ErrorIs(t, err, domain.ErrSymbolNotFound)
	require.NotErrorIs(t, err, domain.ErrFetch)
}

func TestBinanceClient_PriceOtherBadRequestIsFetchError(t *testing.T) {
	srv := newBinanceServer(t)
	c := NewBinanceClient(srv.Client(), srv.URL, 0, BreakerConfig{})

	_, err := c.Price(context.Background(), "BROKEN")
	require.ErrorIs(t, err, domain.ErrFetch)
	require.NotErrorIs(t, err, domain.ErrSymbolNotFound)
}

func TestBinanceClient_PriceServerError(t *testing.T) {
	srv := newBinanceServer(t)
	c := NewBinanceClient(srv.Client(), srv.URL, 0, BreakerConfig{})

	_, err := c.Price(context.Background(), "XRPADA")
	require.ErrorIs(t, err, domain.ErrFetch)
	require.Contains(t, err.Error(), "unexpected status code 500")
}

func TestBinanceClient_InvalidSymbolDoesNotTripBreaker(t *testing.T) {
	srv := newBinanceServer(t)
	c := NewBinanceClient(srv.Client(), srv.URL, 0, BreakerConfig{ErrorThreshold: 1})

	for i := 0; i < 3; i++ {
		_, err := c.Price(context.Background(), "BTCETH")
		require.ErrorIs(t, err, domain.ErrSymbolNotFound)
	}
	_, err := c.Price(context.Background(), "ETHBTC")
	require.NoError(t, err)
}

func TestBinanceClient_CanceledContext(t *testing.T) {
	srv := newBinanceServer(t)
	c := NewBinanceClient(srv.Client(), srv.URL, 1, BreakerConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.AllPrices(ctx)
	require.ErrorIs(t, err, domain.ErrFetch)
}
