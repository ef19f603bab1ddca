package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"byrates/internal/adapters/cache"
	"byrates/internal/adapters/httpclient"
	"byrates/internal/api"
	"byrates/internal/bank"
	"byrates/internal/config"
	"byrates/internal/format"
	"byrates/internal/geo"
	httpserver "byrates/internal/platform/http"
	"byrates/internal/platform/logging"
	"byrates/internal/rate"
	"byrates/internal/rate/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components and serves HTTP until a signal arrives.
func Run(configPath string) error {
	appCfg, err := config.Init(configPath)
	if err != nil {
		return err
	}
	logging.Setup(appCfg.Logging.Level)
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, closeFn, err := NewRouter(appCfg)
	if err != nil {
		return err
	}
	defer closeFn()

	logrus.Info("Starting http server")
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// NewRouter builds the full handler graph from config. The returned func
// releases the pair price cache.
func NewRouter(appCfg *config.AppConfig) (http.Handler, func(), error) {
	// Base HTTP client (configurable timeout)
	baseHTTPClient := &http.Client{Timeout: appCfg.HTTPClient.Timeout()}
	bc := httpclient.BreakerConfig{
		ErrorThreshold:   appCfg.Breaker.ErrorThreshold,
		SuccessThreshold: appCfg.Breaker.SuccessThreshold,
		Timeout:          seconds(appCfg.Breaker.TimeoutSeconds),
	}

	// External clients
	nbrbClient := httpclient.NewNBRBClient(baseHTTPClient, appCfg.NBRB.URL, bc)
	binanceClient := httpclient.NewBinanceClient(baseHTTPClient, appCfg.Binance.BaseURL, appCfg.Binance.RequestsPerSecond, bc)

	// Rate sources and conversion
	registry := rate.NewRegistry(nbrbClient, binanceClient, rate.RegistryConfig{
		TTL:        seconds(appCfg.Cache.TTLSeconds),
		QuoteAsset: appCfg.Binance.QuoteAsset,
	})
	pairCache, err := cache.NewPairPriceCache(appCfg.Cache.PairMaxItems, seconds(appCfg.Cache.PairTTLSeconds))
	if err != nil {
		logrus.WithError(err).Error("Failed to create pair price cache")
		return nil, nil, err
	}
	converter := rate.NewRegistryConverter(registry, binanceClient, pairCache)

	formatter, err := format.New(appCfg.Format.Locale)
	if err != nil {
		pairCache.Close()
		return nil, nil, err
	}

	// Handlers and router
	rateHandler := handler.NewRateHandler(handler.Deps{
		Validator: rate.NewValidator(rate.AllCurrencies()),
		Official:  registry.Official,
		Crypto:    registry.Crypto,
		Converter: converter,
		Banks:     bank.NewSnapshotReader(appCfg.Snapshot.Path, registry.Official),
		Links:     geo.NewLinks(appCfg.Maps.RouteURL, appCfg.Maps.SearchURL),
		Format:    formatter,
	})
	router := api.NewRouter(rateHandler, api.Options{
		CORSOrigins:    appCfg.HTTPServer.CORSOrigins,
		RequestTimeout: seconds(appCfg.HTTPServer.TimeoutSeconds),
	})
	return router, pairCache.Close, nil
}

func seconds(n int) time.Duration { return time.Duration(n) * time.Second }
