package api

import (
	"net/http"
	"time"

	_ "byrates/docs"
	"byrates/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

type Options struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
}

func NewRouter(rateHandler *handler.Handler, opts Options) *chi.Mux {
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(timeout))

		r.Get("/rates/fiat", rateHandler.GetFiatRates)
		r.Get("/rates/crypto", rateHandler.GetCryptoRates)
		r.Get("/rates/supported-currencies", rateHandler.GetSupportedCodes)
		r.Get("/convert", rateHandler.Convert)

		r.Get("/banks", rateHandler.GetBanks)
		r.Get("/banks/top", rateHandler.GetTopBanks)
		r.Get("/banks/nearby", rateHandler.GetNearbyBranches)
	})
	return router
}
