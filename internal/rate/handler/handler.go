package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"byrates/internal/domain"
	"byrates/internal/format"
	"byrates/internal/geo"
	"byrates/internal/rate"

	"github.com/shopspring/decimal"
)

type Validator interface {
	Validate(from, to, amount string) (rate.ConversionRequest, error)
	SupportedCodes() []string
}

type OfficialRates interface {
	Rates(ctx context.Context) map[domain.CurrencyCode]domain.FiatRate
	UpdatedAt() (time.Time, bool)
}

type CryptoRates interface {
	Rates(ctx context.Context) map[domain.CurrencyCode]domain.CryptoRate
	UpdatedAt() (time.Time, bool)
}

type Converter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to domain.CurrencyCode) (decimal.Decimal, error)
}

type BankSnapshot interface {
	LoadEnriched(ctx context.Context) ([]domain.BankQuote, error)
}

type Handler struct {
	validator Validator
	official  OfficialRates
	crypto    CryptoRates
	converter Converter
	banks     BankSnapshot
	links     *geo.Links
	format    *format.Formatter
}

type Deps struct {
	Validator Validator
	Official  OfficialRates
	Crypto    CryptoRates
	Converter Converter
	Banks     BankSnapshot
	Links     *geo.Links
	Format    *format.Formatter
}

func NewRateHandler(d Deps) *Handler {
	links := d.Links
	if links == nil {
		links = geo.NewLinks("", "")
	}
	f := d.Format
	if f == nil {
		f = format.MustNew(format.DefaultLocale)
	}
	return &Handler{
		validator: d.Validator,
		official:  d.Official,
		crypto:    d.Crypto,
		converter: d.Converter,
		banks:     d.Banks,
		links:     links,
		format:    f,
	}
}

const msgTryLater = "try again later"

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func updatedAt(t time.Time, ok bool) *time.Time {
	if !ok {
		return nil
	}
	t = t.UTC()
	return &t
}
