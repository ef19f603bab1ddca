package handler

import (
	"net/http"
	"time"

	"byrates/internal/domain"

	"github.com/shopspring/decimal"
)

type FiatRateItem struct {
	Currency     string          `json:"currency" example:"USD"`
	OfficialRate decimal.Decimal `json:"official_rate" swaggertype:"string" example:"3.2"`
	Scale        int             `json:"scale" example:"1"`
	PerUnit      decimal.Decimal `json:"per_unit" swaggertype:"string" example:"3.2"`
	Display      string          `json:"display" example:"3.20"`
}

type GetFiatRatesResponse struct {
	Base      string         `json:"base" example:"BYN"`
	Rates     []FiatRateItem `json:"rates"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty" example:"2025-01-02T15:04:05Z"`
}

// GetFiatRates godoc
// @Summary Official fiat rates
// @Description Official rates of the supported fiat currencies against BYN
// @Tags Rates
// @Produce json
// @Success 200 {object} GetFiatRatesResponse
// @Failure 503 {object} errorResponse
// @Router /rates/fiat [get]
func (h *Handler) GetFiatRates(w http.ResponseWriter, r *http.Request) {
	rates := h.official.Rates(r.Context())
	if len(rates) == 0 {
		writeError(w, http.StatusServiceUnavailable, "official rates are unavailable, "+msgTryLater)
		return
	}

	res := GetFiatRatesResponse{
		Base:      string(domain.HomeCurrency),
		Rates:     make([]FiatRateItem, 0, len(rates)),
		UpdatedAt: updatedAt(h.official.UpdatedAt()),
	}
	for _, code := range domain.FetchedFiat() {
		fr, ok := rates[code]
		if !ok {
			continue
		}
		res.Rates = append(res.Rates, FiatRateItem{
			Currency:     string(code),
			OfficialRate: fr.OfficialRate,
			Scale:        fr.Scale,
			PerUnit:      fr.PerUnit(),
			Display:      h.format.Amount(fr.OfficialRate),
		})
	}
	writeJSON(w, http.StatusOK, res)
}

type CryptoRateItem struct {
	Currency   string           `json:"currency" example:"BTC"`
	PriceUSD   decimal.Decimal  `json:"price_usd" swaggertype:"string" example:"60000"`
	PriceBYN   *decimal.Decimal `json:"price_byn,omitempty" swaggertype:"string" example:"192000"`
	DisplayUSD string           `json:"display_usd" example:"60,000.00"`
	DisplayBYN string           `json:"display_byn,omitempty" example:"192,000.00"`
}

type GetCryptoRatesResponse struct {
	Rates     []CryptoRateItem `json:"rates"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty" example:"2025-01-02T15:04:05Z"`
}

// GetCryptoRates godoc
// @Summary Crypto prices
// @Description Spot prices of the supported crypto currencies in USD and BYN
// @Tags Rates
// @Produce json
// @Success 200 {object} GetCryptoRatesResponse
// @Failure 503 {object} errorResponse
// @Router /rates/crypto [get]
func (h *Handler) GetCryptoRates(w http.ResponseWriter, r *http.Request) {
	rates := h.crypto.Rates(r.Context())
	if len(rates) == 0 {
		writeError(w, http.StatusServiceUnavailable, "crypto rates are unavailable, "+msgTryLater)
		return
	}

	res := GetCryptoRatesResponse{
		Rates:     make([]CryptoRateItem, 0, len(rates)),
		UpdatedAt: updatedAt(h.crypto.UpdatedAt()),
	}
	for _, code := range domain.CryptoSet {
		cr, ok := rates[code]
		if !ok {
			continue
		}
		item := CryptoRateItem{
			Currency:   string(code),
			PriceUSD:   cr.PriceUSD,
			PriceBYN:   cr.PriceBYN,
			DisplayUSD: h.format.Amount(cr.PriceUSD),
		}
		if cr.PriceBYN != nil {
			item.DisplayBYN = h.format.Amount(*cr.PriceBYN)
		}
		res.Rates = append(res.Rates, item)
	}
	writeJSON(w, http.StatusOK, res)
}
