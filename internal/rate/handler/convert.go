package handler

import (
	"errors"
	"net/http"

	"byrates/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ConvertResponse struct {
	From    string          `json:"from" example:"BTC"`
	To      string          `json:"to" example:"BYN"`
	Amount  decimal.Decimal `json:"amount" swaggertype:"string" example:"1"`
	Result  decimal.Decimal `json:"result" swaggertype:"string" example:"192000"`
	Display string          `json:"display" example:"192,000.00"`
}

// Convert godoc
// @Summary Convert an amount
// @Description Convert between any two supported fiat or crypto currencies
// @Tags Conversion
// @Produce json
// @Param from query string true "Source currency" example(BTC)
// @Param to query string true "Target currency" example(BYN)
// @Param amount query string true "Positive amount, comma or dot separated" example(1.5)
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := h.validator.Validate(q.Get("from"), q.Get("to"), q.Get("amount"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.converter.Convert(r.Context(), req.Amount, req.From, req.To)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) || errors.Is(err, domain.ErrUnsupportedCurrency) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Convert", "from": req.From, "to": req.To}).Error("conversion failed")
		writeError(w, http.StatusBadGateway, "conversion failed, "+msgTryLater)
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{
		From:    string(req.From),
		To:      string(req.To),
		Amount:  req.Amount,
		Result:  result,
		Display: h.format.Amount(result),
	})
}
