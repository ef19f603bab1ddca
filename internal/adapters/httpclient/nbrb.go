package httpclient

import (
	"context"
	"net/http"

	"byrates/internal/domain"

	"github.com/shopspring/decimal"
)

const DefaultNBRBURL = "https://api.nbrb.by/exrates/rates?periodicity=0"

// NBRBClient reads daily official rates of the National Bank of Belarus.
type NBRBClient struct {
	feed
	url string
}

type nbrbRate struct {
	Abbreviation string          `json:"Cur_Abbreviation"`
	OfficialRate decimal.Decimal `json:"Cur_OfficialRate"`
	Scale        int             `json:"Cur_Scale"`
}

// GetRates returns every record of the feed; filtering is up to the caller.
func (c *NBRBClient) GetRates(ctx context.Context) ([]domain.FiatRate, error) {
	var body []nbrbRate
	if err := c.getJSON(ctx, c.url, &body); err != nil {
		return nil, err
	}

	rates := make([]domain.FiatRate, 0, len(body))
	for _, r := range body {
		rates = append(rates, domain.FiatRate{
			Currency:     domain.CurrencyCode(r.Abbreviation),
			OfficialRate: r.OfficialRate,
			Scale:        r.Scale,
		})
	}
	return rates, nil
}

func NewNBRBClient(httpClient *http.Client, url string, bc BreakerConfig) *NBRBClient {
	if url == "" {
		url = DefaultNBRBURL
	}
	return &NBRBClient{feed: newFeed("nbrb", httpClient, bc), url: url}
}
