package bank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"byrates/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const DefaultSnapshotPath = "bank_rates.json"

type OfficialRates interface {
	PerUnit(ctx context.Context, code domain.CurrencyCode) (decimal.Decimal, bool)
}

// SnapshotReader loads the bank rate snapshot written by the scraper and
// completes it with official rates.
type SnapshotReader struct {
	path     string
	official OfficialRates
}

func NewSnapshotReader(path string, official OfficialRates) *SnapshotReader {
	if path == "" {
		path = DefaultSnapshotPath
	}
	return &SnapshotReader{path: path, official: official}
}

// LoadEnriched reads the snapshot and sets the NBRB field of every quote.
// A missing or malformed file yields an empty slice and an error wrapping
// domain.ErrSnapshotUnavailable.
func (r *SnapshotReader) LoadEnriched(ctx context.Context) ([]domain.BankQuote, error) {
	quotes, err := r.load()
	if err != nil {
		logrus.WithError(err).WithField("path", r.path).Error("Failed to load bank snapshot")
		return []domain.BankQuote{}, fmt.Errorf("%w: %w", domain.ErrSnapshotUnavailable, err)
	}

	usd := r.officialRate(ctx, domain.USD)
	eur := r.officialRate(ctx, domain.EUR)
	for i := range quotes {
		quotes[i].USD.NBRB = usd
		quotes[i].EUR.NBRB = eur
	}

	logrus.WithFields(logrus.Fields{"path": r.path, "banks": len(quotes)}).Debug("Bank snapshot loaded")
	return quotes, nil
}

func (r *SnapshotReader) load() ([]domain.BankQuote, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("snapshot %s not found", r.path)
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var quotes []domain.BankQuote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	for i, q := range quotes {
		if q.Bank == "" {
			return nil, fmt.Errorf("snapshot entry %d has no bank name", i)
		}
	}
	if quotes == nil {
		quotes = []domain.BankQuote{}
	}
	return quotes, nil
}

func (r *SnapshotReader) officialRate(ctx context.Context, code domain.CurrencyCode) decimal.Decimal {
	if r.official == nil {
		return decimal.Zero
	}
	rate, ok := r.official.PerUnit(ctx, code)
	if !ok {
		return decimal.Zero
	}
	return rate
}
