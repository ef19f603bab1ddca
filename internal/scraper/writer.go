package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"byrates/internal/domain"

	"github.com/shopspring/decimal"
)

type snapshotQuote struct {
	Buy  json.Number `json:"buy"`
	Sell json.Number `json:"sell"`
}

type snapshotEntry struct {
	Bank     string          `json:"bank"`
	USD      snapshotQuote   `json:"USD"`
	EUR      snapshotQuote   `json:"EUR"`
	Branches []domain.Branch `json:"branches"`
}

func number(d decimal.Decimal) json.Number { return json.Number(d.String()) }

func toSnapshot(quotes []domain.BankQuote) []snapshotEntry {
	entries := make([]snapshotEntry, 0, len(quotes))
	for _, q := range quotes {
		entries = append(entries, snapshotEntry{
			Bank:     q.Bank,
			USD:      snapshotQuote{Buy: number(q.USD.Buy), Sell: number(q.USD.Sell)},
			EUR:      snapshotQuote{Buy: number(q.EUR.Buy), Sell: number(q.EUR.Sell)},
			Branches: q.Branches,
		})
	}
	return entries
}

// WriteSnapshot replaces the snapshot file atomically: readers see either the
// previous file or the new one, never a partial write.
func WriteSnapshot(path string, quotes []domain.BankQuote) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err = enc.Encode(toSnapshot(quotes)); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync snapshot: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to chmod snapshot: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
