package bank

import (
	"fmt"
	"slices"

	"byrates/internal/domain"

	"github.com/shopspring/decimal"
)

type SortKey string

const (
	SortUSDBuy  SortKey = "usd_buy"
	SortUSDSell SortKey = "usd_sell"
	SortEURBuy  SortKey = "eur_buy"
	SortEURSell SortKey = "eur_sell"
)

const (
	DefaultSortKey = SortUSDBuy
	DefaultTopN    = 3
)

var sortKeys = []SortKey{SortUSDBuy, SortUSDSell, SortEURBuy, SortEURSell}

func ParseSortKey(raw string) (SortKey, error) {
	if raw == "" {
		return DefaultSortKey, nil
	}
	key := SortKey(raw)
	if !slices.Contains(sortKeys, key) {
		return "", fmt.Errorf("unknown sort key %q", raw)
	}
	return key, nil
}

func (k SortKey) value(q domain.BankQuote) decimal.Decimal {
	switch k {
	case SortUSDSell:
		return q.USD.Sell
	case SortEURBuy:
		return q.EUR.Buy
	case SortEURSell:
		return q.EUR.Sell
	default:
		return q.USD.Buy
	}
}

// ascending reports whether lower values are better: the cheaper a bank
// sells, the better for the customer.
func (k SortKey) ascending() bool {
	return k == SortUSDSell || k == SortEURSell
}

// Sort returns a sorted copy, best rate first. Buy keys sort descending;
// sell keys sort ascending rather than descending, so the bank charging the
// least comes first. Banks with equal rates keep their snapshot order.
func Sort(quotes []domain.BankQuote, key SortKey) []domain.BankQuote {
	sorted := slices.Clone(quotes)
	slices.SortStableFunc(sorted, func(a, b domain.BankQuote) int {
		c := key.value(a).Cmp(key.value(b))
		if key.ascending() {
			return c
		}
		return -c
	})
	return sorted
}

// Top returns at most n best banks by key. n <= 0 means DefaultTopN.
func Top(quotes []domain.BankQuote, key SortKey, n int) []domain.BankQuote {
	if n <= 0 {
		n = DefaultTopN
	}
	sorted := Sort(quotes, key)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
