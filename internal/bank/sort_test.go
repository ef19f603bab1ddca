package bank

import (
	"testing"

	"byrates/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func quote(name, usdBuy, usdSell string) domain.BankQuote {
	return domain.BankQuote{
		Bank: name,
		USD: domain.Quote{
			Buy:  decimal.RequireFromString(usdBuy),
			Sell: decimal.RequireFromString(usdSell),
		},
	}
}

func names(quotes []domain.BankQuote) []string {
	res := make([]string, 0, len(quotes))
	for _, q := range quotes {
		res = append(res, q.Bank)
	}
	return res
}

func TestSort_BuyDescendingStable(t *testing.T) {
	quotes := []domain.BankQuote{
		quote("A", "3.20", "3.30"),
		quote("B", "3.25", "3.31"),
		quote("C", "3.20", "3.28"),
		quote("D", "3.26", "3.35"),
	}

	sorted := Sort(quotes, SortUSDBuy)

	require.Equal(t, []string{"D", "B", "A", "C"}, names(sorted))
	// input untouched
	require.Equal(t, []string{"A", "B", "C", "D"}, names(quotes))
}

func TestSort_SellAscending(t *testing.T) {
	quotes := []domain.BankQuote{
		quote("A", "3.20", "3.30"),
		quote("B", "3.25", "3.31"),
		quote("C", "3.20", "3.28"),
	}

	require.Equal(t, []string{"C", "A", "B"}, names(Sort(quotes, SortUSDSell)))
}

func TestTop(t *testing.T) {
	quotes := []domain.BankQuote{
		quote("A", "3.20", "3.30"),
		quote("B", "3.25", "3.31"),
		quote("C", "3.21", "3.28"),
		quote("D", "3.26", "3.35"),
	}

	require.Equal(t, []string{"D", "B", "C"}, names(Top(quotes, SortUSDBuy, 0)))
	require.Equal(t, []string{"D"}, names(Top(quotes, SortUSDBuy, 1)))
	require.Len(t, Top(quotes, SortUSDBuy, 10), 4)
	require.Empty(t, Top(nil, SortUSDBuy, 3))
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("")
	require.NoError(t, err)
	require.Equal(t, SortUSDBuy, key)

	key, err = ParseSortKey("eur_sell")
	require.NoError(t, err)
	require.Equal(t, SortEURSell, key)

	_, err = ParseSortKey("rub_buy")
	require.Error(t, err)
}
