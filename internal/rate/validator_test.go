package rate

import (
	"testing"

	"byrates/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestConversionValidator_Validate_Errors(t *testing.T) {
	validator := NewValidator([]domain.CurrencyCode{domain.USD, domain.BTC})

	cases := []struct {
		name             string
		from, to, amount string
		want             error
	}{
		{"missing from", "", "BTC", "1", ErrFromRequired},
		{"missing to", "USD", "  ", "1", ErrToRequired},
		{"unknown from", "ABC", "BTC", "1", ErrFromUnsupported},
		{"known but not enabled", "USD", "ETH", "1", ErrToUnsupported},
		{"missing amount", "USD", "BTC", "", ErrAmountRequired},
		{"garbage amount", "USD", "BTC", "ten", domain.ErrInvalidAmount},
		{"zero amount", "USD", "BTC", "0", domain.ErrInvalidAmount},
		{"negative amount", "USD", "BTC", "-5", domain.ErrInvalidAmount},
		{"exponent too large", "USD", "BTC", "1e1000", domain.ErrInvalidAmount},
		{"exponent far too large", "USD", "BTC", "1e20000000", domain.ErrInvalidAmount},
		{"exponent too small", "USD", "BTC", "1e-20000000", domain.ErrInvalidAmount},
		{"too many integer digits", "USD", "BTC", "1234567890123456", domain.ErrInvalidAmount},
		{"integer digits via exponent", "USD", "BTC", "1.5e15", domain.ErrInvalidAmount},
		{"too many fraction digits", "USD", "BTC", "0.0000000000000000001", domain.ErrInvalidAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validator.Validate(tc.from, tc.to, tc.amount)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestConversionValidator_Validate_Success(t *testing.T) {
	validator := NewValidator(AllCurrencies())

	req, err := validator.Validate(" btc ", "usd", "1,5")
	require.NoError(t, err)
	require.Equal(t, domain.BTC, req.From)
	require.Equal(t, domain.USD, req.To)
	require.True(t, decimal.RequireFromString("1.5").Equal(req.Amount))
}

func TestConversionValidator_Validate_AmountBounds(t *testing.T) {
	validator := NewValidator(AllCurrencies())

	for _, amount := range []string{"999999999999999", "999999999999999.99", "0.000000000000000001", "1e14", "12345e-3"} {
		req, err := validator.Validate("BYN", "BTC", amount)
		require.NoError(t, err, amount)
		require.True(t, decimal.RequireFromString(amount).Equal(req.Amount), amount)
	}
}

func TestConversionValidator_SameCodesAllowed(t *testing.T) {
	validator := NewValidator(AllCurrencies())

	req, err := validator.Validate("BYN", "BYN", "10")
	require.NoError(t, err)
	require.Equal(t, req.From, req.To)
}

func TestConversionValidator_SupportedCodes(t *testing.T) {
	validator := NewValidator([]domain.CurrencyCode{domain.USD, domain.EUR, domain.BTC, domain.USD})

	got := validator.SupportedCodes()
	require.Equal(t, []string{"BTC", "EUR", "USD"}, got)

	// caller modifications must not leak into the validator
	got[0] = "XXX"
	require.Equal(t, []string{"BTC", "EUR", "USD"}, validator.SupportedCodes())
}
