package rate

import (
	"errors"
	"slices"
	"strings"

	"byrates/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrFromRequired    = errors.New("from currency is required")
	ErrToRequired      = errors.New("to currency is required")
	ErrFromUnsupported = errors.New("from currency not supported")
	ErrToUnsupported   = errors.New("to currency not supported")
	ErrAmountRequired  = errors.New("amount is required")
)

// Amounts outside these bounds are rejected before any arithmetic runs.
const (
	maxIntegerDigits  = 15
	maxFractionDigits = 18
)

var amountCeiling = decimal.New(1, maxIntegerDigits)

// ConversionRequest is a validated conversion query.
type ConversionRequest struct {
	From   domain.CurrencyCode
	To     domain.CurrencyCode
	Amount decimal.Decimal
}

type ConversionValidator struct {
	supported map[domain.CurrencyCode]struct{} // read only
	codes     []string                         // read only, sorted
}

// Validate normalizes raw query values. Amounts accept a comma as the
// decimal separator.
func (v *ConversionValidator) Validate(from, to, amount string) (ConversionRequest, error) {
	fromCode, err := v.parse(from, ErrFromRequired, ErrFromUnsupported)
	if err != nil {
		return ConversionRequest{}, err
	}
	toCode, err := v.parse(to, ErrToRequired, ErrToUnsupported)
	if err != nil {
		return ConversionRequest{}, err
	}

	amount = strings.ReplaceAll(strings.TrimSpace(amount), ",", ".")
	if amount == "" {
		return ConversionRequest{}, ErrAmountRequired
	}
	value, err := decimal.NewFromString(amount)
	if err != nil || !value.IsPositive() || !withinBounds(value) {
		return ConversionRequest{}, domain.ErrInvalidAmount
	}

	return ConversionRequest{From: fromCode, To: toCode, Amount: value}, nil
}

func withinBounds(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -maxFractionDigits || exp > maxIntegerDigits {
		return false
	}
	return d.Abs().LessThan(amountCeiling)
}

func (v *ConversionValidator) parse(raw string, errRequired, errUnsupported error) (domain.CurrencyCode, error) {
	code, err := domain.ParseCurrencyCode(raw)
	switch {
	case errors.Is(err, domain.ErrCurrencyRequired):
		return "", errRequired
	case err != nil:
		return "", errUnsupported
	}
	if _, ok := v.supported[code]; !ok {
		return "", errUnsupported
	}
	return code, nil
}

func (v *ConversionValidator) SupportedCodes() []string {
	return slices.Clone(v.codes)
}

func NewValidator(supported []domain.CurrencyCode) *ConversionValidator {
	set := make(map[domain.CurrencyCode]struct{}, len(supported))
	codes := make([]string, 0, len(supported))
	for _, c := range supported {
		if _, dup := set[c]; dup {
			continue
		}
		set[c] = struct{}{}
		codes = append(codes, string(c))
	}
	slices.Sort(codes)

	return &ConversionValidator{supported: set, codes: codes}
}

// AllCurrencies lists every fiat and crypto code.
func AllCurrencies() []domain.CurrencyCode {
	return slices.Concat(domain.FiatSet, domain.CryptoSet)
}
