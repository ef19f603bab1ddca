package domain

import (
	"errors"
	"fmt"
)

var (
	ErrFetch               = errors.New("upstream fetch failed")
	ErrSymbolNotFound      = errors.New("symbol not found")
	ErrConversion          = errors.New("conversion failed")
	ErrSnapshotUnavailable = errors.New("bank snapshot unavailable")
	ErrCurrencyRequired    = errors.New("currency is required")
	ErrUnsupportedCurrency = errors.New("currency not supported")
	ErrInvalidAmount       = errors.New("amount must be a positive number")
)

// ConversionError reports why an amount could not be converted between two
// currencies. It matches ErrConversion and the underlying cause via errors.Is.
type ConversionError struct {
	From   CurrencyCode
	To     CurrencyCode
	Reason string
	Err    error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("convert %s to %s: %s", e.From, e.To, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConversion}
	}
	return []error{ErrConversion, e.Err}
}
