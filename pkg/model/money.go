package model

import (
	"math"

	"github.com/abdoElHodaky/tradsys-core/pkg/errors"
)

// Currency describes a unit of account: its ISO code, decimal precision,
// ISO 4217 numeric code (0 for currencies without one, e.g. crypto), a
// display name, and its CurrencyType.
type Currency struct {
	Code      string
	Precision uint8
	ISO4217   uint16
	Name      string
	Type      CurrencyType
}

// NewCurrency constructs a Currency, rejecting an empty code or a
// precision exceeding FixedPrecision.
func NewCurrency(code string, precision uint8, iso4217 uint16, name string, currencyType CurrencyType) (Currency, error) {
	if code == "" {
		return Currency{}, errors.New(errors.ErrInvalidIdentifier, "currency code must not be empty")
	}
	if err := validatePrecision(precision); err != nil {
		return Currency{}, err
	}
	return Currency{Code: code, Precision: precision, ISO4217: iso4217, Name: name, Type: currencyType}, nil
}

// Equals compares two currencies by code.
func (c Currency) Equals(o Currency) bool { return c.Code == o.Code }

// String returns the currency's ISO code.
func (c Currency) String() string { return c.Code }

// Common reference currencies, grounded on the platform's built-in
// currency table.
var (
	USD = Currency{Code: "USD", Precision: 2, ISO4217: 840, Name: "United States Dollar", Type: CurrencyTypeFiat}
	EUR = Currency{Code: "EUR", Precision: 2, ISO4217: 978, Name: "Euro", Type: CurrencyTypeFiat}
	BTC = Currency{Code: "BTC", Precision: 8, ISO4217: 0, Name: "Bitcoin", Type: CurrencyTypeCrypto}
	ETH = Currency{Code: "ETH", Precision: 8, ISO4217: 0, Name: "Ethereum", Type: CurrencyTypeCrypto}
)

// Money is a fixed-point amount denominated in a specific Currency. It
// shares Price's int64-backed raw range.
type Money struct {
	raw      int64
	currency Currency
}

// NewMoney constructs a Money value, rounding amount to the currency's
// precision using round-half-to-even.
func NewMoney(amount float64, currency Currency) (Money, error) {
	rounded := roundToScale(amount, currency.Precision)
	if rounded < minPriceValue || rounded > maxPriceValue {
		return Money{}, errors.Newf(errors.ErrOutOfBounds, "money amount %g is out of range [%g, %g]", rounded, minPriceValue, maxPriceValue)
	}
	return Money{raw: int64(math.Round(rounded * FixedScalar)), currency: currency}, nil
}

// MoneyFromRaw constructs a Money directly from its scaled raw integer
// representation, bypassing rounding.
func MoneyFromRaw(raw int64, currency Currency) Money {
	return Money{raw: raw, currency: currency}
}

// Raw returns the underlying scaled integer value.
func (m Money) Raw() int64 { return m.raw }

// Currency returns the Money's denomination.
func (m Money) Currency() Currency { return m.currency }

// AsFloat64 returns the Money's value as a float64.
func (m Money) AsFloat64() float64 {
	return float64(m.raw) / FixedScalar
}

// String truncates to the currency's precision and appends the currency
// code, e.g. "1234.50 USD".
func (m Money) String() string {
	return formatFixed(m.raw, m.currency.Precision, true) + " " + m.currency.Code
}

// Add returns the sum of two Money values. Fails with ErrCurrencyMismatch
// if the currencies differ. Resolves the platform's in-place
// money_add_assign as a pure value-returning operation: Money is treated
// as an immutable value type throughout this module, so there is no
// in-place mutation to preserve.
func (m Money) Add(o Money) (Money, error) {
	if !m.currency.Equals(o.currency) {
		return Money{}, errors.Newf(errors.ErrCurrencyMismatch, "cannot add %s to %s", o.currency.Code, m.currency.Code)
	}
	sum, ok := addInt64(m.raw, o.raw)
	if !ok {
		return Money{}, errors.New(errors.ErrOverflow, "money addition overflowed")
	}
	return Money{raw: sum, currency: m.currency}, nil
}

// Sub returns the difference of two Money values. Fails with
// ErrCurrencyMismatch if the currencies differ.
func (m Money) Sub(o Money) (Money, error) {
	if !m.currency.Equals(o.currency) {
		return Money{}, errors.Newf(errors.ErrCurrencyMismatch, "cannot subtract %s from %s", o.currency.Code, m.currency.Code)
	}
	diff, ok := subInt64(m.raw, o.raw)
	if !ok {
		return Money{}, errors.New(errors.ErrOverflow, "money subtraction overflowed")
	}
	return Money{raw: diff, currency: m.currency}, nil
}

// Equals compares two Money values by raw amount and currency.
func (m Money) Equals(o Money) bool {
	return m.raw == o.raw && m.currency.Equals(o.currency)
}

// Less reports whether m is strictly less than o. Fails with
// ErrCurrencyMismatch if the currencies differ.
func (m Money) Less(o Money) (bool, error) {
	if !m.currency.Equals(o.currency) {
		return false, errors.Newf(errors.ErrCurrencyMismatch, "cannot compare %s to %s", o.currency.Code, m.currency.Code)
	}
	return m.raw < o.raw, nil
}

// IsZero reports whether the Money's raw value is zero.
func (m Money) IsZero() bool { return m.raw == 0 }
