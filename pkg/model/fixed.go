package model

import (
	"math"
	"strconv"

	"github.com/abdoElHodaky/tradsys-core/pkg/errors"
)

// FixedPrecision is the maximum number of decimal digits any fixed-point
// value may carry.
const FixedPrecision = 9

// FixedScalar is 10^FixedPrecision, the factor separating a fixed-point
// type's raw integer representation from its decimal value.
const FixedScalar = 1_000_000_000

// Price and Money share this representable range (int64-backed raw value).
const (
	minPriceValue = -9_223_372_036.0
	maxPriceValue = 9_223_372_036.0
)

// Quantity's representable range (uint64-backed raw value).
const maxQuantityValue = 18_446_744_073.0

// roundToScale applies banker's rounding (round-half-to-even) to value at
// the given decimal precision, matching the platform's fixed-point
// construction semantics.
func roundToScale(value float64, precision uint8) float64 {
	scale := math.Pow10(int(precision))
	scaled := value * scale
	floor := math.Floor(scaled)
	diff := scaled - floor
	var rounded float64
	switch {
	case diff < 0.5:
		rounded = floor
	case diff > 0.5:
		rounded = floor + 1
	default:
		if math.Mod(floor, 2) == 0 {
			rounded = floor
		} else {
			rounded = floor + 1
		}
	}
	return rounded / scale
}

func validatePrecision(precision uint8) error {
	if precision > FixedPrecision {
		return errors.Newf(errors.ErrPrecisionOutOfRange, "precision %d exceeds maximum of %d", precision, FixedPrecision)
	}
	return nil
}

// Price is a fixed-point decimal in [-9,223,372,036.0, 9,223,372,036.0],
// stored as an int64 raw value scaled by FixedScalar.
type Price struct {
	raw       int64
	precision uint8
}

// NewPrice constructs a Price from a decimal value, rounding to precision
// decimal digits using round-half-to-even. Fails if precision exceeds
// FixedPrecision or the rounded value is out of range.
func NewPrice(value float64, precision uint8) (Price, error) {
	if err := validatePrecision(precision); err != nil {
		return Price{}, err
	}
	rounded := roundToScale(value, precision)
	if rounded < minPriceValue || rounded > maxPriceValue {
		return Price{}, errors.Newf(errors.ErrOutOfBounds, "price %g is out of range [%g, %g]", rounded, minPriceValue, maxPriceValue)
	}
	raw := int64(math.Round(rounded * FixedScalar))
	return Price{raw: raw, precision: precision}, nil
}

// PriceFromRaw constructs a Price directly from its scaled raw integer
// representation, bypassing rounding. Used when reconstructing a Price
// already computed at the raw-integer level.
func PriceFromRaw(raw int64, precision uint8) (Price, error) {
	if err := validatePrecision(precision); err != nil {
		return Price{}, err
	}
	return Price{raw: raw, precision: precision}, nil
}

// Raw returns the underlying scaled integer value.
func (p Price) Raw() int64 { return p.raw }

// Precision returns the number of decimal digits this Price was
// constructed with.
func (p Price) Precision() uint8 { return p.precision }

// AsFloat64 returns the Price's value as a float64.
func (p Price) AsFloat64() float64 {
	return float64(p.raw) / FixedScalar
}

// String truncates (does not round) to the Price's precision, matching the
// platform's display semantics.
func (p Price) String() string {
	return formatFixed(p.raw, p.precision, true)
}

// Add returns the sum of two prices. The result precision is the larger of
// the two operands' precisions.
func (p Price) Add(o Price) (Price, error) {
	sum, ok := addInt64(p.raw, o.raw)
	if !ok {
		return Price{}, errors.New(errors.ErrOverflow, "price addition overflowed")
	}
	prec := p.precision
	if o.precision > prec {
		prec = o.precision
	}
	return PriceFromRaw(sum, prec)
}

// Sub returns the difference of two prices. The result precision is the
// larger of the two operands' precisions.
func (p Price) Sub(o Price) (Price, error) {
	diff, ok := subInt64(p.raw, o.raw)
	if !ok {
		return Price{}, errors.New(errors.ErrOverflow, "price subtraction overflowed")
	}
	prec := p.precision
	if o.precision > prec {
		prec = o.precision
	}
	return PriceFromRaw(diff, prec)
}

// Equals compares two prices by raw value.
func (p Price) Equals(o Price) bool { return p.raw == o.raw }

// Less reports whether p is strictly less than o.
func (p Price) Less(o Price) bool { return p.raw < o.raw }

// LessOrEqual reports whether p is less than or equal to o.
func (p Price) LessOrEqual(o Price) bool { return p.raw <= o.raw }

// Greater reports whether p is strictly greater than o.
func (p Price) Greater(o Price) bool { return p.raw > o.raw }

// GreaterOrEqual reports whether p is greater than or equal to o.
func (p Price) GreaterOrEqual(o Price) bool { return p.raw >= o.raw }

// IsZero reports whether the price's raw value is zero.
func (p Price) IsZero() bool { return p.raw == 0 }

// Quantity is a non-negative fixed-point decimal in
// [0.0, 18,446,744,073.0], stored as a uint64 raw value scaled by
// FixedScalar.
type Quantity struct {
	raw       uint64
	precision uint8
}

// NewQuantity constructs a Quantity from a decimal value, rounding to
// precision decimal digits using round-half-to-even. Fails if precision
// exceeds FixedPrecision, value is negative, or the rounded value is out
// of range.
func NewQuantity(value float64, precision uint8) (Quantity, error) {
	if err := validatePrecision(precision); err != nil {
		return Quantity{}, err
	}
	if value < 0 {
		return Quantity{}, errors.Newf(errors.ErrOutOfBounds, "quantity %g is negative", value)
	}
	rounded := roundToScale(value, precision)
	if rounded > maxQuantityValue {
		return Quantity{}, errors.Newf(errors.ErrOutOfBounds, "quantity %g exceeds maximum of %g", rounded, maxQuantityValue)
	}
	raw := uint64(math.Round(rounded * FixedScalar))
	return Quantity{raw: raw, precision: precision}, nil
}

// QuantityFromRaw constructs a Quantity directly from its scaled raw
// integer representation, bypassing rounding.
func QuantityFromRaw(raw uint64, precision uint8) (Quantity, error) {
	if err := validatePrecision(precision); err != nil {
		return Quantity{}, err
	}
	return Quantity{raw: raw, precision: precision}, nil
}

// Raw returns the underlying scaled integer value.
func (q Quantity) Raw() uint64 { return q.raw }

// Precision returns the number of decimal digits this Quantity was
// constructed with.
func (q Quantity) Precision() uint8 { return q.precision }

// AsFloat64 returns the Quantity's value as a float64.
func (q Quantity) AsFloat64() float64 {
	return float64(q.raw) / FixedScalar
}

// String truncates (does not round) to the Quantity's precision.
func (q Quantity) String() string {
	return formatFixed(int64(q.raw), q.precision, false)
}

// Add returns the sum of two quantities.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	sum := q.raw + o.raw
	if sum < q.raw {
		return Quantity{}, errors.New(errors.ErrOverflow, "quantity addition overflowed")
	}
	prec := q.precision
	if o.precision > prec {
		prec = o.precision
	}
	return QuantityFromRaw(sum, prec)
}

// Sub returns the difference of two quantities. Fails if the result would
// be negative.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if o.raw > q.raw {
		return Quantity{}, errors.Newf(errors.ErrOutOfBounds, "quantity subtraction %s - %s would be negative", q.String(), o.String())
	}
	prec := q.precision
	if o.precision > prec {
		prec = o.precision
	}
	return QuantityFromRaw(q.raw-o.raw, prec)
}

// Equals compares two quantities by raw value.
func (q Quantity) Equals(o Quantity) bool { return q.raw == o.raw }

// Less reports whether q is strictly less than o.
func (q Quantity) Less(o Quantity) bool { return q.raw < o.raw }

// IsZero reports whether the quantity's raw value is zero.
func (q Quantity) IsZero() bool { return q.raw == 0 }

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

func subInt64(a, b int64) (int64, bool) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, false
	}
	return diff, true
}

// formatFixed truncates raw (scaled by FixedScalar) to precision decimal
// digits and renders it as a decimal string, preserving sign for signed
// (Price) values.
func formatFixed(raw int64, precision uint8, signed bool) string {
	negative := signed && raw < 0
	u := raw
	if negative {
		u = -u
	}
	whole := u / FixedScalar
	frac := u % FixedScalar
	fracStr := strconv.FormatInt(frac, 10)
	for len(fracStr) < FixedPrecision {
		fracStr = "0" + fracStr
	}
	fracStr = fracStr[:precision]
	out := strconv.FormatInt(whole, 10)
	if precision > 0 {
		out += "." + fracStr
	}
	allZero := whole == 0
	for i := 0; allZero && i < len(fracStr); i++ {
		if fracStr[i] != '0' {
			allZero = false
		}
	}
	if negative && !allZero {
		out = "-" + out
	}
	return out
}
