// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binary32

import (
	"fmt"
	"math"

	mu "github.com/avdva/floatbits/internal/mathutil"
	"github.com/shopspring/decimal"
)

// Class tells what kind of number a set of fields represents.
type Class uint8

const (
	// Zero is a positive or negative zero.
	Zero Class = iota
	// Subnormal is a non-zero value with a zero exponent field and no implicit leading bit.
	Subnormal
	// Normal is a finite value with an implicit leading bit.
	Normal
	// Infinite is a positive or negative infinity.
	Infinite
	// NaN is a not-a-number value. Its fraction field carries a payload.
	NaN
)

var (
	classNames = [...]string{"zero", "subnormal", "normal", "infinite", "nan"}
)

// String returns the name of the class.
func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

// IsFinite returns true for classes, which have a numeric (sign, exponent, mantissa) value.
func (c Class) IsFinite() bool {
	return c <= Normal
}

// MarshalText returns the name of the class.
func (c Class) MarshalText() ([]byte, error) {
	if int(c) >= len(classNames) {
		return nil, fmt.Errorf("unknown class %d", uint8(c))
	}
	return []byte(classNames[c]), nil
}

// UnmarshalText parses a class name.
func (c *Class) UnmarshalText(data []byte) error {
	for i, name := range classNames {
		if name == string(data) {
			*c = Class(i)
			return nil
		}
	}
	return fmt.Errorf("unknown class %q", string(data))
}

// Decoded is the mathematical meaning of a set of fields.
// For finite classes the value equals Sign * Mantissa * 2^Exponent.
// Exponent and Mantissa are zero for Infinite and NaN values and must not be used as numbers.
type Decoded struct {
	Class Class
	// Sign is +1 or -1.
	Sign int
	// Exponent is the effective (unbiased) exponent.
	Exponent int
	// Mantissa is in [1, 2) for normals, and in [0, 1) for subnormals and zeros.
	Mantissa float64
	// Fraction is the raw fraction field. For NaNs it is the payload.
	Fraction uint32
}

// Decode decodes fields into a sign factor, an effective exponent, and a mantissa.
// Bits of 'f' outside of field widths are ignored.
func Decode(f Fields) Decoded {
	sign := mu.SignFactor(uint64(f.Sign))
	frac := f.Fraction & fracMask
	switch f.Exponent {
	case expMask:
		if frac == 0 {
			return Decoded{Class: Infinite, Sign: sign}
		}
		return Decoded{Class: NaN, Sign: sign, Fraction: frac}
	case 0:
		class := Subnormal
		if frac == 0 {
			class = Zero
		}
		return Decoded{Class: class, Sign: sign, Exponent: MinExponent, Mantissa: mantissa(0, frac), Fraction: frac}
	default:
		return Decoded{Class: Normal, Sign: sign, Exponent: int(f.Exponent) - Bias, Mantissa: mantissa(1, frac), Fraction: frac}
	}
}

// DecodeFloat32 is a shortcut for Decode(ExtractFields(value)).
func DecodeFloat32(value float32) Decoded {
	return Decode(ExtractFields(value))
}

// mantissa returns lead + frac/2^23. Both terms fit into 24 bits, so the result is exact.
func mantissa(lead, frac uint32) float64 {
	return math.Ldexp(float64(lead<<FractionBits|frac), -FractionBits)
}

// FromParts returns sign * mantissa * 2^exponent narrowed to the nearest float32.
// Any negative sign gives a negative result, so FromParts(-1, e, 0) is a negative zero.
// The product is exact in float64 for every decoded triple, so the only rounding
// is the final round-to-nearest-even conversion.
func FromParts(sign, exponent int, mantissa float64) float32 {
	v := math.Ldexp(mantissa, exponent)
	if sign < 0 {
		v = -v
	}
	return float32(v)
}

// Float32 returns the value d represents.
// Infinities and NaNs are rebuilt from their bit patterns, so NaN payloads survive.
func (d Decoded) Float32() float32 {
	if !d.Class.IsFinite() {
		return d.Fields().Float32()
	}
	return FromParts(d.Sign, d.Exponent, d.Mantissa)
}

// Fields encodes d back into bit fields.
func (d Decoded) Fields() Fields {
	sign := uint8(mu.SignBit(d.Sign))
	switch d.Class {
	case Infinite:
		return Fields{Sign: sign, Exponent: expMask}
	case NaN:
		frac := d.Fraction & fracMask
		if frac == 0 { // a zero fraction would turn the value into an infinity.
			frac = quietBit
		}
		return Fields{Sign: sign, Exponent: expMask, Fraction: frac}
	default:
		return ExtractFields(FromParts(d.Sign, d.Exponent, d.Mantissa))
	}
}

// Normalized returns d with the mantissa moved into [1, 2).
// Only subnormals are affected: their exponent becomes less than MinExponent.
func (d Decoded) Normalized() Decoded {
	if d.Class != Subnormal {
		return d
	}
	shift := FractionBits + 1 - mu.BinaryDigits(uint64(d.Fraction&fracMask))
	d.Mantissa = math.Ldexp(d.Mantissa, shift)
	d.Exponent -= shift
	return d
}

// Value returns the value as float64.
func (d Decoded) Value() float64 {
	switch d.Class {
	case Infinite:
		return math.Inf(d.Sign)
	case NaN:
		return math.NaN()
	}
	v := math.Ldexp(d.Mantissa, d.Exponent)
	if d.Sign < 0 {
		v = -v
	}
	return v
}

// Decimal returns the exact decimal expansion of the value.
// The second result is false for infinities and NaNs.
func (d Decoded) Decimal() (decimal.Decimal, bool) {
	if !d.Class.IsFinite() {
		return decimal.Zero, false
	}
	return exactDecimal(d.Value()), true
}

// MantissaDecimal returns the exact decimal expansion of the mantissa.
func (d Decoded) MantissaDecimal() decimal.Decimal {
	return exactDecimal(d.Mantissa)
}

// String returns a string like "normal +1 * 1.325625 * 2^5".
func (d Decoded) String() string {
	sign := '+'
	if d.Sign < 0 {
		sign = '-'
	}
	switch d.Class {
	case Infinite:
		return fmt.Sprintf("%cinf", sign)
	case NaN:
		return fmt.Sprintf("%cnan(%#x)", sign, d.Fraction)
	}
	return fmt.Sprintf("%s %c1 * %s * 2^%d", d.Class, sign, formatMantissa(d.Mantissa), d.Exponent)
}

// exactDecimal expands a finite float64. Every float64 is a finite binary fraction,
// and so it has a finite decimal expansion.
func exactDecimal(f float64) decimal.Decimal {
	if f == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero
	}
	frac, exp := math.Frexp(math.Abs(f))
	m, e := mu.TrimBinary(uint64(math.Ldexp(frac, 53)), exp-53)
	coef, exp10 := mu.ScaleBinary(m, e)
	if f < 0 {
		coef.Neg(coef)
	}
	return decimal.NewFromBigInt(coef, exp10)
}

// ULP returns the distance between |f| and the next representable float away from zero.
// For the largest finite value the distance to the previous one is returned.
// ULP(±Inf) is +Inf, ULP(NaN) is NaN.
func ULP(f float32) float32 {
	a := float32(math.Abs(float64(f)))
	switch {
	case math.IsNaN(float64(a)):
		return a
	case math.IsInf(float64(a), 0):
		return a
	}
	next := math.Nextafter32(a, float32(math.Inf(1)))
	if math.IsInf(float64(next), 0) {
		return a - math.Nextafter32(a, 0)
	}
	return next - a
}
