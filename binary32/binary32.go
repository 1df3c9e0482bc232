// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package binary32 splits IEEE-754 single-precision floats into their bit fields,
// decodes the fields into a (sign, exponent, mantissa) triple,
// and builds floats back from such triples.
//
// The layout of a binary32 value:
//   31 30      22                     0
//   _|________|_______________________
//   seeeeeeeefffffffffffffffffffffffff
//
// s is the sign bit, e is the biased exponent and f is the fraction.
package binary32

import (
	"fmt"
	"math"

	mu "github.com/avdva/floatbits/internal/mathutil"
)

const (
	// SignBits is the width of the sign field.
	SignBits = 1
	// ExponentBits is the width of the exponent field.
	ExponentBits = 8
	// FractionBits is the width of the fraction field.
	FractionBits = bitsInNumber - ExponentBits - SignBits

	// Bias is subtracted from a stored exponent to get the effective one.
	Bias = 1<<(ExponentBits-1) - 1
	// Radix is the base the exponent is applied to.
	Radix = 2.0

	// MinExponent is the effective exponent of subnormals and the smallest normal exponent.
	MinExponent = 1 - Bias
	// MaxExponent is the largest effective exponent of a finite value.
	MaxExponent = Bias

	bitsInNumber = 32

	signShift = bitsInNumber - SignBits
	expShift  = FractionBits

	signMask = 1<<SignBits - 1
	expMask  = 1<<ExponentBits - 1
	fracMask = 1<<FractionBits - 1

	// quietBit is the most significant fraction bit, set for quiet NaNs.
	quietBit = 1 << (FractionBits - 1)
)

var (
	errRange = fmt.Errorf("field out of range")
)

// RawBits is the bit-exact representation of a binary32 value.
type RawBits uint32

// String returns bits as a zero-padded hex number, like 0x4229ae14.
func (b RawBits) String() string {
	return fmt.Sprintf("0x%08x", uint32(b))
}

// Float32 returns the float stored in b.
func (b RawBits) Float32() float32 {
	return math.Float32frombits(uint32(b))
}

// Fields holds the three raw bit fields of a binary32 value.
// Fields returned by ExtractFields, FromBits, and NewFields always fit their widths.
type Fields struct {
	Sign     uint8
	Exponent uint8
	Fraction uint32
}

// ExtractFields reinterprets the storage of 'value' and splits it into fields.
func ExtractFields(value float32) Fields {
	return FromBits(RawBits(math.Float32bits(value)))
}

// FromBits splits raw bits into fields.
func FromBits(b RawBits) Fields {
	return Fields{
		Sign:     uint8(b >> signShift & signMask),
		Exponent: uint8(b >> expShift & expMask),
		Fraction: uint32(b & fracMask),
	}
}

// NewFields returns fields for given values.
// Returns an error, if any of the values does not fit its field.
func NewFields(sign, exponent, fraction uint32) (Fields, error) {
	if uint64(sign) > mu.Mask(SignBits) {
		return Fields{}, fmt.Errorf("%w: sign %d", errRange, sign)
	}
	if uint64(exponent) > mu.Mask(ExponentBits) {
		return Fields{}, fmt.Errorf("%w: exponent %d", errRange, exponent)
	}
	if uint64(fraction) > mu.Mask(FractionBits) {
		return Fields{}, fmt.Errorf("%w: fraction %d", errRange, fraction)
	}
	return Fields{Sign: uint8(sign), Exponent: uint8(exponent), Fraction: fraction}, nil
}

// Bits shifts and ORs the fields back into a bit pattern.
func (f Fields) Bits() RawBits {
	return RawBits(uint32(f.Sign&signMask)<<signShift |
		uint32(f.Exponent)<<expShift |
		f.Fraction&fracMask)
}

// Float32 returns the float these fields describe.
func (f Fields) Float32() float32 {
	return f.Bits().Float32()
}

// Valid returns true, if every field fits its width.
func (f Fields) Valid() bool {
	return f.Sign <= signMask && f.Fraction <= fracMask
}
