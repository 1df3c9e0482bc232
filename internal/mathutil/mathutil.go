// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import (
	"math/big"
	"math/bits"
	"unsafe"
)

var (
	five = big.NewInt(5)
)

// BinaryDigits returns the number of bits needed to represent 'value'.
func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// Mask returns a value with the lowest 'width' bits set.
func Mask(width int) uint64 {
	if width >= 64 {
		return 1<<64 - 1
	}
	return 1<<uint(width) - 1
}

// SignFactor returns 1 for a cleared sign bit and -1 for a set one.
// Only the lowest bit of 'bit' is taken into account.
func SignFactor(bit uint64) int {
	return [...]int{1, -1}[bit&1]
}

// SignBit is the inverse of SignFactor: 1 for negative 'factor', 0 otherwise.
func SignBit(factor int) uint64 {
	return uint64(factor) >> (unsafe.Sizeof(int(0))*8 - 1)
}

// ScaleBinary converts mant*2^exp2 into coef*10^exp10 without losing precision.
// Negative binary exponents are turned into decimal ones using 2^-n = 5^n * 10^-n.
func ScaleBinary(mant uint64, exp2 int) (coef *big.Int, exp10 int32) {
	coef = new(big.Int).SetUint64(mant)
	if mant == 0 {
		return coef, 0
	}
	if exp2 >= 0 {
		return coef.Lsh(coef, uint(exp2)), 0
	}
	p := new(big.Int).Exp(five, big.NewInt(int64(-exp2)), nil)
	return coef.Mul(coef, p), int32(exp2)
}

// TrimBinary removes trailing zero bits of 'mant' moving them into the exponent.
func TrimBinary(mant uint64, exp2 int) (uint64, int) {
	if mant == 0 {
		return 0, 0
	}
	tz := bits.TrailingZeros64(mant)
	return mant >> uint(tz), exp2 + tz
}
