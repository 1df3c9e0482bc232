// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binary32

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	mu "github.com/avdva/floatbits/internal/mathutil"
)

var (
	manyZeros = strings.Repeat("0", bitsInNumber)
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

// Parse parses a string into a float32.
// Accepted forms are:
//	- decimal and exponent notations, "inf" and "nan", like 42.42, -1e-45, +Inf;
//	- raw bits as a hex number of up to 8 digits, like 0x4229ae14;
//	- raw bits as a binary number of up to 32 digits, like 0b0_10000100_01010011010111000010100.
// Raw bit numbers may contain '_' separators. The input may be quoted and padded with spaces.
func Parse(s string) (float32, error) {
	b, f, raw, err := parse(s)
	if err != nil || !raw {
		return f, err
	}
	return b.Float32(), nil
}

// ParseBits is like Parse, but returns the bit pattern.
// Raw bit numbers are returned as is, so NaN payloads never pass through a float.
func ParseBits(s string) (RawBits, error) {
	b, f, raw, err := parse(s)
	if err != nil || raw {
		return b, err
	}
	return RawBits(math.Float32bits(f)), nil
}

// parse returns either raw bits, if 'raw' is true, or a parsed float.
func parse(s string) (b RawBits, f float32, raw bool, err error) {
	s, offset := prepareString(s)
	if len(s) == 0 {
		return 0, 0, false, fmt.Errorf("empty input")
	}
	if base := rawBitsBase(s); base > 0 {
		b, err := parseRawBits(s[2:], base)
		if err != nil {
			// add the trimmed part and the prefix, +1 to start indices from 1.
			return 0, 0, true, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+3))
		}
		return b, 0, true, nil
	}
	f64, err := strconv.ParseFloat(s, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, 0, false, fmt.Errorf("value out of range: %s", s)
		}
		return 0, 0, false, fmt.Errorf("parsing failed: %w", err)
	}
	return 0, float32(f64), false, nil
}

// MustParse is like Parse, but panics on error.
func MustParse(s string) float32 {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

// prepareString cleans the string from quotes and spaces.
func prepareString(s string) (prepared string, offset int) {
	s, offset = trimSpaces(s, offset)
	if len(s) > 0 && s[0] == '"' {
		s = s[1:]
		offset++
		if len(s) > 0 && s[len(s)-1] == '"' {
			s = s[:len(s)-1]
		}
	}
	return trimSpaces(s, offset)
}

func trimSpaces(s string, offset int) (string, int) {
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	return strings.TrimRightFunc(s, unicode.IsSpace), offset
}

func rawBitsBase(s string) int {
	if len(s) < 2 || s[0] != '0' {
		return 0
	}
	switch s[1] {
	case 'x', 'X':
		return 16
	case 'b', 'B':
		return 2
	}
	return 0
}

// parseRawBits parses digits of a number in given base.
// At most 8 hex or 32 binary digits are accepted, leading zeros included.
func parseRawBits(s string, base int) (RawBits, error) {
	maxDigits := bitsInNumber / mu.BinaryDigits(uint64(base-1))
	var result uint32
	digits := 0
	for i, r := range s {
		if r == '_' {
			continue
		}
		d := digitValue(r)
		if d < 0 || d >= base {
			return 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
		if digits++; digits > maxDigits {
			return 0, newPosError(fmt.Sprintf("more than %d digits", maxDigits), i)
		}
		result = result*uint32(base) + uint32(d)
	}
	if digits == 0 {
		return 0, newPosError("no digits", len(s))
	}
	return RawBits(result), nil
}

func digitValue(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'f':
		return int(r-'a') + 10
	case 'A' <= r && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

// formatBinary returns 'v' in base 2, left padded with zeros up to 'width' digits.
func formatBinary(v uint64, width int) string {
	s := strconv.FormatUint(v, 2)
	if diff := width - len(s); diff > 0 {
		return manyZeros[:diff] + s
	}
	return s
}

// FormatFloat formats 'f' in the shortest decimal form, which parses back to the same float32.
// Exponent notation is never used.
func FormatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// formatMantissa prints a mantissa. Decoded mantissas have at most 24 significant bits,
// so the float32 shortest form is enough to parse them back.
func formatMantissa(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 32)
}

// BinaryStrings returns every field in base 2, zero-padded to the field width.
func (f Fields) BinaryStrings() (sign, exponent, fraction string) {
	return formatBinary(uint64(f.Sign), SignBits),
		formatBinary(uint64(f.Exponent), ExponentBits),
		formatBinary(uint64(f.Fraction), FractionBits)
}

// String returns fields separated by spaces, like "0 10000100 01010011010111000010100".
func (f Fields) String() string {
	s, e, m := f.BinaryStrings()
	return s + " " + e + " " + m
}

// GoString returns debug string representation.
func (f Fields) GoString() string {
	return f.Bits().String() + fmt.Sprintf(" {%v, %v, %v}", f.Sign, f.Exponent, f.Fraction)
}
