// Copyright 2020 Aleksandr Demakin. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/avdva/floatbits/binary32"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestWriteText(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   float32
		res string
	}{
		{
			42.42,
			"42.42 -> 42.42\n" +
				"field | as_bits | as real number\n" +
				"sign | 0 | +1\n" +
				"exponent | 10000100 | 5\n" +
				"mantissa | 01010011010111000010100 | 1.325625\n",
		},
		{
			1,
			"1 -> 1\n" +
				"field | as_bits | as real number\n" +
				"sign | 0 | +1\n" +
				"exponent | 01111111 | 0\n" +
				"mantissa | 00000000000000000000000 | 1\n",
		},
		{
			-2.5,
			"-2.5 -> -2.5\n" +
				"field | as_bits | as real number\n" +
				"sign | 1 | -1\n" +
				"exponent | 10000000 | 1\n" +
				"mantissa | 01000000000000000000000 | 1.25\n",
		},
		{
			math.SmallestNonzeroFloat32,
			"0.000000000000000000000000000000000000000000001 -> 0.000000000000000000000000000000000000000000001\n" +
				"field | as_bits | as real number\n" +
				"sign | 0 | +1\n" +
				"exponent | 00000000 | -126\n" +
				"mantissa | 00000000000000000000001 | 0.00000011920929\n",
		},
		{
			float32(math.Inf(-1)),
			"-Inf -> -Inf\n" +
				"field | as_bits | as real number\n" +
				"sign | 1 | -1\n" +
				"exponent | 11111111 | infinite\n" +
				"mantissa | 00000000000000000000000 | infinite\n",
		},
		{
			binary32.RawBits(0x7fc00000).Float32(),
			"NaN -> NaN\n" +
				"field | as_bits | as real number\n" +
				"sign | 0 | +1\n" +
				"exponent | 11111111 | nan\n" +
				"mantissa | 10000000000000000000000 | nan\n",
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var b bytes.Buffer
			if a.NoError(New(test.f).Write(&b, FormatText)) {
				a.Equal(test.res, b.String())
			}
		})
	}
}

func TestNew(t *testing.T) {
	a := assert.New(t)
	r := New(42.42)
	a.Equal(float32(42.42), r.OriginalFloat32())
	a.Equal(float32(42.42), r.ReconstructedFloat32())
	a.Equal("0x4229ae14", r.Bits)
	a.Equal(binary32.Normal, r.Class)
	a.Equal("1.325624942779541015625", r.Rows[2].Exact)
	a.Empty(r.Rows[0].Exact)

	r = New(float32(math.Inf(1)))
	a.Equal(binary32.Infinite, r.Class)
	a.Empty(r.Rows[2].Exact)
	a.True(math.IsInf(float64(r.ReconstructedFloat32()), 1))
}

func TestWriteJSON(t *testing.T) {
	a := assert.New(t)
	var b bytes.Buffer
	if !a.NoError(New(42.42).Write(&b, FormatJSON)) {
		return
	}
	var parsed map[string]interface{}
	if !a.NoError(json.Unmarshal(b.Bytes(), &parsed)) {
		return
	}
	a.Equal("42.42", parsed["original"])
	a.Equal("42.42", parsed["reconstructed"])
	a.Equal("0x4229ae14", parsed["bits"])
	a.Equal("normal", parsed["class"])
	rows, ok := parsed["rows"].([]interface{})
	if a.True(ok) && a.Len(rows, 3) {
		a.Equal(map[string]interface{}{
			"field":   "exponent",
			"as_bits": "10000100",
			"as_real": "5",
		}, rows[1])
	}

	// NaN has no json number, but reports still marshal.
	b.Reset()
	a.NoError(New(float32(math.NaN())).WriteJSON(&b))
	a.Contains(b.String(), `"class": "nan"`)
}

func TestWriteYAML(t *testing.T) {
	a := assert.New(t)
	var b bytes.Buffer
	if !a.NoError(New(-2.5).Write(&b, FormatYAML)) {
		return
	}
	var parsed struct {
		Original string
		Bits     string
		Class    string
		Rows     []Row
	}
	if !a.NoError(yaml.Unmarshal(b.Bytes(), &parsed)) {
		return
	}
	a.Equal("-2.5", parsed.Original)
	a.Equal("0xc0200000", parsed.Bits)
	a.Equal("normal", parsed.Class)
	a.Equal([]Row{
		{Field: "sign", Bits: "1", Real: "-1"},
		{Field: "exponent", Bits: "10000000", Real: "1"},
		{Field: "mantissa", Bits: "01000000000000000000000", Real: "1.25", Exact: "1.25"},
	}, parsed.Rows)
}

func TestParseFormat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		f   Format
		err string
	}{
		{"text", FormatText, ""},
		{"JSON", FormatJSON, ""},
		{"yaml", FormatYAML, ""},
		{"xml", FormatText, `unknown format "xml", expected one of text, json, yaml`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f, err := ParseFormat(test.s)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.f, f)
					a.Equal(formatNames[f], f.String())
				}
			} else {
				a.EqualError(err, test.err)
			}
		})
	}
	a.Equal("format(7)", Format(7).String())
	a.EqualError(New(1).Write(&bytes.Buffer{}, Format(7)), "unknown format format(7)")
}
