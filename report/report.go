// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package report describes a float32 as a table of its bit fields.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/avdva/floatbits/binary32"
	"gopkg.in/yaml.v3"
)

// Format is an output format of a report.
type Format int

const (
	// FormatText is the plain table:
	//	<original> -> <reconstructed>
	//	field | as_bits | as real number
	//	sign | <bits> | <sign>
	//	...
	FormatText Format = iota
	// FormatJSON is an indented json object.
	FormatJSON
	// FormatYAML is a yaml document.
	FormatYAML
)

var (
	formatNames = [...]string{"text", "json", "yaml"}
)

// ParseFormat returns a format for given name.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(name, s) {
			return Format(i), nil
		}
	}
	return FormatText, fmt.Errorf("unknown format %q, expected one of %s", s, strings.Join(formatNames[:], ", "))
}

// String returns the name of the format.
func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "format(" + strconv.Itoa(int(f)) + ")"
}

// Row describes a single field.
type Row struct {
	Field string `json:"field" yaml:"field"`
	Bits  string `json:"as_bits" yaml:"as_bits"`
	Real  string `json:"as_real" yaml:"as_real"`
	// Exact is the exact decimal expansion of the mantissa. Empty for other rows.
	Exact string `json:"exact,omitempty" yaml:"exact,omitempty"`
}

// Report is the decomposition of a float32 together with its reconstruction.
// Floats are kept as strings, as neither json nor yaml can hold NaNs and infinities as numbers.
type Report struct {
	Original      string         `json:"original" yaml:"original"`
	Reconstructed string         `json:"reconstructed" yaml:"reconstructed"`
	Bits          string         `json:"bits" yaml:"bits"`
	Class         binary32.Class `json:"class" yaml:"class"`
	Rows          []Row          `json:"rows" yaml:"rows"`

	value, reconstructed float32
}

// New decomposes 'value' and reconstructs it back.
func New(value float32) Report {
	fields := binary32.ExtractFields(value)
	d := binary32.Decode(fields)
	reconstructed := d.Float32()
	sign, exp, frac := fields.BinaryStrings()

	expReal, mantReal, mantExact := d.Class.String(), d.Class.String(), ""
	if d.Class.IsFinite() {
		expReal = strconv.Itoa(d.Exponent)
		mantReal = strconv.FormatFloat(d.Mantissa, 'f', -1, 32)
		mantExact = d.MantissaDecimal().String()
	}

	return Report{
		Original:      binary32.FormatFloat(value),
		Reconstructed: binary32.FormatFloat(reconstructed),
		Bits:          fields.Bits().String(),
		Class:         d.Class,
		Rows: []Row{
			{Field: "sign", Bits: sign, Real: fmt.Sprintf("%+d", d.Sign)},
			{Field: "exponent", Bits: exp, Real: expReal},
			{Field: "mantissa", Bits: frac, Real: mantReal, Exact: mantExact},
		},
		value:         value,
		reconstructed: reconstructed,
	}
}

// OriginalFloat32 returns the original float.
func (r Report) OriginalFloat32() float32 {
	return r.value
}

// ReconstructedFloat32 returns the float built back from the decoded fields.
func (r Report) ReconstructedFloat32() float32 {
	return r.reconstructed
}

// Write writes the report to 'w' in given format.
func (r Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatYAML:
		return r.WriteYAML(w)
	case FormatText:
		return r.WriteText(w)
	default:
		return fmt.Errorf("unknown format %v", f)
	}
}

// WriteText writes the report as a plain table.
func (r Report) WriteText(w io.Writer) error {
	var builder strings.Builder
	builder.WriteString(r.Original + " -> " + r.Reconstructed + "\n")
	builder.WriteString("field | as_bits | as real number\n")
	for _, row := range r.Rows {
		builder.WriteString(row.Field + " | " + row.Bits + " | " + row.Real + "\n")
	}
	_, err := io.WriteString(w, builder.String())
	return err
}

// WriteJSON writes the report as an indented json object.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes the report as a yaml document.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
