// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binary32

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var (
	// JSONMode defines the way all fields are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeBits
)

const (
	// JSONModeBits marshals fields as a hex bit pattern, like `"0x4229ae14"`.
	JSONModeBits = iota
	// JSONModeFields marshals every field separately, like `{"s":0,"e":132,"f":2731540}`.
	JSONModeFields
)

var (
	jsonParts = []string{`{"s":`, `,"e":`, `,"f":`, `}`}
)

// MarshalJSON marshals fields according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (f Fields) MarshalJSON() ([]byte, error) {
	return f.toJSON(JSONMode), nil
}

func (f Fields) toJSON(mode int) []byte {
	switch mode {
	case JSONModeFields:
		var builder strings.Builder
		builder.WriteString(jsonParts[0])
		builder.WriteString(strconv.FormatUint(uint64(f.Sign), 10))
		builder.WriteString(jsonParts[1])
		builder.WriteString(strconv.FormatUint(uint64(f.Exponent), 10))
		builder.WriteString(jsonParts[2])
		builder.WriteString(strconv.FormatUint(uint64(f.Fraction), 10))
		builder.WriteString(jsonParts[3])
		return []byte(builder.String())
	default:
		return []byte(`"` + f.Bits().String() + `"`)
	}
}

// UnmarshalJSON accepts an object with fields, a bit pattern, or a float number.
// A json null leaves the fields unchanged.
func (f *Fields) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	if string(data) == "null" {
		return nil
	}
	switch data[0] {
	case '{':
		d := struct {
			S, E, F uint32
		}{}
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		fields, err := NewFields(d.S, d.E, d.F)
		if err != nil {
			return err
		}
		*f = fields
	default:
		b, err := ParseBits(string(data))
		if err != nil {
			return err
		}
		*f = FromBits(b)
	}
	return nil
}

type decodedJSON struct {
	Class    Class    `json:"class"`
	Sign     int      `json:"sign"`
	Exponent *int     `json:"exponent,omitempty"`
	Mantissa *float64 `json:"mantissa,omitempty"`
	Fraction uint32   `json:"fraction"`
}

// MarshalJSON marshals d as an object. Infinities and NaNs have no exponent and mantissa.
func (d Decoded) MarshalJSON() ([]byte, error) {
	dj := decodedJSON{Class: d.Class, Sign: d.Sign, Fraction: d.Fraction}
	if d.Class.IsFinite() {
		dj.Exponent, dj.Mantissa = &d.Exponent, &d.Mantissa
	}
	return json.Marshal(dj)
}
