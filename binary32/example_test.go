// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binary32

import (
	"encoding/json"
	"fmt"
)

func ExampleDecode() {
	n := float32(42.42)

	fields := ExtractFields(n)
	d := Decode(fields)
	n2 := FromParts(d.Sign, d.Exponent, d.Mantissa)
	fmt.Printf("%v -> %v\n", n, n2)

	sign, exp, frac := fields.BinaryStrings()
	fmt.Printf("sign | %s | %+d\n", sign, d.Sign)
	fmt.Printf("exponent | %s | %d\n", exp, d.Exponent)
	fmt.Printf("mantissa | %s | %s\n", frac, formatMantissa(d.Mantissa))

	exact, _ := d.Decimal()
	fmt.Printf("exact value: %s\n", exact)

	JSONMode = JSONModeFields
	data, err := json.Marshal(fields)
	if err != nil {
		panic(err)
	}
	JSONMode = JSONModeBits
	fmt.Printf("json for fields: %s\n", string(data))

	// Output:
	// 42.42 -> 42.42
	// sign | 0 | +1
	// exponent | 10000100 | 5
	// mantissa | 01010011010111000010100 | 1.325625
	// exact value: 42.4199981689453125
	// json for fields: {"s":0,"e":132,"f":2731540}
}

func ExampleDecoded_Normalized() {
	d := Decode(FromBits(0x00000001))
	fmt.Println(d.Class, d.Exponent, d.Mantissa)
	n := d.Normalized()
	fmt.Println(n.Class, n.Exponent, n.Mantissa)
	fmt.Println(n.Float32() == d.Float32())

	// Output:
	// subnormal -126 1.1920928955078125e-07
	// subnormal -149 1
	// true
}
