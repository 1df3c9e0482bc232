// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import "github.com/avdva/floatbits/internal/cli"

func main() {
	cli.Execute()
}
