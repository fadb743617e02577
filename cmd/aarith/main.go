// Copyright 2026 aarith Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command aarith evaluates a single arithmetic operation over two operands
// at an arbitrary declared bit width.
//
// Usage:
//
//	aarith -width 150 -op add 1267650600228229401496703205376 42
//	aarith -width 8 -signed -op div -- -100 3
//	aarith -width 16 -op mul 0xff 0xff
//
// Operands are decimal, or hexadecimal with an 0x prefix; signed operands
// may carry a leading minus sign. The result is printed in decimal,
// hexadecimal and binary, together with the width-expanded result that
// cannot overflow.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	width  = flag.Uint("width", 64, "operand width in bits")
	signed = flag.Bool("signed", false, "treat operands as two's-complement signed values")
	op     = flag.String("op", "add", "operation: add, sub, mul, div, rem, cmp")
)

func main() {
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Error: exactly two operands are required\n\n")
		flag.Usage()
		os.Exit(1)
	}
	if *width == 0 {
		fmt.Fprintf(os.Stderr, "Error: -width must be at least 1\n")
		os.Exit(1)
	}

	ev := &Evaluator{
		Width:  *width,
		Signed: *signed,
		Out:    os.Stdout,
	}
	if err := ev.Run(*op, flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
