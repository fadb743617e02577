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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mbeutel/aarith/aarith"
)

// Evaluator parses two operands at the configured width, applies one
// operation and renders the results.
type Evaluator struct {
	Width  uint
	Signed bool
	Out    io.Writer
}

// Run evaluates op over the two operand literals.
func (ev *Evaluator) Run(op, lhs, rhs string) error {
	if ev.Signed {
		return ev.runSigned(op, lhs, rhs)
	}
	return ev.runUnsigned(op, lhs, rhs)
}

func (ev *Evaluator) runUnsigned(op, lhs, rhs string) error {
	a, err := parseUnsigned[uint64](ev.Width, lhs)
	if err != nil {
		return fmt.Errorf("operand %q: %w", lhs, err)
	}
	b, err := parseUnsigned[uint64](ev.Width, rhs)
	if err != nil {
		return fmt.Errorf("operand %q: %w", rhs, err)
	}

	switch op {
	case "add":
		ev.printUnsigned("sum", a.Add(b))
		ev.printUnsigned("expanded", a.ExpandingAdd(b, false))
	case "sub":
		ev.printUnsigned("difference", a.Sub(b))
	case "mul":
		ev.printUnsigned("product", a.Mul(b))
		ev.printUnsigned("expanded", a.ExpandingMul(b))
	case "div", "rem":
		q, r, err := a.DivRem(b)
		if err != nil {
			return err
		}
		ev.printUnsigned("quotient", q)
		ev.printUnsigned("remainder", r)
	case "cmp":
		fmt.Fprintf(ev.Out, "cmp: %d\n", a.Cmp(b))
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	return nil
}

func (ev *Evaluator) runSigned(op, lhs, rhs string) error {
	a, err := parseSigned[uint64](ev.Width, lhs)
	if err != nil {
		return fmt.Errorf("operand %q: %w", lhs, err)
	}
	b, err := parseSigned[uint64](ev.Width, rhs)
	if err != nil {
		return fmt.Errorf("operand %q: %w", rhs, err)
	}

	switch op {
	case "add":
		ev.printSigned("sum", a.Add(b))
		ev.printSigned("expanded", a.ExpandingAdd(b, false))
	case "sub":
		ev.printSigned("difference", a.Sub(b))
	case "mul":
		ev.printSigned("product", a.Mul(b))
		ev.printSigned("expanded", a.ExpandingMul(b))
	case "div", "rem":
		q, r, err := a.DivRem(b)
		if err != nil {
			return err
		}
		ev.printSigned("quotient", q)
		ev.printSigned("remainder", r)
	case "cmp":
		fmt.Fprintf(ev.Out, "cmp: %d\n", a.Cmp(b))
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	return nil
}

func (ev *Evaluator) printUnsigned(label string, v aarith.UInt[uint64]) {
	fmt.Fprintf(ev.Out, "%s (%d bits): %s = 0x%s = 0b%s\n",
		label, v.Width(), v.String(), v.Hex(), v.Binary())
}

func (ev *Evaluator) printSigned(label string, v aarith.Int[uint64]) {
	fmt.Fprintf(ev.Out, "%s (%d bits): %s = 0x%s = 0b%s\n",
		label, v.Width(), v.String(), v.Hex(), v.Binary())
}

// parseUnsigned reads a decimal or 0x-prefixed hexadecimal literal into an
// unsigned integer of the given width. Values wider than the declared width
// are rejected rather than truncated.
func parseUnsigned[W aarith.Word](width uint, s string) (aarith.UInt[W], error) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return parseHex[W](width, rest)
	}
	if s == "" {
		return aarith.UInt[W]{}, fmt.Errorf("empty operand")
	}
	acc := aarith.NewUInt[W](width + 4)
	ten := aarith.UIntFromUint64[W](width+4, 10)
	for _, c := range s {
		if c < '0' || c > '9' {
			return aarith.UInt[W]{}, fmt.Errorf("invalid decimal digit %q", c)
		}
		acc = acc.Mul(ten).Add(aarith.UIntFromUint64[W](width+4, uint64(c-'0')))
		if acc.Bits().LeadingZeros(0) < 4 {
			return aarith.UInt[W]{}, fmt.Errorf("value does not fit %d bits", width)
		}
	}
	if acc.Bits().LeadingZeros(0) < 4 {
		return aarith.UInt[W]{}, fmt.Errorf("value does not fit %d bits", width)
	}
	return acc.Resize(width), nil
}

func parseHex[W aarith.Word](width uint, s string) (aarith.UInt[W], error) {
	if s == "" {
		return aarith.UInt[W]{}, fmt.Errorf("empty hexadecimal operand")
	}
	acc := aarith.NewUInt[W](width + 4)
	for _, c := range s {
		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		default:
			return aarith.UInt[W]{}, fmt.Errorf("invalid hexadecimal digit %q", c)
		}
		if acc.Bits().LeadingZeros(0) < 4 {
			return aarith.UInt[W]{}, fmt.Errorf("value does not fit %d bits", width)
		}
		acc = acc.Shl(4).Add(aarith.UIntFromUint64[W](width+4, d))
	}
	if acc.Bits().LeadingZeros(0) < 4 {
		return aarith.UInt[W]{}, fmt.Errorf("value does not fit %d bits", width)
	}
	return acc.Resize(width), nil
}

// parseSigned reads a literal with an optional leading minus sign into a
// signed integer of the given width.
func parseSigned[W aarith.Word](width uint, s string) (aarith.Int[W], error) {
	neg := false
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		neg = true
		s = rest
	}
	mag, err := parseUnsigned[W](width, s)
	if err != nil {
		return aarith.Int[W]{}, err
	}
	v := aarith.IntFromBits(mag.Bits())
	if neg {
		v = v.Neg()
	}
	return v, nil
}
