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

package aarith

import "strconv"

// Textual renderings for diagnostics. These carry no arithmetic contract;
// the decimal forms are produced with the engine's own restoring division.

const digits = "0123456789abcdef"

// base2n renders the block in base 2^n, most significant digit first,
// grouping bits from the least significant end.
func base2n[W Word](b Block[W], n uint) string {
	count := (b.width + n - 1) / n
	out := make([]byte, count)
	for g := uint(0); g < count; g++ {
		d := 0
		for i := uint(0); i < n; i++ {
			if pos := g*n + i; pos < b.width && b.bit(pos) {
				d |= 1 << i
			}
		}
		out[count-1-g] = digits[d]
	}
	return string(out)
}

// Binary renders the block as its Width binary digits, most significant
// first.
func (b Block[W]) Binary() string { return base2n(b, 1) }

// Octal renders the block in base eight.
func (b Block[W]) Octal() string { return base2n(b, 3) }

// Hex renders the block in base sixteen.
func (b Block[W]) Hex() string { return base2n(b, 4) }

// String renders the block as a hexadecimal literal.
func (b Block[W]) String() string { return "0x" + b.Hex() }

// Binary renders the value as its Width binary digits.
func (a UInt[W]) Binary() string { return a.bits.Binary() }

// Octal renders the value in base eight.
func (a UInt[W]) Octal() string { return a.bits.Octal() }

// Hex renders the value in base sixteen.
func (a UInt[W]) Hex() string { return a.bits.Hex() }

// String renders the value in decimal.
func (a UInt[W]) String() string {
	if a.bits.width <= 64 {
		return strconv.FormatUint(a.TruncUint64(), 10)
	}
	// Wide values: peel off decimal digits by restoring division. A width
	// above 64 always has room for the constant ten.
	var out []byte
	ten := UIntFromUint64[W](a.bits.width, 10)
	v := a.Resize(a.bits.width)
	for {
		q, r, _ := v.DivRem(ten)
		out = append(out, digits[r.TruncUint64()])
		if q.IsZero() {
			break
		}
		v = q
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Binary renders the stored two's-complement pattern as its Width binary
// digits.
func (a Int[W]) Binary() string { return a.bits.Binary() }

// Octal renders the stored pattern in base eight.
func (a Int[W]) Octal() string { return a.bits.Octal() }

// Hex renders the stored pattern in base sixteen.
func (a Int[W]) Hex() string { return a.bits.Hex() }

// String renders the value in decimal with a leading minus sign when
// negative.
func (a Int[W]) String() string {
	if a.IsNegative() {
		return "-" + a.ExpandingAbs().String()
	}
	return UInt[W]{a.bits}.String()
}
