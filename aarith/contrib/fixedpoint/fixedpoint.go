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

// Package fixedpoint provides signed fixed-point numbers built on the
// arbitrary-width integer engine. A value carries an integer width I and a
// fraction width F at runtime and stores an (I+F)-bit two's-complement
// pattern scaled by 2^-F.
package fixedpoint

import (
	"github.com/mbeutel/aarith/aarith"
)

// Fixed is a signed fixed-point number with I integer bits (sign included)
// and F fraction bits. The zero value is not usable; construct through New,
// FromBits or FromInt64.
type Fixed[W aarith.Word] struct {
	bits aarith.Block[W]
	i, f uint
}

// New returns the fixed-point zero with the given integer and fraction
// widths. The integer width must be at least one to hold the sign bit.
func New[W aarith.Word](i, f uint) Fixed[W] {
	if i == 0 {
		panic("fixedpoint: integer width must include the sign bit")
	}
	return Fixed[W]{bits: aarith.NewBlock[W](i + f), i: i, f: f}
}

// FromBits reinterprets a raw bit pattern as a fixed-point number. The
// pattern width must equal i+f.
func FromBits[W aarith.Word](i, f uint, bits aarith.Block[W]) Fixed[W] {
	v := New[W](i, f)
	if bits.Width() != i+f {
		panic("fixedpoint: pattern width does not match i+f")
	}
	v.bits = bits.Resize(bits.Width())
	return v
}

// FromInt64 returns the fixed-point number of value v, the integral pattern
// shifted up by the fraction width.
func FromInt64[W aarith.Word](i, f uint, v int64) Fixed[W] {
	return FromBits(i, f, aarith.IntFromInt64[W](i+f, v).Shl(f).Bits())
}

// IntWidth returns the number of integer bits, sign included.
func (x Fixed[W]) IntWidth() uint { return x.i }

// FracWidth returns the number of fraction bits.
func (x Fixed[W]) FracWidth() uint { return x.f }

// Width returns the total stored width i+f.
func (x Fixed[W]) Width() uint { return x.i + x.f }

// Bits returns a copy of the raw stored pattern.
func (x Fixed[W]) Bits() aarith.Block[W] { return x.bits.Resize(x.bits.Width()) }

// Bit reports whether bit i of the raw pattern is set, counting from the
// least significant fraction bit.
func (x Fixed[W]) Bit(i uint) bool { return x.bits.Bit(i) }

// IsZero reports whether the value is zero.
func (x Fixed[W]) IsZero() bool { return x.bits.IsZero() }

// IsNegative reports whether the value is negative.
func (x Fixed[W]) IsNegative() bool { return x.bits.MSB() }

func (x Fixed[W]) signed() aarith.Int[W] { return aarith.IntFromBits(x.bits) }

// IntegerPart returns the integer bits of the pattern, sign bit included.
func (x Fixed[W]) IntegerPart() aarith.Block[W] {
	return x.bits.Shr(x.f).Resize(x.i)
}

// FractionalPart returns the fraction bits of the pattern. For f == 0 a
// single zero bit is returned.
func (x Fixed[W]) FractionalPart() aarith.Block[W] {
	if x.f == 0 {
		return aarith.NewBlock[W](1)
	}
	return x.bits.Resize(x.f)
}

// Shl shifts the raw pattern left, moving value out of the fraction into
// the integer part. High bits shift out and vanish.
func (x Fixed[W]) Shl(s uint) Fixed[W] {
	return Fixed[W]{bits: x.bits.Shl(s), i: x.i, f: x.f}
}

// Shr shifts the raw pattern right arithmetically, preserving the sign.
func (x Fixed[W]) Shr(s uint) Fixed[W] {
	return Fixed[W]{bits: x.signed().Shr(s).Bits(), i: x.i, f: x.f}
}

// Neg returns the negated value. Negating the most negative pattern wraps.
func (x Fixed[W]) Neg() Fixed[W] {
	return Fixed[W]{bits: x.signed().Neg().Bits(), i: x.i, f: x.f}
}

// Resize changes the integer and fraction widths. Widening both parts
// preserves the value exactly: the integer part sign-extends and the
// fraction part gains zero low bits. Narrowing truncates bits off the
// respective end, which may change the value and flip the sign; that is
// defined, not an error.
//
// The integer part is recast first at the original fraction width, then the
// fraction width is adjusted by shifting the pattern.
func (x Fixed[W]) Resize(i, f uint) Fixed[W] {
	if i == 0 {
		panic("fixedpoint: integer width must include the sign bit")
	}
	recast := aarith.IntFromBits(x.bits).Resize(i + x.f)
	if f > x.f {
		grown := recast.Resize(i + f).Shl(f - x.f)
		return Fixed[W]{bits: grown.Bits(), i: i, f: f}
	}
	shrunk := recast.Shr(x.f - f).Resize(i + f)
	return Fixed[W]{bits: shrunk.Bits(), i: i, f: f}
}

// align resizes both operands to their common expanded widths.
func align[W aarith.Word](a, b Fixed[W], extraInt uint) (x, y Fixed[W]) {
	i := max(a.i, b.i) + extraInt
	f := max(a.f, b.f)
	return a.Resize(i, f), b.Resize(i, f)
}

// ExpandingAdd adds two fixed-point numbers of possibly different widths.
// The result has one more integer bit than the wider integer part and the
// wider fraction part, so the sum is always exact.
func (x Fixed[W]) ExpandingAdd(o Fixed[W]) Fixed[W] {
	a, b := align(x, o, 1)
	return Fixed[W]{bits: a.signed().Add(b.signed()).Bits(), i: a.i, f: a.f}
}

// ExpandingSub subtracts two fixed-point numbers of possibly different
// widths, exactly, at the same expanded widths as ExpandingAdd.
func (x Fixed[W]) ExpandingSub(o Fixed[W]) Fixed[W] {
	a, b := align(x, o, 1)
	return Fixed[W]{bits: a.signed().Sub(b.signed()).Bits(), i: a.i, f: a.f}
}

// Add adds two fixed-point numbers of identical widths. Overflow wraps in
// the integer part.
func (x Fixed[W]) Add(o Fixed[W]) Fixed[W] {
	x.checkSameFormat(o)
	return Fixed[W]{bits: x.signed().Add(o.signed()).Bits(), i: x.i, f: x.f}
}

// Sub subtracts two fixed-point numbers of identical widths. Overflow wraps
// in the integer part.
func (x Fixed[W]) Sub(o Fixed[W]) Fixed[W] {
	x.checkSameFormat(o)
	return Fixed[W]{bits: x.signed().Sub(o.signed()).Bits(), i: x.i, f: x.f}
}

// ExpandingMul multiplies two fixed-point numbers. The integer and fraction
// widths add, so the product is always exact.
func (x Fixed[W]) ExpandingMul(o Fixed[W]) Fixed[W] {
	p := x.signed().ExpandingMul(o.signed())
	return Fixed[W]{bits: p.Bits(), i: x.i + o.i, f: x.f + o.f}
}

// Cmp compares two fixed-point numbers numerically, aligning their widths
// first, and returns -1, 0 or +1.
func (x Fixed[W]) Cmp(o Fixed[W]) int {
	a, b := align(x, o, 0)
	return a.signed().Cmp(b.signed())
}

// Equal reports whether two fixed-point numbers hold the same value. Values
// of different declared widths can be equal.
func (x Fixed[W]) Equal(o Fixed[W]) bool {
	return x.Cmp(o) == 0
}

func (x Fixed[W]) checkSameFormat(o Fixed[W]) {
	if x.i != o.i || x.f != o.f {
		panic("fixedpoint: mismatched operand formats")
	}
}
