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

// UInt is a Block interpreted as a non-negative binary integer, the value
// being the sum of word[i] * 2^(i*wordBits). It shares the Block storage
// layout and shadow-bit invariant.
type UInt[W Word] struct {
	bits Block[W]
}

// NewUInt returns the zero unsigned integer of the given width.
func NewUInt[W Word](width uint) UInt[W] {
	return UInt[W]{NewBlock[W](width)}
}

// UIntFromUint64 returns the unsigned integer of the given width holding
// the low `width` bits of v.
func UIntFromUint64[W Word](width uint, v uint64) UInt[W] {
	return UInt[W]{BlockFromUint64[W](width, v)}
}

// UIntFromWords returns the unsigned integer of the given width initialized
// from the provided words, least significant first.
func UIntFromWords[W Word](width uint, words ...W) UInt[W] {
	return UInt[W]{BlockFromWords(width, words...)}
}

// UIntFromBits reinterprets a Block as an unsigned integer. No value
// transformation takes place.
func UIntFromBits[W Word](b Block[W]) UInt[W] {
	return UInt[W]{b.clone()}
}

// Bits returns the underlying bit block.
func (a UInt[W]) Bits() Block[W] { return a.bits.clone() }

// Width returns the declared width in bits.
func (a UInt[W]) Width() uint { return a.bits.width }

// WordCount returns the number of machine words backing the value.
func (a UInt[W]) WordCount() int { return len(a.bits.words) }

// Word returns the i-th machine word, least significant first.
func (a UInt[W]) Word(i int) W { return a.bits.Word(i) }

// SetWord replaces the i-th machine word; construction use only.
func (a *UInt[W]) SetWord(i int, v W) { a.bits.SetWord(i, v) }

// Bit reports whether bit i is set. It panics if i >= Width.
func (a UInt[W]) Bit(i uint) bool { return a.bits.Bit(i) }

// SetBit sets or clears bit i; construction use only. It panics if
// i >= Width.
func (a *UInt[W]) SetBit(i uint, set bool) { a.bits.SetBit(i, set) }

// IsZero reports whether the value is zero.
func (a UInt[W]) IsZero() bool { return a.bits.IsZero() }

// Shl returns the value shifted left by s bits (logical).
func (a UInt[W]) Shl(s uint) UInt[W] { return UInt[W]{a.bits.Shl(s)} }

// Shr returns the value shifted right by s bits (logical).
func (a UInt[W]) Shr(s uint) UInt[W] { return UInt[W]{a.bits.Shr(s)} }

// Cmp compares a and o numerically and returns -1, 0 or +1. The operands
// may have different declared widths; the narrower operand's missing high
// words are treated as zero.
func (a UInt[W]) Cmp(o UInt[W]) int {
	for i := max(len(a.bits.words), len(o.bits.words)) - 1; i >= 0; i-- {
		wa, wo := a.bits.wordOrZero(i), o.bits.wordOrZero(i)
		if wa < wo {
			return -1
		}
		if wa > wo {
			return 1
		}
	}
	return 0
}

// Equal reports whether a and o hold the same numeric value. Values of
// different declared widths can be equal: the wider operand's exclusive
// high words must all be zero.
func (a UInt[W]) Equal(o UInt[W]) bool {
	return ZipReduceExpand(a.bits, o.bits, true, func(eq bool, x, y W) bool {
		return eq && x == y
	})
}

// rippleCarryAdd adds two equal-width blocks word by word, propagating the
// carry detected per word through the unsigned wraparound test sum < operand.
func rippleCarryAdd[W Word](a, b Block[W], carry bool) Block[W] {
	var c W
	if carry {
		c = 1
	}
	sum, _ := ZipWithState(a, b, c, func(x, y, carry W) (W, W) {
		s := x + y
		var out W
		if s < x || s < y {
			out = 1
		}
		s += carry
		if s < x || s < y {
			out = 1
		}
		return s, out
	})
	return sum
}

// ExpandingAdd adds two unsigned integers of possibly different widths,
// with an optional incoming carry. The result is one bit wider than the
// wider operand; the extra bit captures the final carry-out exactly, so no
// overflow is ever lost.
func (a UInt[W]) ExpandingAdd(o UInt[W], carry bool) UInt[W] {
	width := max(a.bits.width, o.bits.width) + 1
	return UInt[W]{rippleCarryAdd(a.bits.Resize(width), o.bits.Resize(width), carry)}
}

// Add adds two unsigned integers of equal width. Overflow silently wraps
// modulo 2^Width.
func (a UInt[W]) Add(o UInt[W]) UInt[W] {
	checkSameWidth(a.bits.width, o.bits.width)
	return a.ExpandingAdd(o, false).Resize(a.bits.width)
}

// Sub subtracts o from a at equal width. Underflow silently wraps modulo
// 2^Width.
func (a UInt[W]) Sub(o UInt[W]) UInt[W] {
	checkSameWidth(a.bits.width, o.bits.width)
	return UInt[W]{rippleCarryAdd(a.bits, o.bits.Not(), true)}
}

// ExpandingSub subtracts two unsigned integers of possibly different
// widths. The result has the wider operand's width and wraps on underflow.
func (a UInt[W]) ExpandingSub(o UInt[W]) UInt[W] {
	width := max(a.bits.width, o.bits.width)
	return a.Resize(width).Sub(o.Resize(width))
}

// ExpandingMul multiplies two unsigned integers using schoolbook
// shift-and-add: for each set bit i of the multiplier, the multiplicand
// shifted left by i is added into an accumulator wide enough to hold the
// full product. The result width is the sum of the operand widths.
func (a UInt[W]) ExpandingMul(o UInt[W]) UInt[W] {
	width := a.bits.width + o.bits.width
	acc := NewBlock[W](width)
	m := a.bits.Resize(width)
	for i := uint(0); i < o.bits.width; i++ {
		if o.bits.bit(i) {
			acc = rippleCarryAdd(acc, m, false)
		}
		m = m.Shl(1)
	}
	return UInt[W]{acc}
}

// Mul multiplies two unsigned integers of equal width. The product is
// truncated back to the operand width, wrapping modulo 2^Width.
func (a UInt[W]) Mul(o UInt[W]) UInt[W] {
	checkSameWidth(a.bits.width, o.bits.width)
	return a.ExpandingMul(o).Resize(a.bits.width)
}

// DivRem performs restoring division, returning the exact quotient and
// remainder with numerator == quotient*denominator + remainder and
// 0 <= remainder < denominator. The denominator may have a different
// declared width; both results have the numerator's width. Division by
// zero returns ErrDivByZero.
func (a UInt[W]) DivRem(d UInt[W]) (q, r UInt[W], err error) {
	width := a.bits.width
	if d.IsZero() {
		return UInt[W]{}, UInt[W]{}, ErrDivByZero
	}
	if a.IsZero() {
		return NewUInt[W](width), NewUInt[W](width), nil
	}
	if d.Equal(UIntFromUint64[W](1, 1)) {
		return a.Resize(width), NewUInt[W](width), nil
	}
	switch a.Cmp(d) {
	case 0:
		return UIntFromUint64[W](width, 1), NewUInt[W](width), nil
	case -1:
		return NewUInt[W](width), a.Resize(width), nil
	}

	// Bit-serial restoring division. The partial remainder needs one bit
	// of headroom: it is smaller than the denominator before each shift,
	// so it fits in width+1 bits afterwards.
	q = NewUInt[W](width)
	rem := NewUInt[W](width + 1)
	den := d.Resize(width + 1)
	for i := int(width) - 1; i >= 0; i-- {
		rem = rem.Shl(1)
		if a.bits.bit(uint(i)) {
			rem.bits.setBit(0, true)
		}
		if rem.Cmp(den) >= 0 {
			rem = rem.Sub(den)
			q.bits.setBit(uint(i), true)
		}
	}
	return q, rem.Resize(width), nil
}

// Div returns the quotient of the restoring division.
func (a UInt[W]) Div(d UInt[W]) (UInt[W], error) {
	q, _, err := a.DivRem(d)
	return q, err
}

// Rem returns the remainder of the restoring division.
func (a UInt[W]) Rem(d UInt[W]) (UInt[W], error) {
	_, r, err := a.DivRem(d)
	return r, err
}
