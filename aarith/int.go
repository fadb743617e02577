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

// Int is a Block interpreted as a two's-complement signed integer. Only
// Width bits are stored; the virtual bits beyond the declared width are
// taken to equal the sign bit whenever a value participates in a
// cross-width comparison, so a negative value conceptually sign-extends
// with ones and a non-negative one with zeros.
type Int[W Word] struct {
	bits Block[W]
}

// NewInt returns the zero signed integer of the given width.
func NewInt[W Word](width uint) Int[W] {
	return Int[W]{NewBlock[W](width)}
}

// IntFromInt64 returns the signed integer of the given width holding the
// low `width` bits of v's two's-complement pattern. When the width exceeds
// 64 the pattern is sign-extended.
func IntFromInt64[W Word](width uint, v int64) Int[W] {
	b := BlockFromUint64[W](width, uint64(v))
	if v < 0 && width > 64 {
		b = b.Or(LowMask[W](width, 64).Not())
	}
	return Int[W]{b}
}

// IntFromWords returns the signed integer of the given width initialized
// from the provided words, least significant first.
func IntFromWords[W Word](width uint, words ...W) Int[W] {
	return Int[W]{BlockFromWords(width, words...)}
}

// IntFromBits reinterprets a Block as a signed integer. No value
// transformation takes place.
func IntFromBits[W Word](b Block[W]) Int[W] {
	return Int[W]{b.clone()}
}

// MinValue returns the most negative value of the given width, the pattern
// with only the sign bit set.
func MinValue[W Word](width uint) Int[W] {
	return Int[W]{NewBlock[W](width).MSBOne()}
}

// MaxValue returns the most positive value of the given width, the pattern
// with every bit but the sign bit set.
func MaxValue[W Word](width uint) Int[W] {
	return Int[W]{Ones[W](width).Xor(NewBlock[W](width).MSBOne())}
}

// Bits returns the underlying bit block.
func (a Int[W]) Bits() Block[W] { return a.bits.clone() }

// Width returns the declared width in bits.
func (a Int[W]) Width() uint { return a.bits.width }

// WordCount returns the number of machine words backing the value.
func (a Int[W]) WordCount() int { return len(a.bits.words) }

// Word returns the i-th machine word, least significant first.
func (a Int[W]) Word(i int) W { return a.bits.Word(i) }

// SetWord replaces the i-th machine word; construction use only.
func (a *Int[W]) SetWord(i int, v W) { a.bits.SetWord(i, v) }

// Bit reports whether bit i is set. It panics if i >= Width.
func (a Int[W]) Bit(i uint) bool { return a.bits.Bit(i) }

// SetBit sets or clears bit i; construction use only. It panics if
// i >= Width.
func (a *Int[W]) SetBit(i uint, set bool) { a.bits.SetBit(i, set) }

// IsZero reports whether the value is zero.
func (a Int[W]) IsZero() bool { return a.bits.IsZero() }

// IsNegative reports whether the sign bit is set.
func (a Int[W]) IsNegative() bool { return a.bits.MSB() }

// Neg returns the two's complement of a, the bitwise complement plus one.
// Negating the most negative value yields the value itself: defined
// wraparound, not an error.
func (a Int[W]) Neg() Int[W] {
	return Int[W]{rippleCarryAdd(a.bits.Not(), NewBlock[W](a.bits.width), true)}
}

// Abs returns the absolute value. Note that Abs(MinValue) wraps back to
// MinValue, as the magnitude is not representable at the same width.
func (a Int[W]) Abs() Int[W] {
	if a.IsNegative() {
		return a.Neg()
	}
	return Int[W]{a.bits.clone()}
}

// ExpandingAbs returns the absolute value as an unsigned integer of the
// same width. Unlike Abs this is exact for every input, including the most
// negative value, whose magnitude 2^(Width-1) fits the unsigned range.
func (a Int[W]) ExpandingAbs() UInt[W] {
	return UInt[W]{a.Abs().bits}
}

// Cmp compares a and o numerically and returns -1, 0 or +1. The operands
// may have different declared widths; the narrower operand is conceptually
// sign-extended. When both operands are negative the magnitudes are
// compared and the result polarity flipped.
func (a Int[W]) Cmp(o Int[W]) int {
	an, on := a.IsNegative(), o.IsNegative()
	switch {
	case an && !on:
		return -1
	case !an && on:
		return 1
	case an:
		return -a.ExpandingAbs().Cmp(o.ExpandingAbs())
	default:
		return UInt[W]{a.bits}.Cmp(UInt[W]{o.bits})
	}
}

// Equal reports whether a and o hold the same numeric value under sign
// extension, without materializing widened copies: the signs must match and
// every word of the wider operand must equal the corresponding word of the
// narrower one extended to the wider width, which for a negative value
// fills the bits above the narrower width with ones.
func (a Int[W]) Equal(o Int[W]) bool {
	neg := a.IsNegative()
	if neg != o.IsNegative() {
		return false
	}
	wide, narrow := a.bits, o.bits
	if wide.width < narrow.width {
		wide, narrow = narrow, wide
	}
	for i := range wide.words {
		ext := narrow.wordOrZero(i)
		if neg {
			ext |= ^narrow.wordMask(i)
		}
		if wide.words[i] != ext&wide.wordMask(i) {
			return false
		}
	}
	return true
}

// Shl returns the value shifted left by s bits (logical).
func (a Int[W]) Shl(s uint) Int[W] { return Int[W]{a.bits.Shl(s)} }

// Shr returns the value arithmetically shifted right by s bits: the
// vacated high bits are filled with the sign bit. Shift counts reaching or
// exceeding the width yield all sign bits, so -1 shifted by any amount
// stays -1.
func (a Int[W]) Shr(s uint) Int[W] {
	width := a.bits.width
	if s >= width {
		if a.IsNegative() {
			return Int[W]{Ones[W](width)}
		}
		return NewInt[W](width)
	}
	if s == 0 {
		return Int[W]{a.bits.clone()}
	}
	out := a.bits.Shr(s)
	if a.IsNegative() {
		out = out.Or(LowMask[W](width, width-s).Not())
	}
	return Int[W]{out}
}

// ExpandingAdd adds two signed integers of possibly different widths, with
// an optional incoming carry. Both operands are sign-extended to one bit
// more than the wider width, so the result never overflows.
func (a Int[W]) ExpandingAdd(o Int[W], carry bool) Int[W] {
	width := max(a.bits.width, o.bits.width) + 1
	return Int[W]{rippleCarryAdd(a.Resize(width).bits, o.Resize(width).bits, carry)}
}

// Add adds two signed integers of equal width. Overflow silently wraps
// modulo 2^Width.
func (a Int[W]) Add(o Int[W]) Int[W] {
	checkSameWidth(a.bits.width, o.bits.width)
	return a.ExpandingAdd(o, false).Resize(a.bits.width)
}

// Sub subtracts o from a at equal width, computed as a + (-o). Overflow
// silently wraps.
func (a Int[W]) Sub(o Int[W]) Int[W] {
	checkSameWidth(a.bits.width, o.bits.width)
	return a.Add(o.Neg())
}

// ExpandingSub subtracts two signed integers of possibly different widths.
// The result has the wider operand's width and wraps on overflow.
func (a Int[W]) ExpandingSub(o Int[W]) Int[W] {
	width := max(a.bits.width, o.bits.width)
	return a.Resize(width).Sub(o.Resize(width))
}

// ExpandingMul multiplies two signed integers with the Booth recoding
// algorithm, examining the multiplier two bits at a time: a (0,1) pair adds
// the shifted multiplicand into the accumulator, a (1,0) pair adds its
// negation, and every step shifts the accumulator right by one. The
// accumulator carries two guard bits beyond the product width so that the
// most negative operand multiplies correctly; the final right shift drops
// the Booth bit. The result width is the sum of the operand widths.
func (a Int[W]) ExpandingMul(o Int[W]) Int[W] {
	w, v := a.bits.width, o.bits.width
	k := w + v + 2

	add := a.Resize(w + 1).Resize(k)
	sub := add.Neg()
	add = add.Shl(v + 1)
	sub = sub.Shl(v + 1)

	// The multiplier enters the accumulator as a raw pattern: bits above it
	// must start at zero, so this widening is a zero extension, not a
	// signed resize.
	p := Int[W]{o.bits.Resize(k)}.Shl(1)
	for i := uint(0); i < v; i++ {
		last := p.bits.bit(0)
		sndLast := p.bits.bit(1)
		if sndLast && !last {
			p = p.Add(sub)
		}
		if !sndLast && last {
			p = p.Add(add)
		}
		p = p.Shr(1)
	}
	return p.Shr(1).Resize(w + v)
}

// Mul multiplies two signed integers of equal width. The product is
// truncated back to the operand width, wrapping modulo 2^Width.
func (a Int[W]) Mul(o Int[W]) Int[W] {
	checkSameWidth(a.bits.width, o.bits.width)
	return a.ExpandingMul(o).Resize(a.bits.width)
}

// DivRem performs signed restoring division. The quotient's sign is the
// XOR of the operand signs, the remainder takes the numerator's sign, and
// numerator == quotient*denominator + remainder holds exactly with
// |remainder| < |denominator|. The denominator may have a different
// declared width; both results have the numerator's width.
//
// Division by zero returns ErrDivByZero. MinValue divided by -1 yields
// (MinValue, 0): defined overflow, not an error.
func (a Int[W]) DivRem(d Int[W]) (q, r Int[W], err error) {
	width := a.bits.width
	if d.IsZero() {
		return Int[W]{}, Int[W]{}, ErrDivByZero
	}
	if a.IsZero() {
		return NewInt[W](width), NewInt[W](width), nil
	}
	if d.Equal(IntFromInt64[W](2, 1)) {
		return a.Resize(width), NewInt[W](width), nil
	}
	if a.Equal(d) {
		return IntFromInt64[W](width, 1), NewInt[W](width), nil
	}

	negate := a.IsNegative() != d.IsNegative()
	num := a.ExpandingAbs()
	den := d.ExpandingAbs()
	if num.Cmp(den) < 0 {
		return NewInt[W](width), Int[W]{a.bits.clone()}, nil
	}

	uq, ur, err := num.DivRem(den)
	if err != nil {
		return Int[W]{}, Int[W]{}, err
	}
	q = Int[W]{uq.bits}
	r = Int[W]{ur.bits}
	if negate {
		q = q.Neg()
	}
	if a.IsNegative() {
		r = r.Neg()
	}
	return q, r, nil
}

// Div returns the quotient of the signed restoring division.
func (a Int[W]) Div(d Int[W]) (Int[W], error) {
	q, _, err := a.DivRem(d)
	return q, err
}

// Rem returns the remainder of the signed restoring division.
func (a Int[W]) Rem(d Int[W]) (Int[W], error) {
	_, r, err := a.DivRem(d)
	return r, err
}
