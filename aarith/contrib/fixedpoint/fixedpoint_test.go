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

package fixedpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeutel/aarith/aarith"
)

func TestConstruction(t *testing.T) {
	t.Run("from_int64", func(t *testing.T) {
		x := FromInt64[uint64](32, 3, 8)
		assert.Equal(t, uint(35), x.Width())
		// 8 scaled by 2^3.
		assert.Equal(t, uint64(64), x.Bits().TruncUint64())
		assert.Equal(t, "8.0", x.String())
	})

	t.Run("negative_from_int64", func(t *testing.T) {
		x := FromInt64[uint64](8, 4, -3)
		assert.True(t, x.IsNegative())
		assert.Equal(t, "-3.0", x.String())
	})

	t.Run("from_bits", func(t *testing.T) {
		// Pattern 0b0101 at i=2, f=2 is 1.25.
		x := FromBits(2, 2, aarith.BlockFromUint64[uint64](4, 0b0101))
		assert.Equal(t, "1.25", x.String())
	})

	t.Run("bad_widths_panic", func(t *testing.T) {
		assert.Panics(t, func() { New[uint64](0, 4) })
		assert.Panics(t, func() {
			FromBits(2, 2, aarith.BlockFromUint64[uint64](5, 0))
		})
	})
}

func TestParts(t *testing.T) {
	x := FromBits(4, 4, aarith.BlockFromUint64[uint64](8, 0b0110_1010))

	ip := x.IntegerPart()
	require.Equal(t, uint(4), ip.Width())
	assert.Equal(t, uint64(0b0110), ip.TruncUint64())

	fp := x.FractionalPart()
	require.Equal(t, uint(4), fp.Width())
	assert.Equal(t, uint64(0b1010), fp.TruncUint64())

	assert.Equal(t, "0110.1010", x.Binary())
}

func TestShifts(t *testing.T) {
	x := FromInt64[uint64](8, 4, 2)

	t.Run("left_doubles", func(t *testing.T) {
		assert.True(t, x.Shl(1).Equal(FromInt64[uint64](8, 4, 4)))
	})

	t.Run("right_halves", func(t *testing.T) {
		assert.Equal(t, "1.0", x.Shr(1).String())
		assert.Equal(t, "0.5", x.Shr(2).String())
	})

	t.Run("arithmetic_right_keeps_sign", func(t *testing.T) {
		n := FromInt64[uint64](8, 4, -2)
		assert.Equal(t, "-1.0", n.Shr(1).String())
		assert.True(t, n.Shr(100).IsNegative())
	})
}

func TestResize(t *testing.T) {
	t.Run("widening_preserves_value", func(t *testing.T) {
		x := FromBits(4, 2, aarith.BlockFromUint64[uint64](6, 0b0101_10)) // 5.5
		y := x.Resize(8, 6)
		assert.Equal(t, uint(14), y.Width())
		assert.True(t, y.Equal(x))
		assert.Equal(t, "5.5", y.String())
	})

	t.Run("widening_preserves_sign", func(t *testing.T) {
		n := FromInt64[uint64](4, 2, -3)
		w := n.Resize(10, 5)
		assert.True(t, w.IsNegative())
		assert.True(t, w.Equal(n))
	})

	t.Run("narrowing_fraction_truncates", func(t *testing.T) {
		x := FromBits(4, 2, aarith.BlockFromUint64[uint64](6, 0b0101_11)) // 5.75
		y := x.Resize(4, 1)
		assert.Equal(t, "5.5", y.String())
		assert.Equal(t, "5.0", x.Resize(4, 0).String())
	})

	t.Run("narrowing_integer_truncates", func(t *testing.T) {
		x := FromInt64[uint64](8, 2, 9)
		y := x.Resize(4, 2)
		// 9 keeps its low four integer bits: 0b1001 reads as -7.
		assert.True(t, y.IsNegative())
		assert.Equal(t, "-7.0", y.String())
	})
}

func TestAddition(t *testing.T) {
	t.Run("expanding_exact", func(t *testing.T) {
		a := FromInt64[uint64](32, 3, 8)
		b := FromInt64[uint64](32, 3, 4)
		sum := a.ExpandingAdd(b)
		assert.Equal(t, uint(33), sum.IntWidth())
		assert.Equal(t, uint(3), sum.FracWidth())
		assert.True(t, sum.Equal(FromInt64[uint64](33, 3, 12)))
	})

	t.Run("commutative_across_widths", func(t *testing.T) {
		a := FromBits(4, 2, aarith.BlockFromUint64[uint64](6, 0b0101_10))  // 5.5
		b := FromBits(6, 4, aarith.BlockFromUint64[uint64](10, 0b000011_0100)) // 3.25
		ab := a.ExpandingAdd(b)
		ba := b.ExpandingAdd(a)
		assert.True(t, ab.Equal(ba))
		assert.Equal(t, "8.75", ab.String())
	})

	t.Run("adding_zero_is_identity", func(t *testing.T) {
		a := FromBits(4, 2, aarith.BlockFromUint64[uint64](6, 0b1101_10))
		z := New[uint64](2, 9)
		assert.True(t, a.ExpandingAdd(z).Equal(a))
	})

	t.Run("no_overflow_at_extremes", func(t *testing.T) {
		// The expanded integer width absorbs the carry.
		top := FromInt64[uint64](4, 2, 7)
		sum := top.ExpandingAdd(top)
		assert.Equal(t, "14.0", sum.String())
	})

	t.Run("truncating_wraps", func(t *testing.T) {
		top := FromInt64[uint64](4, 2, 7)
		assert.Equal(t, "-2.0", top.Add(top).String())
	})

	t.Run("mismatched_formats_panic", func(t *testing.T) {
		a := New[uint64](4, 2)
		b := New[uint64](4, 3)
		assert.Panics(t, func() { a.Add(b) })
	})
}

func TestSubtraction(t *testing.T) {
	a := FromBits(8, 4, aarith.BlockFromUint64[uint64](12, 0b0000_0101_1000)) // 5.5
	b := FromInt64[uint64](8, 4, 2)

	assert.Equal(t, "3.5", a.ExpandingSub(b).String())
	assert.Equal(t, "-3.5", b.ExpandingSub(a).String())
	assert.Equal(t, "3.5", a.Sub(b).String())
}

func TestMultiplication(t *testing.T) {
	t.Run("widths_add", func(t *testing.T) {
		a := FromInt64[uint64](8, 4, 3)
		b := FromInt64[uint64](6, 2, 5)
		p := a.ExpandingMul(b)
		assert.Equal(t, uint(14), p.IntWidth())
		assert.Equal(t, uint(6), p.FracWidth())
		assert.Equal(t, "15.0", p.String())
	})

	t.Run("fractional_product", func(t *testing.T) {
		half := FromBits(2, 1, aarith.BlockFromUint64[uint64](3, 0b00_1))
		quarter := half.ExpandingMul(half)
		assert.Equal(t, "0.25", quarter.String())
	})

	t.Run("signs", func(t *testing.T) {
		a := FromInt64[uint64](8, 2, -3)
		b := FromInt64[uint64](8, 2, 5)
		assert.Equal(t, "-15.0", a.ExpandingMul(b).String())
		assert.Equal(t, "15.0", a.ExpandingMul(b.Neg()).String())
	})

	t.Run("negative_multiplier_fraction", func(t *testing.T) {
		// 3.25 * -1.5 must be exactly -4.875, not an ULP short.
		a := FromBits(4, 2, aarith.BlockFromUint64[uint64](6, 0b011_01))
		b := FromBits(3, 1, aarith.BlockFromUint64[uint64](4, 0b110_1))
		assert.Equal(t, "-4.875", a.ExpandingMul(b).String())
	})
}

func TestComparison(t *testing.T) {
	t.Run("cross_width_equality", func(t *testing.T) {
		a := FromInt64[uint64](8, 2, 3)
		b := FromInt64[uint64](16, 9, 3)
		assert.True(t, a.Equal(b))
		assert.Equal(t, 0, a.Cmp(b))
	})

	t.Run("ordering", func(t *testing.T) {
		a := FromInt64[uint64](8, 2, 3)
		b := FromBits(8, 2, aarith.BlockFromUint64[uint64](10, 0b00000011_01)) // 3.25
		n := FromInt64[uint64](8, 2, -100)
		assert.Equal(t, -1, a.Cmp(b))
		assert.Equal(t, 1, b.Cmp(a))
		assert.Equal(t, -1, n.Cmp(a))
	})
}

func TestStringRendering(t *testing.T) {
	t.Run("terminating_fractions", func(t *testing.T) {
		cases := []struct {
			bits uint64
			i, f uint
			want string
		}{
			{0b0_1, 1, 1, "0.5"},
			{0b0_0001, 1, 4, "0.0625"},
			{0b0101_11, 4, 2, "5.75"},
			{0b0_000, 1, 3, "0.0"},
		}
		for _, c := range cases {
			x := FromBits(c.i, c.f, aarith.BlockFromUint64[uint64](c.i+c.f, c.bits))
			assert.Equal(t, c.want, x.String())
		}
	})

	t.Run("negative", func(t *testing.T) {
		// -0.5 is the pattern 1.1 at i=1, f=1.
		x := FromBits(1, 1, aarith.BlockFromUint64[uint64](2, 0b11))
		assert.Equal(t, "-0.5", x.String())
	})

	t.Run("most_negative_pattern", func(t *testing.T) {
		x := FromBits(2, 2, aarith.BlockFromUint64[uint64](4, 0b1000))
		assert.Equal(t, "-2.0", x.String())
	})
}
