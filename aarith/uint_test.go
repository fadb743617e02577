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

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUIntExpandingAdd(t *testing.T) {
	t.Run("carry_into_expansion_bit", func(t *testing.T) {
		a := UIntFromBits(Ones[uint64](64))
		b := UIntFromUint64[uint64](64, 1)
		sum := a.ExpandingAdd(b, false)
		require.Equal(t, uint(65), sum.Width())
		assert.Equal(t, uint64(0), sum.Word(0))
		assert.True(t, sum.Bit(64))
	})

	t.Run("mixed_widths", func(t *testing.T) {
		a := UIntFromBits(Ones[uint64](150))
		b := UIntFromUint64[uint64](8, 1)
		sum := a.ExpandingAdd(b, false)
		require.Equal(t, uint(151), sum.Width())
		assert.True(t, sum.Bit(150))
		assert.Equal(t, uint64(0), sum.Word(0))
		assert.Equal(t, uint64(0), sum.Word(1))
	})

	t.Run("incoming_carry", func(t *testing.T) {
		sum := UIntFromUint64[uint64](8, 10).ExpandingAdd(UIntFromUint64[uint64](8, 20), true)
		assert.Equal(t, uint64(31), sum.TruncUint64())
	})
}

func TestUIntAddAgainstNative(t *testing.T) {
	vals := []uint64{0, 1, 13, 0xFF, 1 << 32, ^uint64(0) >> 1, ^uint64(0) - 7, ^uint64(0)}
	for _, x := range vals {
		for _, y := range vals {
			a := UIntFromUint64[uint64](64, x)
			b := UIntFromUint64[uint64](64, y)
			sum := a.Add(b)
			assert.Equal(t, x+y, sum.TruncUint64(), "%d + %d", x, y)
			assert.True(t, sum.Equal(b.Add(a)), "commutativity %d + %d", x, y)

			wide, carry := bits.Add64(x, y, 0)
			exp := a.ExpandingAdd(b, false)
			assert.Equal(t, wide, exp.Word(0), "%d + %d low word", x, y)
			assert.Equal(t, carry == 1, exp.Bit(64), "%d + %d carry", x, y)
		}
	}
}

func TestUIntSub(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		a := UIntFromUint64[uint64](100, 1000)
		b := UIntFromUint64[uint64](100, 42)
		assert.Equal(t, uint64(958), a.Sub(b).TruncUint64())
	})

	t.Run("wraps_on_underflow", func(t *testing.T) {
		d := UIntFromUint64[uint64](8, 3).Sub(UIntFromUint64[uint64](8, 5))
		assert.Equal(t, uint64(254), d.TruncUint64())
	})

	t.Run("borrow_across_words", func(t *testing.T) {
		a := UIntFromWords[uint64](128, 0, 1)
		b := UIntFromUint64[uint64](128, 1)
		d := a.Sub(b)
		assert.Equal(t, ^uint64(0), d.Word(0))
		assert.Equal(t, uint64(0), d.Word(1))
	})

	t.Run("expanding_mixed_widths", func(t *testing.T) {
		a := UIntFromUint64[uint64](150, 500)
		b := UIntFromUint64[uint64](8, 200)
		d := a.ExpandingSub(b)
		assert.Equal(t, uint(150), d.Width())
		assert.Equal(t, uint64(300), d.TruncUint64())
	})
}

func TestUIntMulAgainstNative(t *testing.T) {
	vals := []uint64{0, 1, 2, 3, 13, 0xFF, 0xFFFF, 1 << 31, ^uint64(0) >> 1, ^uint64(0)}
	for _, x := range vals {
		for _, y := range vals {
			a := UIntFromUint64[uint64](64, x)
			b := UIntFromUint64[uint64](64, y)

			p := a.ExpandingMul(b)
			require.Equal(t, uint(128), p.Width())
			hi, lo := bits.Mul64(x, y)
			assert.Equal(t, lo, p.Word(0), "%d * %d low", x, y)
			assert.Equal(t, hi, p.Word(1), "%d * %d high", x, y)

			assert.Equal(t, x*y, a.Mul(b).TruncUint64(), "%d * %d truncated", x, y)
		}
	}
}

func TestUIntMulSmallWords(t *testing.T) {
	// 200 * 200 does not fit in eight bits; the expanding product must.
	a := UIntFromUint64[uint8](8, 200)
	p := a.ExpandingMul(a)
	require.Equal(t, uint(16), p.Width())
	v, err := p.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(40000), v)
}

func TestUIntDivRem(t *testing.T) {
	t.Run("division_by_zero", func(t *testing.T) {
		_, _, err := UIntFromUint64[uint64](64, 5).DivRem(NewUInt[uint64](64))
		assert.ErrorIs(t, err, ErrDivByZero)
	})

	t.Run("against_native", func(t *testing.T) {
		nums := []uint64{0, 1, 6, 7, 100, 0xFFFF_FFFF, ^uint64(0)}
		dens := []uint64{1, 2, 3, 7, 10, 255, ^uint64(0)}
		for _, n := range nums {
			for _, d := range dens {
				q, r, err := UIntFromUint64[uint64](64, n).DivRem(UIntFromUint64[uint64](64, d))
				require.NoError(t, err, "%d / %d", n, d)
				assert.Equal(t, n/d, q.TruncUint64(), "%d / %d quotient", n, d)
				assert.Equal(t, n%d, r.TruncUint64(), "%d / %d remainder", n, d)
			}
		}
	})

	t.Run("reconstruction_invariant", func(t *testing.T) {
		// n == q*d + r at a width past the word boundary.
		n := UIntFromWords[uint64](100, 0xDEAD_BEEF_CAFE_F00D, 0x7_1234)
		d := UIntFromUint64[uint64](100, 0x1_0001)
		q, r, err := n.DivRem(d)
		require.NoError(t, err)
		assert.Equal(t, -1, r.Cmp(d))
		back := q.Mul(d).Add(r)
		assert.True(t, back.Equal(n))
	})

	t.Run("narrow_denominator", func(t *testing.T) {
		n := UIntFromUint64[uint64](150, 1000)
		d := UIntFromUint64[uint64](8, 10)
		q, r, err := n.DivRem(d)
		require.NoError(t, err)
		assert.Equal(t, uint(150), q.Width())
		assert.Equal(t, uint64(100), q.TruncUint64())
		assert.True(t, r.IsZero())
	})
}

func TestUIntCmp(t *testing.T) {
	t.Run("cross_width", func(t *testing.T) {
		a := UIntFromUint64[uint64](150, 7)
		b := UIntFromUint64[uint64](8, 7)
		assert.Equal(t, 0, a.Cmp(b))
		assert.True(t, a.Equal(b))

		big := UIntFromUint64[uint64](150, 1).Shl(100)
		assert.Equal(t, 1, big.Cmp(b))
		assert.Equal(t, -1, b.Cmp(big))
		assert.False(t, big.Equal(b))
	})

	t.Run("ordering", func(t *testing.T) {
		a := UIntFromWords[uint64](128, 5, 1)
		b := UIntFromWords[uint64](128, 9, 0)
		assert.Equal(t, 1, a.Cmp(b))
		assert.Equal(t, -1, b.Cmp(a))
	})
}
