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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		b := BlockFromWords[uint64](100, 0xDEAD_BEEF, 0x1234)
		m := Map(b, func(w uint64) uint64 { return w })
		assert.True(t, m.Equal(b))
	})

	t.Run("complement_masks_top", func(t *testing.T) {
		b := NewBlock[uint64](70)
		m := Map(b, func(w uint64) uint64 { return ^w })
		assert.Equal(t, ^uint64(0), m.Word(0))
		assert.Equal(t, uint64(0x3F), m.Word(1))
	})
}

func TestZipWith(t *testing.T) {
	t.Run("narrower_result", func(t *testing.T) {
		a := BlockFromUint64[uint64](96, 0xFF00)
		b := BlockFromUint64[uint64](32, 0x0FF0)
		r := ZipWith(a, b, func(x, y uint64) uint64 { return x & y })
		assert.Equal(t, uint(32), r.Width())
		assert.Equal(t, uint64(0x0F00), r.Word(0))
	})

	t.Run("expand_zero_fills", func(t *testing.T) {
		a := BlockFromWords[uint64](96, 1, 2)
		b := BlockFromUint64[uint64](32, 3)
		r := ZipWithExpand(a, b, func(x, y uint64) uint64 { return x | y })
		assert.Equal(t, uint(96), r.Width())
		assert.Equal(t, uint64(3), r.Word(0))
		assert.Equal(t, uint64(2), r.Word(1))
	})
}

func TestZipWithState(t *testing.T) {
	t.Run("ripple_carry_equivalence", func(t *testing.T) {
		// Chained carries across three words.
		a := BlockFromWords[uint64](192, ^uint64(0), ^uint64(0), 0)
		b := BlockFromUint64[uint64](192, 1)
		sum, carry := ZipWithState(a, b, uint64(0), func(x, y, c uint64) (uint64, uint64) {
			s := x + y
			cout := uint64(0)
			if s < x {
				cout = 1
			}
			s += c
			if s < c {
				cout = 1
			}
			return s, cout
		})
		assert.Equal(t, uint64(0), carry)
		assert.Equal(t, uint64(0), sum.Word(0))
		assert.Equal(t, uint64(0), sum.Word(1))
		assert.Equal(t, uint64(1), sum.Word(2))

		want := UIntFromBits(a).Add(UIntFromBits(b))
		assert.True(t, sum.Equal(want.Bits()))
	})

	t.Run("final_state_reported", func(t *testing.T) {
		a := Ones[uint64](64)
		b := BlockFromUint64[uint64](64, 1)
		_, carry := ZipWithState(a, b, uint64(0), func(x, y, c uint64) (uint64, uint64) {
			s := x + y + c
			if s < x {
				return s, 1
			}
			return s, 0
		})
		assert.Equal(t, uint64(1), carry)
	})
}

func TestReduce(t *testing.T) {
	t.Run("popcount", func(t *testing.T) {
		b := BlockFromWords[uint8](24, 0xFF, 0x0F, 0x01)
		n := Reduce(b, 0, func(acc int, w uint8) int {
			for ; w != 0; w &= w - 1 {
				acc++
			}
			return acc
		})
		assert.Equal(t, 13, n)
	})

	t.Run("zip_reduce_equality", func(t *testing.T) {
		a := BlockFromWords[uint64](150, 7, 9, 3)
		b := BlockFromWords[uint64](150, 7, 9, 3)
		eq := ZipReduce(a, b, true, func(acc bool, x, y uint64) bool {
			return acc && x == y
		})
		assert.True(t, eq)
	})

	t.Run("zip_reduce_expand_missing_words", func(t *testing.T) {
		a := BlockFromWords[uint64](150, 7, 0, 0)
		b := BlockFromUint64[uint64](64, 7)
		eq := ZipReduceExpand(a, b, true, func(acc bool, x, y uint64) bool {
			return acc && x == y
		})
		assert.True(t, eq)
	})
}
