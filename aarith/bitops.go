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

import "math/bits"

// This file provides the bit-level operations on Block: bitwise logic,
// leading-bit counting, masking, and bit-range extraction/concatenation.

// leadingZerosWord counts leading zeros in a single word of type W.
func leadingZerosWord[W Word](w W) uint {
	return uint(bits.LeadingZeros64(uint64(w))) - (64 - wordBits[W]())
}

// And returns the bitwise AND of two blocks of equal width.
func (b Block[W]) And(o Block[W]) Block[W] {
	checkSameWidth(b.width, o.width)
	return ZipWith(b, o, func(x, y W) W { return x & y })
}

// Or returns the bitwise OR of two blocks of equal width.
func (b Block[W]) Or(o Block[W]) Block[W] {
	checkSameWidth(b.width, o.width)
	return ZipWith(b, o, func(x, y W) W { return x | y })
}

// Xor returns the bitwise XOR of two blocks of equal width.
func (b Block[W]) Xor(o Block[W]) Block[W] {
	checkSameWidth(b.width, o.width)
	return ZipWith(b, o, func(x, y W) W { return x ^ y })
}

// Not returns the bitwise complement within the declared width.
func (b Block[W]) Not() Block[W] {
	return Map(b, func(x W) W { return ^x })
}

// LeadingZeros counts the bits set to zero before the first one appears,
// scanning from the most significant bit down. The first skip bits are not
// examined; LeadingZeros(1) of 0b100111 is 2, as the leading one is skipped.
// If no one bit is found the result is Width-skip; if skip >= Width the
// result is zero.
func (b Block[W]) LeadingZeros(skip uint) uint {
	if skip >= b.width {
		return 0
	}
	wb := wordBits[W]()
	remaining := b.width - skip
	n := uint(0)
	for remaining > 0 {
		i := int((remaining - 1) / wb)
		used := remaining - uint(i)*wb
		w := b.words[i]
		if used < wb {
			w &= W(1)<<used - 1
		}
		if w != 0 {
			return n + used + leadingZerosWord(w) - wb
		}
		n += used
		remaining -= used
	}
	return n
}

// LeadingOnes counts the bits set to one before the first zero appears,
// scanning from the most significant bit down and skipping the first skip
// bits.
func (b Block[W]) LeadingOnes(skip uint) uint {
	return b.Not().LeadingZeros(skip)
}

// FirstSetBit returns the position of the most significant bit set to one.
// The second result is false when the block is all zero.
func (b Block[W]) FirstSetBit() (uint, bool) {
	lz := b.LeadingZeros(0)
	if lz == b.width {
		return 0, false
	}
	return b.width - (lz + 1), true
}

// FirstUnsetBit returns the position of the most significant bit set to
// zero. The second result is false when the block is all ones.
func (b Block[W]) FirstUnsetBit() (uint, bool) {
	lo := b.LeadingOnes(0)
	if lo == b.width {
		return 0, false
	}
	return b.width - (lo + 1), true
}

// LowMask returns a Block of the given width whose n least significant bits
// are one. If n >= width, every bit is one.
func LowMask[W Word](width, n uint) Block[W] {
	if n >= width {
		return Ones[W](width)
	}
	wb := wordBits[W]()
	b := NewBlock[W](width)
	for i := 0; uint(i)*wb < n; i++ {
		if rem := n - uint(i)*wb; rem < wb {
			b.words[i] = W(1)<<rem - 1
		} else {
			b.words[i] = ^W(0)
		}
	}
	return b
}

// BitRange extracts the bits [end, start], both inclusive and counted from
// the least significant bit, as a new block of width (start-end)+1. It
// returns ErrInvalidRange when end exceeds start or start is not a valid
// bit index.
func (b Block[W]) BitRange(start, end uint) (Block[W], error) {
	if start >= b.width || end > start {
		return Block[W]{}, ErrInvalidRange
	}
	return b.Shr(end).Resize(start - end + 1), nil
}

// Split cuts the block at the given bit position, returning the high bits
// above position `at` and the low bits [at, 0] as two independently sized
// blocks. Concat inverts it exactly. The position must leave both halves at
// least one bit wide, otherwise ErrInvalidRange is returned.
func (b Block[W]) Split(at uint) (hi, lo Block[W], err error) {
	if at >= b.width-1 {
		return Block[W]{}, Block[W]{}, ErrInvalidRange
	}
	hi = b.Shr(at + 1).Resize(b.width - (at + 1))
	lo = b.Resize(at + 1)
	return hi, lo, nil
}

// Concat produces a block of combined width holding the bits of hi above
// the bits of lo.
func Concat[W Word](hi, lo Block[W]) Block[W] {
	width := hi.width + lo.width
	return hi.Resize(width).Shl(lo.width).Or(lo.Resize(width))
}

// Flip returns the block with its bit order reversed.
func (b Block[W]) Flip() Block[W] {
	out := NewBlock[W](b.width)
	for i := uint(0); i < b.width; i++ {
		out.setBit(b.width-1-i, b.bit(i))
	}
	return out
}
