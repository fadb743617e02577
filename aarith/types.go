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

// Package aarith provides arbitrary-bit-width arithmetic with bit-exact,
// portable semantics that do not depend on native machine integer widths.
//
// The foundation is [Block], a fixed-width container of bits packed into
// machine words. Two integer views are layered on top of it: [UInt]
// interprets the bits as a non-negative binary integer, and [Int] interprets
// them as a two's-complement signed integer. Widths are fixed at
// construction; arithmetic either wraps modulo 2^width (Add, Sub, Mul) or
// grows the result width so that no carry or guard information is ever lost
// (ExpandingAdd, ExpandingMul).
//
// Basic usage:
//
//	a := aarith.UIntFromUint64[uint64](64, 0xFFFFFFFFFFFFFFFF)
//	b := aarith.UIntFromUint64[uint64](64, 1)
//
//	sum := a.ExpandingAdd(b, false) // 65 bits wide, carry bit preserved
//	wrapped := a.Add(b)             // 64 bits wide, wraps to zero
//
// All values are immutable from the caller's perspective: operations return
// new values and never modify their operands. The word and bit setters exist
// for construction only and use pointer receivers.
package aarith

import "unsafe"

// Word is a constraint for the machine word types a Block can be stored in.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// wordBits returns the number of bits in the word type W.
func wordBits[W Word]() uint {
	var z W
	return uint(unsafe.Sizeof(z)) * 8
}

// Block is a fixed-width container of bits packed into an ordered sequence
// of machine words, stored least-significant word first. Bit positions in
// the most significant word at or beyond the declared width ("shadow bits")
// are always zero; every mutator re-masks the top word before returning.
//
// Block carries no numeric interpretation of its own. UInt and Int are views
// with identical physical layout that add one.
type Block[W Word] struct {
	width uint
	words []W
}

// NewBlock returns an all-zero Block of the given width. The width must be
// at least one bit.
func NewBlock[W Word](width uint) Block[W] {
	if width == 0 {
		panic("aarith: zero-width block")
	}
	wb := wordBits[W]()
	return Block[W]{
		width: width,
		words: make([]W, (width+wb-1)/wb),
	}
}

// BlockFromWords returns a Block of the given width initialized from the
// provided words, least significant first. Missing words are zero; excess
// words and shadow bits are discarded.
func BlockFromWords[W Word](width uint, words ...W) Block[W] {
	b := NewBlock[W](width)
	copy(b.words, words)
	b.maskTop()
	return b
}

// BlockFromUint64 returns a Block of the given width holding the low `width`
// bits of v. Bits of v beyond the declared width are discarded.
func BlockFromUint64[W Word](width uint, v uint64) Block[W] {
	b := NewBlock[W](width)
	wb := wordBits[W]()
	for i := 0; i < len(b.words) && v != 0; i++ {
		b.words[i] = W(v)
		v >>= wb
	}
	b.maskTop()
	return b
}

// Ones returns a Block of the given width with every bit set.
func Ones[W Word](width uint) Block[W] {
	b := NewBlock[W](width)
	for i := range b.words {
		b.words[i] = ^W(0)
	}
	b.maskTop()
	return b
}

// Width returns the declared width in bits.
func (b Block[W]) Width() uint { return b.width }

// WordCount returns the number of machine words backing the block.
func (b Block[W]) WordCount() int { return len(b.words) }

// Word returns the i-th machine word, least significant first.
// It panics if i is not a valid word index.
func (b Block[W]) Word(i int) W { return b.words[i] }

// Words returns a copy of the backing words, least significant first.
func (b Block[W]) Words() []W {
	out := make([]W, len(b.words))
	copy(out, b.words)
	return out
}

// SetWord replaces the i-th machine word. Shadow bits written to the most
// significant word are discarded. It panics if i is not a valid word index.
func (b *Block[W]) SetWord(i int, v W) {
	b.words[i] = v
	b.maskTop()
}

// Bit reports whether the bit at the given position is set, position zero
// being the least significant. It panics if i >= Width.
func (b Block[W]) Bit(i uint) bool {
	b.checkBit(i)
	return b.bit(i)
}

// SetBit sets or clears the bit at the given position. It panics if
// i >= Width.
func (b *Block[W]) SetBit(i uint, set bool) {
	b.checkBit(i)
	b.setBit(i, set)
}

// IsZero reports whether every bit is zero.
func (b Block[W]) IsZero() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// MSB reports the most significant bit within the declared width.
func (b Block[W]) MSB() bool { return b.bit(b.width - 1) }

// MSBOne returns a copy of the block with the most significant bit set.
func (b Block[W]) MSBOne() Block[W] {
	out := b.clone()
	out.setBit(out.width-1, true)
	return out
}

// Equal reports whether two blocks have the same width and the same bits.
func (b Block[W]) Equal(o Block[W]) bool {
	if b.width != o.width {
		return false
	}
	for i, w := range b.words {
		if w != o.words[i] {
			return false
		}
	}
	return true
}

func (b Block[W]) bit(i uint) bool {
	wb := wordBits[W]()
	return (b.words[i/wb]>>(i%wb))&1 == 1
}

func (b *Block[W]) setBit(i uint, set bool) {
	wb := wordBits[W]()
	if set {
		b.words[i/wb] |= W(1) << (i % wb)
	} else {
		b.words[i/wb] &^= W(1) << (i % wb)
	}
}

func (b Block[W]) checkBit(i uint) {
	if i >= b.width {
		panic("aarith: bit index out of range")
	}
}

// maskTop clears the shadow bits of the most significant word. It is the
// single masking routine behind the shadow-bit invariant; every mutator and
// constructor funnels through it.
func (b *Block[W]) maskTop() {
	if r := b.width % wordBits[W](); r != 0 {
		b.words[len(b.words)-1] &= W(1)<<r - 1
	}
}

// wordMask returns the mask of valid (non-shadow) bits of the i-th word,
// or zero if i is not a valid word index.
func (b Block[W]) wordMask(i int) W {
	if i < 0 || i >= len(b.words) {
		return 0
	}
	if i == len(b.words)-1 {
		if r := b.width % wordBits[W](); r != 0 {
			return W(1)<<r - 1
		}
	}
	return ^W(0)
}

// wordOrZero returns the i-th word, treating missing high words as zero.
// Cross-width comparisons rely on it.
func (b Block[W]) wordOrZero(i int) W {
	if i >= len(b.words) {
		return 0
	}
	return b.words[i]
}

func (b Block[W]) clone() Block[W] {
	out := Block[W]{width: b.width, words: make([]W, len(b.words))}
	copy(out.words, b.words)
	return out
}

func checkSameWidth(a, b uint) {
	if a != b {
		panic("aarith: mismatched operand widths")
	}
}
