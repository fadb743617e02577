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

// Logical shifts over the word sequence. A shift is a whole-word skip of
// s / wordBits words plus a sub-word rotation that merges bits from the
// adjacent word across the word boundary.

// Shl returns the block shifted left by s bits. Shifting by the width or
// more yields all zero bits; shifting by zero is the identity.
func (b Block[W]) Shl(s uint) Block[W] {
	if s >= b.width {
		return NewBlock[W](b.width)
	}
	if s == 0 {
		return b.clone()
	}
	wb := wordBits[W]()
	skip := int(s / wb)
	shift := s % wb
	out := NewBlock[W](b.width)
	for i := len(b.words) - 1; i >= skip; i-- {
		w := b.words[i-skip] << shift
		if shift > 0 && i-skip-1 >= 0 {
			w |= b.words[i-skip-1] >> (wb - shift)
		}
		out.words[i] = w
	}
	out.maskTop()
	return out
}

// Shr returns the block shifted right by s bits, filling with zeros.
// Shifting by the width or more yields all zero bits; shifting by zero is
// the identity.
func (b Block[W]) Shr(s uint) Block[W] {
	if s >= b.width {
		return NewBlock[W](b.width)
	}
	if s == 0 {
		return b.clone()
	}
	wb := wordBits[W]()
	skip := int(s / wb)
	shift := s % wb
	out := NewBlock[W](b.width)
	for i := skip; i < len(b.words); i++ {
		w := b.words[i] >> shift
		if shift > 0 && i+1 < len(b.words) {
			w |= b.words[i+1] << (wb - shift)
		}
		out.words[i-skip] = w
	}
	return out
}
