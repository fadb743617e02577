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

// Width casts between declared widths and narrowing conversions to native
// integers. Widening then narrowing back to the original width is always
// the identity.

// Resize converts the block to a new declared width. Widening zero-extends;
// narrowing keeps only the low bits, which is defined (not erroneous)
// behavior.
func (b Block[W]) Resize(width uint) Block[W] {
	out := NewBlock[W](width)
	copy(out.words, b.words)
	out.maskTop()
	return out
}

// TruncUint64 returns the low 64 bits of the block, silently truncating
// any higher bits.
func (b Block[W]) TruncUint64() uint64 {
	wb := wordBits[W]()
	var v uint64
	for i := 0; i < len(b.words) && uint(i)*wb < 64; i++ {
		v |= uint64(b.words[i]) << (uint(i) * wb)
	}
	return v
}

// Uint64 converts the block to a uint64, or returns ErrOverflow when the
// value does not fit.
func (b Block[W]) Uint64() (uint64, error) {
	v := b.TruncUint64()
	if b.width > 64 && b.LeadingZeros(0) < b.width-64 {
		return 0, ErrOverflow
	}
	return v, nil
}

// Resize converts the unsigned integer to a new declared width, preserving
// the numeric value when widening and keeping exactly the low bits when
// narrowing.
func (a UInt[W]) Resize(width uint) UInt[W] {
	return UInt[W]{a.bits.Resize(width)}
}

// TruncUint64 returns the low 64 bits of the value, silently truncating.
func (a UInt[W]) TruncUint64() uint64 { return a.bits.TruncUint64() }

// Uint64 converts the value to a uint64, or returns ErrOverflow when it
// does not fit.
func (a UInt[W]) Uint64() (uint64, error) { return a.bits.Uint64() }

// Resize converts the signed integer to a new declared width. Widening
// replicates the sign bit into the new high bits; narrowing keeps only the
// low bits, which may change the represented value and its sign. That is
// defined, not erroneous, behavior.
func (a Int[W]) Resize(width uint) Int[W] {
	out := a.bits.Resize(width)
	if width > a.bits.width && a.IsNegative() {
		out = out.Or(LowMask[W](width, a.bits.width).Not())
	}
	return Int[W]{out}
}

// TruncInt64 returns the value reduced to 64 bits: the low 64 bits of the
// two's-complement pattern, sign-extended when the declared width is
// smaller than 64.
func (a Int[W]) TruncInt64() int64 {
	v := a.bits.TruncUint64()
	if a.bits.width < 64 && a.IsNegative() {
		v |= ^uint64(0) << a.bits.width
	}
	return int64(v)
}

// Int64 converts the value to an int64, or returns ErrOverflow when it does
// not fit.
func (a Int[W]) Int64() (int64, error) {
	v := a.TruncInt64()
	if a.bits.width > 64 && !a.Equal(IntFromInt64[W](64, v)) {
		return 0, ErrOverflow
	}
	return v, nil
}
