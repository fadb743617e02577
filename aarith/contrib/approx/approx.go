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

// Package approx implements approximate arithmetic on arbitrary-width
// integers: exact operations whose low bits are deliberately discarded, a
// partial-product-masking multiplier, and two inexact adders. Dropping the
// low bits trades accuracy for circuit area in the hardware these operators
// model; here they trade nothing, but they exercise the exact engine from
// the outside the way a hardware cost study would.
package approx

import (
	"github.com/mbeutel/aarith/aarith"
)

// LeadingOnesMask returns a block of the given width whose n most
// significant bits are one and whose remaining bits are zero. For n >= width
// every bit is one.
func LeadingOnesMask[W aarith.Word](width, n uint) aarith.Block[W] {
	if n >= width {
		return aarith.Ones[W](width)
	}
	return aarith.LowMask[W](width, width-n).Not()
}

// keepBits widens the kept-prefix length for signed operands so the sign
// bit always survives the masking.
func keepBits(width, bits uint, signed bool) uint {
	if signed {
		return max(bits+1, width)
	}
	return bits
}

func postMask[W aarith.Word](r aarith.UInt[W], bits uint) aarith.UInt[W] {
	return aarith.UIntFromBits(r.Bits().And(LeadingOnesMask[W](r.Width(), bits)))
}

func preMask[W aarith.Word](a aarith.UInt[W], bits uint) aarith.UInt[W] {
	return aarith.UIntFromBits(a.Bits().And(LeadingOnesMask[W](a.Width(), bits)))
}

// AddPostMasked adds exactly, then keeps only the `bits` most significant
// bits of the sum.
func AddPostMasked[W aarith.Word](a, b aarith.UInt[W], bits uint) aarith.UInt[W] {
	return postMask(a.Add(b), bits)
}

// SubPostMasked subtracts exactly, then keeps only the `bits` most
// significant bits of the difference.
func SubPostMasked[W aarith.Word](a, b aarith.UInt[W], bits uint) aarith.UInt[W] {
	return postMask(a.Sub(b), bits)
}

// MulPostMasked multiplies exactly at operand width, then keeps only the
// `bits` most significant bits of the truncated product.
func MulPostMasked[W aarith.Word](a, b aarith.UInt[W], bits uint) aarith.UInt[W] {
	return postMask(a.Mul(b), bits)
}

// DivPostMasked divides exactly, then keeps only the `bits` most
// significant bits of the quotient.
func DivPostMasked[W aarith.Word](a, b aarith.UInt[W], bits uint) (aarith.UInt[W], error) {
	q, err := a.Div(b)
	if err != nil {
		return aarith.UInt[W]{}, err
	}
	return postMask(q, bits), nil
}

// RemPostMasked computes the exact remainder, then keeps only its `bits`
// most significant bits.
func RemPostMasked[W aarith.Word](a, b aarith.UInt[W], bits uint) (aarith.UInt[W], error) {
	r, err := a.Rem(b)
	if err != nil {
		return aarith.UInt[W]{}, err
	}
	return postMask(r, bits), nil
}

// AddPreMasked discards the low bits of both operands before adding.
func AddPreMasked[W aarith.Word](a, b aarith.UInt[W], bits uint) aarith.UInt[W] {
	return preMask(a, bits).Add(preMask(b, bits))
}

// SubPreMasked discards the low bits of both operands before subtracting.
func SubPreMasked[W aarith.Word](a, b aarith.UInt[W], bits uint) aarith.UInt[W] {
	return preMask(a, bits).Sub(preMask(b, bits))
}

// MulPreMasked discards the low bits of both operands before multiplying.
func MulPreMasked[W aarith.Word](a, b aarith.UInt[W], bits uint) aarith.UInt[W] {
	return preMask(a, bits).Mul(preMask(b, bits))
}

// DivPreMasked discards the low bits of both operands before dividing.
func DivPreMasked[W aarith.Word](a, b aarith.UInt[W], bits uint) (aarith.UInt[W], error) {
	return preMask(a, bits).Div(preMask(b, bits))
}

// RemPreMasked discards the low bits of both operands before taking the
// remainder.
func RemPreMasked[W aarith.Word](a, b aarith.UInt[W], bits uint) (aarith.UInt[W], error) {
	return preMask(a, bits).Rem(preMask(b, bits))
}

// SignedAddPostMasked is AddPostMasked for signed operands. The kept prefix
// is widened so that the sign bit is always computed exactly.
func SignedAddPostMasked[W aarith.Word](a, b aarith.Int[W], bits uint) aarith.Int[W] {
	sum := a.Add(b)
	mask := LeadingOnesMask[W](sum.Width(), keepBits(sum.Width(), bits, true))
	return aarith.IntFromBits(sum.Bits().And(mask))
}

// SignedMulPostMasked is MulPostMasked for signed operands, with the same
// sign-bit widening rule.
func SignedMulPostMasked[W aarith.Word](a, b aarith.Int[W], bits uint) aarith.Int[W] {
	p := a.Mul(b)
	mask := LeadingOnesMask[W](p.Width(), keepBits(p.Width(), bits, true))
	return aarith.IntFromBits(p.Bits().And(mask))
}

// BitmaskingMul multiplies two unsigned integers of equal width W into a
// 2W-bit product, masking every partial product down to its `bits` most
// significant bits before accumulation. With bits >= 2W the result is the
// exact expanding product.
func BitmaskingMul[W aarith.Word](a, b aarith.UInt[W], bits uint) aarith.UInt[W] {
	width := a.Width()
	productWidth := 2 * width
	mask := LeadingOnesMask[W](productWidth, bits)

	shifted := b.Resize(productWidth)
	product := aarith.NewUInt[W](productWidth)
	for i := uint(0); i < width; i++ {
		if a.Bit(i) {
			masked := aarith.UIntFromBits(shifted.Bits().And(mask))
			product = product.Add(masked)
		}
		shifted = shifted.Shl(1)
	}
	return product
}

// TrivialAdd adds word by word without propagating carries between words.
// It exists to demonstrate ZipWithExpand; as an adder it is only correct
// while no word overflows.
func TrivialAdd[W aarith.Word](a, b aarith.UInt[W]) aarith.UInt[W] {
	sum := aarith.ZipWithExpand(a.Bits(), b.Bits(), func(x, y W) W { return x + y })
	return aarith.UIntFromBits(sum)
}

// FAUAdd implements the fault-tolerant approximate unit adder: the operands
// are split into a most significant part added exactly and a least
// significant part added without a carry into the upper half. The top
// `sharedBits` bits of the low part additionally feed a carry predictor;
// when the low sum overflows and no carry was predicted, the low result
// saturates to all ones. The result is one bit wider than the operands.
//
// The split position must satisfy 0 < lspWidth < width and
// sharedBits <= lspWidth; a violation panics, as it is a structural misuse
// rather than a data-dependent condition.
func FAUAdd[W aarith.Word](a, b aarith.UInt[W], lspWidth, sharedBits uint) aarith.UInt[W] {
	width := a.Width()
	if lspWidth == 0 || lspWidth >= width {
		panic("approx: FAUAdd split outside operand")
	}
	if sharedBits > lspWidth {
		panic("approx: FAUAdd shared bits exceed low part")
	}

	lspIndex := lspWidth - 1
	aMsp, aLsp, _ := a.Bits().Split(lspIndex)
	bMsp, bLsp, _ := b.Bits().Split(lspIndex)

	lspSum := aarith.UIntFromBits(aLsp).ExpandingAdd(aarith.UIntFromBits(bLsp), false)
	lsp := lspSum.Resize(lspWidth)

	predictedCarry := false
	if sharedBits > 0 {
		lowShared := lspIndex - (sharedBits - 1)
		aShared, _ := a.Bits().BitRange(lspIndex, lowShared)
		bShared, _ := b.Bits().BitRange(lspIndex, lowShared)
		sharedSum := aarith.UIntFromBits(aShared).ExpandingAdd(aarith.UIntFromBits(bShared), false)
		predictedCarry = sharedSum.Bits().MSB()
	}

	// All-ones correction: a lost carry means the true low sum wrapped, so
	// saturating is closer than keeping the wrapped value.
	if lspSum.Bits().MSB() && !predictedCarry {
		lsp = aarith.UIntFromBits(aarith.Ones[W](lspWidth))
	}

	msp := aarith.UIntFromBits(aMsp).ExpandingAdd(aarith.UIntFromBits(bMsp), predictedCarry)

	result := lsp.Resize(width + 1)
	return result.Add(msp.Resize(width + 1).Shl(lspWidth))
}
