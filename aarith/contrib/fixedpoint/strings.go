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
	"strings"

	"github.com/mbeutel/aarith/aarith"
)

// String renders the value in decimal. The rendering is exact: a fraction
// of f bits terminates within f decimal digits, so no rounding takes place.
func (x Fixed[W]) String() string {
	var sb strings.Builder
	if x.IsNegative() {
		sb.WriteByte('-')
	}
	mag := x.signed().ExpandingAbs()

	intPart := aarith.UIntFromBits(mag.Bits().Shr(x.f).Resize(x.i))
	sb.WriteString(intPart.String())
	if x.f == 0 {
		return sb.String()
	}

	// Peel decimal digits off the fraction by multiplying by ten; the
	// accumulator needs four headroom bits to hold the digit.
	sb.WriteByte('.')
	ten := aarith.UIntFromUint64[W](x.f+4, 10)
	frac := aarith.UIntFromBits(mag.Bits().Resize(x.f)).Resize(x.f + 4)
	for {
		p := frac.Mul(ten)
		digit := p.Shr(x.f).TruncUint64()
		sb.WriteByte(byte('0' + digit))
		frac = p.Resize(x.f).Resize(x.f + 4)
		if frac.IsZero() {
			return sb.String()
		}
	}
}

// Binary renders the raw pattern with a point between the integer and
// fraction bits.
func (x Fixed[W]) Binary() string {
	b := x.bits.Binary()
	if x.f == 0 {
		return b
	}
	return b[:x.i] + "." + b[x.i:]
}
