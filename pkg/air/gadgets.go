// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package air

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-air/pkg/field"
)

// Xor returns x XOR y for boolean field elements, as the degree-2
// polynomial x + y - x*(2y).
func Xor[E field.Element[E]](x, y E) E {
	return x.Add(y).Sub(x.Mul(y.Add(y)))
}

// Xor3 returns x XOR y XOR z.
func Xor3[E field.Element[E]](x, y, z E) E {
	return Xor(x, Xor(y, z))
}

// Andn returns (NOT x) AND y, i.e. (1-x)*y, for boolean field elements.
func Andn[E field.Element[E]](x, y E) E {
	return x.FromUint32(1).Sub(x).Mul(y)
}

// PackBitsLE reconstructs a field element from its little-endian bit
// decomposition: bits[0] is the least significant bit.
func PackBitsLE[E field.Element[E]](bits []E) E {
	acc := field.Zero[E]()
	two := acc.FromUint32(2)
	for i := len(bits) - 1; i >= 0; i-- {
		acc = acc.Mul(two).Add(bits[i])
	}
	return acc
}

// Add2 asserts a == b + c (mod 2^32), where a and b are each split into
// two 16-bit limbs (a[0]/b[0] the low limb, a[1]/b[1] the high limb) and
// c is a 32-bit value likewise split into two limbs. This requires every
// limb to already be range-checked by the caller, and the field
// characteristic to exceed 2^17 so the quadratic root-finding identity below
// has no spurious roots.
func Add2[F field.Element[F], E field.Element[E], V Var[E]](b AirBuilder[F, E, V], a, bLimb [2]V, c [2]E) {
	a0, a1 := a[0].ToExpr(), a[1].ToExpr()
	b0, b1 := bLimb[0].ToExpr(), bLimb[1].ToExpr()

	two16 := b.FromUint32(1 << 16)
	two32 := two16.Mul(two16)

	acc16 := a0.Sub(b0).Sub(c[0])
	acc32 := a1.Sub(b1).Sub(c[1])
	acc := acc16.Add(two16.Mul(acc32))

	b.AssertZero(acc.Mul(acc.Add(two32)))
	b.AssertZero(acc16.Mul(acc16.Add(two16)))
}

// Add3 asserts a == b + c + d (mod 2^32), analogous to Add2 but summing
// three 32-bit operands (b as two trace-cell limbs, c and d as two
// expression limbs each). Requires the field characteristic to exceed
// 3*2^16.
func Add3[F field.Element[F], E field.Element[E], V Var[E]](b AirBuilder[F, E, V], a, bLimb [2]V, c, d [2]E) {
	a0, a1 := a[0].ToExpr(), a[1].ToExpr()
	b0, b1 := bLimb[0].ToExpr(), bLimb[1].ToExpr()

	two16 := b.FromUint32(1 << 16)
	two32 := two16.Mul(two16)

	acc16 := a0.Sub(b0).Sub(c[0]).Sub(d[0])
	acc32 := a1.Sub(b1).Sub(c[1]).Sub(d[1])
	acc := acc16.Add(two16.Mul(acc32))

	b.AssertZero(acc.Mul(acc.Add(two32)).Mul(acc.Add(two32).Add(two32)))
	b.AssertZero(acc16.Mul(acc16.Add(two16)).Mul(acc16.Add(two16).Add(two16)))
}

// XorShift32 asserts that the 32-bit value a (as two 16-bit limbs) equals
// the 32-bit value represented by bits XOR the rotation of c by shift
// positions, where bits and c are each given as 32 individual boolean
// trace cells (least-significant bit first). Every bit of c is range
// checked as a side effect.
func XorShift32[F field.Element[F], E field.Element[E], V Var[E]](b AirBuilder[F, E, V], a [2]V, bits, c [32]V, shift uint) {
	for _, elem := range c {
		AssertBool[F, E, V](b, elem.ToExpr())
	}

	low := make([]E, 16)
	for i := uint(0); i < 16; i++ {
		low[i] = Xor[E](bits[i].ToExpr(), c[(32+i-shift)%32].ToExpr())
	}
	high := make([]E, 16)
	for i := uint(0); i < 16; i++ {
		high[i] = Xor[E](bits[16+i].ToExpr(), c[(32+16+i-shift)%32].ToExpr())
	}

	AssertEq[F, E, V](b, a[0].ToExpr(), PackBitsLE(low))
	AssertEq[F, E, V](b, a[1].ToExpr(), PackBitsLE(high))
}

// U32ToBitsLE decomposes v into 32 little-endian boolean field elements.
func U32ToBitsLE[F field.Element[F]](v uint32) [32]F {
	var out [32]F
	bs := bitset.From([]uint64{uint64(v)})
	for i := 0; i < 32; i++ {
		out[i] = field.FromBool[F](bs.Test(uint(i)))
	}
	return out
}

// U64ToBitsLE decomposes v into 64 little-endian boolean field elements.
func U64ToBitsLE[F field.Element[F]](v uint64) [64]F {
	var out [64]F
	bs := bitset.From([]uint64{v})
	for i := 0; i < 64; i++ {
		out[i] = field.FromBool[F](bs.Test(uint(i)))
	}
	return out
}

// U64To16BitLimbs splits v into four 16-bit limbs, least significant
// first.
func U64To16BitLimbs[F field.Element[F]](v uint64) [4]F {
	var out [4]F
	for i := 0; i < 4; i++ {
		out[i] = field.Zero[F]().FromUint32(uint32((v >> (16 * uint(i))) & 0xFFFF))
	}
	return out
}

// IndicesArr returns the sequence 0..n-1, handy for naming trace
// columns positionally.
func IndicesArr(n uint) []uint {
	out := make([]uint, n)
	for i := range out {
		out[i] = uint(i)
	}
	return out
}
