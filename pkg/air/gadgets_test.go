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
	"math/bits"
	"testing"

	"github.com/consensys/go-air/pkg/field/bls12377"
	"github.com/stretchr/testify/require"
)

// gadgetBuilder returns a debug builder with no trace behind it: the
// arithmetic gadgets receive their operands explicitly, so the row view
// never gets touched and any violated identity panics immediately.
func gadgetBuilder() DebugConstraintBuilder[F] {
	return NewDebugConstraintBuilder[F](0, 1, nil, nil, nil)
}

// limbs32 splits v into its two 16-bit limbs, least significant first.
func limbs32(v uint32) [2]F {
	return [2]F{bls12377.New(uint64(v & 0xFFFF)), bls12377.New(uint64(v >> 16))}
}

func TestPackBitsLE_RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 0b1011, 0xFFFF, 0x8000_0001, 0xDEAD_BEEF, 0xFFFF_FFFF} {
		bits := U32ToBitsLE[F](v)
		packed := PackBitsLE[F](bits[:])
		require.True(t, packed.Equal(bls12377.New(uint64(v))), "round trip failed for %#x", v)
	}
}

func TestU64ToBitsLE(t *testing.T) {
	bits := U64ToBitsLE[F](1 << 63)
	for i := 0; i < 63; i++ {
		require.True(t, bits[i].IsZero())
	}
	require.True(t, bits[63].Equal(bls12377.New(1)))
}

func TestU64To16BitLimbs(t *testing.T) {
	limbs := U64To16BitLimbs[F](0x0123_4567_89AB_CDEF)
	require.True(t, limbs[0].Equal(bls12377.New(0xCDEF)))
	require.True(t, limbs[1].Equal(bls12377.New(0x89AB)))
	require.True(t, limbs[2].Equal(bls12377.New(0x4567)))
	require.True(t, limbs[3].Equal(bls12377.New(0x0123)))
}

func TestIndicesArr(t *testing.T) {
	require.Equal(t, []uint{0, 1, 2, 3}, IndicesArr(4))
	require.Empty(t, IndicesArr(0))
}

func TestAdd2_HoldsOnModularSums(t *testing.T) {
	cases := []struct{ b, c uint32 }{
		{0x1234_5678, 0xDEAD_BEEF},
		{0x0000_FFFF, 0x0000_0001}, // carry crosses the limb boundary
		{0xFFFF_FFFF, 0x0000_0002}, // wraps past 2^32
		{0, 0},
	}
	for _, tc := range cases {
		a := tc.b + tc.c
		db := gadgetBuilder()
		require.NotPanics(t, func() {
			Add2[F, F, F](&db, limbs32(a), limbs32(tc.b), limbs32(tc.c))
		}, "a = %#x + %#x should satisfy add2", tc.b, tc.c)
	}
}

func TestAdd2_RejectsWrongSum(t *testing.T) {
	db := gadgetBuilder()
	require.Panics(t, func() {
		Add2[F, F, F](&db, limbs32(5), limbs32(2), limbs32(2))
	})
}

func TestAdd3_HoldsOnModularSums(t *testing.T) {
	cases := []struct{ b, c, d uint32 }{
		{0x1234_5678, 0xDEAD_BEEF, 0x0F0F_0F0F},
		{0xFFFF_FFFF, 0xFFFF_FFFF, 0xFFFF_FFFF}, // double wrap
		{0x0000_FFFF, 0x0000_FFFF, 0x0000_0002}, // double carry out of the low limb
		{0, 0, 0},
	}
	for _, tc := range cases {
		a := tc.b + tc.c + tc.d
		db := gadgetBuilder()
		require.NotPanics(t, func() {
			Add3[F, F, F](&db, limbs32(a), limbs32(tc.b), limbs32(tc.c), limbs32(tc.d))
		}, "a = %#x + %#x + %#x should satisfy add3", tc.b, tc.c, tc.d)
	}
}

func TestAdd3_RejectsWrongSum(t *testing.T) {
	db := gadgetBuilder()
	require.Panics(t, func() {
		Add3[F, F, F](&db, limbs32(10), limbs32(3), limbs32(3), limbs32(3))
	})
}

func TestXorShift32_HoldsOnRotateXor(t *testing.T) {
	cases := []struct {
		b, c  uint32
		shift uint
	}{
		{0x1234_5678, 0xDEAD_BEEF, 7},
		{0xFFFF_FFFF, 0x0000_0001, 16},
		{0xA5A5_A5A5, 0x5A5A_5A5A, 0},
		{0x8000_0001, 0xFFFF_0000, 31},
	}
	for _, tc := range cases {
		a := tc.b ^ bits.RotateLeft32(tc.c, int(tc.shift))
		db := gadgetBuilder()
		bBits := U32ToBitsLE[F](tc.b)
		cBits := U32ToBitsLE[F](tc.c)
		require.NotPanics(t, func() {
			XorShift32[F, F, F](&db, limbs32(a), bBits, cBits, tc.shift)
		}, "a = %#x xor rot(%#x, %d) should satisfy xor_32_shift", tc.b, tc.c, tc.shift)
	}
}

func TestXorShift32_RejectsWrongResult(t *testing.T) {
	db := gadgetBuilder()
	bBits := U32ToBitsLE[F](0x0000_0001)
	cBits := U32ToBitsLE[F](0x0000_0001)
	require.Panics(t, func() {
		XorShift32[F, F, F](&db, limbs32(0), bBits, cBits, 1)
	})
}

func TestXorShift32_RangeChecksRotatedBits(t *testing.T) {
	db := gadgetBuilder()
	var bBits, cBits [32]F
	for i := range bBits {
		bBits[i] = bls12377.New(0)
		cBits[i] = bls12377.New(0)
	}
	cBits[0] = bls12377.New(2) // not boolean

	require.Panics(t, func() {
		XorShift32[F, F, F](&db, limbs32(0), bBits, cBits, 4)
	})
}
