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

// Package keccakair is a client of pkg/air: it implements the Keccak-f
// permutation as a symbolically-evaluable AIR, to exercise the
// framework end to end. It deliberately stops at evaluation: there is
// no witness generation (no actual Keccak permutation over concrete
// bytes).
package keccakair

// NumRounds is the number of rounds in the Keccak-f[1600] permutation.
const NumRounds = 24

// bitsPerLimb is the width of a single limb used to hold a 64-bit lane.
const bitsPerLimb = 16

// U64Limbs is the number of limbs needed to hold a 64-bit lane.
const U64Limbs = 64 / bitsPerLimb

// KeccakCols lays out every column the Keccak-f AIR reads and writes,
// parameterised by the trace-cell type T (SymbolicVariable[F] when
// evaluated symbolically, F itself when debug-checked against a
// concrete trace).
type KeccakCols[T any] struct {
	// StepFlags[i] is 1 on the row corresponding to round i of the
	// current permutation, 0 otherwise.
	StepFlags [NumRounds]T

	// Export is 1 on the final round of a permutation whose output
	// should be exposed, 0 otherwise.
	Export T

	// Preimage holds the pre-permutation state, fixed across every row
	// of one permutation's rounds (used to check it matches the
	// supplied input on the first step and stays constant across
	// non-final transitions).
	Preimage [5][5][U64Limbs]T

	// A is the working state, updated round by round.
	A [5][5][U64Limbs]T

	// C, CPrime are the theta-step parity columns and their
	// post-rotation counterpart.
	C      [5][64]T
	CPrime [5][64]T

	// APrime is the state after theta, expressed bit by bit; B applies
	// rho and pi to it.
	APrime [5][5][64]T

	// APrimePrime is the state after chi, expressed in limbs.
	APrimePrime [5][5][U64Limbs]T

	// APrimePrime00Bits is A''[0][0] expressed bit by bit, needed to
	// apply the round constant (iota) one bit at a time.
	APrimePrime00Bits [64]T

	// APrimePrimePrime00Limbs is A'''[0][0] (after iota), in limbs.
	// Iota touches no other lane.
	APrimePrimePrime00Limbs [U64Limbs]T
}

// NumKeccakCols is the total column count of KeccakCols.
const NumKeccakCols = NumRounds + 1 +
	5*5*U64Limbs + 5*5*U64Limbs +
	5*64 + 5*64 +
	5*5*64 +
	5*5*U64Limbs +
	64 + U64Limbs

// ParseKeccakCols reads row, a flat slice of NumKeccakCols elements, into
// a KeccakCols in the same fixed order the fields are declared, since Go
// has no safe way to reinterpret a slice as a struct.
func ParseKeccakCols[T any](row []T) KeccakCols[T] {
	var c KeccakCols[T]
	p := 0
	read := func(n int) []T {
		s := row[p : p+n]
		p += n
		return s
	}

	copy(c.StepFlags[:], read(NumRounds))
	c.Export = read(1)[0]
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			copy(c.Preimage[y][x][:], read(U64Limbs))
		}
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			copy(c.A[y][x][:], read(U64Limbs))
		}
	}
	for x := 0; x < 5; x++ {
		copy(c.C[x][:], read(64))
	}
	for x := 0; x < 5; x++ {
		copy(c.CPrime[x][:], read(64))
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			copy(c.APrime[y][x][:], read(64))
		}
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			copy(c.APrimePrime[y][x][:], read(U64Limbs))
		}
	}
	copy(c.APrimePrime00Bits[:], read(64))
	copy(c.APrimePrimePrime00Limbs[:], read(U64Limbs))

	return c
}

// rotOffsets[x][y] is the Keccak rho rotation offset applied to lane
// (x,y) before the pi permutation moves it to B[y][(2x+3y) mod 5].
var rotOffsets = [5][5]int{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

// B reads bit z of the post-rho-pi state B[x][y], which comes from
// A'[origX][origY] rotated left by rotOffsets[origX][origY], where
// (origX, origY) is the pi-step source of (x,y).
func (c KeccakCols[T]) B(x, y, z int) T {
	origY := x
	origX := (3*y + x) % 5
	r := rotOffsets[origX][origY]
	srcZ := ((z-r)%64 + 64) % 64
	return c.APrime[origY][origX][srcZ]
}

// roundConstants are the 24 Keccak-f[1600] round constants, one per
// round, used by the iota step.
var roundConstants = [NumRounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rcValueBit returns bit i of round round's round constant.
func rcValueBit(round, i int) uint64 {
	return (roundConstants[round] >> uint(i)) & 1
}
