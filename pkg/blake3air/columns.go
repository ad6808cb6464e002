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

// Package blake3air is a second client of pkg/air, alongside keccakair:
// it implements the BLAKE3 compression function's round permutation as a
// symbolically-evaluable AIR. Like keccakair it stops at evaluation:
// there is no witness generation.
package blake3air

// NumRounds is the number of rounds BLAKE3's compression function runs.
const NumRounds = 7

// msgPermutation is the fixed word permutation BLAKE3 applies to its
// message schedule between rounds.
var msgPermutation = [16]int{2, 6, 3, 10, 7, 0, 4, 13, 1, 11, 12, 5, 9, 14, 15, 8}

// gIndices lists the (a,b,c,d) state indices each of the 8 G-function
// applications of one round touches: the first 4 are the column round,
// the last 4 the diagonal round.
var gIndices = [8][4]int{
	{0, 4, 8, 12},
	{1, 5, 9, 13},
	{2, 6, 10, 14},
	{3, 7, 11, 15},
	{0, 5, 10, 15},
	{1, 6, 11, 12},
	{2, 7, 8, 13},
	{3, 4, 9, 14},
}

// RotateXor holds the columns backing one "out = rotr(in XOR bits,
// shift)" sub-step of the G function, constrained in the equivalent
// form in = bits XOR rotl(out, shift): the bit decomposition of the
// xor operand that isn't rotated (Bits), the bit decomposition of the
// result (RotSrc, which appears rotated inside the xor), and the
// result as two 16-bit limbs (Out).
type RotateXor[T any] struct {
	Bits   [32]T
	RotSrc [32]T
	Out    [2]T
}

// GCols holds every intermediate column one G-function application
// produces: two additive updates each to a and c, interleaved with two
// rotate-xor updates each to d and b.
type GCols[T any] struct {
	A1 [2]T
	D1 RotateXor[T]
	C1 [2]T
	B1 RotateXor[T]
	A2 [2]T
	D2 RotateXor[T]
	C2 [2]T
	B2 RotateXor[T]
}

// Blake3Cols lays out every column one round of the compression function
// reads and writes, parameterised by the trace-cell type T.
type Blake3Cols[T any] struct {
	// StepFlags[i] is 1 on the row corresponding to round i, 0 otherwise.
	StepFlags [NumRounds]T

	// V is the 16-word state at the start of this round, each word held
	// as two 16-bit limbs.
	V [16][2]T

	// M is this round's message schedule: 16 words, each two limbs,
	// already permuted for this round.
	M [16][2]T

	// G holds the 8 G-function applications this round performs.
	G [8]GCols[T]
}

const numRotateXor = 32 + 32 + 2

// NumBlake3Cols is the total column count of Blake3Cols.
const NumBlake3Cols = NumRounds + 16*2 + 16*2 +
	8*(2+numRotateXor+2+numRotateXor+2+numRotateXor+2+numRotateXor)

// ParseBlake3Cols reads row, a flat slice of NumBlake3Cols elements, into
// a Blake3Cols in the same fixed order the fields are declared.
func ParseBlake3Cols[T any](row []T) Blake3Cols[T] {
	var c Blake3Cols[T]
	p := 0
	read := func(n int) []T {
		s := row[p : p+n]
		p += n
		return s
	}
	readRotateXor := func() RotateXor[T] {
		var rx RotateXor[T]
		copy(rx.Bits[:], read(32))
		copy(rx.RotSrc[:], read(32))
		copy(rx.Out[:], read(2))
		return rx
	}

	copy(c.StepFlags[:], read(NumRounds))
	for i := 0; i < 16; i++ {
		copy(c.V[i][:], read(2))
	}
	for i := 0; i < 16; i++ {
		copy(c.M[i][:], read(2))
	}
	for i := 0; i < 8; i++ {
		g := &c.G[i]
		copy(g.A1[:], read(2))
		g.D1 = readRotateXor()
		copy(g.C1[:], read(2))
		g.B1 = readRotateXor()
		copy(g.A2[:], read(2))
		g.D2 = readRotateXor()
		copy(g.C2[:], read(2))
		g.B2 = readRotateXor()
	}

	return c
}
