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

package keccakair

import (
	"github.com/consensys/go-air/pkg/air"
	"github.com/consensys/go-air/pkg/field"
)

// KeccakAir evaluates the Keccak-f[1600] permutation's constraints. It
// is generic over the builder's algebra so the same Eval works against
// both the symbolic builder (degree inference) and the debug builder
// (concrete row checking).
type KeccakAir[F field.Element[F], E field.Element[E], V air.Var[E]] struct{}

// Width reports the fixed Keccak column count.
func (KeccakAir[F, E, V]) Width() uint { return NumKeccakCols }

// Eval emits every constraint of one Keccak-f permutation round.
func (KeccakAir[F, E, V]) Eval(b air.AirBuilder[F, E, V]) {
	evalRoundFlags[F, E, V](b)

	main := b.Main()
	local := ParseKeccakCols[V](main.Row(0))
	next := ParseKeccakCols[V](main.Row(1))

	firstStep := local.StepFlags[0].ToExpr()
	finalStep := local.StepFlags[NumRounds-1].ToExpr()
	notFinalStep := b.One().Sub(finalStep)

	first := air.When[F, E, V](b, firstStep)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			for l := 0; l < U64Limbs; l++ {
				air.AssertEq[F, E, V](first, local.A[y][x][l].ToExpr(), local.Preimage[y][x][l].ToExpr())
			}
		}
	}

	notFinal := air.When[F, E, V](b, air.IsTransition[F, E, V](b).Mul(notFinalStep))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			for l := 0; l < U64Limbs; l++ {
				air.AssertEq[F, E, V](notFinal, next.Preimage[y][x][l].ToExpr(), local.Preimage[y][x][l].ToExpr())
			}
		}
	}

	air.AssertBool[F, E, V](b, local.Export.ToExpr())
	air.When[F, E, V](b, notFinalStep).AssertZero(local.Export.ToExpr())

	// theta, part 1: C' is the xor3 of three C-column bits.
	for x := 0; x < 5; x++ {
		for z := 0; z < 64; z++ {
			air.AssertBool[F, E, V](b, local.C[x][z].ToExpr())
			xored := air.Xor3[E](local.C[x][z].ToExpr(), local.C[(x+4)%5][z].ToExpr(), local.C[(x+1)%5][(z+63)%64].ToExpr())
			air.AssertEq[F, E, V](b, local.CPrime[x][z].ToExpr(), xored)
		}
	}

	// theta, part 2: the 5 bits of A'[*, x, z] sum to C'[x,z] plus an
	// even carry, so their difference is 0, 2 or 4.
	two := b.FromUint32(2)
	four := b.FromUint32(4)
	for x := 0; x < 5; x++ {
		for z := 0; z < 64; z++ {
			sum := b.Zero()
			for y := 0; y < 5; y++ {
				air.AssertBool[F, E, V](b, local.APrime[y][x][z].ToExpr())
				sum = sum.Add(local.APrime[y][x][z].ToExpr())
			}
			diff := sum.Sub(local.CPrime[x][z].ToExpr())
			b.AssertZero(diff.Mul(diff.Sub(two)).Mul(diff.Sub(four)))
		}
	}

	// theta, part 3: A is reconstructed from a_prime/c/c_prime, limb by
	// limb, and must match the committed lane.
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			for limb := 0; limb < U64Limbs; limb++ {
				bits := make([]E, bitsPerLimb)
				for i := 0; i < bitsPerLimb; i++ {
					z := limb*bitsPerLimb + i
					bits[i] = air.Xor3[E](local.APrime[y][x][z].ToExpr(), local.C[x][z].ToExpr(), local.CPrime[x][z].ToExpr())
				}
				air.AssertEq[F, E, V](b, local.A[y][x][limb].ToExpr(), air.PackBitsLE[E](bits))
			}
		}
	}

	// rho+pi, then chi: A'' = B xor (NOT B[x+1] AND B[x+2]).
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			for limb := 0; limb < U64Limbs; limb++ {
				bits := make([]E, bitsPerLimb)
				for i := 0; i < bitsPerLimb; i++ {
					z := limb*bitsPerLimb + i
					b0 := local.B(x, y, z).ToExpr()
					b1 := local.B((x+1)%5, y, z).ToExpr()
					b2 := local.B((x+2)%5, y, z).ToExpr()
					bits[i] = air.Xor[E](b0, air.Andn[E](b1, b2))
				}
				air.AssertEq[F, E, V](b, local.APrimePrime[y][x][limb].ToExpr(), air.PackBitsLE[E](bits))
			}
		}
	}

	// iota: only lane (0,0) is xored with the active round's constant,
	// one bit at a time. The bit columns must be boolean and must repack
	// to the chi output for that lane, otherwise they'd be a free
	// witness.
	for i := 0; i < 64; i++ {
		air.AssertBool[F, E, V](b, local.APrimePrime00Bits[i].ToExpr())
	}
	for limb := 0; limb < U64Limbs; limb++ {
		bits := make([]E, bitsPerLimb)
		for i := 0; i < bitsPerLimb; i++ {
			bits[i] = local.APrimePrime00Bits[limb*bitsPerLimb+i].ToExpr()
		}
		air.AssertEq[F, E, V](b, local.APrimePrime[0][0][limb].ToExpr(), air.PackBitsLE[E](bits))
	}
	for limb := 0; limb < U64Limbs; limb++ {
		bits := make([]E, bitsPerLimb)
		for i := 0; i < bitsPerLimb; i++ {
			z := limb*bitsPerLimb + i
			rcBit := b.Zero()
			for r := 0; r < NumRounds; r++ {
				if rcValueBit(r, z) == 1 {
					rcBit = rcBit.Add(local.StepFlags[r].ToExpr())
				}
			}
			bits[i] = air.Xor[E](local.APrimePrime00Bits[z].ToExpr(), rcBit)
		}
		air.AssertEq[F, E, V](b, local.APrimePrimePrime00Limbs[limb].ToExpr(), air.PackBitsLE[E](bits))
	}

	// each non-final round's output becomes the next round's working state.
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			for limb := 0; limb < U64Limbs; limb++ {
				want := local.APrimePrime[y][x][limb].ToExpr()
				if y == 0 && x == 0 {
					want = local.APrimePrimePrime00Limbs[limb].ToExpr()
				}
				air.AssertEq[F, E, V](notFinal, next.A[y][x][limb].ToExpr(), want)
			}
		}
	}
}
