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

package blake3air

import (
	"github.com/consensys/go-air/pkg/air"
	"github.com/consensys/go-air/pkg/field"
)

// Blake3Air evaluates one round of the BLAKE3 compression function's
// constraints. It is generic over the builder's algebra so the same Eval
// works against both the symbolic builder and the debug builder.
type Blake3Air[F field.Element[F], E field.Element[E], V air.Var[E]] struct{}

// Width reports the fixed BLAKE3 column count.
func (Blake3Air[F, E, V]) Width() uint { return NumBlake3Cols }

// Eval emits every constraint of one round of the compression function.
func (Blake3Air[F, E, V]) Eval(b air.AirBuilder[F, E, V]) {
	evalRoundFlags[F, E, V](b)

	main := b.Main()
	local := ParseBlake3Cols[V](main.Row(0))
	next := ParseBlake3Cols[V](main.Row(1))

	finalStep := local.StepFlags[NumRounds-1].ToExpr()
	notFinalStep := b.One().Sub(finalStep)
	notFinal := air.When[F, E, V](b, air.IsTransition[F, E, V](b).Mul(notFinalStep))

	state := local.V
	for g := 0; g < 8; g++ {
		idx := gIndices[g]
		ai, bi, ci, di := idx[0], idx[1], idx[2], idx[3]
		mx, my := local.M[2*g], local.M[2*g+1]
		outA, outB, outC, outD := evalG[F, E, V](b, &local.G[g], state[ai], state[bi], state[ci], state[di], mx, my)
		state[ai], state[bi], state[ci], state[di] = outA, outB, outC, outD
	}

	// the round's final state becomes the next row's starting state.
	for i := 0; i < 16; i++ {
		air.AssertEq[F, E, V](notFinal, next.V[i][0].ToExpr(), state[i][0].ToExpr())
		air.AssertEq[F, E, V](notFinal, next.V[i][1].ToExpr(), state[i][1].ToExpr())
	}

	// the message schedule evolves by the fixed BLAKE3 permutation.
	for i := 0; i < 16; i++ {
		src := msgPermutation[i]
		air.AssertEq[F, E, V](notFinal, next.M[i][0].ToExpr(), local.M[src][0].ToExpr())
		air.AssertEq[F, E, V](notFinal, next.M[i][1].ToExpr(), local.M[src][1].ToExpr())
	}
}

// evalG asserts the BLAKE3 G-function's updates to (a,b,c,d) given
// message words mx,my, using the columns in g to hold every
// intermediate, and returns the updated (a,b,c,d) as the trace cells
// holding their final values.
func evalG[F field.Element[F], E field.Element[E], V air.Var[E]](
	b air.AirBuilder[F, E, V],
	g *GCols[V],
	a, bw, c, d [2]V,
	mx, my [2]V,
) (outA, outB, outC, outD [2]V) {
	// a' = a + b + mx
	air.Add3[F, E, V](b, g.A1, a, [2]E{bw[0].ToExpr(), bw[1].ToExpr()}, [2]E{mx[0].ToExpr(), mx[1].ToExpr()})

	// d' = rotr(d xor a', 16), constrained as d = a' xor rotl(d', 16):
	// the right rotation moves to the output side, where the gadget's
	// left rotation can express it.
	assertBitsMatch[F, E, V](b, g.D1.Bits, g.A1)
	assertBitsMatch[F, E, V](b, g.D1.RotSrc, g.D1.Out)
	air.XorShift32[F, E, V](b, d, g.D1.Bits, g.D1.RotSrc, 16)

	// c' = c + d'
	air.Add2[F, E, V](b, g.C1, c, [2]E{g.D1.Out[0].ToExpr(), g.D1.Out[1].ToExpr()})

	// b' = rotr(b xor c', 12), as b = c' xor rotl(b', 12)
	assertBitsMatch[F, E, V](b, g.B1.Bits, g.C1)
	assertBitsMatch[F, E, V](b, g.B1.RotSrc, g.B1.Out)
	air.XorShift32[F, E, V](b, bw, g.B1.Bits, g.B1.RotSrc, 12)

	// a'' = a' + b' + my
	air.Add3[F, E, V](b, g.A2, g.A1, [2]E{g.B1.Out[0].ToExpr(), g.B1.Out[1].ToExpr()}, [2]E{my[0].ToExpr(), my[1].ToExpr()})

	// d'' = rotr(d' xor a'', 8), as d' = a'' xor rotl(d'', 8)
	assertBitsMatch[F, E, V](b, g.D2.Bits, g.A2)
	assertBitsMatch[F, E, V](b, g.D2.RotSrc, g.D2.Out)
	air.XorShift32[F, E, V](b, g.D1.Out, g.D2.Bits, g.D2.RotSrc, 8)

	// c'' = c' + d''
	air.Add2[F, E, V](b, g.C2, g.C1, [2]E{g.D2.Out[0].ToExpr(), g.D2.Out[1].ToExpr()})

	// b'' = rotr(b' xor c'', 7), as b' = c'' xor rotl(b'', 7)
	assertBitsMatch[F, E, V](b, g.B2.Bits, g.C2)
	assertBitsMatch[F, E, V](b, g.B2.RotSrc, g.B2.Out)
	air.XorShift32[F, E, V](b, g.B1.Out, g.B2.Bits, g.B2.RotSrc, 7)

	return g.A2, g.B2.Out, g.C2, g.D2.Out
}

// assertBitsMatch range-checks every cell of bits and asserts it's the
// little-endian bit decomposition of limbs.
func assertBitsMatch[F field.Element[F], E field.Element[E], V air.Var[E]](b air.AirBuilder[F, E, V], bits [32]V, limbs [2]V) {
	lowBits := make([]E, 16)
	for i := 0; i < 16; i++ {
		air.AssertBool[F, E, V](b, bits[i].ToExpr())
		lowBits[i] = bits[i].ToExpr()
	}
	highBits := make([]E, 16)
	for i := 0; i < 16; i++ {
		air.AssertBool[F, E, V](b, bits[16+i].ToExpr())
		highBits[i] = bits[16+i].ToExpr()
	}
	air.AssertEq[F, E, V](b, limbs[0].ToExpr(), air.PackBitsLE[E](lowBits))
	air.AssertEq[F, E, V](b, limbs[1].ToExpr(), air.PackBitsLE[E](highBits))
}
