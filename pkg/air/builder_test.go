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
	"testing"

	"github.com/consensys/go-air/pkg/field"
	"github.com/consensys/go-air/pkg/field/bls12377"
	"github.com/consensys/go-air/pkg/matrix"
	"github.com/stretchr/testify/require"
)

// fibonacciAir is a minimal two-column AIR: column 0 holds the current
// Fibonacci value, column 1 the next. The public values pin the two
// seeds on the first row and the final value on the last row. It is
// generic over the builder's expression algebra so the same Eval serves
// both the symbolic and the debug builder.
type fibonacciAir[F field.Element[F], E field.Element[E], V Var[E]] struct{}

func (fibonacciAir[F, E, V]) Width() uint { return 2 }

func (fibonacciAir[F, E, V]) NumPublicValues() uint { return 3 }

func (fibonacciAir[F, E, V]) Eval(b AirBuilder[F, E, V]) {
	pubs := b.(BuilderWithPublicValues[F, E, V]).PublicValues()
	seed0, seed1, final := pubs[0].ToExpr(), pubs[1].ToExpr(), pubs[2].ToExpr()

	main := b.Main()
	local := main.Row(0)
	next := main.Row(1)

	first := WhenFirstRow[F, E, V](b)
	AssertEq[F, E, V](first, local[0].ToExpr(), seed0)
	AssertEq[F, E, V](first, local[1].ToExpr(), seed1)

	trans := WhenTransition[F, E, V](b)
	AssertEq[F, E, V](trans, next[0].ToExpr(), local[1].ToExpr())
	AssertEq[F, E, V](trans, next[1].ToExpr(), local[0].ToExpr().Add(local[1].ToExpr()))

	last := WhenLastRow[F, E, V](b)
	AssertEq[F, E, V](last, local[1].ToExpr(), final)
}

// fibonacciTrace builds the two-column trace whose i-th row is
// (values[i], values[i+1]); the last row's second column continues the
// recurrence as values[n-2] + values[n-1].
func fibonacciTrace(values []uint64) matrix.RowMajor[F] {
	n := len(values)
	rows := make([]F, 0, n*2)
	for i, v := range values {
		next := values[n-2] + values[n-1]
		if i+1 < n {
			next = values[i+1]
		}
		rows = append(rows, bls12377.New(v), bls12377.New(next))
	}
	return matrix.NewRowMajor(rows, 2)
}

func fibonacciPubs(a, b, x uint64) []F {
	return []F{bls12377.New(a), bls12377.New(b), bls12377.New(x)}
}

func TestFibonacciAir_SymbolicConstraints(t *testing.T) {
	a := fibonacciAir[F, SymbolicExpression[F], SymbolicVariable[F]]{}
	constraints := GetSymbolicConstraints[F](a, 0, a.NumPublicValues())
	require.Len(t, constraints, 5)

	var maxDeg uint
	for _, c := range constraints {
		if d := c.DegreeMultiple(); d > maxDeg {
			maxDeg = d
		}
	}
	require.Equal(t, uint(2), maxDeg)
	require.Equal(t, uint(2), GetMaxConstraintDegree[F](a, 0, a.NumPublicValues()))
}

func TestFibonacciAir_CheckConstraints_Valid(t *testing.T) {
	trace := fibonacciTrace([]uint64{0, 1, 1, 2, 3, 5, 8, 13})

	require.NotPanics(t, func() {
		CheckConstraints[F](fibonacciAir[F, F, F]{}, trace, fibonacciPubs(0, 1, 21))
	})
}

func TestFibonacciAir_CheckConstraints_BrokenRecurrence(t *testing.T) {
	trace := fibonacciTrace([]uint64{0, 1, 1, 2, 3, 5, 8, 99}) // row 5's next breaks the recurrence

	require.PanicsWithValue(t, "values didn't match on row 5: 99 != 13",
		func() { CheckConstraints[F](fibonacciAir[F, F, F]{}, trace, fibonacciPubs(0, 1, 99)) })
}

func TestFibonacciAir_CheckConstraints_WrongFinalPub(t *testing.T) {
	trace := fibonacciTrace([]uint64{0, 1, 1, 2, 3, 5, 8, 13})

	require.PanicsWithValue(t, "values didn't match on row 7: 21 != 22",
		func() { CheckConstraints[F](fibonacciAir[F, F, F]{}, trace, fibonacciPubs(0, 1, 22)) })
}

func TestFibonacciAir_CheckConstraints_MismatchedFirstRow(t *testing.T) {
	trace := fibonacciTrace([]uint64{1, 1, 2, 3, 5, 8, 13, 21})

	require.PanicsWithValue(t, "values didn't match on row 0: 1 != 0",
		func() { CheckConstraints[F](fibonacciAir[F, F, F]{}, trace, fibonacciPubs(0, 1, 34)) })
}

func TestLog2Ceil(t *testing.T) {
	require.Equal(t, uint(0), Log2Ceil(0))
	require.Equal(t, uint(0), Log2Ceil(1))
	require.Equal(t, uint(1), Log2Ceil(2))
	require.Equal(t, uint(2), Log2Ceil(3))
	require.Equal(t, uint(2), Log2Ceil(4))
	require.Equal(t, uint(3), Log2Ceil(5))
}

func TestGetLogQuotientDegree(t *testing.T) {
	// fibonacciAir's filtered boundary constraints reach degree 2, which
	// the clamp leaves alone: log2_ceil(1) = 0.
	a := fibonacciAir[F, SymbolicExpression[F], SymbolicVariable[F]]{}
	require.Equal(t, uint(0), GetLogQuotientDegree[F](a, 0, a.NumPublicValues()))
}

func TestGetLogQuotientDegree_ClampsDegreeBelowTwo(t *testing.T) {
	// A single-constraint, degree-1 AIR still quotes a constraint degree
	// of max(1,2)=2, so log_quotient_degree = log2_ceil(1) = 0.
	deg := GetLogQuotientDegree[F](constantAir[F, SymbolicExpression[F], SymbolicVariable[F]]{}, 0, 0)
	require.Equal(t, uint(0), deg)
}

// constantAir asserts its single column is always zero: a degree-1
// constraint, used to exercise the max(d,2) clamp in
// GetLogQuotientDegree.
type constantAir[F field.Element[F], E field.Element[E], V Var[E]] struct{}

func (constantAir[F, E, V]) Width() uint { return 1 }
func (constantAir[F, E, V]) Eval(b AirBuilder[F, E, V]) {
	b.AssertZero(b.Main().Row(0)[0].ToExpr())
}

func TestXorAndnTruthTable(t *testing.T) {
	zero, one := field.Zero[F](), field.One[F]()
	cases := []struct{ x, y, xor, andn F }{
		{zero, zero, zero, zero},
		{zero, one, one, one},
		{one, zero, one, zero},
		{one, one, zero, zero},
	}
	for _, c := range cases {
		require.True(t, Xor(c.x, c.y).Equal(c.xor))
		require.True(t, Andn(c.x, c.y).Equal(c.andn))
	}
}

func TestVirtualPairColApply(t *testing.T) {
	preprocessed := []F{bls12377.New(10), bls12377.New(20)}
	main := []F{bls12377.New(1), bls12377.New(2), bls12377.New(3)}

	diff := DiffMain[F](2, 0)
	require.True(t, diff.Apply(preprocessed, main).Equal(bls12377.New(2)))

	sum := SumPreprocessed[F]([]uint{0, 1})
	require.True(t, sum.Apply(preprocessed, main).Equal(bls12377.New(30)))

	single := SingleMain[F](1)
	require.True(t, single.Apply(preprocessed, main).Equal(bls12377.New(2)))

	constant := ConstantCol[F](bls12377.New(7))
	require.True(t, constant.Apply(preprocessed, main).Equal(bls12377.New(7)))
}

func TestFilteredBuilderNesting(t *testing.T) {
	builder := NewSymbolicAirBuilder[F](0, 1, 0)
	x := builder.Main().Row(0)[0].ToExpr()

	outer := When[F, SymbolicExpression[F], SymbolicVariable[F]](&builder, builder.IsFirstRow())
	inner := When[F, SymbolicExpression[F], SymbolicVariable[F]](outer, builder.IsLastRow())
	inner.AssertZero(x)

	require.Len(t, builder.Constraints(), 1)
	got := builder.Constraints()[0]
	want := builder.IsFirstRow().Mul(builder.IsLastRow().Mul(x))
	require.True(t, got.Equal(want))
}

func TestSymbolicBuilderRejectsWideTransitionWindow(t *testing.T) {
	builder := NewSymbolicAirBuilder[F](0, 1, 0)
	require.Panics(t, func() { builder.IsTransitionWindow(3) })
}
