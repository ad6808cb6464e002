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
	"github.com/consensys/go-air/pkg/field"
	"github.com/consensys/go-air/pkg/matrix"
)

// Var is a trace-cell value that can be lifted into the builder's
// expression algebra E. SymbolicVariable[F] and F itself (for the debug
// builder, where Var and Expr coincide) both satisfy it.
type Var[E any] interface {
	ToExpr() E
}

// AirBuilder is the capability through which an AIR emits
// constraints, parameterised by the field F, the expression algebra E
// and the trace-cell value type V. This is the primitive surface only:
// Go interfaces cannot carry default method bodies, so everything built
// in terms of these primitives (is_transition, assert_one, when, xor,
// ...) is a free function below instead of an interface method.
type AirBuilder[F field.Element[F], E field.Element[E], V Var[E]] interface {
	Main() matrix.Matrix[V]

	IsFirstRow() E
	IsLastRow() E
	IsTransitionWindow(size uint) E

	Zero() E
	One() E
	FromUint32(v uint32) E

	AssertZero(x E)
}

// BuilderWithPublicValues extends AirBuilder with read access to the
// public inputs.
type BuilderWithPublicValues[F field.Element[F], E field.Element[E], V Var[E]] interface {
	AirBuilder[F, E, V]
	PublicValues() []V
}

// PairBuilder extends AirBuilder with read access to the preprocessed
// (witness-independent) columns.
type PairBuilder[F field.Element[F], E field.Element[E], V Var[E]] interface {
	AirBuilder[F, E, V]
	Preprocessed() matrix.Matrix[V]
}

// IsTransition is is_transition_window(2): true everywhere but the last
// row.
func IsTransition[F field.Element[F], E field.Element[E], V Var[E]](b AirBuilder[F, E, V]) E {
	return b.IsTransitionWindow(2)
}

// Two returns one()+one().
func Two[F field.Element[F], E field.Element[E], V Var[E]](b AirBuilder[F, E, V]) E {
	return b.One().Add(b.One())
}

// AssertOne asserts x == 1.
func AssertOne[F field.Element[F], E field.Element[E], V Var[E]](b AirBuilder[F, E, V], x E) {
	b.AssertZero(x.Sub(b.One()))
}

// eqAsserter is an optional optimization hook: a builder may implement a
// specialized AssertEq with richer diagnostics (e.g. reporting both
// mismatched values) than the generic derivation below. AssertEq checks
// for it before falling back.
type eqAsserter[E any] interface {
	AssertEq(x, y E)
}

// AssertEq asserts x == y.
func AssertEq[F field.Element[F], E field.Element[E], V Var[E]](b AirBuilder[F, E, V], x, y E) {
	if eq, ok := b.(eqAsserter[E]); ok {
		eq.AssertEq(x, y)
		return
	}
	b.AssertZero(x.Sub(y))
}

// AssertBool asserts x is 0 or 1.
func AssertBool[F field.Element[F], E field.Element[E], V Var[E]](b AirBuilder[F, E, V], x E) {
	b.AssertZero(x.Mul(x.Sub(b.One())))
}

// AssertTern asserts x is 0, 1 or 2.
func AssertTern[F field.Element[F], E field.Element[E], V Var[E]](b AirBuilder[F, E, V], x E) {
	one := b.One()
	two := Two[F, E, V](b)
	b.AssertZero(x.Mul(x.Sub(one)).Mul(x.Sub(two)))
}

// When returns a FilteredBuilder that multiplies every constraint it
// emits by cond.
func When[F field.Element[F], E field.Element[E], V Var[E]](b AirBuilder[F, E, V], cond E) *FilteredBuilder[F, E, V] {
	return &FilteredBuilder[F, E, V]{Inner: b, Condition: cond}
}

// WhenFirstRow filters on is_first_row().
func WhenFirstRow[F field.Element[F], E field.Element[E], V Var[E]](b AirBuilder[F, E, V]) *FilteredBuilder[F, E, V] {
	return When[F, E, V](b, b.IsFirstRow())
}

// WhenLastRow filters on is_last_row().
func WhenLastRow[F field.Element[F], E field.Element[E], V Var[E]](b AirBuilder[F, E, V]) *FilteredBuilder[F, E, V] {
	return When[F, E, V](b, b.IsLastRow())
}

// WhenTransition filters on is_transition().
func WhenTransition[F field.Element[F], E field.Element[E], V Var[E]](b AirBuilder[F, E, V]) *FilteredBuilder[F, E, V] {
	return When[F, E, V](b, IsTransition[F, E, V](b))
}

// WhenTransitionWindow filters on is_transition_window(size).
func WhenTransitionWindow[F field.Element[F], E field.Element[E], V Var[E]](b AirBuilder[F, E, V], size uint) *FilteredBuilder[F, E, V] {
	return When[F, E, V](b, b.IsTransitionWindow(size))
}

// WhenNe filters on x - y, i.e. emits constraints scaled by the
// difference of x and y (zero when they're equal).
func WhenNe[F field.Element[F], E field.Element[E], V Var[E]](b AirBuilder[F, E, V], x, y E) *FilteredBuilder[F, E, V] {
	return When[F, E, V](b, x.Sub(y))
}
