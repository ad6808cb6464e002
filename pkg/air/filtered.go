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

// FilteredBuilder wraps an inner AirBuilder so that every
// constraint it is asked to assert is instead multiplied by Condition
// before being forwarded. Every other query passes straight through.
// Nesting (builder.When(c1) further filtered by .When(c2)) works because
// FilteredBuilder itself satisfies AirBuilder, so When can be called on
// it again; the conditions compose by multiplication.
type FilteredBuilder[F field.Element[F], E field.Element[E], V Var[E]] struct {
	Inner     AirBuilder[F, E, V]
	Condition E
}

// Main passes through to the inner builder.
func (b *FilteredBuilder[F, E, V]) Main() matrix.Matrix[V] { return b.Inner.Main() }

// IsFirstRow passes through to the inner builder.
func (b *FilteredBuilder[F, E, V]) IsFirstRow() E { return b.Inner.IsFirstRow() }

// IsLastRow passes through to the inner builder.
func (b *FilteredBuilder[F, E, V]) IsLastRow() E { return b.Inner.IsLastRow() }

// IsTransitionWindow passes through to the inner builder.
func (b *FilteredBuilder[F, E, V]) IsTransitionWindow(size uint) E {
	return b.Inner.IsTransitionWindow(size)
}

// Zero passes through to the inner builder.
func (b *FilteredBuilder[F, E, V]) Zero() E { return b.Inner.Zero() }

// One passes through to the inner builder.
func (b *FilteredBuilder[F, E, V]) One() E { return b.Inner.One() }

// FromUint32 passes through to the inner builder.
func (b *FilteredBuilder[F, E, V]) FromUint32(v uint32) E { return b.Inner.FromUint32(v) }

// AssertZero forwards Condition * x to the inner builder.
func (b *FilteredBuilder[F, E, V]) AssertZero(x E) {
	b.Inner.AssertZero(b.Condition.Mul(x))
}

// AssertEq forwards Condition * x == Condition * y to the inner builder,
// so a builder with a specialized equality check (the debug builder's
// both-values diagnostic) still sees an equality rather than a
// difference-is-zero constraint.
func (b *FilteredBuilder[F, E, V]) AssertEq(x, y E) {
	AssertEq[F, E, V](b.Inner, b.Condition.Mul(x), b.Condition.Mul(y))
}
