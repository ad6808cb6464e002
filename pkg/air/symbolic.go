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
	"fmt"

	"github.com/consensys/go-air/pkg/field"
	"github.com/consensys/go-air/pkg/matrix"
)

// SymbolicAirBuilder evaluates an AIR against symbolic
// variables instead of concrete data, recording every asserted
// expression instead of checking it. Running an AIR's Eval against this
// builder is how get_symbolic_constraints and its derivatives
// (get_max_constraint_degree, get_log_quotient_degree) work.
type SymbolicAirBuilder[F field.Element[F]] struct {
	preprocessed matrix.Pair[SymbolicVariable[F]]
	main         matrix.Pair[SymbolicVariable[F]]
	public       []SymbolicVariable[F]
	constraints  []SymbolicExpression[F]
}

func symbolicRow[F field.Element[F]](kind EntryKind, offset, n uint) []SymbolicVariable[F] {
	row := make([]SymbolicVariable[F], n)
	for i := uint(0); i < n; i++ {
		row[i] = NewSymbolicVariable[F](Entry{Kind: kind, Offset: offset}, i)
	}
	return row
}

// NewSymbolicAirBuilder constructs a builder over a preprocessedWidth-wide
// preprocessed trace, a width-wide main trace, and numPublicValues public
// inputs. Both traces are represented by fresh SymbolicVariables for the
// current and next row; each public input is a single variable.
func NewSymbolicAirBuilder[F field.Element[F]](preprocessedWidth, width, numPublicValues uint) SymbolicAirBuilder[F] {
	public := make([]SymbolicVariable[F], numPublicValues)
	for i := range public {
		public[i] = NewSymbolicVariable[F](Entry{Kind: EntryPublic}, uint(i))
	}
	return SymbolicAirBuilder[F]{
		preprocessed: matrix.NewPair(
			symbolicRow[F](EntryPreprocessed, 0, preprocessedWidth),
			symbolicRow[F](EntryPreprocessed, 1, preprocessedWidth),
		),
		main: matrix.NewPair(
			symbolicRow[F](EntryMain, 0, width),
			symbolicRow[F](EntryMain, 1, width),
		),
		public: public,
	}
}

// Main returns the current/next row view over the main trace.
func (b *SymbolicAirBuilder[F]) Main() matrix.Matrix[SymbolicVariable[F]] { return b.main }

// Preprocessed returns the current/next row view over the preprocessed
// trace.
func (b *SymbolicAirBuilder[F]) Preprocessed() matrix.Matrix[SymbolicVariable[F]] {
	return b.preprocessed
}

// PublicValues returns the symbolic public-input variables.
func (b *SymbolicAirBuilder[F]) PublicValues() []SymbolicVariable[F] { return b.public }

// IsFirstRow returns the is_first_row selector.
func (b *SymbolicAirBuilder[F]) IsFirstRow() SymbolicExpression[F] { return IsFirstRowExpr[F]() }

// IsLastRow returns the is_last_row selector.
func (b *SymbolicAirBuilder[F]) IsLastRow() SymbolicExpression[F] { return IsLastRowExpr[F]() }

// IsTransitionWindow returns the is_transition selector for size == 2;
// any other window size is unsupported by a two-row symbolic view.
func (b *SymbolicAirBuilder[F]) IsTransitionWindow(size uint) SymbolicExpression[F] {
	if size != 2 {
		panic(fmt.Sprintf("uni-stark only supports a window size of 2, got %d", size))
	}
	return IsTransitionExpr[F]()
}

// Zero returns the Constant(0) expression.
func (b *SymbolicAirBuilder[F]) Zero() SymbolicExpression[F] { return Constant(field.Zero[F]()) }

// One returns the Constant(1) expression.
func (b *SymbolicAirBuilder[F]) One() SymbolicExpression[F] { return Constant(field.One[F]()) }

// FromUint32 returns a Constant expression built from v.
func (b *SymbolicAirBuilder[F]) FromUint32(v uint32) SymbolicExpression[F] {
	return Constant(field.Zero[F]().FromUint32(v))
}

// AssertZero records x as a constraint the AIR requires to vanish.
func (b *SymbolicAirBuilder[F]) AssertZero(x SymbolicExpression[F]) {
	b.constraints = append(b.constraints, x)
}

// Constraints returns every expression recorded via AssertZero so far.
func (b *SymbolicAirBuilder[F]) Constraints() []SymbolicExpression[F] { return b.constraints }
