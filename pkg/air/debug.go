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
	"github.com/sirupsen/logrus"
)

// DebugConstraintBuilder evaluates an AIR row by row
// against a concrete trace, panicking as soon as a constraint fails to
// vanish. Expr and Var both instantiate to the field element F itself:
// there is nothing symbolic left to carry once the data is concrete.
type DebugConstraintBuilder[F field.Element[F]] struct {
	RowIndex uint
	MainRows matrix.Pair[F]
	Public   []F

	isFirst F
	isLast  F
	isTrans F
}

// NewDebugConstraintBuilder constructs a builder for the given row index
// within a trace of the given height, with local/next rows already
// resolved (next wraps around to row 0 at the last row).
func NewDebugConstraintBuilder[F field.Element[F]](rowIndex, height uint, local, next []F, public []F) DebugConstraintBuilder[F] {
	return DebugConstraintBuilder[F]{
		RowIndex: rowIndex,
		MainRows: matrix.NewPair(local, next),
		Public:   public,
		isFirst:  field.FromBool[F](rowIndex == 0),
		isLast:   field.FromBool[F](rowIndex == height-1),
		isTrans:  field.FromBool[F](rowIndex != height-1),
	}
}

// Main returns the local/next row view.
func (b *DebugConstraintBuilder[F]) Main() matrix.Matrix[F] { return b.MainRows }

// IsFirstRow returns 1 iff this is the first row.
func (b *DebugConstraintBuilder[F]) IsFirstRow() F { return b.isFirst }

// IsLastRow returns 1 iff this is the last row.
func (b *DebugConstraintBuilder[F]) IsLastRow() F { return b.isLast }

// IsTransitionWindow returns 1 iff this is not the last row, for
// size == 2; any other window size is unsupported by a two-row view.
func (b *DebugConstraintBuilder[F]) IsTransitionWindow(size uint) F {
	if size != 2 {
		panic(fmt.Sprintf("uni-stark only supports a window size of 2, got %d", size))
	}
	return b.isTrans
}

// Zero returns the field's additive identity.
func (b *DebugConstraintBuilder[F]) Zero() F { return field.Zero[F]() }

// One returns the field's multiplicative identity.
func (b *DebugConstraintBuilder[F]) One() F { return field.One[F]() }

// FromUint32 lifts v into F.
func (b *DebugConstraintBuilder[F]) FromUint32(v uint32) F { return field.Zero[F]().FromUint32(v) }

// PublicValues returns the concrete public inputs.
func (b *DebugConstraintBuilder[F]) PublicValues() []F { return b.Public }

// AssertZero panics, naming the offending row, if x is not the additive
// identity.
func (b *DebugConstraintBuilder[F]) AssertZero(x F) {
	if !x.IsZero() {
		logrus.WithFields(logrus.Fields{"row": b.RowIndex, "value": x.String()}).Debug("constraint violated")
		panic(fmt.Sprintf("constraints had nonzero value on row %d", b.RowIndex))
	}
}

// AssertEq panics, naming the offending row and both values, if x != y.
// This overrides the generic AssertEq derivation (see eqAsserter in
// builder.go) to report both mismatched values, not just their difference.
func (b *DebugConstraintBuilder[F]) AssertEq(x, y F) {
	if !x.Equal(y) {
		logrus.WithFields(logrus.Fields{
			"row": b.RowIndex, "lhs": x.String(), "rhs": y.String(),
		}).Debug("values didn't match")
		panic(fmt.Sprintf("values didn't match on row %d: %s != %s", b.RowIndex, x, y))
	}
}
