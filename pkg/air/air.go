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

	"github.com/consensys/go-air/pkg/field"
	"github.com/consensys/go-air/pkg/matrix"
	"github.com/sirupsen/logrus"
)

// BaseAir is the width an AIR's main trace has, independent of any
// particular builder capability.
type BaseAir[F field.Element[F]] interface {
	Width() uint
}

// BaseAirWithPublicValues extends BaseAir with a public-input count.
type BaseAirWithPublicValues[F field.Element[F]] interface {
	BaseAir[F]
	NumPublicValues() uint
}

// PreprocessedAir extends BaseAir with an optional preprocessed
// (witness-independent) trace.
type PreprocessedAir[F field.Element[F]] interface {
	BaseAir[F]
	PreprocessedTrace() (matrix.RowMajor[F], bool)
}

// Air is generic over the field F, the expression algebra E and the
// trace-cell type V: a single Eval implementation written against
// AirBuilder[F, E, V] is reused unchanged for both the symbolic builder
// (E = SymbolicExpression[F], V = SymbolicVariable[F]) and the debug
// builder (E = V = F), simply by instantiating a concrete AIR type with
// different type arguments at each call site, since Go has no generic
// methods.
type Air[F field.Element[F], E field.Element[E], V Var[E]] interface {
	BaseAir[F]
	Eval(b AirBuilder[F, E, V])
}

// GetSymbolicConstraints runs air.Eval against a fresh SymbolicAirBuilder
// and returns every constraint it recorded.
func GetSymbolicConstraints[F field.Element[F]](
	a Air[F, SymbolicExpression[F], SymbolicVariable[F]],
	preprocessedWidth, numPublicValues uint,
) []SymbolicExpression[F] {
	builder := NewSymbolicAirBuilder[F](preprocessedWidth, a.Width(), numPublicValues)
	a.Eval(&builder)
	constraints := builder.Constraints()

	logrus.WithFields(logrus.Fields{
		"width":       a.Width(),
		"constraints": len(constraints),
	}).Debug("evaluated AIR constraints symbolically")

	return constraints
}

// GetMaxConstraintDegree returns the largest DegreeMultiple among an
// AIR's symbolic constraints, or 0 if it has none.
func GetMaxConstraintDegree[F field.Element[F]](
	a Air[F, SymbolicExpression[F], SymbolicVariable[F]],
	preprocessedWidth, numPublicValues uint,
) uint {
	var maxDeg uint
	for _, c := range GetSymbolicConstraints(a, preprocessedWidth, numPublicValues) {
		if d := c.DegreeMultiple(); d > maxDeg {
			maxDeg = d
		}
	}
	return maxDeg
}

// GetLogQuotientDegree derives the padded log-degree of the quotient
// polynomial: log2_ceil(max(max_constraint_degree, 2) - 1).
func GetLogQuotientDegree[F field.Element[F]](
	a Air[F, SymbolicExpression[F], SymbolicVariable[F]],
	preprocessedWidth, numPublicValues uint,
) uint {
	degree := GetMaxConstraintDegree(a, preprocessedWidth, numPublicValues)
	if degree < 2 {
		degree = 2
	}

	logrus.WithFields(logrus.Fields{"max_constraint_degree": degree}).Debug("deriving log quotient degree")

	return Log2Ceil(degree - 1)
}

// Log2Ceil returns ceil(log2(n)) for n >= 1, and 0 for n == 0: the
// number of bits needed to represent values 0..n-1.
func Log2Ceil(n uint) uint {
	if n == 0 {
		return 0
	}
	return uint(bits.Len(n - 1))
}

// CheckConstraints evaluates an AIR's Eval against every row of a
// concrete trace using the DebugConstraintBuilder, panicking on the
// first row where a constraint fails to vanish. next wraps around to row
// 0 at the last row, matching the cyclic trace convention the rest of
// the package uses.
func CheckConstraints[F interface {
	field.Element[F]
	Var[F]
}](
	a Air[F, F, F],
	main matrix.RowMajor[F],
	publicValues []F,
) {
	height := main.Height()
	for i := uint(0); i < height; i++ {
		next := (i + 1) % height
		b := NewDebugConstraintBuilder[F](i, height, main.Row(i), main.Row(next), publicValues)
		a.Eval(&b)
	}
}
