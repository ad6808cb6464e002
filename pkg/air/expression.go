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
)

type exprKind uint8

const (
	exprVariable exprKind = iota
	exprIsFirstRow
	exprIsLastRow
	exprIsTransition
	exprConstant
	exprAdd
	exprSub
	exprNeg
	exprMul
)

// SymbolicExpression is an immutable node in the constraint expression
// DAG. Children are ordinary Go pointers: a node is never mutated after
// construction, so sharing one across goroutines is safe and the
// garbage collector takes the place of an atomic refcount.
//
// Every constructor below applies the identity simplifications laid out
// for SymbolicExpression, so an expression tree never grows a node that
// a cheaper, structurally-equal one could replace. degree is stored, not
// recomputed, so DegreeMultiple is O(1).
type SymbolicExpression[F field.Element[F]] struct {
	kind     exprKind
	variable SymbolicVariable[F]
	constant F
	x, y     *SymbolicExpression[F]
	degree   uint
}

func variableExpr[F field.Element[F]](v SymbolicVariable[F]) SymbolicExpression[F] {
	return SymbolicExpression[F]{kind: exprVariable, variable: v, degree: v.DegreeMultiple()}
}

// IsFirstRowExpr is the selector that is 1 on the first row and 0
// elsewhere.
func IsFirstRowExpr[F field.Element[F]]() SymbolicExpression[F] {
	return SymbolicExpression[F]{kind: exprIsFirstRow, degree: 1}
}

// IsLastRowExpr is the selector that is 1 on the last row and 0
// elsewhere.
func IsLastRowExpr[F field.Element[F]]() SymbolicExpression[F] {
	return SymbolicExpression[F]{kind: exprIsLastRow, degree: 1}
}

// IsTransitionExpr is the selector that is 0 on the last row and 1
// elsewhere.
func IsTransitionExpr[F field.Element[F]]() SymbolicExpression[F] {
	return SymbolicExpression[F]{kind: exprIsTransition, degree: 0}
}

// Constant wraps a field value as a leaf expression.
func Constant[F field.Element[F]](v F) SymbolicExpression[F] {
	return SymbolicExpression[F]{kind: exprConstant, constant: v, degree: 0}
}

// AsConstant reports whether e is structurally a Constant node and, if
// so, returns its value. It performs no simplification to decide this;
// only the identity simplifications already folded in at construction
// time are visible.
func (e SymbolicExpression[F]) AsConstant() (F, bool) {
	if e.kind == exprConstant {
		return e.constant, true
	}
	var zero F
	return zero, false
}

// DegreeMultiple returns the stored upper bound on e's algebraic degree.
func (e SymbolicExpression[F]) DegreeMultiple() uint { return e.degree }

// Add builds e + y, applying additive-identity and constant folding.
func (e SymbolicExpression[F]) Add(y SymbolicExpression[F]) SymbolicExpression[F] {
	ec, eok := e.AsConstant()
	yc, yok := y.AsConstant()
	switch {
	case eok && yok:
		return Constant(ec.Add(yc))
	case eok && ec.IsZero():
		return y
	case yok && yc.IsZero():
		return e
	default:
		deg := e.degree
		if y.degree > deg {
			deg = y.degree
		}
		xCopy, yCopy := e, y
		return SymbolicExpression[F]{kind: exprAdd, x: &xCopy, y: &yCopy, degree: deg}
	}
}

// Sub builds e - y, applying right-hand-zero and constant folding.
func (e SymbolicExpression[F]) Sub(y SymbolicExpression[F]) SymbolicExpression[F] {
	ec, eok := e.AsConstant()
	yc, yok := y.AsConstant()
	switch {
	case eok && yok:
		return Constant(ec.Sub(yc))
	case yok && yc.IsZero():
		return e
	default:
		deg := e.degree
		if y.degree > deg {
			deg = y.degree
		}
		xCopy, yCopy := e, y
		return SymbolicExpression[F]{kind: exprSub, x: &xCopy, y: &yCopy, degree: deg}
	}
}

// Neg builds -e, folding a constant directly.
func (e SymbolicExpression[F]) Neg() SymbolicExpression[F] {
	if c, ok := e.AsConstant(); ok {
		return Constant(field.Zero[F]().Sub(c))
	}
	xCopy := e
	return SymbolicExpression[F]{kind: exprNeg, x: &xCopy, degree: e.degree}
}

// Mul builds e * y, applying multiplicative-identity, annihilator and
// constant folding.
func (e SymbolicExpression[F]) Mul(y SymbolicExpression[F]) SymbolicExpression[F] {
	ec, eok := e.AsConstant()
	yc, yok := y.AsConstant()
	one := field.One[F]()
	switch {
	case eok && yok:
		return Constant(ec.Mul(yc))
	case eok && ec.Equal(one):
		return y
	case yok && yc.Equal(one):
		return e
	case eok && ec.IsZero():
		return Constant(field.Zero[F]())
	case yok && yc.IsZero():
		return Constant(field.Zero[F]())
	default:
		deg := e.degree + y.degree
		xCopy, yCopy := e, y
		return SymbolicExpression[F]{kind: exprMul, x: &xCopy, y: &yCopy, degree: deg}
	}
}

// Equal reports structural equality of the two expression trees.
func (e SymbolicExpression[F]) Equal(y SymbolicExpression[F]) bool {
	if e.kind != y.kind {
		return false
	}
	switch e.kind {
	case exprVariable:
		return e.variable == y.variable
	case exprIsFirstRow, exprIsLastRow, exprIsTransition:
		return true
	case exprConstant:
		return e.constant.Equal(y.constant)
	case exprAdd, exprSub, exprMul:
		return e.x.Equal(*y.x) && e.y.Equal(*y.y)
	case exprNeg:
		return e.x.Equal(*y.x)
	default:
		return false
	}
}

// IsZero reports whether e is structurally the constant 0. It does not
// attempt to prove semantic zero-ness of a non-constant sub-DAG.
func (e SymbolicExpression[F]) IsZero() bool {
	c, ok := e.AsConstant()
	return ok && c.IsZero()
}

// FromUint32 builds a Constant node from v. The receiver is ignored, so
// field.Zero/field.One work for SymbolicExpression exactly as they do
// for a bare field element.
func (SymbolicExpression[F]) FromUint32(v uint32) SymbolicExpression[F] {
	return Constant(field.Zero[F]().FromUint32(v))
}

// String renders e as a fully-parenthesized infix expression.
func (e SymbolicExpression[F]) String() string {
	switch e.kind {
	case exprVariable:
		return e.variable.String()
	case exprIsFirstRow:
		return "IsFirstRow"
	case exprIsLastRow:
		return "IsLastRow"
	case exprIsTransition:
		return "IsTransition"
	case exprConstant:
		return e.constant.String()
	case exprAdd:
		return fmt.Sprintf("(%s + %s)", *e.x, *e.y)
	case exprSub:
		return fmt.Sprintf("(%s - %s)", *e.x, *e.y)
	case exprMul:
		return fmt.Sprintf("(%s * %s)", *e.x, *e.y)
	case exprNeg:
		return fmt.Sprintf("(-%s)", *e.x)
	default:
		return "?"
	}
}

// Sum folds zero or more expressions with Add, defaulting to Constant(0).
func Sum[F field.Element[F]](exprs ...SymbolicExpression[F]) SymbolicExpression[F] {
	acc := Constant(field.Zero[F]())
	for _, e := range exprs {
		acc = acc.Add(e)
	}
	return acc
}

// Product folds zero or more expressions with Mul, defaulting to
// Constant(1).
func Product[F field.Element[F]](exprs ...SymbolicExpression[F]) SymbolicExpression[F] {
	acc := Constant(field.One[F]())
	for _, e := range exprs {
		acc = acc.Mul(e)
	}
	return acc
}
