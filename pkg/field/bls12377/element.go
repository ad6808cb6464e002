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

// Package bls12377 wraps gnark-crypto's bls12-377 scalar field so it
// conforms to field.Element, the concrete F used by the sample AIRs and
// by the test suite.
package bls12377

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element to conform to field.Element.
type Element struct {
	*fr.Element
}

// New constructs an Element from a uint64, the canonical way to obtain a
// usable (non-nil) value.
func New(v uint64) Element {
	e := fr.NewElement(v)
	return Element{&e}
}

// Add x + y.
func (x Element) Add(y Element) Element {
	return Element{new(fr.Element).Add(x.Element, y.Element)}
}

// Sub x - y.
func (x Element) Sub(y Element) Element {
	return Element{new(fr.Element).Sub(x.Element, y.Element)}
}

// Mul x * y.
func (x Element) Mul(y Element) Element {
	return Element{new(fr.Element).Mul(x.Element, y.Element)}
}

// Neg -x.
func (x Element) Neg() Element {
	return Element{new(fr.Element).Neg(x.Element)}
}

// Equal reports whether x and y represent the same field element.
func (x Element) Equal(y Element) bool {
	return x.Element.Equal(y.Element)
}

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// FromUint32 constructs a fresh element from v. The receiver is ignored,
// so a zero Go value of Element (nil *fr.Element) can call this safely;
// field.Zero and field.One rely on exactly that.
func (Element) FromUint32(v uint32) Element {
	return New(uint64(v))
}

// ToExpr satisfies air.Var[Element] for the debug builder, where Var and
// Expr coincide: a trace cell's value already is its own expression.
func (x Element) ToExpr() Element {
	return x
}
