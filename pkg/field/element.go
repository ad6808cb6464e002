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

// Package field declares the field-element abstraction:
// the minimal algebra shared by a concrete prime field and by the
// symbolic expression DAG built on top of it, so the rest of pkg/air can
// be written once against either.
package field

import "fmt"

// Element is satisfied both by a concrete field (e.g. the bls12-377
// scalar field) and by a symbolic expression over that field, which is
// exactly the polymorphism pkg/air's builder needs between its two
// concrete instantiations.
//
// FromUint32 must not depend on the receiver's value: it is also used,
// via a zero Go value, to synthesize the additive and multiplicative
// identities (see Zero and One below).
type Element[Self any] interface {
	fmt.Stringer

	Add(y Self) Self
	Sub(y Self) Self
	Mul(y Self) Self
	Neg() Self

	Equal(y Self) bool
	IsZero() bool

	FromUint32(v uint32) Self
}

// Zero returns the additive identity of F.
func Zero[F Element[F]]() F {
	var z F
	return z.FromUint32(0)
}

// One returns the multiplicative identity of F.
func One[F Element[F]]() F {
	var z F
	return z.FromUint32(1)
}

// FromBool lifts a boolean into F, following the same 0/1 convention the
// debug builder uses for is_first_row/is_last_row/is_transition.
func FromBool[F Element[F]](b bool) F {
	if b {
		return One[F]()
	}
	return Zero[F]()
}
