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

package bls12377

import (
	"testing"

	"github.com/consensys/go-air/pkg/field"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	a, b := New(7), New(5)

	require.True(t, a.Add(b).Equal(New(12)))
	require.True(t, a.Sub(b).Equal(New(2)))
	require.True(t, a.Mul(b).Equal(New(35)))
	require.True(t, a.Neg().Add(a).IsZero())
}

func TestZeroValueFromUint32(t *testing.T) {
	// field.Zero/field.One call FromUint32 on a zero Go value of Element,
	// whose embedded pointer is nil; the receiver must not be touched.
	require.True(t, field.Zero[Element]().IsZero())
	require.True(t, field.One[Element]().Equal(New(1)))
}

func TestString(t *testing.T) {
	require.Equal(t, "42", New(42).String())
}
