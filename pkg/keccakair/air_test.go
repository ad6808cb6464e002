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

package keccakair

import (
	"testing"

	"github.com/consensys/go-air/pkg/air"
	"github.com/consensys/go-air/pkg/field/bls12377"
	"github.com/stretchr/testify/require"
)

type F = bls12377.Element

func TestKeccakAir_Width(t *testing.T) {
	a := KeccakAir[F, air.SymbolicExpression[F], air.SymbolicVariable[F]]{}
	require.Equal(t, uint(NumKeccakCols), a.Width())
}

func TestKeccakAir_MaxConstraintDegree(t *testing.T) {
	a := KeccakAir[F, air.SymbolicExpression[F], air.SymbolicVariable[F]]{}
	deg := air.GetMaxConstraintDegree[F](a, 0, 0)
	require.Equal(t, uint(3), deg)
}

func TestKeccakAir_LogQuotientDegree(t *testing.T) {
	// max degree 3 gives log2_ceil(3-1) = 1.
	a := KeccakAir[F, air.SymbolicExpression[F], air.SymbolicVariable[F]]{}
	require.Equal(t, uint(1), air.GetLogQuotientDegree[F](a, 0, 0))
}

func TestKeccakAir_ConstantCountsMatchColumnLayout(t *testing.T) {
	require.Equal(t, 64, bitsPerLimb*U64Limbs)
	require.Equal(t, NumRounds, len(roundConstants))
}

func TestBHelper_IdentityRotationAtOrigin(t *testing.T) {
	var c KeccakCols[F]
	// rotOffsets[0][0] == 0, and pi maps (0,0) to itself, so B(0,0,z)
	// should read straight from A'[0][0][z] with no rotation.
	c.APrime[0][0][5] = bls12377.New(1)
	require.True(t, c.B(0, 0, 5).Equal(bls12377.New(1)))
}

func TestRcValueBit_RoundZeroIsOne(t *testing.T) {
	require.Equal(t, uint64(1), rcValueBit(0, 0))
	for i := 1; i < 64; i++ {
		require.Equal(t, uint64(0), rcValueBit(0, i))
	}
}
