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

package blake3air

import (
	"testing"

	"github.com/consensys/go-air/pkg/air"
	"github.com/consensys/go-air/pkg/field/bls12377"
	"github.com/stretchr/testify/require"
)

type F = bls12377.Element

func TestBlake3Air_Width(t *testing.T) {
	a := Blake3Air[F, air.SymbolicExpression[F], air.SymbolicVariable[F]]{}
	require.Equal(t, uint(NumBlake3Cols), a.Width())
}

func TestBlake3Air_MaxConstraintDegree(t *testing.T) {
	a := Blake3Air[F, air.SymbolicExpression[F], air.SymbolicVariable[F]]{}
	deg := air.GetMaxConstraintDegree[F](a, 0, 0)
	require.Equal(t, uint(3), deg)
}

func TestBlake3Air_ConstraintCount(t *testing.T) {
	a := Blake3Air[F, air.SymbolicExpression[F], air.SymbolicVariable[F]]{}
	constraints := air.GetSymbolicConstraints[F](a, 0, 0)
	require.NotEmpty(t, constraints)
}

func TestMsgPermutation_IsAPermutation(t *testing.T) {
	seen := make(map[int]bool)
	for _, v := range msgPermutation {
		require.False(t, seen[v], "duplicate entry in message permutation")
		seen[v] = true
	}
	require.Len(t, seen, 16)
}

func TestGIndices_CoverEveryStateWordTwicePerRound(t *testing.T) {
	counts := make(map[int]int)
	for _, g := range gIndices {
		for _, i := range g {
			counts[i]++
		}
	}
	require.Len(t, counts, 16)
	for i := 0; i < 16; i++ {
		require.Equal(t, 2, counts[i], "state word %d should be touched twice per round", i)
	}
}
