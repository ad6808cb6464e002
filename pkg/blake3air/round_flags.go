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
	"github.com/consensys/go-air/pkg/air"
	"github.com/consensys/go-air/pkg/field"
)

// evalRoundFlags asserts that step_flags cycles through exactly one hot
// bit per row: round 0 on the first row, and each row's flags equal to
// the previous row's flags rotated by one position on every transition.
func evalRoundFlags[F field.Element[F], E field.Element[E], V air.Var[E]](b air.AirBuilder[F, E, V]) {
	main := b.Main()
	local := ParseBlake3Cols[V](main.Row(0))
	next := ParseBlake3Cols[V](main.Row(1))

	first := air.WhenFirstRow[F, E, V](b)
	air.AssertOne[F, E, V](first, local.StepFlags[0].ToExpr())
	for i := 1; i < NumRounds; i++ {
		first.AssertZero(local.StepFlags[i].ToExpr())
	}

	trans := air.WhenTransition[F, E, V](b)
	for i := 0; i < NumRounds; i++ {
		air.AssertEq[F, E, V](trans, next.StepFlags[(i+1)%NumRounds].ToExpr(), local.StepFlags[i].ToExpr())
	}
}
