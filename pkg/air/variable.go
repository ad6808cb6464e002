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

// EntryKind classifies which column family a SymbolicVariable refers to.
type EntryKind uint8

const (
	// EntryPreprocessed refers to a fixed, witness-independent column.
	EntryPreprocessed EntryKind = iota
	// EntryMain refers to the main execution-trace column family.
	EntryMain
	// EntryPermutation refers to a permutation-argument column family.
	EntryPermutation
	// EntryPublic refers to a public input value.
	EntryPublic
	// EntryChallenge refers to a verifier-supplied challenge.
	EntryChallenge
)

// Entry tags a SymbolicVariable with its column family and, for the
// row-indexed families, which row offset (0 = current, 1 = next) it
// reads from.
type Entry struct {
	Kind   EntryKind
	Offset uint
}

func (e Entry) String() string {
	switch e.Kind {
	case EntryPreprocessed:
		return fmt.Sprintf("preprocessed[%d]", e.Offset)
	case EntryMain:
		return fmt.Sprintf("main[%d]", e.Offset)
	case EntryPermutation:
		return fmt.Sprintf("perm[%d]", e.Offset)
	case EntryPublic:
		return "public"
	case EntryChallenge:
		return "challenge"
	default:
		return "?"
	}
}

// SymbolicVariable is a typed reference to a single trace cell: which
// column family (Entry), which row offset within it, and which column
// index. It is the leaf of the constraint expression DAG.
type SymbolicVariable[F field.Element[F]] struct {
	Entry Entry
	Index uint
}

// NewSymbolicVariable constructs a SymbolicVariable for the given entry
// and column index.
func NewSymbolicVariable[F field.Element[F]](entry Entry, index uint) SymbolicVariable[F] {
	return SymbolicVariable[F]{Entry: entry, Index: index}
}

// DegreeMultiple returns the upper bound on the algebraic degree (in
// terms of trace length) this variable contributes: 1 for row-indexed
// families, 0 for values that don't vary across the trace.
func (v SymbolicVariable[F]) DegreeMultiple() uint {
	switch v.Entry.Kind {
	case EntryPreprocessed, EntryMain, EntryPermutation:
		return 1
	default:
		return 0
	}
}

func (v SymbolicVariable[F]) String() string {
	return fmt.Sprintf("%s#%d", v.Entry, v.Index)
}

// ToExpr lifts this variable into the symbolic expression algebra,
// satisfying the Var[E] capability the builder requires of its trace
// cells.
func (v SymbolicVariable[F]) ToExpr() SymbolicExpression[F] {
	return variableExpr(v)
}
