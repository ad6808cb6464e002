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

import "github.com/consensys/go-air/pkg/field"

// PairColKind distinguishes which of the two concrete row slices a
// PairCol reads from.
type PairColKind uint8

const (
	// PairColPreprocessed reads from the preprocessed row.
	PairColPreprocessed PairColKind = iota
	// PairColMain reads from the main row.
	PairColMain
)

// PairCol names a single column within either the preprocessed or main
// trace.
type PairCol struct {
	Kind  PairColKind
	Index uint
}

// Get reads the value PairCol names from the given preprocessed/main
// rows.
func Get[T any](c PairCol, preprocessed, main []T) T {
	if c.Kind == PairColPreprocessed {
		return preprocessed[c.Index]
	}
	return main[c.Index]
}

type weightedColumn[F field.Element[F]] struct {
	Column PairCol
	Weight F
}

// VirtualPairCol is an affine combination of preprocessed
// and/or main columns: constant + sum(weight_i * column_i). It lets a
// constraint refer to a derived quantity without materializing it as its
// own trace column.
type VirtualPairCol[F field.Element[F]] struct {
	weights  []weightedColumn[F]
	constant F
}

// NewVirtualPairCol builds a VirtualPairCol from explicit (column,
// weight) pairs plus a constant term.
func NewVirtualPairCol[F field.Element[F]](constant F, columns []PairCol, weights []F) VirtualPairCol[F] {
	wc := make([]weightedColumn[F], len(columns))
	for i := range columns {
		wc[i] = weightedColumn[F]{Column: columns[i], Weight: weights[i]}
	}
	return VirtualPairCol[F]{weights: wc, constant: constant}
}

// ConstantCol builds a VirtualPairCol that ignores its rows and always
// evaluates to c.
func ConstantCol[F field.Element[F]](c F) VirtualPairCol[F] {
	return VirtualPairCol[F]{constant: c}
}

// Single builds a VirtualPairCol that reads a single column verbatim.
func Single[F field.Element[F]](column PairCol) VirtualPairCol[F] {
	return VirtualPairCol[F]{
		weights:  []weightedColumn[F]{{Column: column, Weight: field.One[F]()}},
		constant: field.Zero[F](),
	}
}

// SinglePreprocessed builds a VirtualPairCol over a single preprocessed
// column.
func SinglePreprocessed[F field.Element[F]](index uint) VirtualPairCol[F] {
	return Single[F](PairCol{Kind: PairColPreprocessed, Index: index})
}

// SingleMain builds a VirtualPairCol over a single main column.
func SingleMain[F field.Element[F]](index uint) VirtualPairCol[F] {
	return Single[F](PairCol{Kind: PairColMain, Index: index})
}

func sumOf[F field.Element[F]](kind PairColKind, indices []uint) VirtualPairCol[F] {
	wc := make([]weightedColumn[F], len(indices))
	for i, idx := range indices {
		wc[i] = weightedColumn[F]{Column: PairCol{Kind: kind, Index: idx}, Weight: field.One[F]()}
	}
	return VirtualPairCol[F]{weights: wc, constant: field.Zero[F]()}
}

// SumPreprocessed builds a VirtualPairCol that sums several preprocessed
// columns.
func SumPreprocessed[F field.Element[F]](indices []uint) VirtualPairCol[F] {
	return sumOf[F](PairColPreprocessed, indices)
}

// SumMain builds a VirtualPairCol that sums several main columns.
func SumMain[F field.Element[F]](indices []uint) VirtualPairCol[F] {
	return sumOf[F](PairColMain, indices)
}

func diffOf[F field.Element[F]](kind PairColKind, a, b uint) VirtualPairCol[F] {
	return VirtualPairCol[F]{
		weights: []weightedColumn[F]{
			{Column: PairCol{Kind: kind, Index: a}, Weight: field.One[F]()},
			{Column: PairCol{Kind: kind, Index: b}, Weight: field.Zero[F]().Sub(field.One[F]())},
		},
		constant: field.Zero[F](),
	}
}

// DiffPreprocessed builds a VirtualPairCol equal to preprocessed[a] -
// preprocessed[b].
func DiffPreprocessed[F field.Element[F]](a, b uint) VirtualPairCol[F] {
	return diffOf[F](PairColPreprocessed, a, b)
}

// DiffMain builds a VirtualPairCol equal to main[a] - main[b].
func DiffMain[F field.Element[F]](a, b uint) VirtualPairCol[F] {
	return diffOf[F](PairColMain, a, b)
}

// Apply evaluates the affine form against two rows of concrete values.
func (v VirtualPairCol[F]) Apply(preprocessed, main []F) F {
	result := v.constant
	for _, wc := range v.weights {
		val := Get(wc.Column, preprocessed, main)
		result = result.Add(val.Mul(wc.Weight))
	}
	return result
}
