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

// Package matrix declares the row-major trace view
// consumed by pkg/air's builders, plus the concrete backings used by
// this module: a dense array and a two-row "current/next" pairing.
package matrix

// Matrix is a read-only row-major view: a height x width array of T with
// row-slice access. pkg/air only ever consumes this interface, never a
// concrete type, so any backing storage a client chooses will do.
type Matrix[T any] interface {
	Width() uint
	Height() uint
	Row(i uint) []T
}

// RowMajor is a flat, densely packed Matrix.
type RowMajor[T any] struct {
	data  []T
	width uint
}

// NewRowMajor wraps data as a width-wide row-major matrix. len(data) must
// be a multiple of width.
func NewRowMajor[T any](data []T, width uint) RowMajor[T] {
	return RowMajor[T]{data: data, width: width}
}

// Width returns the number of columns.
func (m RowMajor[T]) Width() uint { return m.width }

// Height returns the number of rows.
func (m RowMajor[T]) Height() uint {
	if m.width == 0 {
		return 0
	}
	return uint(len(m.data)) / m.width
}

// Row returns the i-th row as a slice sharing the matrix's backing array.
func (m RowMajor[T]) Row(i uint) []T {
	return m.data[i*m.width : (i+1)*m.width]
}

// Pair stitches two independently owned row slices, "local" and "next",
// into a height-2 Matrix. This is exactly the current/next row window an
// AIR's main() exposes (row offsets 0 and 1): row(0) is local,
// row(1) is next, with wrap-around already resolved by the caller.
type Pair[T any] struct {
	Local, Next []T
}

// NewPair builds a Pair from the given local and next rows.
func NewPair[T any](local, next []T) Pair[T] {
	return Pair[T]{Local: local, Next: next}
}

// Width returns the shared row width.
func (p Pair[T]) Width() uint { return uint(len(p.Local)) }

// Height is always 2: local and next.
func (p Pair[T]) Height() uint { return 2 }

// Row returns Local for i == 0 and Next otherwise.
func (p Pair[T]) Row(i uint) []T {
	if i == 0 {
		return p.Local
	}
	return p.Next
}
