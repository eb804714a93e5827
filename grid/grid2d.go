// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"
	"iter"
	"strings"

	"github.com/nlpodyssey/lattices"
	"github.com/nlpodyssey/lattices/array"
	"github.com/nlpodyssey/lattices/numeric"
)

// Grid2d is a two-dimensional grid of elements of type T.
type Grid2d[T any] struct {
	structure lattices.Structure2d
	data      array.Dense[T]
}

// New2d allocates a zeroed grid of the given extent with the canonical
// row-major structure.
func New2d[T any](extent lattices.Extent2d) Grid2d[T] {
	s := lattices.MustStructureOf2d(extent, lattices.OneChannel)
	data, _ := array.New[T](extent.Size())
	return Grid2d[T]{structure: s, data: data}
}

// Of2d returns a row-major grid of the given extent holding a copy of
// values, whose length must equal extent.Size().
func Of2d[T any](extent lattices.Extent2d, values ...T) (Grid2d[T], error) {
	if len(values) != extent.Size() {
		return Grid2d[T]{}, fmt.Errorf("%w: %d values for extent %s",
			lattices.ErrDimensionMismatch, len(values), extent)
	}
	return Grid2d[T]{
		structure: lattices.MustStructureOf2d(extent, lattices.OneChannel),
		data:      array.Of(values...),
	}, nil
}

// Wrap2d returns a grid addressing data through s. It fails with
// lattices.ErrOutOfBounds if s addresses offsets beyond the buffer.
func Wrap2d[T any](s lattices.Structure2d, data array.Dense[T]) (Grid2d[T], error) {
	if err := checkSpan(s, data); err != nil {
		return Grid2d[T]{}, err
	}
	return Grid2d[T]{structure: s, data: data}, nil
}

func (g Grid2d[T]) Structure() lattices.Structure2d { return g.structure }
func (g Grid2d[T]) Array() array.Dense[T]           { return g.data }
func (g Grid2d[T]) Extent() lattices.Extent2d       { return g.structure.Extent() }
func (g Grid2d[T]) Rows() int                       { return g.structure.Extent().Rows() }
func (g Grid2d[T]) Cols() int                       { return g.structure.Extent().Cols() }

// Get returns the element at the given row and column. The coordinates
// are not checked against the extent.
func (g Grid2d[T]) Get(row, col int) T {
	return g.data.Get(g.structure.Offset(lattices.Index2d{Row: row, Col: col}))
}

// Set stores v at the given row and column.
func (g Grid2d[T]) Set(row, col int, v T) {
	g.data.Set(g.structure.Offset(lattices.Index2d{Row: row, Col: col}), v)
}

// View returns the grid addressing the same buffer through the structure
// derived by v.
func (g Grid2d[T]) View(v lattices.View2d) (Grid2d[T], error) {
	s, err := g.structure.View(v)
	if err != nil {
		return Grid2d[T]{}, err
	}
	return Grid2d[T]{structure: s, data: g.data}, nil
}

// Project returns the one-dimensional grid addressing the same buffer
// through the structure derived by p.
func (g Grid2d[T]) Project(p lattices.Projection2d) (Grid1d[T], error) {
	s, err := g.structure.Project(p)
	if err != nil {
		return Grid1d[T]{}, err
	}
	return Grid1d[T]{structure: s, data: g.data}, nil
}

// Row returns the one-dimensional grid of the given row.
func (g Grid2d[T]) Row(i int) (Grid1d[T], error) {
	return g.Project(lattices.RowProjection2d(i))
}

// Col returns the one-dimensional grid of the given column.
func (g Grid2d[T]) Col(i int) (Grid1d[T], error) {
	return g.Project(lattices.ColProjection2d(i))
}

// Transpose returns the grid with rows and columns swapped.
func (g Grid2d[T]) Transpose() Grid2d[T] {
	return Grid2d[T]{structure: g.structure.Transpose(), data: g.data}
}

// All returns the indexes and elements of the grid in the order of loop,
// or in row-major order if loop is nil.
func (g Grid2d[T]) All(loop lattices.Loop2d) iter.Seq2[lattices.Index2d, T] {
	if loop == nil {
		loop = lattices.RowMajor2d
	}
	return func(yield func(lattices.Index2d, T) bool) {
		for i := range loop(lattices.RangeOf2d(g.Extent())) {
			if !yield(i, g.data.Get(g.structure.Offset(i))) {
				return
			}
		}
	}
}

// Fill sets every element to v.
func (g Grid2d[T]) Fill(v T) {
	for i := range lattices.RowMajor2d(lattices.RangeOf2d(g.Extent())) {
		g.data.Set(g.structure.Offset(i), v)
	}
}

// Update replaces every element e with f(e).
func (g Grid2d[T]) Update(f func(T) T) {
	for i := range lattices.RowMajor2d(lattices.RangeOf2d(g.Extent())) {
		o := g.structure.Offset(i)
		g.data.Set(o, f(g.data.Get(o)))
	}
}

// Assign copies the elements of o, which must have the same extent, into
// g. The grids may share their buffer.
func (g Grid2d[T]) Assign(o Grid2d[T]) error {
	if g.Extent() != o.Extent() {
		return extentMismatch(g.Extent(), o.Extent())
	}
	if sameBuffer(g.data, o.data) {
		o = o.Copy()
	}
	for i := range lattices.RowMajor2d(lattices.RangeOf2d(g.Extent())) {
		g.data.Set(g.structure.Offset(i), o.data.Get(o.structure.Offset(i)))
	}
	return nil
}

// AssignRows copies the given rows into g. There must be one row per grid
// row, each holding one value per column.
func (g Grid2d[T]) AssignRows(rows [][]T) error {
	if len(rows) != g.Rows() {
		return fmt.Errorf("%w: %d rows for extent %s", lattices.ErrDimensionMismatch, len(rows), g.Extent())
	}
	for r, row := range rows {
		if len(row) != g.Cols() {
			return fmt.Errorf("%w: row %d has %d values for extent %s",
				lattices.ErrDimensionMismatch, r, len(row), g.Extent())
		}
	}
	for r, row := range rows {
		for c, v := range row {
			g.Set(r, c, v)
		}
	}
	return nil
}

// Combine replaces every element a of g with f(a, b), b being the element
// of o at the same index.
func (g Grid2d[T]) Combine(o Grid2d[T], f func(a, b T) T) error {
	if g.Extent() != o.Extent() {
		return extentMismatch(g.Extent(), o.Extent())
	}
	if sameBuffer(g.data, o.data) {
		o = o.Copy()
	}
	for i := range lattices.RowMajor2d(lattices.RangeOf2d(g.Extent())) {
		offset := g.structure.Offset(i)
		g.data.Set(offset, f(g.data.Get(offset), o.data.Get(o.structure.Offset(i))))
	}
	return nil
}

// Swap exchanges the elements of g and o, which must have the same
// extent.
func (g Grid2d[T]) Swap(o Grid2d[T]) error {
	if g.Extent() != o.Extent() {
		return extentMismatch(g.Extent(), o.Extent())
	}
	for i := range lattices.RowMajor2d(lattices.RangeOf2d(g.Extent())) {
		a, b := g.structure.Offset(i), o.structure.Offset(i)
		va, vb := g.data.Get(a), o.data.Get(b)
		g.data.Set(a, vb)
		o.data.Set(b, va)
	}
	return nil
}

// Copy returns a grid with the canonical structure of the same extent
// over a new buffer holding a copy of the elements.
func (g Grid2d[T]) Copy() Grid2d[T] {
	c := New2d[T](g.Extent())
	for i := range lattices.RowMajor2d(lattices.RangeOf2d(g.Extent())) {
		c.data.Set(c.structure.Offset(i), g.data.Get(g.structure.Offset(i)))
	}
	return c
}

// Reduce folds the elements in row-major order with f. The boolean flag
// is false for an empty grid.
func (g Grid2d[T]) Reduce(f func(acc, v T) T) (T, bool) {
	return reduce(g.All(nil), f)
}

func (g Grid2d[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := 0; r < g.Rows(); r++ {
		if r > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, g.Get(r, c))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}

// Equal2d reports whether a and b have the same extent and elements.
func Equal2d[T comparable](a, b Grid2d[T]) bool {
	return a.Extent() == b.Extent() && lattices.AllMatch(
		lattices.RowMajor2d(lattices.RangeOf2d(a.Extent())),
		func(i lattices.Index2d) bool { return a.Get(i.Row, i.Col) == b.Get(i.Row, i.Col) },
	)
}

// EqualFloat2d reports whether a and b have the same extent and equal
// elements within the tolerance of ctx.
func EqualFloat2d[T Float](ctx numeric.Context, a, b Grid2d[T]) bool {
	return a.Extent() == b.Extent() && lattices.AllMatch(
		lattices.RowMajor2d(lattices.RangeOf2d(a.Extent())),
		func(i lattices.Index2d) bool {
			return ctx.Equal(float64(a.Get(i.Row, i.Col)), float64(b.Get(i.Row, i.Col)))
		},
	)
}
