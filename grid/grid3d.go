// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"
	"iter"

	"github.com/nlpodyssey/lattices"
	"github.com/nlpodyssey/lattices/array"
	"github.com/nlpodyssey/lattices/numeric"
)

// Grid3d is a three-dimensional grid of elements of type T.
type Grid3d[T any] struct {
	structure lattices.Structure3d
	data      array.Dense[T]
}

// New3d allocates a zeroed grid of the given extent with the canonical
// slice-major structure.
func New3d[T any](extent lattices.Extent3d) Grid3d[T] {
	data, _ := array.New[T](extent.Size())
	return Grid3d[T]{
		structure: lattices.MustStructureOf3d(extent, lattices.OneChannel),
		data:      data,
	}
}

// Of3d returns a slice-major grid of the given extent holding a copy of
// values, whose length must equal extent.Size().
func Of3d[T any](extent lattices.Extent3d, values ...T) (Grid3d[T], error) {
	if len(values) != extent.Size() {
		return Grid3d[T]{}, fmt.Errorf("%w: %d values for extent %s",
			lattices.ErrDimensionMismatch, len(values), extent)
	}
	return Grid3d[T]{
		structure: lattices.MustStructureOf3d(extent, lattices.OneChannel),
		data:      array.Of(values...),
	}, nil
}

// Wrap3d returns a grid addressing data through s. It fails with
// lattices.ErrOutOfBounds if s addresses offsets beyond the buffer.
func Wrap3d[T any](s lattices.Structure3d, data array.Dense[T]) (Grid3d[T], error) {
	if err := checkSpan(s, data); err != nil {
		return Grid3d[T]{}, err
	}
	return Grid3d[T]{structure: s, data: data}, nil
}

func (g Grid3d[T]) Structure() lattices.Structure3d { return g.structure }
func (g Grid3d[T]) Array() array.Dense[T]           { return g.data }
func (g Grid3d[T]) Extent() lattices.Extent3d       { return g.structure.Extent() }

// Get returns the element at the given coordinates, which are not checked
// against the extent.
func (g Grid3d[T]) Get(slice, row, col int) T {
	return g.data.Get(g.structure.Offset(lattices.Index3d{Slice: slice, Row: row, Col: col}))
}

// Set stores v at the given coordinates.
func (g Grid3d[T]) Set(slice, row, col int, v T) {
	g.data.Set(g.structure.Offset(lattices.Index3d{Slice: slice, Row: row, Col: col}), v)
}

// View returns the grid addressing the same buffer through the structure
// derived by v.
func (g Grid3d[T]) View(v lattices.View3d) (Grid3d[T], error) {
	s, err := g.structure.View(v)
	if err != nil {
		return Grid3d[T]{}, err
	}
	return Grid3d[T]{structure: s, data: g.data}, nil
}

// Project returns the two-dimensional grid addressing the same buffer
// through the structure derived by p.
func (g Grid3d[T]) Project(p lattices.Projection3d) (Grid2d[T], error) {
	s, err := g.structure.Project(p)
	if err != nil {
		return Grid2d[T]{}, err
	}
	return Grid2d[T]{structure: s, data: g.data}, nil
}

// Slice returns the two-dimensional grid of the given slice.
func (g Grid3d[T]) Slice(i int) (Grid2d[T], error) {
	return g.Project(lattices.SliceProjection3d(i))
}

// All returns the indexes and elements of the grid in the order of loop,
// or in row-major order if loop is nil.
func (g Grid3d[T]) All(loop lattices.Loop3d) iter.Seq2[lattices.Index3d, T] {
	if loop == nil {
		loop = lattices.RowMajor3d
	}
	return func(yield func(lattices.Index3d, T) bool) {
		for i := range loop(lattices.RangeOf3d(g.Extent())) {
			if !yield(i, g.data.Get(g.structure.Offset(i))) {
				return
			}
		}
	}
}

func (g Grid3d[T]) offsets() iter.Seq[lattices.Index3d] {
	return lattices.RowMajor3d(lattices.RangeOf3d(g.Extent()))
}

// Fill sets every element to v.
func (g Grid3d[T]) Fill(v T) {
	for i := range g.offsets() {
		g.data.Set(g.structure.Offset(i), v)
	}
}

// Update replaces every element e with f(e).
func (g Grid3d[T]) Update(f func(T) T) {
	for i := range g.offsets() {
		o := g.structure.Offset(i)
		g.data.Set(o, f(g.data.Get(o)))
	}
}

// Assign copies the elements of o, which must have the same extent, into
// g. The grids may share their buffer.
func (g Grid3d[T]) Assign(o Grid3d[T]) error {
	if g.Extent() != o.Extent() {
		return extentMismatch(g.Extent(), o.Extent())
	}
	if sameBuffer(g.data, o.data) {
		o = o.Copy()
	}
	for i := range g.offsets() {
		g.data.Set(g.structure.Offset(i), o.data.Get(o.structure.Offset(i)))
	}
	return nil
}

// Combine replaces every element a of g with f(a, b), b being the element
// of o at the same index.
func (g Grid3d[T]) Combine(o Grid3d[T], f func(a, b T) T) error {
	if g.Extent() != o.Extent() {
		return extentMismatch(g.Extent(), o.Extent())
	}
	if sameBuffer(g.data, o.data) {
		o = o.Copy()
	}
	for i := range g.offsets() {
		offset := g.structure.Offset(i)
		g.data.Set(offset, f(g.data.Get(offset), o.data.Get(o.structure.Offset(i))))
	}
	return nil
}

// Copy returns a grid with the canonical structure of the same extent
// over a new buffer holding a copy of the elements.
func (g Grid3d[T]) Copy() Grid3d[T] {
	c := New3d[T](g.Extent())
	for i := range g.offsets() {
		c.data.Set(c.structure.Offset(i), g.data.Get(g.structure.Offset(i)))
	}
	return c
}

// Reduce folds the elements in row-major order with f. The boolean flag
// is false for an empty grid.
func (g Grid3d[T]) Reduce(f func(acc, v T) T) (T, bool) {
	return reduce(g.All(nil), f)
}

// Equal3d reports whether a and b have the same extent and elements.
func Equal3d[T comparable](a, b Grid3d[T]) bool {
	return a.Extent() == b.Extent() && lattices.AllMatch(a.offsets(), func(i lattices.Index3d) bool {
		return a.Get(i.Slice, i.Row, i.Col) == b.Get(i.Slice, i.Row, i.Col)
	})
}

// EqualFloat3d reports whether a and b have the same extent and equal
// elements within the tolerance of ctx.
func EqualFloat3d[T Float](ctx numeric.Context, a, b Grid3d[T]) bool {
	return a.Extent() == b.Extent() && lattices.AllMatch(a.offsets(), func(i lattices.Index3d) bool {
		return ctx.Equal(float64(a.Get(i.Slice, i.Row, i.Col)), float64(b.Get(i.Slice, i.Row, i.Col)))
	})
}
