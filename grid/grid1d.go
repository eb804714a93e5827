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

// Grid1d is a one-dimensional grid of elements of type T.
type Grid1d[T any] struct {
	structure lattices.Structure1d
	data      array.Dense[T]
}

// New1d allocates a zeroed grid of the given extent.
func New1d[T any](extent lattices.Extent1d) Grid1d[T] {
	data, _ := array.New[T](extent.Size())
	return Grid1d[T]{
		structure: lattices.MustStructureOf1d(extent, lattices.OneChannel),
		data:      data,
	}
}

// Of1d returns a grid holding a copy of values.
func Of1d[T any](values ...T) Grid1d[T] {
	return Grid1d[T]{
		structure: lattices.MustStructureOf1d(lattices.MustExtent1d(len(values)), lattices.OneChannel),
		data:      array.Of(values...),
	}
}

// Wrap1d returns a grid addressing data through s. It fails with
// lattices.ErrOutOfBounds if s addresses offsets beyond the buffer.
func Wrap1d[T any](s lattices.Structure1d, data array.Dense[T]) (Grid1d[T], error) {
	if err := checkSpan(s, data); err != nil {
		return Grid1d[T]{}, err
	}
	return Grid1d[T]{structure: s, data: data}, nil
}

func (g Grid1d[T]) Structure() lattices.Structure1d { return g.structure }
func (g Grid1d[T]) Array() array.Dense[T]           { return g.data }
func (g Grid1d[T]) Extent() lattices.Extent1d       { return g.structure.Extent() }
func (g Grid1d[T]) Len() int                        { return g.structure.Extent().Size() }

// Get returns the element at position i, which is not checked against the
// extent.
func (g Grid1d[T]) Get(i int) T {
	return g.data.Get(g.structure.Offset(lattices.Index1d{Value: i}))
}

// Set stores v at position i.
func (g Grid1d[T]) Set(i int, v T) {
	g.data.Set(g.structure.Offset(lattices.Index1d{Value: i}), v)
}

// View returns the grid addressing the same buffer through the structure
// derived by v.
func (g Grid1d[T]) View(v lattices.View1d) (Grid1d[T], error) {
	s, err := g.structure.View(v)
	if err != nil {
		return Grid1d[T]{}, err
	}
	return Grid1d[T]{structure: s, data: g.data}, nil
}

// All returns the indexes and elements of the grid in the order of loop,
// or in increasing order if loop is nil.
func (g Grid1d[T]) All(loop lattices.Loop1d) iter.Seq2[lattices.Index1d, T] {
	if loop == nil {
		loop = lattices.Forward1d
	}
	return func(yield func(lattices.Index1d, T) bool) {
		for i := range loop(lattices.RangeOf1d(g.Extent())) {
			if !yield(i, g.data.Get(g.structure.Offset(i))) {
				return
			}
		}
	}
}

// Fill sets every element to v.
func (g Grid1d[T]) Fill(v T) {
	for i := 0; i < g.Len(); i++ {
		g.Set(i, v)
	}
}

// Update replaces every element e with f(e).
func (g Grid1d[T]) Update(f func(T) T) {
	for i := 0; i < g.Len(); i++ {
		g.Set(i, f(g.Get(i)))
	}
}

// Assign copies the elements of o, which must have the same extent, into
// g. The grids may share their buffer.
func (g Grid1d[T]) Assign(o Grid1d[T]) error {
	if g.Extent() != o.Extent() {
		return extentMismatch(g.Extent(), o.Extent())
	}
	if sameBuffer(g.data, o.data) {
		o = o.Copy()
	}
	for i := 0; i < g.Len(); i++ {
		g.Set(i, o.Get(i))
	}
	return nil
}

// AssignValues copies values, one per position, into g.
func (g Grid1d[T]) AssignValues(values ...T) error {
	if len(values) != g.Len() {
		return fmt.Errorf("%w: %d values for extent %s", lattices.ErrDimensionMismatch, len(values), g.Extent())
	}
	for i, v := range values {
		g.Set(i, v)
	}
	return nil
}

// Combine replaces every element a of g with f(a, b), b being the element
// of o at the same position.
func (g Grid1d[T]) Combine(o Grid1d[T], f func(a, b T) T) error {
	if g.Extent() != o.Extent() {
		return extentMismatch(g.Extent(), o.Extent())
	}
	if sameBuffer(g.data, o.data) {
		o = o.Copy()
	}
	for i := 0; i < g.Len(); i++ {
		g.Set(i, f(g.Get(i), o.Get(i)))
	}
	return nil
}

// Swap exchanges the elements of g and o, which must have the same
// extent.
func (g Grid1d[T]) Swap(o Grid1d[T]) error {
	if g.Extent() != o.Extent() {
		return extentMismatch(g.Extent(), o.Extent())
	}
	for i := 0; i < g.Len(); i++ {
		a, b := g.Get(i), o.Get(i)
		g.Set(i, b)
		o.Set(i, a)
	}
	return nil
}

// Copy returns a contiguous grid over a new buffer holding a copy of the
// elements.
func (g Grid1d[T]) Copy() Grid1d[T] {
	c := New1d[T](g.Extent())
	for i := 0; i < g.Len(); i++ {
		c.Set(i, g.Get(i))
	}
	return c
}

// Reduce folds the elements in increasing order with f. The boolean flag
// is false for an empty grid.
func (g Grid1d[T]) Reduce(f func(acc, v T) T) (T, bool) {
	return reduce(g.All(nil), f)
}

func (g Grid1d[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < g.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, g.Get(i))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Equal1d reports whether a and b have the same extent and elements.
func Equal1d[T comparable](a, b Grid1d[T]) bool {
	if a.Extent() != b.Extent() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.Get(i) != b.Get(i) {
			return false
		}
	}
	return true
}

// EqualFloat1d reports whether a and b have the same extent and equal
// elements within the tolerance of ctx.
func EqualFloat1d[T Float](ctx numeric.Context, a, b Grid1d[T]) bool {
	if a.Extent() != b.Extent() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !ctx.Equal(float64(a.Get(i)), float64(b.Get(i))) {
			return false
		}
	}
	return true
}
