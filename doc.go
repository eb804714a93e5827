// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lattices maps logical N-dimensional coordinates onto positions of
// a flat backing buffer.
//
// A Structure pairs an Extent (the shape) with a Layout (start and stride
// per dimension) and an optional Channel offset for interleaved data.
// Views and Projections derive new structures from existing ones without
// copying the buffer: sub-ranges, strided downsampling, transposition and
// fixing one coordinate are all plain arithmetic on the layout.
//
// Offset and Index are hot-path methods and perform no bounds checks.
// Passing coordinates outside a structure's extent is a caller error.
package lattices
