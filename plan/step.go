// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plan

import (
	"fmt"

	"github.com/nlpodyssey/lattices"
)

// Kind identifies the operation of a Step.
type Kind string

const (
	// KindNone is the Kind of a step holding no operation.
	KindNone      Kind = "none"
	KindRange     Kind = "range"
	KindStart     Kind = "start"
	KindExtent    Kind = "extent"
	KindStride    Kind = "stride"
	KindPermute   Kind = "permute"
	KindTranspose Kind = "transpose"
	KindChannel   Kind = "channel"
	KindProject   Kind = "project"
	// KindAmbiguous is the Kind of a step holding more than one operation.
	KindAmbiguous Kind = "ambiguous"
)

// Step is one transformation of a plan. Exactly one field must be set.
type Step struct {
	Range     *RangeStep   `yaml:"range,omitempty"`
	Start     []int        `yaml:"start,omitempty,flow"`
	Extent    []int        `yaml:"extent,omitempty,flow"`
	Stride    []int        `yaml:"stride,omitempty,flow"`
	Permute   []int        `yaml:"permute,omitempty,flow"`
	Transpose bool         `yaml:"transpose,omitempty"`
	Channel   *int         `yaml:"channel,omitempty"`
	Project   *ProjectStep `yaml:"project,omitempty"`
}

// RangeStep selects the region of the given extent from start.
type RangeStep struct {
	Start  []int `yaml:"start,flow"`
	Extent []int `yaml:"extent,flow"`
}

// ProjectStep fixes coordinate Index of dimension Axis, removing the
// dimension.
type ProjectStep struct {
	Axis  int `yaml:"axis"`
	Index int `yaml:"index"`
}

// Kind returns the operation held by the step.
func (s Step) Kind() Kind {
	kind := KindNone
	set := func(k Kind, ok bool) {
		if !ok {
			return
		}
		if kind == KindNone {
			kind = k
		} else {
			kind = KindAmbiguous
		}
	}
	set(KindRange, s.Range != nil)
	set(KindStart, s.Start != nil)
	set(KindExtent, s.Extent != nil)
	set(KindStride, s.Stride != nil)
	set(KindPermute, s.Permute != nil)
	set(KindTranspose, s.Transpose)
	set(KindChannel, s.Channel != nil)
	set(KindProject, s.Project != nil)
	return kind
}

// Apply derives a new structure from st by performing the step's
// operation.
func (s Step) Apply(st lattices.StructureNd) (lattices.StructureNd, error) {
	switch kind := s.Kind(); kind {
	case KindRange:
		extent, err := lattices.NewExtentNd(s.Range.Extent...)
		if err != nil {
			return lattices.StructureNd{}, err
		}
		r, err := lattices.NewRangeNd(lattices.NewIndexNd(s.Range.Start...), extent)
		if err != nil {
			return lattices.StructureNd{}, err
		}
		return st.View(lattices.RangeViewNd(r))
	case KindStart:
		return st.View(lattices.StartViewNd(lattices.NewIndexNd(s.Start...)))
	case KindExtent:
		extent, err := lattices.NewExtentNd(s.Extent...)
		if err != nil {
			return lattices.StructureNd{}, err
		}
		return st.View(lattices.ExtentViewNd(extent))
	case KindStride:
		stride, err := lattices.NewStrideNd(s.Stride...)
		if err != nil {
			return lattices.StructureNd{}, err
		}
		return st.View(lattices.StrideViewNd(stride))
	case KindPermute:
		return st.View(lattices.PermuteViewNd(s.Permute...))
	case KindTranspose:
		return st.View(lattices.PermuteViewNd(reversed(st.Rank())...))
	case KindChannel:
		return st.View(lattices.ChannelViewNd(lattices.Channel(*s.Channel)))
	case KindProject:
		return st.Project(lattices.AxisProjectionNd(s.Project.Axis, s.Project.Index))
	default:
		return lattices.StructureNd{}, fmt.Errorf("step has %s operation", kind)
	}
}

// reversed returns the axes of the given rank in reverse order.
func reversed(rank int) []int {
	axes := make([]int, rank)
	for i := range axes {
		axes[i] = rank - 1 - i
	}
	return axes
}
