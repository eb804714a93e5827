// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan decodes declarative view pipelines.
//
// A plan is a YAML document describing a canonical N-dimensional structure
// and a sequence of steps transforming it:
//
//	extent: [4, 6]
//	channels: 3
//	dtype: f32
//	steps:
//	  - range: {start: [1, 0], extent: [2, 6]}
//	  - stride: [1, 2]
//	  - channel: 2
//	  - transpose: true
//
// Each step holds exactly one operation. Resolve applies the steps in
// order and returns the resulting structure.
package plan

import (
	"fmt"
	"io"
	"os"

	"github.com/nlpodyssey/lattices"
	"github.com/nlpodyssey/lattices/dtype"
	"gopkg.in/yaml.v3"
)

// Plan describes a structure and the steps deriving a view from it.
type Plan struct {
	// Name is an optional free-form label.
	Name string `yaml:"name,omitempty"`
	// Extent holds the size of each dimension of the source structure.
	Extent []int `yaml:"extent,flow"`
	// Channels is the number of interleaved channels of the buffer.
	// Zero means one channel.
	Channels int `yaml:"channels,omitempty"`
	// DType is the element data type of the buffer.
	DType dtype.DType `yaml:"dtype"`
	Steps []Step      `yaml:"steps,omitempty"`
}

// Parse decodes a plan from r and validates it. Unknown fields are
// rejected.
func Parse(r io.Reader) (Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return Plan{}, fmt.Errorf("failed to decode plan: empty document")
		}
		return Plan{}, fmt.Errorf("failed to decode plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// ParseFile is like Parse, reading the plan from the named file. The
// plan name defaults to the file name.
func ParseFile(name string) (_ Plan, err error) {
	f, err := os.Open(name)
	if err != nil {
		return Plan{}, err
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()

	p, err := Parse(f)
	if err != nil {
		return Plan{}, fmt.Errorf("plan %q: %w", name, err)
	}
	if p.Name == "" {
		p.Name = name
	}
	return p, nil
}

// Encode writes p to w as a YAML document.
func (p Plan) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return enc.Close()
}

// ChannelCount returns the number of channels of the buffer.
func (p Plan) ChannelCount() lattices.Channels {
	if p.Channels == 0 {
		return lattices.OneChannel
	}
	return lattices.Channels(p.Channels)
}

// Source returns the canonical structure the steps apply to.
func (p Plan) Source() (lattices.StructureNd, error) {
	extent, err := lattices.NewExtentNd(p.Extent...)
	if err != nil {
		return lattices.StructureNd{}, err
	}
	return lattices.StructureOfNd(extent, p.ChannelCount())
}

// Resolve applies the steps in order to the source structure and returns
// the result.
func (p Plan) Resolve() (lattices.StructureNd, error) {
	s, err := p.Source()
	if err != nil {
		return lattices.StructureNd{}, err
	}
	for i, step := range p.Steps {
		if s, err = step.Apply(s); err != nil {
			return lattices.StructureNd{}, fmt.Errorf("step %d (%s): %w", i+1, step.Kind(), err)
		}
	}
	return s, nil
}

// BufferLen returns the number of elements of the buffer the source
// structure addresses, channels included.
func (p Plan) BufferLen() (int, error) {
	s, err := p.Source()
	if err != nil {
		return 0, err
	}
	return s.Extent().Size() * int(p.ChannelCount()), nil
}

// ByteSize returns the size in bytes of the buffer the source structure
// addresses.
func (p Plan) ByteSize() (int, error) {
	n, err := p.BufferLen()
	if err != nil {
		return 0, err
	}
	return p.DType.ByteSize(n)
}
