// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plan

import (
	"fmt"

	"github.com/nlpodyssey/lattices"
)

// Validate checks whether the content of a Plan is valid, returning an
// error if a problem is encountered, otherwise nil.
//
// The Plan is checked against the following rules:
//
//   - the extent must have at least one dimension and no negative values
//   - Channels must not be negative
//   - DType is required and must be valid
//   - each step must hold exactly one operation
//   - each channel step must address one of the plan's channels
//   - each step must apply to the structure produced by the previous ones,
//     so ranks must agree and regions must fit
//   - no overflow must occur during calculations at any step, making sure
//     that all computed offsets fit within the "int" type
func (p Plan) Validate() error {
	if len(p.Extent) == 0 {
		return fmt.Errorf("%w: extent", lattices.ErrRequired)
	}
	if p.Channels < 0 {
		return fmt.Errorf("invalid negative channels value %d", p.Channels)
	}
	if p.DType == 0 {
		return fmt.Errorf("%w: dtype", lattices.ErrRequired)
	}
	if err := p.DType.Validate(); err != nil {
		return err
	}
	if _, err := p.Source(); err != nil {
		return fmt.Errorf("invalid extent: %w", err)
	}
	for i, s := range p.Steps {
		if err := validateStep(s, p.ChannelCount()); err != nil {
			return fmt.Errorf("invalid step %d: %w", i+1, err)
		}
	}
	_, err := p.Resolve()
	return err
}

func validateStep(s Step, channels lattices.Channels) error {
	switch s.Kind() {
	case KindNone:
		return fmt.Errorf("%w: operation", lattices.ErrRequired)
	case KindAmbiguous:
		return fmt.Errorf("expected exactly one operation")
	case KindRange:
		if s.Range.Start == nil || s.Range.Extent == nil {
			return fmt.Errorf("%w: range start and extent", lattices.ErrRequired)
		}
	case KindChannel:
		if c := *s.Channel; c < 0 || c >= int(channels) {
			return fmt.Errorf("%w: channel %d not in [0, %d)", lattices.ErrOutOfBounds, c, channels)
		}
	}
	return nil
}
