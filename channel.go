// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices

import "fmt"

// Channel is the offset of one component of interleaved data, such as the
// green value of RGB pixels stored side by side in one buffer.
type Channel int

// Channels is the number of interleaved components sharing a buffer.
type Channels int

const (
	// OneChannel is the channel count of plain, non-interleaved data.
	OneChannel Channels = 1
	// ThreeChannels is the channel count of RGB-like data.
	ThreeChannels Channels = 3
)

func (c Channel) validate() error {
	if c < 0 {
		return fmt.Errorf("%w: channel must be >= 0, got %d", ErrOutOfBounds, c)
	}
	return nil
}

func (c Channels) validate() error {
	if c < 1 {
		return fmt.Errorf("%w: channels must be >= 1, got %d", ErrOutOfBounds, c)
	}
	return nil
}
