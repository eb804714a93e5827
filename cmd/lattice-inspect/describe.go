// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"

	"github.com/nlpodyssey/lattices/plan"
)

// addDescribeCommand adds the describe command to the application.
func addDescribeCommand(app *kingpin.Application, in *inspector) {
	var files []string

	cmd := app.Command("describe", "Print the source and the resolved structure of each plan.")
	cmd.Arg("plan", "Plan files.").Required().ExistingFilesVar(&files)

	cmd.Action(func(*kingpin.ParseContext) error {
		for _, f := range files {
			p, err := plan.ParseFile(f)
			if err != nil {
				return err
			}
			if err := in.describe(p); err != nil {
				return fmt.Errorf("plan %q: %w", p.Name, err)
			}
		}
		return nil
	})
}

// describe prints the source structure of p, its steps and the structure
// they resolve to.
func (in *inspector) describe(p plan.Plan) error {
	src, err := p.Source()
	if err != nil {
		return err
	}
	s, err := p.Resolve()
	if err != nil {
		return err
	}
	byteSize, err := p.ByteSize()
	if err != nil {
		return err
	}
	level.Debug(in.logger).Log("msg", "resolved plan", "plan", p.Name, "steps", len(p.Steps))

	bold := color.New(color.Bold)
	bold.Fprintf(in.out, "Plan %s:\n", p.Name)
	fmt.Fprintf(in.out,
		"\tsource: extent %s, %s elements, %d channels, %s (%s)\n",
		src.Extent(),
		humanize.Comma(int64(src.Extent().Size())),
		p.ChannelCount(),
		humanize.Bytes(uint64(byteSize)),
		p.DType,
	)
	for i, step := range p.Steps {
		fmt.Fprintf(in.out, "\tstep %d: %s\n", i+1, step.Kind())
	}

	bold.Fprintln(in.out, "Structure:")
	fmt.Fprintf(in.out,
		"\textent %s, %s elements\n\tstart %s, stride %s, channel %d\n",
		s.Extent(),
		humanize.Comma(int64(s.Extent().Size())),
		s.Layout().Start(),
		s.Layout().Stride(),
		s.Channel(),
	)
	if lo, hi, ok := s.Span(); ok {
		fmt.Fprintf(in.out, "\toffsets %d to %d\n", lo, hi)
	} else {
		fmt.Fprintln(in.out, "\tno addressable offsets")
	}
	return nil
}
