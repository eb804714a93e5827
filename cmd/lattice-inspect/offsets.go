// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"iter"
	"text/tabwriter"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"

	"github.com/nlpodyssey/lattices"
	"github.com/nlpodyssey/lattices/plan"
)

type offsetsOptions struct {
	order    string
	backward bool
	limit    int
}

// addOffsetsCommand adds the offsets command to the application.
func addOffsetsCommand(app *kingpin.Application, in *inspector) {
	var (
		file string
		opts offsetsOptions
	)

	cmd := app.Command("offsets", "Print the buffer offset of each index of the structure resolved from a plan.")
	cmd.Flag("order", "Traversal order: row (last dimension fastest) or col (first dimension fastest).").
		Default("row").EnumVar(&opts.order, "row", "col")
	cmd.Flag("backward", "Visit the indexes in reverse order.").BoolVar(&opts.backward)
	cmd.Flag("limit", "Maximum number of indexes to print, 0 for all.").Default("100").IntVar(&opts.limit)
	cmd.Arg("plan", "Plan file.").Required().ExistingFileVar(&file)

	cmd.Action(func(*kingpin.ParseContext) error {
		p, err := plan.ParseFile(file)
		if err != nil {
			return err
		}
		return in.offsets(p, opts)
	})
}

// offsets prints the index to offset table of the structure resolved
// from p.
func (in *inspector) offsets(p plan.Plan, opts offsetsOptions) error {
	if opts.limit < 0 {
		return fmt.Errorf("invalid negative limit %d", opts.limit)
	}
	s, err := p.Resolve()
	if err != nil {
		return err
	}

	precedence := lattices.ReversePrecedence(s.Rank())
	if opts.order == "col" {
		precedence = lattices.RegularPrecedence(s.Rank())
	}
	loop := lattices.ForwardNd
	if opts.backward {
		loop = lattices.BackwardNd
	}
	seq, err := loop(lattices.RangeOfNd(s.Extent()), precedence)
	if err != nil {
		return err
	}

	color.New(color.Bold).Fprintf(in.out, "Offsets of %s:\n", s)
	tw := tabwriter.NewWriter(in.out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tOFFSET")
	n := writeOffsets(tw, s, seq, opts.limit)
	if err := tw.Flush(); err != nil {
		return err
	}
	if total := s.Extent().Size(); n < total {
		fmt.Fprintf(in.out, "... %d more\n", total-n)
	}
	level.Debug(in.logger).Log("msg", "printed offsets", "plan", p.Name, "count", n)
	return nil
}

// writeOffsets writes one row per index of seq, stopping after limit rows
// unless limit is 0, and returns the number of rows written.
func writeOffsets(tw *tabwriter.Writer, s lattices.StructureNd, seq iter.Seq[lattices.IndexNd], limit int) int {
	n := 0
	for i := range seq {
		if limit > 0 && n == limit {
			break
		}
		fmt.Fprintf(tw, "%s\t%d\n", i, s.Offset(i))
		n++
	}
	return n
}
