// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lattice-inspect resolves view plans and prints the resulting
// structures.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// inspector holds what the commands share.
type inspector struct {
	out    io.Writer
	logger log.Logger
}

func newLogger(w io.Writer, lvl string) log.Logger {
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

func newApp(in *inspector) *kingpin.Application {
	app := kingpin.New("lattice-inspect", "Resolve lattice view plans and inspect their structures.")
	app.HelpFlag.Short('h')

	var logLevel string
	app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("info").EnumVar(&logLevel, "debug", "info", "warn", "error")
	app.PreAction(func(*kingpin.ParseContext) error {
		in.logger = newLogger(os.Stderr, logLevel)
		return nil
	})

	addDescribeCommand(app, in)
	addOffsetsCommand(app, in)
	return app
}

func main() {
	in := &inspector{out: os.Stdout, logger: newLogger(os.Stderr, "info")}
	app := newApp(in)
	if _, err := app.Parse(os.Args[1:]); err != nil {
		level.Error(in.logger).Log("msg", "command failed", "err", err)
		os.Exit(1)
	}
}
