// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlan(t *testing.T, doc string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(name, []byte(doc), 0o600))
	return name
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	var buf bytes.Buffer
	in := &inspector{out: &buf, logger: log.NewNopLogger()}
	_, err := newApp(in).Parse(args)
	return buf.String(), err
}

const transposed = "extent: [2, 3]\ndtype: u8\nsteps:\n  - transpose: true\n"

func TestDescribe(t *testing.T) {
	name := writePlan(t, transposed)

	out, err := run(t, "describe", name)
	require.NoError(t, err)
	assert.Contains(t, out, "Plan "+name+":\n")
	assert.Contains(t, out, "\tsource: extent [2, 3], 6 elements, 1 channels, 6 B (U8)\n")
	assert.Contains(t, out, "\tstep 1: transpose\n")
	assert.Contains(t, out, "\textent [3, 2], 6 elements\n\tstart (0, 0), stride Stride[1, 3], channel 0\n")
	assert.Contains(t, out, "\toffsets 0 to 5\n")
}

func TestOffsets(t *testing.T) {
	name := writePlan(t, transposed)

	testCases := []struct {
		name string
		args []string
		want string
	}{
		{
			"row limited",
			[]string{"offsets", "--limit=3", name},
			"INDEX   OFFSET\n(0, 0)  0\n(0, 1)  3\n(1, 0)  1\n... 3 more\n",
		},
		{
			"col",
			[]string{"offsets", "--order=col", "--limit=0", name},
			"INDEX   OFFSET\n(0, 0)  0\n(1, 0)  1\n(2, 0)  2\n(0, 1)  3\n(1, 1)  4\n(2, 1)  5\n",
		},
		{
			"row backward",
			[]string{"offsets", "--backward", "--limit=2", name},
			"INDEX   OFFSET\n(2, 1)  5\n(2, 0)  2\n... 4 more\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Contains(t, out, "Offsets of Structure{extent=[3, 2]")
			assert.Contains(t, out, tc.want)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "describe", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	invalid := writePlan(t, "extent: [2, 3]\ndtype: u8\nsteps:\n  - channel: 1\n")
	_, err = run(t, "describe", invalid)
	assert.ErrorContains(t, err, "invalid step 1")

	_, err = run(t, "offsets", "--order=diagonal", writePlan(t, transposed))
	assert.Error(t, err)

	_, err = run(t, "offsets", "--limit=-1", writePlan(t, transposed))
	assert.ErrorContains(t, err, "invalid negative limit -1")
}
