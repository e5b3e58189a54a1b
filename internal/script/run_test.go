// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, c Comparator, src string) (string, *test.Hook) {
	t.Helper()
	ops, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	var out bytes.Buffer
	r := NewRunner(c, &out, logger.WithField("scope", "TEST"))
	require.NoError(t, r.Run(ops))
	return out.String(), hook
}

func TestRun(t *testing.T) {
	out, _ := run(t, Numeric, `
set 5 e
set 3 c
set 8 h
set 1 a
set 4 d
dump
min
max
len
get 4
get 6
has 1
has 6
keys
values
set 4 D
delete 5
delete 42
dump
clear
len
min
dump
`)
	assert.Equal(t, `SoMap 5 { 1 => a, 3 => c, 4 => d, 5 => e, 8 => h }
1 => a
8 => h
5
d
(absent)
true
false
1 3 4 5 8
a c d e h
SoMap 4 { 1 => a, 3 => c, 4 => D, 8 => h }
0
(empty)
SoMap 0 { }
`, out)
}

func TestRunOrder(t *testing.T) {
	src := "set 10 x\nset 9 y\nkeys\n"
	out, _ := run(t, Lexical, src)
	assert.Equal(t, "10 9\n", out)
	out, _ = run(t, Numeric, src)
	assert.Equal(t, "9 10\n", out)
}

func TestRunLogs(t *testing.T) {
	_, hook := run(t, Lexical, "set a 1\nset a 2\ndelete b\nclear\n")
	entries := hook.AllEntries()
	require.Len(t, entries, 4)
	assert.Equal(t, "set", entries[0].Message)
	assert.Equal(t, true, entries[0].Data["added"])
	assert.Equal(t, false, entries[1].Data["added"])
	assert.Equal(t, "delete", entries[2].Message)
	assert.Equal(t, false, entries[2].Data["found"])
	assert.Equal(t, 1, entries[3].Data["len"])
	for _, e := range entries {
		assert.Equal(t, logrus.DebugLevel, e.Level)
		assert.Equal(t, "TEST", e.Data["scope"])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRunWriteError(t *testing.T) {
	ops, err := Parse(strings.NewReader("set a 1\nlen\n"))
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()
	r := NewRunner(Lexical, failingWriter{}, logger)
	err = r.Run(ops)
	assert.EqualError(t, err, "line 2: len: disk full")
	assert.Equal(t, 1, r.Map().Len())
}
