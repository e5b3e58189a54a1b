// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script reads and runs small line-oriented programs against a
// [somap.MapFunc]. Each line holds one operation:
//
//	set <key> <value...>
//	get <key>
//	has <key>
//	delete <key>
//	min | max | len | clear | dump | keys | values
//
// Blank lines and lines starting with '#' are ignored.
package script

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// A Verb names an operation.
type Verb string

const (
	Set    Verb = "set"
	Get    Verb = "get"
	Has    Verb = "has"
	Delete Verb = "delete"
	Min    Verb = "min"
	Max    Verb = "max"
	Len    Verb = "len"
	Clear  Verb = "clear"
	Dump   Verb = "dump"
	Keys   Verb = "keys"
	Values Verb = "values"
)

// arity is the number of fields, verb included, each verb takes.
// Set takes at least that many; the rest are joined into the value.
var arity = map[Verb]int{
	Set:    3,
	Get:    2,
	Has:    2,
	Delete: 2,
	Min:    1,
	Max:    1,
	Len:    1,
	Clear:  1,
	Dump:   1,
	Keys:   1,
	Values: 1,
}

// An Op is one parsed line of a script.
type Op struct {
	Verb  Verb
	Key   string
	Value string
	Line  int
}

// Parse reads a script from r.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		op, err := parseLine(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		op.Line = line
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading script")
	}
	return ops, nil
}

func parseLine(text string) (Op, error) {
	fields := strings.Fields(text)
	verb := Verb(strings.ToLower(fields[0]))
	n, ok := arity[verb]
	if !ok {
		return Op{}, errors.Errorf("unknown operation %q", fields[0])
	}
	if len(fields) < n || (verb != Set && len(fields) > n) {
		return Op{}, errors.Errorf("%s takes %d argument(s), got %d", verb, n-1, len(fields)-1)
	}
	op := Op{Verb: verb}
	if n > 1 {
		op.Key = fields[1]
	}
	if verb == Set {
		op.Value = strings.Join(fields[2:], " ")
	}
	return op, nil
}
