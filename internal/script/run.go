// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jba/somap"
)

// A Runner executes operations against a single map,
// writing one line to its output for every query.
type Runner struct {
	m   *somap.MapFunc[string, string]
	out io.Writer
	log logrus.FieldLogger
}

// NewRunner returns a Runner over an empty map ordered by c.
func NewRunner(c Comparator, out io.Writer, log logrus.FieldLogger) *Runner {
	return &Runner{
		m:   somap.NewMapFunc[string, string](c),
		out: out,
		log: log,
	}
}

// Map returns the map the Runner operates on.
func (r *Runner) Map() *somap.MapFunc[string, string] {
	return r.m
}

// Run executes ops in order, stopping at the first failure to write output.
func (r *Runner) Run(ops []Op) error {
	for _, op := range ops {
		if err := r.exec(op); err != nil {
			return errors.Wrapf(err, "line %d: %s", op.Line, op.Verb)
		}
	}
	return nil
}

func (r *Runner) exec(op Op) error {
	log := r.log.WithField("line", op.Line)
	switch op.Verb {
	case Set:
		_, added := r.m.Set(op.Key, op.Value)
		log.WithFields(logrus.Fields{"key": op.Key, "added": added}).Debug("set")
		return nil
	case Delete:
		found := r.m.Delete(op.Key)
		log.WithFields(logrus.Fields{"key": op.Key, "found": found}).Debug("delete")
		return nil
	case Clear:
		log.WithField("len", r.m.Len()).Debug("clear")
		r.m.Clear()
		return nil
	case Get:
		if v, ok := r.m.Get(op.Key); ok {
			return r.println(v)
		}
		return r.println("(absent)")
	case Has:
		return r.println(r.m.Has(op.Key))
	case Min:
		return r.printEntry(r.m.Min())
	case Max:
		return r.printEntry(r.m.Max())
	case Len:
		return r.println(r.m.Len())
	case Dump:
		return r.println(r.m.String())
	case Keys:
		return r.printJoined(r.m.Keys().All())
	case Values:
		return r.printJoined(r.m.Values().All())
	}
	return errors.Errorf("unknown operation %q", op.Verb)
}

func (r *Runner) println(v any) error {
	_, err := fmt.Fprintln(r.out, v)
	return err
}

func (r *Runner) printEntry(k, v string, ok bool) error {
	if !ok {
		return r.println("(empty)")
	}
	return r.println(k + " => " + v)
}

func (r *Runner) printJoined(seq iter.Seq[string]) error {
	var parts []string
	for s := range seq {
		parts = append(parts, s)
	}
	return r.println(strings.Join(parts, " "))
}
