// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command somap replays an operation script against a sorted map
// and prints the result of every query.
//
//	somap [--order=lexical|numeric] [-v] [script]
//
// The script is read from stdin when no file is named.
// See package github.com/jba/somap/internal/script for the script syntax.
package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/thought-machine/go-flags"

	"github.com/jba/somap/internal/script"
)

var opts struct {
	Order   string `long:"order" default:"lexical" choice:"lexical" choice:"numeric" description:"Key ordering"`
	Verbose bool   `short:"v" long:"verbose" description:"Log every mutation to stderr"`
	Args    struct {
		Script string `positional-arg-name:"script" description:"Script to run; stdin if omitted"`
	} `positional-args:"true"`
}

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	log := newLogger(opts.Verbose)
	if err := run(opts.Args.Script, opts.Order, os.Stdin, os.Stdout, log); err != nil {
		log.WithError(err).Error("somap failed")
		os.Exit(1)
	}
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// run reads the script at path, or stdin if path is empty, and executes it.
func run(path, order string, stdin io.Reader, stdout io.Writer, log logrus.FieldLogger) error {
	c, err := script.ComparatorByName(order)
	if err != nil {
		return err
	}
	in := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "opening script")
		}
		defer f.Close()
		in = f
	}
	ops, err := script.Parse(in)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", name(path))
	}
	log.WithField("ops", len(ops)).Debug("parsed script")
	r := script.NewRunner(c, stdout, log.WithField("scope", "SCRIPT"))
	return r.Run(ops)
}

func name(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}
