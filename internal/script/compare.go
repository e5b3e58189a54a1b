// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Comparator orders map keys.
type Comparator func(a, b string) int

// Lexical orders keys bytewise.
func Lexical(a, b string) int {
	return strings.Compare(a, b)
}

// Numeric orders keys that parse as integers by value, ahead of all other keys.
// Keys that do not parse are ordered lexically among themselves.
// Equal numbers with different spellings, such as "7" and "07", are ordered
// lexically so that distinct keys never compare equal.
func Numeric(a, b string) int {
	x, errA := strconv.ParseInt(a, 10, 64)
	y, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		if c := cmp.Compare(x, y); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// ComparatorByName returns the comparator called name: "lexical" or "numeric".
func ComparatorByName(name string) (Comparator, error) {
	switch name {
	case "", "lexical":
		return Lexical, nil
	case "numeric":
		return Numeric, nil
	}
	return nil, errors.Errorf("unknown key order %q", name)
}
