// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package somap implements in-memory sorted maps backed by a binary search tree.
// [Map][K, V] is suitable for ordered types K,
// while [MapFunc][K, V] supports arbitrary keys and comparison functions.
//
// The tree is not balanced: its depth depends only on the order in which keys
// are inserted, and a sorted insertion order degenerates it into a list.
// None of the operations recurse, so a deep tree costs time but never
// exhausts the goroutine stack.
//
// Maps are not safe for concurrent use.
package somap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
)

// A Map is a map[K]V ordered according to K's standard Go ordering.
// The zero value of a Map is an empty Map ready to use.
type Map[K cmp.Ordered, V any] struct {
	_root *node[K, V]
	_len  int
}

// A MapFunc is a map[K]V ordered according to an arbitrary comparison function.
// The zero value of a MapFunc is not meaningful since it has no comparison function.
// Use [NewMapFunc] to create a [MapFunc].
// A nil *MapFunc, like a nil Go map, can be read but not written and contains no entries.
//
// The comparison function must be a strict total order and must not change
// its answers over the life of the map. An inconsistent function leaves the
// map in an unspecified state; it is not detected.
type MapFunc[K, V any] struct {
	_root *node[K, V]
	_len  int
	cmp   func(K, K) int
}

// An Entry is a key-value pair.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// A node is a node in the tree. It owns its children.
type node[K, V any] struct {
	left  *node[K, V]
	right *node[K, V]
	key   K
	val   V
}

// NewMap returns a new Map[K, V] holding entries.
// Entries are set in order, so a later duplicate key wins.
func NewMap[K cmp.Ordered, V any](entries ...Entry[K, V]) *Map[K, V] {
	m := new(Map[K, V])
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// NewMapFunc returns a new MapFunc[K, V] ordered according to cmp and holding entries.
// Entries are set in order, so a later duplicate key wins.
// NewMapFunc panics if cmp is nil.
func NewMapFunc[K, V any](cmp func(K, K) int, entries ...Entry[K, V]) *MapFunc[K, V] {
	if cmp == nil {
		panic("somap: nil comparison function")
	}
	m := &MapFunc[K, V]{cmp: cmp}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// somap is the interface implemented by both Map[K, V] and MapFunc[K, V]
// that enables a common implementation of the map operations.
type somap[K, V any] interface {
	// root returns &m._root; the caller can read or write *m.root().
	root() **node[K, V]

	// length returns &m._len; the caller keeps it equal to the node count.
	length() *int

	// find reports where a node with the key would be: at *pos.
	// If *pos != nil, then key is present in the tree;
	// otherwise *pos is where a new node with the key should be attached.
	find(key K) (pos **node[K, V])
}

func (m *Map[K, V]) root() **node[K, V]     { return &m._root }
func (m *MapFunc[K, V]) root() **node[K, V] { return &m._root }

func (m *Map[K, V]) length() *int     { return &m._len }
func (m *MapFunc[K, V]) length() *int { return &m._len }

// find looks up the key k in the map.
// It returns the link that points, or would point, to k's node.
// *pos is non-nil if k is present, nil if k is missing.
func (m *Map[K, V]) find(k K) (pos **node[K, V]) {
	pos = &m._root
	for x := *pos; x != nil; x = *pos {
		if x.key == k {
			break
		}
		if x.key > k {
			pos = &x.left
		} else {
			pos = &x.right
		}
	}
	return pos
}

// find is the same as for Map[K, V] but using m.cmp.
func (m *MapFunc[K, V]) find(k K) (pos **node[K, V]) {
	pos = &m._root
	for x := *pos; x != nil; x = *pos {
		c := m.cmp(x.key, k)
		if c == 0 {
			break
		}
		if c > 0 {
			pos = &x.left
		} else {
			pos = &x.right
		}
	}
	return pos
}

// Get returns the value of m[key] and reports whether it exists.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return get(m, key)
}

// Get returns the value of m[key] and reports whether it exists.
func (m *MapFunc[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	return get(m, key)
}

func get[K, V any](m somap[K, V], key K) (V, bool) {
	if x := *m.find(key); x != nil {
		return x.val, true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present in m.
// A key whose value is the zero value of V is present.
func (m *Map[K, V]) Has(key K) bool {
	return *m.find(key) != nil
}

// Has reports whether key is present in m.
// A key whose value is the zero value of V is present.
func (m *MapFunc[K, V]) Has(key K) bool {
	return m != nil && *m.find(key) != nil
}

// Set sets m[key] = val.
// If the entry was present, Set returns the former value and false.
// Otherwise it returns the zero value and true.
func (m *Map[K, V]) Set(key K, val V) (old V, added bool) {
	return set(m, key, val)
}

// Set sets m[key] = val.
// If the entry was present, Set returns the former value and false.
// Otherwise it returns the zero value and true.
func (m *MapFunc[K, V]) Set(key K, val V) (old V, added bool) {
	return set(m, key, val)
}

func set[K, V any](m somap[K, V], key K, val V) (V, bool) {
	pos := m.find(key)
	if x := *pos; x != nil {
		old := x.val
		x.val = val
		return old, false
	}
	*pos = &node[K, V]{key: key, val: val}
	*m.length()++
	var z V
	return z, true
}

// Insert sets every key-value pair from seq into m, in the order seq yields them.
func (m *Map[K, V]) Insert(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Set(k, v)
	}
}

// Insert sets every key-value pair from seq into m, in the order seq yields them.
func (m *MapFunc[K, V]) Insert(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Set(k, v)
	}
}

// Delete deletes m[key] if it exists and reports whether it did.
func (m *Map[K, V]) Delete(key K) bool {
	return _delete(m, key)
}

// Delete deletes m[key] if it exists and reports whether it did.
func (m *MapFunc[K, V]) Delete(key K) bool {
	if m == nil {
		return false
	}
	return _delete(m, key)
}

func _delete[K, V any](m somap[K, V], key K) bool {
	pos := m.find(key)
	x := *pos
	if x == nil {
		return false
	}
	switch {
	case x.left == nil:
		*pos = x.right
	case x.right == nil:
		*pos = x.left
	default:
		// Two children: x takes over its successor's entry,
		// and the successor, which has no left child, is spliced out.
		spos := &x.right
		for (*spos).left != nil {
			spos = &(*spos).left
		}
		s := *spos
		x.key, x.val = s.key, s.val
		*spos = s.right
	}
	*m.length()--
	return true
}

// Clear deletes m[k] for all keys in m.
func (m *Map[K, V]) Clear() {
	m._root = nil
	m._len = 0
}

// Clear deletes m[k] for all keys in m.
func (m *MapFunc[K, V]) Clear() {
	m._root = nil
	m._len = 0
}

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int {
	return m._len
}

// Len returns the number of entries in m.
func (m *MapFunc[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m._len
}

// IsEmpty reports whether m has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.Len() == 0 }

// IsEmpty reports whether m has no entries.
func (m *MapFunc[K, V]) IsEmpty() bool { return m.Len() == 0 }

// Min returns the minimum key in m, its value, and true.
// If m is empty, the last return value is false.
func (m *Map[K, V]) Min() (K, V, bool) {
	return _min(m._root)
}

// Min returns the minimum key in m, its value, and true.
// If m is empty, the last return value is false.
func (m *MapFunc[K, V]) Min() (K, V, bool) {
	if m == nil {
		return _min[K, V](nil)
	}
	return _min(m._root)
}

func _min[K, V any](x *node[K, V]) (K, V, bool) {
	if x == nil {
		var (
			zk K
			zv V
		)
		return zk, zv, false
	}
	x = x.minNode()
	return x.key, x.val, true
}

// minNode returns the node in x's subtree with the smallest key.
// x must not be nil.
func (x *node[K, V]) minNode() *node[K, V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// Max returns the maximum key in m, its value, and true.
// If m is empty, the last return value is false.
func (m *Map[K, V]) Max() (K, V, bool) {
	return _max(m._root)
}

// Max returns the maximum key in m, its value, and true.
// If m is empty, the last return value is false.
func (m *MapFunc[K, V]) Max() (K, V, bool) {
	if m == nil {
		return _max[K, V](nil)
	}
	return _max(m._root)
}

func _max[K, V any](x *node[K, V]) (K, V, bool) {
	if x == nil {
		var (
			zk K
			zv V
		)
		return zk, zv, false
	}
	x = x.maxNode()
	return x.key, x.val, true
}

// maxNode returns the node in x's subtree with the largest key.
// x must not be nil.
func (x *node[K, V]) maxNode() *node[K, V] {
	for x.right != nil {
		x = x.right
	}
	return x
}

// Clone returns a copy of m with the same tree shape.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{_root: m._root.clone(), _len: m._len}
}

// Clone returns a copy of m with the same tree shape.
func (m *MapFunc[K, V]) Clone() *MapFunc[K, V] {
	m2 := NewMapFunc[K, V](m.cmp)
	m2._root = m._root.clone()
	m2._len = m._len
	return m2
}

// clone copies the subtree rooted at x.
func (x *node[K, V]) clone() *node[K, V] {
	if x == nil {
		return nil
	}
	type pair struct{ src, dst *node[K, V] }
	root := &node[K, V]{key: x.key, val: x.val}
	stack := []pair{{x, root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if l := p.src.left; l != nil {
			p.dst.left = &node[K, V]{key: l.key, val: l.val}
			stack = append(stack, pair{l, p.dst.left})
		}
		if r := p.src.right; r != nil {
			p.dst.right = &node[K, V]{key: r.key, val: r.val}
			stack = append(stack, pair{r, p.dst.right})
		}
	}
	return root
}

// String returns a diagnostic rendering of m, such as
//
//	SoMap 2 { 1 => one, 2 => two }
//
// It is not meant to be parsed.
func (m *Map[K, V]) String() string {
	return render(m._len, m._root)
}

// String returns a diagnostic rendering of m, formatted like [Map.String].
func (m *MapFunc[K, V]) String() string {
	if m == nil {
		return render[K, V](0, nil)
	}
	return render(m._len, m._root)
}

func render[K, V any](n int, root *node[K, V]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SoMap %d {", n)
	i := 0
	for k, v := range ascend(root) {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, " %v => %v", k, v)
		i++
	}
	b.WriteString(" }")
	return b.String()
}
