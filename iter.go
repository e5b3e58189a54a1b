// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package somap

import "iter"

// ForEach calls f for every entry of m in ascending key order.
// index is the zero-based position of the entry in that order.
// f must not modify m.
func (m *Map[K, V]) ForEach(f func(val V, key K, index int)) {
	forEach(m._root, f)
}

// ForEach calls f for every entry of m in ascending key order.
// index is the zero-based position of the entry in that order.
// f must not modify m.
func (m *MapFunc[K, V]) ForEach(f func(val V, key K, index int)) {
	if m == nil {
		return
	}
	forEach(m._root, f)
}

func forEach[K, V any](root *node[K, V], f func(V, K, int)) {
	i := 0
	for k, v := range ascend(root) {
		f(v, k, i)
		i++
	}
}

// All returns an iterator over the map m from smallest to largest key.
// Behaviour is undefined if m is modified during the iteration;
// iterate over [Map.Entries] instead if that is needed.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return ascend(m._root)
}

// All returns an iterator over the map m from smallest to largest key.
// Behaviour is undefined if m is modified during the iteration;
// iterate over [MapFunc.Entries] instead if that is needed.
func (m *MapFunc[K, V]) All() iter.Seq2[K, V] {
	if m == nil {
		return ascend[K, V](nil)
	}
	return ascend(m._root)
}

// Backward returns an iterator over the map m from largest to smallest key.
// Behaviour is undefined if m is modified during the iteration.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return descend(m._root)
}

// Backward returns an iterator over the map m from largest to smallest key.
// Behaviour is undefined if m is modified during the iteration.
func (m *MapFunc[K, V]) Backward() iter.Seq2[K, V] {
	if m == nil {
		return descend[K, V](nil)
	}
	return descend(m._root)
}

// ascend returns an in-order iterator over the subtree rooted at root.
// The pending ancestors live on an explicit stack, so the depth of the
// tree is bounded by the heap rather than the goroutine stack.
func ascend[K, V any](root *node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var stack []*node[K, V]
		x := root
		for x != nil || len(stack) > 0 {
			for ; x != nil; x = x.left {
				stack = append(stack, x)
			}
			x = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(x.key, x.val) {
				return
			}
			x = x.right
		}
	}
}

// descend is the mirror image of ascend.
func descend[K, V any](root *node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var stack []*node[K, V]
		x := root
		for x != nil || len(stack) > 0 {
			for ; x != nil; x = x.right {
				stack = append(stack, x)
			}
			x = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(x.key, x.val) {
				return
			}
			x = x.left
		}
	}
}

// Entries returns a snapshot of the entries of m in ascending key order.
// Later changes to m do not affect the returned Iter.
func (m *Map[K, V]) Entries() *Iter[Entry[K, V]] {
	return snapshot(m._root, m._len, func(k K, v V) Entry[K, V] { return Entry[K, V]{k, v} })
}

// Entries returns a snapshot of the entries of m in ascending key order.
// Later changes to m do not affect the returned Iter.
func (m *MapFunc[K, V]) Entries() *Iter[Entry[K, V]] {
	return snapshot(m.rootOrNil(), m.Len(), func(k K, v V) Entry[K, V] { return Entry[K, V]{k, v} })
}

// Keys returns a snapshot of the keys of m in ascending order.
func (m *Map[K, V]) Keys() *Iter[K] {
	return snapshot(m._root, m._len, func(k K, _ V) K { return k })
}

// Keys returns a snapshot of the keys of m in ascending order.
func (m *MapFunc[K, V]) Keys() *Iter[K] {
	return snapshot(m.rootOrNil(), m.Len(), func(k K, _ V) K { return k })
}

// Values returns a snapshot of the values of m in ascending key order.
func (m *Map[K, V]) Values() *Iter[V] {
	return snapshot(m._root, m._len, func(_ K, v V) V { return v })
}

// Values returns a snapshot of the values of m in ascending key order.
func (m *MapFunc[K, V]) Values() *Iter[V] {
	return snapshot(m.rootOrNil(), m.Len(), func(_ K, v V) V { return v })
}

func (m *MapFunc[K, V]) rootOrNil() *node[K, V] {
	if m == nil {
		return nil
	}
	return m._root
}

func snapshot[K, V, T any](root *node[K, V], n int, f func(K, V) T) *Iter[T] {
	items := make([]T, 0, n)
	for k, v := range ascend(root) {
		items = append(items, f(k, v))
	}
	return &Iter[T]{items: items}
}

// An Iter is a finite sequence captured from a map at the time it was created.
//
// Typical use is
//
//	for it := m.Keys(); ; {
//		k, ok := it.Next()
//		if !ok {
//			break
//		}
//		...
//	}
//
// or, equivalently, ranging over it.All().
type Iter[T any] struct {
	items []T
	i     int
}

// Next returns the next element and true,
// or the zero value and false if there are no more elements.
func (it *Iter[T]) Next() (T, bool) {
	if it.i >= len(it.items) {
		var zero T
		return zero, false
	}
	it.i++
	return it.items[it.i-1], true
}

// Close discards the elements not yet returned by Next.
// Next reports false until the Iter is Reset.
func (it *Iter[T]) Close() {
	it.i = len(it.items)
}

// Reset rewinds the Iter to its first element.
func (it *Iter[T]) Reset() {
	it.i = 0
}

// Len returns the number of elements not yet returned by Next.
func (it *Iter[T]) Len() int {
	return len(it.items) - it.i
}

// All returns an iterator over the remaining elements of it.
// Stopping the iteration early closes it.
func (it *Iter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				it.Close()
				return
			}
		}
	}
}
