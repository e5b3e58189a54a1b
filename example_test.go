// Copyright 2024 The Go Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package somap_test

import (
	"fmt"
	"strings"

	"github.com/jba/somap"
)

func ExampleMap_All() {
	var m somap.Map[int, string]
	m.Set(3, "three")
	m.Set(1, "one")
	m.Set(2, "two")

	for k, v := range m.All() {
		fmt.Println(k, v)
	}

	// Output:
	// 1 one
	// 2 two
	// 3 three
}

func ExampleMap_String() {
	m := somap.NewMap(
		somap.Entry[int, string]{Key: 5, Value: "e"},
		somap.Entry[int, string]{Key: 3, Value: "c"},
		somap.Entry[int, string]{Key: 8, Value: "h"},
	)
	fmt.Println(m)
	m.Delete(5)
	fmt.Println(m)

	// Output:
	// SoMap 3 { 3 => c, 5 => e, 8 => h }
	// SoMap 2 { 3 => c, 8 => h }
}

func ExampleMap_Entries() {
	var m somap.Map[string, int]
	m.Set("b", 2)
	m.Set("a", 1)

	it := m.Entries()
	m.Set("c", 3) // not seen by it
	for e := range it.All() {
		fmt.Println(e.Key, e.Value)
	}

	// Output:
	// a 1
	// b 2
}

func ExampleNewMapFunc() {
	m := somap.NewMapFunc[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	m.Set("Banana", 1)
	m.Set("apple", 2)
	m.Set("BANANA", 3)

	m.ForEach(func(v int, k string, i int) {
		fmt.Println(i, k, v)
	})

	// Output:
	// 0 apple 2
	// 1 Banana 3
}
