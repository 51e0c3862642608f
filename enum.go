// Copyright (c) 2024 Alexey Mayshev. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package refdict

// Enumerator walks the live entries of a Dict in entry-slot order, skipping
// recycled slots. It reads the backing arrays directly rather than taking a
// snapshot: the Dict must not be structurally mutated while an Enumerator is
// in use.
type Enumerator[K comparable, V any] struct {
	d     *Dict[K, V]
	index int
	key   K
	value V
}

// Enumerate returns an Enumerator positioned before the first live entry.
func (d *Dict[K, V]) Enumerate() Enumerator[K, V] {
	return Enumerator[K, V]{d: d}
}

// Next advances to the next live entry and reports whether one exists.
func (e *Enumerator[K, V]) Next() bool {
	for e.index < e.d.count {
		ent := &e.d.entries[e.index]
		e.index++
		if !ent.isFree() {
			e.key = ent.key
			e.value = ent.value
			return true
		}
	}
	return false
}

// Key returns the key of the current entry.
func (e *Enumerator[K, V]) Key() K {
	return e.key
}

// Value returns the value of the current entry.
func (e *Enumerator[K, V]) Value() V {
	return e.value
}

// Range calls fn for every live entry until fn returns false. Like Enumerate
// it must not observe structural mutation: fn must not insert into, delete
// from, or clear the Dict.
func (d *Dict[K, V]) Range(fn func(key K, value V) bool) {
	for i := 0; i < d.count; i++ {
		e := &d.entries[i]
		if e.isFree() {
			continue
		}
		if !fn(e.key, e.value) {
			return
		}
	}
}
