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

// Package refdict provides a hash table with chained buckets over a flat
// entry array, free-list slot recycling, and a fused get-or-add primitive
// that returns a pointer into the value storage. It is built for
// high-frequency insert/lookup/delete cycles where a built-in map's per-key
// allocation and double-probe insert patterns are too expensive.
package refdict

import (
	"github.com/maypok86/refdict/internal/xmath"
)

const (
	// endOfChain terminates a bucket chain. Live entries always keep
	// next >= endOfChain.
	endOfChain = -1
	// freeSlotBase is the bias used to encode free-list links in the next
	// field: a recycled slot stores next = freeSlotBase - successor, so the
	// successor index is recovered as freeSlotBase - next and any next below
	// endOfChain unambiguously marks the slot as free.
	freeSlotBase = -3
)

type entry[K comparable, V any] struct {
	key   K
	value V
	hash  uint32
	next  int
}

func (e *entry[K, V]) isFree() bool {
	return e.next < endOfChain
}

// Dict is a dictionary mapping comparable keys to arbitrary values.
//
// Entries live in a single flat array; buckets hold 1-based indices into it
// (0 means an empty bucket) and collisions are chained through each entry's
// next field. Deleted slots are pushed onto a free list and reused before the
// backing array grows, so the table does not expand under steady churn.
//
// A Dict is not safe for concurrent use. Callers sharing one across
// goroutines must serialize all access externally.
type Dict[K comparable, V any] struct {
	buckets    []int
	entries    []entry[K, V]
	multiplier uint64
	hasher     func(K) uint64
	count      int
	freeList   int
	freeCount  int
}

// New creates an empty Dict sized for the smallest prime capacity that
// satisfies the given options.
func New[K comparable, V any](opts ...Option[K]) *Dict[K, V] {
	o := defaultOptions[K]()
	for _, opt := range opts {
		opt(o)
	}

	d := &Dict[K, V]{
		hasher:   o.hasher,
		freeList: endOfChain,
	}
	d.init(o.capacity)
	return d
}

func (d *Dict[K, V]) init(capacity int) {
	size := xmath.NextPrime(capacity)
	d.buckets = make([]int, size)
	d.entries = make([]entry[K, V], size)
	d.multiplier = xmath.Multiplier(uint32(size))
}

func (d *Dict[K, V]) keyHash(key K) uint32 {
	return uint32(d.hasher(key))
}

// bucket returns a pointer to the bucket slot for hash. The pointer is
// invalidated by resize.
func (d *Dict[K, V]) bucket(hash uint32) *int {
	return &d.buckets[xmath.FastMod(hash, uint32(len(d.buckets)), d.multiplier)]
}

func (d *Dict[K, V]) find(key K, hash uint32) int {
	i := *d.bucket(hash) - 1
	for i >= 0 {
		e := &d.entries[i]
		if e.hash == hash && e.key == key {
			return i
		}
		i = e.next
	}
	return endOfChain
}

// Count returns the number of live entries.
func (d *Dict[K, V]) Count() int {
	return d.count - d.freeCount
}

// Capacity returns the number of allocated entry slots. It grows on resize
// and never shrinks; Delete and Clear leave it untouched.
func (d *Dict[K, V]) Capacity() int {
	return len(d.entries)
}

// Get returns the value stored for key and whether the key is present.
func (d *Dict[K, V]) Get(key K) (V, bool) {
	if i := d.find(key, d.keyHash(key)); i >= 0 {
		return d.entries[i].value, true
	}
	return zeroValue[V](), false
}

// Contains reports whether key is present.
func (d *Dict[K, V]) Contains(key K) bool {
	return d.find(key, d.keyHash(key)) >= 0
}

// MustGet returns the value stored for key. Unlike Get it treats a missing
// key as a contract violation and panics with ErrNotFound.
func (d *Dict[K, V]) MustGet(key K) V {
	i := d.find(key, d.keyHash(key))
	if i < 0 {
		panic(ErrNotFound)
	}
	return d.entries[i].value
}

// GetOrAdd returns a pointer to the value slot for key, inserting a
// zero-valued entry if the key is absent. Lookup and insert share a single
// probe pass, so the caller can test for presence and write the value without
// hashing twice.
//
// The returned pointer aliases the table's internal storage: it stays valid
// only until the next structural mutation (a GetOrAdd that inserts, Delete,
// or Clear) and must not be retained across one.
func (d *Dict[K, V]) GetOrAdd(key K) *V {
	hash := d.keyHash(key)
	b := d.bucket(hash)
	for i := *b - 1; i >= 0; {
		e := &d.entries[i]
		if e.hash == hash && e.key == key {
			return &e.value
		}
		i = e.next
	}

	var index int
	if d.freeCount > 0 {
		index = d.freeList
		d.freeList = freeSlotBase - d.entries[index].next
		d.freeCount--
	} else {
		if d.count == len(d.entries) {
			d.resize(xmath.ExpandPrime(d.count))
			b = d.bucket(hash)
		}
		index = d.count
		d.count++
	}

	// Recycled slots had key and value zeroed on Delete, appended slots are
	// zeroed by allocation, so the value is the zero value either way.
	e := &d.entries[index]
	e.hash = hash
	e.next = *b - 1
	e.key = key
	*b = index + 1
	return &e.value
}

// Delete removes the entry for key and reports whether one was removed. The
// slot is unlinked from its chain, cleared of key and value so the table
// drops any references it held, and pushed onto the free list for reuse.
func (d *Dict[K, V]) Delete(key K) bool {
	hash := d.keyHash(key)
	b := d.bucket(hash)
	prev := endOfChain
	for i := *b - 1; i >= 0; {
		e := &d.entries[i]
		if e.hash == hash && e.key == key {
			if prev < 0 {
				*b = e.next + 1
			} else {
				d.entries[prev].next = e.next
			}
			e.next = freeSlotBase - d.freeList
			e.key = zeroValue[K]()
			e.value = zeroValue[V]()
			d.freeList = i
			d.freeCount++
			return true
		}
		prev = i
		i = e.next
	}
	return false
}

// Clear removes all entries, keeping the allocated capacity. Entry zeroing
// is bounded by the pre-clear occupancy, not by capacity.
func (d *Dict[K, V]) Clear() {
	if d.count == 0 {
		return
	}
	clear(d.buckets)
	clear(d.entries[:d.count])
	d.count = 0
	d.freeList = endOfChain
	d.freeCount = 0
}

// resize rehashes every live entry into new arrays of the given prime length
// and rebuilds the bucket chains. Entry slots keep their indices, so free
// list links survive unchanged.
func (d *Dict[K, V]) resize(size int) {
	entries := make([]entry[K, V], size)
	copy(entries, d.entries[:d.count])
	d.entries = entries
	d.buckets = make([]int, size)
	d.multiplier = xmath.Multiplier(uint32(size))

	for i := 0; i < d.count; i++ {
		e := &d.entries[i]
		if e.isFree() {
			continue
		}
		b := d.bucket(e.hash)
		e.next = *b - 1
		*b = i + 1
	}
}

func zeroValue[V any]() V {
	var zero V
	return zero
}
