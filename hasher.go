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

import (
	"unsafe"

	"github.com/dolthub/maphash"
	"github.com/zeebo/xxh3"
)

// defaultHasher hashes string keys with xxh3 directly and falls back to a
// runtime-seeded maphash for every other comparable key type.
type defaultHasher[K comparable] struct {
	inner       maphash.Hasher[K]
	keyIsString bool
}

func newDefaultHasher[K comparable]() defaultHasher[K] {
	h := defaultHasher[K]{}

	var key K
	switch (any(key)).(type) {
	case string:
		h.keyIsString = true
	default:
		h.inner = maphash.NewHasher[K]()
	}

	return h
}

func (h defaultHasher[K]) hash(key K) uint64 {
	if h.keyIsString {
		return xxh3.HashString(*(*string)(unsafe.Pointer(&key)))
	}
	return h.inner.Hash(key)
}
