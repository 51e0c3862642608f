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

import "errors"

var (
	// ErrNotFound is carried by the panic raised from Dict.MustGet when no
	// entry exists for the requested key.
	ErrNotFound = errors.New("refdict: key not found")

	errIllegalCapacity = errors.New("refdict: capacity should be non-negative")
	errNilHasher       = errors.New("refdict: hasher should not be nil")
)

// Option configures a Dict during construction.
type Option[K comparable] func(*options[K])

type options[K comparable] struct {
	capacity int
	hasher   func(K) uint64
}

func defaultOptions[K comparable]() *options[K] {
	h := newDefaultHasher[K]()
	return &options[K]{
		hasher: h.hash,
	}
}

// WithCapacity pre-sizes the dictionary for at least capacity entries,
// avoiding resizes during an initial fill. Panics if capacity is negative.
func WithCapacity[K comparable](capacity int) Option[K] {
	return func(o *options[K]) {
		if capacity < 0 {
			panic(errIllegalCapacity)
		}
		o.capacity = capacity
	}
}

// WithHasher replaces the default hash function. The hasher must be
// deterministic for the lifetime of the dictionary: equal keys must always
// produce equal hashes. Panics if hasher is nil.
func WithHasher[K comparable](hasher func(K) uint64) Option[K] {
	return func(o *options[K]) {
		if hasher == nil {
			panic(errNilHasher)
		}
		o.hasher = hasher
	}
}
