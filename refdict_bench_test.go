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
	"strconv"
	"testing"
)

const benchEntries = 1 << 16

func BenchmarkDict_Get(b *testing.B) {
	d := New[string, int]()
	keys := make([]string, benchEntries)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
		*d.GetOrAdd(keys[i]) = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := d.Get(keys[i&(benchEntries-1)]); !ok {
			b.Fatal("key not found")
		}
	}
}

func BenchmarkDict_GetOrAdd(b *testing.B) {
	d := New[int, int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		*d.GetOrAdd(i & (benchEntries - 1)) = i
	}
}

func BenchmarkDict_Churn(b *testing.B) {
	d := New[int, int](WithCapacity[int](benchEntries))
	for i := 0; i < benchEntries; i++ {
		*d.GetOrAdd(i) = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Delete(i & (benchEntries - 1))
		*d.GetOrAdd(i & (benchEntries - 1)) = i
	}
}
