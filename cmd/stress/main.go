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

// Command stress drives a Dict through long randomized insert/delete cycles
// and checks its counters, membership, and capacity growth against a FIFO of
// the keys known to be live.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/gammazero/deque"

	"github.com/maypok86/refdict"
)

func main() {
	operations := flag.Int("ops", 5_000_000, "number of operations to run")
	maxLive := flag.Int("live", 1<<16, "maximum number of live keys")
	seed := flag.Int64("seed", 42, "prng seed")
	flag.Parse()

	r := rand.New(rand.NewSource(*seed))
	d := refdict.New[int64, int64]()
	live := deque.New[int64](*maxLive)

	var nextKey int64
	inserts, deletes, grows := 0, 0, 0
	capacity := d.Capacity()

	for i := 0; i < *operations; i++ {
		insert := live.Len() == 0 || (live.Len() < *maxLive && r.Intn(2) == 0)
		if insert {
			key := nextKey
			nextKey++
			*d.GetOrAdd(key) = key * 2
			live.PushBack(key)
			inserts++
		} else {
			key := live.PopFront()
			if !d.Delete(key) {
				log.Fatalf("op %d: key %d should be present", i, key)
			}
			deletes++
		}

		if d.Count() != live.Len() {
			log.Fatalf("op %d: count %d diverged from live set %d", i, d.Count(), live.Len())
		}
		if live.Len() > 0 {
			oldest := live.Front()
			v, ok := d.Get(oldest)
			if !ok || v != oldest*2 {
				log.Fatalf("op %d: oldest key %d lookup failed: %d %t", i, oldest, v, ok)
			}
		}
		if c := d.Capacity(); c != capacity {
			grows++
			capacity = c
		}
	}

	// Once the live set saturates, churn must run entirely on the free list.
	steady := d.Capacity()
	for i := 0; i < *maxLive && live.Len() > 0; i++ {
		key := live.PopFront()
		if !d.Delete(key) {
			log.Fatalf("churn: key %d should be present", key)
		}
		*d.GetOrAdd(nextKey) = nextKey * 2
		live.PushBack(nextKey)
		nextKey++
	}
	if d.Capacity() != steady {
		log.Fatalf("steady-state churn grew the table: %d -> %d", steady, d.Capacity())
	}

	fmt.Printf("ok: ops=%d inserts=%d deletes=%d live=%d capacity=%d grows=%d\n",
		*operations, inserts, deletes, d.Count(), d.Capacity(), grows)
}
