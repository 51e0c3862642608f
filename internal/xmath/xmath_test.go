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

package xmath

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextPrime(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, NextPrime(0))
	require.Equal(t, 3, NextPrime(3))
	require.Equal(t, 7, NextPrime(4))
	require.Equal(t, 1103, NextPrime(1000))

	// Past the growth table NextPrime falls back to searching odd candidates.
	p := NextPrime(7199370)
	require.GreaterOrEqual(t, p, 7199370)
	require.True(t, isPrime(p))
	require.NotEqual(t, 0, (p-1)%hashPrime)
}

func TestExpandPrime(t *testing.T) {
	t.Parallel()

	require.Equal(t, 7, ExpandPrime(3))
	require.Equal(t, 23, ExpandPrime(10))

	p := ExpandPrime(7199369)
	require.GreaterOrEqual(t, p, 2*7199369)
	require.True(t, isPrime(p))
}

func TestIsPrime(t *testing.T) {
	t.Parallel()

	require.True(t, isPrime(2))
	require.True(t, isPrime(3))
	require.True(t, isPrime(7199369))
	require.False(t, isPrime(1))
	require.False(t, isPrime(9))
	require.False(t, isPrime(7199370))

	for _, p := range primes {
		require.True(t, isPrime(p))
	}
}

func TestFastMod(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(42))
	divisors := append([]int{}, primes...)
	divisors = append(divisors, MaxPrime)
	for _, divisor := range divisors {
		d := uint32(divisor)
		m := Multiplier(d)
		for i := 0; i < 100; i++ {
			value := r.Uint32()
			require.Equal(t, value%d, FastMod(value, d, m))
		}
	}
}
