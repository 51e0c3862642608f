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

// Package xmath provides prime sizing and fast-modulo helpers for hash tables.
package xmath

import "math"

// primes is the growth sequence for bucket array lengths. Every value is
// prime and stays away from powers of two, which keeps modulo reduction well
// distributed even for hash functions with poor low-bit entropy.
var primes = []int{
	3, 7, 11, 17, 23, 29, 37, 47, 59, 71, 89, 107, 131, 163, 197, 239, 293,
	353, 431, 521, 631, 761, 919, 1103, 1327, 1597, 1931, 2333, 2801, 3371,
	4049, 4861, 5839, 7013, 8419, 10103, 12143, 14591, 17519, 21023, 25229,
	30293, 36353, 43627, 52361, 62851, 75431, 90523, 108631, 130363, 156437,
	187751, 225307, 270371, 324449, 389357, 467237, 560689, 672827, 807403,
	968897, 1162687, 1395263, 1674319, 2009191, 2411033, 2893249, 3471899,
	4166287, 4999559, 5999471, 7199369,
}

const (
	// hashPrime is used to reject candidates that would collide with hash
	// codes produced by common polynomial string hashes.
	hashPrime = 101

	// MaxPrime is the largest table length the sizing helpers will return.
	// It keeps every divisor below 1<<31, the validity bound of FastMod.
	MaxPrime = 0x7fffffc3
)

func isPrime(candidate int) bool {
	if candidate&1 == 0 {
		return candidate == 2
	}
	limit := int(math.Sqrt(float64(candidate)))
	for divisor := 3; divisor <= limit; divisor += 2 {
		if candidate%divisor == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime in the growth sequence that is >= n.
// Past the end of the table it falls back to an odd-candidate search,
// skipping primes of the form k*hashPrime+1.
func NextPrime(n int) int {
	for _, p := range primes {
		if p >= n {
			return p
		}
	}
	for i := n | 1; i < MaxPrime; i += 2 {
		if isPrime(i) && (i-1)%hashPrime != 0 {
			return i
		}
	}
	return MaxPrime
}

// ExpandPrime returns the table length to grow to from count allocated slots:
// the next prime >= 2*count, saturating at MaxPrime.
func ExpandPrime(count int) int {
	newSize := 2 * count
	if newSize > MaxPrime {
		if count >= MaxPrime {
			panic("xmath: table length limit exceeded")
		}
		return MaxPrime
	}
	return NextPrime(newSize)
}

// Multiplier returns the reciprocal FastMod needs for the given divisor.
// It is computed once per table length and reused on every probe.
func Multiplier(divisor uint32) uint64 {
	return ^uint64(0)/uint64(divisor) + 1
}

// FastMod computes value % divisor with a multiply-shift reduction instead of
// hardware division. The divisor must be below 1<<31.
func FastMod(value, divisor uint32, multiplier uint64) uint32 {
	return uint32((((multiplier * uint64(value)) >> 32) + 1) * uint64(divisor) >> 32)
}
