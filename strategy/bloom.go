// Copyright 2025 The Rivaas Authors
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

package strategy

import (
	"hash/fnv"
	"math"
)

// bloomDefaultFalsePositiveRate targets roughly one spurious map probe per
// hundred misses, a reasonable default when the caller hasn't measured its
// own route population's miss rate.
const bloomDefaultFalsePositiveRate = 0.01

// bloomFilter is a probabilistic set used to reject lookups for paths that
// definitely aren't registered before paying for a map lookup. A positive
// test still requires checking the real map: false positives are possible,
// false negatives are not.
//
// Implemented with FNV-1a and a small number of independent seeds, each
// XORed into one precomputed base hash rather than re-hashing per seed.
type bloomFilter struct {
	bits  []uint64
	size  uint64
	seeds []uint64
}

// newBloomFilter creates a filter with size bits and numHashFuncs
// independent hash functions.
func newBloomFilter(size uint64, numHashFuncs int) *bloomFilter {
	bf := &bloomFilter{
		bits:  make([]uint64, (size+63)/64),
		size:  size,
		seeds: make([]uint64, numHashFuncs),
	}
	for i := range numHashFuncs {
		bf.seeds[i] = uint64(i + 1)
	}
	return bf
}

// newBloomFilterForLoad sizes a filter from the standard optimal-bloom
// formulas instead of a fixed bit count: given expectedItems distinct keys
// and a target falsePositiveRate, it picks the bit-array size m and hash
// function count k that minimize wasted memory for that load,
//
//	m = ceil(-n * ln(p) / ln(2)^2)
//	k = max(1, round(m/n * ln(2)))
//
// rather than carrying one hardcoded (size, numHashFuncs) pair sized for
// whatever route count the original caller happened to have in mind.
func newBloomFilterForLoad(expectedItems int, falsePositiveRate float64) *bloomFilter {
	n := float64(max(expectedItems, 1))
	if falsePositiveRate <= 0 || falsePositiveRate >= 1 {
		falsePositiveRate = bloomDefaultFalsePositiveRate
	}

	m := math.Ceil(-n * math.Log(falsePositiveRate) / (math.Ln2 * math.Ln2))
	k := int(math.Round(m / n * math.Ln2))
	if k < 1 {
		k = 1
	}

	return newBloomFilter(uint64(m), k)
}

func (bf *bloomFilter) hashWithSeed(baseHash, seed uint64) uint64 {
	return (baseHash ^ seed) % bf.size
}

// add records key as present.
func (bf *bloomFilter) add(key string) {
	baseHash := fnvHash(key)
	for _, seed := range bf.seeds {
		pos := bf.hashWithSeed(baseHash, seed)
		bf.bits[pos/64] |= 1 << (pos % 64)
	}
}

// mightContain reports whether key could be present. false is a definite
// negative; true only means "check the real map".
func (bf *bloomFilter) mightContain(key string) bool {
	baseHash := fnvHash(key)
	for _, seed := range bf.seeds {
		pos := bf.hashWithSeed(baseHash, seed)
		if bf.bits[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}
	return true
}

func fnvHash(key string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return h.Sum64()
}
