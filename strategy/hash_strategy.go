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
	"github.com/wayfind-dev/wayfind/cache"
	"github.com/wayfind-dev/wayfind/internal/pathutil"
	"github.com/wayfind-dev/wayfind/route"
)

// minBloomRoutes is the smallest static route count at which the bloom
// filter pays for itself; below it, the map lookup it would guard is
// already as cheap as hashing the key twice, so Find skips straight to the
// map.
const minBloomRoutes = 10

// hashStrategy is an O(1) exact-match table for purely static routes,
// keyed on "METHOD::normalized-path". A bloom filter guards the common
// miss case so a lookup for a path that was never registered rejects
// without touching the map at all, once the route count justifies it (see
// minBloomRoutes). Routes containing a dynamic or wildcard segment cannot
// be represented here; Add silently drops them, and nothing checks a route
// set for such routes before this strategy is selected. hybridStrategy uses
// the same isStatic test and sends those routes to a radix tree instead.
type hashStrategy struct {
	routes    map[string]*route.Route
	filter    *bloomFilter
	validator *route.Validator
}

func newHashStrategy(validationCacheSize int) *hashStrategy {
	return &hashStrategy{
		routes:    make(map[string]*route.Route, 64),
		filter:    newBloomFilterForLoad(64, bloomDefaultFalsePositiveRate),
		validator: route.NewValidator(validationCacheSize),
	}
}

func (s *hashStrategy) Add(r *route.Route) {
	if !isStatic(r) {
		return
	}
	for _, m := range r.Methods() {
		key := hashKey(m, r.Path())
		s.routes[key] = r
		s.filter.add(key)
	}
}

func (s *hashStrategy) Find(method, path string) (*route.Route, map[string]string, bool) {
	key := hashKey(method, path)
	if len(s.routes) >= minBloomRoutes && !s.filter.mightContain(key) {
		return nil, nil, false
	}

	r, ok := s.routes[key]
	if !ok {
		return nil, nil, false
	}

	merged, err := s.validator.Validate(r, nil)
	if err != nil {
		return nil, nil, false
	}
	return r, merged, true
}

// TokenizationStats reports a zero Stats: hashStrategy keys directly on the
// raw method/path string and never tokenizes.
func (s *hashStrategy) TokenizationStats() cache.Stats { return cache.Stats{} }

// ValidationStats reports the constraint-validation cache's hit/miss
// counters.
func (s *hashStrategy) ValidationStats() cache.Stats { return s.validator.Stats() }

func isStatic(r *route.Route) bool {
	for _, tok := range r.Tokens() {
		if tok.Kind != route.TokenStatic {
			return false
		}
	}
	return true
}

func hashKey(method, path string) string {
	return method + "::" + pathutil.Normalize(path)
}
