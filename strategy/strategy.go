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

// Package strategy provides interchangeable route-matching backends behind
// a single interface, so a RouteSet can be built once and matched against
// whichever strategy best suits its route population.
package strategy

import (
	"github.com/wayfind-dev/wayfind/cache"
	"github.com/wayfind-dev/wayfind/route"
)

// Strategy is the pluggable matching backend a RouteSet delegates to. Add is
// only ever called during the build phase, before any Find; implementations
// need not guard against interleaved writes and reads.
type Strategy interface {
	// Add registers r under every one of its methods.
	Add(r *route.Route)
	// Find resolves (method, path) to a route and its extracted parameters.
	Find(method, path string) (*route.Route, map[string]string, bool)
	// TokenizationStats reports the strategy's path-tokenization cache, or
	// a zero Stats if the strategy never tokenizes (e.g. pure hash lookup).
	TokenizationStats() cache.Stats
	// ValidationStats reports the strategy's constraint-validation cache.
	ValidationStats() cache.Stats
}

// Kind identifies which Strategy implementation to build.
type Kind uint8

const (
	// KindRadix is the pure radix tree: every route, static or dynamic,
	// goes through the prefix tree. Always correct; the baseline.
	KindRadix Kind = iota
	// KindHash is an O(1) exact-match table for purely static routes. Any
	// route containing a ":name" or "*name" segment cannot be registered
	// under this strategy.
	KindHash
	// KindHybrid classifies routes at insert time: static routes go into
	// the O(1) table, and every route also goes into a radix tree that
	// handles dynamic and wildcard routes and fallback. This is the
	// recommended default for mixed route sets.
	KindHybrid
)

// New builds a Strategy of the given kind with the given tokenization
// cache capacity (passed through to any radix tree the strategy builds) and
// constraint-validation cache capacity.
func New(kind Kind, tokenCacheSize, validationCacheSize int) Strategy {
	switch kind {
	case KindHash:
		return newHashStrategy(validationCacheSize)
	case KindHybrid:
		return newHybridStrategy(tokenCacheSize, validationCacheSize)
	default:
		return newRadixStrategy(tokenCacheSize, validationCacheSize)
	}
}
