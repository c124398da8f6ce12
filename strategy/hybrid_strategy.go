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
	"github.com/wayfind-dev/wayfind/radix"
	"github.com/wayfind-dev/wayfind/route"
)

// emptyParams is the captured-params input for every static hit. Static
// routes never capture anything, so one shared map avoids an allocation
// per request; the params returned come from the validator, with defaults
// merged in. It is never written to.
var emptyParams = map[string]string{}

// hybridStrategy classifies each route at insert time: a purely static
// route goes into a two-level "path -> method -> route" map for an O(1)
// hit. Every route, static or not, is also inserted into a radix tree, which
// Find falls back to on a map miss: it matches dynamic and wildcard routes
// and gives best-candidate fallback to static ones. This is the strategy a
// RouteSet picks by default, since most real route tables are a mix of both.
type hybridStrategy struct {
	static    map[string]map[string]*route.Route
	tree      *radix.Tree
	validator *route.Validator
}

func newHybridStrategy(tokenCacheSize, validationCacheSize int) *hybridStrategy {
	validator := route.NewValidator(validationCacheSize)
	return &hybridStrategy{
		static:    make(map[string]map[string]*route.Route, 64),
		tree:      radix.New(tokenCacheSize).WithValidator(validator),
		validator: validator,
	}
}

func (s *hybridStrategy) Add(r *route.Route) {
	s.tree.Insert(r)
	if !isStatic(r) {
		return
	}

	key := pathutil.Normalize(r.Path())
	byMethod, ok := s.static[key]
	if !ok {
		byMethod = make(map[string]*route.Route, 4)
		s.static[key] = byMethod
	}
	for _, m := range r.Methods() {
		if _, exists := byMethod[m]; exists {
			continue // first-inserted wins, matching radix precedence
		}
		byMethod[m] = r
	}
}

func (s *hybridStrategy) Find(method, path string) (*route.Route, map[string]string, bool) {
	key := pathutil.Normalize(path)
	if byMethod, ok := s.static[key]; ok {
		if r, ok := byMethod[method]; ok {
			merged, err := s.validator.Validate(r, emptyParams)
			if err == nil {
				return r, merged, true
			}
		}
	}

	return s.tree.Find(method, path)
}

// TokenizationStats reports the fallback radix tree's tokenization cache.
// Static hits never tokenize: path normalization is the only per-request
// work on that branch.
func (s *hybridStrategy) TokenizationStats() cache.Stats { return s.tree.TokenizerStats() }

// ValidationStats reports the constraint-validation cache shared by the
// static fast path and the radix tree fallback.
func (s *hybridStrategy) ValidationStats() cache.Stats { return s.validator.Stats() }
