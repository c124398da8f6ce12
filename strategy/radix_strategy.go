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
	"github.com/wayfind-dev/wayfind/radix"
	"github.com/wayfind-dev/wayfind/route"
)

// radixStrategy delegates every route, static or dynamic, to a radix.Tree.
// It is always correct for any route population; the other strategies
// exist purely to skip tree traversal for routes that don't need it.
type radixStrategy struct {
	tree *radix.Tree
}

func newRadixStrategy(tokenCacheSize, validationCacheSize int) *radixStrategy {
	tree := radix.New(tokenCacheSize).WithValidator(route.NewValidator(validationCacheSize))
	return &radixStrategy{tree: tree}
}

func (s *radixStrategy) Add(r *route.Route) {
	s.tree.Insert(r)
}

func (s *radixStrategy) Find(method, path string) (*route.Route, map[string]string, bool) {
	return s.tree.Find(method, path)
}

// TokenizationStats reports the tree's tokenization cache.
func (s *radixStrategy) TokenizationStats() cache.Stats { return s.tree.TokenizerStats() }

// ValidationStats reports the tree's constraint-validation cache.
func (s *radixStrategy) ValidationStats() cache.Stats { return s.tree.ValidatorStats() }
