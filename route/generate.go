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

package route

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wayfind-dev/wayfind/cache"
)

// GeneratePath walks the route's template, substituting bindings (falling
// back to the route's defaults) for each placeholder. A placeholder with
// neither a binding nor a default is ErrMissingParam. The result is always
// canonical: a single leading slash, no trailing slash unless the path is
// "/".
func (r *Route) GeneratePath(bindings map[string]string) (string, error) {
	if len(r.tokens) == 0 {
		return "/", nil
	}

	var b strings.Builder
	for _, tok := range r.tokens {
		b.WriteByte('/')

		switch tok.Kind {
		case TokenStatic:
			b.WriteString(tok.Name)
		case TokenDynamic, TokenWildcard:
			v, ok := bindings[tok.Name]
			if !ok {
				v, ok = r.defaults[tok.Name]
			}
			if !ok {
				return "", fmt.Errorf("%w: %q", ErrMissingParam, tok.Name)
			}
			b.WriteString(v)
		}
	}

	return b.String(), nil
}

// Generator caches GeneratePath results in a bounded LRU keyed by
// (route name/path, bindings), so generating the same named route with the
// same bindings repeatedly skips re-walking the template.
type Generator struct {
	cache *cache.LRU[string, string]
}

// NewGenerator creates a path-generation cache with the given capacity.
func NewGenerator(capacity int) *Generator {
	return &Generator{cache: cache.NewLRU[string, string](capacity)}
}

// Generate returns r.GeneratePath(bindings), serving from cache when the
// exact (route, bindings) pair was generated before.
func (g *Generator) Generate(r *Route, bindings map[string]string) (string, error) {
	key := generationKey(r, bindings)
	if v, ok := g.cache.Get(key); ok {
		return v, nil
	}

	path, err := r.GeneratePath(bindings)
	if err != nil {
		return "", err
	}

	g.cache.Put(key, path)
	return path, nil
}

// Stats reports the generation cache's hit/miss counters.
func (g *Generator) Stats() cache.Stats { return g.cache.Stats() }

// Clear empties the generation cache.
func (g *Generator) Clear() { g.cache.Clear() }

// generationKey deterministically serializes a route identity and its
// bindings so identical calls always hit the same cache slot.
func generationKey(r *Route, bindings map[string]string) string {
	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(r.name)
	b.WriteByte('\x00')
	b.WriteString(r.path)
	for _, k := range keys {
		b.WriteByte('\x00')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(bindings[k])
	}

	return b.String()
}
