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
	"maps"

	"github.com/wayfind-dev/wayfind/cache"
)

// validationOutcome is the cached result of running a route's constraints
// against one captured-params set: either the merged params, or the name of
// the parameter that failed.
type validationOutcome struct {
	merged   map[string]string
	badParam string
	ok       bool
}

// Validator caches ValidateAndMerge results in a bounded LRU keyed by
// (route identity, captured params): the route's pointer followed by the
// same name/path/params key Generator uses for path generation. A radix traversal calls ValidateAndMerge once per
// candidate endpoint it passes through, so hot prefixes revisited across
// many requests with the same captured values skip re-running regex and
// membership checks every time.
type Validator struct {
	cache *cache.LRU[string, validationOutcome]
}

// NewValidator creates a constraint-validation cache with the given
// capacity.
func NewValidator(capacity int) *Validator {
	return &Validator{cache: cache.NewLRU[string, validationOutcome](capacity)}
}

// Validate returns r.ValidateAndMerge(captured), serving from cache when the
// exact (route, captured) pair was validated before. Semantics match
// ValidateAndMerge exactly: a cached violation still returns
// ErrConstraintViolation naming the offending parameter.
func (v *Validator) Validate(r *Route, captured map[string]string) (map[string]string, error) {
	key := fmt.Sprintf("%p\x00", r) + generationKey(r, captured)

	if out, ok := v.cache.Get(key); ok {
		if !out.ok {
			return nil, fmt.Errorf("%w: parameter %q", ErrConstraintViolation, out.badParam)
		}
		return out.merged, nil
	}

	badParam, ok := Validate(r.constraints, captured)
	if !ok {
		v.cache.Put(key, validationOutcome{badParam: badParam})
		return nil, fmt.Errorf("%w: parameter %q", ErrConstraintViolation, badParam)
	}

	merged := make(map[string]string, len(captured)+len(r.defaults))
	maps.Copy(merged, captured)
	for k, def := range r.defaults {
		if _, exists := merged[k]; !exists {
			merged[k] = def
		}
	}

	v.cache.Put(key, validationOutcome{merged: merged, ok: true})
	return merged, nil
}

// Stats reports the validation cache's hit/miss counters.
func (v *Validator) Stats() cache.Stats { return v.cache.Stats() }

// Clear empties the validation cache.
func (v *Validator) Clear() { v.cache.Clear() }
