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

// Package pathutil normalizes and tokenizes request paths, memoizing
// tokenizations behind a bounded LRU so repeated hot paths skip re-splitting.
package pathutil

import (
	"strings"

	"github.com/wayfind-dev/wayfind/cache"
)

// DefaultTokenizeCacheSize is the default capacity for the tokenization
// cache, matching the spec's default per-cache capacity of 2048 entries.
const DefaultTokenizeCacheSize = 2048

// Normalize ensures a single leading slash and strips exactly one trailing
// slash unless the path is "/". Empty input becomes "/".
func Normalize(path string) string {
	if path == "" {
		return "/"
	}
	if path[0] != '/' {
		path = "/" + path
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	return path
}

// Split strips any "?query" or "#fragment" suffix, then splits the path on
// "/" and discards empty segments. Returns nil for "/" or empty input.
func Split(path string) []string {
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	path = Normalize(path)
	if path == "/" {
		return nil
	}

	raw := strings.Split(strings.Trim(path, "/"), "/")
	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		if s != "" {
			segments = append(segments, s)
		}
	}

	return segments
}

// Tokenizer memoizes Split results keyed by the raw input string, bounded by
// an LRU so steady-state memory stays O(capacity).
type Tokenizer struct {
	cache *cache.LRU[string, []string]
}

// NewTokenizer creates a tokenizer with the given bounded cache capacity.
func NewTokenizer(capacity int) *Tokenizer {
	return &Tokenizer{cache: cache.NewLRU[string, []string](capacity)}
}

// Split returns the frozen segment vector for path, reusing a memoized
// result when available.
func (t *Tokenizer) Split(path string) []string {
	if segs, ok := t.cache.Get(path); ok {
		return segs
	}

	segs := Split(path)
	t.cache.Put(path, segs)

	return segs
}

// Stats reports the tokenizer cache's hit/miss counters.
func (t *Tokenizer) Stats() cache.Stats {
	return t.cache.Stats()
}

// Clear empties the tokenization cache.
func (t *Tokenizer) Clear() {
	t.cache.Clear()
}
