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

// Package method canonicalizes HTTP method strings to an interned,
// process-wide uppercase form.
package method

import (
	"strings"
	"sync"
)

// Standard verbs, interned once at package init so common methods never
// touch the mutex-guarded cache below.
const (
	GET     = "GET"
	POST    = "POST"
	PUT     = "PUT"
	PATCH   = "PATCH"
	DELETE  = "DELETE"
	HEAD    = "HEAD"
	OPTIONS = "OPTIONS"
	TRACE   = "TRACE"
	CONNECT = "CONNECT"
)

var standard = map[string]string{
	GET: GET, POST: POST, PUT: PUT, PATCH: PATCH, DELETE: DELETE,
	HEAD: HEAD, OPTIONS: OPTIONS, TRACE: TRACE, CONNECT: CONNECT,
}

var (
	mu      sync.RWMutex
	interns = make(map[string]string, 16)
)

// Canonicalize uppercases m and returns an interned copy so that repeated
// requests for the same method never allocate a new string, and so that
// external mutation of the caller's string cannot corrupt the cache (the
// cache key and value are both copies owned by this package, never an alias
// of the caller's buffer).
func Canonicalize(m string) string {
	if v, ok := standard[m]; ok {
		return v
	}

	upper := strings.ToUpper(m)
	if v, ok := standard[upper]; ok {
		return v
	}

	mu.RLock()
	v, ok := interns[upper]
	mu.RUnlock()
	if ok {
		return v
	}

	mu.Lock()
	defer mu.Unlock()
	if v, ok := interns[upper]; ok {
		return v
	}
	// Copy the string so the map never aliases a slice of the caller's buffer.
	owned := strings.Clone(upper)
	interns[owned] = owned

	return owned
}

// IsStandard reports whether m (already canonicalized) is one of the nine
// well-known HTTP verbs.
func IsStandard(m string) bool {
	_, ok := standard[m]
	return ok
}
