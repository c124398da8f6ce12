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

package wayfind

import (
	"strings"

	"github.com/wayfind-dev/wayfind/route"
)

// scopeFrame is one level of the scope stack pushed by namespace, scope,
// constraints or defaults. Frames are merged outer-to-inner when a route
// is added; for colliding defaults/constraints keys, the inner (later,
// more deeply nested) frame wins.
type scopeFrame struct {
	path        string
	module      string
	defaults    map[string]string
	constraints []route.Constraint
}

// scopeStack is the builder's current nesting of scope frames, outermost
// first.
type scopeStack []scopeFrame

func (s scopeStack) push(f scopeFrame) scopeStack {
	return append(s, f)
}

// resolvedPath joins every frame's path fragment with exactly one slash
// between them, then appends rel (the route's own path fragment).
func (s scopeStack) resolvedPath(rel string) string {
	var b strings.Builder
	for _, f := range s {
		appendFragment(&b, f.path)
	}
	appendFragment(&b, rel)
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

func appendFragment(b *strings.Builder, fragment string) {
	fragment = strings.Trim(fragment, "/")
	if fragment == "" {
		return
	}
	b.WriteByte('/')
	b.WriteString(fragment)
}

// resolvedController prefixes controller with every frame's module,
// outer-to-inner, joined with "/" (preserving "controller#action" form is
// the caller's responsibility; this only prefixes the controller part).
func (s scopeStack) resolvedController(controller string) string {
	var parts []string
	for _, f := range s {
		if f.module != "" {
			parts = append(parts, f.module)
		}
	}
	if len(parts) == 0 {
		return controller
	}
	parts = append(parts, controller)
	return strings.Join(parts, "/")
}

// resolvedDefaults merges every frame's defaults outer-to-inner, inner
// winning on key collision, then merges own (the route-level defaults,
// innermost of all).
func (s scopeStack) resolvedDefaults(own map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, f := range s {
		for k, v := range f.defaults {
			merged[k] = v
		}
	}
	for k, v := range own {
		merged[k] = v
	}
	return merged
}

// resolvedConstraints merges every frame's constraints outer-to-inner,
// inner winning for the same parameter name, then merges own (the
// route-level constraints, innermost of all).
func (s scopeStack) resolvedConstraints(own []route.Constraint) []route.Constraint {
	byParam := make(map[string]route.Constraint)
	order := make([]string, 0, 4)

	add := func(c route.Constraint) {
		if _, exists := byParam[c.Param]; !exists {
			order = append(order, c.Param)
		}
		byParam[c.Param] = c
	}

	for _, f := range s {
		for _, c := range f.constraints {
			add(c)
		}
	}
	for _, c := range own {
		add(c)
	}

	out := make([]route.Constraint, 0, len(order))
	for _, p := range order {
		out = append(out, byParam[p])
	}
	return out
}
