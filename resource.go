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
	"fmt"

	"github.com/wayfind-dev/wayfind/internal/method"
)

// ResourceOptions configures a Resources/Resource expansion: an optional
// nested resource, spliced under "/:id/<plural-nested>" with a distinct
// member key so it never collides with the outer resource's :id, and a
// block for further nesting.
type ResourceOptions struct {
	Nested string
	Only   []string
	Block  func(*Builder)
}

var resourceActions = []struct {
	key     string
	methods []string
	suffix  string
	action  string
}{
	{"index", []string{method.GET}, "", "index"},
	{"new", []string{method.GET}, "/new", "new"},
	{"create", []string{method.POST}, "", "create"},
	{"show", []string{method.GET}, "/:id", "show"},
	{"edit", []string{method.GET}, "/:id/edit", "edit"},
	{"update", []string{method.PUT, method.PATCH}, "/:id", "update"},
	{"destroy", []string{method.DELETE}, "/:id", "destroy"},
}

var memberResourceActions = []struct {
	key     string
	methods []string
	suffix  string
	action  string
}{
	{"new", []string{method.GET}, "/new", "new"},
	{"create", []string{method.POST}, "", "create"},
	{"show", []string{method.GET}, "", "show"},
	{"edit", []string{method.GET}, "/edit", "edit"},
	{"update", []string{method.PUT, method.PATCH}, "", "update"},
	{"destroy", []string{method.DELETE}, "", "destroy"},
}

// Resources expands a RESTful collection. name is used as-is for both the
// path and the controller, following the worked examples in practice:
// callers pass the already-plural collection name ("posts", not "post"),
// matching how resources is actually invoked.
func (b *Builder) Resources(name string, opts ...ResourceOptions) {
	opt := firstOption(opts)
	only := toSet(opt.Only)

	for _, a := range resourceActions {
		if !included(only, a.key) {
			continue
		}
		path := name + a.suffix
		spec := RouteSpec{To: fmt.Sprintf("%s#%s", name, a.action)}
		b.match(path, a.methods, spec)
	}

	if opt.Nested != "" || opt.Block != nil {
		b.pushScope(scopeFrame{path: name + "/:id"}, func(inner *Builder) {
			if opt.Nested != "" {
				inner.nestedResources(opt.Nested)
			}
			if opt.Block != nil {
				opt.Block(inner)
			}
		})
	}
}

// nestedResources expands name as a resource under the member key
// ":nested_id" rather than ":id", so the outer resource's :id capture is
// never shadowed.
func (b *Builder) nestedResources(name string) {
	nestedKey := "nested_id"
	for _, a := range resourceActions {
		path := name + nestedMemberSuffix(a.suffix, nestedKey)
		spec := RouteSpec{To: fmt.Sprintf("%s#%s", name, a.action)}
		b.match(path, a.methods, spec)
	}
}

func nestedMemberSuffix(suffix, nestedKey string) string {
	if suffix == "" {
		return ""
	}
	switch suffix {
	case "/new":
		return "/new"
	case "/:id":
		return "/:" + nestedKey
	case "/:id/edit":
		return "/:" + nestedKey + "/edit"
	default:
		return suffix
	}
}

// Resource expands a RESTful singleton: no index action and no :id segment,
// since the resource is addressed by the current scope alone. name is used
// as-is for the path and controller, matching Resources.
func (b *Builder) Resource(name string, opts ...ResourceOptions) {
	opt := firstOption(opts)
	only := toSet(opt.Only)

	for _, a := range memberResourceActions {
		if !included(only, a.key) {
			continue
		}
		path := name + a.suffix
		spec := RouteSpec{To: fmt.Sprintf("%s#%s", name, a.action)}
		b.match(path, a.methods, spec)
	}

	if opt.Block != nil {
		b.pushScope(scopeFrame{path: name}, opt.Block)
	}
}

func firstOption(opts []ResourceOptions) ResourceOptions {
	if len(opts) == 0 {
		return ResourceOptions{}
	}
	return opts[0]
}

func toSet(keys []string) map[string]bool {
	if len(keys) == 0 {
		return nil
	}
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

func included(only map[string]bool, key string) bool {
	if only == nil {
		return true
	}
	return only[key]
}
