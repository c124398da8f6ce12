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

	"github.com/wayfind-dev/wayfind/internal/method"
)

// mountMethods is the fixed method list a Mount registers under. wayfind
// has no sub-router delegation: mounting only forwards a prefix plus a
// captured remainder, so TRACE and CONNECT (never used for application
// routing) are left out.
var mountMethods = []string{
	method.GET, method.POST, method.PUT, method.PATCH,
	method.DELETE, method.HEAD, method.OPTIONS,
}

// Mount forwards everything under prefix to spec, capturing the remainder
// of the path under the "mounted" parameter. This is intentionally
// minimal: wayfind has no sub-router delegation, only prefix-plus-capture
// registration; the host is responsible for interpreting the captured
// remainder itself.
func (b *Builder) Mount(prefix string, spec RouteSpec) {
	relPath := strings.TrimRight(prefix, "/") + "/*mounted"
	b.match(relPath, mountMethods, spec)
}
