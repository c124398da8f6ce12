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

// Package wayfind is a high-performance HTTP route matcher and URL
// generator: a radix tree with static/dynamic/wildcard precedence and
// best-candidate fallback, bounded request-time caches, and a Rails-like
// build-time DSL compiled by a Builder that records then replays route
// declarations against a scope stack.
//
//	router, err := wayfind.Build(func(b *wayfind.Builder) {
//	    b.Get("/posts/:id", wayfind.RouteSpec{To: "posts#show", As: "post"})
//	    b.Resources("posts", wayfind.ResourceOptions{})
//	})
//	result, ok := router.RouteSet().Match("GET", "/posts/1")
package wayfind
