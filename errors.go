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

import "errors"

// Static errors for better error handling and testing. These should be
// wrapped with fmt.Errorf and %w when the caller needs more context.
var (
	// ErrRouteNotFound is raised by generate_path when no route is
	// registered under the given name.
	ErrRouteNotFound = errors.New("wayfind: route not found")

	// ErrRouterFinalized is returned by Router.Draw once the router has been
	// finalized (Build finalizes the router it returns).
	ErrRouterFinalized = errors.New("wayfind: router already finalized")

	// ErrDuplicateRouteName is raised at build time when two distinct
	// routes are registered under the same name.
	ErrDuplicateRouteName = errors.New("wayfind: duplicate route name")

	// ErrUnknownDSLMethod is not returned by this package: Builder's DSL
	// methods are fixed at compile time. It is available to hosts that layer
	// their own dynamic dispatch over Builder.
	ErrUnknownDSLMethod = errors.New("wayfind: unknown DSL method")

	// ErrUnknownConcern is raised when concerns references a name that was
	// never registered with concern.
	ErrUnknownConcern = errors.New("wayfind: unknown concern")

	// ErrInvalidTarget is raised when a RouteSpec's To field is not in
	// "controller#action" form.
	ErrInvalidTarget = errors.New("wayfind: invalid route target")
)
