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
	"strings"

	"github.com/wayfind-dev/wayfind/internal/method"
	"github.com/wayfind-dev/wayfind/route"
)

// RouteSpec carries the per-route options a DSL call attaches to a path:
// the "controller#action" target, an optional symbolic name, and any
// constraints/defaults scoped to just this route (merged with the
// enclosing scope stack at build time, this route winning ties).
type RouteSpec struct {
	To          string
	As          string
	Constraints []route.Constraint
	Defaults    map[string]string
}

// Builder records DSL invocations without touching a Router. Build
// replays the recorded calls in order against a fresh Router and
// finalizes it. The whitelist the spec describes is enforced by Go's type
// system: Builder exposes exactly these methods and no others, so there
// is no "unknown DSL method" to reject at runtime except through Concerns
// referencing a name that was never registered with Concern.
type Builder struct {
	calls []func(ctx *buildContext) error
}

// buildContext is live only during Build's replay: it carries the current
// scope stack, the Router under construction, and every concern block
// registered so far (keyed by name, shared across the whole replay so a
// concern can be registered in one scope and spliced into another).
type buildContext struct {
	router   *Router
	scope    scopeStack
	concerns map[string]func(*Builder)
}

func (b *Builder) record(fn func(ctx *buildContext) error) {
	b.calls = append(b.calls, fn)
}

// replay runs block against a fresh temporary Builder, then immediately
// executes every call it recorded against ctx. This is how Namespace,
// Scope, Constraints, Defaults, Resources' nested block, and Concerns
// splice nested DSL calls under the scope active at the call site.
func replay(block func(*Builder), ctx *buildContext) error {
	tmp := &Builder{}
	block(tmp)
	for _, call := range tmp.calls {
		if err := call(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) pushScope(frame scopeFrame, block func(*Builder)) {
	b.record(func(ctx *buildContext) error {
		ctx.scope = ctx.scope.push(frame)
		defer func() { ctx.scope = ctx.scope[:len(ctx.scope)-1] }()
		return replay(block, ctx)
	})
}

// Get registers a GET route.
func (b *Builder) Get(path string, spec RouteSpec) { b.match(path, []string{method.GET}, spec) }

// Post registers a POST route.
func (b *Builder) Post(path string, spec RouteSpec) { b.match(path, []string{method.POST}, spec) }

// Put registers a PUT route.
func (b *Builder) Put(path string, spec RouteSpec) { b.match(path, []string{method.PUT}, spec) }

// Patch registers a PATCH route.
func (b *Builder) Patch(path string, spec RouteSpec) { b.match(path, []string{method.PATCH}, spec) }

// Delete registers a DELETE route.
func (b *Builder) Delete(path string, spec RouteSpec) {
	b.match(path, []string{method.DELETE}, spec)
}

// Match registers path under an explicit set of methods.
func (b *Builder) Match(path string, methods []string, spec RouteSpec) {
	b.match(path, methods, spec)
}

func (b *Builder) match(path string, methods []string, spec RouteSpec) {
	canon := make([]string, len(methods))
	for i, m := range methods {
		canon[i] = method.Canonicalize(m)
	}
	b.record(func(ctx *buildContext) error {
		return ctx.addRoute(path, canon, spec)
	})
}

// Root registers a GET route at the current scope's root ("/" at the top
// level, or the namespace/scope prefix itself when nested).
func (b *Builder) Root(spec RouteSpec) { b.match("", []string{method.GET}, spec) }

// Namespace prefixes both the path and the controller with name and
// records block's DSL calls under that prefix.
func (b *Builder) Namespace(name string, block func(*Builder)) {
	b.pushScope(scopeFrame{path: name, module: name}, block)
}

// ScopeOptions configures a Scope frame: a path prefix without a
// controller-namespacing side effect, plus optional defaults/constraints.
type ScopeOptions struct {
	Path        string
	Defaults    map[string]string
	Constraints []route.Constraint
}

// Scope prefixes the path (without namespacing the controller) and
// records block's DSL calls under that prefix.
func (b *Builder) Scope(opts ScopeOptions, block func(*Builder)) {
	b.pushScope(scopeFrame{path: opts.Path, defaults: opts.Defaults, constraints: opts.Constraints}, block)
}

// Constraints scopes block's routes under additional parameter
// constraints, merged inner-wins with any outer scope's constraints. A
// constraint applies only to routes whose path captures its parameter.
func (b *Builder) Constraints(constraints []route.Constraint, block func(*Builder)) {
	b.pushScope(scopeFrame{constraints: constraints}, block)
}

// Defaults scopes block's routes under additional default parameter
// values, merged inner-wins with any outer scope's defaults.
func (b *Builder) Defaults(defaults map[string]string, block func(*Builder)) {
	b.pushScope(scopeFrame{defaults: defaults}, block)
}

// Concern records a named, reusable block of route declarations against
// the shared buildContext. It has no effect on its own; Concerns splices
// it into whatever scope is active at its own call site, which may be far
// from where Concern was declared.
func (b *Builder) Concern(name string, block func(*Builder)) {
	b.record(func(ctx *buildContext) error {
		ctx.concerns[name] = block
		return nil
	})
}

// Concerns splices one or more previously-recorded Concern blocks into
// the current scope, in the order named. A concern must have been
// registered (its Concern call already replayed) before the Concerns call
// that references it runs.
func (b *Builder) Concerns(names ...string) {
	b.record(func(ctx *buildContext) error {
		for _, name := range names {
			block, ok := ctx.concerns[name]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownConcern, name)
			}
			if err := replay(block, ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

// addRoute resolves path, controller, defaults and constraints against
// the current scope stack, compiles a Route, and adds it to the Router
// under construction.
func (ctx *buildContext) addRoute(relPath string, methods []string, spec RouteSpec) error {
	path := ctx.scope.resolvedPath(relPath)
	controller, action, err := splitTarget(spec.To)
	if err != nil {
		return err
	}
	controller = ctx.scope.resolvedController(controller)

	// Only constraints on parameters this path captures are attached: one
	// on an absent parameter could never be satisfied.
	constraints := ctx.scope.resolvedConstraints(spec.Constraints)
	if tokens, perr := route.ParseTemplate(path); perr == nil {
		captured := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			if tok.Kind != route.TokenStatic {
				captured[tok.Name] = true
			}
		}
		kept := make([]route.Constraint, 0, len(constraints))
		for _, c := range constraints {
			if captured[c.Param] {
				kept = append(kept, c)
			}
		}
		constraints = kept
	}

	r, err := route.New(path, methods, route.Options{
		Controller:  controller,
		Action:      action,
		Name:        spec.As,
		Constraints: constraints,
		Defaults:    ctx.scope.resolvedDefaults(spec.Defaults),
	})
	if err != nil {
		return err
	}

	if err := ctx.router.routeSet.add(r); err != nil {
		return err
	}

	ctx.router.emit(DiagRouteRegistered, "route registered", map[string]any{
		"path":       path,
		"controller": controller,
		"action":     action,
	})

	if dynamicCount(r) > highParamCountThreshold {
		ctx.router.emit(DiagHighParamCount, "route captures an unusually large number of parameters", map[string]any{
			"path": path,
		})
	}

	return nil
}

func dynamicCount(r *route.Route) int {
	n := 0
	for _, tok := range r.Tokens() {
		if tok.Kind != route.TokenStatic {
			n++
		}
	}
	return n
}

func splitTarget(to string) (controller, action string, err error) {
	controller, action, ok := strings.Cut(to, "#")
	if !ok {
		return "", "", fmt.Errorf("%w: %q is not in \"controller#action\" form", ErrInvalidTarget, to)
	}
	return controller, action, nil
}
