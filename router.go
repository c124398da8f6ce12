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
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/wayfind-dev/wayfind/strategy"
)

// Router owns the build-time configuration and the finalized RouteSet it
// compiles to. Build (or NewRouter+Draw+Finalize) is single-threaded; once
// finalized, the Router and its RouteSet are safe to share across threads
// for matching and generation.
type Router struct {
	finalized bool

	routeSet *RouteSet

	diagnostics          DiagnosticHandler
	strategyKind         strategy.Kind
	recognitionCacheSize int
	generationCacheSize  int
	tokenCacheSize       int
	validationCacheSize  int
	keyPoolSize          int
	metrics              *metricsRecorder
	otelMetrics          *otelMetrics
	tracer               trace.Tracer
}

// NewRouter creates an unfinalized Router configured by opts, ready for
// Draw. Most callers want Build instead.
func NewRouter(opts ...Option) *Router {
	r := &Router{
		strategyKind:         strategy.KindHybrid,
		recognitionCacheSize: defaultCacheCapacity,
		generationCacheSize:  defaultCacheCapacity,
		tokenCacheSize:       defaultCacheCapacity,
		validationCacheSize:  defaultCacheCapacity,
		keyPoolSize:          defaultCacheCapacity,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.routeSet = newRouteSet(r.strategyKind, r.tokenCacheSize, r.recognitionCacheSize, r.generationCacheSize, r.validationCacheSize, r.keyPoolSize)
	r.routeSet.metrics = r.metrics
	r.routeSet.otelMetrics = r.otelMetrics
	r.routeSet.tracer = tracer{t: r.tracer}
	r.routeSet.diagnostics = r.diagnostics

	return r
}

// Draw replays configure's recorded DSL calls against this Router. Returns
// ErrRouterFinalized if the Router has already been finalized; otherwise
// the first error any recorded call produces (an invalid route, a
// duplicate name, an unknown concern), leaving any routes successfully
// added before the failing call in place.
func (r *Router) Draw(configure func(*Builder)) error {
	if r.finalized {
		return ErrRouterFinalized
	}

	_, end := r.tracerWrap().startBuildSpan(context.Background(), r.routeSet.Size())
	defer end()

	b := &Builder{}
	configure(b)

	bctx := &buildContext{router: r, concerns: make(map[string]func(*Builder))}
	for _, call := range b.calls {
		if err := call(bctx); err != nil {
			return err
		}
	}

	r.routeSet.metrics.setRouteSetSize(r.routeSet.Size())

	return nil
}

// Finalize freezes the Router: no further Draw calls are accepted, and the
// RouteSet is safe to share across threads for matching/generation.
func (r *Router) Finalize() {
	r.finalized = true
}

func (r *Router) tracerWrap() tracer { return tracer{t: r.tracer} }

// RouteSet returns the Router's compiled route set.
func (r *Router) RouteSet() *RouteSet { return r.routeSet }

// Build constructs a Router, replays configure against it, and finalizes
// it in one call, the common case. Equivalent to
// NewRouter(opts...).Draw(configure) followed by Finalize.
func Build(configure func(*Builder), opts ...Option) (*Router, error) {
	r := NewRouter(opts...)
	if err := r.Draw(configure); err != nil {
		return nil, err
	}
	r.Finalize()
	return r, nil
}
