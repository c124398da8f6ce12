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
	"fmt"
	"sync"
	"time"

	"github.com/wayfind-dev/wayfind/cache"
	"github.com/wayfind-dev/wayfind/internal/method"
	"github.com/wayfind-dev/wayfind/internal/pathutil"
	"github.com/wayfind-dev/wayfind/route"
	"github.com/wayfind-dev/wayfind/strategy"
)

// MatchResult is what RouteSet.Match returns on a hit: the matched route,
// its frozen extracted parameters, and the controller/action pair.
type MatchResult = cache.Result[*route.Route]

// RouteSet is the finalized, deeply-immutable-after-build collection of
// routes a Router exposes for matching and path generation. Its only
// mutable post-build state is its caches and counters. The request-key
// pool and recognition cache are accessed under one RouteSet mutex; the
// generation cache and the strategy's tokenization and validation caches
// each guard themselves with their own lock, and Strategy.Find and
// Generator.Generate run outside the RouteSet mutex.
type RouteSet struct {
	mu sync.Mutex

	routes      []*route.Route
	named       map[string]*route.Route
	seen        map[*route.Route]struct{}
	strat       strategy.Strategy
	recog       *cache.Recognition[*route.Route]
	gen         *route.Generator
	keys        *cache.KeyPool
	metrics     *metricsRecorder
	otelMetrics *otelMetrics
	tracer      tracer
	diagnostics DiagnosticHandler

	strategyKind         strategy.Kind
	tokenCacheSize       int
	recognitionCacheSize int
	generationCacheSize  int
	validationCacheSize  int
	keyPoolSize          int
}

func newRouteSet(strategyKind strategy.Kind, tokenCacheSize, recognitionCacheSize, generationCacheSize, validationCacheSize, keyPoolSize int) *RouteSet {
	rs := &RouteSet{
		named:                make(map[string]*route.Route),
		seen:                 make(map[*route.Route]struct{}),
		strat:                strategy.New(strategyKind, tokenCacheSize, validationCacheSize),
		recog:                cache.NewRecognition[*route.Route](recognitionCacheSize),
		gen:                  route.NewGenerator(generationCacheSize),
		keys:                 cache.NewKeyPool(keyPoolSize),
		strategyKind:         strategyKind,
		tokenCacheSize:       tokenCacheSize,
		recognitionCacheSize: recognitionCacheSize,
		generationCacheSize:  generationCacheSize,
		validationCacheSize:  validationCacheSize,
		keyPoolSize:          keyPoolSize,
	}
	rs.recog.OnEvictionStorm(rs.emitEvictionStorm)
	return rs
}

// emitEvictionStorm reports a recognition-cache eviction storm through the
// diagnostics handler, if one is attached. Called outside the recognition
// cache's lock.
func (rs *RouteSet) emitEvictionStorm(capacity int) {
	if rs.diagnostics == nil {
		return
	}
	rs.diagnostics.OnDiagnostic(DiagnosticEvent{
		Kind:    DiagRecognitionEvictionStorm,
		Message: "recognition cache is evicting on nearly every insert; consider a larger capacity",
		Fields:  map[string]any{"capacity": capacity},
	})
}

// add registers r. Re-adding the identical *route.Route pointer is a
// silent no-op (per spec.md, duplicate route insertion by identity does
// nothing); two distinct routes sharing the same name is
// ErrDuplicateRouteName.
func (rs *RouteSet) add(r *route.Route) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if _, ok := rs.seen[r]; ok {
		return nil
	}

	if r.Name() != "" {
		if _, exists := rs.named[r.Name()]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateRouteName, r.Name())
		}
	}

	rs.seen[r] = struct{}{}
	rs.routes = append(rs.routes, r)
	if r.Name() != "" {
		rs.named[r.Name()] = r
	}
	rs.strat.Add(r)

	return nil
}

// Match resolves (httpMethod, path) to a route, consulting the request-key
// pool and recognition cache before falling through to the configured
// Strategy. A strategy hit is inserted into the recognition cache (25%
// batch eviction once full) so repeat traffic to the same path skips
// tree/hash lookup entirely.
func (rs *RouteSet) Match(httpMethod, path string) (MatchResult, bool) {
	return rs.match(context.Background(), httpMethod, path)
}

// MatchContext is Match, wrapped in a span derived from ctx when tracing is
// enabled. Use it when the caller has a real request context to propagate.
func (rs *RouteSet) MatchContext(ctx context.Context, httpMethod, path string) (MatchResult, bool) {
	return rs.match(ctx, httpMethod, path)
}

func (rs *RouteSet) match(ctx context.Context, httpMethod, path string) (MatchResult, bool) {
	start := time.Now()
	httpMethod = method.Canonicalize(httpMethod)
	path = pathutil.Normalize(path)

	ctx, end := rs.tracer.startMatchSpan(ctx, httpMethod, path)
	defer end()

	rs.mu.Lock()
	key := rs.keys.Intern(httpMethod, path)
	if cached, ok := rs.recog.Get(key); ok {
		rs.mu.Unlock()
		rs.recordMatch(start, true)
		rs.tracer.annotateMatch(ctx, true, cached.Route)
		return cached, true
	}
	rs.mu.Unlock()

	r, params, ok := rs.strat.Find(httpMethod, path)
	if !ok {
		rs.recordMatch(start, false)
		rs.tracer.annotateMatch(ctx, false, nil)
		return MatchResult{}, false
	}

	result := MatchResult{
		Route:      r,
		Params:     params,
		Controller: r.Controller(),
		Action:     r.Action(),
	}

	rs.mu.Lock()
	rs.recog.Put(key, result)
	rs.mu.Unlock()

	rs.recordMatch(start, true)
	rs.tracer.annotateMatch(ctx, true, r)

	return result, true
}

func (rs *RouteSet) recordMatch(start time.Time, hit bool) {
	elapsed := time.Since(start)
	rs.metrics.recordMatch(elapsed, hit)
	rs.otelMetrics.recordMatch(elapsed.Seconds(), hit)
}

func (rs *RouteSet) recordGenerate(ok bool) {
	rs.metrics.recordGenerate(ok)
	rs.otelMetrics.recordGenerate(ok)
}

// GeneratePath looks up the named route and substitutes bindings into its
// template, serving from the generation cache when possible. Returns
// ErrRouteNotFound if no route was registered under name.
func (rs *RouteSet) GeneratePath(name string, bindings map[string]string) (string, error) {
	rs.mu.Lock()
	r, ok := rs.named[name]
	rs.mu.Unlock()

	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRouteNotFound, name)
	}

	path, err := rs.gen.Generate(r, bindings)
	rs.recordGenerate(err == nil)
	return path, err
}

// CacheStats reports a per-cache hit/miss/size breakdown across all four of
// RouteSet's bounded caches: recognition, generation, tokenization (the
// strategy's path-tokenization cache, zero for a pure hash strategy that
// never tokenizes) and validation (the strategy's constraint-check cache).
func (rs *RouteSet) CacheStats() map[string]cache.Stats {
	rs.mu.Lock()
	recog := rs.recog.Stats()
	tokenization := rs.strat.TokenizationStats()
	validation := rs.strat.ValidationStats()
	rs.mu.Unlock()

	return map[string]cache.Stats{
		"recognition":  recog,
		"generation":   rs.gen.Stats(),
		"tokenization": tokenization,
		"validation":   validation,
	}
}

// Each calls fn once per registered route, in insertion order.
func (rs *RouteSet) Each(fn func(*route.Route)) {
	rs.mu.Lock()
	routes := append([]*route.Route(nil), rs.routes...)
	rs.mu.Unlock()

	for _, r := range routes {
		fn(r)
	}
}

// Size returns the number of registered routes.
func (rs *RouteSet) Size() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.routes)
}

// Empty reports whether no routes are registered.
func (rs *RouteSet) Empty() bool { return rs.Size() == 0 }

// Include reports whether r (by pointer identity) is registered in this
// set.
func (rs *RouteSet) Include(r *route.Route) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	_, ok := rs.seen[r]
	return ok
}

// Clear empties the route list, named index, and recognition cache, and
// resets the request-key pool, generation cache, and Strategy.
func (rs *RouteSet) Clear() {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.routes = nil
	rs.named = make(map[string]*route.Route)
	rs.seen = make(map[*route.Route]struct{})
	rs.recog.Clear()
	rs.keys.Clear()
	rs.gen.Clear()
	rs.strat = strategy.New(rs.strategyKind, rs.tokenCacheSize, rs.validationCacheSize)
}
