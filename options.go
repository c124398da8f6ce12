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
	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/wayfind-dev/wayfind/strategy"
)

// defaultCacheCapacity is used for every bounded cache unless overridden.
const defaultCacheCapacity = 2048

// Option configures a Router at Build time.
type Option func(*Router)

// WithDiagnostics installs a handler for build-time and cache-eviction
// diagnostic events. Diagnostics are purely observational; the router's
// matching behavior never depends on one being set.
//
// Example:
//
//	handler := wayfind.DiagnosticHandlerFunc(func(e wayfind.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	router, err := wayfind.Build(dsl, wayfind.WithDiagnostics(handler))
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(r *Router) {
		r.diagnostics = handler
	}
}

// WithStrategy selects the matching backend. Defaults to KindHybrid.
func WithStrategy(kind strategy.Kind) Option {
	return func(r *Router) {
		r.strategyKind = kind
	}
}

// WithRecognitionCacheSize overrides the recognition cache's capacity
// (default 2048).
func WithRecognitionCacheSize(capacity int) Option {
	return func(r *Router) {
		r.recognitionCacheSize = capacity
	}
}

// WithGenerationCacheSize overrides the path-generation cache's capacity
// (default 2048).
func WithGenerationCacheSize(capacity int) Option {
	return func(r *Router) {
		r.generationCacheSize = capacity
	}
}

// WithTokenizationCacheSize overrides the path-tokenization cache's
// capacity (default 2048).
func WithTokenizationCacheSize(capacity int) Option {
	return func(r *Router) {
		r.tokenCacheSize = capacity
	}
}

// WithValidationCacheSize overrides the constraint-validation cache's
// capacity (default 2048). This cache memoizes ValidateAndMerge outcomes
// per (route, captured params), so repeated constraint checks against the
// same route and values skip re-running regex and membership checks.
func WithValidationCacheSize(capacity int) Option {
	return func(r *Router) {
		r.validationCacheSize = capacity
	}
}

// WithRequestKeyPoolSize overrides the request-key interning pool's
// capacity (default 2048).
func WithRequestKeyPoolSize(capacity int) Option {
	return func(r *Router) {
		r.keyPoolSize = capacity
	}
}

// WithMetrics enables Prometheus instrumentation of RouteSet.Match and
// RouteSet.GeneratePath, registering collectors against reg. Metrics are
// opt-in: without this option the router never touches prometheus.
func WithMetrics(reg promclient.Registerer) Option {
	return func(r *Router) {
		r.metrics = newMetricsRecorder(reg)
	}
}

// WithOTelMetrics enables OpenTelemetry metrics instrumentation of
// RouteSet.Match and RouteSet.GeneratePath, as an alternative to
// WithMetrics for hosts that export through an otel metrics pipeline
// rather than scraping Prometheus directly. With no provider given, a
// bare SDK meter provider is used (valid to record against, with no
// reader attached); pass one to wire real export.
func WithOTelMetrics(provider ...metric.MeterProvider) Option {
	return func(r *Router) {
		p := newOTelMeterProvider()
		if len(provider) > 0 {
			p = provider[0]
		}
		m, err := newOTelMetrics(p)
		if err == nil {
			r.otelMetrics = m
		}
	}
}

// WithTracing enables OpenTelemetry spans around Build and RouteSet.Match.
// Tracing is opt-in: without this option the router never touches otel.
func WithTracing() Option {
	return func(r *Router) {
		r.tracer = otelTracer()
	}
}

// WithTracerProvider enables tracing using a caller-supplied provider
// instead of the global otel.TracerProvider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(r *Router) {
		r.tracer = provider.Tracer(tracerName)
	}
}
