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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wayfind-dev/wayfind/route"
)

const tracerName = "github.com/wayfind-dev/wayfind"

func otelTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// tracer wraps an optional trace.Tracer. Its zero value has a nil
// underlying tracer, so every method is a no-op until WithTracing or
// WithTracerProvider installs a real one; tracing stays strictly opt-in.
type tracer struct {
	t trace.Tracer
}

func (tr tracer) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, func()) {
	if tr.t == nil {
		return ctx, func() {}
	}
	ctx, span := tr.t.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, func() { span.End() }
}

func (tr tracer) startMatchSpan(ctx context.Context, httpMethod, path string) (context.Context, func()) {
	return tr.startSpan(ctx, "wayfind.match",
		attribute.String("http.method", httpMethod),
		attribute.String("http.path", path),
	)
}

func (tr tracer) annotateMatch(ctx context.Context, hit bool, r *route.Route) {
	if tr.t == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(attribute.Bool("wayfind.match.hit", hit))
	if r != nil {
		span.SetAttributes(
			attribute.String("wayfind.match.controller", r.Controller()),
			attribute.String("wayfind.match.action", r.Action()),
		)
	}
}

func (tr tracer) startBuildSpan(ctx context.Context, routeCount int) (context.Context, func()) {
	return tr.startSpan(ctx, "wayfind.build", attribute.Int("wayfind.build.route_count", routeCount))
}
