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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordingTracerProvider() (*sdktrace.TracerProvider, *tracetest.InMemoryExporter) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	return provider, exporter
}

func TestZeroValueTracerIsNoop(t *testing.T) {
	t.Parallel()

	var tr tracer
	ctx, end := tr.startMatchSpan(context.Background(), "GET", "/x")
	assert.NotPanics(t, end)
	assert.Equal(t, context.Background(), ctx)
	assert.NotPanics(t, func() { tr.annotateMatch(ctx, true, nil) })
}

func TestWithTracerProviderRecordsBuildAndMatchSpans(t *testing.T) {
	t.Parallel()

	provider, exporter := newRecordingTracerProvider()

	router, err := Build(func(b *Builder) {
		b.Get("/widgets/:id", RouteSpec{To: "widgets#show"})
	}, WithTracerProvider(provider))
	require.NoError(t, err)

	router.RouteSet().Match("GET", "/widgets/1")
	require.NoError(t, provider.Shutdown(context.Background()))

	spans := exporter.GetSpans()
	var names []string
	for _, s := range spans {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "wayfind.build")
	assert.Contains(t, names, "wayfind.match")
}

func TestAnnotateMatchSetsRouteAttributes(t *testing.T) {
	t.Parallel()

	provider, exporter := newRecordingTracerProvider()
	tr := tracer{t: provider.Tracer(tracerName)}

	ctx, end := tr.startMatchSpan(context.Background(), "GET", "/widgets/1")
	tr.annotateMatch(ctx, true, nil)
	end()
	require.NoError(t, provider.Shutdown(context.Background()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	var sawHit bool
	for _, attr := range spans[0].Attributes {
		if string(attr.Key) == "wayfind.match.hit" {
			sawHit = true
			assert.True(t, attr.Value.AsBool())
		}
	}
	assert.True(t, sawHit)
}
