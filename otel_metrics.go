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

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// otelMetrics mirrors metricsRecorder's signals through the OpenTelemetry
// metrics API instead of Prometheus, for hosts that already standardized
// on an otel metrics pipeline rather than /metrics scraping. Like
// metricsRecorder, a nil *otelMetrics is always a safe no-op receiver.
type otelMetrics struct {
	matchCount    metric.Int64Counter
	matchDuration metric.Float64Histogram
	generateCount metric.Int64Counter
}

// newOTelMeterProvider builds a minimal SDK meter provider with no
// configured reader. It is a valid, instantiable metric.MeterProvider on
// its own terms (instruments can be created and recorded against). The
// caller is expected to attach a reader/exporter via its own provider
// when real export is wanted.
func newOTelMeterProvider() metric.MeterProvider {
	return sdkmetric.NewMeterProvider()
}

func newOTelMetrics(provider metric.MeterProvider) (*otelMetrics, error) {
	meter := provider.Meter(tracerName)

	matchCount, err := meter.Int64Counter(
		"wayfind.route_set.match_total",
		metric.WithDescription("Total number of RouteSet.Match calls, labeled by outcome."),
	)
	if err != nil {
		return nil, err
	}

	matchDuration, err := meter.Float64Histogram(
		"wayfind.route_set.match_duration_seconds",
		metric.WithDescription("Duration of RouteSet.Match calls."),
	)
	if err != nil {
		return nil, err
	}

	generateCount, err := meter.Int64Counter(
		"wayfind.route_set.generate_path_total",
		metric.WithDescription("Total number of RouteSet.GeneratePath calls, labeled by outcome."),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		matchCount:    matchCount,
		matchDuration: matchDuration,
		generateCount: generateCount,
	}, nil
}

func (m *otelMetrics) recordMatch(seconds float64, hit bool) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Bool("hit", hit))
	m.matchCount.Add(context.Background(), 1, attrs)
	m.matchDuration.Record(context.Background(), seconds, attrs)
}

func (m *otelMetrics) recordGenerate(ok bool) {
	if m == nil {
		return
	}
	m.generateCount.Add(context.Background(), 1, metric.WithAttributes(attribute.Bool("ok", ok)))
}
