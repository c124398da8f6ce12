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
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestNilOTelMetricsMethodsAreNoop(t *testing.T) {
	t.Parallel()

	var m *otelMetrics
	assert.NotPanics(t, func() {
		m.recordMatch(0.001, true)
		m.recordGenerate(false)
	})
}

func collectedSum(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()

	var data metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &data))

	for _, scope := range data.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				var total int64
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
				return total
			}
		}
	}
	return 0
}

func TestNewOTelMetricsRecordsMatchAndGenerateCounts(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := newOTelMetrics(provider)
	require.NoError(t, err)

	m.recordMatch(0.001, true)
	m.recordMatch(0.002, false)
	m.recordGenerate(true)

	assert.Equal(t, int64(2), collectedSum(t, reader, "wayfind.route_set.match_total"))
	assert.Equal(t, int64(1), collectedSum(t, reader, "wayfind.route_set.generate_path_total"))
}

func TestWithOTelMetricsDefaultsToBareSDKProvider(t *testing.T) {
	t.Parallel()

	router, err := Build(func(b *Builder) {
		b.Get("/ping", RouteSpec{To: "health#ping"})
	}, WithOTelMetrics())
	require.NoError(t, err)
	require.NotNil(t, router.otelMetrics)

	assert.NotPanics(t, func() {
		router.RouteSet().Match("GET", "/ping")
	})
}

func TestWithOTelMetricsUsesGivenProvider(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	router, err := Build(func(b *Builder) {
		b.Get("/ping", RouteSpec{To: "health#ping"})
	}, WithOTelMetrics(provider))
	require.NoError(t, err)

	router.RouteSet().Match("GET", "/ping")

	assert.Equal(t, int64(1), collectedSum(t, reader, "wayfind.route_set.match_total"))
}
