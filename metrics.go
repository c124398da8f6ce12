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
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
)

// metricsRecorder wires RouteSet.Match/GeneratePath outcomes into
// Prometheus. A nil *metricsRecorder is always safe to call methods on:
// every method is a no-op when the receiver or any of its collectors is
// nil, which is how metrics stay strictly opt-in.
type metricsRecorder struct {
	matchTotal    *promclient.CounterVec
	matchDuration promclient.Histogram
	generateTotal *promclient.CounterVec
	routeSetSize  promclient.Gauge
}

func newMetricsRecorder(reg promclient.Registerer) *metricsRecorder {
	m := &metricsRecorder{
		matchTotal: promclient.NewCounterVec(promclient.CounterOpts{
			Namespace: "wayfind",
			Name:      "route_set_match_total",
			Help:      "Total number of RouteSet.Match calls, labeled by outcome.",
		}, []string{"outcome"}),
		matchDuration: promclient.NewHistogram(promclient.HistogramOpts{
			Namespace: "wayfind",
			Name:      "route_set_match_duration_seconds",
			Help:      "Duration of RouteSet.Match calls.",
			Buckets:   promclient.DefBuckets,
		}),
		generateTotal: promclient.NewCounterVec(promclient.CounterOpts{
			Namespace: "wayfind",
			Name:      "route_set_generate_path_total",
			Help:      "Total number of RouteSet.GeneratePath calls, labeled by outcome.",
		}, []string{"outcome"}),
		routeSetSize: promclient.NewGauge(promclient.GaugeOpts{
			Namespace: "wayfind",
			Name:      "route_set_size",
			Help:      "Number of routes registered in the RouteSet.",
		}),
	}

	reg.MustRegister(m.matchTotal, m.matchDuration, m.generateTotal, m.routeSetSize)

	return m
}

func (m *metricsRecorder) recordMatch(elapsed time.Duration, hit bool) {
	if m == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.matchTotal.WithLabelValues(outcome).Inc()
	m.matchDuration.Observe(elapsed.Seconds())
}

func (m *metricsRecorder) recordGenerate(ok bool) {
	if m == nil {
		return
	}
	outcome := "error"
	if ok {
		outcome = "ok"
	}
	m.generateTotal.WithLabelValues(outcome).Inc()
}

func (m *metricsRecorder) setRouteSetSize(n int) {
	if m == nil {
		return
	}
	m.routeSetSize.Set(float64(n))
}
