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

// DiagnosticEvent is an informational event raised during Build or at
// request-matching time. Diagnostics never affect correctness: the router
// behaves identically whether or not a handler is attached.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// DiagHighParamCount fires when a route captures an unusually large
	// number of dynamic/wildcard segments.
	DiagHighParamCount DiagnosticKind = "route_param_count_high"
	// DiagRouteRegistered fires once per route as it is added, useful for
	// build-time audit logging.
	DiagRouteRegistered DiagnosticKind = "route_registered"
	// DiagRecognitionEvictionStorm fires after 32 consecutive recognition
	// cache inserts have each forced an eviction. Each eviction frees a
	// quarter of the capacity (at least one entry), so inserts evict back to
	// back only when the capacity is below 8; a larger cache never raises
	// this event.
	DiagRecognitionEvictionStorm DiagnosticKind = "recognition_eviction_storm"
)

// DiagnosticHandler receives diagnostic events. Implementations may log,
// emit metrics, or ignore them entirely; nothing in the router depends on
// a handler being present.
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc adapts a plain function to DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

// OnDiagnostic calls f(e).
func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) { f(e) }

const highParamCountThreshold = 8

func (r *Router) emit(kind DiagnosticKind, message string, fields map[string]any) {
	if r.diagnostics == nil {
		return
	}
	r.diagnostics.OnDiagnostic(DiagnosticEvent{Kind: kind, Message: message, Fields: fields})
}
