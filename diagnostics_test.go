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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticHandlerFuncAdapts(t *testing.T) {
	t.Parallel()

	var got DiagnosticEvent
	var handler DiagnosticHandler = DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		got = e
	})

	handler.OnDiagnostic(DiagnosticEvent{Kind: DiagRouteRegistered, Message: "hi"})
	assert.Equal(t, DiagRouteRegistered, got.Kind)
	assert.Equal(t, "hi", got.Message)
}

func TestRouterEmitIsNoopWithoutHandler(t *testing.T) {
	t.Parallel()

	r := &Router{}
	assert.NotPanics(t, func() {
		r.emit(DiagRouteRegistered, "msg", nil)
	})
}

func TestRouterEmitDispatchesToHandler(t *testing.T) {
	t.Parallel()

	var events []DiagnosticEvent
	r := &Router{diagnostics: DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		events = append(events, e)
	})}

	r.emit(DiagHighParamCount, "too many params", map[string]any{"path": "/a/:b"})

	assert.Len(t, events, 1)
	assert.Equal(t, DiagHighParamCount, events[0].Kind)
	assert.Equal(t, "/a/:b", events[0].Fields["path"])
}
