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

package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePathSubstitutesBindings(t *testing.T) {
	t.Parallel()

	r, err := New("/widgets/:id", []string{"GET"}, Options{Controller: "widgets", Action: "show"})
	require.NoError(t, err)

	path, err := r.GeneratePath(map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/widgets/7", path)
}

func TestGeneratePathFallsBackToDefault(t *testing.T) {
	t.Parallel()

	r, err := New("/reports/:format", []string{"GET"}, Options{
		Controller: "reports", Action: "index",
		Defaults: map[string]string{"format": "json"},
	})
	require.NoError(t, err)

	path, err := r.GeneratePath(nil)
	require.NoError(t, err)
	assert.Equal(t, "/reports/json", path)
}

func TestGeneratePathMissingParamErrors(t *testing.T) {
	t.Parallel()

	r, err := New("/widgets/:id", []string{"GET"}, Options{Controller: "widgets", Action: "show"})
	require.NoError(t, err)

	_, err = r.GeneratePath(nil)
	assert.ErrorIs(t, err, ErrMissingParam)
}

func TestGeneratePathRootRoute(t *testing.T) {
	t.Parallel()

	r, err := New("/", []string{"GET"}, Options{Controller: "home", Action: "index"})
	require.NoError(t, err)

	path, err := r.GeneratePath(nil)
	require.NoError(t, err)
	assert.Equal(t, "/", path)
}

func TestGeneratorCachesRepeatGenerate(t *testing.T) {
	t.Parallel()

	r, err := New("/widgets/:id", []string{"GET"}, Options{Controller: "widgets", Action: "show", Name: "widget"})
	require.NoError(t, err)

	g := NewGenerator(4)

	path1, err := g.Generate(r, map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/widgets/7", path1)
	assert.Equal(t, uint64(0), g.Stats().Hits)

	path2, err := g.Generate(r, map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, path1, path2)
	assert.Equal(t, uint64(1), g.Stats().Hits)
}

func TestGeneratorDistinguishesBindingSets(t *testing.T) {
	t.Parallel()

	r, err := New("/widgets/:id", []string{"GET"}, Options{Controller: "widgets", Action: "show", Name: "widget"})
	require.NoError(t, err)

	g := NewGenerator(4)
	p1, err := g.Generate(r, map[string]string{"id": "7"})
	require.NoError(t, err)
	p2, err := g.Generate(r, map[string]string{"id": "8"})
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
}

func TestGeneratorClearResetsCache(t *testing.T) {
	t.Parallel()

	r, err := New("/widgets/:id", []string{"GET"}, Options{Controller: "widgets", Action: "show", Name: "widget"})
	require.NoError(t, err)

	g := NewGenerator(4)
	_, err = g.Generate(r, map[string]string{"id": "7"})
	require.NoError(t, err)

	g.Clear()
	assert.Equal(t, 0, g.Stats().Size)
}
