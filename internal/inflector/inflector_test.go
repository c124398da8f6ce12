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

package inflector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralizeRegularSuffixRules(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"post":  "posts",
		"city":  "cities",
		"bus":   "buses",
		"box":   "boxes",
		"match": "matches",
		"dish":  "dishes",
		"knife": "knives",
		"leaf":  "leaves",
	}
	for in, want := range cases {
		assert.Equal(t, want, Pluralize(in), in)
	}
}

func TestPluralizeIrregular(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "people", Pluralize("person"))
	assert.Equal(t, "children", Pluralize("child"))
}

func TestPluralizeUncountableUnchanged(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "equipment", Pluralize("equipment"))
}

func TestPluralizePreservesCapitalization(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Posts", Pluralize("Post"))
}

func TestSingularizeRegularSuffixRules(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"posts":   "post",
		"cities":  "city",
		"buses":   "bus",
		"boxes":   "box",
		"matches": "match",
		"dishes":  "dish",
		"knives":  "knife",
		"leaves":  "leaf",
	}
	for in, want := range cases {
		assert.Equal(t, want, Singularize(in), in)
	}
}

func TestSingularizeIrregular(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "person", Singularize("people"))
}

func TestSingularizeUncountableUnchanged(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "sheep", Singularize("sheep"))
}

func TestPluralizeEmptyStringUnchanged(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", Pluralize(""))
	assert.Equal(t, "", Singularize(""))
}
