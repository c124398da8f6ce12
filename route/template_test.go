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

func TestParseTemplateClassifiesEachSegment(t *testing.T) {
	t.Parallel()

	tokens, err := ParseTemplate("/posts/:id/comments/*rest")
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, Token{Kind: TokenStatic, Name: "posts"}, tokens[0])
	assert.Equal(t, Token{Kind: TokenDynamic, Name: "id"}, tokens[1])
	assert.Equal(t, Token{Kind: TokenStatic, Name: "comments"}, tokens[2])
	assert.Equal(t, Token{Kind: TokenWildcard, Name: "rest"}, tokens[3])
}

func TestParseTemplateRootIsEmpty(t *testing.T) {
	t.Parallel()

	tokens, err := ParseTemplate("/")
	require.NoError(t, err)
	assert.Empty(t, tokens)

	tokens, err = ParseTemplate("")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestParseTemplateBareWildcardDefaultsToSplat(t *testing.T) {
	t.Parallel()

	tokens, err := ParseTemplate("/files/*")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, Token{Kind: TokenWildcard, Name: "splat"}, tokens[1])
}

func TestParseTemplateEmptyDynamicNameErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseTemplate("/posts/:")
	assert.Error(t, err)
}

func TestParseTemplateInvalidDynamicNameErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseTemplate("/posts/:9bad")
	assert.Error(t, err)
}

func TestParseTemplateWildcardMustBeLastSegment(t *testing.T) {
	t.Parallel()

	_, err := ParseTemplate("/files/*rest/more")
	assert.Error(t, err)
}

func TestParseTemplateDuplicateDynamicNameIsPermitted(t *testing.T) {
	t.Parallel()

	// ParseTemplate operates purely on one template string; it does not
	// reject a name reused across segments. Resolving what that means for
	// captured params is the caller's responsibility (see
	// route.Route.Match, which simply assigns into a flat map, the later
	// occurrence winning).
	tokens, err := ParseTemplate("/posts/:id/comments/:id")
	require.NoError(t, err)
	assert.Len(t, tokens, 4)
}
