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
)

func TestIntConstraint(t *testing.T) {
	t.Parallel()

	c := NewIntConstraint("id")
	assert.True(t, c.Check("42"))
	assert.False(t, c.Check("4a"))
	assert.False(t, c.Check(""))
}

func TestEmailConstraint(t *testing.T) {
	t.Parallel()

	c := NewEmailConstraint("email")
	assert.True(t, c.Check("a@b.com"))
	assert.False(t, c.Check("not-an-email"))
}

func TestSlugConstraint(t *testing.T) {
	t.Parallel()

	c := NewSlugConstraint("slug")
	assert.True(t, c.Check("hello-world-42"))
	assert.False(t, c.Check("Hello World"))
}

func TestRegexConstraint(t *testing.T) {
	t.Parallel()

	c := NewRegexConstraint("hex", "[a-f0-9]+")
	assert.True(t, c.Check("deadbeef"))
	assert.False(t, c.Check("not-hex!"))
}

func TestRegexConstraintInvalidPatternPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewRegexConstraint("bad", "(")
	})
}

func TestMembershipConstraint(t *testing.T) {
	t.Parallel()

	c := NewMembershipConstraint("format", "json", "xml")
	assert.True(t, c.Check("json"))
	assert.False(t, c.Check("yaml"))
}

func TestConstraintString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "int", NewIntConstraint("id").String())
	assert.Equal(t, "email", NewEmailConstraint("e").String())
	assert.Equal(t, "slug", NewSlugConstraint("s").String())
	assert.Contains(t, NewRegexConstraint("r", "a+").String(), "regex(")
	assert.Contains(t, NewMembershipConstraint("f", "a", "b").String(), "enum(")
}

func TestValidateReturnsFirstViolation(t *testing.T) {
	t.Parallel()

	constraints := []Constraint{NewIntConstraint("id")}
	badParam, ok := Validate(constraints, map[string]string{"id": "abc"})
	assert.False(t, ok)
	assert.Equal(t, "id", badParam)
}

func TestValidatePassesWhenAllSatisfied(t *testing.T) {
	t.Parallel()

	constraints := []Constraint{NewIntConstraint("id"), NewSlugConstraint("slug")}
	_, ok := Validate(constraints, map[string]string{"id": "1", "slug": "a-b"})
	assert.True(t, ok)
}

func TestValidateMissingParamIsViolation(t *testing.T) {
	t.Parallel()

	constraints := []Constraint{NewIntConstraint("id")}
	_, ok := Validate(constraints, map[string]string{})
	assert.False(t, ok)
}
