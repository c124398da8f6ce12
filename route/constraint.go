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
	"regexp"
	"strings"
)

// ConstraintKind is the declarative constraint vocabulary. Procedural or
// closure-based constraints are deprecated and not supported; every
// constraint compiles once, at route construction, to an allocation-free
// check.
type ConstraintKind uint8

const (
	// ConstraintNone means the parameter is unconstrained.
	ConstraintNone ConstraintKind = iota
	// ConstraintInt requires the captured value to be one or more digits.
	ConstraintInt
	// ConstraintEmail requires a plausible email address.
	ConstraintEmail
	// ConstraintSlug requires lowercase letters, digits and hyphens.
	ConstraintSlug
	// ConstraintRegex requires the value to match a caller-supplied pattern.
	ConstraintRegex
	// ConstraintMembership requires the value to be one of an enumerated set.
	ConstraintMembership
)

var (
	intPattern   = regexp.MustCompile(`^[0-9]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Constraint is a compiled, allocation-free validator for one parameter.
type Constraint struct {
	Param   string
	Kind    ConstraintKind
	re      *regexp.Regexp
	members map[string]struct{}
}

// NewIntConstraint requires param to be a non-negative integer.
func NewIntConstraint(param string) Constraint {
	return Constraint{Param: param, Kind: ConstraintInt}
}

// NewEmailConstraint requires param to look like an email address.
func NewEmailConstraint(param string) Constraint {
	return Constraint{Param: param, Kind: ConstraintEmail}
}

// NewSlugConstraint requires param to be a lowercase hyphenated slug.
func NewSlugConstraint(param string) Constraint {
	return Constraint{Param: param, Kind: ConstraintSlug}
}

// NewRegexConstraint requires param to match pattern in full (anchored).
// Panics if pattern does not compile; constraints are validated once, at
// build time, not per-request.
func NewRegexConstraint(param, pattern string) Constraint {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		panic("route: invalid constraint pattern for " + param + ": " + err.Error())
	}
	return Constraint{Param: param, Kind: ConstraintRegex, re: re}
}

// NewMembershipConstraint requires param to be one of values.
func NewMembershipConstraint(param string, values ...string) Constraint {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return Constraint{Param: param, Kind: ConstraintMembership, members: set}
}

// Check reports whether value satisfies the constraint.
func (c Constraint) Check(value string) bool {
	switch c.Kind {
	case ConstraintNone:
		return true
	case ConstraintInt:
		return intPattern.MatchString(value)
	case ConstraintEmail:
		return emailPattern.MatchString(value)
	case ConstraintSlug:
		return slugPattern.MatchString(value)
	case ConstraintRegex:
		return c.re != nil && c.re.MatchString(value)
	case ConstraintMembership:
		_, ok := c.members[value]
		return ok
	default:
		return false
	}
}

// String renders the constraint kind for diagnostics, e.g. "int" or
// "enum(a,b,c)".
func (c Constraint) String() string {
	switch c.Kind {
	case ConstraintInt:
		return "int"
	case ConstraintEmail:
		return "email"
	case ConstraintSlug:
		return "slug"
	case ConstraintRegex:
		if c.re != nil {
			return "regex(" + c.re.String() + ")"
		}
		return "regex"
	case ConstraintMembership:
		names := make([]string, 0, len(c.members))
		for v := range c.members {
			names = append(names, v)
		}
		return "enum(" + strings.Join(names, ",") + ")"
	default:
		return "none"
	}
}

// Validate runs every constraint against captured params. On the first
// violation it returns the offending parameter name and false; the caller
// (the radix finder) treats this as "no match at this node" and falls back
// to the best earlier candidate instead of propagating an error.
func Validate(constraints []Constraint, params map[string]string) (badParam string, ok bool) {
	for _, c := range constraints {
		v, present := params[c.Param]
		if !present || !c.Check(v) {
			return c.Param, false
		}
	}
	return "", true
}
