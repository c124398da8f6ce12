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

// Package inflector provides the minimal pluralize/singularize rules the
// resource DSL needs to turn "post" into "posts" (and back) for naming
// RESTful routes. It is intentionally small: a handful of English suffix
// rules, not a general inflection engine.
package inflector

import "strings"

var irregular = map[string]string{
	"person": "people",
	"man":    "men",
	"woman":  "women",
	"child":  "children",
	"tooth":  "teeth",
	"foot":   "feet",
	"mouse":  "mice",
	"goose":  "geese",
}

var irregularSingular = reverse(irregular)

func reverse(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

var uncountable = map[string]bool{
	"equipment": true, "information": true, "rice": true, "money": true,
	"species": true, "series": true, "fish": true, "sheep": true,
	"news": true,
}

// Pluralize converts a singular noun to its plural form using common
// English suffix rules. An already-plural word is not detected
// (Pluralize("cities") returns "citieses"); callers pass the singular form.
func Pluralize(word string) string {
	if word == "" {
		return word
	}
	lower := strings.ToLower(word)
	if uncountable[lower] {
		return word
	}
	if plural, ok := irregular[lower]; ok {
		return matchCase(word, plural)
	}

	switch {
	case strings.HasSuffix(lower, "y") && len(word) > 1 && !isVowel(lower[len(lower)-2]):
		return word[:len(word)-1] + "ies" // city -> cities
	case strings.HasSuffix(lower, "s"), strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "ch"), strings.HasSuffix(lower, "sh"):
		return word + "es" // bus -> buses, box -> boxes, match -> matches
	case strings.HasSuffix(lower, "fe"):
		return word[:len(word)-2] + "ves" // knife -> knives
	case strings.HasSuffix(lower, "f") && len(word) > 1:
		return word[:len(word)-1] + "ves" // leaf -> leaves
	default:
		return word + "s" // post -> posts
	}
}

// Singularize converts a plural noun back to its singular form.
func Singularize(word string) string {
	if word == "" {
		return word
	}
	lower := strings.ToLower(word)
	if uncountable[lower] {
		return word
	}
	if singular, ok := irregularSingular[lower]; ok {
		return matchCase(word, singular)
	}

	switch {
	case strings.HasSuffix(lower, "ies") && len(word) > 3:
		return word[:len(word)-3] + "y" // cities -> city
	case strings.HasSuffix(lower, "ves") && len(word) > 3:
		if lower[len(lower)-4] == 'i' {
			return word[:len(word)-3] + "fe" // knives -> knife
		}
		return word[:len(word)-3] + "f" // leaves -> leaf
	case strings.HasSuffix(lower, "xes"), strings.HasSuffix(lower, "ches"),
		strings.HasSuffix(lower, "shes"), strings.HasSuffix(lower, "sses"),
		strings.HasSuffix(lower, "buses"):
		return word[:len(word)-2] // boxes -> box, matches -> match
	case strings.HasSuffix(lower, "s") && len(word) > 1:
		return word[:len(word)-1] // users -> user
	default:
		return word
	}
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}

// matchCase upper-cases the first letter of result when the original word
// starts with an upper-case letter, so an irregular lookup keeps the
// caller's capitalization: Pluralize("Person") returns "People".
func matchCase(original, result string) string {
	if original == "" || result == "" {
		return result
	}
	if original[0] >= 'A' && original[0] <= 'Z' {
		return strings.ToUpper(result[:1]) + result[1:]
	}
	return result
}
