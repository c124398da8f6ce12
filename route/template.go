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
	"fmt"
	"strings"
)

// TokenKind identifies one segment of a parsed path template.
type TokenKind uint8

const (
	// TokenStatic is a literal segment; Name holds the literal text.
	TokenStatic TokenKind = iota
	// TokenDynamic is a ":name" segment; Name holds the parameter name.
	TokenDynamic
	// TokenWildcard is a "*name" segment; Name holds the capture name
	// ("splat" when the template wrote a bare "*").
	TokenWildcard
)

// Token is one parsed segment of a path template.
type Token struct {
	Kind TokenKind
	Name string
}

// ParseTemplate splits path into segments and classifies each one. A
// wildcard token, if present, must be the final segment. ":" or "*" with an
// empty name is an error, except a bare "*" (which defaults to "splat").
func ParseTemplate(path string) ([]Token, error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil, nil
	}

	raw := strings.Split(trimmed, "/")
	tokens := make([]Token, 0, len(raw))

	for i, seg := range raw {
		if seg == "" {
			continue
		}

		switch seg[0] {
		case ':':
			name := seg[1:]
			if !isValidParamName(name) {
				return nil, fmt.Errorf("empty or invalid dynamic segment name in %q", path)
			}
			tokens = append(tokens, Token{Kind: TokenDynamic, Name: name})
		case '*':
			name := seg[1:]
			if name == "" {
				name = "splat"
			} else if !isValidParamName(name) {
				return nil, fmt.Errorf("invalid wildcard segment name in %q", path)
			}
			if i != len(raw)-1 {
				return nil, fmt.Errorf("wildcard segment must be last in %q", path)
			}
			tokens = append(tokens, Token{Kind: TokenWildcard, Name: name})
		default:
			tokens = append(tokens, Token{Kind: TokenStatic, Name: seg})
		}
	}

	return tokens, nil
}

// isValidParamName matches [A-Za-z_][A-Za-z0-9_]*.
func isValidParamName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		isAlpha := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
		isDigit := c >= '0' && c <= '9'
		if i == 0 && !isAlpha {
			return false
		}
		if i > 0 && !isAlpha && !isDigit {
			return false
		}
	}
	return true
}
