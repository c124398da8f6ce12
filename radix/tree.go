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

package radix

import (
	"strings"
	"sync"

	"github.com/wayfind-dev/wayfind/cache"
	"github.com/wayfind-dev/wayfind/internal/pathutil"
	"github.com/wayfind-dev/wayfind/route"
)

// Tree owns the root Node, a tokenization cache, and a constraint
// validation cache. Built monotonically at build time; safe for lock-free
// concurrent reads once no more Insert calls are made (the host freezes by
// simply no longer calling Insert).
type Tree struct {
	root      *Node
	tokenizer *pathutil.Tokenizer
	validator *route.Validator
}

// New creates an empty radix tree with the given tokenization cache
// capacity. Its constraint validation cache shares the same capacity; use
// WithValidator to size it independently.
func New(tokenCacheSize int) *Tree {
	if tokenCacheSize <= 0 {
		tokenCacheSize = pathutil.DefaultTokenizeCacheSize
	}
	return &Tree{
		root:      newNode(),
		tokenizer: pathutil.NewTokenizer(tokenCacheSize),
		validator: route.NewValidator(tokenCacheSize),
	}
}

// WithValidator replaces t's constraint validation cache, letting a caller
// size it independently of the tokenization cache. Must be called before
// any Find.
func (t *Tree) WithValidator(v *route.Validator) *Tree {
	t.validator = v
	return t
}

// TokenizerStats reports the tokenization cache's hit/miss counters.
func (t *Tree) TokenizerStats() cache.Stats { return t.tokenizer.Stats() }

// ValidatorStats reports the constraint validation cache's hit/miss
// counters.
func (t *Tree) ValidatorStats() cache.Stats { return t.validator.Stats() }

// Insert adds r to the tree under every one of r.Methods(). Static-segment
// precedence over dynamic/wildcard children is guaranteed structurally: a
// segment is always looked up in the static map first during Find.
func (t *Tree) Insert(r *route.Route) {
	tokens := r.Tokens()

	if len(tokens) == 0 {
		for _, m := range r.Methods() {
			t.root.setHandler(m, r)
		}
		return
	}

	current := t.root
	for _, tok := range tokens {
		switch tok.Kind {
		case route.TokenStatic:
			current = current.staticChild(tok.Name)
		case route.TokenDynamic:
			current = current.dynamicChildNode(tok.Name)
		case route.TokenWildcard:
			current = current.wildcardChildNode(tok.Name)
		}
	}

	for _, m := range r.Methods() {
		current.setHandler(m, r)
	}
}

// candidate is a snapshot of the best endpoint seen so far during traversal:
// the deepest node that is both an endpoint and has a handler for the
// requested method whose constraints the captured params already satisfy.
// Constraints are checked at snapshot time (not deferred to fallback) so an
// invalid deep match never shadows a valid shallower one.
type candidate struct {
	route  *route.Route
	params map[string]string
}

// scratch holds the per-call traversal buffers. Pooled across calls to keep
// Find allocation-light; cleared at the start of every Find.
type scratch struct {
	params map[string]string
}

var scratchPool = sync.Pool{
	New: func() any { return &scratch{params: make(map[string]string, 8)} },
}

func getScratch() *scratch {
	s, _ := scratchPool.Get().(*scratch)
	if s == nil {
		s = &scratch{params: make(map[string]string, 8)}
	}
	return s
}

func putScratch(s *scratch) {
	clear(s.params)
	scratchPool.Put(s)
}

// Find resolves (method, path) to a Route and its extracted parameters. It
// normalizes method upstream (the caller is expected to have canonicalized
// it), splits path via the cached tokenizer, and traverses with strict
// static -> dynamic -> wildcard precedence at every node, recording the
// deepest constraint-satisfying endpoint as a fallback candidate. A step that
// finds no child, or a constraint violation at the final node, falls back to
// that earlier candidate rather than failing outright.
func (t *Tree) Find(method, path string) (*route.Route, map[string]string, bool) {
	if path == "" || path == "/" {
		return t.matchEndpoint(t.root, method, nil)
	}

	segments := t.tokenizer.Split(path)
	if len(segments) == 0 {
		return t.matchEndpoint(t.root, method, nil)
	}

	s := getScratch()
	defer putScratch(s)

	var best candidate
	return t.traverse(segments, method, s, &best)
}

// traverse walks segments from the root one at a time through stepAt,
// recording the deepest matching endpoint into best as it goes. Short paths
// (the overwhelming majority of real traffic) and long ones run the exact
// same per-segment primitive, so there is no separate "fast path" to drift
// out of sync with the general case.
func (t *Tree) traverse(segments []string, method string, s *scratch, best *candidate) (*route.Route, map[string]string, bool) {
	current := t.root
	for i, seg := range segments {
		next, terminal, ok := stepAt(current, seg, segments[i:], s.params)
		if !ok {
			return t.fallbackOrMiss(best)
		}
		current = next
		recordCandidate(current, method, s.params, best, t.validator)

		if terminal {
			return t.finish(current, method, s.params, best)
		}
	}

	return t.finish(current, method, s.params, best)
}

// recordCandidate snapshots n as the new best candidate if it is an
// endpoint with a handler for method whose constraints the params
// (merged with defaults) already satisfy.
func recordCandidate(n *Node, method string, params map[string]string, best *candidate, validator *route.Validator) {
	if !n.endpoint {
		return
	}
	r, ok := n.handlerFor(method)
	if !ok {
		return
	}
	merged, err := validator.Validate(r, params)
	if err != nil {
		return
	}
	*best = candidate{route: r, params: merged}
}

// stepAt advances from n by one path segment, trying static, then dynamic,
// then wildcard children in that strict precedence order. remaining is the
// slice of segments starting at seg (including seg), needed to join a
// wildcard capture. terminal reports that the wildcard consumed everything
// remaining and traversal must stop.
//
// Exception: when a node carries both a static child matching seg and a
// wildcard child, the wildcard wins and terminates traversal there. This
// reverses the general static-over-wildcard rule specifically for that
// conflict; it does not apply to dynamic-vs-wildcard, which follows the
// general order.
func stepAt(n *Node, seg string, remaining []string, params map[string]string) (next *Node, terminal bool, ok bool) {
	staticChild, hasStatic := lookupStatic(n, seg)

	if hasStatic && n.wildcard != nil {
		params[n.wildcard.name] = strings.Join(remaining, "/")
		return n.wildcard.node, true, true
	}

	if hasStatic {
		return staticChild, false, true
	}

	if n.dynamic != nil {
		params[n.dynamic.name] = seg
		return n.dynamic.node, false, true
	}

	if n.wildcard != nil {
		params[n.wildcard.name] = strings.Join(remaining, "/")
		return n.wildcard.node, true, true
	}

	return nil, false, false
}

func lookupStatic(n *Node, seg string) (*Node, bool) {
	if n.static == nil {
		return nil, false
	}
	child, ok := n.static[seg]
	return child, ok
}

// finish validates constraints at the reached endpoint, returning it on
// success or falling back to best on a constraint violation or missing
// handler.
func (t *Tree) finish(n *Node, method string, captured map[string]string, best *candidate) (*route.Route, map[string]string, bool) {
	r, ok := n.handlerFor(method)
	if !ok || !n.endpoint {
		return t.fallbackOrMiss(best)
	}

	merged, err := t.validator.Validate(r, captured)
	if err != nil {
		return t.fallbackOrMiss(best)
	}

	return r, merged, true
}

// fallbackOrMiss returns the recorded best candidate, or a miss if none was
// ever recorded. The candidate was already constraint-validated at snapshot
// time, so no re-validation happens here.
func (t *Tree) fallbackOrMiss(best *candidate) (*route.Route, map[string]string, bool) {
	if best.route == nil {
		return nil, nil, false
	}
	return best.route, best.params, true
}

// matchEndpoint validates and returns n's handler for method, used for the
// root-path special case.
func (t *Tree) matchEndpoint(n *Node, method string, captured map[string]string) (*route.Route, map[string]string, bool) {
	r, ok := n.handlerFor(method)
	if !ok || !n.endpoint {
		return nil, nil, false
	}

	merged, err := t.validator.Validate(r, captured)
	if err != nil {
		return nil, nil, false
	}

	return r, merged, true
}
