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

// Package radix implements the prefix tree that interleaves static,
// dynamic and wildcard path segments with deterministic precedence and
// best-candidate fallback.
package radix

import "github.com/wayfind-dev/wayfind/route"

// dynamicChild is the single ":name" child a node may have.
type dynamicChild struct {
	name string
	node *Node
}

// wildcardChild is the single "*name" child a node may have. Its presence
// forces traversal to terminate: everything remaining is captured as one
// value.
type wildcardChild struct {
	name string
	node *Node
}

// Node is one node of the radix tree. At most one dynamic child and one
// wildcard child are allowed per node; static children are keyed by their
// literal segment text.
type Node struct {
	static   map[string]*Node
	dynamic  *dynamicChild
	wildcard *wildcardChild

	endpoint bool
	handlers map[string]*route.Route // method -> Route
}

func newNode() *Node {
	return &Node{}
}

// staticChild returns (creating if necessary) the static child keyed by seg.
func (n *Node) staticChild(seg string) *Node {
	if n.static == nil {
		n.static = make(map[string]*Node, 4)
	}
	child, ok := n.static[seg]
	if !ok {
		child = newNode()
		n.static[seg] = child
	}
	return child
}

// dynamicChildNode returns (creating if necessary) this node's single
// dynamic child, recording name the first time it's created. A second
// distinct dynamic-child name at the same node is a conflicting-route
// construction error the caller is expected to have avoided; the tree keeps
// the first name seen (first-inserted wins, per the spec's stable
// precedence rule).
func (n *Node) dynamicChildNode(name string) *Node {
	if n.dynamic == nil {
		n.dynamic = &dynamicChild{name: name, node: newNode()}
	}
	return n.dynamic.node
}

// wildcardChildNode returns (creating if necessary) this node's single
// wildcard child.
func (n *Node) wildcardChildNode(name string) *Node {
	if n.wildcard == nil {
		n.wildcard = &wildcardChild{name: name, node: newNode()}
	}
	return n.wildcard.node
}

// setHandler installs r as this node's handler for method, and marks the
// node as an endpoint.
func (n *Node) setHandler(method string, r *route.Route) {
	n.endpoint = true
	if n.handlers == nil {
		n.handlers = make(map[string]*route.Route, 4)
	}
	if _, exists := n.handlers[method]; exists {
		return // first-inserted wins
	}
	n.handlers[method] = r
}

// handlerFor returns the Route registered for method at this node, if any.
func (n *Node) handlerFor(method string) (*route.Route, bool) {
	r, ok := n.handlers[method]
	return r, ok
}
