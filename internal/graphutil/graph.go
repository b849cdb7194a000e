// Copyright (c) the solidity-go authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package graphutil

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/dot"
)

// CGraph is a dense directed graph over labeled nodes. It implements the
// graph.Iterator interface of github.com/yourbasic/graph and the
// graph.Directed interface of gonum, so cycle enumeration and DOT encoding
// run on the same value.
type CGraph struct {
	// The order of the graph
	order int

	// IDMap maps from node IDs to CNodes
	IDMap map[int64]CNode

	// Keys are all the node IDs, sorted
	Keys []int64

	// Edges is an adjacency matrix: Edges[x][y] means there is a directed edge between IDMap[x] and IDMap[y]
	Edges map[int64]map[int64]bool
}

// NewLabeledGraph builds a graph from an adjacency map over labels. Every
// label appearing as a key or an edge target becomes a node. Node ids are
// assigned densely in sorted label order, so ids are stable for a given
// input.
func NewLabeledGraph(adjacency map[string][]string) CGraph {
	labels := make(map[string]bool, len(adjacency))
	for from, targets := range adjacency {
		labels[from] = true
		for _, to := range targets {
			labels[to] = true
		}
	}
	sorted := make([]string, 0, len(labels))
	for label := range labels {
		sorted = append(sorted, label)
	}
	sort.Strings(sorted)

	ids := make(map[string]int64, len(sorted))
	idmap := make(map[int64]CNode, len(sorted))
	keys := make([]int64, len(sorted))
	for i, label := range sorted {
		id := int64(i)
		ids[label] = id
		idmap[id] = CNode{id: id, Label: label}
		keys[i] = id
	}

	edges := make(map[int64]map[int64]bool, len(sorted))
	for _, id := range keys {
		edges[id] = map[int64]bool{}
	}
	for from, targets := range adjacency {
		for _, to := range targets {
			edges[ids[from]][ids[to]] = true
		}
	}

	return CGraph{
		order: len(sorted),
		IDMap: idmap,
		Keys:  keys,
		Edges: edges,
	}
}

// Subgraph returns a new graph that is the original graph with only the nodes in include. Only the edges that have
// both the origin and destination nodes in the include nodes are kept in the resulting graph.
// The subgraph's order and IDMap are the same as in the original, meaning that node indices stay consistent
// across subgraphs.
func Subgraph(original CGraph, include []int64) CGraph {
	included := make(map[int64]bool, len(include))
	keys := make([]int64, len(include))
	for j, i := range include {
		keys[j] = i
		included[i] = true
	}

	edges := make(map[int64]map[int64]bool, len(include))
	for _, i := range include {
		edges[i] = map[int64]bool{}
		for e := range original.Edges[i] {
			if included[e] {
				edges[i][e] = true
			}
		}
	}

	return CGraph{
		order: original.Order(),
		IDMap: original.IDMap,
		Edges: edges,
		Keys:  keys,
	}
}

// Order implements the order of the graph.Iterator interface for the CGraph
func (c CGraph) Order() int {
	return c.order
}

// Visit implements the graph.Iterator interface for the CGraph. Nodes
// missing from Edges, as happens in subgraphs, are visited as isolated.
func (c CGraph) Visit(v int, do func(w int, weight int64) (skip bool)) (aborted bool) {
	for w := range c.Edges[int64(v)] {
		if do(int(w), 1) {
			return true
		}
	}
	return false
}

// *************** gonum Directed implementation **********************

// Node returns the node with the given id, or nil if it does not exist.
func (c CGraph) Node(id int64) graph.Node {
	if n, ok := c.IDMap[id]; ok {
		return n
	}
	return nil
}

// Nodes returns the set of nodes in the graph
func (c CGraph) Nodes() graph.Nodes {
	return newNodeSet(c.IDMap, c.Keys)
}

// From returns the set of nodes reachable from the id in one edge
func (c CGraph) From(id int64) graph.Nodes {
	var keys []int64
	for out := range c.Edges[id] {
		keys = append(keys, out)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return newNodeSet(c.IDMap, keys)
}

// To returns the set of nodes with an edge into the id
func (c CGraph) To(id int64) graph.Nodes {
	var keys []int64
	for from, out := range c.Edges {
		if out[id] {
			keys = append(keys, from)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return newNodeSet(c.IDMap, keys)
}

// HasEdgeBetween returns a boolean indicating whether an edge exists between the two node identifiers
func (c CGraph) HasEdgeBetween(xid, yid int64) bool {
	return c.Edges[xid][yid] || c.Edges[yid][xid]
}

// HasEdgeFromTo returns a boolean indicating whether a directed edge exists from uid to vid
func (c CGraph) HasEdgeFromTo(uid, vid int64) bool {
	return c.Edges[uid][vid]
}

// Edge returns the edge between the two identifiers (nil if none exists)
func (c CGraph) Edge(uid, vid int64) graph.Edge {
	if c.Edges[uid][vid] {
		return CEdge{from: c.IDMap[uid], to: c.IDMap[vid]}
	}
	return nil
}

// MarshalDOT renders the graph in Graphviz DOT format under the given graph
// name.
func MarshalDOT(c CGraph, name string) ([]byte, error) {
	return dot.Marshal(c, name, "", "  ")
}

// *************** Nodes implementation **********************

// CNode is a labeled node implementing the graph.Node interface
type CNode struct {
	id    int64
	Label string
}

// ID returns the id of the node
func (n CNode) ID() int64 {
	return n.id
}

func (n CNode) String() string {
	return n.Label
}

// DOTID returns the name of the node in DOT output
func (n CNode) DOTID() string {
	return n.Label
}

// NodeSet implements the graph.Nodes interface, an iterator over a set of nodes.
// A fresh iterator is positioned before the first node.
type NodeSet struct {
	// nodes is the set of nodes in the iterator
	nodes map[int64]CNode

	// ids is the set of node ids in the iterator
	ids []int64

	// cur is the current index of the iterator. The current node is nodes[ids[cur]]
	// invariant: -1 <= cur <= len(ids)
	cur int
}

func newNodeSet(nodes map[int64]CNode, ids []int64) *NodeSet {
	return &NodeSet{nodes: nodes, ids: ids, cur: -1}
}

// Next moves the iterator to the next node and returns true if one exists.
func (ns *NodeSet) Next() bool {
	if ns.cur < len(ns.ids) {
		ns.cur++
	}
	return ns.cur < len(ns.ids)
}

// Len returns the number of nodes remaining in the iterator
func (ns *NodeSet) Len() int {
	if remaining := len(ns.ids) - ns.cur - 1; remaining > 0 {
		return remaining
	}
	return 0
}

// Reset positions the iterator before the first node again
func (ns *NodeSet) Reset() {
	ns.cur = -1
}

// Node returns the current node in the set
func (ns *NodeSet) Node() graph.Node {
	if ns.cur < 0 || ns.cur >= len(ns.ids) {
		return nil
	}
	return ns.nodes[ns.ids[ns.cur]]
}

// *************** Edge implementation **********************

// CEdge implements the graph.Edge interface
type CEdge struct {
	from CNode
	to   CNode
}

// From returns the origin of the edge
func (e CEdge) From() graph.Node {
	return e.from
}

// To returns the destination of the edge
func (e CEdge) To() graph.Node {
	return e.to
}

// ReversedEdge returns a new value representing the reversed edge
func (e CEdge) ReversedEdge() graph.Edge {
	return CEdge{from: e.to, to: e.from}
}
