// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package graph builds the full rewrite graph of an arithmetic expression:
// every state syntactically reachable through evaluate, distribute and
// drop-bracket steps, deduplicated by canonical text, breadth-first from
// the starting expression.
package graph

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"

	"github.com/AleutianAI/MathTrail/services/expression"
	"github.com/AleutianAI/MathTrail/services/rewrite"
)

// Node is one deduplicated expression state.
type Node struct {
	// ID is derived from the canonical expression text, so the same state
	// always gets the same ID.
	ID string `json:"id"`

	// Expression is the canonical text, e.g. "(2+3)*5".
	Expression string `json:"expression"`

	// Tokens is the simplified token sequence behind Expression.
	Tokens expression.Tokens `json:"tokens"`

	// Terminal marks a fully reduced state: a single operand.
	Terminal bool `json:"terminal"`

	// Result holds the numeric value for terminal nodes.
	Result float64 `json:"result,omitempty"`

	// ParentID is the node this state was first discovered from. Empty for
	// the root.
	ParentID string `json:"parent_id,omitempty"`
}

// Edge is one rewrite step between two states.
type Edge struct {
	FromID      string             `json:"from_id"`
	ToID        string             `json:"to_id"`
	Kind        rewrite.ActionKind `json:"kind"`
	Operator    string             `json:"operator,omitempty"`
	Description string             `json:"description"`
}

// Graph is the complete rewrite graph of one expression.
type Graph struct {
	// Expression is the canonical text of the root state.
	Expression string `json:"expression"`

	// RootID is the root node's ID.
	RootID string `json:"root_id"`

	// Nodes maps node ID to node. Every reachable state appears exactly
	// once.
	Nodes map[string]*Node `json:"nodes"`

	// Edges lists every rewrite step in discovery order. Parallel rewrites
	// between the same pair of states collapse into one edge per distinct
	// target.
	Edges []Edge `json:"edges"`

	// Truncated is set when the node ceiling stopped the build before the
	// frontier was exhausted.
	Truncated bool `json:"truncated"`
}

// NodeID derives a stable node identifier from canonical expression text.
func NodeID(canonical string) string {
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:8])
}

// FinalResults returns the distinct numeric values of all terminal nodes,
// sorted ascending. For a mistake-inclusive graph this is the set of every
// answer a learner could possibly arrive at.
func (g *Graph) FinalResults() []float64 {
	seen := make(map[float64]bool)
	var results []float64
	for _, n := range g.Nodes {
		if n.Terminal && !seen[n.Result] {
			seen[n.Result] = true
			results = append(results, n.Result)
		}
	}
	sort.Float64s(results)
	return results
}

// TerminalCount returns the number of terminal nodes.
func (g *Graph) TerminalCount() int {
	count := 0
	for _, n := range g.Nodes {
		if n.Terminal {
			count++
		}
	}
	return count
}

// EdgeCounts returns the number of edges per rewrite kind.
func (g *Graph) EdgeCounts() map[rewrite.ActionKind]int {
	counts := make(map[rewrite.ActionKind]int)
	for _, e := range g.Edges {
		counts[e.Kind]++
	}
	return counts
}

// TracePath walks parent links from a node back to the root and returns the
// path in root-first order. Returns nil for an unknown node ID.
func (g *Graph) TracePath(nodeID string) []*Node {
	node, ok := g.Nodes[nodeID]
	if !ok {
		return nil
	}
	var path []*Node
	for node != nil {
		path = append(path, node)
		if node.ParentID == "" {
			break
		}
		node = g.Nodes[node.ParentID]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Summary condenses a graph for logs and API responses.
type Summary struct {
	Expression   string                     `json:"expression"`
	NodeCount    int                        `json:"node_count"`
	EdgeCount    int                        `json:"edge_count"`
	Terminals    int                        `json:"terminal_count"`
	FinalResults []float64                  `json:"final_results"`
	EdgeCounts   map[rewrite.ActionKind]int `json:"edge_counts"`
	Truncated    bool                       `json:"truncated"`
}

// Summarize builds the graph's summary.
func (g *Graph) Summarize() Summary {
	return Summary{
		Expression:   g.Expression,
		NodeCount:    len(g.Nodes),
		EdgeCount:    len(g.Edges),
		Terminals:    g.TerminalCount(),
		FinalResults: g.FinalResults(),
		EdgeCounts:   g.EdgeCounts(),
		Truncated:    g.Truncated,
	}
}

// newNode constructs a node for a simplified token sequence, detecting
// terminal states.
func newNode(tokens expression.Tokens, parentID string) *Node {
	canonical := tokens.Canonical()
	n := &Node{
		ID:         NodeID(canonical),
		Expression: canonical,
		Tokens:     tokens,
		ParentID:   parentID,
	}
	if len(tokens) == 1 && expression.IsOperand(tokens[0]) {
		if v, err := strconv.ParseFloat(tokens[0], 64); err == nil {
			n.Terminal = true
			n.Result = v
		}
	}
	return n
}
