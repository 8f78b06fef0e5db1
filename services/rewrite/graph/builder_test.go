// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/MathTrail/services/expression"
	"github.com/AleutianAI/MathTrail/services/rewrite"
)

func buildGraph(t *testing.T, expr string, opts BuilderOptions) *Graph {
	t.Helper()
	b, err := NewBuilder(opts)
	require.NoError(t, err)
	g, err := b.Build(expr)
	require.NoError(t, err)
	return g
}

func TestBuildSimpleBracketExpression(t *testing.T) {
	g := buildGraph(t, "(2+3)*5", BuilderOptions{})

	assert.Equal(t, "(2+3)*5", g.Expression)
	assert.False(t, g.Truncated)

	// The correct answer and the bracket-ignoring answer both appear.
	assert.Equal(t, []float64{17, 25}, g.FinalResults())

	root, ok := g.Nodes[g.RootID]
	require.True(t, ok)
	assert.Equal(t, "(2+3)*5", root.Expression)
	assert.Empty(t, root.ParentID)
}

func TestBuildDeduplicatesStates(t *testing.T) {
	g := buildGraph(t, "(2+3)*5", BuilderOptions{})

	seen := make(map[string]bool)
	for _, n := range g.Nodes {
		require.False(t, seen[n.Expression], "state %q appears twice", n.Expression)
		seen[n.Expression] = true
		assert.Equal(t, NodeID(n.Expression), n.ID)
	}

	for _, e := range g.Edges {
		assert.Contains(t, g.Nodes, e.FromID)
		assert.Contains(t, g.Nodes, e.ToID)
	}
}

func TestBuildSameOperatorFastPath(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2+3+4", 9},
		{"10-2-3", 5},
		{"100/10/2", 5},
		{"2^3^2", 64},
		{"2*3*4", 24},
	}

	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			g := buildGraph(t, tc.expr, BuilderOptions{})
			assert.Len(t, g.Nodes, 2)
			require.Len(t, g.Edges, 1)
			assert.Equal(t, rewrite.ActionEvaluate, g.Edges[0].Kind)
			assert.Equal(t, []float64{tc.want}, g.FinalResults())
		})
	}
}

func TestBuildFastPathSkippedOnDivisionByZero(t *testing.T) {
	// 10/0/2 cannot fold left to right, so the build explores stepwise.
	// 0/2 still evaluates, leaving 10/0 as a stuck non-terminal leaf.
	g := buildGraph(t, "10/0/2", BuilderOptions{})
	assert.Len(t, g.Nodes, 2)
	require.Len(t, g.Edges, 1)
	assert.Empty(t, g.FinalResults())
	assert.False(t, g.Truncated)
}

func TestBuildTruncation(t *testing.T) {
	// The ceiling is a hard cap: the graph never exceeds it, no matter
	// how many states one expansion discovers.
	for _, max := range []int{2, 3, 5} {
		g := buildGraph(t, "(1+2)*(3+4)-5", BuilderOptions{MaxNodes: max})
		assert.True(t, g.Truncated, "max %d", max)
		assert.LessOrEqual(t, len(g.Nodes), max, "max %d", max)
	}

	// A build that finishes on its own under the ceiling is not truncated.
	g := buildGraph(t, "7", BuilderOptions{MaxNodes: 1})
	assert.False(t, g.Truncated)
	assert.Len(t, g.Nodes, 1)
}

func TestBuildFoldsChainsReachedMidGraph(t *testing.T) {
	// Dropping the brackets of (2+3)+4 reaches the bare chain 2+3+4,
	// which folds in one step instead of expanding pairwise.
	g := buildGraph(t, "(2+3)+4", BuilderOptions{})

	chainID := NodeID("2+3+4")
	require.Contains(t, g.Nodes, chainID)
	assert.NotContains(t, g.Nodes, NodeID("2+7"))

	var fromChain []Edge
	for _, e := range g.Edges {
		if e.FromID == chainID {
			fromChain = append(fromChain, e)
		}
	}
	require.Len(t, fromChain, 1)
	assert.Equal(t, "Compute all '+' operations", fromChain[0].Description)
	assert.Equal(t, NodeID("9"), fromChain[0].ToID)
}

func TestBuildFoldKeepsLeftToRightOrdering(t *testing.T) {
	// The chain 10-2-3 reached by dropping brackets folds left to right
	// to 5; the right-first pairing 10-(2-3) = 11 must never appear.
	g := buildGraph(t, "(10-2)-3", BuilderOptions{})
	assert.Contains(t, g.FinalResults(), 5.0)
	assert.NotContains(t, g.FinalResults(), 11.0)
	assert.NotContains(t, g.Nodes, NodeID("10--1"))
}

func TestBuildMixedChainFullResults(t *testing.T) {
	// 2+3*5 reduces two ways: multiply first (17) or add first (25).
	g := buildGraph(t, "2+3*5", BuilderOptions{})
	assert.Equal(t, []float64{17, 25}, g.FinalResults())
	assert.False(t, g.Truncated)
}

func TestBuildTerminalRoot(t *testing.T) {
	g := buildGraph(t, "7", BuilderOptions{})
	assert.Len(t, g.Nodes, 1)
	root := g.Nodes[g.RootID]
	assert.True(t, root.Terminal)
	assert.Equal(t, 7.0, root.Result)
}

func TestBuildErrors(t *testing.T) {
	b, err := NewBuilder(BuilderOptions{})
	require.NoError(t, err)

	_, err = b.Build("")
	assert.ErrorIs(t, err, ErrEmptyExpression)

	_, err = b.Build("2++3")
	assert.Error(t, err)

	_, err = NewBuilder(BuilderOptions{MaxNodes: -1})
	assert.ErrorIs(t, err, ErrInvalidMaxNodes)
}

func TestTracePath(t *testing.T) {
	g := buildGraph(t, "(2+3)*5", BuilderOptions{})

	var terminal *Node
	for _, n := range g.Nodes {
		if n.Terminal && n.Result == 25 {
			terminal = n
			break
		}
	}
	require.NotNil(t, terminal)

	path := g.TracePath(terminal.ID)
	require.NotEmpty(t, path)
	assert.Equal(t, g.RootID, path[0].ID)
	assert.Equal(t, terminal.ID, path[len(path)-1].ID)

	assert.Nil(t, g.TracePath("missing"))
}

func TestTracePathReplay(t *testing.T) {
	// Every recorded root-to-terminal path can be replayed: re-applying
	// each edge's rewrite to the running token sequence reproduces the
	// path's states exactly.
	g := buildGraph(t, "(2+3)*5", BuilderOptions{})

	replayed := 0
	for _, n := range g.Nodes {
		if !n.Terminal {
			continue
		}
		path := g.TracePath(n.ID)
		require.NotEmpty(t, path)
		require.Equal(t, g.RootID, path[0].ID)

		state := path[0].Tokens
		for i := 1; i < len(path); i++ {
			edge := edgeBetween(t, g, path[i-1].ID, path[i].ID)
			state = replayEdge(t, state, edge)
			assert.Equal(t, path[i].Expression, state.Canonical())
		}
		replayed++
	}
	assert.Positive(t, replayed)
}

func edgeBetween(t *testing.T, g *Graph, fromID, toID string) Edge {
	t.Helper()
	for _, e := range g.Edges {
		if e.FromID == fromID && e.ToID == toID {
			return e
		}
	}
	t.Fatalf("no edge %s -> %s", fromID, toID)
	return Edge{}
}

// replayEdge re-applies a recorded edge to a token sequence the same way
// the builder derived it: by matching the discovered action, or by the
// single-operator fold for chain edges.
func replayEdge(t *testing.T, state expression.Tokens, edge Edge) expression.Tokens {
	t.Helper()
	for _, a := range rewrite.DiscoverActions(state) {
		if a.Kind == edge.Kind && a.Description == edge.Description {
			return a.Result
		}
	}
	op, ok := rewrite.SameOperator(state)
	require.True(t, ok, "edge %q matches no rewrite of %q", edge.Description, state.Canonical())
	folded, err := rewrite.FoldSameOperator(state, op)
	require.NoError(t, err)
	return expression.Tokens{folded}
}

func TestSummarize(t *testing.T) {
	g := buildGraph(t, "(2+3)*5", BuilderOptions{})
	s := g.Summarize()
	assert.Equal(t, len(g.Nodes), s.NodeCount)
	assert.Equal(t, len(g.Edges), s.EdgeCount)
	assert.Equal(t, g.FinalResults(), s.FinalResults)
	assert.Positive(t, s.EdgeCounts[rewrite.ActionEvaluate])
}
