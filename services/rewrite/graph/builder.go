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
	"fmt"

	"github.com/AleutianAI/MathTrail/pkg/logging"
	"github.com/AleutianAI/MathTrail/services/expression"
	"github.com/AleutianAI/MathTrail/services/rewrite"
)

// DefaultMaxNodes caps graph size when the caller does not choose a ceiling.
// Distribution makes the state space explode on nested expressions, so an
// uncapped build is never offered.
const DefaultMaxNodes = 500

// BuilderOptions configures a graph build.
type BuilderOptions struct {
	// MaxNodes is the node ceiling. Zero means DefaultMaxNodes; negative
	// values are rejected.
	MaxNodes int

	// Logger receives build telemetry. Nil disables logging.
	Logger *logging.Logger
}

// Builder constructs rewrite graphs. A single Builder is safe for
// concurrent use: each Build works on its own state.
type Builder struct {
	maxNodes int
	logger   *logging.Logger
}

// NewBuilder validates options and returns a Builder.
func NewBuilder(opts BuilderOptions) (*Builder, error) {
	if opts.MaxNodes < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxNodes, opts.MaxNodes)
	}
	if opts.MaxNodes == 0 {
		opts.MaxNodes = DefaultMaxNodes
	}
	return &Builder{maxNodes: opts.MaxNodes, logger: opts.Logger}, nil
}

// Build tokenizes the expression and explores every reachable rewrite
// breadth-first, deduplicating states by canonical text. The graph never
// holds more than MaxNodes nodes: the moment one more state would be
// needed, Truncated is set and expansion halts.
func (b *Builder) Build(expr string) (*Graph, error) {
	if expr == "" {
		return nil, ErrEmptyExpression
	}

	tokens, err := expression.Tokenize(expr)
	if err != nil {
		return nil, fmt.Errorf("tokenize %q: %w", expr, err)
	}
	tokens = rewrite.SimplifyBrackets(tokens)

	root := newNode(tokens, "")
	g := &Graph{
		Expression: root.Expression,
		RootID:     root.ID,
		Nodes:      map[string]*Node{root.ID: root},
	}
	seen := map[string]string{root.Expression: root.ID}

	queue := []*Node{root}
	for len(queue) > 0 && !g.Truncated {
		current := queue[0]
		queue = queue[1:]

		if current.Terminal {
			continue
		}

		// A bracket-free single-operator chain like 2+3+4 or 10-2-3
		// reduces in one step, wherever it shows up: the stepwise graph
		// would only enumerate orderings, and for '-', '/' and '^'
		// orderings other than left-to-right are not results we model.
		if op, ok := rewrite.SameOperator(current.Tokens); ok {
			if folded, err := rewrite.FoldSameOperator(current.Tokens, op); err == nil {
				b.link(g, seen, &queue, current, expression.Tokens{folded}, Edge{
					Kind:        rewrite.ActionEvaluate,
					Operator:    op,
					Description: fmt.Sprintf("Compute all '%s' operations", op),
				})
				continue
			}
			// Folding can fail on division by zero; explore stepwise
			// instead.
		}

		for _, action := range rewrite.DiscoverActions(current.Tokens) {
			b.link(g, seen, &queue, current, action.Result, Edge{
				Kind:        action.Kind,
				Operator:    action.Operator,
				Description: action.Description,
			})
			if g.Truncated {
				break
			}
		}
	}

	b.logBuild(g)
	return g, nil
}

// link records an edge from current to the node holding result, creating
// the node when the state is new. Creating a node past the ceiling is
// refused: the graph is marked truncated and the edge dropped with it.
func (b *Builder) link(g *Graph, seen map[string]string, queue *[]*Node,
	current *Node, result expression.Tokens, edge Edge) {
	canonical := result.Canonical()
	toID, known := seen[canonical]
	if !known {
		if len(g.Nodes) >= b.maxNodes {
			g.Truncated = true
			return
		}
		node := newNode(result, current.ID)
		toID = node.ID
		seen[canonical] = toID
		g.Nodes[toID] = node
		*queue = append(*queue, node)
	}
	edge.FromID = current.ID
	edge.ToID = toID
	g.Edges = append(g.Edges, edge)
}

func (b *Builder) logBuild(g *Graph) {
	if b.logger == nil {
		return
	}
	b.logger.Debug("rewrite graph built",
		"expression", g.Expression,
		"nodes", len(g.Nodes),
		"edges", len(g.Edges),
		"terminals", g.TerminalCount(),
		"truncated", g.Truncated,
	)
}
