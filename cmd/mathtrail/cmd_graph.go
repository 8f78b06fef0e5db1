// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/MathTrail/services/rewrite"
	"github.com/AleutianAI/MathTrail/services/rewrite/graph"
)

func runGraph(cmd *cobra.Command, args []string) {
	expression := args[0]

	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("EXPRESSION REWRITE GRAPH")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println()
	fmt.Println("All evaluation paths, mistakes included:")
	fmt.Println("  [D]    DISTRIBUTE:    (a+b)*c -> (a*c + b*c)  [correct distribution]")
	fmt.Println("  [DROP] DROP BRACKETS: (a+b)*c -> a+b*c        [ignores brackets]")
	fmt.Println("  [E]    EVALUATE:      Compute any operation   [in any order]")
	fmt.Println()
	fmt.Printf("Building evaluation graph for: %s\n", expression)
	fmt.Printf("(Node limit: %d)\n", maxNodes)
	fmt.Println(strings.Repeat("-", 70))

	builder, err := graph.NewBuilder(graph.BuilderOptions{MaxNodes: maxNodes})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	g, err := builder.Build(expression)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	counts := g.EdgeCounts()
	fmt.Println("[OK] Expression parsed successfully")
	fmt.Printf("[OK] Total nodes: %d\n", len(g.Nodes))
	fmt.Printf("[OK] Total edges: %d\n", len(g.Edges))
	if g.Truncated {
		fmt.Printf("[!]  Graph TRUNCATED at %d nodes (use --max-nodes to see more)\n", maxNodes)
	}
	fmt.Printf("[OK] Distribute: %d\n", counts[rewrite.ActionDistribute])
	fmt.Printf("[OK] Drop brackets: %d\n", counts[rewrite.ActionDropBrackets])
	fmt.Printf("[OK] Evaluate: %d\n", counts[rewrite.ActionEvaluate])
	fmt.Printf("[OK] Possible final results: %v\n", g.FinalResults())
	fmt.Printf("[OK] Terminal states: %d\n", g.TerminalCount())

	printSamplePaths(g)
}

// printSamplePaths shows up to five first-discovery paths, sorted by
// result, one per terminal state.
func printSamplePaths(g *graph.Graph) {
	var terminals []*graph.Node
	for _, n := range g.Nodes {
		if n.Terminal {
			terminals = append(terminals, n)
		}
	}
	if len(terminals) == 0 {
		return
	}
	sort.Slice(terminals, func(i, j int) bool {
		return terminals[i].Result < terminals[j].Result
	})

	fmt.Println()
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("SAMPLE EVALUATION PATHS")
	fmt.Println(strings.Repeat("=", 70))

	limit := len(terminals)
	if limit > 5 {
		limit = 5
	}
	for i := 0; i < limit; i++ {
		node := terminals[i]
		fmt.Printf("\nPath %d: Result = %v\n", i+1, node.Result)
		for step, pathNode := range g.TracePath(node.ID) {
			fmt.Printf("  Step %d: %s\n", step+1, pathNode.Expression)
		}
	}
}
