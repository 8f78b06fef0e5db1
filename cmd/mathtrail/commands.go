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
	"github.com/spf13/cobra"

	"github.com/AleutianAI/MathTrail/services/learner"
	"github.com/AleutianAI/MathTrail/services/rewrite/graph"
	"github.com/AleutianAI/MathTrail/services/studio"
)

// --- Global Command Variables ---
var (
	maxNodes    int
	profileName string
	maxDepth    int
	profiles    []string
	port        int
	releaseMode bool

	rootCmd = &cobra.Command{
		Use:   "mathtrail",
		Short: "Explore every way to solve an arithmetic expression, right or wrong",
		Long: `MathTrail builds the complete rewrite graph of an arithmetic
expression - every evaluation order, every distribution, every dropped
bracket - and replays how differently-believing learners would walk it.`,
	}

	graphCmd = &cobra.Command{
		Use:   "graph [expression]",
		Short: "Build the full rewrite graph and show all reachable results",
		Args:  cobra.ExactArgs(1),
		Run:   runGraph, // Defined in cmd_graph.go
	}

	walkCmd = &cobra.Command{
		Use:   "walk [expression]",
		Short: "Show how one learner profile solves an expression step by step",
		Args:  cobra.ExactArgs(1),
		Run:   runWalk, // Defined in cmd_walk.go
	}

	pathsCmd = &cobra.Command{
		Use:   "paths [expression]",
		Short: "Enumerate every path a learner could take",
		Args:  cobra.ExactArgs(1),
		Run:   runPaths, // Defined in cmd_paths.go
	}

	compareCmd = &cobra.Command{
		Use:   "compare [expression]",
		Short: "Compare final answers across learner profiles",
		Args:  cobra.ExactArgs(1),
		Run:   runCompare, // Defined in cmd_compare.go
	}

	learnersCmd = &cobra.Command{
		Use:   "learners",
		Short: "List precedence maps, policies and preset learner profiles",
		Run:   runLearners, // Defined in cmd_learners.go
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the expression studio HTTP service",
		Run:   runServe, // Defined in cmd_serve.go
	}
)

func init() {
	graphCmd.Flags().IntVar(&maxNodes, "max-nodes", graph.DefaultMaxNodes,
		"node ceiling before the graph is truncated")

	walkCmd.Flags().StringVar(&profileName, "profile", "expert",
		"learner profile to replay")

	pathsCmd.Flags().StringVar(&profileName, "profile", "expert",
		"learner profile to replay")
	pathsCmd.Flags().IntVar(&maxDepth, "max-depth", learner.DefaultMaxDepth,
		"recursion ceiling for path enumeration")

	compareCmd.Flags().StringSliceVar(&profiles, "profiles", nil,
		"profiles to compare (default: all presets)")

	serveCmd.Flags().IntVar(&port, "port", studio.DefaultPort, "HTTP listen port")
	serveCmd.Flags().BoolVar(&releaseMode, "release", false, "run gin in release mode")

	rootCmd.AddCommand(graphCmd, walkCmd, pathsCmd, compareCmd, learnersCmd, serveCmd)
}
