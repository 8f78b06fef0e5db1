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
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/MathTrail/services/learner"
)

func runPaths(cmd *cobra.Command, args []string) {
	expression := args[0]

	l, err := learner.FromProfile(profileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	paths, err := learner.NewWalker(l).EnumeratePaths(expression, maxDepth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("ALL PATHS FOR LEARNER: %s\n", l.Name)
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Expression: %s\n", expression)
	fmt.Printf("Paths found: %d (depth limit %d)\n", len(paths), maxDepth)

	for i, path := range paths {
		fmt.Printf("\nPath %d:\n", i+1)
		for step, s := range path {
			switch {
			case s.IsFinal:
				fmt.Printf("  Step %d: %s  -> RESULT %v\n", step+1, s.State, s.Result)
			case s.Stuck:
				fmt.Printf("  Step %d: %s  -> STUCK\n", step+1, s.State)
			case s.Chosen != nil:
				fmt.Printf("  Step %d: %s  (%s)\n", step+1, s.State, s.Chosen.Description)
			default:
				fmt.Printf("  Step %d: %s\n", step+1, s.State)
			}
		}
	}
}
