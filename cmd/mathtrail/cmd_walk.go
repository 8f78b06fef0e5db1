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
	"github.com/AleutianAI/MathTrail/services/rewrite"
)

func runWalk(cmd *cobra.Command, args []string) {
	expression := args[0]

	l, err := learner.FromProfile(profileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("LEARNER WALKTHROUGH: %s\n", l.Name)
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Expression: %s\n", expression)
	fmt.Printf("Precedence: %s\n", l.PrecedenceName)
	fmt.Printf("Policies: %v\n", l.PolicyNames)
	fmt.Printf("Description: %s\n", l.Description)
	fmt.Println(strings.Repeat("=", 70))

	steps, err := learner.NewWalker(l).WalkDeterministic(expression)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i, step := range steps {
		fmt.Printf("\nStep %d: %s\n", i+1, step.State)

		if step.IsFinal {
			fmt.Printf("  FINAL RESULT: %v\n", step.Result)
			continue
		}

		fmt.Printf("  All actions: %d\n", len(step.AllActions))
		for _, a := range step.AllActions {
			marker := "[N]"
			if containsAction(step.ValidActions, a) {
				marker = "[Y]"
			}
			fmt.Printf("    %s %s\n", marker, a.Description)
		}

		if step.Chosen != nil {
			fmt.Printf("  CHOSEN: %s\n", step.Chosen.Description)
		} else if step.Stuck {
			fmt.Println("  STUCK! No valid actions according to learner's policies.")
		}
	}
}

func containsAction(actions []rewrite.Action, target rewrite.Action) bool {
	for _, a := range actions {
		if a.Kind == target.Kind && a.OperatorIndex == target.OperatorIndex &&
			a.Operator == target.Operator {
			return true
		}
	}
	return false
}
