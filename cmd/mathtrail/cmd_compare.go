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

	"github.com/AleutianAI/MathTrail/services/learner"
)

func runCompare(cmd *cobra.Command, args []string) {
	expression := args[0]

	runs, err := learner.CompareLearners(expression, profiles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("LEARNER COMPARISON: %s\n", expression)
	fmt.Println(strings.Repeat("=", 70))

	names := make([]string, 0, len(runs))
	for name := range runs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		run := runs[name]
		result := "stuck / no result"
		if run.FinalResult != nil {
			result = fmt.Sprintf("%v", *run.FinalResult)
		}
		fmt.Printf("\n%s:\n", name)
		fmt.Printf("  Precedence: %s\n", run.Precedence)
		fmt.Printf("  Policies: %v\n", run.Policies)
		fmt.Printf("  Steps: %d\n", run.NumSteps)
		fmt.Printf("  Result: %s\n", result)
	}
}
