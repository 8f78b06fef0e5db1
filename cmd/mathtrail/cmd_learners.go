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

func runLearners(cmd *cobra.Command, args []string) {
	catalog, err := learner.Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("LEARNER BUILDER OPTIONS")
	fmt.Println(strings.Repeat("=", 70))

	fmt.Println("\n1. PRECEDENCE MAPS (pick one):")
	for _, name := range learner.PrecedenceMapNames() {
		info := catalog.PrecedenceMaps[name]
		fmt.Printf("   - %s: %s\n", name, info.Description)
		fmt.Printf("     Operators: %v\n", info.Operators)
	}

	fmt.Println("\n2. POLICY CATEGORIES:")
	for _, cat := range catalog.Categories {
		pick := "can combine"
		if cat.Exclusive {
			pick = "pick ONE"
		}
		fmt.Printf("\n   %s (%s):\n", cat.Name, pick)
		fmt.Printf("   %s\n", cat.Description)
		for _, policyName := range cat.Policies {
			p, err := learner.GetPolicy(policyName)
			if err != nil {
				continue
			}
			fmt.Printf("     - %s: %s\n", policyName, p.Description())
		}
	}

	fmt.Println("\n3. PRESET PROFILES:")
	profileNames := make([]string, 0, len(catalog.Profiles))
	for name := range catalog.Profiles {
		profileNames = append(profileNames, name)
	}
	sort.Strings(profileNames)
	for _, name := range profileNames {
		p := catalog.Profiles[name]
		fmt.Printf("   - %s:\n", name)
		fmt.Printf("     Precedence: %s\n", p.Precedence)
		fmt.Printf("     Policies: %v\n", p.Policies)
		fmt.Printf("     Description: %s\n", p.Description)
	}
}
