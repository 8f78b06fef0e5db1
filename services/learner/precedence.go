// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package learner

import (
	"fmt"
	"sort"
)

// PrecedenceMap assigns each operator an integer rank; higher binds tighter.
// A map models a belief about operator ordering, not necessarily the correct
// one.
type PrecedenceMap map[string]int

// Rank returns the operator's rank, or 0 for tokens the map does not cover.
func (m PrecedenceMap) Rank(operator string) int {
	return m[operator]
}

// Built-in precedence map names.
const (
	PrecedenceBodmas              = "bodmas"
	PrecedenceAdditionFirst       = "addition_first"
	PrecedenceMultiplicationFirst = "multiplication_first"
	PrecedenceFlat                = "flat"
)

// precedenceMaps is the immutable registry of built-in beliefs, populated
// once and never mutated.
var precedenceMaps = map[string]PrecedenceMap{
	PrecedenceBodmas: {
		"+": 1, "-": 1,
		"*": 2, "/": 2,
		"^": 3,
	},
	// Addition and subtraction bind tightest. Wrong, and common.
	PrecedenceAdditionFirst: {
		"+": 3, "-": 3,
		"*": 1, "/": 1,
		"^": 2,
	},
	// Only multiplication is believed special.
	PrecedenceMultiplicationFirst: {
		"*": 3,
		"/": 2, "^": 2,
		"+": 1, "-": 1,
	},
	// No precedence at all.
	PrecedenceFlat: {
		"+": 1, "-": 1,
		"*": 1, "/": 1,
		"^": 1,
	},
}

var precedenceDescriptions = map[string]string{
	PrecedenceBodmas:              "Standard BODMAS: ^ > */ > +-",
	PrecedenceAdditionFirst:       "Addition first (wrong): +- > ^ > */",
	PrecedenceMultiplicationFirst: "Only * is special: * > /^ > +-",
	PrecedenceFlat:                "All operators equal (no precedence)",
}

// GetPrecedenceMap resolves a built-in precedence map by name.
func GetPrecedenceMap(name string) (PrecedenceMap, error) {
	m, ok := precedenceMaps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrecedence, name)
	}
	return m, nil
}

// PrecedenceMapNames lists the built-in map names, sorted.
func PrecedenceMapNames() []string {
	names := make([]string, 0, len(precedenceMaps))
	for name := range precedenceMaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PrecedenceDescription returns the one-line description of a built-in map.
func PrecedenceDescription(name string) string {
	if d, ok := precedenceDescriptions[name]; ok {
		return d
	}
	return "Custom precedence"
}
