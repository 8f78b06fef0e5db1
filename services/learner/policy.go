// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package learner models hypothetical students of arithmetic: a precedence
// belief plus a set of behavioral policies that together decide which of
// the syntactically available rewrites the student would accept. A walker
// replays those decisions step by step.
package learner

import (
	"fmt"
	"sort"

	"github.com/AleutianAI/MathTrail/services/expression"
	"github.com/AleutianAI/MathTrail/services/rewrite"
)

// Policy is a pure predicate over one candidate action. It sees the full
// state, the candidate, everything else available in that state, and the
// learner's own precedence belief. Action kinds a policy has no opinion
// about default to valid.
type Policy interface {
	// Name is the registry key, e.g. "leftmost_first".
	Name() string

	// Category groups policies for UI selection and mutual exclusion.
	Category() string

	// Description is a one-line human-readable summary.
	Description() string

	// Allows reports whether the candidate action is acceptable.
	Allows(state expression.Tokens, action rewrite.Action,
		available []rewrite.Action, prec PrecedenceMap) bool
}

// policyRegistry maps policy names to constructors. Built once, never
// mutated.
var policyRegistry = map[string]func() Policy{
	"highest_precedence_first": func() Policy { return highestPrecedenceFirst{} },
	"no_higher_prec_left":      func() Policy { return noHigherPrecedenceLeft{} },
	"no_higher_prec_right":     func() Policy { return noHigherPrecedenceRight{} },

	"leftmost_first":       func() Policy { return leftmostFirst{} },
	"rightmost_first":      func() Policy { return rightmostFirst{} },
	"left_to_right_strict": func() Policy { return leftToRightStrict{} },
	"right_to_left_strict": func() Policy { return rightToLeftStrict{} },

	"brackets_first":    func() Policy { return bracketsFirst{} },
	"brackets_optional": func() Policy { return bracketsOptional{} },
	"brackets_ignored":  func() Policy { return bracketsIgnored{} },

	"prefer_evaluate":   func() Policy { return preferEvaluate{} },
	"prefer_distribute": func() Policy { return preferDistribute{} },

	"allow_all": func() Policy { return allowAll{} },
}

// GetPolicy resolves a policy by registry name.
func GetPolicy(name string) (Policy, error) {
	ctor, ok := policyRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
	return ctor(), nil
}

// PolicyNames lists all registered policy names, sorted.
func PolicyNames() []string {
	names := make([]string, 0, len(policyRegistry))
	for name := range policyRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Category describes one policy category for learner-builder UIs.
type Category struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Policies    []string `json:"policies"`

	// Exclusive marks categories where combining policies rarely makes
	// sense. Convention only, not enforced.
	Exclusive bool `json:"exclusive"`
}

// Categories returns the policy categories in presentation order.
func Categories() []Category {
	return []Category{
		{
			Key:         "precedence",
			Name:        "Precedence Belief",
			Description: "How operator precedence is determined",
			Policies:    []string{"highest_precedence_first", "no_higher_prec_left", "no_higher_prec_right"},
			Exclusive:   false,
		},
		{
			Key:         "direction",
			Name:        "Direction",
			Description: "Which direction to evaluate same-precedence operators",
			Policies:    []string{"leftmost_first", "rightmost_first", "left_to_right_strict", "right_to_left_strict"},
			Exclusive:   true,
		},
		{
			Key:         "bracket",
			Name:        "Bracket Handling",
			Description: "How to handle brackets",
			Policies:    []string{"brackets_first", "brackets_optional", "brackets_ignored"},
			Exclusive:   true,
		},
		{
			Key:         "action_preference",
			Name:        "Action Preference",
			Description: "Preference between evaluate and distribute",
			Policies:    []string{"prefer_evaluate", "prefer_distribute"},
			Exclusive:   true,
		},
	}
}

// evaluateActions filters the available set down to evaluate actions.
func evaluateActions(available []rewrite.Action) []rewrite.Action {
	var evals []rewrite.Action
	for _, a := range available {
		if a.Kind == rewrite.ActionEvaluate {
			evals = append(evals, a)
		}
	}
	return evals
}

// insideBrackets reports whether the token at index sits inside at least one
// bracket pair.
func insideBrackets(state expression.Tokens, index int) bool {
	depth := 0
	for i := 0; i < index && i < len(state); i++ {
		if expression.IsOpenBracket(state[i]) {
			depth++
		} else if expression.IsCloseBracket(state[i]) {
			depth--
		}
	}
	return depth > 0
}
