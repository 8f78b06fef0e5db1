// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package rewrite

import (
	"fmt"
	"strings"

	"github.com/AleutianAI/MathTrail/services/expression"
)

// ActionKind names one of the three rewrite rules.
type ActionKind string

const (
	ActionEvaluate     ActionKind = "evaluate"
	ActionDistribute   ActionKind = "distribute"
	ActionDropBrackets ActionKind = "drop_brackets"
)

// Action is one applicable rewrite at a given expression state, with its
// result precomputed.
type Action struct {
	// Kind is the rewrite rule this action applies.
	Kind ActionKind `json:"kind"`

	// Operator is the operator involved: the evaluated operator for
	// evaluate, the distributed operator for distribute, empty for
	// drop_brackets.
	Operator string `json:"operator,omitempty"`

	// OperatorIndex is the operator's token index for evaluate and
	// distribute actions, and the opening bracket's index for
	// drop_brackets.
	OperatorIndex int `json:"operator_index"`

	// Description is a short human-readable label, e.g. "Compute 2 + 3".
	Description string `json:"description"`

	// Result is the simplified token sequence the action produces.
	Result expression.Tokens `json:"result"`
}

// DiscoverActions enumerates every applicable rewrite at the given state:
// evaluations first, then distributions, then bracket drops, with nested
// bracket groups included for the latter two. Results are
// simplified, and actions whose simplified result duplicates an earlier
// one are dropped (first wins). Candidates that fail — division by zero, a
// single-term bracket — are silently skipped rather than surfaced.
//
// The enumeration order is load-bearing: deterministic walks pick the first
// valid action, so reordering here changes walk outcomes.
func DiscoverActions(tokens expression.Tokens) []Action {
	var actions []Action
	seen := make(map[string]bool)

	add := func(a Action) {
		key := a.Result.Canonical()
		if seen[key] {
			return
		}
		seen[key] = true
		actions = append(actions, a)
	}

	for _, opIndex := range EvaluatableOps(tokens) {
		result, err := PerformOperation(tokens, opIndex)
		if err != nil {
			continue
		}
		add(Action{
			Kind:          ActionEvaluate,
			Operator:      tokens[opIndex],
			OperatorIndex: opIndex,
			Description: fmt.Sprintf("Compute %s %s %s",
				tokens[opIndex-1], tokens[opIndex], tokens[opIndex+1]),
			Result: result,
		})
	}

	for _, d := range FindDistributableBrackets(tokens, true) {
		result, err := DistributeBracket(tokens, d)
		if err != nil {
			continue
		}
		inner := BracketContent(tokens, d.Bracket)
		add(Action{
			Kind:          ActionDistribute,
			Operator:      d.Operator,
			OperatorIndex: d.OpIndex,
			Description: fmt.Sprintf("Distribute (%s) %s %s",
				strings.Join(inner, ""), d.Operator, strings.Join(d.Operand, "")),
			Result: SimplifyBrackets(result),
		})
	}

	for _, g := range FindBracketGroups(tokens, false) {
		inner := BracketContent(tokens, g)
		add(Action{
			Kind:          ActionDropBrackets,
			OperatorIndex: g.Start,
			Description:   fmt.Sprintf("Drop brackets: (%s)", strings.Join(inner, "")),
			Result:        SimplifyBrackets(DropBrackets(tokens, g)),
		})
	}

	return actions
}
