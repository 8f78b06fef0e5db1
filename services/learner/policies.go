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
	"github.com/AleutianAI/MathTrail/services/expression"
	"github.com/AleutianAI/MathTrail/services/rewrite"
)

// Precedence-belief policies.

// highestPrecedenceFirst keeps only the evaluate actions whose operator has
// the highest rank among the currently available evaluate actions, under
// the learner's own map.
type highestPrecedenceFirst struct{}

func (highestPrecedenceFirst) Name() string     { return "highest_precedence_first" }
func (highestPrecedenceFirst) Category() string { return "precedence" }
func (highestPrecedenceFirst) Description() string {
	return "Only evaluate operators with highest precedence among available"
}

func (highestPrecedenceFirst) Allows(state expression.Tokens, action rewrite.Action,
	available []rewrite.Action, prec PrecedenceMap) bool {
	if action.Kind != rewrite.ActionEvaluate {
		return true
	}
	evals := evaluateActions(available)
	if len(evals) == 0 {
		return true
	}
	maxRank := 0
	for _, a := range evals {
		if r := prec.Rank(a.Operator); r > maxRank {
			maxRank = r
		}
	}
	return prec.Rank(action.Operator) == maxRank
}

// noHigherPrecedenceLeft rejects an evaluate action when a higher-ranked
// operator appears anywhere to its left at the same bracket depth, scanning
// outward past bracket boundaries.
type noHigherPrecedenceLeft struct{}

func (noHigherPrecedenceLeft) Name() string     { return "no_higher_prec_left" }
func (noHigherPrecedenceLeft) Category() string { return "precedence" }
func (noHigherPrecedenceLeft) Description() string {
	return "No higher-precedence operator to the left"
}

func (noHigherPrecedenceLeft) Allows(state expression.Tokens, action rewrite.Action,
	available []rewrite.Action, prec PrecedenceMap) bool {
	if action.Kind != rewrite.ActionEvaluate {
		return true
	}
	myRank := prec.Rank(action.Operator)
	depth := 0
	for i := action.OperatorIndex - 1; i >= 0; i-- {
		tok := state[i]
		switch {
		case expression.IsOpenBracket(tok):
			depth--
		case expression.IsCloseBracket(tok):
			depth++
		case depth == 0 && expression.IsOperator(tok):
			if prec.Rank(tok) > myRank {
				return false
			}
		}
	}
	return true
}

// noHigherPrecedenceRight is the mirror image of noHigherPrecedenceLeft.
type noHigherPrecedenceRight struct{}

func (noHigherPrecedenceRight) Name() string     { return "no_higher_prec_right" }
func (noHigherPrecedenceRight) Category() string { return "precedence" }
func (noHigherPrecedenceRight) Description() string {
	return "No higher-precedence operator to the right"
}

func (noHigherPrecedenceRight) Allows(state expression.Tokens, action rewrite.Action,
	available []rewrite.Action, prec PrecedenceMap) bool {
	if action.Kind != rewrite.ActionEvaluate {
		return true
	}
	myRank := prec.Rank(action.Operator)
	depth := 0
	for i := action.OperatorIndex + 1; i < len(state); i++ {
		tok := state[i]
		switch {
		case expression.IsOpenBracket(tok):
			depth++
		case expression.IsCloseBracket(tok):
			depth--
		case depth == 0 && expression.IsOperator(tok):
			if prec.Rank(tok) > myRank {
				return false
			}
		}
	}
	return true
}

// Direction policies.

// leftmostFirst allows only the leftmost among same-rank evaluate actions.
type leftmostFirst struct{}

func (leftmostFirst) Name() string     { return "leftmost_first" }
func (leftmostFirst) Category() string { return "direction" }
func (leftmostFirst) Description() string {
	return "Among same-precedence operators, pick leftmost"
}

func (leftmostFirst) Allows(state expression.Tokens, action rewrite.Action,
	available []rewrite.Action, prec PrecedenceMap) bool {
	if action.Kind != rewrite.ActionEvaluate {
		return true
	}
	myRank := prec.Rank(action.Operator)
	leftmost := -1
	for _, a := range evaluateActions(available) {
		if prec.Rank(a.Operator) != myRank {
			continue
		}
		if leftmost == -1 || a.OperatorIndex < leftmost {
			leftmost = a.OperatorIndex
		}
	}
	if leftmost == -1 {
		return true
	}
	return action.OperatorIndex == leftmost
}

// rightmostFirst allows only the rightmost among same-rank evaluate actions.
type rightmostFirst struct{}

func (rightmostFirst) Name() string     { return "rightmost_first" }
func (rightmostFirst) Category() string { return "direction" }
func (rightmostFirst) Description() string {
	return "Among same-precedence operators, pick rightmost"
}

func (rightmostFirst) Allows(state expression.Tokens, action rewrite.Action,
	available []rewrite.Action, prec PrecedenceMap) bool {
	if action.Kind != rewrite.ActionEvaluate {
		return true
	}
	myRank := prec.Rank(action.Operator)
	rightmost := -1
	for _, a := range evaluateActions(available) {
		if prec.Rank(a.Operator) != myRank {
			continue
		}
		if a.OperatorIndex > rightmost {
			rightmost = a.OperatorIndex
		}
	}
	if rightmost == -1 {
		return true
	}
	return action.OperatorIndex == rightmost
}

// leftToRightStrict allows only the leftmost evaluate action overall,
// ignoring rank entirely.
type leftToRightStrict struct{}

func (leftToRightStrict) Name() string     { return "left_to_right_strict" }
func (leftToRightStrict) Category() string { return "direction" }
func (leftToRightStrict) Description() string {
	return "Always pick leftmost operator (ignores precedence)"
}

func (leftToRightStrict) Allows(state expression.Tokens, action rewrite.Action,
	available []rewrite.Action, prec PrecedenceMap) bool {
	if action.Kind != rewrite.ActionEvaluate {
		return true
	}
	evals := evaluateActions(available)
	if len(evals) == 0 {
		return true
	}
	leftmost := evals[0].OperatorIndex
	for _, a := range evals[1:] {
		if a.OperatorIndex < leftmost {
			leftmost = a.OperatorIndex
		}
	}
	return action.OperatorIndex == leftmost
}

// rightToLeftStrict allows only the rightmost evaluate action overall.
type rightToLeftStrict struct{}

func (rightToLeftStrict) Name() string     { return "right_to_left_strict" }
func (rightToLeftStrict) Category() string { return "direction" }
func (rightToLeftStrict) Description() string {
	return "Always pick rightmost operator (ignores precedence)"
}

func (rightToLeftStrict) Allows(state expression.Tokens, action rewrite.Action,
	available []rewrite.Action, prec PrecedenceMap) bool {
	if action.Kind != rewrite.ActionEvaluate {
		return true
	}
	evals := evaluateActions(available)
	if len(evals) == 0 {
		return true
	}
	rightmost := evals[0].OperatorIndex
	for _, a := range evals[1:] {
		if a.OperatorIndex > rightmost {
			rightmost = a.OperatorIndex
		}
	}
	return action.OperatorIndex == rightmost
}

// Bracket-handling policies.

// bracketsFirst requires bracket interiors to be fully worked before
// anything outside them, and never permits dropping.
type bracketsFirst struct{}

func (bracketsFirst) Name() string     { return "brackets_first" }
func (bracketsFirst) Category() string { return "bracket" }
func (bracketsFirst) Description() string {
	return "Must evaluate inside brackets before outside operators"
}

func (bracketsFirst) Allows(state expression.Tokens, action rewrite.Action,
	available []rewrite.Action, prec PrecedenceMap) bool {
	switch action.Kind {
	case rewrite.ActionDropBrackets:
		return false

	case rewrite.ActionDistribute:
		// Distribution stands in for bracket work only when there is
		// nothing left to evaluate inside.
		for _, a := range evaluateActions(available) {
			if insideBrackets(state, a.OperatorIndex) {
				return false
			}
		}
		return true

	case rewrite.ActionEvaluate:
		anyInside := false
		for _, a := range evaluateActions(available) {
			if insideBrackets(state, a.OperatorIndex) {
				anyInside = true
				break
			}
		}
		if anyInside {
			return insideBrackets(state, action.OperatorIndex)
		}
		return true
	}
	return true
}

// bracketsOptional lets the learner work inside or outside brackets freely
// but never drop them.
type bracketsOptional struct{}

func (bracketsOptional) Name() string     { return "brackets_optional" }
func (bracketsOptional) Category() string { return "bracket" }
func (bracketsOptional) Description() string {
	return "Can evaluate inside or outside brackets, but no dropping"
}

func (bracketsOptional) Allows(state expression.Tokens, action rewrite.Action,
	available []rewrite.Action, prec PrecedenceMap) bool {
	return action.Kind != rewrite.ActionDropBrackets
}

// bracketsIgnored models a student with no concept of brackets: drop them
// freely, never distribute, never work inside them.
type bracketsIgnored struct{}

func (bracketsIgnored) Name() string     { return "brackets_ignored" }
func (bracketsIgnored) Category() string { return "bracket" }
func (bracketsIgnored) Description() string {
	return "Must drop brackets first, cannot evaluate inside them"
}

func (bracketsIgnored) Allows(state expression.Tokens, action rewrite.Action,
	available []rewrite.Action, prec PrecedenceMap) bool {
	switch action.Kind {
	case rewrite.ActionDistribute:
		return false
	case rewrite.ActionDropBrackets:
		return true
	case rewrite.ActionEvaluate:
		return !insideBrackets(state, action.OperatorIndex)
	}
	return true
}

// Action-preference policies.

// preferEvaluate suppresses distribution whenever any evaluation is
// available.
type preferEvaluate struct{}

func (preferEvaluate) Name() string     { return "prefer_evaluate" }
func (preferEvaluate) Category() string { return "action_preference" }
func (preferEvaluate) Description() string {
	return "Prefer evaluating inside brackets over distributing"
}

func (preferEvaluate) Allows(state expression.Tokens, action rewrite.Action,
	available []rewrite.Action, prec PrecedenceMap) bool {
	if action.Kind != rewrite.ActionDistribute {
		return true
	}
	for _, a := range available {
		if a.Kind == rewrite.ActionEvaluate {
			return false
		}
	}
	return true
}

// preferDistribute suppresses evaluation whenever any distribution is
// available.
type preferDistribute struct{}

func (preferDistribute) Name() string     { return "prefer_distribute" }
func (preferDistribute) Category() string { return "action_preference" }
func (preferDistribute) Description() string {
	return "Prefer distributing brackets over evaluating inside"
}

func (preferDistribute) Allows(state expression.Tokens, action rewrite.Action,
	available []rewrite.Action, prec PrecedenceMap) bool {
	if action.Kind != rewrite.ActionEvaluate {
		return true
	}
	for _, a := range available {
		if a.Kind == rewrite.ActionDistribute {
			return false
		}
	}
	return true
}

// allowAll accepts everything. The novice baseline.
type allowAll struct{}

func (allowAll) Name() string        { return "allow_all" }
func (allowAll) Category() string    { return "utility" }
func (allowAll) Description() string { return "Allow all actions (no constraints)" }

func (allowAll) Allows(state expression.Tokens, action rewrite.Action,
	available []rewrite.Action, prec PrecedenceMap) bool {
	return true
}
