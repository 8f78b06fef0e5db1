// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package rewrite implements the bracket/term algebra on token sequences
// and the three rewrite rules built on it: evaluate one operation,
// distribute a bracket over an adjacent operand, and drop a bracket pair.
//
// Dropping brackets and distributing over non-additive operators are
// deliberately capable of changing the mathematical value of an expression;
// that is the point. The package models every syntactically reachable
// reduction, including the ones students reach by mistake.
//
// All functions are pure: they read a token sequence and return a new one,
// never mutating their input.
package rewrite

import (
	"sort"

	"github.com/AleutianAI/MathTrail/services/expression"
)

// BracketGroup identifies one matched bracket pair by the indices of its
// delimiters in the token sequence.
type BracketGroup struct {
	// Start is the index of the opening bracket token.
	Start int

	// End is the index of the matching closing bracket token.
	End int
}

// FindBracketGroups locates matched bracket pairs in a token sequence.
//
// With outermostOnly true, only top-level groups are returned, in
// left-to-right order. With outermostOnly false, all groups including
// nested ones are returned, sorted by start index ascending and, for equal
// starts, wider group first.
//
// The sequence is assumed validated (balanced, family-matched).
func FindBracketGroups(tokens expression.Tokens, outermostOnly bool) []BracketGroup {
	var groups []BracketGroup

	if outermostOnly {
		i := 0
		for i < len(tokens) {
			if !expression.IsOpenBracket(tokens[i]) {
				i++
				continue
			}
			depth := 1
			j := i + 1
			for j < len(tokens) && depth > 0 {
				if expression.IsOpenBracket(tokens[j]) {
					depth++
				} else if expression.IsCloseBracket(tokens[j]) {
					depth--
				}
				j++
			}
			groups = append(groups, BracketGroup{Start: i, End: j - 1})
			i = j
		}
		return groups
	}

	// All groups, nested included: stack of open positions.
	type openBracket struct {
		tok   string
		start int
	}
	var stack []openBracket
	for i, tok := range tokens {
		if expression.IsOpenBracket(tok) {
			stack = append(stack, openBracket{tok: tok, start: i})
			continue
		}
		if expression.IsCloseBracket(tok) && len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if expression.BracketPairs[top.tok] == tok {
				groups = append(groups, BracketGroup{Start: top.start, End: i})
			}
		}
	}
	sort.Slice(groups, func(a, b int) bool {
		if groups[a].Start != groups[b].Start {
			return groups[a].Start < groups[b].Start
		}
		return groups[a].End-groups[a].Start > groups[b].End-groups[b].Start
	})
	return groups
}

// BracketContent returns the tokens inside a bracket group, excluding the
// delimiters themselves. The returned slice aliases the input; callers that
// keep it must not mutate it.
func BracketContent(tokens expression.Tokens, g BracketGroup) expression.Tokens {
	return tokens[g.Start+1 : g.End]
}

// DropBrackets removes a bracket pair, splicing its contents into the
// surrounding sequence unchanged:
//
//	(2+3)*5 -> 2+3*5
//
// When the bracket held more than a single operand this produces a
// mathematically different expression. That models the "ignoring brackets"
// mistake; it is intentional.
func DropBrackets(tokens expression.Tokens, g BracketGroup) expression.Tokens {
	out := make(expression.Tokens, 0, len(tokens)-2)
	out = append(out, tokens[:g.Start]...)
	out = append(out, tokens[g.Start+1:g.End]...)
	out = append(out, tokens[g.End+1:]...)
	return out
}

// SimplifyBrackets collapses every bracket whose sole content is a single
// operand into that operand, across all bracket families, repeating until
// a fixed point:
//
//	(5)*3   -> 5*3
//	[{(7)}] -> 7
//
// It is applied after every rewrite so that canonical-text deduplication is
// meaningful, and it is idempotent.
func SimplifyBrackets(tokens expression.Tokens) expression.Tokens {
	out := tokens.Clone()
	changed := true
	for changed {
		changed = false
		i := 0
		for i < len(out)-2 {
			if expression.IsOpenBracket(out[i]) &&
				expression.IsOperand(out[i+1]) &&
				out[i+2] == expression.BracketPairs[out[i]] {
				collapsed := make(expression.Tokens, 0, len(out)-2)
				collapsed = append(collapsed, out[:i]...)
				collapsed = append(collapsed, out[i+1])
				collapsed = append(collapsed, out[i+3:]...)
				out = collapsed
				changed = true
			} else {
				i++
			}
		}
	}
	return out
}

// findGroupForward returns the end index of the bracket group opening at
// index start. Assumes tokens[start] is an open bracket on validated input.
func findGroupForward(tokens expression.Tokens, start int) int {
	depth := 1
	j := start + 1
	for j < len(tokens) && depth > 0 {
		if expression.IsOpenBracket(tokens[j]) {
			depth++
		} else if expression.IsCloseBracket(tokens[j]) {
			depth--
		}
		j++
	}
	return j - 1
}

// findGroupBackward returns the start index of the bracket group closing at
// index end. Assumes tokens[end] is a close bracket on validated input.
func findGroupBackward(tokens expression.Tokens, end int) int {
	depth := 1
	j := end - 1
	for j >= 0 && depth > 0 {
		if expression.IsCloseBracket(tokens[j]) {
			depth++
		} else if expression.IsOpenBracket(tokens[j]) {
			depth--
		}
		j--
	}
	return j + 1
}
