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

import "github.com/AleutianAI/MathTrail/services/expression"

// Term is one additive term of a bracket interior: the sign connecting it
// to the previous term and the tokens of the term itself.
type Term struct {
	// Sign is "+" or "-" (always "+" for the first term, and for every
	// term in strict mode).
	Sign string

	// Tokens holds the term body. Nested bracket groups stay intact inside
	// a single term.
	Tokens expression.Tokens
}

// ParseBracketTerms splits a bracket interior into an ordered sequence of
// signed terms:
//
//	["2" "+" "3" "-" "4"]  ->  (+ [2]) (+ [3]) (- [4])
//	["2" "*" "3" "+" "4"]  ->  (+ [2 * 3]) (+ [4])
//
// Nested bracket groups are tracked by depth and never split. In the
// default mode only '+' and '-' separate terms; '*', '/', '^' bind tighter
// and stay inside the current term.
//
// With splitAllOperators true, every operator — including '*', '/', '^' —
// separates terms and the connecting sign is forced to '+'. That reproduces
// the mistake of distributing over a product as if it were a sum, e.g.
// treating (3*2)*5 like (3+2)*5. The mode exists in the design but no
// discovery path uses it by default: it blows the state space up
// combinatorially.
func ParseBracketTerms(tokens expression.Tokens, splitAllOperators bool) []Term {
	if len(tokens) == 0 {
		return nil
	}

	var terms []Term
	sign := expression.OpAdd
	var current expression.Tokens
	depth := 0

	splits := func(tok string) bool {
		if splitAllOperators {
			return expression.IsOperator(tok)
		}
		return tok == expression.OpAdd || tok == expression.OpSubtract
	}

	for _, tok := range tokens {
		switch {
		case expression.IsOpenBracket(tok):
			depth++
			current = append(current, tok)
		case expression.IsCloseBracket(tok):
			depth--
			current = append(current, tok)
		case splits(tok) && depth == 0 && len(current) > 0:
			terms = append(terms, Term{Sign: sign, Tokens: current})
			if splitAllOperators {
				sign = expression.OpAdd
			} else {
				sign = tok
			}
			current = nil
		default:
			current = append(current, tok)
		}
	}

	if len(current) > 0 {
		terms = append(terms, Term{Sign: sign, Tokens: current})
	}
	return terms
}
