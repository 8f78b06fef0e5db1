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

// Side says on which side of the bracket the outer operator sits.
type Side string

const (
	// SideLeft means the operator precedes the bracket: operand OP (…).
	SideLeft Side = "left"

	// SideRight means the operator follows the bracket: (…) OP operand.
	SideRight Side = "right"
)

// Distributable describes one (bracket, adjacent operator) pair that
// distribution can target, with the outer operand already resolved.
type Distributable struct {
	// Bracket is the bracket group being distributed.
	Bracket BracketGroup

	// OpSide is the side of the bracket the operator sits on.
	OpSide Side

	// OpIndex is the operator's index in the token sequence.
	OpIndex int

	// Operator is the operator token.
	Operator string

	// Operand holds the outer operand's tokens: a single literal, or a
	// whole bracket group including its delimiters.
	Operand expression.Tokens
}

// FindDistributableBrackets enumerates the (bracket, adjacent operator)
// pairs distribution can target. With includeNested true, nested bracket
// groups are candidates too, not just outermost ones.
//
// Division is asymmetric by design: (a+b)/X distributes (the bracket is the
// dividend) but X/(a+b) never does, and a bracketed divisor (a+b)/(c+d) is
// excluded as well.
func FindDistributableBrackets(tokens expression.Tokens, includeNested bool) []Distributable {
	var found []Distributable

	for _, g := range FindBracketGroups(tokens, !includeNested) {
		// Operator on the right: (…) OP operand
		if g.End+1 < len(tokens) && expression.IsOperator(tokens[g.End+1]) {
			opIndex := g.End + 1
			operator := tokens[opIndex]

			if opIndex+1 < len(tokens) {
				operandStart := opIndex + 1
				var operand expression.Tokens
				operandIsBracket := expression.IsOpenBracket(tokens[operandStart])
				if operandIsBracket {
					end := findGroupForward(tokens, operandStart)
					operand = tokens[operandStart : end+1]
				} else {
					operand = expression.Tokens{tokens[operandStart]}
				}

				// (a+b)/(c+d): a bracketed divisor is excluded.
				if !(operator == expression.OpDivide && operandIsBracket) {
					found = append(found, Distributable{
						Bracket:  g,
						OpSide:   SideRight,
						OpIndex:  opIndex,
						Operator: operator,
						Operand:  operand,
					})
				}
			}
		}

		// Operator on the left: operand OP (…)
		if g.Start > 0 && expression.IsOperator(tokens[g.Start-1]) {
			opIndex := g.Start - 1
			operator := tokens[opIndex]

			if opIndex > 0 {
				// X/(a+b): the bracket is the divisor; never distributes.
				if operator == expression.OpDivide {
					continue
				}

				operandEnd := opIndex - 1
				var operand expression.Tokens
				if expression.IsCloseBracket(tokens[operandEnd]) {
					start := findGroupBackward(tokens, operandEnd)
					operand = tokens[start : operandEnd+1]
				} else {
					operand = expression.Tokens{tokens[operandEnd]}
				}

				found = append(found, Distributable{
					Bracket:  g,
					OpSide:   SideLeft,
					OpIndex:  opIndex,
					Operator: operator,
					Operand:  operand,
				})
			}
		}
	}

	return found
}

// DistributeBracket applies the outer operator to every term of the bracket
// interior individually, preserving each term's sign:
//
//	(a + b) * c  ->  (a*c + b*c)
//	c * (a + b)  ->  (c*a + c*b)
//	(a - b) * c  ->  (a*c - b*c)
//
// The distributed result is itself wrapped in fresh round brackets since it
// contains multiple terms; terms that are multi-token or start with a
// bracket are re-wrapped too, preserving grouping. Returns
// ErrNotDistributable when the interior parses to fewer than two terms.
func DistributeBracket(tokens expression.Tokens, d Distributable) (expression.Tokens, error) {
	inner := BracketContent(tokens, d.Bracket)
	terms := ParseBracketTerms(inner, false)
	if len(terms) <= 1 {
		return nil, ErrNotDistributable
	}

	var distributed expression.Tokens
	distributed = append(distributed, "(")

	for i, term := range terms {
		termTokens := term.Tokens
		if i > 0 {
			distributed = append(distributed, term.Sign)
		} else if term.Sign == expression.OpSubtract {
			// A leading negative term keeps its sign on the literal.
			if len(termTokens) > 0 && termTokens[0] != expression.OpAdd && termTokens[0] != expression.OpSubtract {
				withSign := make(expression.Tokens, 0, len(termTokens)+1)
				withSign = append(withSign, expression.OpSubtract)
				withSign = append(withSign, termTokens...)
				termTokens = withSign
			}
		}

		wrapped := wrapTermIfComplex(termTokens)
		if d.OpSide == SideRight {
			// term OP operand
			distributed = append(distributed, wrapped...)
			distributed = append(distributed, d.Operator)
			distributed = append(distributed, d.Operand...)
		} else {
			// operand OP term
			distributed = append(distributed, d.Operand...)
			distributed = append(distributed, d.Operator)
			distributed = append(distributed, wrapped...)
		}
	}

	distributed = append(distributed, ")")

	// Splice the distributed bracket over the original bracket, operator
	// and operand.
	var before, after expression.Tokens
	if d.OpSide == SideRight {
		before = tokens[:d.Bracket.Start]
		operandStart := d.OpIndex + 1
		if expression.IsOpenBracket(tokens[operandStart]) {
			after = tokens[findGroupForward(tokens, operandStart)+1:]
		} else {
			after = tokens[operandStart+1:]
		}
	} else {
		operandEnd := d.OpIndex - 1
		if expression.IsCloseBracket(tokens[operandEnd]) {
			before = tokens[:findGroupBackward(tokens, operandEnd)]
		} else {
			before = tokens[:operandEnd]
		}
		after = tokens[d.Bracket.End+1:]
	}

	out := make(expression.Tokens, 0, len(before)+len(distributed)+len(after))
	out = append(out, before...)
	out = append(out, distributed...)
	out = append(out, after...)
	return out, nil
}

// wrapTermIfComplex re-wraps a term in round brackets when it is multi-token
// or starts with a bracket, so distribution preserves its grouping.
func wrapTermIfComplex(term expression.Tokens) expression.Tokens {
	if len(term) > 1 || (len(term) > 0 && expression.IsOpenBracket(term[0])) {
		wrapped := make(expression.Tokens, 0, len(term)+2)
		wrapped = append(wrapped, "(")
		wrapped = append(wrapped, term...)
		wrapped = append(wrapped, ")")
		return wrapped
	}
	return term
}
