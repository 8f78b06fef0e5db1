// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package expression

import "strings"

// Tokenize splits an arithmetic expression into a validated token sequence.
//
// Whitespace is ignored. A '-' is read as part of a numeric literal iff it
// is the first token or immediately follows an operator or an open bracket;
// otherwise it is binary subtraction:
//
//	Tokenize("2+3*5")   -> ["2" "+" "3" "*" "5"]
//	Tokenize("-3+4*2")  -> ["-3" "+" "4" "*" "2"]
//	Tokenize("2*-3")    -> ["2" "*" "-3"]
//
// The returned sequence is guaranteed valid: balanced non-empty brackets
// (matched per family) and no leading/trailing/adjacent operators. Any
// violation returns a *SyntaxError (matching ErrSyntax).
func Tokenize(expr string) (Tokens, error) {
	tokens, err := scan(expr)
	if err != nil {
		return nil, err
	}
	if err := Validate(tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// scan performs the lexical split without structural validation.
func scan(expr string) (Tokens, error) {
	expr = strings.ReplaceAll(expr, " ", "")
	expr = strings.ReplaceAll(expr, "\t", "")

	var tokens Tokens
	i := 0
	for i < len(expr) {
		ch := string(expr[i])
		switch {
		case IsBracket(ch):
			tokens = append(tokens, ch)
			i++

		case ch == OpSubtract && minusIsSign(tokens, i):
			// Negative literal: consume the sign plus the number body.
			j := i + 1
			for j < len(expr) && isNumberChar(expr[j]) {
				j++
			}
			tokens = append(tokens, expr[i:j])
			i = j

		case IsOperator(ch):
			tokens = append(tokens, ch)
			i++

		case isNumberChar(expr[i]):
			j := i
			for j < len(expr) && isNumberChar(expr[j]) {
				j++
			}
			tokens = append(tokens, expr[i:j])
			i = j

		default:
			return nil, &SyntaxError{Kind: SyntaxInvalidCharacter, Pos: i, Detail: ch}
		}
	}
	return tokens, nil
}

// minusIsSign reports whether a '-' at scan position i begins a negative
// literal rather than a binary subtraction.
func minusIsSign(tokens Tokens, i int) bool {
	if i == 0 {
		return true
	}
	if len(tokens) == 0 {
		return true
	}
	prev := tokens[len(tokens)-1]
	return IsOperator(prev) || IsOpenBracket(prev)
}

func isNumberChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.'
}

// Validate checks the structural rules on a token sequence:
//
//   - brackets balanced and matched per family
//   - no empty bracket pair
//   - no operator at the start or end of the sequence
//   - no operator following an operator or open bracket
//   - no operator preceding an operator or close bracket
//
// Returns nil for a valid sequence, a *SyntaxError otherwise.
func Validate(tokens Tokens) error {
	if len(tokens) == 0 {
		return &SyntaxError{Kind: SyntaxEmptyBracket, Pos: 0, Detail: "empty expression"}
	}

	var stack []string
	for i, tok := range tokens {
		if IsOpenBracket(tok) {
			stack = append(stack, tok)
		}
		if IsCloseBracket(tok) {
			if len(stack) == 0 {
				return &SyntaxError{Kind: SyntaxUnbalancedBracket, Pos: i, Detail: "unmatched " + tok}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if BracketPairs[open] != tok {
				return &SyntaxError{
					Kind: SyntaxUnbalancedBracket, Pos: i,
					Detail: open + " closed by " + tok,
				}
			}
			if i > 0 && IsOpenBracket(tokens[i-1]) {
				return &SyntaxError{Kind: SyntaxEmptyBracket, Pos: i, Detail: tokens[i-1] + tok}
			}
		}

		if IsOperator(tok) {
			if i == 0 {
				return &SyntaxError{Kind: SyntaxLeadingOperator, Pos: i, Detail: tok}
			}
			if i == len(tokens)-1 {
				return &SyntaxError{Kind: SyntaxTrailingOperator, Pos: i, Detail: tok}
			}
			prev := tokens[i-1]
			if IsOperator(prev) || IsOpenBracket(prev) {
				return &SyntaxError{Kind: SyntaxAdjacentOperator, Pos: i, Detail: prev + tok}
			}
			next := tokens[i+1]
			if IsOperator(next) || IsCloseBracket(next) {
				return &SyntaxError{Kind: SyntaxAdjacentOperator, Pos: i, Detail: tok + next}
			}
		}
	}

	if len(stack) > 0 {
		return &SyntaxError{
			Kind: SyntaxUnbalancedBracket, Pos: len(tokens),
			Detail: stack[len(stack)-1] + " never closed",
		}
	}
	return nil
}
