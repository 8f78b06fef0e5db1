// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package expression defines the token model for arithmetic expressions and
// the tokenizer that produces validated token sequences from raw strings.
//
// A token is one of:
//   - an operand: a (possibly signed, possibly decimal) numeric literal
//   - an operator: one of + - * / ^
//   - a bracket delimiter from one of three paired families: () [] {}
//
// Token sequences are immutable by convention: every transformation
// downstream allocates a new sequence and never writes through a shared
// backing array.
package expression

import "strings"

// Operator tokens recognized in expressions.
const (
	OpAdd      = "+"
	OpSubtract = "-"
	OpMultiply = "*"
	OpDivide   = "/"
	OpPower    = "^"
)

// AllOperators lists the five operators in canonical order.
var AllOperators = []string{OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower}

// BracketPairs maps each opening bracket to its matching closing bracket.
// Three families are supported; a pair must close with its own family.
var BracketPairs = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

var (
	openBrackets  = map[string]bool{"(": true, "[": true, "{": true}
	closeBrackets = map[string]bool{")": true, "]": true, "}": true}
	operators     = map[string]bool{
		OpAdd: true, OpSubtract: true, OpMultiply: true, OpDivide: true, OpPower: true,
	}
)

// IsOperator reports whether tok is one of the five operators.
func IsOperator(tok string) bool {
	return operators[tok]
}

// IsOpenBracket reports whether tok opens any bracket family.
func IsOpenBracket(tok string) bool {
	return openBrackets[tok]
}

// IsCloseBracket reports whether tok closes any bracket family.
func IsCloseBracket(tok string) bool {
	return closeBrackets[tok]
}

// IsBracket reports whether tok is a bracket delimiter of any family.
func IsBracket(tok string) bool {
	return openBrackets[tok] || closeBrackets[tok]
}

// IsOperand reports whether tok is a plain operand (not an operator and not
// a bracket). Tokenized sequences only ever contain operands, operators and
// brackets, so no numeric parse is needed here.
func IsOperand(tok string) bool {
	return !IsOperator(tok) && !IsBracket(tok)
}

// Tokens is an ordered token sequence.
type Tokens []string

// Canonical returns the canonical expression text: the concatenation of all
// tokens. Canonical text is the dedup key for graph states.
func (t Tokens) Canonical() string {
	return strings.Join(t, "")
}

// Clone returns a copy of the sequence with its own backing array.
func (t Tokens) Clone() Tokens {
	out := make(Tokens, len(t))
	copy(out, t)
	return out
}

// HasBrackets reports whether the sequence contains any bracket delimiter.
func (t Tokens) HasBrackets() bool {
	for _, tok := range t {
		if IsBracket(tok) {
			return true
		}
	}
	return false
}
