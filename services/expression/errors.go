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

import (
	"errors"
	"fmt"
)

// ErrSyntax is the base error for all malformed-input failures. Every
// *SyntaxError matches it via errors.Is, so callers can test for the whole
// class without knowing the specific kind.
var ErrSyntax = errors.New("invalid expression syntax")

// SyntaxErrorKind classifies a syntax failure.
type SyntaxErrorKind string

const (
	// SyntaxInvalidCharacter indicates a character outside the expression
	// alphabet (digits, '.', operators, brackets).
	SyntaxInvalidCharacter SyntaxErrorKind = "invalid_character"

	// SyntaxUnbalancedBracket indicates an unmatched or family-mismatched
	// bracket pair.
	SyntaxUnbalancedBracket SyntaxErrorKind = "unbalanced_bracket"

	// SyntaxEmptyBracket indicates a bracket pair with no content.
	SyntaxEmptyBracket SyntaxErrorKind = "empty_bracket"

	// SyntaxLeadingOperator indicates an operator at the start of the
	// sequence.
	SyntaxLeadingOperator SyntaxErrorKind = "leading_operator"

	// SyntaxTrailingOperator indicates an operator at the end of the
	// sequence.
	SyntaxTrailingOperator SyntaxErrorKind = "trailing_operator"

	// SyntaxAdjacentOperator indicates an operator next to another operator
	// or an incompatible bracket.
	SyntaxAdjacentOperator SyntaxErrorKind = "adjacent_operator"
)

// SyntaxError is a classified malformed-input error. It is fatal: a build
// or walk over the offending input aborts and surfaces it to the caller.
type SyntaxError struct {
	// Kind classifies the failure.
	Kind SyntaxErrorKind

	// Pos is the token (or character) position the failure was detected at.
	Pos int

	// Detail describes the offending token or character.
	Detail string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at position %d: %s", e.Kind, e.Pos, e.Detail)
}

// Is makes every SyntaxError match ErrSyntax.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}
