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

import "errors"

// Sentinel errors for the rewrite package.
var (
	// ErrDivisionByZero indicates an evaluate step whose right operand is
	// zero under '/'. It is local to one candidate action: discovery drops
	// the candidate, it never aborts a build.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNotDistributable indicates a distribution target whose bracket
	// holds a single term, so there is nothing to distribute over.
	ErrNotDistributable = errors.New("bracket has a single term")

	// ErrUnknownOperator indicates an operator outside the five supported
	// ones reached an executor.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrNotAnOperator indicates an evaluate position that does not hold an
	// operator with plain operand neighbors.
	ErrNotAnOperator = errors.New("position is not an evaluatable operator")
)
