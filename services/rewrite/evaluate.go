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
	"math"
	"strconv"

	"github.com/AleutianAI/MathTrail/services/expression"
)

// EvaluatableOps returns the indices of every operator whose immediate
// neighbors are both plain operands. An operand adjacent to a bracket
// delimiter does not qualify; the bracket has to be simplified or dropped
// first.
func EvaluatableOps(tokens expression.Tokens) []int {
	var ops []int
	for i := 1; i < len(tokens)-1; i++ {
		if expression.IsOperator(tokens[i]) &&
			expression.IsOperand(tokens[i-1]) &&
			expression.IsOperand(tokens[i+1]) {
			ops = append(ops, i)
		}
	}
	return ops
}

// PerformOperation evaluates the single operation at opIndex, splices the
// numeric result over the operand-operator-operand triple and simplifies any
// bracket left holding a lone operand:
//
//	(2+3)*5, op at 2  ->  5*5
//
// Returns ErrNotAnOperator when opIndex does not name an evaluatable
// operator and ErrDivisionByZero for '/' with a zero right operand.
func PerformOperation(tokens expression.Tokens, opIndex int) (expression.Tokens, error) {
	if opIndex < 1 || opIndex >= len(tokens)-1 ||
		!expression.IsOperator(tokens[opIndex]) ||
		!expression.IsOperand(tokens[opIndex-1]) ||
		!expression.IsOperand(tokens[opIndex+1]) {
		return nil, ErrNotAnOperator
	}

	left, err := strconv.ParseFloat(tokens[opIndex-1], 64)
	if err != nil {
		return nil, ErrNotAnOperator
	}
	right, err := strconv.ParseFloat(tokens[opIndex+1], 64)
	if err != nil {
		return nil, ErrNotAnOperator
	}

	result, err := applyOperator(tokens[opIndex], left, right)
	if err != nil {
		return nil, err
	}

	out := make(expression.Tokens, 0, len(tokens)-2)
	out = append(out, tokens[:opIndex-1]...)
	out = append(out, FormatNumber(result))
	out = append(out, tokens[opIndex+2:]...)
	return SimplifyBrackets(out), nil
}

// SameOperator reports whether the sequence is a flat chain of a single
// operator over plain operands, e.g. 2+3+4 or 10-2-3. Brackets or mixed
// operators disqualify it.
func SameOperator(tokens expression.Tokens) (string, bool) {
	op := ""
	operands := 0
	for i, tok := range tokens {
		if i%2 == 0 {
			if !expression.IsOperand(tok) {
				return "", false
			}
			operands++
			continue
		}
		if !expression.IsOperator(tok) {
			return "", false
		}
		if op == "" {
			op = tok
		} else if tok != op {
			return "", false
		}
	}
	if op == "" || operands < 2 || len(tokens)%2 == 0 {
		return "", false
	}
	return op, true
}

// FoldSameOperator reduces a single-operator chain left to right in one
// step. For '-', '/' and '^' the strict left-to-right order is what defines
// the result; callers rely on that.
func FoldSameOperator(tokens expression.Tokens, op string) (string, error) {
	acc, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return "", ErrNotAnOperator
	}
	for i := 2; i < len(tokens); i += 2 {
		next, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return "", ErrNotAnOperator
		}
		acc, err = applyOperator(op, acc, next)
		if err != nil {
			return "", err
		}
	}
	return FormatNumber(acc), nil
}

func applyOperator(op string, left, right float64) (float64, error) {
	switch op {
	case expression.OpAdd:
		return left + right, nil
	case expression.OpSubtract:
		return left - right, nil
	case expression.OpMultiply:
		return left * right, nil
	case expression.OpDivide:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	case expression.OpPower:
		return math.Pow(left, right), nil
	default:
		return 0, ErrUnknownOperator
	}
}

// FormatNumber renders a numeric result as an operand token. Integral
// values drop the decimal point so that 10/2 yields "5", not "5.0000";
// everything else keeps full float precision.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
