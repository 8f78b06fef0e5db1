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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatableOps(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []int
	}{
		{"flat mix", "2+3*5", []int{1, 3}},
		{"bracket blocks outer operator", "(2+3)*5", []int{2}},
		{"single operand", "7", nil},
		{"operand next to bracket not evaluatable", "2*(3+4)", []int{3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EvaluatableOps(mustTokens(t, tc.expr))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPerformOperation(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		opIndex int
		want    string
	}{
		{"addition", "2+3*5", 1, "5*5"},
		{"multiplication", "2+3*5", 3, "2+15"},
		{"subtraction negative result", "2-5", 1, "-3"},
		{"division", "10/2", 1, "5"},
		{"power", "2^3+1", 1, "8+1"},
		{"bracket collapses after evaluation", "(2+3)*5", 2, "5*5"},
		{"decimal result kept", "5/2", 1, "2.5"},
		{"negative literal operand", "-3+4", 1, "1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PerformOperation(mustTokens(t, tc.expr), tc.opIndex)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Canonical())
		})
	}
}

func TestPerformOperationErrors(t *testing.T) {
	t.Run("division by zero", func(t *testing.T) {
		_, err := PerformOperation(mustTokens(t, "5/0"), 1)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})

	t.Run("index not an operator", func(t *testing.T) {
		_, err := PerformOperation(mustTokens(t, "2+3"), 0)
		assert.ErrorIs(t, err, ErrNotAnOperator)
	})

	t.Run("neighbor is a bracket", func(t *testing.T) {
		_, err := PerformOperation(mustTokens(t, "2*(3+4)"), 1)
		assert.ErrorIs(t, err, ErrNotAnOperator)
	})
}

func TestSameOperator(t *testing.T) {
	tests := []struct {
		name   string
		expr   string
		wantOp string
		wantOK bool
	}{
		{"addition chain", "2+3+4", "+", true},
		{"subtraction chain", "10-2-3", "-", true},
		{"two operands", "2*3", "*", true},
		{"mixed operators", "2+3*4", "", false},
		{"brackets disqualify", "(2+3)+4", "", false},
		{"single operand", "7", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			op, ok := SameOperator(mustTokens(t, tc.expr))
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantOp, op)
		})
	}
}

func TestFoldSameOperator(t *testing.T) {
	tests := []struct {
		name string
		expr string
		op   string
		want string
	}{
		{"addition", "2+3+4", "+", "9"},
		{"left-to-right subtraction", "10-2-3", "-", "5"},
		{"left-to-right division", "100/10/2", "/", "5"},
		{"left-to-right power", "2^3^2", "^", "64"},
		{"multiplication", "2*3*4", "*", "24"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FoldSameOperator(mustTokens(t, tc.expr), tc.op)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFoldSameOperatorDivisionByZero(t *testing.T) {
	_, err := FoldSameOperator(mustTokens(t, "10/0/2"), "/")
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "5", FormatNumber(5.0))
	assert.Equal(t, "-3", FormatNumber(-3.0))
	assert.Equal(t, "2.5", FormatNumber(2.5))
	assert.Equal(t, "0", FormatNumber(0))
}
