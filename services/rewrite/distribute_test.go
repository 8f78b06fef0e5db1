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

func TestFindDistributableBrackets(t *testing.T) {
	tests := []struct {
		name      string
		expr      string
		wantCount int
		wantSides []Side
	}{
		{
			name:      "operator right of bracket",
			expr:      "(2+3)*5",
			wantCount: 1,
			wantSides: []Side{SideRight},
		},
		{
			name:      "operator left of bracket",
			expr:      "5*(2+3)",
			wantCount: 1,
			wantSides: []Side{SideLeft},
		},
		{
			name:      "bracket dividend distributes",
			expr:      "(6+4)/2",
			wantCount: 1,
			wantSides: []Side{SideRight},
		},
		{
			name:      "bracket divisor never distributes",
			expr:      "10/(2+3)",
			wantCount: 0,
		},
		{
			name:      "bracketed divisor excluded on both sides",
			expr:      "(6+4)/(2+3)",
			wantCount: 0,
		},
		{
			name:      "bracket between operators found on both sides",
			expr:      "2*(3+4)*5",
			wantCount: 2,
			wantSides: []Side{SideRight, SideLeft},
		},
		{
			name:      "no adjacent operand",
			expr:      "(2+3)",
			wantCount: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FindDistributableBrackets(mustTokens(t, tc.expr), false)
			require.Len(t, got, tc.wantCount)
			for i, d := range got {
				assert.Equal(t, tc.wantSides[i], d.OpSide)
			}
		})
	}
}

func TestDistributeBracket(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{
			name: "right-side multiply",
			expr: "(2+3)*5",
			want: "(2*5+3*5)",
		},
		{
			name: "left-side multiply",
			expr: "5*(2+3)",
			want: "(5*2+5*3)",
		},
		{
			name: "subtraction preserves sign",
			expr: "(2-3)*4",
			want: "(2*4-3*4)",
		},
		{
			name: "division of a bracket dividend",
			expr: "(6+4)/2",
			want: "(6/2+4/2)",
		},
		{
			name: "power distributes too",
			expr: "(2+3)^2",
			want: "(2^2+3^2)",
		},
		{
			name: "surrounding tokens preserved",
			expr: "1+(2+3)*5",
			want: "1+(2*5+3*5)",
		},
		{
			name: "multi-token term re-wrapped",
			expr: "(2*3+4)*5",
			want: "((2*3)*5+4*5)",
		},
		{
			name: "bracket operand spliced whole",
			expr: "(2+3)*(4+1)",
			want: "(2*(4+1)+3*(4+1))",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens := mustTokens(t, tc.expr)
			cands := FindDistributableBrackets(tokens, false)
			require.NotEmpty(t, cands)

			got, err := DistributeBracket(tokens, cands[0])
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Canonical())
			// Input untouched.
			assert.Equal(t, tc.expr, tokens.Canonical())
		})
	}
}

func TestDistributeBracketSingleTerm(t *testing.T) {
	tokens := mustTokens(t, "(2*3)*5")
	cands := FindDistributableBrackets(tokens, false)
	require.NotEmpty(t, cands)

	_, err := DistributeBracket(tokens, cands[0])
	assert.ErrorIs(t, err, ErrNotDistributable)
}
