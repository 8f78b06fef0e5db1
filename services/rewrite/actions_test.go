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

func TestDiscoverActionsOrderAndContent(t *testing.T) {
	actions := DiscoverActions(mustTokens(t, "(2+3)*5"))
	require.Len(t, actions, 3)

	assert.Equal(t, ActionEvaluate, actions[0].Kind)
	assert.Equal(t, "Compute 2 + 3", actions[0].Description)
	assert.Equal(t, "5*5", actions[0].Result.Canonical())

	assert.Equal(t, ActionDistribute, actions[1].Kind)
	assert.Equal(t, "Distribute (2+3) * 5", actions[1].Description)
	assert.Equal(t, "(2*5+3*5)", actions[1].Result.Canonical())

	assert.Equal(t, ActionDropBrackets, actions[2].Kind)
	assert.Equal(t, "Drop brackets: (2+3)", actions[2].Description)
	assert.Equal(t, "2+3*5", actions[2].Result.Canonical())
}

func TestDiscoverActionsFlatExpression(t *testing.T) {
	actions := DiscoverActions(mustTokens(t, "2+3*5"))
	require.Len(t, actions, 2)
	for _, a := range actions {
		assert.Equal(t, ActionEvaluate, a.Kind)
	}
	assert.Equal(t, "5*5", actions[0].Result.Canonical())
	assert.Equal(t, "2+15", actions[1].Result.Canonical())
}

func TestDiscoverActionsDedupByResult(t *testing.T) {
	// (5)*3 never reaches discovery unsimplified in the engine, but the
	// invariant holds regardless: duplicate simplified results are dropped,
	// first action wins.
	actions := DiscoverActions(mustTokens(t, "(5)*3"))
	canon := make(map[string]int)
	for _, a := range actions {
		canon[a.Result.Canonical()]++
	}
	for result, n := range canon {
		assert.Equal(t, 1, n, "duplicate result %q", result)
	}
}

func TestDiscoverActionsSkipsDivisionByZero(t *testing.T) {
	actions := DiscoverActions(mustTokens(t, "5/0+1"))
	for _, a := range actions {
		assert.NotEqual(t, 1, a.OperatorIndex, "5/0 must not surface as an action")
	}
}

func TestDiscoverActionsTerminal(t *testing.T) {
	actions := DiscoverActions(mustTokens(t, "7"))
	assert.Empty(t, actions)
}

func TestDiscoverActionsResultsSimplified(t *testing.T) {
	// After distributing 5*(2+3), the result keeps its wrapping bracket
	// only while it holds multiple terms.
	actions := DiscoverActions(mustTokens(t, "5*(2+3)"))
	for _, a := range actions {
		assert.Equal(t, a.Result.Canonical(), SimplifyBrackets(a.Result).Canonical(),
			"action %q result not simplified", a.Description)
	}
}
