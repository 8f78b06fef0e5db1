// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package learner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkProfile(t *testing.T, profile, expr string) []Step {
	t.Helper()
	l, err := FromProfile(profile)
	require.NoError(t, err)
	steps, err := NewWalker(l).WalkDeterministic(expr)
	require.NoError(t, err)
	return steps
}

func finalResult(t *testing.T, steps []Step) float64 {
	t.Helper()
	require.NotEmpty(t, steps)
	last := steps[len(steps)-1]
	require.True(t, last.IsFinal, "walk did not reach a final state: %+v", last)
	return last.Result
}

func TestWalkDeterministicResults(t *testing.T) {
	tests := []struct {
		profile string
		expr    string
		want    float64
	}{
		{"expert", "2+3*4", 14},
		{"expert", "(2+3)*4", 20},
		{"expert", "4-5*2+3", -3},
		{"addition_first", "2+3*4", 20},
		{"left_to_right_only", "4-5*2+3", 1},
		{"right_to_left", "4-5*2+3", -21},
		{"bracket_ignorer", "(2+3)*4", 20},
	}

	for _, tc := range tests {
		t.Run(tc.profile+"/"+tc.expr, func(t *testing.T) {
			steps := walkProfile(t, tc.profile, tc.expr)
			assert.Equal(t, tc.want, finalResult(t, steps))
		})
	}
}

func TestWalkStepShape(t *testing.T) {
	steps := walkProfile(t, "expert", "(2+3)*4")
	require.Len(t, steps, 3)

	first := steps[0]
	assert.Equal(t, "(2+3)*4", first.State)
	assert.NotEmpty(t, first.AllActions)
	assert.NotEmpty(t, first.ValidActions)
	require.NotNil(t, first.Chosen)
	assert.Equal(t, "Compute 2 + 3", first.Chosen.Description)

	assert.Equal(t, "5*4", steps[1].State)

	last := steps[2]
	assert.True(t, last.IsFinal)
	assert.Equal(t, "20", last.State)
	assert.Nil(t, last.Chosen)
}

func TestWalkBracketIgnorerDropsFirst(t *testing.T) {
	steps := walkProfile(t, "bracket_ignorer", "(2+3)*4")
	require.NotEmpty(t, steps)
	require.NotNil(t, steps[0].Chosen)
	assert.Equal(t, "Drop brackets: (2+3)", steps[0].Chosen.Description)
	assert.Equal(t, "2+3*4", steps[1].State)
}

func TestWalkStuckLearner(t *testing.T) {
	// prefer_evaluate kills distribution, prefer_distribute kills
	// evaluation, brackets_optional kills dropping: nothing survives.
	l, err := New("contradictory",
		[]string{"prefer_evaluate", "prefer_distribute", "brackets_optional"},
		"bodmas", "accepts nothing while brackets remain")
	require.NoError(t, err)

	steps, err := NewWalker(l).WalkDeterministic("(2+3)*4")
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.True(t, steps[0].Stuck)
	assert.Nil(t, steps[0].Chosen)
	assert.NotEmpty(t, steps[0].AllActions)
	assert.Empty(t, steps[0].ValidActions)
}

func TestWalkTerminalInput(t *testing.T) {
	steps := walkProfile(t, "expert", "7")
	require.Len(t, steps, 1)
	assert.True(t, steps[0].IsFinal)
	assert.Equal(t, 7.0, steps[0].Result)
}

func TestWalkInvalidExpression(t *testing.T) {
	l, err := FromProfile("expert")
	require.NoError(t, err)
	_, err = NewWalker(l).WalkDeterministic("2++3")
	assert.Error(t, err)
}

func TestEnumeratePathsNovice(t *testing.T) {
	l, err := FromProfile("novice")
	require.NoError(t, err)

	paths, err := NewWalker(l).EnumeratePaths("2+3*4", 0)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	results := make(map[float64]bool)
	for _, path := range paths {
		last := path[len(path)-1]
		require.True(t, last.IsFinal)
		results[last.Result] = true
	}
	assert.Equal(t, map[float64]bool{14: true, 20: true}, results)
}

func TestEnumeratePathsDeterministicLearnerHasOnePath(t *testing.T) {
	l, err := FromProfile("expert")
	require.NoError(t, err)

	paths, err := NewWalker(l).EnumeratePaths("(2+3)*4", 0)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, 20.0, paths[0][len(paths[0])-1].Result)
}

func TestEnumeratePathsDepthCutoff(t *testing.T) {
	l, err := FromProfile("expert")
	require.NoError(t, err)

	// Depth 1 allows a single step, so no path reaches the terminal.
	paths, err := NewWalker(l).EnumeratePaths("(2+3)*4", 1)
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		last := path[len(path)-1]
		assert.False(t, last.IsFinal)
	}
}

func TestCompareLearners(t *testing.T) {
	runs, err := CompareLearners("2+3*4", []string{"expert", "addition_first", "novice"})
	require.NoError(t, err)
	require.Len(t, runs, 3)

	require.NotNil(t, runs["expert"].FinalResult)
	assert.Equal(t, 14.0, *runs["expert"].FinalResult)

	require.NotNil(t, runs["addition_first"].FinalResult)
	assert.Equal(t, 20.0, *runs["addition_first"].FinalResult)

	novice := runs["novice"]
	assert.Equal(t, "flat", novice.Precedence)
	require.NotNil(t, novice.FinalResult)
}

func TestCompareLearnersAllProfiles(t *testing.T) {
	runs, err := CompareLearners("2+3", nil)
	require.NoError(t, err)
	assert.Len(t, runs, 10)
	for name, run := range runs {
		require.NotNil(t, run.FinalResult, "profile %s", name)
		assert.Equal(t, 5.0, *run.FinalResult, "profile %s", name)
	}
}
