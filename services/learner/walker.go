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
	"strconv"

	"github.com/AleutianAI/MathTrail/services/expression"
	"github.com/AleutianAI/MathTrail/services/rewrite"
)

// DefaultMaxDepth bounds exhaustive path enumeration. Each extra level
// multiplies the path count by the branching factor, so the ceiling is
// deliberately modest.
const DefaultMaxDepth = 20

// Step records one decision point in a walk.
type Step struct {
	// State is the canonical expression text at this point.
	State string `json:"state"`

	// Tokens is the token sequence behind State.
	Tokens expression.Tokens `json:"tokens"`

	// AllActions is everything syntactically available.
	AllActions []rewrite.Action `json:"all_actions,omitempty"`

	// ValidActions is the learner-accepted subset, in discovery order.
	ValidActions []rewrite.Action `json:"valid_actions,omitempty"`

	// Chosen is the executed action. Nil on final and stuck steps.
	Chosen *rewrite.Action `json:"chosen_action,omitempty"`

	// IsFinal marks the terminal step; Result carries its value.
	IsFinal bool    `json:"is_final,omitempty"`
	Result  float64 `json:"result,omitempty"`

	// Stuck marks a step where actions existed but the learner accepted
	// none of them.
	Stuck bool `json:"stuck,omitempty"`
}

// Walker replays a learner's decisions on an expression. It re-derives the
// action set from the current tokens at every step, so it works on any
// state whether or not a graph was ever built for it.
type Walker struct {
	learner *Learner
}

// NewWalker returns a walker for the given learner.
func NewWalker(l *Learner) *Walker {
	return &Walker{learner: l}
}

// Learner returns the learner this walker replays.
func (w *Walker) Learner() *Learner {
	return w.learner
}

// WalkDeterministic walks from the expression to the end, always executing
// the first valid action in discovery order. The walk stops at a terminal
// state, when no actions exist, or when the learner rejects everything
// available (recorded as a stuck step, not an error). Only malformed input
// fails.
func (w *Walker) WalkDeterministic(expr string) ([]Step, error) {
	tokens, err := expression.Tokenize(expr)
	if err != nil {
		return nil, err
	}
	tokens = rewrite.SimplifyBrackets(tokens)

	var steps []Step
	for len(tokens) > 1 {
		all := rewrite.DiscoverActions(tokens)
		if len(all) == 0 {
			break
		}

		valid := w.learner.ValidActions(tokens, all)
		step := Step{
			State:        tokens.Canonical(),
			Tokens:       tokens,
			AllActions:   all,
			ValidActions: valid,
		}
		if len(valid) == 0 {
			step.Stuck = true
			steps = append(steps, step)
			break
		}

		chosen := valid[0]
		step.Chosen = &chosen
		steps = append(steps, step)
		tokens = chosen.Result
	}

	if final, ok := finalStep(tokens); ok {
		steps = append(steps, final)
	}
	return steps, nil
}

// EnumeratePaths explores every valid action at every step, recording one
// completed path per terminal state, per stuck state, and per depth-limit
// cutoff. maxDepth <= 0 means DefaultMaxDepth.
func (w *Walker) EnumeratePaths(expr string, maxDepth int) ([][]Step, error) {
	tokens, err := expression.Tokenize(expr)
	if err != nil {
		return nil, err
	}
	tokens = rewrite.SimplifyBrackets(tokens)

	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var paths [][]Step
	w.explore(tokens, nil, 0, maxDepth, &paths)
	return paths, nil
}

func (w *Walker) explore(tokens expression.Tokens, path []Step, depth, maxDepth int,
	paths *[][]Step) {
	if depth > maxDepth {
		*paths = append(*paths, path)
		return
	}

	if final, ok := finalStep(tokens); ok {
		*paths = append(*paths, appendStep(path, final))
		return
	}

	all := rewrite.DiscoverActions(tokens)
	if len(all) == 0 {
		*paths = append(*paths, path)
		return
	}

	valid := w.learner.ValidActions(tokens, all)
	if len(valid) == 0 {
		stuck := Step{
			State:      tokens.Canonical(),
			Tokens:     tokens,
			AllActions: all,
			Stuck:      true,
		}
		*paths = append(*paths, appendStep(path, stuck))
		return
	}

	for _, action := range valid {
		chosen := action
		step := Step{
			State:        tokens.Canonical(),
			Tokens:       tokens,
			AllActions:   all,
			ValidActions: valid,
			Chosen:       &chosen,
		}
		w.explore(action.Result, appendStep(path, step), depth+1, maxDepth, paths)
	}
}

// appendStep extends a path without sharing the backing array between
// sibling branches.
func appendStep(path []Step, step Step) []Step {
	out := make([]Step, len(path), len(path)+1)
	copy(out, path)
	return append(out, step)
}

func finalStep(tokens expression.Tokens) (Step, bool) {
	if len(tokens) != 1 || !expression.IsOperand(tokens[0]) {
		return Step{}, false
	}
	v, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return Step{}, false
	}
	return Step{
		State:   tokens.Canonical(),
		Tokens:  tokens,
		IsFinal: true,
		Result:  v,
	}, true
}

// Run summarizes one learner's deterministic walk for comparison views.
type Run struct {
	Precedence  string   `json:"precedence"`
	Policies    []string `json:"policies"`
	Description string   `json:"description"`
	Steps       []Step   `json:"steps"`
	NumSteps    int      `json:"num_steps"`

	// FinalResult is nil when the learner got stuck or ran out of actions.
	FinalResult *float64 `json:"final_result"`
}

// CompareLearners runs the deterministic walk for each named profile. Nil
// names means every preset profile.
func CompareLearners(expr string, names []string) (map[string]Run, error) {
	if names == nil {
		names = ProfileNames()
	}

	runs := make(map[string]Run, len(names))
	for _, name := range names {
		l, err := FromProfile(name)
		if err != nil {
			return nil, err
		}
		steps, err := NewWalker(l).WalkDeterministic(expr)
		if err != nil {
			return nil, err
		}

		run := Run{
			Precedence:  l.PrecedenceName,
			Policies:    l.PolicyNames,
			Description: l.Description,
			Steps:       steps,
			NumSteps:    len(steps),
		}
		if n := len(steps); n > 0 && steps[n-1].IsFinal {
			result := steps[n-1].Result
			run.FinalResult = &result
		}
		runs[name] = run
	}
	return runs, nil
}
