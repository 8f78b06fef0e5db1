// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package handlers implements the HTTP surface of the expression studio:
// graph builds, learner walkthroughs, path enumeration and the learner
// catalog.
package handlers

// BuildGraphRequest asks for the full rewrite graph of one expression.
type BuildGraphRequest struct {
	Expression string `json:"expression" binding:"required"`

	// MaxNodes overrides the node ceiling. Zero keeps the default.
	MaxNodes int `json:"max_nodes"`
}

// LearnerSpec selects a learner: either a preset profile, or a custom
// combination of policies and precedence. Profile wins when both are given.
type LearnerSpec struct {
	Profile    string   `json:"profile"`
	Policies   []string `json:"policies"`
	Precedence string   `json:"precedence"`
}

// WalkthroughRequest asks for a learner's deterministic walk.
type WalkthroughRequest struct {
	Expression string      `json:"expression" binding:"required"`
	Learner    LearnerSpec `json:"learner" binding:"required"`
}

// PathsRequest asks for every path a learner could take.
type PathsRequest struct {
	Expression string      `json:"expression" binding:"required"`
	Learner    LearnerSpec `json:"learner" binding:"required"`

	// MaxDepth overrides the recursion ceiling. Zero keeps the default.
	MaxDepth int `json:"max_depth"`
}

// CompareRequest asks for deterministic walks of several profiles side by
// side. An empty Profiles list means every preset.
type CompareRequest struct {
	Expression string   `json:"expression" binding:"required"`
	Profiles   []string `json:"profiles"`
}
