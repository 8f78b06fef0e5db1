// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/MathTrail/pkg/logging"
	"github.com/AleutianAI/MathTrail/services/expression"
	"github.com/AleutianAI/MathTrail/services/learner"
)

// resolveLearner turns a LearnerSpec into a learner: a preset profile when
// named, otherwise a custom policy/precedence combination.
func resolveLearner(spec LearnerSpec) (*learner.Learner, error) {
	if spec.Profile != "" {
		return learner.FromProfile(spec.Profile)
	}
	if len(spec.Policies) == 0 {
		return nil, fmt.Errorf("learner needs a profile or a policy list")
	}
	return learner.New("custom", spec.Policies, spec.Precedence, "custom learner")
}

func learnerErrorStatus(err error) int {
	switch {
	case errors.Is(err, learner.ErrUnknownProfile),
		errors.Is(err, learner.ErrUnknownPolicy),
		errors.Is(err, learner.ErrUnknownPrecedence):
		return http.StatusNotFound
	case errors.Is(err, expression.ErrSyntax):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Walkthrough runs a learner's deterministic walk over an expression.
func Walkthrough(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WalkthroughRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		l, err := resolveLearner(req.Learner)
		if err != nil {
			walksRun.WithLabelValues("deterministic", "error").Inc()
			c.JSON(learnerErrorStatus(err), gin.H{"error": err.Error()})
			return
		}

		steps, err := learner.NewWalker(l).WalkDeterministic(req.Expression)
		if err != nil {
			walksRun.WithLabelValues("deterministic", "error").Inc()
			c.JSON(learnerErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		walksRun.WithLabelValues("deterministic", "ok").Inc()

		resp := gin.H{
			"expression": req.Expression,
			"learner":    l,
			"steps":      steps,
			"num_steps":  len(steps),
		}
		if n := len(steps); n > 0 && steps[n-1].IsFinal {
			resp["final_result"] = steps[n-1].Result
		}
		logger.Debug("walkthrough served",
			"learner", l.Name, "expression", req.Expression, "steps", len(steps))

		c.JSON(http.StatusOK, resp)
	}
}

// EnumeratePaths lists every path a learner could take through an
// expression, bounded by the depth ceiling.
func EnumeratePaths(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PathsRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		l, err := resolveLearner(req.Learner)
		if err != nil {
			walksRun.WithLabelValues("paths", "error").Inc()
			c.JSON(learnerErrorStatus(err), gin.H{"error": err.Error()})
			return
		}

		paths, err := learner.NewWalker(l).EnumeratePaths(req.Expression, req.MaxDepth)
		if err != nil {
			walksRun.WithLabelValues("paths", "error").Inc()
			c.JSON(learnerErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		walksRun.WithLabelValues("paths", "ok").Inc()

		logger.Debug("paths enumerated",
			"learner", l.Name, "expression", req.Expression, "paths", len(paths))

		c.JSON(http.StatusOK, gin.H{
			"expression": req.Expression,
			"learner":    l,
			"paths":      paths,
			"num_paths":  len(paths),
		})
	}
}

// CompareLearners runs deterministic walks for several profiles side by
// side.
func CompareLearners(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CompareRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		var profiles []string
		if len(req.Profiles) > 0 {
			profiles = req.Profiles
		}

		runs, err := learner.CompareLearners(req.Expression, profiles)
		if err != nil {
			walksRun.WithLabelValues("compare", "error").Inc()
			c.JSON(learnerErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		walksRun.WithLabelValues("compare", "ok").Inc()

		c.JSON(http.StatusOK, gin.H{
			"expression": req.Expression,
			"learners":   runs,
		})
	}
}
