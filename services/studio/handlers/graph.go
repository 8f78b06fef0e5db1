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
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AleutianAI/MathTrail/pkg/logging"
	"github.com/AleutianAI/MathTrail/services/expression"
	"github.com/AleutianAI/MathTrail/services/rewrite/graph"
)

// BuildGraph builds the full rewrite graph for an expression and returns it
// with its summary.
func BuildGraph(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BuildGraphRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		requestID := uuid.New().String()
		c.Header("X-Request-ID", requestID)

		builder, err := graph.NewBuilder(graph.BuilderOptions{
			MaxNodes: req.MaxNodes,
			Logger:   logger,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		g, err := builder.Build(req.Expression)
		if err != nil {
			graphsBuilt.WithLabelValues("error").Inc()
			status := http.StatusInternalServerError
			if errors.Is(err, expression.ErrSyntax) || errors.Is(err, graph.ErrEmptyExpression) {
				status = http.StatusBadRequest
			}
			logger.Warn("graph build failed",
				"request_id", requestID,
				"expression", req.Expression,
				"error", err,
			)
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		graphsBuilt.WithLabelValues("ok").Inc()
		graphNodes.Observe(float64(len(g.Nodes)))
		logger.Info("graph built via API",
			"request_id", requestID,
			"expression", g.Expression,
			"nodes", len(g.Nodes),
			"truncated", g.Truncated,
		)

		c.JSON(http.StatusOK, gin.H{
			"request_id": requestID,
			"summary":    g.Summarize(),
			"graph":      g,
		})
	}
}
