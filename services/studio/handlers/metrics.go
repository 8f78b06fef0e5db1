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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	graphsBuilt = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mathtrail",
		Name:      "graphs_built_total",
		Help:      "Rewrite graphs built via the API, by outcome.",
	}, []string{"outcome"})

	graphNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mathtrail",
		Name:      "graph_nodes",
		Help:      "Node counts of completed graph builds.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})

	walksRun = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mathtrail",
		Name:      "walks_total",
		Help:      "Learner walks executed via the API, by kind and outcome.",
	}, []string{"kind", "outcome"})
)
