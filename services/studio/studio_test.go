// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package studio

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/MathTrail/pkg/logging"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := logging.New(logging.Config{Quiet: true})
	svc, err := New(Config{Port: DefaultPort}, logger)
	require.NoError(t, err)
	return svc
}

func doJSON(t *testing.T, svc *Service, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	svc := newTestService(t)
	rec := doJSON(t, svc, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestBuildGraphEndpoint(t *testing.T) {
	svc := newTestService(t)
	rec := doJSON(t, svc, http.MethodPost, "/v1/graphs", gin.H{
		"expression": "(2+3)*5",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var resp struct {
		Summary struct {
			Expression   string    `json:"expression"`
			NodeCount    int       `json:"node_count"`
			FinalResults []float64 `json:"final_results"`
			Truncated    bool      `json:"truncated"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "(2+3)*5", resp.Summary.Expression)
	assert.Equal(t, []float64{17, 25}, resp.Summary.FinalResults)
	assert.False(t, resp.Summary.Truncated)
}

func TestBuildGraphBadInput(t *testing.T) {
	svc := newTestService(t)

	rec := doJSON(t, svc, http.MethodPost, "/v1/graphs", gin.H{"expression": "2++3"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")

	rec = doJSON(t, svc, http.MethodPost, "/v1/graphs", gin.H{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBuildGraphTruncation(t *testing.T) {
	svc := newTestService(t)
	rec := doJSON(t, svc, http.MethodPost, "/v1/graphs", gin.H{
		"expression": "(1+2)*(3+4)-5",
		"max_nodes":  5,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Summary struct {
			Truncated bool `json:"truncated"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Summary.Truncated)
}

func TestWalkthroughEndpoint(t *testing.T) {
	svc := newTestService(t)
	rec := doJSON(t, svc, http.MethodPost, "/v1/walkthrough", gin.H{
		"expression": "2+3*4",
		"learner":    gin.H{"profile": "expert"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		FinalResult float64 `json:"final_result"`
		NumSteps    int     `json:"num_steps"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 14.0, resp.FinalResult)
	assert.Equal(t, 3, resp.NumSteps)
}

func TestWalkthroughCustomLearner(t *testing.T) {
	svc := newTestService(t)
	rec := doJSON(t, svc, http.MethodPost, "/v1/walkthrough", gin.H{
		"expression": "2+3*4",
		"learner": gin.H{
			"policies":   []string{"left_to_right_strict", "brackets_optional"},
			"precedence": "flat",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		FinalResult float64 `json:"final_result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 20.0, resp.FinalResult)
}

func TestWalkthroughUnknownProfile(t *testing.T) {
	svc := newTestService(t)
	rec := doJSON(t, svc, http.MethodPost, "/v1/walkthrough", gin.H{
		"expression": "2+3",
		"learner":    gin.H{"profile": "no_such_profile"},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPathsEndpoint(t *testing.T) {
	svc := newTestService(t)
	rec := doJSON(t, svc, http.MethodPost, "/v1/paths", gin.H{
		"expression": "2+3*4",
		"learner":    gin.H{"profile": "novice"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		NumPaths int `json:"num_paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.NumPaths)
}

func TestCompareEndpoint(t *testing.T) {
	svc := newTestService(t)
	rec := doJSON(t, svc, http.MethodPost, "/v1/compare", gin.H{
		"expression": "2+3*4",
		"profiles":   []string{"expert", "addition_first"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Learners map[string]struct {
			FinalResult *float64 `json:"final_result"`
		} `json:"learners"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Learners, 2)
	require.NotNil(t, resp.Learners["expert"].FinalResult)
	assert.Equal(t, 14.0, *resp.Learners["expert"].FinalResult)
	require.NotNil(t, resp.Learners["addition_first"].FinalResult)
	assert.Equal(t, 20.0, *resp.Learners["addition_first"].FinalResult)
}

func TestLearnerCatalogEndpoint(t *testing.T) {
	svc := newTestService(t)
	rec := doJSON(t, svc, http.MethodGet, "/v1/learners", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		PrecedenceMaps map[string]any `json:"precedence_maps"`
		Categories     []any          `json:"policy_categories"`
		Profiles       map[string]any `json:"preset_profiles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.PrecedenceMaps, 4)
	assert.Len(t, resp.Categories, 4)
	assert.Len(t, resp.Profiles, 10)
}

func TestMetricsEndpoint(t *testing.T) {
	svc := newTestService(t)
	rec := doJSON(t, svc, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewRejectsBadPort(t *testing.T) {
	_, err := New(Config{Port: 70000}, logging.New(logging.Config{Quiet: true}))
	assert.Error(t, err)
}
