// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package studio exposes the rewrite engine and learner system over HTTP:
// graph builds, learner walkthroughs, path enumeration, comparisons and the
// learner-builder catalog, plus health and Prometheus metrics endpoints.
//
// # Usage
//
//	cfg := studio.Config{Port: 12400}
//	svc, err := studio.New(cfg, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svc.Run()
package studio

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/MathTrail/pkg/logging"
	"github.com/AleutianAI/MathTrail/services/studio/routes"
)

// DefaultPort is the studio's default listen port.
const DefaultPort = 12400

// Config holds the studio's startup configuration.
type Config struct {
	// Port is the HTTP listen port. Zero means DefaultPort.
	Port int

	// ReleaseMode switches gin out of debug logging.
	ReleaseMode bool
}

// Service is the studio HTTP service. Run blocks and should be called once
// per instance.
type Service struct {
	config Config
	logger *logging.Logger
	router *gin.Engine
}

// New assembles the service: router, routes, logging.
func New(cfg Config, logger *logging.Logger) (*Service, error) {
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if logger == nil {
		logger = logging.Default()
	}

	if cfg.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	routes.SetupRoutes(router, logger)

	return &Service{
		config: cfg,
		logger: logger,
		router: router,
	}, nil
}

// Router exposes the configured engine for tests.
func (s *Service) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server and blocks until it stops.
func (s *Service) Run() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	s.logger.Info("studio listening", "addr", addr)
	return s.router.Run(addr)
}
