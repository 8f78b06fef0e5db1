// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/MathTrail/pkg/logging"
	"github.com/AleutianAI/MathTrail/services/studio"
)

func runServe(cmd *cobra.Command, args []string) {
	logger := logging.Default()
	defer logger.Close()

	svc, err := studio.New(studio.Config{
		Port:        port,
		ReleaseMode: releaseMode,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := svc.Run(); err != nil {
		logger.Error("studio stopped", "error", err)
		os.Exit(1)
	}
}
