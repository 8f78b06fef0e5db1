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

// PrecedenceInfo describes one precedence map for learner-builder UIs.
type PrecedenceInfo struct {
	Operators   PrecedenceMap `json:"operators"`
	Description string        `json:"description"`
}

// BuilderCatalog bundles everything a client needs to assemble a custom
// learner: the precedence maps, the policy categories, and the preset
// profiles.
type BuilderCatalog struct {
	PrecedenceMaps map[string]PrecedenceInfo `json:"precedence_maps"`
	Categories     []Category                `json:"policy_categories"`
	Profiles       map[string]Profile        `json:"preset_profiles"`
}

// Catalog builds the learner-builder catalog.
func Catalog() (BuilderCatalog, error) {
	profiles, err := Profiles()
	if err != nil {
		return BuilderCatalog{}, err
	}

	maps := make(map[string]PrecedenceInfo, len(precedenceMaps))
	for _, name := range PrecedenceMapNames() {
		maps[name] = PrecedenceInfo{
			Operators:   precedenceMaps[name],
			Description: PrecedenceDescription(name),
		}
	}

	return BuilderCatalog{
		PrecedenceMaps: maps,
		Categories:     Categories(),
		Profiles:       profiles,
	}, nil
}
