// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

/*
This file bridges the build system and the runtime profile catalog. The Go
embed package bakes learner_profiles.yaml directly into the compiled binary,
so the preset profiles are immutable at runtime and travel with the
executable.
*/

package learner

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// LearnerProfiles holds the raw byte content of the 'learner_profiles.yaml'
// file, populated at compile time by the embed directive.
//
//go:embed learner_profiles.yaml
var LearnerProfiles []byte

// Profile is one preset learner configuration.
type Profile struct {
	Precedence  string   `yaml:"precedence" json:"precedence"`
	Policies    []string `yaml:"policies" json:"policies"`
	Description string   `yaml:"description" json:"description"`
}

type profileFile struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

var (
	profilesOnce   sync.Once
	profilesByName map[string]Profile
	profilesErr    error
)

func loadProfiles() (map[string]Profile, error) {
	profilesOnce.Do(func() {
		var file profileFile
		if err := yaml.Unmarshal(LearnerProfiles, &file); err != nil {
			profilesErr = fmt.Errorf("parse embedded learner profiles: %w", err)
			return
		}
		profilesByName = file.Profiles
	})
	return profilesByName, profilesErr
}

// GetProfile resolves a preset profile by name.
func GetProfile(name string) (Profile, error) {
	profiles, err := loadProfiles()
	if err != nil {
		return Profile{}, err
	}
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

// ProfileNames lists the preset profile names, sorted.
func ProfileNames() []string {
	profiles, err := loadProfiles()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profiles returns the full preset catalog keyed by name.
func Profiles() (map[string]Profile, error) {
	return loadProfiles()
}
