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
	"github.com/AleutianAI/MathTrail/services/expression"
	"github.com/AleutianAI/MathTrail/services/rewrite"
)

// Learner bundles a precedence belief with a set of policies. An action is
// valid for the learner iff every policy accepts it — a straight
// conjunction, each policy given the learner's own precedence map.
type Learner struct {
	// Name identifies the learner, e.g. a profile name or a caller-chosen
	// label for a custom learner.
	Name string `json:"name"`

	// PrecedenceName is the registry name of the precedence belief.
	PrecedenceName string `json:"precedence"`

	// Precedence is the resolved map.
	Precedence PrecedenceMap `json:"-"`

	// PolicyNames lists the attached policies by registry name.
	PolicyNames []string `json:"policies"`

	// Description is free text for display.
	Description string `json:"description"`

	policies []Policy
}

// New builds a learner from policy and precedence registry names. An empty
// precedenceName defaults to bodmas.
func New(name string, policyNames []string, precedenceName, description string) (*Learner, error) {
	if precedenceName == "" {
		precedenceName = PrecedenceBodmas
	}
	prec, err := GetPrecedenceMap(precedenceName)
	if err != nil {
		return nil, err
	}

	policies := make([]Policy, 0, len(policyNames))
	for _, pn := range policyNames {
		p, err := GetPolicy(pn)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}

	return &Learner{
		Name:           name,
		PrecedenceName: precedenceName,
		Precedence:     prec,
		PolicyNames:    policyNames,
		Description:    description,
		policies:       policies,
	}, nil
}

// FromProfile builds a learner from a preset profile.
func FromProfile(profileName string) (*Learner, error) {
	p, err := GetProfile(profileName)
	if err != nil {
		return nil, err
	}
	return New(profileName, p.Policies, p.Precedence, p.Description)
}

// IsValid reports whether every attached policy accepts the action.
func (l *Learner) IsValid(state expression.Tokens, action rewrite.Action,
	available []rewrite.Action) bool {
	for _, p := range l.policies {
		if !p.Allows(state, action, available, l.Precedence) {
			return false
		}
	}
	return true
}

// ValidActions filters the available set down to the actions this learner
// accepts, preserving discovery order.
func (l *Learner) ValidActions(state expression.Tokens,
	available []rewrite.Action) []rewrite.Action {
	var valid []rewrite.Action
	for _, a := range available {
		if l.IsValid(state, a, available) {
			valid = append(valid, a)
		}
	}
	return valid
}

// EvaluateAll runs every policy against one action individually, returning
// the per-policy verdicts. Meant for debugging and UI explanations.
func (l *Learner) EvaluateAll(state expression.Tokens, action rewrite.Action,
	available []rewrite.Action) map[string]bool {
	verdicts := make(map[string]bool, len(l.policies))
	for _, p := range l.policies {
		verdicts[p.Name()] = p.Allows(state, action, available, l.Precedence)
	}
	return verdicts
}
